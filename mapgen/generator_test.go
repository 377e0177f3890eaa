package mapgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/hexfield/world"
)

func TestCaveLevelBasics(t *testing.T) {
	lvl := New(12345).CaveLevel(40, 30)

	require.NotNil(t, lvl.World)
	assert.Equal(t, 40, lvl.Width)
	assert.Equal(t, 30, lvl.Height)

	// Spawn must be standable.
	assert.Equal(t, world.TerrainFloor, lvl.World.Terrain(lvl.Spawn))

	// The border is solid all the way around.
	for x := 0; x < 40; x++ {
		assert.True(t, lvl.World.Terrain(world.Location{X: x, Y: 0}).BlocksSight(), "top border at x=%d", x)
		assert.True(t, lvl.World.Terrain(world.Location{X: x, Y: 29}).BlocksSight(), "bottom border at x=%d", x)
	}
	for y := 0; y < 30; y++ {
		assert.True(t, lvl.World.Terrain(world.Location{X: 0, Y: y}).BlocksSight(), "left border at y=%d", y)
		assert.True(t, lvl.World.Terrain(world.Location{X: 39, Y: y}).BlocksSight(), "right border at y=%d", y)
	}
}

func TestCaveLevelPortalPair(t *testing.T) {
	lvl := New(9).CaveLevel(32, 32)

	p, ok := lvl.World.Portal(lvl.PortalCell)
	require.True(t, ok, "generated level has a portal")
	assert.Equal(t, world.TerrainVoid, lvl.World.Terrain(lvl.PortalCell), "portal sits under void terrain")
	assert.Equal(t, world.TerrainFloor, lvl.World.Terrain(p.Dest), "portal leads to open floor")

	_, visible := lvl.World.VisiblePortal(lvl.PortalCell)
	assert.True(t, visible)
}

func TestCaveLevelDeterministic(t *testing.T) {
	a := New(777).CaveLevel(24, 24)
	b := New(777).CaveLevel(24, 24)

	assert.Equal(t, a.Spawn, b.Spawn)
	assert.Equal(t, a.PortalCell, b.PortalCell)
	for y := 0; y < 24; y++ {
		for x := 0; x < 24; x++ {
			loc := world.Location{X: x, Y: y}
			require.Equal(t, a.World.Terrain(loc), b.World.Terrain(loc), "terrain differs at %v", loc)
		}
	}
}
