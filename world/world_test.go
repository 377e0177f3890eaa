package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/hexfield/hexfov"
	"chosenoffset.com/hexfield/hexgrid"
)

// openArena builds a world of open floor in a disc around center.
func openArena(center Location, radius int) *World {
	w := New()
	for x := -radius; x <= radius; x++ {
		for y := -radius; y <= radius; y++ {
			v := hexgrid.Vec{X: x, Y: y}
			if hexgrid.HexDist(v) <= radius {
				w.SetTerrain(center.Add(v), TerrainFloor)
			}
		}
	}
	return w
}

func TestTerrainFallbackIsRock(t *testing.T) {
	w := New()
	assert.Equal(t, TerrainRock, w.Terrain(Location{X: 100, Y: -3}))
	assert.True(t, w.Terrain(Location{}).BlocksSight())
}

func TestSightStopsAtWalls(t *testing.T) {
	origin := Location{}
	w := openArena(origin, 6)
	wallLoc := origin.Add(hexgrid.Vec{X: 1, Y: 0})
	w.SetTerrain(wallLoc, TerrainWall)

	field := hexfov.Collect[SightFov](hexfov.New(NewSightFov(w, 5, origin)))

	_, wallSeen := field[hexgrid.Vec{X: 1, Y: 0}]
	assert.True(t, wallSeen, "the blocking wall is the last visible cell on its ray")
	_, behindSeen := field[hexgrid.Vec{X: 2, Y: 0}]
	assert.False(t, behindSeen, "cells behind the wall are shadowed")
}

func TestPortalReframing(t *testing.T) {
	origin := Location{}
	w := openArena(origin, 6)

	// A visible portal needs void terrain on the near side.
	dest := Location{X: 100, Y: 100, Z: 1}
	for x := -6; x <= 6; x++ {
		for y := -6; y <= 6; y++ {
			v := hexgrid.Vec{X: x, Y: y}
			if hexgrid.HexDist(v) <= 6 {
				w.SetTerrain(dest.Add(v), TerrainFloor)
			}
		}
	}
	portalCell := origin.Add(hexgrid.Vec{X: 1, Y: 0})
	w.SetTerrain(portalCell, TerrainVoid)
	w.SetPortal(portalCell, Portal{Dest: dest})

	field := hexfov.Collect[SightFov](hexfov.New(NewSightFov(w, 5, origin)))

	// The pair for the portal cell already carries the new frame: its
	// origin is placed so origin+offset lands on the destination.
	crossed, ok := field[hexgrid.Vec{X: 1, Y: 0}]
	require.True(t, ok)
	wantFrame := dest.Sub(hexgrid.Vec{X: 1, Y: 0})
	assert.Equal(t, wantFrame, crossed.Origin)

	// Cells past the portal resolve against the destination frame, not
	// the sweep's own origin.
	beyond, ok := field[hexgrid.Vec{X: 2, Y: 0}]
	require.True(t, ok)
	assert.Equal(t, wantFrame, beyond.Origin)
	assert.Equal(t, dest.Add(hexgrid.Vec{X: 1, Y: 0}), beyond.Origin.Add(hexgrid.Vec{X: 2, Y: 0}))
	assert.NotEqual(t, origin.Add(hexgrid.Vec{X: 2, Y: 0}), beyond.Origin.Add(hexgrid.Vec{X: 2, Y: 0}))
}

func TestBuriedPortalIsNotVisible(t *testing.T) {
	origin := Location{}
	w := openArena(origin, 4)
	portalCell := origin.Add(hexgrid.Vec{X: 1, Y: 1})
	// Floor terrain on top of the portal: sight shows this side.
	w.SetPortal(portalCell, Portal{Dest: Location{X: 50, Y: 50}})

	_, visible := w.VisiblePortal(portalCell)
	assert.False(t, visible)

	field := hexfov.Collect[SightFov](hexfov.New(NewSightFov(w, 3, origin)))
	v, ok := field[hexgrid.Vec{X: 2, Y: 2}]
	require.True(t, ok)
	assert.Equal(t, origin, v.Origin, "sight must stay in the local frame")
}

func TestMapMemorySeenAndRemembered(t *testing.T) {
	origin := Location{}
	w := openArena(origin, 10)
	mem := NewMapMemory()

	mem.Update(w, origin, 3)
	near := origin.Add(hexgrid.Vec{X: 1, Y: 0})
	status, ok := mem.Status(near)
	require.True(t, ok)
	assert.Equal(t, Seen, status)
	assert.True(t, mem.CanSee(near))

	// Move the observer far enough that the old cell leaves the fov.
	mem.Update(w, origin.Add(hexgrid.Vec{X: 6, Y: 6}), 3)
	status, ok = mem.Status(near)
	require.True(t, ok)
	assert.Equal(t, Remembered, status)
	assert.False(t, mem.CanSee(near))

	// Never-seen cells have no status at all.
	_, ok = mem.Status(origin.Add(hexgrid.Vec{X: -10, Y: 10}))
	assert.False(t, ok)
}

func TestSphereVolumeExcludesBlockers(t *testing.T) {
	origin := Location{}
	w := openArena(origin, 6)
	// The wall sits on the last cell of the first ring, so blocking there
	// cuts nothing else out of the ring's span.
	w.SetTerrain(origin.Add(hexgrid.Vec{X: -1, Y: 0}), TerrainWall)

	field := hexfov.Collect[SphereVolumeFov](hexfov.New(NewSphereVolumeFov(w, 3, origin)))

	_, originIn := field[hexgrid.Vec{}]
	assert.True(t, originIn)
	_, wallIn := field[hexgrid.Vec{X: -1, Y: 0}]
	assert.False(t, wallIn, "volumes exclude the blocking cell itself")
	_, openIn := field[hexgrid.Vec{X: 0, Y: 1}]
	assert.True(t, openIn, "open cells ahead of the blocker stay in the volume")
}
