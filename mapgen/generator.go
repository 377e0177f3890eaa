// Package mapgen procedurally generates demo maps for the field-of-view
// library: perlin-noise caves with a few carved rectangular rooms, plus a
// portal pair so portal-aware sweeps have something to cross.
package mapgen

import (
	"math/rand"

	"github.com/aquilax/go-perlin"

	"chosenoffset.com/hexfield/dice"
	"chosenoffset.com/hexfield/world"
)

// Perlin tuning: smoothing, frequency and octave count for the cave
// noise field.
const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3
	noiseScale   = 0.12
	// Noise above this threshold is open cave floor.
	caveThreshold = 0.48
)

// Generator produces worlds from a seed. The same seed always produces
// the same world.
type Generator struct {
	rng    *rand.Rand
	noise  *perlin.Perlin
	roller *dice.Roller
}

// New creates a generator for the given seed.
func New(seed int64) *Generator {
	rng := rand.New(rand.NewSource(seed))
	return &Generator{
		rng:    rng,
		noise:  perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed),
		roller: dice.NewRoller(rng),
	}
}

// Level is a generated map together with its points of interest.
type Level struct {
	World  *world.World
	Width  int
	Height int
	// Spawn is a floor cell suitable for the player start.
	Spawn world.Location
	// PortalCell is the entry of the generated portal pair; it sits under
	// void terrain so sight falls through to the exit area.
	PortalCell world.Location
}

// CaveLevel generates a width x height cave level on map level 0. The
// border is always solid so sweeps terminate without ranging over the
// rock fallback outside the map.
func (g *Generator) CaveLevel(width, height int) *Level {
	w := world.New()

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			loc := world.Location{X: x, Y: y}
			if x == 0 || y == 0 || x == width-1 || y == height-1 {
				w.SetTerrain(loc, world.TerrainWall)
				continue
			}
			// Perlin noise in [-1,1], shifted to [0,1].
			n := (g.noise.Noise2D(float64(x)*noiseScale, float64(y)*noiseScale) + 1) / 2
			if n > caveThreshold {
				w.SetTerrain(loc, world.TerrainFloor)
			} else {
				w.SetTerrain(loc, world.TerrainRock)
			}
		}
	}

	g.carveRooms(w, width, height)

	lvl := &Level{World: w, Width: width, Height: height}
	lvl.Spawn = g.pickFloor(w, width, height)
	lvl.PortalCell = g.placePortalPair(w, width, height, lvl.Spawn)
	return lvl
}

// carveRooms opens a handful of dice-sized rectangular rooms so the caves
// have long sight lines and clean wall corners for the corner filter.
func (g *Generator) carveRooms(w *world.World, width, height int) {
	rooms := g.roller.MustRoll("1d3+1")
	for i := 0; i < rooms; i++ {
		rw := g.roller.MustRoll("2d3+2")
		rh := g.roller.MustRoll("2d3+2")
		if rw >= width-2 || rh >= height-2 {
			continue
		}
		rx := 1 + g.rng.Intn(width-rw-2)
		ry := 1 + g.rng.Intn(height-rh-2)

		for y := ry; y < ry+rh; y++ {
			for x := rx; x < rx+rw; x++ {
				loc := world.Location{X: x, Y: y}
				if x == rx || y == ry || x == rx+rw-1 || y == ry+rh-1 {
					// Keep existing floor openings as doorways.
					if w.Terrain(loc) != world.TerrainFloor {
						w.SetTerrain(loc, world.TerrainWall)
					}
				} else {
					w.SetTerrain(loc, world.TerrainFloor)
				}
			}
		}
	}
}

// pickFloor returns a floor cell, digging one out near the center if the
// noise left nothing open.
func (g *Generator) pickFloor(w *world.World, width, height int) world.Location {
	for tries := 0; tries < 1000; tries++ {
		loc := world.Location{
			X: 1 + g.rng.Intn(width-2),
			Y: 1 + g.rng.Intn(height-2),
		}
		if w.Terrain(loc) == world.TerrainFloor {
			return loc
		}
	}

	center := world.Location{X: width / 2, Y: height / 2}
	w.SetTerrain(center, world.TerrainFloor)
	return center
}

// placePortalPair places a void portal cell away from spawn whose
// destination is another floor cell, and returns the portal cell.
func (g *Generator) placePortalPair(w *world.World, width, height int, spawn world.Location) world.Location {
	entry := g.pickFloor(w, width, height)
	for tries := 0; entry == spawn && tries < 100; tries++ {
		entry = g.pickFloor(w, width, height)
	}
	exit := g.pickFloor(w, width, height)
	for tries := 0; (exit == entry || exit == spawn) && tries < 100; tries++ {
		exit = g.pickFloor(w, width, height)
	}

	w.SetTerrain(entry, world.TerrainVoid)
	w.SetPortal(entry, world.Portal{Dest: exit})
	return entry
}
