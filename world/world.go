package world

import "sync"

// Terrain is the kind of ground occupying a cell.
type Terrain uint8

const (
	// TerrainVoid is the empty space outside the map proper. Portals are
	// usually placed under void cells so sight falls straight through.
	TerrainVoid Terrain = iota
	TerrainFloor
	TerrainWall
	// TerrainRock is solid fill, the fallback for unmapped cells.
	TerrainRock
	TerrainDoor
	TerrainWater
)

// BlocksSight reports whether the terrain stops a sight ray.
func (t Terrain) BlocksSight() bool {
	switch t {
	case TerrainWall, TerrainRock, TerrainDoor:
		return true
	default:
		return false
	}
}

// IsWall reports whether the terrain draws as a wallform on screen.
func (t Terrain) IsWall() bool {
	return t == TerrainWall || t == TerrainRock || t == TerrainDoor
}

// Walkable reports whether something can stand on the terrain.
func (t Terrain) Walkable() bool {
	return t == TerrainFloor || t == TerrainDoor
}

// Portal teleports sight and movement that enters its cell.
type Portal struct {
	// Dest is the absolute cell the portal leads to.
	Dest Location
	// Border portals stitch two map areas edge to edge; sight passing
	// through one replaces its coordinate frame instead of stacking a
	// new one on top.
	Border bool
}

// World is a terrain and portal store shared by any number of sweeps.
// Reads take the read lock, so concurrent sweeps over one world are fine;
// the sweeps themselves are single-threaded pull iterators.
type World struct {
	mu      sync.RWMutex
	terrain map[Location]Terrain
	portals map[Location]Portal
}

// New creates an empty world. Every cell starts as solid rock.
func New() *World {
	return &World{
		terrain: make(map[Location]Terrain),
		portals: make(map[Location]Portal),
	}
}

// Terrain returns the terrain at a location, falling back to rock for
// cells that were never set.
func (w *World) Terrain(loc Location) Terrain {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if t, ok := w.terrain[loc]; ok {
		return t
	}
	return TerrainRock
}

// SetTerrain sets the terrain at a location.
func (w *World) SetTerrain(loc Location, t Terrain) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.terrain[loc] = t
}

// Portal returns the portal at a location, if any.
func (w *World) Portal(loc Location) (Portal, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	p, ok := w.portals[loc]
	return p, ok
}

// SetPortal places a portal at a location.
func (w *World) SetPortal(loc Location, p Portal) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.portals[loc] = p
}

// VisiblePortal returns the portal at a location when sight actually
// falls through it, which requires the terrain on this side to be void.
// A portal buried under solid terrain shows this side instead.
func (w *World) VisiblePortal(loc Location) (Portal, bool) {
	if w.Terrain(loc) != TerrainVoid {
		return Portal{}, false
	}
	return w.Portal(loc)
}
