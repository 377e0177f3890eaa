// Package world holds the gameplay-side consumers of the field-of-view
// sweep: a terrain and portal store, the sight values that drive sweeps
// across it, and the per-observer seen/remembered location cache.
package world

import "chosenoffset.com/hexfield/hexgrid"

// Location is an absolute cell position on some map level.
type Location struct {
	X, Y int
	// Z is the map level; offsets never cross levels, only portals do.
	Z int
}

// Add returns the location displaced by a cell offset on the same level.
func (l Location) Add(v hexgrid.Vec) Location {
	return Location{X: l.X + v.X, Y: l.Y + v.Y, Z: l.Z}
}

// Sub returns the location displaced by the negated offset.
func (l Location) Sub(v hexgrid.Vec) Location {
	return Location{X: l.X - v.X, Y: l.Y - v.Y, Z: l.Z}
}

// LocationSet is a set of absolute cell positions.
type LocationSet map[Location]struct{}

// Insert adds a location to the set.
func (s LocationSet) Insert(loc Location) {
	s[loc] = struct{}{}
}

// Contains reports whether the location is in the set.
func (s LocationSet) Contains(loc Location) bool {
	_, ok := s[loc]
	return ok
}

// Clear removes every location from the set.
func (s LocationSet) Clear() {
	for loc := range s {
		delete(s, loc)
	}
}
