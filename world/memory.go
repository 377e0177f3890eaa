package world

import "chosenoffset.com/hexfield/hexfov"

// FovStatus is the visibility bookkeeping state of a location for one
// observer.
type FovStatus int

const (
	// Seen locations are in the observer's current field of view.
	Seen FovStatus = iota
	// Remembered locations were seen at some point but are not anymore.
	Remembered
)

// MapMemory tracks which locations an observer currently sees and which
// ones it has seen before.
type MapMemory struct {
	seen       LocationSet
	remembered LocationSet
}

// NewMapMemory creates an empty map memory.
func NewMapMemory() *MapMemory {
	return &MapMemory{
		seen:       make(LocationSet),
		remembered: make(LocationSet),
	}
}

// Status returns the visibility status of a location. ok is false for
// locations the observer has never seen.
func (m *MapMemory) Status(loc Location) (FovStatus, bool) {
	if m.seen.Contains(loc) {
		return Seen, true
	}
	if m.remembered.Contains(loc) {
		return Remembered, true
	}
	return 0, false
}

// Update recomputes the current field of view from origin and folds it
// into the memory: the seen set is replaced, the remembered set only
// grows. Portal crossings resolve against the frame each pair carries,
// so remembered cells land on their true locations.
func (m *MapMemory) Update(w *World, origin Location, rng int) {
	m.fold(hexfov.New(NewSightFov(w, rng, origin)))
}

// UpdateIsometric is Update with the acute-corner correction applied, for
// observers drawn on a fake-isometric screen.
func (m *MapMemory) UpdateIsometric(w *World, origin Location, rng int) {
	m.fold(hexfov.WithIsometricCorners[SightFov](hexfov.New(NewSightFov(w, rng, origin))))
}

func (m *MapMemory) fold(fov hexfov.Stream[SightFov]) {
	m.seen.Clear()

	for {
		offset, value, ok := fov.Next()
		if !ok {
			break
		}
		loc := value.Origin.Add(offset)
		m.seen.Insert(loc)
		m.remembered.Insert(loc)
	}
}

// CanSee reports whether the location is in the current field of view.
func (m *MapMemory) CanSee(loc Location) bool {
	return m.seen.Contains(loc)
}
