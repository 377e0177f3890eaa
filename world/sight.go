package world

import "chosenoffset.com/hexfield/hexgrid"

// SightFov is the hexfov value for gameplay sight. It carries the current
// coordinate frame origin, which moves when the ray crosses a portal, and
// an edge flag so that the wall that blocks a ray is still the last cell
// seen on it.
type SightFov struct {
	w      *World
	rng    int
	Origin Location
	isEdge bool
}

// NewSightFov starts a sight value for a sweep of the given range from
// origin.
func NewSightFov(w *World, rng int, origin Location) SightFov {
	return SightFov{w: w, rng: rng, Origin: origin}
}

// Advance implements hexfov.Value.
func (s SightFov) Advance(offset hexgrid.Vec) (SightFov, bool) {
	if hexgrid.HexDist(offset) > s.rng {
		return SightFov{}, false
	}
	if s.isEdge {
		return SightFov{}, false
	}

	ret := s
	if p, ok := s.w.VisiblePortal(s.Origin.Add(offset)); ok {
		// Reframe so that origin+offset lands on the portal destination.
		ret.Origin = p.Dest.Sub(offset)
	}

	if s.w.Terrain(ret.Origin.Add(offset)).BlocksSight() {
		ret.isEdge = true
	}
	return ret, true
}

// Equal implements hexfov.Value.
func (s SightFov) Equal(other SightFov) bool {
	return s.w == other.w && s.rng == other.rng &&
		s.Origin == other.Origin && s.isEdge == other.isEdge
}

// IsFakeIsometricWall reports wallform terrain for the corner filter.
func (s SightFov) IsFakeIsometricWall(offset hexgrid.Vec) bool {
	return s.w.Terrain(s.Origin.Add(offset)).IsWall()
}

// SphereVolumeFov is the hexfov value for spherical volumes such as
// explosions. Unlike sight, the blocking cells themselves are excluded
// from the result.
type SphereVolumeFov struct {
	w      *World
	rng    int
	Origin Location
}

// NewSphereVolumeFov starts a volume value of the given range from origin.
func NewSphereVolumeFov(w *World, rng int, origin Location) SphereVolumeFov {
	return SphereVolumeFov{w: w, rng: rng, Origin: origin}
}

// Advance implements hexfov.Value.
func (s SphereVolumeFov) Advance(offset hexgrid.Vec) (SphereVolumeFov, bool) {
	if hexgrid.HexDist(offset) > s.rng {
		return SphereVolumeFov{}, false
	}

	ret := s
	// Volumes don't spread over non-visible portals; it would be annoying
	// and surprising if an explosion leaked through a buried portal.
	if p, ok := s.w.VisiblePortal(s.Origin.Add(offset)); ok {
		ret.Origin = p.Dest.Sub(offset)
	}

	if s.w.Terrain(s.Origin.Add(offset)).BlocksSight() {
		return SphereVolumeFov{}, false
	}
	return ret, true
}

// Equal implements hexfov.Value.
func (s SphereVolumeFov) Equal(other SphereVolumeFov) bool {
	return s.w == other.w && s.rng == other.rng && s.Origin == other.Origin
}
