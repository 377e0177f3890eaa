package view

import (
	"image"
	"slices"

	"chosenoffset.com/hexfield/hexfov"
	"chosenoffset.com/hexfield/hexgrid"
	"chosenoffset.com/hexfield/world"
)

// ScreenFov is the hexfov value for drawing a screen. Instead of a sight
// range it culls to a screen-space rectangle, and instead of one frame
// origin it carries the whole stack of frames passed through: when map
// memory is drawn for cells near a hole portal, the layers underneath are
// still addressable.
type ScreenFov struct {
	w          *world.World
	screenArea image.Rectangle
	// Origins lists coordinate frame origins, newest first; Origins[0] is
	// the frame a cell at this point should resolve against.
	Origins []world.Location
}

// NewScreenFov starts a screen culling value from origin. The screen area
// is in pixel coordinates relative to the origin cell's projection.
func NewScreenFov(w *world.World, origin world.Location, screenArea image.Rectangle) ScreenFov {
	return ScreenFov{
		w:          w,
		screenArea: screenArea,
		Origins:    []world.Location{origin},
	}
}

// Advance implements hexfov.Value.
func (s ScreenFov) Advance(offset hexgrid.Vec) (ScreenFov, bool) {
	if !CellToScreen(offset).In(s.screenArea) {
		return ScreenFov{}, false
	}

	loc := s.Origins[0].Add(offset)

	ret := s
	if p, ok := s.w.VisiblePortal(loc); ok {
		frame := p.Dest.Sub(offset)
		if p.Border {
			// A border portal replaces the current frame; map memory
			// transitions seamlessly across the border.
			ret.Origins = slices.Clone(s.Origins)
			ret.Origins[0] = frame
		} else {
			// A hole portal stacks a new frame on top, keeping the layers
			// underneath drawable.
			ret.Origins = append([]world.Location{frame}, s.Origins...)
		}
	}

	return ret, true
}

// Equal implements hexfov.Value.
func (s ScreenFov) Equal(other ScreenFov) bool {
	return s.w == other.w && s.screenArea == other.screenArea &&
		slices.Equal(s.Origins, other.Origins)
}

// ScreenVisibility returns the frame stacks for every cell offset that
// lands inside the screen area, keyed by offset from the camera origin.
// Origins[0] of each stack is the frame the cell resolves against.
func ScreenVisibility(w *world.World, origin world.Location, screenArea image.Rectangle) map[hexgrid.Vec][]world.Location {
	out := make(map[hexgrid.Vec][]world.Location)
	fov := hexfov.New(NewScreenFov(w, origin, screenArea))
	for {
		offset, value, ok := fov.Next()
		if !ok {
			return out
		}
		out[offset] = value.Origins
	}
}
