package hexfov

import "chosenoffset.com/hexfield/hexgrid"

// IsometricWaller is optionally implemented by Value types whose maps are
// drawn as fake-isometric rooms. The corner filter consults it to decide
// which cells count as wallforms; values that do not implement it are
// treated as never being walls, which makes the filter a pass-through.
type IsometricWaller interface {
	IsFakeIsometricWall(offset hexgrid.Vec) bool
}

// CornerFilter extends a sweep so that the acute corner wall of a
// fake-isometric room becomes visible. Strict hex sight keeps such a
// corner hidden behind its two neighbor walls, which looks wrong on an
// isometric screen: walking along the inside of the room should reveal
// the whole wall rectangle.
type CornerFilter[T Value[T]] struct {
	inner    Stream[T]
	prev     pair[T]
	hasPrev  bool
	extra    pair[T]
	hasExtra bool
}

// WithIsometricCorners wraps a sweep stream with the corner correction.
// The wrapper assumes the stream's offsets move clockwise the way HexFov
// emits them.
func WithIsometricCorners[T Value[T]](inner Stream[T]) *CornerFilter[T] {
	return &CornerFilter[T]{inner: inner}
}

// Next passes pairs through from the wrapped stream, inserting a
// synthesized corner pair right after the cell that revealed it.
func (c *CornerFilter[T]) Next() (hexgrid.Vec, T, bool) {
	if c.hasExtra {
		c.hasExtra = false
		return c.extra.offset, c.extra.value, true
	}

	offset, value, ok := c.inner.Next()
	if !ok {
		var zero T
		return hexgrid.Vec{}, zero, false
	}

	if c.hasPrev {
		if corner, ok := cornerPoint(c.prev.offset, offset); ok {
			// The sweep never visits the corner cell, so its true value is
			// unknowable here; reuse the current cell's value and hope it
			// works out okay.
			if isWall(c.prev.value, c.prev.offset) &&
				isWall(value, offset) &&
				isWall(value, corner) {
				c.extra = pair[T]{offset: corner, value: value}
				c.hasExtra = true
			}
		}
	}

	c.prev = pair[T]{offset: offset, value: value}
	c.hasPrev = true
	return offset, value, true
}

// cornerPoint returns the cell outside the ring wedged between two
// consecutive emissions, when they step between adjacent hex rows.
func cornerPoint(prev, next hexgrid.Vec) (hexgrid.Vec, bool) {
	switch next.Sub(prev) {
	case hexgrid.Vec{X: 1, Y: 1}:
		// Going down the right rim.
		return prev.Add(hexgrid.Vec{X: 1}), true
	case hexgrid.Vec{X: -1, Y: -1}:
		// Going up the left rim.
		return prev.Add(hexgrid.Vec{X: -1}), true
	default:
		return hexgrid.Vec{}, false
	}
}

func isWall[T any](value T, offset hexgrid.Vec) bool {
	if w, ok := any(value).(IsometricWaller); ok {
		return w.IsFakeIsometricWall(offset)
	}
	return false
}
