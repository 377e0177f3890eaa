// Package hexfov computes field of view on a hexagonal grid with a lazy
// shadowcasting sweep. The caller supplies a Value that classifies each
// cell and decides where sight stops; the sweep enumerates exactly the
// visible cells as (offset, value) pairs, origin first, one pair per pull.
package hexfov

import "chosenoffset.com/hexfield/hexgrid"

// Value is the caller-supplied per-ray state for a sweep.
//
// Advance derives the state at offset from the state on the ray so far.
// A false result means sight is blocked past this point; the cell at
// offset itself is not emitted either. Advance must be a pure function of
// its inputs: the sweep may evaluate it more than once for the same cell
// while it reorganizes sectors, and a non-deterministic Advance produces
// logically wrong (though memory-safe) results.
//
// Equal detects whether two adjacent cells on the same ring belong to the
// same visibility group; a change in value splits the ring span.
type Value[T any] interface {
	Advance(offset hexgrid.Vec) (T, bool)
	Equal(other T) bool
}

// Stream is a pull-based source of (offset, value) pairs. HexFov and the
// corner filter both implement it, so consumers and filters compose.
type Stream[T any] interface {
	// Next returns the next pair, or ok=false when the sweep is done.
	Next() (offset hexgrid.Vec, value T, ok bool)
}

// sector is one angular span on one ring that has not been fully
// classified yet. begin, pt and end always share the same radius.
type sector[T Value[T]] struct {
	// begin is the start point of the span.
	begin polarPoint
	// pt is the point currently being processed.
	pt polarPoint
	// end is the end point of the span.
	end polarPoint
	// prevValue is the caller value from the previous ring.
	prevValue T
	// groupValue is the common value of the cells of the span processed so
	// far, once hasGroup is set.
	groupValue T
	hasGroup   bool
}

// HexFov sweeps the field of view around an origin cell. The recursion of
// classic shadowcasting lives in an explicit sector stack, so one Next
// call does a bounded amount of work and view radius never touches the
// call stack.
type HexFov[T Value[T]] struct {
	stack []sector[T]
	// sideChannel carries emissions that bypass the sector logic; it is
	// seeded with the origin, which the ring sweep itself never visits.
	sideChannel []pair[T]
}

type pair[T any] struct {
	offset hexgrid.Vec
	value  T
}

// New starts a sweep from the origin with the given initial value. The
// sweep has no radius ceiling of its own; bounding is entirely up to the
// caller's Advance returning false.
func New[T Value[T]](init T) *HexFov[T] {
	begin, end := unitCircleEndpoints()
	return &HexFov[T]{
		stack: []sector[T]{{
			begin:     begin,
			pt:        begin,
			end:       end,
			prevValue: init,
		}},
		sideChannel: []pair[T]{{offset: hexgrid.Vec{}, value: init}},
	}
}

// Next returns the next visible cell as an (offset, value) pair, or
// ok=false once every sector is exhausted.
func (f *HexFov[T]) Next() (hexgrid.Vec, T, bool) {
	for {
		if len(f.sideChannel) > 0 {
			p := f.sideChannel[0]
			f.sideChannel = f.sideChannel[1:]
			return p.offset, p.value, true
		}

		if len(f.stack) == 0 {
			var zero T
			return hexgrid.Vec{}, zero, false
		}
		cur := f.stack[len(f.stack)-1]
		f.stack = f.stack[:len(f.stack)-1]

		value, visible := cur.prevValue.Advance(cur.pt.toVec())

		if !cur.pt.isBelow(cur.end) || !visible {
			// Span exhausted or sight blocked. If a group formed, it
			// continues on the next ring out; otherwise this ray is dead.
			if cur.hasGroup {
				f.stack = append(f.stack, sector[T]{
					begin:     cur.begin.expand(),
					pt:        cur.begin.expand(),
					end:       cur.end.expand(),
					prevValue: cur.groupValue,
				})
			}
			continue
		}

		if !cur.hasGroup {
			// Beginning of a group, adopt the first cell's value.
			cur.groupValue = value
			cur.hasGroup = true
		} else if !cur.groupValue.Equal(value) {
			// Value changed mid-span, branch out. The rest of this span
			// continues here under the new value...
			f.stack = append(f.stack, sector[T]{
				begin:      cur.pt,
				pt:         cur.pt,
				end:        cur.end,
				prevValue:  cur.prevValue,
				groupValue: value,
				hasGroup:   true,
			})
			// ...while the uniform arc processed so far expands outward.
			f.stack = append(f.stack, sector[T]{
				begin:     cur.begin.expand(),
				pt:        cur.begin.expand(),
				end:       cur.pt.expand(),
				prevValue: cur.groupValue,
			})
			continue
		}

		offset := cur.pt.toVec()
		cur.pt = cur.pt.next()
		f.stack = append(f.stack, cur)
		return offset, value, true
	}
}

// Collect drains a stream into a map from offset to value. Pairs for the
// same offset overwrite in emission order.
func Collect[T any](s Stream[T]) map[hexgrid.Vec]T {
	out := make(map[hexgrid.Vec]T)
	for {
		offset, value, ok := s.Next()
		if !ok {
			return out
		}
		out[offset] = value
	}
}
