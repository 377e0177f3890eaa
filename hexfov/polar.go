package hexfov

import (
	"math"

	"chosenoffset.com/hexfield/hexgrid"
)

// polarPoint is a position on a hex ring expressed in discretized polar
// coordinates. pos runs over [0, 6*radius) for one full revolution and is
// rounded to the nearest cell index when a concrete cell is needed.
// radius 0 is a singular point that always maps to the origin cell.
type polarPoint struct {
	pos    float64
	radius int
}

// unitCircleEndpoints returns the pair of points spanning exactly one full
// revolution of the innermost ring. This seeds the sweep.
func unitCircleEndpoints() (begin, end polarPoint) {
	return polarPoint{pos: 0, radius: 1}, polarPoint{pos: 6, radius: 1}
}

// windingIndex is the index of the discrete cell along the ring that
// corresponds to this point, rounding to nearest.
func (p polarPoint) windingIndex() int {
	return int(math.Floor(p.pos + 0.5))
}

// endIndex is the cell index used for half-open span end comparisons. A
// span end sitting exactly on the ring seam (pos == 6*radius) is
// exclusive: index 6*radius wraps onto the same cell as index 0, which
// the span already covered from its begin side, so a full-circle span
// takes in each of the ring's 6*radius cells exactly once.
func (p polarPoint) endIndex() int {
	i := int(math.Ceil(p.pos + 0.5))
	if seam := p.radius * 6; i > seam {
		i = seam
	}
	return i
}

// isBelow reports whether the point's cell comes before the end cell of
// other. The floor/ceil asymmetry against windingIndex is what makes spans
// terminate correctly at ring seams; a naive < on pos would not.
func (p polarPoint) isBelow(other polarPoint) bool {
	return p.windingIndex() < other.endIndex()
}

// toVec returns the cell offset for the point. The ring index picks one of
// the six ring edges, then a step along that edge's tangent direction.
// Euclidean remainders keep indices from points that wrapped backward on
// the sane side of zero.
func (p polarPoint) toVec() hexgrid.Vec {
	if p.radius == 0 {
		return hexgrid.Vec{}
	}
	index := p.windingIndex()
	sector := modFloor(index, p.radius*6) / p.radius
	step := modFloor(index, p.radius)

	rod := hexgrid.Dir6FromInt(sector).Vec()
	tangent := hexgrid.Dir6FromInt(sector + 2).Vec()

	return rod.Mul(p.radius).Add(tangent.Mul(step))
}

// expand returns the corresponding point on the ring one radius outward.
func (p polarPoint) expand() polarPoint {
	return polarPoint{
		pos:    p.pos * float64(p.radius+1) / float64(p.radius),
		radius: p.radius + 1,
	}
}

// next returns the point one discrete cell onward along the same ring.
func (p polarPoint) next() polarPoint {
	return polarPoint{pos: math.Floor(p.pos+0.5) + 0.5, radius: p.radius}
}

// modFloor is the Euclidean remainder, always in [0, m) for positive m.
func modFloor(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
