// Package hexgrid provides integer vector math for a hexagonal grid using
// the axial convention where the six neighbors of the origin are
// (-1,-1), (0,-1), (1,0), (1,1), (0,1) and (-1,0).
package hexgrid

import "math"

// Vec is a cell position expressed as an offset from some origin cell.
type Vec struct {
	X, Y int
}

// Add returns the component-wise sum of two vectors.
func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

// Sub returns the component-wise difference of two vectors.
func (v Vec) Sub(o Vec) Vec {
	return Vec{v.X - o.X, v.Y - o.Y}
}

// Mul returns the vector scaled by k.
func (v Vec) Mul(k int) Vec {
	return Vec{v.X * k, v.Y * k}
}

// HexDist returns the hex grid distance covered by the vector. When both
// components point the same way the axes overlap and the longer one wins,
// otherwise the moves are independent and the distances add up.
func HexDist(v Vec) int {
	if sign(v.X) == sign(v.Y) {
		return max(abs(v.X), abs(v.Y))
	}
	return abs(v.X) + abs(v.Y)
}

// Dir6 is one of the six hex directions in the standard clockwise order
// starting from North.
type Dir6 int

const (
	North Dir6 = iota
	NorthEast
	SouthEast
	South
	SouthWest
	NorthWest
)

// dir6Vecs maps each Dir6 to its unit cell vector.
var dir6Vecs = [6]Vec{
	{-1, -1}, // North
	{0, -1},  // NorthEast
	{1, 0},   // SouthEast
	{1, 1},   // South
	{0, 1},   // SouthWest
	{-1, 0},  // NorthWest
}

// Dir6FromInt converts an integer to a hex direction using modular
// arithmetic, so -1 maps to NorthWest and 6 wraps back to North.
func Dir6FromInt(i int) Dir6 {
	return Dir6(modFloor(i, 6))
}

// Dir6FromVec converts a vector into the closest hex direction.
//
//	       *0*       *1*
//	          \ 14 15 | 00 01
//	          13\     |      02
//	              \   |
//	        12      \ |        03
//	    *5* ----------O-X------- *2*
//	        11        Y \      04
//	                  |   \
//	          10      |     \05
//	            09 08 | 07 06 \
//	                 *4*       *3*
//
// The vector is rounded to one of the sixteen hexadecants around the
// origin, then assigned the hex direction whose vector is nearest.
func Dir6FromVec(v Vec) Dir6 {
	width := math.Pi / 8.0
	radian := math.Atan2(float64(v.X), float64(-v.Y))
	if radian < 0 {
		radian += 2 * math.Pi
	}
	hexadecant := int(math.Floor(radian / width))

	switch hexadecant {
	case 13, 14:
		return North
	case 15, 0, 1:
		return NorthEast
	case 2, 3, 4:
		return SouthEast
	case 5, 6:
		return South
	case 7, 8, 9:
		return SouthWest
	default:
		return NorthWest
	}
}

// Vec returns the unit cell vector for the direction.
func (d Dir6) Vec() Vec {
	return dir6Vecs[modFloor(int(d), 6)]
}

// Turn returns the direction rotated clockwise by steps, which may be
// negative.
func (d Dir6) Turn(steps int) Dir6 {
	return Dir6FromInt(int(d) + steps)
}

// Dirs6 returns the six hex directions in the standard order.
func Dirs6() [6]Dir6 {
	return [6]Dir6{North, NorthEast, SouthEast, South, SouthWest, NorthWest}
}

// modFloor is the Euclidean remainder, always in [0, m) for positive m.
func modFloor(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

func sign(a int) int {
	switch {
	case a < 0:
		return -1
	case a > 0:
		return 1
	default:
		return 0
	}
}
