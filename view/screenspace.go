// Package view holds the rendering-side consumer of the field-of-view
// sweep: cell/screen projection and a portal-aware sweep value that culls
// to the visible screen rectangle while tracking the coordinate frames
// crossed on the way.
package view

import (
	"image"
	"math"

	"chosenoffset.com/hexfield/hexgrid"
)

// PixelUnit is half the on-screen width of one hex cell in pixels.
const PixelUnit = 16

// CellToScreen projects a cell offset into screen pixel coordinates.
//
//	| a  -a  |
//	| a/2 a/2|
func CellToScreen(v hexgrid.Vec) image.Point {
	a := PixelUnit
	return image.Point{
		X: v.X*a - v.Y*a,
		Y: v.X*a/2 + v.Y*a/2,
	}
}

// ScreenToCell maps screen pixel coordinates back to the cell offset that
// contains them. This is not the matrix inverse of CellToScreen: the
// naive inverse selects cells as if the screen showed a true isometric
// grid, which feels off when aiming with the mouse, so the cell is picked
// with a square-ish bucketing instead.
func ScreenToCell(p image.Point) hexgrid.Vec {
	c := float64(PixelUnit) / 2
	column := math.Floor((float64(p.X) + c) / (c * 2))
	row := math.Floor((float64(p.Y) - column*c) / (c * 2))
	return hexgrid.Vec{X: int(column + row), Y: int(row)}
}
