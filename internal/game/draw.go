package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chosenoffset.com/hexfield/view"
	"chosenoffset.com/hexfield/world"
)

// Cell fill colors per terrain kind.
var terrainColors = map[world.Terrain]color.RGBA{
	world.TerrainFloor: {R: 0x60, G: 0x58, B: 0x48, A: 0xff},
	world.TerrainWall:  {R: 0xb0, G: 0xa8, B: 0x90, A: 0xff},
	world.TerrainRock:  {R: 0x8a, G: 0x80, B: 0x70, A: 0xff},
	world.TerrainDoor:  {R: 0xa0, G: 0x70, B: 0x40, A: 0xff},
	world.TerrainWater: {R: 0x30, G: 0x50, B: 0x90, A: 0xff},
	world.TerrainVoid:  {R: 0x20, G: 0x10, B: 0x30, A: 0xff},
}

var playerColor = color.RGBA{R: 0xf0, G: 0xd0, B: 0x40, A: 0xff}

// Draw renders the world around the player. Every on-screen cell is
// resolved through the portal-aware screen sweep, then shaded by the
// player's map memory: seen cells bright, remembered cells dim, unknown
// cells left black.
func (g *Game) Draw(screen *ebiten.Image) {
	halfW, halfH := g.screenWidth/2, g.screenHeight/2
	area := image.Rect(-halfW, -halfH, halfW, halfH)

	field := view.ScreenVisibility(g.world, g.player, area)

	for offset, origins := range field {
		loc := origins[0].Add(offset)
		status, known := g.memory.Status(loc)
		if !known {
			continue
		}

		c, ok := terrainColors[g.world.Terrain(loc)]
		if !ok {
			continue
		}
		if status == world.Remembered {
			c = dim(c)
		}

		p := view.CellToScreen(offset)
		g.drawCell(screen, float32(p.X+halfW), float32(p.Y+halfH), c)
	}

	// Player marker at the center of the screen.
	vector.DrawFilledCircle(screen,
		float32(halfW), float32(halfH), view.PixelUnit/2, playerColor, true)

	ebitenutil.DebugPrint(screen, "QWE/ASD to move")
}

// drawCell fills the diamond footprint of one hex cell centered on
// (x, y) in screen pixels.
func (g *Game) drawCell(dst *ebiten.Image, x, y float32, c color.RGBA) {
	const a = view.PixelUnit

	path := vector.Path{}
	path.MoveTo(x, y-a/2)
	path.LineTo(x+a, y)
	path.LineTo(x, y+a/2)
	path.LineTo(x-a, y)
	path.Close()

	vertexes, indexes := path.AppendVerticesAndIndicesForFilling(nil, nil)

	if g.whiteImg == nil {
		g.whiteImg = ebiten.NewImage(1, 1)
		g.whiteImg.Fill(color.White)
	}

	for i := range vertexes {
		vertexes[i].SrcX = 0
		vertexes[i].SrcY = 0
		vertexes[i].ColorR = float32(c.R) / 255
		vertexes[i].ColorG = float32(c.G) / 255
		vertexes[i].ColorB = float32(c.B) / 255
		vertexes[i].ColorA = float32(c.A) / 255
	}

	dst.DrawTriangles(vertexes, indexes, g.whiteImg, &ebiten.DrawTrianglesOptions{})
}

// dim darkens a color for remembered-but-unseen cells.
func dim(c color.RGBA) color.RGBA {
	return color.RGBA{R: c.R / 3, G: c.G / 3, B: c.B / 3, A: c.A}
}
