// Package game implements the demo: wander a generated or loaded hex map
// and watch the field of view update, with remembered terrain dimmed and
// portals reframing the view when sight crosses them.
package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"chosenoffset.com/hexfield/config"
	"chosenoffset.com/hexfield/hexgrid"
	"chosenoffset.com/hexfield/maploader"
	"chosenoffset.com/hexfield/mapgen"
	"chosenoffset.com/hexfield/world"
)

// moveKeys maps the QWE/ASD hexagon onto the six hex directions as they
// appear on screen: W straight up, Q/E the upper diagonals, A/D the lower
// ones, S straight down.
var moveKeys = map[ebiten.Key]hexgrid.Dir6{
	ebiten.KeyW: hexgrid.North,
	ebiten.KeyE: hexgrid.NorthEast,
	ebiten.KeyD: hexgrid.SouthEast,
	ebiten.KeyS: hexgrid.South,
	ebiten.KeyA: hexgrid.SouthWest,
	ebiten.KeyQ: hexgrid.NorthWest,
}

// Game is the ebiten game state for the demo.
type Game struct {
	cfg    *config.Config
	world  *world.World
	player world.Location
	memory *world.MapMemory

	screenWidth  int
	screenHeight int

	// whiteImg is the 1x1 source image for flat-colored triangles,
	// created lazily on first draw.
	whiteImg *ebiten.Image
}

// New builds the demo world from the configuration: a JSON map when a
// path is configured, a generated cave level otherwise.
func New(cfg *config.Config) (*Game, error) {
	var (
		w     *world.World
		spawn world.Location
	)

	if cfg.Game.MapPath != "" {
		mapData, err := maploader.Load(cfg.Game.MapPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load map: %w", err)
		}
		w, spawn = mapData.Build()
	} else {
		lvl := mapgen.New(cfg.Game.Seed).CaveLevel(cfg.Game.MapWidth, cfg.Game.MapHeight)
		w, spawn = lvl.World, lvl.Spawn
	}

	g := &Game{
		cfg:          cfg,
		world:        w,
		player:       spawn,
		memory:       world.NewMapMemory(),
		screenWidth:  cfg.Window.Width,
		screenHeight: cfg.Window.Height,
	}
	g.memory.UpdateIsometric(g.world, g.player, cfg.Game.SightRange)
	return g, nil
}

// Update handles one input tick. Movement is one cell per key press.
func (g *Game) Update() error {
	for key, dir := range moveKeys {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		g.tryMove(dir)
		break
	}
	return nil
}

// tryMove steps the player one cell in dir, falling through visible
// portals the same way sight does.
func (g *Game) tryMove(dir hexgrid.Dir6) {
	target := g.player.Add(dir.Vec())

	if p, ok := g.world.VisiblePortal(target); ok {
		target = p.Dest
	}
	if !g.world.Terrain(target).Walkable() {
		return
	}

	g.player = target
	g.memory.UpdateIsometric(g.world, g.player, g.cfg.Game.SightRange)
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenWidth, g.screenHeight
}
