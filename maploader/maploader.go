// Package maploader loads hex map definitions from JSON files. A map file
// names its terrain with a glyph legend and lays the cells out as row
// strings, plus optional portals and a player spawn cell.
package maploader

import (
	"encoding/json"
	"fmt"
	"os"

	"chosenoffset.com/hexfield/world"
)

// PortalData defines a portal placement in a map file.
type PortalData struct {
	X      int  `json:"x"`
	Y      int  `json:"y"`
	DestX  int  `json:"dest_x"`
	DestY  int  `json:"dest_y"`
	DestZ  int  `json:"dest_z"`
	Border bool `json:"border,omitempty"`
}

// SpawnPoint defines the player start cell.
type SpawnPoint struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// MapData represents the loaded map configuration.
type MapData struct {
	Name        string            `json:"name"`
	Width       int               `json:"width"`
	Height      int               `json:"height"`
	Legend      map[string]string `json:"legend"` // glyph -> terrain name
	Rows        []string          `json:"rows"`   // row strings [y][x]
	Portals     []PortalData      `json:"portals,omitempty"`
	PlayerSpawn SpawnPoint        `json:"player_spawn"`
}

// terrainNames maps the terrain names used in map files to terrain kinds.
var terrainNames = map[string]world.Terrain{
	"void":  world.TerrainVoid,
	"floor": world.TerrainFloor,
	"wall":  world.TerrainWall,
	"rock":  world.TerrainRock,
	"door":  world.TerrainDoor,
	"water": world.TerrainWater,
}

// Load reads and validates a map from a JSON file.
func Load(mapPath string) (*MapData, error) {
	data, err := os.ReadFile(mapPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file %s: %w", mapPath, err)
	}

	mapData, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("map file %s: %w", mapPath, err)
	}

	return mapData, nil
}

// Parse validates a map from raw JSON bytes.
func Parse(data []byte) (*MapData, error) {
	var mapData MapData
	if err := json.Unmarshal(data, &mapData); err != nil {
		return nil, fmt.Errorf("failed to parse map data: %w", err)
	}
	if err := mapData.validate(); err != nil {
		return nil, fmt.Errorf("invalid map data: %w", err)
	}
	return &mapData, nil
}

// validate checks that the map data is consistent.
func (m *MapData) validate() error {
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("invalid map dimensions: %dx%d", m.Width, m.Height)
	}

	if len(m.Rows) != m.Height {
		return fmt.Errorf("expected %d rows, got %d", m.Height, len(m.Rows))
	}
	for y, row := range m.Rows {
		if len(row) != m.Width {
			return fmt.Errorf("row %d has %d cells, expected %d", y, len(row), m.Width)
		}
		for x := 0; x < len(row); x++ {
			glyph := string(row[x])
			name, ok := m.Legend[glyph]
			if !ok {
				return fmt.Errorf("row %d cell %d: glyph %q not in legend", y, x, glyph)
			}
			if _, ok := terrainNames[name]; !ok {
				return fmt.Errorf("legend glyph %q names unknown terrain %q", glyph, name)
			}
		}
	}

	for i, p := range m.Portals {
		if p.X < 0 || p.X >= m.Width || p.Y < 0 || p.Y >= m.Height {
			return fmt.Errorf("portal %d at (%d,%d) is outside the map", i, p.X, p.Y)
		}
	}

	if m.PlayerSpawn.X < 0 || m.PlayerSpawn.X >= m.Width ||
		m.PlayerSpawn.Y < 0 || m.PlayerSpawn.Y >= m.Height {
		return fmt.Errorf("player spawn (%d,%d) is outside the map",
			m.PlayerSpawn.X, m.PlayerSpawn.Y)
	}

	return nil
}

// Build populates a new world with the map's terrain and portals and
// returns it together with the player spawn location. Map cell (x,y)
// becomes the world location (x,y) on level 0.
func (m *MapData) Build() (*world.World, world.Location) {
	w := world.New()

	for y, row := range m.Rows {
		for x := 0; x < len(row); x++ {
			name := m.Legend[string(row[x])]
			w.SetTerrain(world.Location{X: x, Y: y}, terrainNames[name])
		}
	}

	for _, p := range m.Portals {
		w.SetPortal(world.Location{X: p.X, Y: p.Y}, world.Portal{
			Dest:   world.Location{X: p.DestX, Y: p.DestY, Z: p.DestZ},
			Border: p.Border,
		})
	}

	return w, world.Location{X: m.PlayerSpawn.X, Y: m.PlayerSpawn.Y}
}
