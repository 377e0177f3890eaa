package maploader

import (
	"testing"

	"chosenoffset.com/hexfield/world"
)

const testMap = `{
	"name": "test_arena",
	"width": 5,
	"height": 3,
	"legend": {
		"#": "wall",
		".": "floor",
		"+": "door",
		"_": "void"
	},
	"rows": [
		"#####",
		"#._+#",
		"#####"
	],
	"portals": [
		{"x": 2, "y": 1, "dest_x": 40, "dest_y": 40, "dest_z": 1}
	],
	"player_spawn": {"x": 1, "y": 1}
}`

func TestParseAndBuild(t *testing.T) {
	m, err := Parse([]byte(testMap))
	if err != nil {
		t.Fatalf("Failed to parse map: %v", err)
	}

	if m.Name != "test_arena" {
		t.Errorf("Expected name 'test_arena', got '%s'", m.Name)
	}
	if m.Width != 5 || m.Height != 3 {
		t.Errorf("Expected 5x3 map, got %dx%d", m.Width, m.Height)
	}

	w, spawn := m.Build()

	if spawn != (world.Location{X: 1, Y: 1}) {
		t.Errorf("Expected spawn at (1,1), got %v", spawn)
	}
	if got := w.Terrain(world.Location{X: 0, Y: 0}); got != world.TerrainWall {
		t.Errorf("Expected wall at (0,0), got %v", got)
	}
	if got := w.Terrain(world.Location{X: 1, Y: 1}); got != world.TerrainFloor {
		t.Errorf("Expected floor at (1,1), got %v", got)
	}
	if got := w.Terrain(world.Location{X: 3, Y: 1}); got != world.TerrainDoor {
		t.Errorf("Expected door at (3,1), got %v", got)
	}

	p, ok := w.Portal(world.Location{X: 2, Y: 1})
	if !ok {
		t.Fatal("Expected portal at (2,1)")
	}
	if p.Dest != (world.Location{X: 40, Y: 40, Z: 1}) {
		t.Errorf("Expected portal dest (40,40,1), got %v", p.Dest)
	}

	// The portal cell is void, so sight falls through it.
	if _, ok := w.VisiblePortal(world.Location{X: 2, Y: 1}); !ok {
		t.Error("Expected the void-covered portal to be visible")
	}
}

func TestParseRejectsBadMaps(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"not json", `{`},
		{"zero size", `{"width": 0, "height": 0, "legend": {}, "rows": []}`},
		{"row count mismatch", `{"width": 2, "height": 2, "legend": {".": "floor"}, "rows": [".."], "player_spawn": {"x": 0, "y": 0}}`},
		{"row width mismatch", `{"width": 2, "height": 1, "legend": {".": "floor"}, "rows": ["..."], "player_spawn": {"x": 0, "y": 0}}`},
		{"unknown glyph", `{"width": 2, "height": 1, "legend": {".": "floor"}, "rows": [".?"], "player_spawn": {"x": 0, "y": 0}}`},
		{"unknown terrain", `{"width": 1, "height": 1, "legend": {".": "lava"}, "rows": ["."], "player_spawn": {"x": 0, "y": 0}}`},
		{"portal outside map", `{"width": 1, "height": 1, "legend": {".": "floor"}, "rows": ["."], "portals": [{"x": 5, "y": 0}], "player_spawn": {"x": 0, "y": 0}}`},
		{"spawn outside map", `{"width": 1, "height": 1, "legend": {".": "floor"}, "rows": ["."], "player_spawn": {"x": 3, "y": 0}}`},
	}

	for _, c := range cases {
		if _, err := Parse([]byte(c.data)); err == nil {
			t.Errorf("%s: expected an error", c.name)
		}
	}
}
