package game

import (
	"testing"
)

func TestRandomGeneratorLanes(t *testing.T) {
	config := DefaultConfig()
	gen := NewRandomGenerator(config, 42)
	lanes := gen.Generate(500)

	if len(lanes) != 500 {
		t.Fatalf("expected 500 lanes, got %d", len(lanes))
	}

	var forests, traffic int
	for i, lane := range lanes {
		switch lane.Kind {
		case LaneForest:
			forests++
			checkForest(t, config, i, lane)
		case LaneTraffic:
			traffic++
			checkTraffic(t, config, i, lane)
		default:
			t.Errorf("lane %d has unknown kind %d", i, lane.Kind)
		}
	}

	if forests == 0 || traffic == 0 {
		t.Errorf("expected both lane kinds, got %d forests and %d traffic lanes", forests, traffic)
	}
}

func checkForest(t *testing.T, config GameConfig, i int, lane Lane) {
	t.Helper()
	if n := len(lane.Trees); n < 3 || n > 5 {
		t.Errorf("forest %d should have 3-5 trees, got %d", i, n)
	}
	seen := make(map[int]bool)
	for _, tree := range lane.Trees {
		if seen[tree.TileIndex] {
			t.Errorf("forest %d has two trees on tile %d", i, tree.TileIndex)
		}
		seen[tree.TileIndex] = true
		if tree.TileIndex < config.MinTileIndex || tree.TileIndex > config.MaxTileIndex {
			t.Errorf("forest %d tree at tile %d is off the board", i, tree.TileIndex)
		}
		switch tree.Height {
		case TreeShort, TreeMedium, TreeTall:
		default:
			t.Errorf("forest %d tree has unexpected height %d", i, tree.Height)
		}
	}
}

func checkTraffic(t *testing.T, config GameConfig, i int, lane Lane) {
	t.Helper()
	if len(lane.Vehicles) != vehiclesPerLane {
		t.Errorf("traffic lane %d should have %d vehicles, got %d", i, vehiclesPerLane, len(lane.Vehicles))
	}
	if lane.Speed != 125 && lane.Speed != 156 && lane.Speed != 188 {
		t.Errorf("traffic lane %d has unexpected speed %v", i, lane.Speed)
	}
	for a, va := range lane.Vehicles {
		if va.InitialTileIndex < config.MinTileIndex || va.InitialTileIndex > config.MaxTileIndex {
			t.Errorf("traffic lane %d vehicle at tile %d is off the board", i, va.InitialTileIndex)
		}
		// Exclusion zone: no two vehicles closer than two tiles
		for _, vb := range lane.Vehicles[a+1:] {
			d := va.InitialTileIndex - vb.InitialTileIndex
			if d < 0 {
				d = -d
			}
			if d < 2 {
				t.Errorf("traffic lane %d vehicles at tiles %d and %d overlap", i, va.InitialTileIndex, vb.InitialTileIndex)
			}
		}
	}
}

func TestRandomGeneratorSeeded(t *testing.T) {
	config := DefaultConfig()
	a := NewRandomGenerator(config, 7).Generate(30)
	b := NewRandomGenerator(config, 7).Generate(30)

	for i := range a {
		if a[i].Kind != b[i].Kind || len(a[i].Trees) != len(b[i].Trees) || len(a[i].Vehicles) != len(b[i].Vehicles) {
			t.Fatalf("lane %d differs between generators with the same seed", i)
		}
	}
}

func TestMapLaneIndexing(t *testing.T) {
	gen := &fixedGenerator{pattern: []Lane{openForest(), slowTraffic(0)}}
	m := NewMap(DefaultConfig(), gen)

	for _, row := range []int{-3, -1, 0, m.Len() + 1} {
		if _, ok := m.Lane(row); ok {
			t.Errorf("row %d should have no lane", row)
		}
	}

	// Row N is lane N-1
	if lane, ok := m.Lane(1); !ok || lane.Kind != LaneForest {
		t.Errorf("row 1 should be the first (forest) lane")
	}
	if lane, ok := m.Lane(2); !ok || lane.Kind != LaneTraffic {
		t.Errorf("row 2 should be the second (traffic) lane")
	}
	if _, ok := m.Lane(m.Len()); !ok {
		t.Errorf("last row %d should have a lane", m.Len())
	}
}

func TestMapExtendAndReset(t *testing.T) {
	config := DefaultConfig()
	m := NewMap(config, NewRandomGenerator(config, 3))
	if m.Len() != config.InitialLanes {
		t.Fatalf("expected %d initial lanes, got %d", config.InitialLanes, m.Len())
	}

	first, _ := m.Lane(1)
	kind, trees, vehicles := first.Kind, len(first.Trees), len(first.Vehicles)

	m.Extend(config.LanesPerBatch)
	if m.Len() != config.InitialLanes+config.LanesPerBatch {
		t.Fatalf("expected %d lanes after extend, got %d", config.InitialLanes+config.LanesPerBatch, m.Len())
	}
	again, _ := m.Lane(1)
	if again.Kind != kind || len(again.Trees) != trees || len(again.Vehicles) != vehicles {
		t.Error("extend must not change existing lanes")
	}

	m.Reset()
	if m.Len() != config.InitialLanes {
		t.Errorf("expected %d lanes after reset, got %d", config.InitialLanes, m.Len())
	}
}
