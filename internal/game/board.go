package game

import (
	"log"
	"math/rand"
)

const vehiclesPerLane = 3

var (
	treeHeights   = []TreeHeight{TreeShort, TreeMedium, TreeTall}
	laneSpeeds    = []float64{125, 156, 188}
	vehicleColors = []VehicleColor{"#a52523", "#bdb638", "#78b14b"}
)

// Generator produces lane descriptors. Calling Generate again must never
// affect lanes returned by earlier calls.
type Generator interface {
	Generate(count int) []Lane
}

// RandomGenerator builds forest and traffic lanes from a seeded source.
//
// Layout rules:
//   - Lane kind is picked uniformly
//   - Forests get 3-5 trees on distinct tiles
//   - Traffic lanes get three vehicles, each reserving its own tile and the
//     two neighbours so hulls never overlap at t=0
type RandomGenerator struct {
	cfg GameConfig
	rng *rand.Rand
}

// NewRandomGenerator creates a generator for the given board geometry.
func NewRandomGenerator(cfg GameConfig, seed int64) *RandomGenerator {
	return &RandomGenerator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Generate returns count freshly generated lanes.
func (g *RandomGenerator) Generate(count int) []Lane {
	lanes := make([]Lane, 0, count)
	for i := 0; i < count; i++ {
		if g.rng.Intn(2) == 0 {
			lanes = append(lanes, g.trafficLane())
		} else {
			lanes = append(lanes, g.forestLane())
		}
	}
	return lanes
}

func (g *RandomGenerator) forestLane() Lane {
	occupied := make(map[int]bool)
	treeCount := g.randInt(3, 5)
	trees := make([]Tree, 0, treeCount)

	for i := 0; i < treeCount; i++ {
		tile := g.randomFreeTile(occupied)
		occupied[tile] = true
		trees = append(trees, Tree{
			TileIndex: tile,
			Height:    treeHeights[g.rng.Intn(len(treeHeights))],
		})
	}

	return Lane{Kind: LaneForest, Trees: trees}
}

func (g *RandomGenerator) trafficLane() Lane {
	occupied := make(map[int]bool)
	vehicles := make([]Vehicle, 0, vehiclesPerLane)

	for i := 0; i < vehiclesPerLane; i++ {
		tile := g.randomFreeTile(occupied)
		// Exclusion zone: the vehicle hull spans roughly three tiles
		occupied[tile-1] = true
		occupied[tile] = true
		occupied[tile+1] = true

		vehicles = append(vehicles, Vehicle{
			InitialTileIndex: tile,
			Color:            vehicleColors[g.rng.Intn(len(vehicleColors))],
		})
	}

	return Lane{
		Kind:      LaneTraffic,
		Direction: g.rng.Intn(2) == 0,
		Speed:     laneSpeeds[g.rng.Intn(len(laneSpeeds))],
		Vehicles:  vehicles,
	}
}

// randomFreeTile draws tiles in [MinTileIndex, MaxTileIndex] until one is
// not in occupied. Validate guarantees the board is wide enough to finish.
func (g *RandomGenerator) randomFreeTile(occupied map[int]bool) int {
	for {
		tile := g.randInt(g.cfg.MinTileIndex, g.cfg.MaxTileIndex)
		if !occupied[tile] {
			return tile
		}
	}
}

// randInt returns an integer in [lo, hi].
func (g *RandomGenerator) randInt(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}

// Map is the append-only list of generated lanes.
type Map struct {
	cfg   GameConfig
	gen   Generator
	lanes []Lane
}

// NewMap creates a map holding the initial batch of lanes.
func NewMap(cfg GameConfig, gen Generator) *Map {
	m := &Map{cfg: cfg, gen: gen}
	m.Reset()
	return m
}

// Lane returns the lane for a board row. Rows at or below zero are the safe
// strip and have no lane; rows past the generated end are absent too.
func (m *Map) Lane(row int) (*Lane, bool) {
	if row < 1 || row > len(m.lanes) {
		return nil, false
	}
	return &m.lanes[row-1], true
}

// Len returns the number of generated lanes.
func (m *Map) Len() int {
	return len(m.lanes)
}

// Extend appends n newly generated lanes. Existing lanes are left untouched.
func (m *Map) Extend(n int) {
	m.lanes = append(m.lanes, m.gen.Generate(n)...)
	log.Printf("[MAP] Extended to %d lanes", len(m.lanes))
}

// Reset discards every lane and generates a fresh initial batch.
func (m *Map) Reset() {
	m.lanes = m.gen.Generate(m.cfg.InitialLanes)
}
