package game

import (
	"io"
	"log"
	"os"
	"testing"
	"time"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

// fixedGenerator repeats the same lane pattern and counts calls.
type fixedGenerator struct {
	pattern []Lane
	calls   int
}

func (g *fixedGenerator) Generate(count int) []Lane {
	g.calls++
	lanes := make([]Lane, count)
	for i := range lanes {
		lanes[i] = g.pattern[i%len(g.pattern)]
	}
	return lanes
}

// openForest is a forest lane whose trees sit away from the centre tiles.
func openForest() Lane {
	return Lane{Kind: LaneForest, Trees: []Tree{{TileIndex: 7, Height: TreeTall}}}
}

// slowTraffic is a traffic lane whose only vehicle starts on tile.
func slowTraffic(tile int) Lane {
	return Lane{
		Kind:      LaneTraffic,
		Direction: true,
		Speed:     1,
		Vehicles:  []Vehicle{{InitialTileIndex: tile, Color: "#a52523"}},
	}
}

var t0 = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

// newTestEngine builds an engine over fixed lanes with the clock pinned to t0.
func newTestEngine(lanes ...Lane) *Engine {
	if len(lanes) == 0 {
		lanes = []Lane{openForest()}
	}
	e := NewEngine(DefaultConfig(), &fixedGenerator{pattern: lanes})
	e.clock = func() time.Time { return t0 }
	e.monitor.Reset(t0)
	return e
}

// completeStep queues dir and runs the motion until the step commits.
// It returns the time the step finished.
func completeStep(e *Engine, dir Direction, now time.Time) time.Time {
	e.motion.QueueMove(dir, e.monitor.Elapsed(now))
	e.motion.Advance(now)
	done := now.Add(e.Config.StepDuration)
	e.motion.Advance(done)
	return done
}
