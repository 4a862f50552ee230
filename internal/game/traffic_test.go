package game

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowBounds(t *testing.T) {
	begin, end := RowBounds(DefaultConfig())
	assert.Equal(t, -399.0, begin)
	assert.Equal(t, 441.0, end)
}

func TestMod(t *testing.T) {
	assert.Equal(t, 20.0, mod(860, 840))
	assert.Equal(t, 760.0, mod(-80, 840))
	assert.Equal(t, 0.0, mod(-840, 840))
	assert.Equal(t, 0.0, mod(0, 840))
}

func TestVehicleXDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	lane := &Lane{Kind: LaneTraffic, Direction: false, Speed: 156, Vehicles: []Vehicle{{InitialTileIndex: 3}}}

	for _, elapsed := range []time.Duration{0, 17 * time.Millisecond, 3 * time.Second, 42 * time.Minute} {
		first := VehicleX(cfg, lane, lane.Vehicles[0], elapsed)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, VehicleX(cfg, lane, lane.Vehicles[0], elapsed))
		}
	}
}

func TestVehicleXFullCycle(t *testing.T) {
	cfg := DefaultConfig()
	lane := &Lane{Kind: LaneTraffic, Direction: true, Speed: 125, Vehicles: []Vehicle{{InitialTileIndex: 0}}}
	v := lane.Vehicles[0]

	begin, end := RowBounds(cfg)
	baseOffset := TileCenter(cfg, 0) - begin
	speedPerMs := lane.Speed / 1000
	cycle := time.Duration((end - begin) / speedPerMs * float64(time.Millisecond))
	require.Equal(t, 6720*time.Millisecond, cycle)

	assert.InDelta(t, begin+baseOffset, VehicleX(cfg, lane, v, 0), 1e-9)
	assert.InDelta(t, begin+baseOffset, VehicleX(cfg, lane, v, cycle), 1e-9)
	assert.InDelta(t, begin+baseOffset, VehicleX(cfg, lane, v, 3*cycle), 1e-9)
}

func TestVehicleXDirection(t *testing.T) {
	cfg := DefaultConfig()
	right := &Lane{Kind: LaneTraffic, Direction: true, Speed: 125, Vehicles: []Vehicle{{InitialTileIndex: 0}}}
	left := &Lane{Kind: LaneTraffic, Direction: false, Speed: 125, Vehicles: []Vehicle{{InitialTileIndex: 0}}}

	assert.InDelta(t, 146.0, VehicleX(cfg, right, right.Vehicles[0], time.Second), 1e-9)
	assert.InDelta(t, -104.0, VehicleX(cfg, left, left.Vehicles[0], time.Second), 1e-9)

	// 500 units left of tile 0 wraps past the beginning of the row
	assert.InDelta(t, 361.0, VehicleX(cfg, left, left.Vehicles[0], 4*time.Second), 1e-9)
}

func TestVehicleXWraparound(t *testing.T) {
	cfg := DefaultConfig()
	begin, end := RowBounds(cfg)
	span := end - begin
	const frame = 16 * time.Millisecond

	for _, dir := range []bool{true, false} {
		for _, speed := range laneSpeeds {
			lane := &Lane{Kind: LaneTraffic, Direction: dir, Speed: speed, Vehicles: []Vehicle{{InitialTileIndex: -8}, {InitialTileIndex: 8}}}
			maxStep := speed/1000*float64(frame/time.Millisecond) + 1e-6

			for _, v := range lane.Vehicles {
				prev := VehicleX(cfg, lane, v, 0)
				for elapsed := frame; elapsed < 15*time.Second; elapsed += frame {
					x := VehicleX(cfg, lane, v, elapsed)
					require.GreaterOrEqual(t, x, begin)
					require.Less(t, x, end)

					d := math.Abs(x - prev)
					d = math.Min(d, span-d)
					require.LessOrEqual(t, d, maxStep, "jump at %s (dir=%v speed=%v)", elapsed, dir, speed)
					prev = x
				}
			}
		}
	}
}

func TestVehiclePositions(t *testing.T) {
	cfg := DefaultConfig()
	lane := &Lane{Kind: LaneTraffic, Direction: true, Speed: 188, Vehicles: []Vehicle{{InitialTileIndex: -4}, {InitialTileIndex: 0}, {InitialTileIndex: 4}}}

	xs := VehiclePositions(cfg, lane, 2500*time.Millisecond)
	require.Len(t, xs, 3)
	for i, v := range lane.Vehicles {
		assert.Equal(t, VehicleX(cfg, lane, v, 2500*time.Millisecond), xs[i])
	}
}
