package game

import (
	"math"
	"time"
)

// mod is the mathematical modulo: the result is always in [0, m).
func mod(n, m float64) float64 {
	r := math.Mod(math.Mod(n, m)+m, m)
	if r >= m {
		return 0
	}
	return r
}

// TileCenter returns the world coordinate of the centre of a tile or row.
func TileCenter(cfg GameConfig, index int) float64 {
	return float64(index)*cfg.TileSize + cfg.TileSize/2
}

// RowBounds returns the x extent vehicles travel along. It reaches two tiles
// past the playable edge on each side so vehicles visibly enter and leave.
func RowBounds(cfg GameConfig) (begin, end float64) {
	begin = TileCenter(cfg, cfg.MinTileIndex-2)
	end = TileCenter(cfg, cfg.MaxTileIndex+2)
	return begin, end
}

// VehicleX returns the current x position of a vehicle in a traffic lane.
// It depends only on its arguments, so the validator and the collision
// monitor see identical positions for the same elapsed time.
func VehicleX(cfg GameConfig, lane *Lane, v Vehicle, elapsed time.Duration) float64 {
	begin, end := RowBounds(cfg)
	span := end - begin

	baseOffset := TileCenter(cfg, v.InitialTileIndex) - begin
	speedPerMs := lane.Speed / 1000
	travelled := float64(elapsed) / float64(time.Millisecond) * speedPerMs
	if !lane.Direction {
		travelled = -travelled
	}

	return begin + mod(baseOffset+travelled, span)
}

// VehiclePositions returns the x position of every vehicle in lane, in lane order.
func VehiclePositions(cfg GameConfig, lane *Lane, elapsed time.Duration) []float64 {
	xs := make([]float64, len(lane.Vehicles))
	for i, v := range lane.Vehicles {
		xs[i] = VehicleX(cfg, lane, v, elapsed)
	}
	return xs
}
