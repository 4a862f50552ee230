package game

import "time"

// FinalPosition applies every move in order starting from pos.
func FinalPosition(pos Position, moves []Direction) Position {
	for _, dir := range moves {
		pos = pos.Step(dir)
	}
	return pos
}

// Validator is the admission check run before a move is queued.
type Validator struct {
	cfg   GameConfig
	lanes *Map
}

// NewValidator creates a validator reading lanes from m.
func NewValidator(cfg GameConfig, m *Map) *Validator {
	return &Validator{cfg: cfg, lanes: m}
}

// IsValid reports whether the player, starting at pos, may end up where the
// full move sequence takes it. Movement is blocked by board edges, trees, and
// vehicles sampled at elapsed (the moment of the request, not the moment the
// step would land).
func (v *Validator) IsValid(pos Position, moves []Direction, elapsed time.Duration) bool {
	final := FinalPosition(pos, moves)

	// Edge of the board
	if final.Row <= -1 ||
		final.Tile <= v.cfg.MinTileIndex-1 ||
		final.Tile >= v.cfg.MaxTileIndex+1 {
		return false
	}

	lane, ok := v.lanes.Lane(final.Row)
	if !ok {
		return true
	}

	switch lane.Kind {
	case LaneForest:
		return !lane.HasTree(final.Tile)
	case LaneTraffic:
		return !v.vehicleAt(lane, final, elapsed)
	}
	return true
}

// vehicleAt reports whether any vehicle in lane overlaps a player standing at pos.
func (v *Validator) vehicleAt(lane *Lane, pos Position, elapsed time.Duration) bool {
	cy := TileCenter(v.cfg, pos.Row)
	playerBox := BoxAround(TileCenter(v.cfg, pos.Tile), cy, v.cfg.ValidatorPlayerHitbox)

	for _, vehicle := range lane.Vehicles {
		x := VehicleX(v.cfg, lane, vehicle, elapsed)
		if playerBox.Intersects(BoxAround(x, cy, v.cfg.ValidatorVehicleHitbox)) {
			return true
		}
	}
	return false
}
