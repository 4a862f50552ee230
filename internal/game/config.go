package game

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Size is a width/height pair in world units.
type Size struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// GameConfig holds the board geometry and timing constants for a session.
type GameConfig struct {
	TileSize     float64 `yaml:"tile_size"`
	MinTileIndex int     `yaml:"min_tile_index"`
	MaxTileIndex int     `yaml:"max_tile_index"`

	InitialLanes    int `yaml:"initial_lanes"`
	LanesPerBatch   int `yaml:"lanes_per_batch"`
	RefillThreshold int `yaml:"refill_threshold"` // rows before the end that trigger generation

	// Durations take a unit suffix ("200ms"); a bare number is nanoseconds.
	StepDuration time.Duration `yaml:"step_duration"`
	TickRate     int           `yaml:"tick_rate"` // Ticks per second

	CollisionCooldown time.Duration `yaml:"collision_cooldown"`
	RowChangeGrace    time.Duration `yaml:"row_change_grace"`
	MinOverlapX       float64       `yaml:"min_overlap_x"`
	MinOverlapY       float64       `yaml:"min_overlap_y"`

	// Hitboxes used by the per-frame collision monitor.
	PlayerHitbox  Size `yaml:"player_hitbox"`
	VehicleHitbox Size `yaml:"vehicle_hitbox"`

	// Hitboxes used when admitting a queued move.
	ValidatorPlayerHitbox  Size `yaml:"validator_player_hitbox"`
	ValidatorVehicleHitbox Size `yaml:"validator_vehicle_hitbox"`

	Seed  int64 `yaml:"seed"` // 0 picks a time-based seed
	Debug bool  `yaml:"debug"`
}

// DefaultConfig returns the stock board and timing constants.
func DefaultConfig() GameConfig {
	return GameConfig{
		TileSize:               42,
		MinTileIndex:           -8,
		MaxTileIndex:           8,
		InitialLanes:           20,
		LanesPerBatch:          20,
		RefillThreshold:        10,
		StepDuration:           200 * time.Millisecond,
		TickRate:               60,
		CollisionCooldown:      500 * time.Millisecond,
		RowChangeGrace:         150 * time.Millisecond,
		MinOverlapX:            10,
		MinOverlapY:            7,
		PlayerHitbox:           Size{W: 12, H: 12},
		VehicleHitbox:          Size{W: 40, H: 25},
		ValidatorPlayerHitbox:  Size{W: 13, H: 13},
		ValidatorVehicleHitbox: Size{W: 65, H: 35},
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig. Keys missing from the
// file keep their default values.
func LoadConfig(path string) (GameConfig, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

const (
	// minLaneWidth fits three vehicles with their exclusion zones.
	minLaneWidth = vehiclesPerLane * 3

	minStepDuration = time.Millisecond
)

// Validate checks that the configuration describes a playable board.
func (c GameConfig) Validate() error {
	var errs []error
	if c.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("tile_size must be positive, got %v", c.TileSize))
	}
	if width := c.MaxTileIndex - c.MinTileIndex + 1; width < minLaneWidth {
		errs = append(errs, fmt.Errorf("board must be at least %d tiles wide, got %d", minLaneWidth, width))
	}
	if c.MinTileIndex > 0 || c.MaxTileIndex < 0 {
		errs = append(errs, fmt.Errorf("tile range [%d,%d] must contain the origin", c.MinTileIndex, c.MaxTileIndex))
	}
	if c.LanesPerBatch < 1 {
		errs = append(errs, fmt.Errorf("lanes_per_batch must be at least 1"))
	}
	if c.RefillThreshold < 1 || c.InitialLanes <= c.RefillThreshold {
		errs = append(errs, fmt.Errorf("initial_lanes (%d) must exceed refill_threshold (%d) and the threshold must be positive",
			c.InitialLanes, c.RefillThreshold))
	}
	if c.StepDuration < minStepDuration {
		errs = append(errs, fmt.Errorf("step_duration must be at least %s, got %s (missing unit suffix?)",
			minStepDuration, c.StepDuration))
	}
	if c.TickRate < 1 {
		errs = append(errs, fmt.Errorf("tick_rate must be at least 1"))
	}
	if c.CollisionCooldown < 0 || c.RowChangeGrace < 0 {
		errs = append(errs, fmt.Errorf("collision windows must not be negative"))
	}
	for name, s := range map[string]Size{
		"player_hitbox":            c.PlayerHitbox,
		"vehicle_hitbox":           c.VehicleHitbox,
		"validator_player_hitbox":  c.ValidatorPlayerHitbox,
		"validator_vehicle_hitbox": c.ValidatorVehicleHitbox,
	} {
		if s.W <= 0 || s.H <= 0 {
			errs = append(errs, fmt.Errorf("%s must have positive extents", name))
		}
	}
	return errors.Join(errs...)
}
