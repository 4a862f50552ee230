package game

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lanecrosser.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
min_tile_index: -6
max_tile_index: 6
step_duration: 150ms
collision_cooldown: 750ms
player_hitbox:
  w: 10
  h: 11
seed: 99
debug: true
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, -6, cfg.MinTileIndex)
	assert.Equal(t, 6, cfg.MaxTileIndex)
	assert.Equal(t, 150*time.Millisecond, cfg.StepDuration)
	assert.Equal(t, 750*time.Millisecond, cfg.CollisionCooldown)
	assert.Equal(t, Size{W: 10, H: 11}, cfg.PlayerHitbox)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.True(t, cfg.Debug)

	// Untouched keys keep their defaults
	def := DefaultConfig()
	assert.Equal(t, def.TileSize, cfg.TileSize)
	assert.Equal(t, def.VehicleHitbox, cfg.VehicleHitbox)
	assert.Equal(t, def.RowChangeGrace, cfg.RowChangeGrace)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read config")

	_, err = LoadConfig(writeConfig(t, "tile_size: [1, 2"))
	assert.ErrorContains(t, err, "parse config")

	_, err = LoadConfig(writeConfig(t, "min_tile_index: -2\nmax_tile_index: 2\n"))
	assert.ErrorContains(t, err, "at least 9 tiles wide")

	// A bare number decodes as nanoseconds
	_, err = LoadConfig(writeConfig(t, "step_duration: 200\n"))
	assert.ErrorContains(t, err, "step_duration must be at least 1ms")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
		want   string
	}{
		{"sub-millisecond step", func(c *GameConfig) { c.StepDuration = 200 * time.Nanosecond }, "step_duration"},
		{"zero tile size", func(c *GameConfig) { c.TileSize = 0 }, "tile_size"},
		{"origin off board", func(c *GameConfig) { c.MinTileIndex, c.MaxTileIndex = 1, 12 }, "origin"},
		{"refill beyond batch", func(c *GameConfig) { c.RefillThreshold = c.InitialLanes }, "refill_threshold"},
		{"no tick rate", func(c *GameConfig) { c.TickRate = 0 }, "tick_rate"},
		{"flat hitbox", func(c *GameConfig) { c.VehicleHitbox.H = 0 }, "vehicle_hitbox"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.want)
		})
	}
}
