package game

import (
	"log"
	"time"
)

// DebugVehicle is one vehicle hitbox captured by the collision monitor.
type DebugVehicle struct {
	InitialTileIndex int
	Box              Box
	Colliding        bool
}

// DebugFrame is the set of hitboxes tested during one check.
type DebugFrame struct {
	Row      int
	Player   Box
	Vehicles []DebugVehicle
}

// CollisionMonitor is the per-frame safety net that ends the run when the
// player and a vehicle overlap for real. It is deliberately forgiving: small
// hitboxes, a minimum overlap, a cooldown and a grace window after entering
// a new row.
type CollisionMonitor struct {
	cfg     GameConfig
	player  *Player
	motion  *Motion
	lanes   *Map
	session *Session

	origin        time.Time // elapsed-time origin for vehicle positions
	lastCollision time.Time

	// Debug records a DebugFrame per check and logs hitbox details.
	Debug     bool
	frame     *DebugFrame
	lastSeen  Position
	seenValid bool
}

// NewCollisionMonitor creates a monitor whose clock starts at now.
func NewCollisionMonitor(cfg GameConfig, p *Player, motion *Motion, m *Map, s *Session, now time.Time) *CollisionMonitor {
	return &CollisionMonitor{
		cfg:     cfg,
		player:  p,
		motion:  motion,
		lanes:   m,
		session: s,
		origin:  now,
		Debug:   cfg.Debug,
	}
}

// Reset restarts the elapsed-time origin and forgets the last collision.
func (c *CollisionMonitor) Reset(now time.Time) {
	c.origin = now
	c.lastCollision = time.Time{}
	c.frame = nil
	c.seenValid = false
}

// Elapsed returns the time since the session origin.
func (c *CollisionMonitor) Elapsed(now time.Time) time.Duration {
	return now.Sub(c.origin)
}

// LastFrame returns the hitboxes from the latest check when Debug is on.
func (c *CollisionMonitor) LastFrame() *DebugFrame {
	return c.frame
}

// Check tests the player against every vehicle in its current row and
// reports whether a collision was registered. It runs on every frame,
// whatever the screen, but only registers collisions while playing.
func (c *CollisionMonitor) Check(now time.Time) bool {
	c.frame = nil
	p := c.player

	// Safe strip: nothing moves there
	if p.Row <= 0 {
		return false
	}
	lane, ok := c.lanes.Lane(p.Row)
	if !ok || lane.Kind != LaneTraffic {
		return false
	}

	px, py := c.motion.WorldPosition(now)
	playerBox := BoxAround(px, py, c.cfg.PlayerHitbox)
	if c.Debug {
		c.logPosition(px, py)
		c.frame = &DebugFrame{Row: p.Row, Player: playerBox}
	}

	elapsed := c.Elapsed(now)
	rowY := TileCenter(c.cfg, p.Row)

	for _, v := range lane.Vehicles {
		vx := VehicleX(c.cfg, lane, v, elapsed)
		vehicleBox := BoxAround(vx, rowY, c.cfg.VehicleHitbox)

		hit := playerBox.Intersects(vehicleBox) || vehicleBox.Contains(px, py)
		if c.frame != nil {
			c.frame.Vehicles = append(c.frame.Vehicles, DebugVehicle{
				InitialTileIndex: v.InitialTileIndex,
				Box:              vehicleBox,
				Colliding:        hit,
			})
		}
		if !hit {
			continue
		}

		dx, dy := playerBox.Overlap(vehicleBox)
		if c.Debug {
			log.Printf("[COLLISION] Contact with vehicle from tile %d: overlap x=%.1f y=%.1f",
				v.InitialTileIndex, dx, dy)
		}

		if !c.shouldRegister(now, dx, dy) {
			continue
		}

		c.lastCollision = now
		c.motion.clearQueue()
		log.Printf("[COLLISION] Hit at row %d tile %d by vehicle from tile %d after %s",
			p.Row, p.Tile, v.InitialTileIndex, elapsed.Round(time.Millisecond))
		c.session.Crash()
		return true
	}
	return false
}

// shouldRegister applies the screen, cooldown, grace and overlap filters.
func (c *CollisionMonitor) shouldRegister(now time.Time, dx, dy float64) bool {
	if c.session.Screen() != ScreenPlaying {
		return false
	}
	if !c.lastCollision.IsZero() && now.Sub(c.lastCollision) <= c.cfg.CollisionCooldown {
		return false
	}
	if !c.player.LastRowChange.IsZero() && now.Sub(c.player.LastRowChange) < c.cfg.RowChangeGrace {
		return false
	}
	return dx > c.cfg.MinOverlapX && dy > c.cfg.MinOverlapY
}

func (c *CollisionMonitor) logPosition(x, y float64) {
	pos := c.player.Position()
	if c.seenValid && pos == c.lastSeen {
		return
	}
	c.lastSeen, c.seenValid = pos, true
	log.Printf("[COLLISION] Player at tile=%d row=%d x=%.1f y=%.1f", pos.Tile, pos.Row, x, y)
}
