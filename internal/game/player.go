package game

import (
	"time"
)

// Player is the settled grid position plus the queue of pending moves.
// The head of Queue is the move currently animating.
type Player struct {
	Row   int
	Tile  int
	Queue []Direction

	// LastRowChange is when the player last committed a move to a new row.
	LastRowChange time.Time

	stepStart time.Time // zero while no step is animating
	snap      bool      // next Advance places the token without interpolating
}

// Position returns the settled position.
func (p *Player) Position() Position {
	return Position{Row: p.Row, Tile: p.Tile}
}

// Stepping reports whether a move is animating.
func (p *Player) Stepping() bool {
	return !p.stepStart.IsZero() && len(p.Queue) > 0
}

// Motion advances the player one queued move at a time.
type Motion struct {
	cfg       GameConfig
	player    *Player
	validator *Validator
	score     *Score
	lanes     *Map
}

// NewMotion wires the player state machine to its collaborators.
func NewMotion(cfg GameConfig, p *Player, v *Validator, s *Score, m *Map) *Motion {
	return &Motion{
		cfg:       cfg,
		player:    p,
		validator: v,
		score:     s,
		lanes:     m,
	}
}

// QueueMove appends dir when the whole resulting sequence lands somewhere
// valid. Rejected moves are dropped silently.
func (m *Motion) QueueMove(dir Direction, elapsed time.Duration) {
	p := m.player

	moves := make([]Direction, len(p.Queue), len(p.Queue)+1)
	copy(moves, p.Queue)
	moves = append(moves, dir)

	if !m.validator.IsValid(p.Position(), moves, elapsed) {
		return
	}
	p.Queue = append(p.Queue, dir)
}

// Advance moves the in-flight step forward to now and commits every step
// whose duration has passed. Queued steps follow each other back to back on
// the wall clock, so one late frame may commit several of them.
func (m *Motion) Advance(now time.Time) {
	p := m.player

	if p.snap {
		p.snap = false
		p.stepStart = time.Time{}
		return
	}
	if len(p.Queue) == 0 {
		return
	}

	if p.stepStart.IsZero() {
		p.stepStart = now
	}
	for len(p.Queue) > 0 && m.Progress(now) >= 1 {
		m.stepCompleted()
	}
}

// Progress returns how far the in-flight step is, in [0, 1].
func (m *Motion) Progress(now time.Time) float64 {
	p := m.player
	if p.stepStart.IsZero() || len(p.Queue) == 0 {
		return 0
	}
	return min(1, float64(now.Sub(p.stepStart))/float64(m.cfg.StepDuration))
}

// WorldPosition returns the continuous position of the player's centre,
// interpolated between the settled tile and the target of the in-flight move.
func (m *Motion) WorldPosition(now time.Time) (x, y float64) {
	p := m.player
	from := p.Position()
	x, y = TileCenter(m.cfg, from.Tile), TileCenter(m.cfg, from.Row)
	if !p.Stepping() {
		return x, y
	}

	to := from.Step(p.Queue[0])
	t := m.Progress(now)
	x = lerp(x, TileCenter(m.cfg, to.Tile), t)
	y = lerp(y, TileCenter(m.cfg, to.Row), t)
	return x, y
}

// stepCompleted commits the head of the queue at the moment its step ended.
// The next queued move, if any, starts at that same moment.
func (m *Motion) stepCompleted() {
	p := m.player
	end := p.stepStart.Add(m.cfg.StepDuration)
	dir := p.Queue[0]
	p.Queue = p.Queue[1:]
	if len(p.Queue) > 0 {
		p.stepStart = end
	} else {
		p.stepStart = time.Time{}
	}

	next := p.Position().Step(dir)
	if next.Row != p.Row {
		p.LastRowChange = end
	}
	p.Row, p.Tile = next.Row, next.Tile

	if dir == DirForward {
		m.score.UpdateMaxRow(p.Row)
	}

	if p.Row >= m.lanes.Len()-m.cfg.RefillThreshold {
		m.lanes.Extend(m.cfg.LanesPerBatch)
	}
}

// ForceReset puts the player back on the origin with an empty queue. The
// next Advance snaps into place instead of animating.
func (m *Motion) ForceReset() {
	p := m.player
	p.Row, p.Tile = 0, 0
	p.Queue = nil
	p.LastRowChange = time.Time{}
	p.stepStart = time.Time{}
	p.snap = true
}

// clearQueue drops every pending move, including the one in flight.
func (m *Motion) clearQueue() {
	m.player.Queue = nil
	m.player.stepStart = time.Time{}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
