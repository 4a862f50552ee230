package game

import (
	"context"
	"log"
	"sync"
	"time"
)

// PlayerView is the renderer's read-only view of the player.
type PlayerView struct {
	Row      int
	Tile     int
	X, Y     float64 // continuous centre in world units
	Progress float64 // in-flight step progress, 0 when idle
	Pending  int     // queued moves including the one in flight
}

// RowView is one visible row. Lane is nil for the safe strip and for rows
// the generator has not produced yet.
type RowView struct {
	Index    int
	Lane     *Lane
	VehicleX []float64
}

// Snapshot is a copy of everything the renderer needs for one frame.
type Snapshot struct {
	SessionID     string
	Screen        Screen
	HomeSubScreen HomeSubScreen
	Crashed       bool
	Score         int
	MaxRow        int
	Player        PlayerView
	Rows          []RowView // furthest row first
	Elapsed       time.Duration
	Debug         *DebugFrame
	Config        GameConfig
}

// Engine owns the session and runs the frame loop. Only the loop goroutine
// mutates game state; input arrives through EnqueueAction and the renderer
// receives snapshots through OnTick.
type Engine struct {
	Config  GameConfig
	Player  *Player
	Session *Session
	Score   *Score
	Camera  *Camera
	Lanes   *Map

	motion    *Motion
	validator *Validator
	monitor   *CollisionMonitor

	actions  chan Action
	done     chan struct{}
	stopOnce sync.Once
	onTick   func(Snapshot) // Callback after each tick with a copy of the state
	clock    func() time.Time
}

// NewEngine creates an engine. A nil generator means a RandomGenerator
// seeded from config.Seed, or from the clock when the seed is zero.
func NewEngine(config GameConfig, gen Generator) *Engine {
	if gen == nil {
		seed := config.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		gen = NewRandomGenerator(config, seed)
	}

	now := time.Now()
	player := &Player{}
	lanes := NewMap(config, gen)
	score := NewScore()
	session := NewSession()
	validator := NewValidator(config, lanes)
	motion := NewMotion(config, player, validator, score, lanes)

	return &Engine{
		Config:    config,
		Player:    player,
		Session:   session,
		Score:     score,
		Camera:    NewCamera(),
		Lanes:     lanes,
		motion:    motion,
		validator: validator,
		monitor:   NewCollisionMonitor(config, player, motion, lanes, session, now),
		actions:   make(chan Action, 256),
		done:      make(chan struct{}),
		clock:     time.Now,
	}
}

// OnTick sets a callback that is invoked after every tick with a snapshot.
// It runs on the loop goroutine and must not block.
func (e *Engine) OnTick(fn func(Snapshot)) {
	e.onTick = fn
}

// Run drives the frame loop at the configured tick rate until ctx is done
// or Stop is called. The ticker is always released on return.
func (e *Engine) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Second / time.Duration(e.Config.TickRate))
	defer ticker.Stop()

	log.Printf("[ENGINE] Running at %d ticks/s, session %s", e.Config.TickRate, e.Session.ID())
	defer log.Printf("[ENGINE] Stopped")

	for {
		select {
		case <-ctx.Done():
			return
		case <-e.done:
			return
		case <-ticker.C:
			e.tick(e.clock())
		}
	}
}

// Stop halts the frame loop. It is safe to call more than once.
func (e *Engine) Stop() {
	e.stopOnce.Do(func() { close(e.done) })
}

// EnqueueAction sends an input action to be processed on the next tick.
func (e *Engine) EnqueueAction(a Action) {
	select {
	case e.actions <- a:
	default:
		// Drop action if buffer is full (prevents blocking)
	}
}

// tick processes one frame. now is sampled once so the validator, the step
// animation and the collision monitor all agree on the elapsed time.
func (e *Engine) tick(now time.Time) {
	e.drainActions(now)
	e.motion.Advance(now)
	e.monitor.Check(now)

	if e.onTick != nil {
		e.onTick(e.snapshot(now))
	}
}

// drainActions processes all queued input actions.
func (e *Engine) drainActions(now time.Time) {
	for {
		select {
		case a := <-e.actions:
			e.apply(a, now)
		default:
			return
		}
	}
}

// apply routes one action. Actions that make no sense on the current screen
// are ignored.
func (e *Engine) apply(a Action, now time.Time) {
	screen := e.Session.Screen()

	switch a.Type {
	case ActionMove:
		if screen == ScreenPlaying {
			e.motion.QueueMove(a.Dir, e.monitor.Elapsed(now))
		}
	case ActionEscape:
		e.Session.HandleEscape()
	case ActionTogglePause:
		e.Session.TogglePause()
	case ActionStart:
		if screen == ScreenHome && e.Session.State().HomeSubScreen == SubScreenMain {
			e.Session.SetScreen(ScreenPlaying)
		}
	case ActionRetry:
		if screen == ScreenGameOver {
			e.reset(ScreenPlaying, SubScreenMain, now)
		}
	case ActionQuit:
		if screen == ScreenGameOver || screen == ScreenPaused {
			e.reset(ScreenHome, SubScreenMain, now)
		}
	case ActionSubScreen:
		if !a.Sub.valid() {
			log.Printf("[ENGINE] Ignoring unknown home sub-screen %d", a.Sub)
			return
		}
		if screen == ScreenHome {
			e.Session.SetHomeSubScreen(a.Sub)
		}
	case ActionToggleDebug:
		e.monitor.Debug = !e.monitor.Debug
		log.Printf("[ENGINE] Collision debug %v", e.monitor.Debug)
	}
}

// Reset runs the reset protocol and lands on target. Call it before Run or
// from the loop goroutine; while the loop runs, use ActionRetry/ActionQuit.
func (e *Engine) Reset(target Screen, sub HomeSubScreen) {
	e.reset(target, sub, e.clock())
}

// reset puts every piece of session state back to its starting value before
// switching screens, so listeners never observe a half-reset session.
func (e *Engine) reset(target Screen, sub HomeSubScreen, now time.Time) {
	e.motion.ForceReset()
	e.Camera.Reset()
	e.Lanes.Reset()
	e.Score.Reset()
	e.Session.clearCrash()
	e.Session.Renew()
	e.monitor.Reset(now)

	log.Printf("[ENGINE] Session %s reset, target %s", e.Session.ID(), target)

	e.Session.SetScreen(target)
	if target == ScreenHome {
		e.Session.SetHomeSubScreen(sub)
	}
}

// snapshot copies the state the renderer needs.
func (e *Engine) snapshot(now time.Time) Snapshot {
	state := e.Session.State()
	elapsed := e.monitor.Elapsed(now)
	x, y := e.motion.WorldPosition(now)

	snap := Snapshot{
		SessionID:     e.Session.ID(),
		Screen:        state.Screen,
		HomeSubScreen: state.HomeSubScreen,
		Crashed:       e.Session.Crashed(),
		Score:         e.Score.Value(),
		MaxRow:        e.Score.MaxRow(),
		Player: PlayerView{
			Row:      e.Player.Row,
			Tile:     e.Player.Tile,
			X:        x,
			Y:        y,
			Progress: e.motion.Progress(now),
			Pending:  len(e.Player.Queue),
		},
		Elapsed: elapsed,
		Config:  e.Config,
	}

	first, last := e.Camera.Window(e.Player.Row)
	for row := last; row >= first; row-- {
		rv := RowView{Index: row}
		if lane, ok := e.Lanes.Lane(row); ok {
			l := *lane
			rv.Lane = &l
			if l.Kind == LaneTraffic {
				rv.VehicleX = VehiclePositions(e.Config, &l, elapsed)
			}
		}
		snap.Rows = append(snap.Rows, rv)
	}

	if frame := e.monitor.LastFrame(); frame != nil {
		f := *frame
		f.Vehicles = append([]DebugVehicle(nil), frame.Vehicles...)
		snap.Debug = &f
	}
	return snap
}
