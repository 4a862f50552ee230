package game

import (
	"log"

	"github.com/google/uuid"
)

// SessionState is the screen routing state handed to listeners.
type SessionState struct {
	Screen         Screen        `json:"screen"`
	HomeSubScreen  HomeSubScreen `json:"home_sub_screen"`
	PreviousScreen Screen        `json:"previous_screen,omitempty"`
}

// Session tracks which screen is active and whether the last run ended in
// a crash. Every mutation notifies listeners synchronously.
type Session struct {
	id        string
	state     SessionState
	crashed   bool
	listeners observers[SessionState]
}

// NewSession starts on the home screen's main page.
func NewSession() *Session {
	return &Session{
		id: uuid.NewString(),
		state: SessionState{
			Screen:        ScreenHome,
			HomeSubScreen: SubScreenMain,
		},
	}
}

// ID identifies the current run. It changes on every reset.
func (s *Session) ID() string { return s.id }

// Renew assigns a fresh run ID.
func (s *Session) Renew() {
	s.id = uuid.NewString()
}

// State returns a copy of the routing state.
func (s *Session) State() SessionState { return s.state }

// Screen returns the active screen.
func (s *Session) Screen() Screen { return s.state.Screen }

// Crashed reports whether the session ended on a collision.
func (s *Session) Crashed() bool { return s.crashed }

// SetScreen switches screens, remembering the one being left.
func (s *Session) SetScreen(screen Screen) {
	s.state.PreviousScreen = s.state.Screen
	s.state.Screen = screen
	s.notify()
}

// SetHomeSubScreen switches the home page.
func (s *Session) SetHomeSubScreen(sub HomeSubScreen) {
	s.state.HomeSubScreen = sub
	s.notify()
}

// GoBack swaps the current and previous screens.
func (s *Session) GoBack() {
	if s.state.PreviousScreen == screenNone {
		return
	}
	s.state.Screen, s.state.PreviousScreen = s.state.PreviousScreen, s.state.Screen
	s.notify()
}

// HandleEscape applies the escape key: a home sub-page returns to main,
// pause resumes, playing pauses, game-over ignores it.
func (s *Session) HandleEscape() {
	switch s.state.Screen {
	case ScreenHome:
		if s.state.HomeSubScreen != SubScreenMain {
			s.SetHomeSubScreen(SubScreenMain)
		}
	case ScreenPaused:
		s.SetScreen(ScreenPlaying)
	case ScreenPlaying:
		s.SetScreen(ScreenPaused)
	}
}

// TogglePause flips between playing and paused. Other screens are unaffected.
func (s *Session) TogglePause() {
	switch s.state.Screen {
	case ScreenPaused:
		s.SetScreen(ScreenPlaying)
	case ScreenPlaying:
		s.SetScreen(ScreenPaused)
	}
}

// Crash ends the run. The game-over screen stays until an explicit reset.
func (s *Session) Crash() {
	s.crashed = true
	log.Printf("[SESSION] %s ended in a collision", s.id)
	s.SetScreen(ScreenGameOver)
}

// clearCrash drops the game-over flag as part of the reset protocol.
func (s *Session) clearCrash() {
	s.crashed = false
}

// Subscribe registers fn to receive the routing state after every change.
func (s *Session) Subscribe(fn func(SessionState)) (unsubscribe func()) {
	return s.listeners.subscribe(fn)
}

func (s *Session) notify() {
	s.listeners.notify(s.state)
}
