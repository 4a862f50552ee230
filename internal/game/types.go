package game

import (
	"fmt"
)

// Direction represents a single-tile player move.
type Direction int

const (
	DirForward Direction = iota
	DirBackward
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirForward:
		return "forward"
	case DirBackward:
		return "backward"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Position is a settled discrete coordinate on the board.
// Row 0 and below is the safe starting strip; row N is lane N-1.
type Position struct {
	Row  int `json:"row"`
	Tile int `json:"tile"`
}

// Step returns the position one tile away in the given direction.
func (p Position) Step(dir Direction) Position {
	switch dir {
	case DirForward:
		p.Row++
	case DirBackward:
		p.Row--
	case DirLeft:
		p.Tile--
	case DirRight:
		p.Tile++
	}
	return p
}

// LaneKind distinguishes static obstacle rows from traffic rows.
type LaneKind int

const (
	LaneForest LaneKind = iota
	LaneTraffic
)

func (k LaneKind) String() string {
	if k == LaneTraffic {
		return "traffic"
	}
	return "forest"
}

// TreeHeight is the visual height of a forest obstacle.
type TreeHeight int

const (
	TreeShort  TreeHeight = 20
	TreeMedium TreeHeight = 30
	TreeTall   TreeHeight = 50
)

// Tree is an obstacle occupying one tile of a forest lane.
type Tree struct {
	TileIndex int        `json:"tile_index"`
	Height    TreeHeight `json:"height"`
}

// VehicleColor is a hex colour tag used by the renderer.
type VehicleColor string

// Vehicle is a traffic participant. Its position is never stored; it is
// derived from the lane and the elapsed session time.
type Vehicle struct {
	InitialTileIndex int          `json:"initial_tile_index"`
	Color            VehicleColor `json:"color"`
}

// Lane describes one generated row. Lanes are immutable once generated.
type Lane struct {
	Kind LaneKind `json:"kind"`

	// Forest lanes
	Trees []Tree `json:"trees,omitempty"`

	// Traffic lanes
	Direction bool      `json:"direction,omitempty"` // true = increasing x
	Speed     float64   `json:"speed,omitempty"`     // units per second
	Vehicles  []Vehicle `json:"vehicles,omitempty"`
}

// HasTree reports whether a forest lane has an obstacle at tile.
func (l *Lane) HasTree(tile int) bool {
	if l.Kind != LaneForest {
		return false
	}
	for _, t := range l.Trees {
		if t.TileIndex == tile {
			return true
		}
	}
	return false
}

// Screen is the top-level session screen.
type Screen int

const (
	screenNone Screen = iota
	ScreenHome
	ScreenPlaying
	ScreenPaused
	ScreenGameOver
)

func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "home"
	case ScreenPlaying:
		return "playing"
	case ScreenPaused:
		return "paused"
	case ScreenGameOver:
		return "game-over"
	}
	return "none"
}

// HomeSubScreen is the page shown while on the home screen.
type HomeSubScreen int

const (
	SubScreenMain HomeSubScreen = iota
	SubScreenSettings
	SubScreenCredits
)

func (h HomeSubScreen) String() string {
	switch h {
	case SubScreenSettings:
		return "settings"
	case SubScreenCredits:
		return "credits"
	}
	return "main"
}

func (h HomeSubScreen) valid() bool {
	return h >= SubScreenMain && h <= SubScreenCredits
}

// ParseHomeSubScreen converts a sub-screen name into its enum value.
func ParseHomeSubScreen(name string) (HomeSubScreen, error) {
	switch name {
	case "main":
		return SubScreenMain, nil
	case "settings":
		return SubScreenSettings, nil
	case "credits":
		return SubScreenCredits, nil
	}
	return SubScreenMain, fmt.Errorf("unknown home sub-screen %q", name)
}

// ActionType represents the type of input action.
type ActionType int

const (
	ActionMove ActionType = iota
	ActionEscape
	ActionTogglePause
	ActionStart
	ActionRetry
	ActionQuit
	ActionSubScreen
	ActionToggleDebug
)

// Action represents an input event delivered to the engine.
type Action struct {
	Type ActionType
	Dir  Direction     // Only relevant for ActionMove
	Sub  HomeSubScreen // Only relevant for ActionSubScreen
}
