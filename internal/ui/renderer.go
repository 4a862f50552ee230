package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/amalg/go-lanecrosser/internal/game"
)

// vehicleVisualWidth is the drawn hull length in world units.
const vehicleVisualWidth = 60.0

// Color palette
var (
	// Tile styles
	grassStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#5a9e3a")).
			Foreground(lipgloss.Color("#5a9e3a"))

	roadStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#3a3a46")).
			Foreground(lipgloss.Color("#55556a"))

	treeStyles = map[game.TreeHeight]lipgloss.Style{
		game.TreeShort:  lipgloss.NewStyle().Background(lipgloss.Color("#5a9e3a")).Foreground(lipgloss.Color("#2f6b1f")),
		game.TreeMedium: lipgloss.NewStyle().Background(lipgloss.Color("#5a9e3a")).Foreground(lipgloss.Color("#1f5414")),
		game.TreeTall:   lipgloss.NewStyle().Background(lipgloss.Color("#5a9e3a")).Foreground(lipgloss.Color("#0f3a0a")).Bold(true),
	}

	playerStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#ffffff")).
			Foreground(lipgloss.Color("#f0619a")).
			Bold(true)

	crashStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#ff4444")).
			Foreground(lipgloss.Color("#ffffff")).
			Bold(true)

	debugHitStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#ff0000")).
			Foreground(lipgloss.Color("#ffff00"))

	// HUD styles
	hudBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffa500")).
			Bold(true)

	pausedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#44aaff")).
			Bold(true)

	gameOverStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff4444")).
			Bold(true).
			Blink(true)

	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#555555"))

	menuStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#ffa500")).
			Padding(1, 4)
)

// RenderBoard converts a snapshot into a styled terminal string.
// Each tile is 2 characters wide; the furthest row is printed first.
func RenderBoard(snap *game.Snapshot) string {
	if snap == nil || len(snap.Rows) == 0 {
		return "Waiting for game state..."
	}

	cfg := snap.Config
	playerRow := worldToIndex(cfg, snap.Player.Y)
	playerTile := worldToIndex(cfg, snap.Player.X)

	var rows []string
	for _, rv := range snap.Rows {
		var cells []string
		for tile := cfg.MinTileIndex; tile <= cfg.MaxTileIndex; tile++ {
			if rv.Index == playerRow && tile == playerTile {
				cells = append(cells, renderPlayer(snap))
				continue
			}
			cells = append(cells, renderCell(cfg, rv, tile, snap.Debug))
		}
		rows = append(rows, strings.Join(cells, ""))
	}

	return strings.Join(rows, "\n")
}

func renderPlayer(snap *game.Snapshot) string {
	if snap.Crashed {
		return crashStyle.Render("XX")
	}
	return playerStyle.Render("▲▲")
}

// renderCell renders a single board cell.
func renderCell(cfg game.GameConfig, rv game.RowView, tile int, debug *game.DebugFrame) string {
	lane := rv.Lane
	if lane == nil {
		return grassStyle.Render("  ")
	}

	switch lane.Kind {
	case game.LaneForest:
		for _, t := range lane.Trees {
			if t.TileIndex == tile {
				return treeStyles[t.Height].Render("♣♣")
			}
		}
		return grassStyle.Render("  ")

	case game.LaneTraffic:
		center := game.TileCenter(cfg, tile)
		for i, x := range rv.VehicleX {
			if math.Abs(center-x) > vehicleVisualWidth/2 {
				continue
			}
			if debugColliding(debug, rv.Index, lane.Vehicles[i].InitialTileIndex) {
				return debugHitStyle.Render("██")
			}
			glyph := "◀◀"
			if lane.Direction {
				glyph = "▶▶"
			}
			return roadStyle.Foreground(lipgloss.Color(string(lane.Vehicles[i].Color))).Render(glyph)
		}
		return roadStyle.Render("··")
	}
	return grassStyle.Render("  ")
}

func debugColliding(debug *game.DebugFrame, row, initialTile int) bool {
	if debug == nil || debug.Row != row {
		return false
	}
	for _, v := range debug.Vehicles {
		if v.InitialTileIndex == initialTile && v.Colliding {
			return true
		}
	}
	return false
}

// worldToIndex converts a world coordinate back to the nearest tile or row.
func worldToIndex(cfg game.GameConfig, v float64) int {
	return int(math.Round((v - cfg.TileSize/2) / cfg.TileSize))
}

// RenderHUD renders the heads-up display with score and status.
func RenderHUD(snap *game.Snapshot) string {
	if snap == nil {
		return ""
	}

	var parts []string

	// Title
	parts = append(parts, titleStyle.Render("🛡 PIXEL TANKS"))
	parts = append(parts, "")
	parts = append(parts, fmt.Sprintf("SCORE: %d", snap.Score))
	parts = append(parts, dimStyle.Render(fmt.Sprintf("Row %d  Tile %d", snap.Player.Row, snap.Player.Tile)))
	parts = append(parts, "")

	switch snap.Screen {
	case game.ScreenPlaying:
		parts = append(parts, lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff88")).Render("▶ PLAYING"))
		parts = append(parts, hintStyle.Render("Arrows/WASD: Move | P/Esc: Pause"))
	case game.ScreenPaused:
		parts = append(parts, pausedStyle.Render("⏸ PAUSED"))
		parts = append(parts, "   [P] Resume   [M] Main menu")
	case game.ScreenGameOver:
		parts = append(parts, gameOverStyle.Render("💀 GAME OVER"))
		parts = append(parts, fmt.Sprintf("   Your score: %d", snap.Score))
		parts = append(parts, "   [R] Retry   [Q] Quit")
	}

	if snap.Debug != nil {
		parts = append(parts, "")
		parts = append(parts, renderDebug(snap.Debug)...)
	}

	parts = append(parts, "")
	parts = append(parts, hintStyle.Render("G: Collision debug | Ctrl+C: Exit"))
	parts = append(parts, hintStyle.Render("Session "+shortID(snap.SessionID)))

	return hudBorderStyle.Render(strings.Join(parts, "\n"))
}

func renderDebug(frame *game.DebugFrame) []string {
	lines := []string{
		lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff00")).Render("DEBUG: collision"),
		fmt.Sprintf("player  x[%.0f,%.0f] y[%.0f,%.0f]",
			frame.Player.MinX, frame.Player.MaxX, frame.Player.MinY, frame.Player.MaxY),
	}
	for _, v := range frame.Vehicles {
		line := fmt.Sprintf("veh %3d x[%.0f,%.0f]", v.InitialTileIndex, v.Box.MinX, v.Box.MaxX)
		if v.Colliding {
			line = debugHitStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return lines
}

// RenderHome renders the home screen page.
func RenderHome(sub game.HomeSubScreen) string {
	var parts []string

	switch sub {
	case game.SubScreenSettings:
		parts = append(parts,
			titleStyle.Render("Settings"),
			"",
			"Game settings will appear here in future updates.",
			"",
			hintStyle.Render("[B] Back"),
		)
	case game.SubScreenCredits:
		parts = append(parts,
			titleStyle.Render("Credits"),
			"",
			"Pixel Tanks",
			"A lane-crossing game for the terminal",
			"",
			hintStyle.Render("[B] Back"),
		)
	default:
		parts = append(parts,
			titleStyle.Render("PIXEL TANKS"),
			"",
			"[Enter] Start Game",
			"[O]     Settings",
			"[C]     Credits",
			"[Q]     Quit",
			"",
			dimStyle.Render("Use the arrow keys to move."),
			dimStyle.Render("Avoid the tanks and get as far as you can!"),
		)
	}

	return menuStyle.Render(strings.Join(parts, "\n"))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
