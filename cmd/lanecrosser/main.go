package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/amalg/go-lanecrosser/internal/game"
	"github.com/amalg/go-lanecrosser/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (default: built-in constants)")
	logFile := flag.String("log", "", "Log file path (default: discard logs)")
	seed := flag.Int64("seed", 0, "Lane generator seed (0 = random)")
	debug := flag.Bool("debug", false, "Start with the collision debug overlay enabled")
	tickRate := flag.Int("tick-rate", 0, "Frames per second (default: from config)")
	homePage := flag.String("home", "main", "Home page to open on: main, settings or credits")
	flag.Parse()

	// Redirect log output IMMEDIATELY: any stderr output will corrupt
	// Bubbletea's terminal rendering.
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	config, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *seed != 0 {
		config.Seed = *seed
	}
	if *tickRate > 0 {
		config.TickRate = *tickRate
	}
	if *debug {
		config.Debug = true
	}

	sub, err := game.ParseHomeSubScreen(*homePage)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	engine := game.NewEngine(config, nil)
	engine.Reset(game.ScreenHome, sub)
	frames := make(chan game.Snapshot, 1)
	engine.OnTick(func(s game.Snapshot) {
		publishLatest(frames, s)
	})

	// Handle OS signals for clean shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	done := make(chan struct{})
	go func() {
		defer close(done)
		engine.Run(ctx)
	}()

	model := ui.NewModel(engine, frames)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, runErr := p.Run()

	// Clean shutdown after TUI exits
	engine.Stop()
	<-done

	if runErr != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", runErr)
		os.Exit(1)
	}
}

func loadConfig(path string) (game.GameConfig, error) {
	if path == "" {
		return game.DefaultConfig(), nil
	}
	return game.LoadConfig(path)
}

// publishLatest hands s to the renderer, replacing any frame it has not
// picked up yet so the engine loop never blocks on the terminal.
func publishLatest(frames chan game.Snapshot, s game.Snapshot) {
	select {
	case frames <- s:
		return
	default:
	}
	select {
	case <-frames:
	default:
	}
	select {
	case frames <- s:
	default:
	}
}
