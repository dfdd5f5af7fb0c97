package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/popit/audio"
	"github.com/lixenwraith/popit/config"
	"github.com/lixenwraith/popit/core"
	"github.com/lixenwraith/popit/status"
)

var (
	configFlag = flag.String("config", "", "Directory containing config.yaml")
	debugFlag  = flag.Bool("debug", false, "Write debug logs to logs/popit.log")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	// Optional .env, real environment wins
	_ = godotenv.Load()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	level := cfg.LogLevel()
	if *debugFlag {
		level = min(level, zerolog.DebugLevel)
	}
	logger, logFile, err := setupLogging(resolveLogPath(*debugFlag, cfg.Log.File), level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	// Initialize terminal
	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Error().Err(err).Msg("terminal unavailable")
		fmt.Fprintf(os.Stderr, "Failed to create terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		logger.Error().Err(err).Msg("terminal init failed")
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Crash handler restores the terminal for goroutines started through core.Go
	core.SetCrashCleanup(screen.Fini)

	// Audio failure is non-fatal, the game runs silent
	sounds := audio.NewSoundManager(audio.Config{
		Enabled: cfg.Audio.Enabled,
		Volume:  cfg.Audio.Volume,
	}, logger.With().Str("component", "audio").Logger())
	if err := sounds.Initialize(); err != nil {
		logger.Warn().Err(err).Msg("continuing without audio")
	}
	defer sounds.Cleanup()

	stats := status.NewRegistry()
	app := NewApp(AppOptions{
		Screen: screen,
		Config: cfg,
		Logger: logger,
		Sounds: sounds,
		Stats:  stats,
	})

	logger.Info().Msg("popit started")
	app.Run()

	event := logger.Info()
	for k, v := range stats.Values() {
		event = event.Int64(k, v)
	}
	event.Msg("popit stopped")
}
