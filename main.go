// Package main is the entry point for the Pico Configurator.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/billie-coop/picoconf/internal/config"
	"github.com/billie-coop/picoconf/internal/session"
	"github.com/billie-coop/picoconf/internal/store"
	"github.com/billie-coop/picoconf/internal/tui"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/joho/godotenv"
)

func main() {
	// A .env next to the binary may supply APPDATA on machines without it
	_ = godotenv.Load()

	base, err := config.BaseDir(config.BaseEnv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	manager := config.NewManager(base)
	if err := manager.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading %s: %v\n", manager.Dir(), err)
		os.Exit(1)
	}
	cfg := manager.Get()

	settingsPath, err := manager.SettingsPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logFile, err := os.OpenFile(manager.LogPath(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: opening log: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	}))
	logger.Info("starting", "settings", settingsPath, "theme", cfg.Theme)

	st := store.New(settingsPath, logger.With("component", "store"))
	sess := session.New(st, session.WithLogger(logger.With("component", "session")))
	sess.Load()

	model := tui.New(sess, tui.Options{
		Theme:         cfg.Theme,
		StatusTimeout: time.Duration(cfg.StatusTimeoutSeconds) * time.Second,
		ConfigDir:     manager.Dir(),
		Logger:        logger.With("component", "tui"),
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("stopped")
}

func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
