package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/rangegrid/internal/config"
	"github.com/lox/rangegrid/internal/session"
	"github.com/lox/rangegrid/internal/tui"
)

// GridCmd opens the interactive grid.
type GridCmd struct {
	First     string `help:"Initial range for the first grid" placeholder:"RANGE"`
	Second    string `help:"Initial range for the second grid" placeholder:"RANGE"`
	NoCompare bool   `help:"Show a single grid without the guessing game"`
	Theme     string `help:"Color theme (default, dark, light)"`
}

func (cmd *GridCmd) Run(globals *Globals) error {
	cfg, err := config.Load(globals.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cmd.applyOverrides(cfg, globals)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// The terminal belongs to Bubble Tea, so logs go to a file.
	logFile, err := os.OpenFile(cfg.UI.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() {
		if err := logFile.Close(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}()

	logger, err := newLogger(logFile, cfg.UI.LogLevel, "rangegrid")
	if err != nil {
		return err
	}

	s, err := newSession(cfg, logger, quartz.NewReal())
	if err != nil {
		return err
	}

	model := tui.NewModel(s, logger, tui.Options{
		Compare: cfg.CompareEnabled(),
		Theme:   cfg.UI.Theme,
	})

	logger.Info("Starting grid", "compare", cfg.CompareEnabled(), "theme", cfg.UI.Theme)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running grid: %w", err)
	}
	logger.Info("Grid closed")
	return nil
}

// applyOverrides layers command-line flags over the config file.
func (cmd *GridCmd) applyOverrides(cfg *config.Config, globals *Globals) {
	cfg.UI.LogLevel = resolveLogLevel(globals.LogLevel, cfg.UI.LogLevel)
	if cmd.First != "" {
		cfg.Ranges.First = cmd.First
	}
	if cmd.Second != "" {
		cfg.Ranges.Second = cmd.Second
	}
	if cmd.NoCompare {
		compare := false
		cfg.UI.Compare = &compare
	}
	if cmd.Theme != "" {
		cfg.UI.Theme = cmd.Theme
	}
}

// newSession creates a session with the configured starting ranges. The
// first grid is left active.
func newSession(cfg *config.Config, logger *log.Logger, clock quartz.Clock) (*session.Session, error) {
	s := session.New(session.Options{
		Clock:          clock,
		MultiTapWindow: cfg.MultiClickWindow(),
		Logger:         logger,
	})

	initial := []struct {
		grid     session.Grid
		notation string
	}{
		{session.SecondGrid, cfg.Ranges.Second},
		{session.FirstGrid, cfg.Ranges.First},
	}
	for _, r := range initial {
		s.SetActive(r.grid)
		if err := s.LoadRange(r.notation); err != nil {
			return nil, fmt.Errorf("%s range: %w", r.grid, err)
		}
	}

	return s, nil
}
