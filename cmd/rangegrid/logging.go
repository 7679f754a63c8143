package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/rangegrid/internal/config"
)

// newLogger builds a logger writing to w at the named level.
func newLogger(w io.Writer, level, prefix string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          prefix,
		Level:           lvl,
	}), nil
}

// resolveLogLevel prefers the flag over the configured level.
func resolveLogLevel(flag, configured string) string {
	if flag != "" {
		return flag
	}
	if configured != "" {
		return configured
	}
	return "info"
}

// stderrLogger builds the logger used by the one-shot commands.
func (g *Globals) stderrLogger(prefix string) (*log.Logger, error) {
	level, err := g.logLevel()
	if err != nil {
		return nil, err
	}
	return newLogger(os.Stderr, level, prefix)
}

// logLevel resolves the level from --log-level, then ui.log_level in the
// config file.
func (g *Globals) logLevel() (string, error) {
	if g.LogLevel != "" {
		return g.LogLevel, nil
	}
	cfg, err := config.Load(g.Config)
	if err != nil {
		return "", fmt.Errorf("loading config: %w", err)
	}
	return resolveLogLevel("", cfg.UI.LogLevel), nil
}
