package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	gap "github.com/muesli/go-app-paths"
)

type logConfig struct {
	Debug   bool   `env:"ELEXICO_DEBUG"`
	LogFile string `env:"ELEXICO_LOGFILE"`
}

// setupLog configures the global logger: silent by default, verbose into a
// file when debugging is requested. The returned closer flushes the file.
func setupLog() (func() error, error) {
	log.SetOutput(io.Discard)

	cfg, err := env.ParseAs[logConfig]()
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	if !cfg.Debug {
		return func() error { return nil }, nil
	}

	if cfg.LogFile == "" {
		scope := gap.NewScope(gap.User, "elexico")
		cfg.LogFile, err = scope.LogPath("elexico.log")
		if err != nil {
			return nil, err //nolint:wrapcheck
		}
	}

	f, err := openLogFile(cfg.LogFile)
	if err != nil {
		return nil, err
	}

	log.SetOutput(f)
	log.SetLevel(log.DebugLevel)
	log.SetReportTimestamp(true)
	log.SetTimeFormat(time.Kitchen)
	log.Debug("Logging to file", "path", cfg.LogFile)

	return f.Close, nil
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("unable to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("unable to open log file: %w", err)
	}
	return f, nil
}
