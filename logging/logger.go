package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/davidroman0O/firm-inout/config"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var (
	base      = logrus.New()
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex
)

// NewLogger returns the logger for a component. Entries are cached per
// component and share one underlying logger, so Configure applies to all of
// them regardless of creation order.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, exists := loggers[component]; exists {
		return logger
	}

	entry := base.WithField("component", component)
	loggers[component] = entry
	return entry
}

// Base exposes the shared logger, mainly so tests can attach hooks
func Base() *logrus.Logger {
	return base
}

// Configure applies cfg to the shared logger. Output goes to cfg.File when
// set, otherwise to fallback. The returned function closes the log file, if any.
func Configure(cfg config.LoggingConfig, fallback io.Writer) (func() error, error) {
	levelStr := cfg.Level
	if levelStr == "" {
		levelStr = "info"
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	base.SetLevel(level)
	base.SetReportCaller(cfg.ReportCaller)

	closer := func() error { return nil }
	out := fallback
	if cfg.File != "" {
		path := expandPath(cfg.File)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory for %s: %w", path, err)
		}
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
		}
		out = file
		closer = file.Close
	}
	if out == nil {
		out = io.Discard
	}
	base.SetOutput(out)

	switch cfg.Format {
	case "json":
		base.SetFormatter(&logrus.JSONFormatter{})
	default:
		base.SetFormatter(&logrus.TextFormatter{
			DisableColors: !isTerminal(out),
			FullTimestamp: true,
		})
	}

	return closer, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// expandPath expands tilde in file paths
func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
