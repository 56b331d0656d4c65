// Package logging provides the process-wide zerolog logger.
//
// The terminal belongs to the UI, so log output goes to a file (by default
// under the XDG state directory). Until Init is called the logger discards
// everything.
//
//	closer, err := logging.Init(logging.Config{Level: "debug", File: path})
//	defer closer.Close()
//	logging.Info().Int("records", n).Msg("catalog loaded")
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
)

const (
	appName     = "movierec"
	logFileName = "movierec.log"

	// Stderr as Config.File sends output to the process stderr.
	Stderr = "-"
)

// Config holds logging configuration.
type Config struct {
	// Level is the minimum level: trace, debug, info, warn, error, disabled.
	Level string

	// File is the log destination. Empty selects DefaultFile().
	File string

	// Output overrides File when set. Used by tests.
	Output io.Writer
}

var (
	log = zerolog.Nop()
	mu  sync.RWMutex
)

// DefaultFile returns the log path under the XDG state directory.
func DefaultFile() string {
	return filepath.Join(xdg.StateHome, appName, logFileName)
}

// Init configures the global logger. The returned closer releases the log
// file, if one was opened.
func Init(cfg Config) (io.Closer, error) {
	out := cfg.Output
	var closer io.Closer = nopCloser{}

	if out == nil {
		switch cfg.File {
		case Stderr:
			out = os.Stderr
		default:
			path := cfg.File
			if path == "" {
				path = DefaultFile()
			}
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return nil, err
			}
			f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return nil, err
			}
			out, closer = f, f
		}
	}

	zerolog.TimeFieldFormat = time.RFC3339

	l := zerolog.New(out).
		Level(parseLevel(cfg.Level)).
		With().
		Timestamp().
		Logger()

	SetLogger(l)
	return closer, nil
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// Logger returns the global logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// SetLogger replaces the global logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func SetLogger(l zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	log = l
}

// Debug starts a debug-level message.
func Debug() *zerolog.Event {
	mu.RLock()
	defer mu.RUnlock()
	return log.Debug()
}

// Info starts an info-level message.
func Info() *zerolog.Event {
	mu.RLock()
	defer mu.RUnlock()
	return log.Info()
}

// Warn starts a warn-level message.
func Warn() *zerolog.Event {
	mu.RLock()
	defer mu.RUnlock()
	return log.Warn()
}

// Error starts an error-level message.
func Error() *zerolog.Event {
	mu.RLock()
	defer mu.RUnlock()
	return log.Error()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
