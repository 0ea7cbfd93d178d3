// Package logging configures the process-wide leveled logger.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds logger configuration.
type Config struct {
	Debug bool
	// File is the rotating log file. Empty disables file logging.
	File string
	// Stderr overrides the terminal writer, mainly for tests.
	Stderr io.Writer
}

// New builds a logger writing warnings and above to the log file. With Debug
// set, debug output also goes to stderr. The returned closer flushes the file.
func New(cfg Config) (*log.Logger, io.Closer, error) {
	stderr := cfg.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	var writers []io.Writer
	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, nil, err
		}
		rotating := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    5, // megabytes
			MaxBackups: 2,
			MaxAge:     90, // days
		}
		writers = append(writers, rotating)
		closer = rotating
	}

	level := log.WarnLevel
	if cfg.Debug {
		level = log.DebugLevel
		writers = append(writers, stderr)
	}

	var w io.Writer = io.Discard
	switch len(writers) {
	case 0:
	case 1:
		w = writers[0]
	default:
		w = io.MultiWriter(writers...)
	}

	l := log.NewWithOptions(w, log.Options{
		ReportCaller:    cfg.Debug,
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "gratitude",
	})
	return l, closer, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
