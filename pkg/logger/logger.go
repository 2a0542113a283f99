package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LevelEnv overrides the configured log level
const LevelEnv = "CVBUILDER_LOG_LEVEL"

// Log is the process-wide logger. It discards everything until Init runs.
var Log = zap.NewNop()

// Options selects where records go and which level is kept
type Options struct {
	// Level is a zap level name: debug, info, warn, error
	Level string
	// File receives the records; empty means stderr
	File string
}

// Init replaces Log according to opts and returns a flush function
func Init(opts Options) (func(), error) {
	level := opts.Level
	if env := os.Getenv(LevelEnv); env != "" {
		level = env
	}
	lvl := zapcore.InfoLevel
	if level != "" {
		parsed, err := zapcore.ParseLevel(strings.ToLower(level))
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		lvl = parsed
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.Encoding = "console"
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.MessageKey = "message"
	config.DisableStacktrace = true

	// the TUI owns the terminal, so records go to a file when one is set
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		config.OutputPaths = []string{opts.File}
		config.ErrorOutputPaths = []string{opts.File}
	}

	l, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	Log = l
	return func() { _ = l.Sync() }, nil
}

// Named returns a child logger for one component
func Named(name string) *zap.Logger {
	return Log.Named(name)
}
