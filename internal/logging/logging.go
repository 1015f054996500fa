// Package logging builds the zap logger of the command line tool.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects where and how much to log.
type Options struct {
	// Verbosity is the number of -v flags.
	Verbosity int
	// Level overrides Verbosity when set (debug, info, warn, error).
	Level string
	// Console enables logging to stderr.
	Console bool
	// File appends the log to a file when set.
	File string
}

// LevelFor maps the -v count to a level: warn, info, then debug.
func LevelFor(verbosity int) zapcore.Level {
	switch {
	case verbosity <= 0:
		return zapcore.WarnLevel
	case verbosity == 1:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// New builds a logger. Without any sink the logger discards everything.
func New(opts Options) (*zap.Logger, error) {
	level := LevelFor(opts.Verbosity)

	if opts.Level != "" {
		parsed, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}

		level = parsed
	}

	var outputs []string
	if opts.Console {
		outputs = append(outputs, "stderr")
	}

	if opts.File != "" {
		outputs = append(outputs, opts.File)
	}

	if len(outputs) == 0 {
		return zap.NewNop(), nil
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.DisableCaller = true
	config.DisableStacktrace = true
	config.Sampling = nil
	config.OutputPaths = outputs

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return logger, nil
}
