// Package logger builds the zap logger used across saveup.
//
// The interactive planner owns the terminal, so logs only go to a file when
// one is configured. Non-interactive commands may log to stderr instead.
package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects where and how much to log.
type Options struct {
	Level   string // debug, info, warn, error
	File    string // append JSON lines here when set
	Console bool   // human-readable output on stderr
}

// New returns a logger for opts. With neither File nor Console set it returns
// a no-op logger.
func New(opts Options) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		if opts.Level != "" {
			return nil, fmt.Errorf("parsing log level: %w", err)
		}
		level = zapcore.InfoLevel
	}

	switch {
	case opts.File != "":
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o750); err != nil {
			return nil, fmt.Errorf("creating log dir: %w", err)
		}
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(level)
		cfg.OutputPaths = []string{opts.File}
		cfg.ErrorOutputPaths = []string{opts.File}
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		return cfg.Build()
	case opts.Console:
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(level)
		return cfg.Build()
	default:
		return zap.NewNop(), nil
	}
}

// Expense returns the fields logged for a ledger entry.
func Expense(id, name, amount string) []zap.Field {
	return []zap.Field{
		zap.String("expense_id", id),
		zap.String("name", name),
		zap.String("amount", amount),
	}
}
