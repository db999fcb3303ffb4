// Package logging provides logr-based structured logging for the allocation
// engine, backed by zap. Verbosity follows the logr convention: higher V
// levels are chattier.
package logging

import (
	"context"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels for logger.V(...).
const (
	INFO  = 0
	DEBUG = 1
	TRACE = 2
)

// Log is the package-level logger. It discards everything until SetLogger
// is called, so library code may log unconditionally.
var Log = logr.Discard()

// SetLogger replaces the package-level logger.
func SetLogger(l logr.Logger) {
	Log = l
}

// NewLogger builds a logr.Logger on top of zap. Verbosity selects the
// highest V level that will be emitted; development switches to the
// human-oriented console encoding.
func NewLogger(verbosity int, development bool) logr.Logger {
	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	// logr V levels map onto negated zap levels.
	cfg.Level = zap.NewAtomicLevelAt(zapcore.Level(-verbosity))
	zl, err := cfg.Build()
	if err != nil {
		return logr.Discard()
	}
	return zapr.NewLogger(zl)
}

// NewTestLogger builds a development logger at DEBUG verbosity and installs
// it as the package-level logger. Intended for test suites.
func NewTestLogger() logr.Logger {
	l := NewLogger(DEBUG, true)
	SetLogger(l)
	return l
}

// IntoContext returns a context carrying the logger.
func IntoContext(ctx context.Context, l logr.Logger) context.Context {
	return logr.NewContext(ctx, l)
}

// FromContext returns the logger carried by the context, falling back to
// the package-level logger.
func FromContext(ctx context.Context) logr.Logger {
	if l, err := logr.FromContext(ctx); err == nil {
		return l
	}
	return Log
}
