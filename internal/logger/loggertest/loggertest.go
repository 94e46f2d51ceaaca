// Package loggertest provides a Logger that writes through testing.TB.
package loggertest

import (
	"testing"

	"github.com/fadilmartias/skillsyncer/internal/logger"
	"go.uber.org/zap/zaptest"
)

// New returns a debug-level Logger whose output is attached to t.
func New(t testing.TB) logger.Logger {
	return logger.FromZap(zaptest.NewLogger(t))
}
