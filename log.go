package curve3

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// loggerPtr stores the active logger. Accessed atomically so that SetLogger
// can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[zap.Logger]

func init() {
	loggerPtr.Store(zap.NewNop())
}

// SetLogger configures the logger used by this package. By default the
// package produces no log output. Pass nil to restore the default silent
// behavior.
//
// The package logs at Debug level for commit diagnostics (native array
// sizes, time step counts) and at Warn level for non-fatal problems
// (mismatched buffer lengths, out-of-range topology detected during
// verification).
//
// SetLogger is safe for concurrent use.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by this package.
//
// Logger is safe for concurrent use.
func Logger() *zap.Logger {
	return loggerPtr.Load()
}
