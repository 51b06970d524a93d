// Package logger provides the shared zap logger used across the tool.
// Packages grab it once with `var log = logger.Logger()`.
package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu    sync.Mutex
	level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	base  *zap.SugaredLogger
)

// Logger returns the process-wide sugared logger, building it on first use.
// Logs go to stderr so command output on stdout stays machine-parsable.
func Logger() *zap.SugaredLogger {
	mu.Lock()
	defer mu.Unlock()

	if base == nil {
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = level
		cfg.OutputPaths = []string{"stderr"}
		cfg.ErrorOutputPaths = []string{"stderr"}
		l, err := cfg.Build()
		if err != nil {
			// zap's development config only fails on bad output paths;
			// stderr is always openable, so fall back to a no-op logger.
			l = zap.NewNop()
		}
		base = l.Sugar()
	}

	return base
}

// SetVerbose lowers the logging threshold to Debug (true) or restores the
// default Warn threshold (false). Safe to call before or after Logger().
func SetVerbose(verbose bool) {
	if verbose {
		level.SetLevel(zapcore.DebugLevel)
	} else {
		level.SetLevel(zapcore.WarnLevel)
	}
}

// Infof logs at Info level on the shared logger.
func Infof(format string, args ...interface{}) { Logger().Infof(format, args...) }

// Debugf logs at Debug level on the shared logger.
func Debugf(format string, args ...interface{}) { Logger().Debugf(format, args...) }

// Warnf logs at Warn level on the shared logger.
func Warnf(format string, args ...interface{}) { Logger().Warnf(format, args...) }

// Errorf logs at Error level on the shared logger.
func Errorf(format string, args ...interface{}) { Logger().Errorf(format, args...) }
