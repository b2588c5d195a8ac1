// Package logging provides the process-wide leveled logger shared by the
// library packages and both binaries. It is a thin wrapper around a zap
// sugared logger writing to stderr.
package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	level  = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	logger = newLogger()
)

func newLogger() *zap.SugaredLogger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = level
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	l, err := cfg.Build()
	if err != nil {
		// The development config only fails on invalid sink paths, which we
		// never set; fall back to the global no-op logger just in case.
		return zap.NewNop().Sugar()
	}
	return l.Sugar()
}

// SetLevel parses and applies a level name (debug, info, warn, error).
// Unknown names are ignored, keeping the current level.
func SetLevel(s string) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		level.SetLevel(zapcore.DebugLevel)
	case "info":
		level.SetLevel(zapcore.InfoLevel)
	case "warn", "warning":
		level.SetLevel(zapcore.WarnLevel)
	case "error":
		level.SetLevel(zapcore.ErrorLevel)
	}
}

// Debugf logs at debug level.
func Debugf(format string, args ...interface{}) { logger.Debugf(format, args...) }

// Infof logs at info level.
func Infof(format string, args ...interface{}) { logger.Infof(format, args...) }

// Warnf logs at warn level.
func Warnf(format string, args ...interface{}) { logger.Warnf(format, args...) }

// Errorf logs at error level.
func Errorf(format string, args ...interface{}) { logger.Errorf(format, args...) }
