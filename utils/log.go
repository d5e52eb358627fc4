// Package utils holds small cross-cutting helpers shared by the gateway
// client and the sync core: structured logging and network selection.
package utils

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// SimpleLogger is the narrow logging surface every component in this
// module depends on, instead of *zap.Logger directly, so tests can swap
// in a no-op or buffering implementation.
type SimpleLogger interface {
	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
}

// ZapLogger adapts *zap.SugaredLogger to SimpleLogger.
type ZapLogger struct {
	inner *zap.SugaredLogger
}

func (z *ZapLogger) Debugw(msg string, kv ...interface{}) { z.inner.Debugw(msg, kv...) }
func (z *ZapLogger) Infow(msg string, kv ...interface{})  { z.inner.Infow(msg, kv...) }
func (z *ZapLogger) Warnw(msg string, kv ...interface{})  { z.inner.Warnw(msg, kv...) }
func (z *ZapLogger) Errorw(msg string, kv ...interface{}) { z.inner.Errorw(msg, kv...) }

// NewZapLogger builds a production JSON zap logger at the given level.
func NewZapLogger(level zapcore.Level) (SimpleLogger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &ZapLogger{inner: logger.Sugar()}, nil
}

// NewNopZapLogger returns a SimpleLogger that discards everything, used
// as the default for components that have not been given a logger and by
// tests.
func NewNopZapLogger() SimpleLogger {
	return &ZapLogger{inner: zap.NewNop().Sugar()}
}
