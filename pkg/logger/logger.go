package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const envLocal = "local"

var (
	base = zap.NewNop()
	pkg  = zap.NewNop()
)

// Init builds the process logger. The local environment gets the development
// config (console encoder), everything else the production one. Both write to
// stderr so the result table on stdout stays machine-readable.
func Init(env, level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level %q: %w", level, err)
	}

	var cfg zap.Config
	if env == envLocal {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("build zap logger: %w", err)
	}

	base = l
	pkg = l.WithOptions(zap.AddCallerSkip(1))
	return nil
}

// Logger returns the underlying zap logger for middleware that wants it.
func Logger() *zap.Logger {
	return base
}

func Debug(msg string, fields ...zap.Field) {
	pkg.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	pkg.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	pkg.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	pkg.Error(msg, fields...)
}

func Sync() {
	_ = base.Sync()
}
