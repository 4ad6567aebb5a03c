// Package logger builds the structured logger used across the service.
// Logs are written to stderr so they never mix with the console prompts.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a sugared logger tagged with the service name.
// The development config is used when debug is set.
func New(service string, debug bool) *zap.SugaredLogger {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	log, err := cfg.Build(zap.Fields(zap.String("service", service)))
	if err != nil {
		return zap.NewNop().Sugar()
	}

	return log.Sugar()
}

// WithLevel returns a copy of log that only emits entries at level or above.
// Unknown level names leave log unchanged.
func WithLevel(log *zap.SugaredLogger, level string) *zap.SugaredLogger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return log
	}
	return log.WithOptions(zap.IncreaseLevel(lvl))
}
