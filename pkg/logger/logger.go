package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field names shared by every component that logs a request.
const (
	FieldService   = "service"
	FieldOperation = "operation"
	FieldMethod    = "method"
	FieldEndpoint  = "endpoint"
	FieldPath      = "path"
	FieldStatus    = "status"
	FieldRequestID = "request_id"
	FieldDuration  = "duration_ms"
	FieldClient    = "client"
)

// New builds a console logger, or a JSON one for machine consumption.
func New(jsonOutput bool, level zapcore.Level) (*zap.Logger, error) {
	var cfg zap.Config
	if jsonOutput {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.DisableStacktrace = true
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

// OrNop returns l, or a no-op logger when l is nil.
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
