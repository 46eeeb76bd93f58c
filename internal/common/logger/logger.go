package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger emits JSON lines tagged with the owning service name. Calls are
// action-oriented: the action is both the message and a queryable field.
type Logger struct {
	z       *zap.Logger
	service string
}

// New builds a production JSON logger for the given service.
func New(service string) *Logger {
	return NewAtLevel(service, zapcore.InfoLevel)
}

// NewAtLevel builds a logger with an explicit minimum level.
func NewAtLevel(service string, level zapcore.Level) *Logger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	z, err := cfg.Build(zap.WithCaller(false))
	if err != nil {
		z = zap.NewNop()
	}
	return &Logger{z: z.With(zap.String("service", service)), service: service}
}

// Nop returns a logger that discards everything; used in tests.
func Nop() *Logger { return &Logger{z: zap.NewNop()} }

func (l *Logger) fields(action string, extra map[string]any) []zap.Field {
	fs := make([]zap.Field, 0, len(extra)+1)
	fs = append(fs, zap.String("action", action))
	for k, v := range extra {
		fs = append(fs, zap.Any(k, v))
	}
	return fs
}

func (l *Logger) Info(action string, fields map[string]any) {
	l.z.Info(action, l.fields(action, fields)...)
}

func (l *Logger) Debug(action string, fields map[string]any) {
	l.z.Debug(action, l.fields(action, fields)...)
}

func (l *Logger) Warn(action string, fields map[string]any) {
	l.z.Warn(action, l.fields(action, fields)...)
}

func (l *Logger) Error(action string, err error, fields map[string]any) {
	fs := l.fields(action, fields)
	if err != nil {
		fs = append(fs, zap.Error(err))
	}
	l.z.Error(action, fs...)
}

// Sync flushes buffered entries; call on shutdown.
func (l *Logger) Sync() { _ = l.z.Sync() }
