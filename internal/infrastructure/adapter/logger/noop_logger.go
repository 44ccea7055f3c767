package logger

import (
	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/core"
)

var _ core.Logger = (*NoopLogger)(nil)

// NoopLogger discards every entry. Tests use it to keep output quiet.
type NoopLogger struct {
	level core.LogLevel
}

// NewNoopLogger returns a logger that writes nothing
func NewNoopLogger() core.Logger {
	return &NoopLogger{level: core.LogLevelInfo}
}

func (l *NoopLogger) SetLevel(level core.LogLevel) { l.level = level }

func (l *NoopLogger) GetLevel() core.LogLevel { return l.level }

func (*NoopLogger) Debug(string, map[string]any) {}

func (*NoopLogger) Info(string, map[string]any) {}

func (*NoopLogger) Warn(string, map[string]any) {}

func (*NoopLogger) Error(string, map[string]any) {}

func (*NoopLogger) Flush() error { return nil }
