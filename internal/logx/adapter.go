package logx

import "log/slog"

// SlogAdapter adapts a *slog.Logger to the Logger interface.
type SlogAdapter struct {
	l *slog.Logger
}

// NewSlogAdapter wraps the provided *slog.Logger.
func NewSlogAdapter(l *slog.Logger) Logger {
	return &SlogAdapter{l: l}
}

// Debug logs at debug level.
func (s *SlogAdapter) Debug(msg string, fields ...Field) { s.l.Debug(msg, kvPairs(fields)...) }

// Info logs at info level.
func (s *SlogAdapter) Info(msg string, fields ...Field) { s.l.Info(msg, kvPairs(fields)...) }

// Warn logs at warn level.
func (s *SlogAdapter) Warn(msg string, fields ...Field) { s.l.Warn(msg, kvPairs(fields)...) }

// Error logs at error level.
func (s *SlogAdapter) Error(msg string, fields ...Field) { s.l.Error(msg, kvPairs(fields)...) }

// With attaches fields to every entry logged through the returned Logger.
func (s *SlogAdapter) With(fields ...Field) Logger {
	if len(fields) == 0 {
		return s
	}
	return &SlogAdapter{l: s.l.With(kvPairs(fields)...)}
}

// Sync is a no-op; slog does not buffer.
func (s *SlogAdapter) Sync() error { return nil }

// kvPairs flattens fields into slog key-value arguments.
func kvPairs(fields []Field) []any {
	args := make([]any, 0, len(fields)*2)
	for _, f := range fields {
		args = append(args, f.Key, f.Value)
	}
	return args
}
