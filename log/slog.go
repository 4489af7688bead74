package log

import (
	"context"
	"fmt"
	"log/slog"
)

// SlogLogger forwards statements to a structured 'slog' logger.
type SlogLogger struct {
	// Logger is the destination, 'slog.Default()' is used when nil.
	Logger *slog.Logger
}

// Log implements the 'Logger' interface.
func (s SlogLogger) Log(level Level, format string, args ...any) {
	l := s.Logger
	if l == nil {
		l = slog.Default()
	}

	l.Log(context.Background(), level.slogLevel(), fmt.Sprintf(format, args...))
}
