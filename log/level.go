package log

import (
	"fmt"
	"log/slog"
)

// Level indicates the verbosity of a log statement.
type Level uint8

const (
	// LevelTrace is the most verbose level, finer grained than debug.
	LevelTrace Level = iota

	// LevelDebug includes fine-grained events that are useful when debugging the library, for example a running sum
	// becoming non-finite.
	LevelDebug

	// LevelInfo highlights the progress of the library at a coarse-grained level.
	LevelInfo

	// LevelWarning includes expected but potentially interesting events.
	LevelWarning

	// LevelError includes errors which still allow the library to continue running.
	LevelError

	// LevelPanic includes errors which lead to a panic.
	LevelPanic
)

// String returns the four character prefix used when writing a statement at this level.
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "TRAC"
	case LevelDebug:
		return "DEBU"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARN"
	case LevelError:
		return "ERRO"
	case LevelPanic:
		return "PNIC"
	}

	return fmt.Sprintf("Level(%d)", uint8(l))
}

// slogLevel maps the level onto the closest 'slog' level; trace and panic sit four steps outside debug/error in the
// same way 'slog' spaces its own levels.
func (l Level) slogLevel() slog.Level {
	switch l {
	case LevelTrace:
		return slog.LevelDebug - 4
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarning:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	}

	return slog.LevelError + 4
}
