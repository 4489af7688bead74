package log

import (
	"fmt"
	"io"
	"os"
	"time"
)

// WriterLogger writes each statement as a single line prefixed with a timestamp and the level.
type WriterLogger struct {
	// Writer is where statements are written, defaults to stdout.
	Writer io.Writer

	// Level is the least verbose level which will be written, statements below it are dropped.
	Level Level
}

// Log implements the 'Logger' interface.
func (w WriterLogger) Log(level Level, format string, args ...any) {
	if level < w.Level {
		return
	}

	out := w.Writer
	if out == nil {
		out = os.Stdout
	}

	fmt.Fprintf(out, "%s %s: %s\n", time.Now().Format(time.RFC3339Nano), level, fmt.Sprintf(format, args...))
}
