package logging

import (
	"io"
	"log/slog"
	"strings"
)

// BuildLogger returns a JSON logger at the named level. Unknown levels fall
// back to info.
func BuildLogger(w io.Writer, level string) *slog.Logger {
	ops := &slog.HandlerOptions{
		AddSource: true,
		Level:     ParseLevel(level),
	}
	return slog.New(slog.NewJSONHandler(w, ops))
}

func ParseLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo
	}
	return l
}

func ErrAttr(err error) slog.Attr {
	return slog.Any("error", err)
}
