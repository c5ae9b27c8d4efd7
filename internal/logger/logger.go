package logger

import (
	"context"
	"log/slog"
	"os"
	"slices"
)

type Logger struct {
	*slog.Logger

	Level slog.Level
}

const (
	LevelDebug    = slog.LevelDebug
	LevelInfo     = slog.LevelInfo
	LevelWarning  = slog.LevelWarn
	LevelError    = slog.LevelError
	LevelCritical = slog.Level(12)
)

// ParseLevel parses a string into a log level
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(s))

	return level, err
}

// ErrAttr returns an attribute for an error
func ErrAttr(err error) slog.Attr {
	return slog.Any("error", err)
}

// KeysAttr returns an attribute listing the keys of a map in sorted order.
// Used to log which environment variables were touched without ever logging
// their values.
func KeysAttr(values map[string]string) slog.Attr {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return slog.Any("keys", keys)
}

// New returns a new Logger with the given log level
func New(logLevel slog.Level) *Logger {
	return &Logger{
		Logger: slog.New(
			slog.NewJSONHandler(
				os.Stderr,
				&slog.HandlerOptions{
					Level: logLevel,
					ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
						// Map the custom critical level to a readable name.
						if a.Key == slog.LevelKey {
							level := a.Value.Any().(slog.Level)

							switch {
							case level < LevelInfo:
								a.Value = slog.StringValue("DEBUG")
							case level < LevelWarning:
								a.Value = slog.StringValue("INFO")
							case level < LevelError:
								a.Value = slog.StringValue("WARNING")
							case level < LevelCritical:
								a.Value = slog.StringValue("ERROR")
							default:
								a.Value = slog.StringValue("CRITICAL")
							}
						}

						return a
					},
				},
			),
		),
		Level: logLevel,
	}
}

// Critical logs a message at the critical level and exits the application
func (l *Logger) Critical(msg string, args ...any) {
	l.Log(context.Background(), LevelCritical, msg, args...)
	os.Exit(1)
}
