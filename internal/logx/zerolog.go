package logx

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ZerologAdapter adapts zerolog.Logger to the logx.Logger interface.
type ZerologAdapter struct {
	l zerolog.Logger
}

// NewZerologAdapter wraps an existing zerolog logger.
func NewZerologAdapter(l zerolog.Logger) Logger {
	return &ZerologAdapter{l: l}
}

// NewConsole builds a human-readable zerolog logger, handy for local runs.
func NewConsole(w io.Writer, level string) Logger {
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	l := zerolog.New(out).Level(zerologLevel(level)).With().Timestamp().Logger()
	return NewZerologAdapter(l)
}

func (z *ZerologAdapter) Debug(msg string, fields ...Field) { emit(z.l.Debug(), msg, fields) }
func (z *ZerologAdapter) Info(msg string, fields ...Field)  { emit(z.l.Info(), msg, fields) }
func (z *ZerologAdapter) Warn(msg string, fields ...Field)  { emit(z.l.Warn(), msg, fields) }
func (z *ZerologAdapter) Error(msg string, fields ...Field) { emit(z.l.Error(), msg, fields) }

// With returns a child logger carrying fields.
func (z *ZerologAdapter) With(fields ...Field) Logger {
	ctx := z.l.With()
	for _, f := range fields {
		ctx = ctx.Interface(f.Key, fieldValue(f))
	}
	return &ZerologAdapter{l: ctx.Logger()}
}

// Sync is a no-op for zerolog writers.
func (z *ZerologAdapter) Sync() error { return nil }

func emit(ev *zerolog.Event, msg string, fields []Field) {
	if ev == nil {
		return
	}
	for _, f := range fields {
		ev = ev.Interface(f.Key, fieldValue(f))
	}
	ev.Msg(msg)
}

func fieldValue(f Field) any {
	if err, ok := f.Value.(error); ok && err != nil {
		return err.Error()
	}
	return f.Value
}

func zerologLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
