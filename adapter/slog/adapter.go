package slogadapter

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/trickstertwo/xcall"
)

// Sink adapts xcall entries to the Go slog API.
// It builds slog.Attrs directly and uses LogAttrs.
type Sink struct {
	l *slog.Logger
}

var _ xcall.Sink = (*Sink)(nil)

func New(l *slog.Logger) *Sink {
	if l == nil {
		l = slog.Default()
	}
	return &Sink{l: l}
}

// NewJSON writes through a slog JSON handler that accepts every channel.
func NewJSON(w io.Writer) *Sink {
	return New(slog.New(slog.NewJSONHandler(orStdout(w), handlerOptions())))
}

// NewText writes through a slog text handler that accepts every channel.
func NewText(w io.Writer) *Sink {
	return New(slog.New(slog.NewTextHandler(orStdout(w), handlerOptions())))
}

func orStdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}

func handlerOptions() *slog.HandlerOptions {
	return &slog.HandlerOptions{
		Level: slog.Level(xcall.LevelTrace),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				if lvl, ok := a.Value.Any().(slog.Level); ok && lvl < slog.LevelDebug {
					return slog.String(slog.LevelKey, "TRACE")
				}
			}
			return a
		},
	}
}

func (s *Sink) Write(e xcall.Entry) {
	var fields []xcall.Field
	if e.Record != nil {
		fields = e.Record.Fields()
	}
	attrs := make([]slog.Attr, 0, 1+len(fields))
	attrs = append(attrs, slog.String("channel", e.Channel.String()))
	for i := range fields {
		attrs = append(attrs, toAttr(fields[i]))
	}
	s.l.LogAttrs(context.Background(), slog.Level(e.Channel.Level()), e.Message, attrs...)
}

func toAttr(f xcall.Field) slog.Attr {
	switch f.Kind {
	case xcall.KindString:
		return slog.String(f.K, f.Str)
	case xcall.KindInt64:
		return slog.Int64(f.K, f.Int64)
	case xcall.KindTime:
		return slog.Time(f.K, f.Time)
	case xcall.KindAny:
		return slog.Any(f.K, f.Any)
	default:
		return slog.Any(f.K, nil)
	}
}
