package zerologadapter

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/trickstertwo/xcall"
)

// Sink bridges xcall entries to rs/zerolog.
//
// The record's fields become event fields, its timestamp is written as an
// RFC3339Nano "ts" string, and the channel is kept under "channel" since
// zerolog has no "log" level. Style descriptors are ignored.
type Sink struct {
	l zerolog.Logger
}

var _ xcall.Sink = (*Sink)(nil)

func New(l zerolog.Logger) *Sink {
	return &Sink{l: l}
}

// NewJSON writes one JSON object per entry to w (default os.Stdout).
func NewJSON(w io.Writer) *Sink {
	if w == nil {
		w = os.Stdout
	}
	return New(zerolog.New(w).Level(zerolog.TraceLevel))
}

// NewConsole writes human-readable lines through zerolog.ConsoleWriter.
func NewConsole(w io.Writer, noColor bool) *Sink {
	if w == nil {
		w = os.Stdout
	}
	cw := zerolog.ConsoleWriter{Out: w, NoColor: noColor, TimeFormat: time.RFC3339Nano}
	cw.PartsExclude = append(cw.PartsExclude, zerolog.TimestampFieldName)
	return New(zerolog.New(cw).Level(zerolog.TraceLevel))
}

func (s *Sink) Write(e xcall.Entry) {
	zlvl := mapLevel(e.Channel.Level())

	// Fast path: drop early if below logger's min level (no Event allocation).
	if zlvl < s.l.GetLevel() {
		return
	}

	ev := s.l.WithLevel(zlvl)
	ev.Str("channel", e.Channel.String())
	if e.Record != nil {
		for _, f := range e.Record.Fields() {
			appendEventField(ev, &f)
		}
	}
	ev.Msg(e.Message)
}

// mapLevel converts an xcall.Level to zerolog.Level.
func mapLevel(l xcall.Level) zerolog.Level {
	switch {
	case l <= xcall.LevelTrace:
		return zerolog.TraceLevel
	case l <= xcall.LevelDebug:
		return zerolog.DebugLevel
	case l <= xcall.LevelInfo:
		return zerolog.InfoLevel
	case l <= xcall.LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

// appendEventField writes an xcall.Field to a zerolog.Event.
func appendEventField(e *zerolog.Event, f *xcall.Field) {
	switch f.Kind {
	case xcall.KindString:
		e.Str(f.K, f.Str)
	case xcall.KindInt64:
		e.Int64(f.K, f.Int64)
	case xcall.KindTime:
		// String keeps RFC3339Nano precision regardless of zerolog.TimeFieldFormat.
		e.Str(f.K, f.Time.UTC().Format(time.RFC3339Nano))
	case xcall.KindAny:
		e.Interface(f.K, f.Any)
	default:
		e.Interface(f.K, nil)
	}
}
