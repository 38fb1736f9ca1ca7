package gologadapter

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/kataras/golog"

	"github.com/trickstertwo/xcall"
)

// Sink writes xcall entries through kataras/golog. The message is followed
// by the record's fields as key=value pairs; trace is written at debug.
type Sink struct {
	l *golog.Logger
}

var _ xcall.Sink = (*Sink)(nil)

// New wraps an existing golog.Logger. Its level still applies.
func New(l *golog.Logger) *Sink {
	if l == nil {
		l = golog.New()
	}
	return &Sink{l: l}
}

// NewWriter builds a debug-level golog.Logger writing to w (default
// os.Stdout).
func NewWriter(w io.Writer) *Sink {
	if w == nil {
		w = os.Stdout
	}
	l := golog.New()
	l.SetOutput(w)
	l.SetLevel("debug")
	return New(l)
}

func (s *Sink) Write(e xcall.Entry) {
	line := e.Message
	if e.Record != nil {
		line += " " + summary(e.Record.Fields())
	}
	switch e.Channel {
	case xcall.ChannelTrace, xcall.ChannelDebug:
		s.l.Debug(line)
	case xcall.ChannelWarn:
		s.l.Warn(line)
	case xcall.ChannelError:
		s.l.Error(line)
	default:
		s.l.Info(line)
	}
}

func summary(fs []xcall.Field) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, f := range fs {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(f.K)
		b.WriteByte('=')
		switch f.Kind {
		case xcall.KindString:
			b.WriteString(f.Str)
		case xcall.KindInt64:
			fmt.Fprintf(&b, "%d", f.Int64)
		case xcall.KindTime:
			b.WriteString(f.Time.Format(time.RFC3339Nano))
		default:
			fmt.Fprintf(&b, "%v", f.Any)
		}
	}
	b.WriteByte('}')
	return b.String()
}
