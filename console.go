package xcall

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ConsoleSinkName is the registry name of the built-in console sink.
const ConsoleSinkName = "console"

// StyleMode controls whether the console sink renders style descriptors.
type StyleMode uint8

const (
	StyleAuto   StyleMode = iota // colour only when the writer is a terminal
	StyleAlways                  // force true-colour escape sequences
	StyleNever                   // plain text, styles ignored
)

// ParseStyleMode maps "auto", "always" or "never" to a StyleMode.
// The empty string selects StyleAuto.
func ParseStyleMode(s string) (StyleMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return StyleAuto, nil
	case "always", "force":
		return StyleAlways, nil
	case "never", "off", "plain":
		return StyleNever, nil
	default:
		return StyleAuto, fmt.Errorf("%w: style mode %q", ErrInvalidConfig, s)
	}
}

// ConsoleOptions configures NewConsoleSink.
type ConsoleOptions struct {
	Out      io.Writer             // debug, info, log, trace; default os.Stdout
	Err      io.Writer             // warn, error; default os.Stderr
	Writers  map[Channel]io.Writer // per-channel override
	Style    StyleMode
	OnError  func(error) // receives write errors; nil drops them
	ShowTime bool        // include the record timestamp in the summary
}

// ConsoleSink writes one line per entry: the (optionally styled) message
// followed by a key=value summary of the record.
type ConsoleSink struct {
	mu        sync.Mutex
	writers   [ChannelTrace + 1]io.Writer
	renderers [ChannelTrace + 1]*lipgloss.Renderer
	colored   [ChannelTrace + 1]bool
	styles    sync.Map // styleKey -> lipgloss.Style
	onError   func(error)
	showTime  bool
}

type styleKey struct {
	r *lipgloss.Renderer
	d string
}

var _ Sink = (*ConsoleSink)(nil)

func NewConsoleSink(opts ConsoleOptions) *ConsoleSink {
	out, errw := opts.Out, opts.Err
	if out == nil {
		out = os.Stdout
	}
	if errw == nil {
		errw = os.Stderr
	}
	s := &ConsoleSink{onError: opts.OnError, showTime: opts.ShowTime}
	renderers := map[io.Writer]*lipgloss.Renderer{}
	for _, ch := range Channels() {
		w := out
		if ch == ChannelWarn || ch == ChannelError {
			w = errw
		}
		if cw, ok := opts.Writers[ch]; ok && cw != nil {
			w = cw
		}
		r, ok := renderers[w]
		if !ok {
			r = lipgloss.NewRenderer(w)
			if opts.Style == StyleAlways {
				r.SetColorProfile(termenv.TrueColor)
			}
			renderers[w] = r
		}
		s.writers[ch] = w
		s.renderers[ch] = r
		s.colored[ch] = wantsColor(w, opts.Style)
	}
	return s
}

func wantsColor(w io.Writer, mode StyleMode) bool {
	switch mode {
	case StyleAlways:
		return true
	case StyleNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (s *ConsoleSink) Write(e Entry) {
	ch := e.Channel
	if !ch.Valid() {
		ch = ChannelLog
	}

	buf := getBuf()
	defer putBuf(buf)

	msg := e.Message
	if e.Styled && s.colored[ch] && e.Style != "" {
		msg = s.style(s.renderers[ch], e.Style).Render(msg)
	}
	buf.writeString(msg)
	if e.Record != nil {
		s.appendSummary(buf, e.Record)
	}
	buf.writeByte('\n')

	s.mu.Lock()
	_, err := s.writers[ch].Write(buf.b)
	s.mu.Unlock()
	if err != nil && s.onError != nil {
		s.onError(err)
	}
}

func (s *ConsoleSink) style(r *lipgloss.Renderer, descriptor string) lipgloss.Style {
	k := styleKey{r: r, d: descriptor}
	if v, ok := s.styles.Load(k); ok {
		return v.(lipgloss.Style)
	}
	st := ParseStyle(r, descriptor)
	s.styles.Store(k, st)
	return st
}

func (s *ConsoleSink) appendSummary(buf *buffer, rec *Record) {
	buf.writeString(" {")
	first := true
	for _, f := range rec.Fields() {
		if f.K == KeyTimestamp && !s.showTime {
			continue
		}
		if !first {
			buf.writeByte(' ')
		}
		first = false
		buf.writeString(f.K)
		buf.writeByte('=')
		appendTextValue(buf, &f)
	}
	buf.writeByte('}')
}

func appendTextValue(buf *buffer, f *Field) {
	switch f.Kind {
	case KindString:
		appendTextString(buf, f.Str)
	case KindInt64:
		buf.b = strconv.AppendInt(buf.b, f.Int64, 10)
	case KindTime:
		buf.b = f.Time.AppendFormat(buf.b, time.RFC3339Nano)
	case KindAny:
		buf.b = fmt.Appendf(buf.b, "%v", f.Any)
	}
}

// appendTextString quotes values that would break key=value parsing.
func appendTextString(buf *buffer, s string) {
	if s == "" || strings.ContainsAny(s, " =\"\t\n") {
		buf.b = strconv.AppendQuote(buf.b, s)
		return
	}
	buf.writeString(s)
}

// buffer is a simple growing byte buffer recycled through bufPool.
type buffer struct{ b []byte }

func (buf *buffer) writeString(s string) { buf.b = append(buf.b, s...) }
func (buf *buffer) writeByte(c byte)     { buf.b = append(buf.b, c) }

var bufPool = sync.Pool{New: func() any { return &buffer{b: make([]byte, 0, 512)} }}

func getBuf() *buffer {
	buf := bufPool.Get().(*buffer)
	buf.b = buf.b[:0]
	return buf
}

func putBuf(buf *buffer) {
	if cap(buf.b) <= 64*1024 {
		bufPool.Put(buf)
	}
}
