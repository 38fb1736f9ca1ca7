package xcall

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func consoleRecord() *Record {
	rec := NewRecord(frozenAt, 1, Method{Receiver: "calc", Name: "Sum"})
	rec.Data.Tag = "a b"
	rec.Data.Args = []any{1, 2}
	rec.Data.Result = 3
	return rec
}

func TestConsoleSink_PlainLine(t *testing.T) {
	t.Parallel()
	var out, errw bytes.Buffer
	s := NewConsoleSink(ConsoleOptions{Out: &out, Err: &errw, Style: StyleNever})

	s.Write(Entry{Channel: ChannelLog, Message: "call: Sum", Style: StyleLog, Styled: true, Record: consoleRecord()})

	assert.Equal(t, "call: Sum {method=calc.Sum importance=1 tag=\"a b\" args=[1 2] result=3}\n", out.String())
	assert.Empty(t, errw.String())
}

func TestConsoleSink_ShowTime(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	s := NewConsoleSink(ConsoleOptions{Out: &out, Style: StyleNever, ShowTime: true})

	s.Write(Entry{Channel: ChannelInfo, Message: "m", Record: NewRecord(frozenAt, 0, Method{Name: "f"})})

	assert.Equal(t, "m {method=f importance=0 ts=2024-12-31T15:04:05Z}\n", out.String())
}

func TestConsoleSink_Routing(t *testing.T) {
	t.Parallel()
	var out, errw, trace bytes.Buffer
	s := NewConsoleSink(ConsoleOptions{
		Out:     &out,
		Err:     &errw,
		Writers: map[Channel]io.Writer{ChannelTrace: &trace},
		Style:   StyleNever,
	})

	for _, ch := range Channels() {
		s.Write(Entry{Channel: ch, Message: ch.String()})
	}
	s.Write(Entry{Channel: Channel(42), Message: "unknown"})

	assert.Equal(t, "debug\ninfo\nlog\nunknown\n", out.String())
	assert.Equal(t, "error\nwarn\n", errw.String())
	assert.Equal(t, "trace\n", trace.String())
}

func TestConsoleSink_Styling(t *testing.T) {
	t.Parallel()
	var forced, auto bytes.Buffer
	always := NewConsoleSink(ConsoleOptions{Out: &forced, Style: StyleAlways})
	detect := NewConsoleSink(ConsoleOptions{Out: &auto, Style: StyleAuto})

	e := Entry{Channel: ChannelLog, Message: "hello", Style: "background: #8c7ae6; color: #2f3640;", Styled: true}
	always.Write(e)
	always.Write(e)
	detect.Write(e)

	assert.Contains(t, forced.String(), "\x1b[")
	assert.Contains(t, forced.String(), "hello")
	assert.Equal(t, "hello\n", auto.String(), "non-terminal writers stay plain")

	forced.Reset()
	e.Styled = false
	always.Write(e)
	assert.Equal(t, "hello\n", forced.String())
}

func TestConsoleSink_OnError(t *testing.T) {
	t.Parallel()
	var got error
	s := NewConsoleSink(ConsoleOptions{Out: failingWriter{}, OnError: func(err error) { got = err }})

	s.Write(Entry{Channel: ChannelInfo, Message: "x"})
	require.Error(t, got)
	assert.Equal(t, "disk full", got.Error())
}

func TestParseStyleMode(t *testing.T) {
	t.Parallel()
	for in, want := range map[string]StyleMode{
		"":       StyleAuto,
		"auto":   StyleAuto,
		"ALWAYS": StyleAlways,
		"force":  StyleAlways,
		" never": StyleNever,
		"plain":  StyleNever,
	} {
		got, err := ParseStyleMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseStyleMode("sometimes")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSinkRegistry(t *testing.T) {
	t.Parallel()
	assert.Contains(t, SinkNames(), ConsoleSinkName)

	var buf bytes.Buffer
	s, err := NewSink(ConsoleSinkName, SinkConfig{Writer: &buf, Style: StyleNever})
	require.NoError(t, err)
	s.Write(Entry{Channel: ChannelError, Message: "to writer"})
	assert.Equal(t, "to writer\n", buf.String())

	_, err = NewSink("nope", SinkConfig{})
	assert.ErrorIs(t, err, ErrUnknownSink)
	assert.True(t, strings.Contains(err.Error(), "console"))
}

func TestSinkFunc(t *testing.T) {
	t.Parallel()
	var got Entry
	var s Sink = SinkFunc(func(e Entry) { got = e })
	s.Write(Entry{Message: "fn"})
	assert.Equal(t, "fn", got.Message)
}
