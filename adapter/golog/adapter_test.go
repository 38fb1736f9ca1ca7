package gologadapter

import (
	"bytes"
	"testing"
	"time"

	"github.com/kataras/golog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trickstertwo/xcall"
)

func TestGologSink_WritesMessageAndFields(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriter(&buf)

	rec := xcall.NewRecord(time.Time{}, 5, xcall.Method{Receiver: "Cart", Name: "Checkout"})
	rec.Data.Tag = "shop"
	s.Write(xcall.Entry{Channel: xcall.ChannelLog, Message: "call: Checkout", Record: rec})

	out := buf.String()
	assert.Contains(t, out, "call: Checkout")
	assert.Contains(t, out, "method=Cart.Checkout")
	assert.Contains(t, out, "importance=5")
	assert.Contains(t, out, "tag=shop")
}

func TestGologSink_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := golog.New()
	l.SetOutput(&buf)
	l.SetLevel("error")
	s := New(l)

	s.Write(xcall.Entry{Channel: xcall.ChannelDebug, Message: "filtered"})
	s.Write(xcall.Entry{Channel: xcall.ChannelInfo, Message: "filtered"})
	assert.Empty(t, buf.String())

	s.Write(xcall.Entry{Channel: xcall.ChannelError, Message: "boom"})
	assert.Contains(t, buf.String(), "boom")
}

func TestGologSink_Registered(t *testing.T) {
	var buf bytes.Buffer
	s, err := xcall.NewSink("golog", xcall.SinkConfig{Writer: &buf})
	require.NoError(t, err)

	s.Write(xcall.Entry{Channel: xcall.ChannelTrace, Message: "traced"})
	assert.Contains(t, buf.String(), "traced")
}
