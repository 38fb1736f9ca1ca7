package xcall

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_Channels(t *testing.T) {
	t.Parallel()
	h, sink := newTestHub(t, PassAll())
	rec := NewRecord(frozenAt, 2, Method{Receiver: "calc", Name: "Sum"})
	l := h.NewLogger(rec)

	l.Debug("d")
	l.Info("i")
	l.Log("l")
	l.Error("e")
	l.Warn("w")
	l.Trace("t")
	l.Write(ChannelInfo, "x")

	entries := sink.Entries()
	require.Len(t, entries, 7)
	want := []Channel{ChannelDebug, ChannelInfo, ChannelLog, ChannelError, ChannelWarn, ChannelTrace, ChannelInfo}
	for i, e := range entries {
		assert.Equal(t, want[i], e.Channel)
		assert.Same(t, rec, e.Record)
		assert.Equal(t, DefaultStyle(e.Channel), e.Style)
	}
	assert.Same(t, rec, l.Record())
}

func TestLogger_NilIsNoop(t *testing.T) {
	t.Parallel()
	var l *Logger
	assert.NotPanics(t, func() {
		l.Debug("x")
		l.Error("x")
		l.Write(ChannelWarn, "x")
	})
	assert.Nil(t, l.Record())
}

func TestLogger_NilRecordBecomesEmpty(t *testing.T) {
	t.Parallel()
	h, sink := newTestHub(t, PassAll())
	h.NewLogger(nil).Info("x")

	entries := sink.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, DefaultImportance, entries[0].Record.Importance())
}

func TestLogger_RecordEnrichmentVisibleToListener(t *testing.T) {
	t.Parallel()
	var seen any
	h, _ := newTestHub(t, ListenerFuncs{
		Before: func(rec *Record, _ Channel) bool {
			seen = rec.Data.Result
			return true
		},
	})
	l := h.NewLogger(NewEmptyRecord())
	l.Record().Data.Result = 42
	l.Info("enriched")

	assert.Equal(t, 42, seen)
}
