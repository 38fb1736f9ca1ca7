package xcall

import (
	"sync/atomic"
	"time"

	"github.com/trickstertwo/xclock"
)

// Hub owns the listener slot and the sink every Logger bound to it writes
// through. Both slots are swapped atomically; an emission reads each once.
type Hub struct {
	listener atomic.Pointer[listenerSlot]
	sink     atomic.Pointer[sinkSlot]
	clock    xclock.Clock // nil means xclock.Now()
	stats    stats
}

type listenerSlot struct{ l Listener }

type sinkSlot struct{ s Sink }

// Factory: internal constructor.
func newHub(cfg HubConfig) *Hub {
	h := &Hub{clock: cfg.Clock}
	h.SetSink(cfg.Sink)
	h.InstallListener(cfg.Listener)
	return h
}

// Facade: global access (Singleton + Facade).
var global atomic.Pointer[Hub]

// Default returns the process-wide Hub, creating a console-backed one with
// no listener on first use.
func Default() *Hub {
	if h := global.Load(); h != nil {
		return h
	}
	h := newHub(HubConfig{Sink: NewConsoleSink(ConsoleOptions{})})
	if global.CompareAndSwap(nil, h) {
		return h
	}
	return global.Load()
}

// SetDefault replaces the process-wide Hub. Passing nil restores a fresh
// console-backed Hub on next use.
func SetDefault(h *Hub) { global.Store(h) }

// InstallListener replaces the listener. It affects every later emission
// on every goroutine, including those of invocations already in flight.
// Installing nil is the same as ClearListener.
func (h *Hub) InstallListener(l Listener) {
	if l == nil {
		h.listener.Store(nil)
		return
	}
	h.listener.Store(&listenerSlot{l: l})
}

// ClearListener removes the listener, which silences all output.
func (h *Hub) ClearListener() { h.listener.Store(nil) }

// Listener returns the installed listener or nil.
func (h *Hub) Listener() Listener {
	if s := h.listener.Load(); s != nil {
		return s.l
	}
	return nil
}

// SetSink replaces the output backend. A nil sink is ignored.
func (h *Hub) SetSink(s Sink) {
	if s == nil {
		return
	}
	h.sink.Store(&sinkSlot{s: s})
}

// Sink returns the current output backend.
func (h *Hub) Sink() Sink {
	if s := h.sink.Load(); s != nil {
		return s.s
	}
	return nil
}

// Now is the authoritative timestamp source for records built by
// interceptors bound to this Hub.
func (h *Hub) Now() time.Time {
	if h.clock != nil {
		return h.clock.Now()
	}
	return xclock.Now()
}

// NewLogger returns a Logger around rec that writes through h.
func (h *Hub) NewLogger(rec *Record) *Logger {
	return &Logger{rec: rec, hub: h}
}

// Stats returns emission counters.
func (h *Hub) Stats() StatsSnapshot { return h.stats.snapshot() }

// ResetStats zeroes the emission counters.
func (h *Hub) ResetStats() { h.stats.reset() }

func (h *Hub) emit(rec *Record, ch Channel, msg string) {
	slot := h.listener.Load()
	if slot == nil {
		h.stats.silenced.Add(1)
		return
	}
	l := slot.l
	if !l.BeforeLog(rec, ch) {
		h.stats.filtered.Add(1)
		return
	}
	style, styled := l.ApplyStyle(rec, ch).Resolve(ch)
	if s := h.Sink(); s != nil {
		s.Write(Entry{
			Channel: ch,
			Message: msg,
			Style:   style,
			Styled:  styled,
			Record:  rec,
		})
	}
	h.stats.emitted.Add(1)
	l.AfterLog(rec, ch)
}
