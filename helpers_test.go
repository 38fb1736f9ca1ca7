package xcall

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/trickstertwo/xclock"
)

// frozenAt renders as "3:04:05 PM   12/31/2024" with the default layouts.
var frozenAt = time.Date(2024, 12, 31, 15, 4, 5, 0, time.UTC)

// recordingSink is a minimal Sink for tests. It keeps every entry it sees.
type recordingSink struct {
	mu      sync.Mutex
	entries []Entry
}

func (s *recordingSink) Write(e Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, e)
}

func (s *recordingSink) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Entry(nil), s.entries...)
}

func (s *recordingSink) On(ch Channel) []Entry {
	var out []Entry
	for _, e := range s.Entries() {
		if e.Channel == ch {
			out = append(out, e)
		}
	}
	return out
}

// newTestHub returns a Hub with a frozen clock writing into a recordingSink.
// l may be nil.
func newTestHub(t testing.TB, l Listener) (*Hub, *recordingSink) {
	t.Helper()
	sink := &recordingSink{}
	h, err := NewBuilder().
		WithSink(sink).
		WithListener(l).
		WithClock(xclock.NewFrozen(frozenAt)).
		Build()
	require.NoError(t, err)
	return h, sink
}

// newTestInterceptor binds a fresh interceptor and tag registry to a test hub.
func newTestInterceptor(t testing.TB, l Listener, opts ...InterceptorOption) (*Interceptor, *Hub, *recordingSink) {
	t.Helper()
	h, sink := newTestHub(t, l)
	opts = append([]InterceptorOption{WithHub(h), WithTags(NewTagRegistry())}, opts...)
	return NewInterceptor(opts...), h, sink
}

type calc struct{}
