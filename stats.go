package xcall

import "sync/atomic"

type stats struct {
	emitted  atomic.Uint64
	silenced atomic.Uint64
	filtered atomic.Uint64
}

// StatsSnapshot is a point-in-time counters snapshot.
type StatsSnapshot struct {
	Emitted  uint64 // written to the sink
	Silenced uint64 // dropped because no listener was installed
	Filtered uint64 // dropped by Listener.BeforeLog
}

func (s *stats) snapshot() StatsSnapshot {
	return StatsSnapshot{
		Emitted:  s.emitted.Load(),
		Silenced: s.silenced.Load(),
		Filtered: s.filtered.Load(),
	}
}

func (s *stats) reset() {
	s.emitted.Store(0)
	s.silenced.Store(0)
	s.filtered.Store(0)
}
