package xcall

import "github.com/trickstertwo/xclock"

// HubConfig for constructing a Hub (Factory data structure).
type HubConfig struct {
	Sink     Sink
	Listener Listener     // optional; without one nothing is written
	Clock    xclock.Clock // optional; defaults to xclock.Now()
}

// Builder separates construction from representation (Builder pattern).
type Builder struct {
	cfg HubConfig
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) WithSink(s Sink) *Builder {
	b.cfg.Sink = s
	return b
}

func (b *Builder) WithListener(l Listener) *Builder {
	b.cfg.Listener = l
	return b
}

func (b *Builder) WithClock(c xclock.Clock) *Builder {
	b.cfg.Clock = c
	return b
}

// Build constructs the Hub (Factory + Builder).
func (b *Builder) Build() (*Hub, error) {
	if b.cfg.Sink == nil {
		return nil, ErrNoSink
	}
	return newHub(b.cfg), nil
}
