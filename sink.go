package xcall

import (
	"fmt"
	"io"
	"sort"
	"sync"
)

// Entry is what a Sink receives for one emitted record.
type Entry struct {
	Channel Channel
	Message string
	Style   string // style descriptor; meaningful only when Styled
	Styled  bool
	Record  *Record
}

// Sink is the output backend Strategy (console, zerolog, zap, ...).
// Write must not retain e.Record after returning.
type Sink interface {
	Write(e Entry)
}

// SinkFunc adapter.
type SinkFunc func(Entry)

func (f SinkFunc) Write(e Entry) { f(e) }

// SinkConfig is handed to registered sink factories.
type SinkConfig struct {
	Writer io.Writer // nil selects the backend default (stdout/stderr)
	Style  StyleMode
}

// SinkFactory constructs a Sink from SinkConfig.
type SinkFactory func(cfg SinkConfig) Sink

var (
	factoriesMu sync.RWMutex
	factories   = map[string]SinkFactory{}
)

// RegisterSinkFactory makes a sink available by name to NewSink and Use.
// Adapter packages call this from init() to avoid import cycles:
//
//	func init() {
//	  xcall.RegisterSinkFactory("zerolog", func(cfg xcall.SinkConfig) xcall.Sink {
//	    return zerologadapter.NewJSON(cfg.Writer)
//	  })
//	}
func RegisterSinkFactory(name string, f SinkFactory) {
	factoriesMu.Lock()
	defer factoriesMu.Unlock()
	factories[name] = f
}

// NewSink builds the sink registered under name.
func NewSink(name string, cfg SinkConfig) (Sink, error) {
	factoriesMu.RLock()
	f, ok := factories[name]
	factoriesMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q (registered: %v)", ErrUnknownSink, name, SinkNames())
	}
	return f(cfg), nil
}

// SinkNames lists registered sink names in sorted order.
func SinkNames() []string {
	factoriesMu.RLock()
	defer factoriesMu.RUnlock()
	names := make([]string, 0, len(factories))
	for n := range factories {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func init() {
	RegisterSinkFactory(ConsoleSinkName, func(cfg SinkConfig) Sink {
		opts := ConsoleOptions{Style: cfg.Style}
		if cfg.Writer != nil {
			opts.Out, opts.Err = cfg.Writer, cfg.Writer
		}
		return NewConsoleSink(opts)
	})
}
