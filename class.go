package xcall

import (
	"reflect"
	"sync"
)

// ClassConfig is attached to a type at registration time.
type ClassConfig struct {
	Tag string `yaml:"tag" toml:"tag"`
}

// TagRegistry maps type identity to a class tag. T and *T share an entry.
type TagRegistry struct {
	mu   sync.RWMutex
	tags map[reflect.Type]string
}

func NewTagRegistry() *TagRegistry {
	return &TagRegistry{tags: map[reflect.Type]string{}}
}

var defaultTags = NewTagRegistry()

// DefaultTags returns the registry used by the default interceptor.
func DefaultTags() *TagRegistry { return defaultTags }

// Register tags the type of v. An empty tag removes the entry.
func (r *TagRegistry) Register(v any, cfg ClassConfig) {
	r.register(baseType(v), cfg)
}

func (r *TagRegistry) register(t reflect.Type, cfg ClassConfig) {
	if t == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if cfg.Tag == "" {
		delete(r.tags, t)
		return
	}
	r.tags[t] = cfg.Tag
}

// Lookup returns the tag registered for the type of v.
func (r *TagRegistry) Lookup(v any) (string, bool) {
	t := baseType(v)
	if t == nil {
		return "", false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	tag, ok := r.tags[t]
	return tag, ok
}

// RegisterType tags T in r without needing a value.
func RegisterType[T any](r *TagRegistry, cfg ClassConfig) {
	if r == nil {
		r = defaultTags
	}
	t := reflect.TypeFor[T]()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	r.register(t, cfg)
}
