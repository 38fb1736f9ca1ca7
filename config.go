package xcall

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/golobby/cast"
)

// EnvPrefix prefixes every environment variable read by ConfigFromEnv.
const EnvPrefix = "XCALL"

// Config is an explicit, code-first configuration. Fields tagged `env` can
// also be filled from the environment:
//
//	XCALL_SINK=console|zerolog|zap|slog|golog   (adapters register themselves on import)
//	XCALL_STYLE=auto|always|never
//	XCALL_TIME_LAYOUT, XCALL_DATE_LAYOUT         (Go time layouts)
//	XCALL_PROFILE=/path/to/profile.yaml
//	XCALL_VERBOSE=true                           (install PassAll when no profile listener)
type Config struct {
	Sink       string `env:"SINK"`
	Style      string `env:"STYLE"`
	TimeLayout string `env:"TIME_LAYOUT"`
	DateLayout string `env:"DATE_LAYOUT"`
	Profile    string `env:"PROFILE"`
	Verbose    bool   `env:"VERBOSE"`

	// Writer routes all output of the selected sink; nil keeps its default.
	Writer io.Writer
}

// ConfigFromEnv reads Config from XCALL_* variables.
func ConfigFromEnv() (Config, error) {
	return LoadConfig(EnvPrefix)
}

// LoadConfig reads Config from PREFIX_* variables. Unset variables keep
// the zero value.
func LoadConfig(prefix string) (Config, error) {
	var cfg Config
	rv := reflect.ValueOf(&cfg).Elem()
	rt := rv.Type()
	prefix = strings.ToUpper(prefix)
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		tag, ok := sf.Tag.Lookup("env")
		if !ok {
			continue
		}
		name := strings.ToUpper(tag)
		if prefix != "" {
			name = prefix + "_" + name
		}
		raw := os.Getenv(name)
		if raw == "" {
			continue
		}
		v, err := cast.FromType(raw, sf.Type)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, name, err)
		}
		rv.Field(i).Set(reflect.ValueOf(v))
	}
	return cfg, nil
}

// Use builds a Hub and an Interceptor from cfg, installs both as the
// process defaults, and returns them.
func Use(cfg Config) (*Hub, *Interceptor, error) {
	mode, err := ParseStyleMode(cfg.Style)
	if err != nil {
		return nil, nil, err
	}
	name := cfg.Sink
	if name == "" {
		name = ConsoleSinkName
	}
	sink, err := NewSink(name, SinkConfig{Writer: cfg.Writer, Style: mode})
	if err != nil {
		return nil, nil, err
	}

	var (
		profile  *Profile
		listener Listener
	)
	if cfg.Profile != "" {
		if profile, err = LoadProfile(cfg.Profile); err != nil {
			return nil, nil, err
		}
		if listener, err = profile.NewListener(); err != nil {
			return nil, nil, err
		}
	}
	if listener == nil && cfg.Verbose {
		listener = PassAll()
	}

	hub, err := NewBuilder().WithSink(sink).WithListener(listener).Build()
	if err != nil {
		return nil, nil, err
	}
	ic := NewInterceptor(
		WithHub(hub),
		WithProfile(profile),
		WithLayouts(cfg.TimeLayout, cfg.DateLayout),
	)
	SetDefault(hub)
	SetDefaultInterceptor(ic)
	return hub, ic, nil
}
