package xcall

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type argMode uint8

const (
	argsNone argMode = iota
	argsAll
	argsAt
)

// ArgSelection chooses which call arguments are captured on a Record.
// The zero value captures nothing.
type ArgSelection struct {
	mode      argMode
	positions []int
}

// NoArgs captures no arguments.
func NoArgs() ArgSelection { return ArgSelection{} }

// AllArgs captures every argument verbatim.
func AllArgs() ArgSelection { return ArgSelection{mode: argsAll} }

// ArgsAt captures the arguments at the given positions, in the order given.
// Duplicates are kept; positions outside the call's arguments capture nil.
func ArgsAt(positions ...int) ArgSelection {
	return ArgSelection{mode: argsAt, positions: append([]int{}, positions...)}
}

// All reports whether every argument is captured.
func (a ArgSelection) All() bool { return a.mode == argsAll }

// Positions returns the configured positions, or nil unless built by ArgsAt.
func (a ArgSelection) Positions() []int {
	if a.mode != argsAt {
		return nil
	}
	return append([]int{}, a.positions...)
}

// Select applies the selection to args. It returns nil when nothing is
// captured.
func (a ArgSelection) Select(args []any) []any {
	switch a.mode {
	case argsAll:
		return append(make([]any, 0, len(args)), args...)
	case argsAt:
		out := make([]any, 0, len(a.positions))
		for _, p := range a.positions {
			if p >= 0 && p < len(args) {
				out = append(out, args[p])
			} else {
				out = append(out, nil)
			}
		}
		return out
	default:
		return nil
	}
}

// UnmarshalYAML accepts either a boolean or a list of positions.
func (a *ArgSelection) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		var all bool
		if err := n.Decode(&all); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidArgSelection, err)
		}
		*a = boolSelection(all)
		return nil
	case yaml.SequenceNode:
		var pos []int
		if err := n.Decode(&pos); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidArgSelection, err)
		}
		*a = ArgsAt(pos...)
		return nil
	default:
		return fmt.Errorf("%w: line %d", ErrInvalidArgSelection, n.Line)
	}
}

// UnmarshalTOML accepts either a boolean or an array of positions.
func (a *ArgSelection) UnmarshalTOML(v any) error {
	switch t := v.(type) {
	case bool:
		*a = boolSelection(t)
		return nil
	case []any:
		pos := make([]int, 0, len(t))
		for _, e := range t {
			n, ok := e.(int64)
			if !ok {
				return fmt.Errorf("%w: position %v is not an integer", ErrInvalidArgSelection, e)
			}
			pos = append(pos, int(n))
		}
		*a = ArgsAt(pos...)
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrInvalidArgSelection, v)
	}
}

func boolSelection(all bool) ArgSelection {
	if all {
		return AllArgs()
	}
	return NoArgs()
}

// MethodConfig is the per-method logging configuration, fixed at wrap time.
type MethodConfig struct {
	Args        ArgSelection
	Importance  int
	Inject      bool // pass a fresh *Logger to the wrapped body
	PrintResult bool // emit a return record on success
	Tag         string
}

// Option configures a MethodConfig.
type Option func(*MethodConfig)

// NewMethodConfig applies opts over the defaults (no args, importance -1).
func NewMethodConfig(opts ...Option) MethodConfig {
	c := MethodConfig{Importance: DefaultImportance}
	for _, o := range opts {
		o(&c)
	}
	return c
}

func WithArgs() Option                       { return WithArgSelection(AllArgs()) }
func WithArgsAt(positions ...int) Option     { return WithArgSelection(ArgsAt(positions...)) }
func WithArgSelection(a ArgSelection) Option { return func(c *MethodConfig) { c.Args = a } }
func WithImportance(n int) Option            { return func(c *MethodConfig) { c.Importance = n } }
func WithInject() Option                     { return func(c *MethodConfig) { c.Inject = true } }
func WithPrintResult() Option                { return func(c *MethodConfig) { c.PrintResult = true } }
func WithTag(tag string) Option              { return func(c *MethodConfig) { c.Tag = tag } }

// MethodOverride replaces the fields it sets on a MethodConfig. Profiles
// use it to adjust wrapped methods without touching code.
type MethodOverride struct {
	Args        *ArgSelection `yaml:"args" toml:"args"`
	Importance  *int          `yaml:"importance" toml:"importance"`
	Inject      *bool         `yaml:"inject" toml:"inject"`
	PrintResult *bool         `yaml:"print_result" toml:"print_result"`
	Tag         *string       `yaml:"tag" toml:"tag"`
}

// Apply returns c with the override's set fields replaced.
func (o MethodOverride) Apply(c MethodConfig) MethodConfig {
	if o.Args != nil {
		c.Args = *o.Args
	}
	if o.Importance != nil {
		c.Importance = *o.Importance
	}
	if o.Inject != nil {
		c.Inject = *o.Inject
	}
	if o.PrintResult != nil {
		c.PrintResult = *o.PrintResult
	}
	if o.Tag != nil {
		c.Tag = *o.Tag
	}
	return c
}
