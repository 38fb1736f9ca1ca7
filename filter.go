package xcall

import "fmt"

// FilterSpec declares a FilterListener. Empty lists mean "no restriction".
type FilterSpec struct {
	MinImportance *int              `yaml:"min_importance" toml:"min_importance"`
	Channels      []string          `yaml:"channels" toml:"channels"`
	Tags          []string          `yaml:"tags" toml:"tags"`
	Plain         bool              `yaml:"plain" toml:"plain"`
	Styles        map[string]string `yaml:"styles" toml:"styles"` // channel name -> descriptor
}

// FilterListener is a Listener driven by a FilterSpec. A record passes when
// its channel is allowed, its importance is at least the minimum, and its
// tag is in the tag list.
type FilterListener struct {
	minImportance int
	hasMin        bool
	channels      map[Channel]struct{}
	tags          map[string]struct{}
	plain         bool
	styles        map[Channel]string
}

var _ Listener = (*FilterListener)(nil)

func NewFilterListener(spec FilterSpec) (*FilterListener, error) {
	f := &FilterListener{plain: spec.Plain}
	if spec.MinImportance != nil {
		f.minImportance, f.hasMin = *spec.MinImportance, true
	}
	if len(spec.Channels) > 0 {
		f.channels = make(map[Channel]struct{}, len(spec.Channels))
		for _, name := range spec.Channels {
			ch, err := ParseChannel(name)
			if err != nil {
				return nil, fmt.Errorf("filter channels: %w", err)
			}
			f.channels[ch] = struct{}{}
		}
	}
	if len(spec.Tags) > 0 {
		f.tags = make(map[string]struct{}, len(spec.Tags))
		for _, t := range spec.Tags {
			f.tags[t] = struct{}{}
		}
	}
	if len(spec.Styles) > 0 {
		f.styles = make(map[Channel]string, len(spec.Styles))
		for name, style := range spec.Styles {
			ch, err := ParseChannel(name)
			if err != nil {
				return nil, fmt.Errorf("filter styles: %w", err)
			}
			f.styles[ch] = style
		}
	}
	return f, nil
}

func (f *FilterListener) BeforeLog(rec *Record, ch Channel) bool {
	if f.channels != nil {
		if _, ok := f.channels[ch]; !ok {
			return false
		}
	}
	if f.hasMin && rec.Importance() < f.minImportance {
		return false
	}
	if f.tags != nil {
		if _, ok := f.tags[rec.Data.Tag]; !ok {
			return false
		}
	}
	return true
}

func (f *FilterListener) ApplyStyle(_ *Record, ch Channel) Styling {
	if f.plain {
		return Unstyled()
	}
	if s, ok := f.styles[ch]; ok {
		return Styled(s)
	}
	return DefaultStyling()
}

func (f *FilterListener) AfterLog(*Record, Channel) {}
