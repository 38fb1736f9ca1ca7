package xcall

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ProfileFormat identifies a profile encoding.
type ProfileFormat string

const (
	ProfileYAML ProfileFormat = "yaml"
	ProfileTOML ProfileFormat = "toml"
)

// Profile adjusts tracing without code changes:
//
//	listener:
//	  min_importance: 0
//	  channels: [log, error]
//	methods:
//	  Demo.Add: {args: [0], print_result: true}
//	classes:
//	  Demo: {tag: DEMO}
//
// Method keys are "Receiver.Method" (or the bare name for plain functions);
// class keys are receiver type names.
type Profile struct {
	Listener *FilterSpec               `yaml:"listener" toml:"listener"`
	Methods  map[string]MethodOverride `yaml:"methods" toml:"methods"`
	Classes  map[string]ClassConfig    `yaml:"classes" toml:"classes"`
}

// LoadProfile reads a profile, choosing the format by file extension
// (.yaml, .yml or .toml).
func LoadProfile(path string) (*Profile, error) {
	var format ProfileFormat
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = ProfileYAML
	case ".toml":
		format = ProfileTOML
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedProfileFormat, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	p, err := ParseProfile(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// ParseProfile decodes a profile from data.
func ParseProfile(data []byte, format ProfileFormat) (*Profile, error) {
	p := &Profile{}
	switch format {
	case ProfileYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(p); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml profile: %w", err)
		}
	case ProfileTOML:
		md, err := toml.Decode(string(data), p)
		if err != nil {
			return nil, fmt.Errorf("decode toml profile: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("%w: unknown profile keys %v", ErrInvalidConfig, undecoded)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedProfileFormat, format)
	}
	return p, nil
}

// NewListener builds the profile's listener, or returns nil when the
// profile does not declare one.
func (p *Profile) NewListener() (Listener, error) {
	if p == nil || p.Listener == nil {
		return nil, nil
	}
	return NewFilterListener(*p.Listener)
}
