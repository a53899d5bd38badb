package main

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/zeebo/errs"

	"github.com/zeebo/simplerand/seeds"
)

// Error is the class of every configuration and startup error.
var Error = errs.Class("xsvectors")

// Config describes the streams to dump.
type Config struct {
	Count   int      `toml:"count"`
	Streams []Stream `toml:"stream"`
}

// Stream is one named generator. Without a seed the seed is derived from the
// name. Shape is the gamma shape sampled for the stream.
type Stream struct {
	Name  string   `toml:"name"`
	Seed  *uint32  `toml:"seed"`
	Shape *float64 `toml:"shape"`
}

const defaultShape = 1.5

func uint32p(v uint32) *uint32 { return &v }

// DefaultConfig is used when no configuration file is given.
var DefaultConfig = Config{
	Count: 10,
	Streams: []Stream{
		{Name: "default", Seed: uint32p(seeds.Fallback)},
	},
}

// seed returns the configured seed or the one derived from the name.
func (s Stream) seed() uint32 {
	if s.Seed != nil {
		return *s.Seed
	}
	return seeds.FromName(s.Name)
}

func (s Stream) shape() float64 {
	if s.Shape != nil {
		return *s.Shape
	}
	return defaultShape
}

// ParseConfig decodes a TOML document over the defaults.
func ParseConfig(data string) (Config, error) {
	cfg := Config{Count: DefaultConfig.Count}

	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, Error.Wrap(err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return Config{}, Error.New("unknown keys: %s", strings.Join(keys, ", "))
	}

	if len(cfg.Streams) == 0 {
		cfg.Streams = DefaultConfig.Streams
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Count < 0 {
		return Error.New("count must not be negative: %d", c.Count)
	}
	names := make(map[string]bool, len(c.Streams))
	for i, s := range c.Streams {
		if s.Name == "" {
			return Error.New("stream %d has no name", i)
		}
		if names[s.Name] {
			return Error.New("duplicate stream: %q", s.Name)
		}
		names[s.Name] = true
		if shape := s.shape(); !(shape > 0) {
			return Error.New("stream %q: shape must be positive: %v", s.Name, shape)
		}
	}
	return nil
}
