package setting

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/RyanBlaney/musicbox/box"
	"github.com/RyanBlaney/musicbox/theory"
)

// Config controls which settings the generator may pick
type Config struct {
	ScaleTypes []string `yaml:"scale_types"`
	Roots      []string `yaml:"roots,omitempty"` // empty: all 12 pitch classes
	Seed       uint64   `yaml:"seed,omitempty"`  // 0: seeded from the clock
	Box        string   `yaml:"box,omitempty"`   // music box layout to list playable notes for
}

// DefaultConfig picks a major scale on any root
func DefaultConfig() Config {
	return Config{
		ScaleTypes: []string{"major"},
	}
}

// LoadConfig reads a YAML config file. Keys missing from the file keep
// their DefaultConfig values; unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	return DecodeConfig(f)
}

// DecodeConfig is LoadConfig for an already open reader
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every name in the config against the theory tables
func (c Config) Validate() error {
	if len(c.ScaleTypes) == 0 {
		return errors.New("invalid config: no scale types")
	}
	for _, name := range c.ScaleTypes {
		if _, err := theory.NewScale(theory.C, name); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
	}
	for _, name := range c.Roots {
		if _, err := theory.ParsePitchClass(name); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
	}
	if c.Box != "" {
		if _, err := box.Lookup(c.Box); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
	}
	return nil
}
