// Package setting picks a random key to play in: a root pitch class and a
// scale type.
package setting

import (
	"math/rand/v2"
	"slices"
	"time"

	"github.com/RyanBlaney/musicbox/box"
	"github.com/RyanBlaney/musicbox/logging"
	"github.com/RyanBlaney/musicbox/theory"
)

// Setting is one generated choice
type Setting struct {
	Root      theory.PitchClass
	ScaleType string
	Scale     theory.Scale
	Playable  []theory.Note // empty unless a box layout is configured
}

// settingYAML is the serialized form of Setting
type settingYAML struct {
	Root      string   `yaml:"root"`
	ScaleType string   `yaml:"scale_type"`
	Scale     []string `yaml:"scale"`
	Playable  []string `yaml:"playable,omitempty"`
}

// MarshalYAML renders pitch classes and notes by name
func (s Setting) MarshalYAML() (any, error) {
	out := settingYAML{
		Root:      s.Root.String(),
		ScaleType: s.ScaleType,
	}
	for _, t := range s.Scale.Tones() {
		out.Scale = append(out.Scale, t.String())
	}
	for _, n := range s.Playable {
		out.Playable = append(out.Playable, n.String())
	}
	return out, nil
}

// Generator draws settings from a Config
type Generator struct {
	config Config
	roots  []theory.PitchClass
	layout *box.Layout
	rng    *rand.Rand
	logger logging.Logger
}

// NewGenerator validates cfg and seeds the generator
func NewGenerator(cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var roots []theory.PitchClass
	if len(cfg.Roots) == 0 {
		roots = slices.Collect(theory.AllPitchClasses(theory.C))
	} else {
		for _, name := range cfg.Roots {
			pc, err := theory.ParsePitchClass(name)
			if err != nil {
				return nil, err
			}
			roots = append(roots, pc)
		}
	}

	var layout *box.Layout
	if cfg.Box != "" {
		l, err := box.Lookup(cfg.Box)
		if err != nil {
			return nil, err
		}
		layout = &l
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	logger := logging.WithFields(logging.Fields{
		"component": "setting_generator",
	})
	logger.Debug("Initialized setting generator", logging.Fields{
		"roots":       len(roots),
		"scale_types": len(cfg.ScaleTypes),
		"seed":        seed,
	})

	return &Generator{
		config: cfg,
		roots:  roots,
		layout: layout,
		rng:    rand.New(rand.NewPCG(seed, seed)),
		logger: logger,
	}, nil
}

// Generate draws a root and a scale type and builds the scale
func (g *Generator) Generate() (Setting, error) {
	root := g.roots[g.rng.IntN(len(g.roots))]
	scaleType := g.config.ScaleTypes[g.rng.IntN(len(g.config.ScaleTypes))]

	scale, err := theory.NewScale(root, scaleType)
	if err != nil {
		g.logger.Error(err, "Failed to build scale", logging.Fields{"scale_type": scaleType})
		return Setting{}, err
	}

	s := Setting{
		Root:      root,
		ScaleType: scaleType,
		Scale:     scale,
	}
	if g.layout != nil {
		s.Playable = g.layout.Playable(scale)
	}

	g.logger.Debug("Generated setting", logging.Fields{
		"root":       root.String(),
		"scale_type": scaleType,
	})

	return s, nil
}
