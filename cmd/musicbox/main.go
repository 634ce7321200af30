package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/RyanBlaney/musicbox/algorithms/pcset"
	"github.com/RyanBlaney/musicbox/logging"
	"github.com/RyanBlaney/musicbox/setting"
)

type options struct {
	configPath string
	seed       uint64
	box        string
	analyze    bool
	logLevel   string
}

type analysis struct {
	IntervalClasses [6]int   `yaml:"interval_classes"`
	DFTMagnitudes   []string `yaml:"dft_magnitudes"`
	Keys            []string `yaml:"keys"`
}

type output struct {
	Setting  setting.Setting `yaml:"setting"`
	Analysis *analysis       `yaml:"analysis,omitempty"`
}

func main() {
	opts := options{}
	flag.StringVar(&opts.configPath, "config", "", "YAML config file")
	flag.Uint64Var(&opts.seed, "seed", 0, "random seed (0 seeds from the clock)")
	flag.StringVar(&opts.box, "box", "", "music box layout to list playable notes for")
	flag.BoolVar(&opts.analyze, "analyze", false, "add pitch-class set analysis of the scale")
	flag.StringVar(&opts.logLevel, "log-level", "info", "debug, info, warn or error")
	flag.Parse()

	if err := run(opts, os.Stdout); err != nil {
		logging.Fatal(err, "musicbox failed")
	}
}

func run(opts options, w io.Writer) error {
	level, err := logging.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	logging.SetLevel(level)

	cfg := setting.DefaultConfig()
	if opts.configPath != "" {
		cfg, err = setting.LoadConfig(opts.configPath)
		if err != nil {
			return err
		}
		logging.Debug("Loaded config", logging.Fields{"path": opts.configPath})
	}
	if opts.seed != 0 {
		cfg.Seed = opts.seed
	}
	if opts.box != "" {
		cfg.Box = opts.box
	}

	generator, err := setting.NewGenerator(cfg)
	if err != nil {
		return err
	}

	s, err := generator.Generate()
	if err != nil {
		return err
	}

	out := output{Setting: s}
	if opts.analyze {
		out.Analysis, err = analyze(s)
		if err != nil {
			return err
		}
	}

	enc := yaml.NewEncoder(w)
	if err := enc.Encode(out); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

func analyze(s setting.Setting) (*analysis, error) {
	tones := s.Scale.Tones()

	estimator, err := pcset.NewKeyEstimator(pcset.DefaultKeyEstimatorConfig())
	if err != nil {
		return nil, err
	}
	candidates, err := estimator.Estimate(tones)
	if err != nil {
		return nil, fmt.Errorf("key estimation failed: %w", err)
	}

	a := &analysis{IntervalClasses: pcset.IntervalClassVector(tones)}
	for _, m := range pcset.DFTMagnitudes(tones) {
		a.DFTMagnitudes = append(a.DFTMagnitudes, fmt.Sprintf("%.3f", m))
	}
	for _, c := range candidates {
		a.Keys = append(a.Keys, fmt.Sprintf("%s %s (%.3f)", c.Key.Root(), c.Key.Name(), c.Score))
	}
	return a, nil
}
