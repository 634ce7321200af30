package setting

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/RyanBlaney/musicbox/theory"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, []string{"major"}, cfg.ScaleTypes)
	assert.Empty(t, cfg.Roots)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{name: "no scale types", cfg: Config{}},
		{name: "unknown scale", cfg: Config{ScaleTypes: []string{"blues"}}, wantErr: theory.ErrUnknownScaleName},
		{name: "flat root", cfg: Config{ScaleTypes: []string{"major"}, Roots: []string{"Bb"}}, wantErr: theory.ErrInvalidPitchName},
		{name: "unknown box", cfg: Config{ScaleTypes: []string{"major"}, Box: "gi18"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestDecodeConfig(t *testing.T) {
	cfg, err := DecodeConfig(strings.NewReader(`
scale_types: [minor, dorian]
roots: [A, e]
seed: 42
box: gi30
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"minor", "dorian"}, cfg.ScaleTypes)
	assert.Equal(t, []string{"A", "e"}, cfg.Roots)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, "gi30", cfg.Box)
}

func TestDecodeConfig_EmptyKeepsDefaults(t *testing.T) {
	cfg, err := DecodeConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = DecodeConfig(strings.NewReader("seed: 7\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"major"}, cfg.ScaleTypes)
	assert.Equal(t, uint64(7), cfg.Seed)
}

func TestDecodeConfig_Errors(t *testing.T) {
	_, err := DecodeConfig(strings.NewReader("scales: [major]\n"))
	assert.Error(t, err)

	_, err = DecodeConfig(strings.NewReader("scale_types: [lydian_dominant]\n"))
	assert.ErrorIs(t, err, theory.ErrUnknownScaleName)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "setting.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scale_types: [locrian]\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"locrian"}, cfg.ScaleTypes)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestGenerator_FixedChoices(t *testing.T) {
	g, err := NewGenerator(Config{ScaleTypes: []string{"minor"}, Roots: []string{"A"}, Seed: 1})
	require.NoError(t, err)

	s, err := g.Generate()
	require.NoError(t, err)

	expected, err := theory.NewScale(theory.A, "minor")
	require.NoError(t, err)
	assert.Equal(t, theory.A, s.Root)
	assert.Equal(t, "minor", s.ScaleType)
	assert.Equal(t, expected, s.Scale)
	assert.Empty(t, s.Playable)
}

func TestGenerator_DefaultConfigDrawsValidSettings(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 99
	g, err := NewGenerator(cfg)
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		s, err := g.Generate()
		require.NoError(t, err)
		assert.Equal(t, "major", s.ScaleType)
		assert.Equal(t, s.Root, s.Scale.Root())
	}
}

func TestGenerator_SeedIsDeterministic(t *testing.T) {
	cfg := Config{ScaleTypes: theory.ScaleNames(), Seed: 2024}

	first, err := NewGenerator(cfg)
	require.NoError(t, err)
	second, err := NewGenerator(cfg)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		a, err := first.Generate()
		require.NoError(t, err)
		b, err := second.Generate()
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}

func TestGenerator_Playable(t *testing.T) {
	g, err := NewGenerator(Config{ScaleTypes: []string{"major"}, Roots: []string{"C"}, Box: "gi30", Seed: 3})
	require.NoError(t, err)

	s, err := g.Generate()
	require.NoError(t, err)
	require.Len(t, s.Playable, 22)
	assert.Equal(t, theory.MustParseNote("C3"), s.Playable[0])
}

func TestSetting_MarshalYAML(t *testing.T) {
	scale, err := theory.NewScale(theory.G, "major")
	require.NoError(t, err)

	s := Setting{
		Root:      theory.G,
		ScaleType: "major",
		Scale:     scale,
		Playable:  []theory.Note{theory.MustParseNote("G3"), theory.MustParseNote("A3")},
	}

	out, err := yaml.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, `root: G
scale_type: major
scale:
    - G
    - A
    - B
    - C
    - D
    - E
    - F#
playable:
    - G3
    - A3
`, string(out))
}
