package pcset

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/RyanBlaney/musicbox/logging"
	"github.com/RyanBlaney/musicbox/theory"
)

// ErrFlatProfile is returned when a set has no tonal contour to correlate:
// it is empty or contains all 12 pitch classes.
var ErrFlatProfile = errors.New("pitch-class set has no variance")

// KeyProfile selects the tonal hierarchy used for key estimation
type KeyProfile string

const (
	KeyProfileKrumhansl KeyProfile = "krumhansl"
	KeyProfileTemperley KeyProfile = "temperley"
)

// KeyProfileTemplate holds major and minor profiles rooted on C
type KeyProfileTemplate struct {
	MajorProfile []float64
	MinorProfile []float64
	Name         string
	Description  string
}

var keyProfiles = map[KeyProfile]KeyProfileTemplate{
	// Krumhansl-Schmuckler profiles (empirically derived)
	KeyProfileKrumhansl: {
		MajorProfile: []float64{6.35, 2.23, 3.48, 2.33, 4.38, 4.09, 2.52, 5.19, 2.39, 3.66, 2.29, 2.88},
		MinorProfile: []float64{6.33, 2.68, 3.52, 5.38, 2.60, 3.53, 2.54, 4.75, 3.98, 2.69, 3.34, 3.17},
		Name:         "Krumhansl-Schmuckler",
		Description:  "Empirical profiles based on listener ratings",
	},
	// Temperley profiles (corpus-based)
	KeyProfileTemperley: {
		MajorProfile: []float64{5.0, 2.0, 3.5, 2.0, 4.5, 4.0, 2.0, 4.5, 2.0, 3.5, 1.5, 4.0},
		MinorProfile: []float64{5.0, 2.0, 3.5, 4.5, 2.0, 4.0, 2.0, 4.5, 3.5, 2.0, 1.5, 4.0},
		Name:         "Temperley",
		Description:  "Statistical profiles from musical corpora",
	},
}

// KeyEstimatorConfig configures key estimation
type KeyEstimatorConfig struct {
	Profile       KeyProfile `json:"profile" yaml:"profile"`
	MaxCandidates int        `json:"max_candidates" yaml:"max_candidates"` // 0 keeps all 24
}

// DefaultKeyEstimatorConfig returns Krumhansl profiles and the top 5 keys
func DefaultKeyEstimatorConfig() KeyEstimatorConfig {
	return KeyEstimatorConfig{
		Profile:       KeyProfileKrumhansl,
		MaxCandidates: 5,
	}
}

// KeyCandidate is one possible key for a set
type KeyCandidate struct {
	Key   theory.Scale // major or minor scale on the key's tonic
	Score float64      // Pearson correlation with the rotated profile, -1..1
}

// KeyEstimator ranks the 24 major and minor keys by how well a pitch-class
// set correlates with each key's tonal profile
type KeyEstimator struct {
	config  KeyEstimatorConfig
	profile KeyProfileTemplate
	logger  logging.Logger
}

// NewKeyEstimator validates the profile name and builds an estimator
func NewKeyEstimator(config KeyEstimatorConfig) (*KeyEstimator, error) {
	profile, ok := keyProfiles[config.Profile]
	if !ok {
		return nil, fmt.Errorf("unknown key profile: %s", config.Profile)
	}
	if config.MaxCandidates < 0 {
		return nil, fmt.Errorf("max candidates must not be negative: %d", config.MaxCandidates)
	}

	logger := logging.WithFields(logging.Fields{
		"component": "key_estimator",
		"profile":   profile.Name,
	})

	return &KeyEstimator{
		config:  config,
		profile: profile,
		logger:  logger,
	}, nil
}

// Estimate returns key candidates, best first. Equal scores keep their
// enumeration order: majors before minors, tonics from C upward.
func (ke *KeyEstimator) Estimate(tones []theory.PitchClass) ([]KeyCandidate, error) {
	chroma := ChromaVector(tones)
	if stat.Variance(chroma, nil) == 0 {
		ke.logger.Debug("Skipping key estimation for flat set", logging.Fields{"tones": len(tones)})
		return nil, ErrFlatProfile
	}

	candidates := make([]KeyCandidate, 0, 24)
	for _, mode := range []struct {
		scale   string
		profile []float64
	}{
		{"major", ke.profile.MajorProfile},
		{"minor", ke.profile.MinorProfile},
	} {
		for tonic := range theory.AllPitchClasses(theory.C) {
			key, err := theory.NewScale(tonic, mode.scale)
			if err != nil {
				return nil, err
			}
			score := stat.Correlation(chroma, rotateProfile(mode.profile, tonic.Value()), nil)
			candidates = append(candidates, KeyCandidate{Key: key, Score: score})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if ke.config.MaxCandidates > 0 && len(candidates) > ke.config.MaxCandidates {
		candidates = candidates[:ke.config.MaxCandidates]
	}

	ke.logger.Debug("Estimated key", logging.Fields{
		"key":   candidates[0].Key.Root().String() + " " + candidates[0].Key.Name(),
		"score": candidates[0].Score,
	})

	return candidates, nil
}

// rotateProfile moves a C-rooted profile so that index root is the tonic
func rotateProfile(profile []float64, root int) []float64 {
	rotated := make([]float64, 12)
	for i := range rotated {
		rotated[i] = profile[((i-root)%12+12)%12]
	}
	return rotated
}
