package theory

import (
	"maps"
	"slices"
	"strings"
)

// recipe is a named list of interval codes measured from a root
type recipe struct {
	name      string
	intervals []string
}

// chordRecipes is searched in order by ChordFromTones, so the first recipe
// whose intervals match wins.
var chordRecipes = []recipe{
	{"maj", []string{"P1", "M3", "P5"}},
	{"min", []string{"P1", "m3", "P5"}},
	{"aug", []string{"P1", "M3", "A5"}},
	{"dim", []string{"P1", "m3", "d5"}},
	{"dom7", []string{"P1", "M3", "P5", "m7"}},
	{"min7", []string{"P1", "m3", "P5", "m7"}},
	{"maj7", []string{"P1", "M3", "P5", "M7"}},
	{"aug7", []string{"P1", "M3", "A5", "m7"}},
	{"dim7", []string{"P1", "m3", "d5", "d7"}},
	{"m7dim5", []string{"P1", "m3", "d5", "m7"}},
	{"sus2", []string{"P1", "P5", "P8", "M2"}},
	{"sus4", []string{"P1", "P5", "P8", "P4"}},
	{"open5", []string{"P1", "P5", "P8"}},
}

// chordAliases maps alternative chord symbols to recipe names
var chordAliases = map[string]string{
	"M":     "maj",
	"m":     "min",
	"+":     "aug",
	"°":     "dim",
	"7":     "dom7",
	"m7":    "min7",
	"M7":    "maj7",
	"+7":    "aug7",
	"7aug5": "aug7",
	"7#5":   "aug7",
	"°7":    "m7dim5",
	"ø7":    "m7dim5",
	"m7b5":  "m7dim5",
}

// chordIntervals holds each recipe resolved to Interval values
var chordIntervals = func() map[string][]Interval {
	m := make(map[string][]Interval, len(chordRecipes))
	for _, r := range chordRecipes {
		m[r.name] = resolveIntervals(r.intervals)
	}
	return m
}()

// chordPitchIntervals is chordIntervals reduced to within one octave. Tones
// carry no octave, so an octave above the root (P8) is matched as a unison.
var chordPitchIntervals = func() map[string][]Interval {
	m := make(map[string][]Interval, len(chordIntervals))
	for name, intervals := range chordIntervals {
		reduced := make([]Interval, len(intervals))
		for i, iv := range intervals {
			reduced[i] = Interval{semitones: mod(iv.semitones, 12)}
		}
		m[name] = reduced
	}
	return m
}()

// Chord is a set of tones built from a root and a recipe. Two chords are
// Equal when their tone sequences match, whatever they are called.
type Chord struct {
	root      PitchClass
	chordType string
	tones     []PitchClass
}

// NewChord builds a chord from a recipe name ("maj", "min7", ...) or one of
// its aliases ("M", "m7", "ø7", ...). An empty type means a major triad.
func NewChord(root PitchClass, typeKey string) (Chord, error) {
	chordType, err := ResolveChordType(typeKey)
	if err != nil {
		return Chord{}, err
	}

	intervals := chordIntervals[chordType]
	tones := make([]PitchClass, len(intervals))
	for i, iv := range intervals {
		tones[i] = iv.ApplyTo(root)
	}

	return Chord{root: root, chordType: chordType, tones: tones}, nil
}

// ResolveChordType maps an alias or recipe name to its recipe name
func ResolveChordType(key string) (string, error) {
	if key == "" {
		key = "M"
	}
	if canonical, ok := chordAliases[key]; ok {
		key = canonical
	}
	if _, ok := chordIntervals[key]; !ok {
		return "", newError(ErrUnknownChordType, key)
	}
	return key, nil
}

// ChordFromTones identifies the chord spelled by tones, taking the first
// tone as the root. The interval of every tone from the root must match a
// recipe, within the octave and in the same order.
func ChordFromTones(tones ...PitchClass) (Chord, error) {
	if len(tones) == 0 {
		return Chord{}, newError(ErrNoMatchingChord, "")
	}

	root := tones[0]
	intervals := make([]Interval, len(tones))
	for i, t := range tones {
		intervals[i] = IntervalBetween(root, t)
	}

	for _, r := range chordRecipes {
		if slices.Equal(intervals, chordPitchIntervals[r.name]) {
			return NewChord(root, r.name)
		}
	}

	return Chord{}, newError(ErrNoMatchingChord, joinTones(tones, " "))
}

// ChordTypes returns the recipe names in lookup order
func ChordTypes() []string {
	names := make([]string, len(chordRecipes))
	for i, r := range chordRecipes {
		names[i] = r.name
	}
	return names
}

// ChordAliases returns a copy of the alias table
func ChordAliases() map[string]string {
	return maps.Clone(chordAliases)
}

func (c Chord) Root() PitchClass {
	return c.root
}

// Type is the canonical recipe name, never an alias
func (c Chord) Type() string {
	return c.chordType
}

func (c Chord) Tones() []PitchClass {
	return slices.Clone(c.tones)
}

func (c Chord) Intervals() []Interval {
	return slices.Clone(chordIntervals[c.chordType])
}

// Equal compares tone sequences only
func (c Chord) Equal(other Chord) bool {
	return slices.Equal(c.tones, other.tones)
}

func (c Chord) String() string {
	return c.root.String() + c.chordType
}

func resolveIntervals(names []string) []Interval {
	intervals := make([]Interval, len(names))
	for i, name := range names {
		intervals[i] = MustParseInterval(name)
	}
	return intervals
}

func joinTones(tones []PitchClass, sep string) string {
	names := make([]string, len(tones))
	for i, t := range tones {
		names[i] = t.String()
	}
	return strings.Join(names, sep)
}
