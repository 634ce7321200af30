package theory

// scaleRecipes lists the known scales in a fixed order. Some names share a
// recipe (ionian/major, aeolian/minor/natural_minor) but remain distinct
// scales for equality.
var scaleRecipes = []recipe{
	{"major", []string{"P1", "M2", "M3", "P4", "P5", "M6", "M7"}},
	{"minor", []string{"P1", "M2", "m3", "P4", "P5", "m6", "m7"}},
	{"natural_minor", []string{"P1", "M2", "m3", "P4", "P5", "m6", "m7"}},
	{"harmonic_minor", []string{"P1", "M2", "m3", "P4", "P5", "m6", "M7"}},
	{"melodic_minor", []string{"P1", "M2", "m3", "P4", "P5", "M6", "M7"}},
	{"major_pentatonic", []string{"P1", "M2", "M3", "P5", "M6"}},
	{"minor_pentatonic", []string{"P1", "m3", "P4", "P5", "m7"}},
	{"ionian", []string{"P1", "M2", "M3", "P4", "P5", "M6", "M7"}},
	{"dorian", []string{"P1", "M2", "m3", "P4", "P5", "M6", "m7"}},
	{"phrygian", []string{"P1", "m2", "m3", "P4", "P5", "m6", "m7"}},
	{"lydian", []string{"P1", "M2", "M3", "A4", "P5", "M6", "M7"}},
	{"mixolydian", []string{"P1", "M2", "M3", "P4", "P5", "M6", "m7"}},
	{"aeolian", []string{"P1", "M2", "m3", "P4", "P5", "m6", "m7"}},
	{"locrian", []string{"P1", "m2", "m3", "P4", "d5", "m6", "m7"}},
}

var scaleIntervals = func() map[string][]Interval {
	m := make(map[string][]Interval, len(scaleRecipes))
	for _, r := range scaleRecipes {
		m[r.name] = resolveIntervals(r.intervals)
	}
	return m
}()

// Scale is a named scale on a root. Scales are comparable: two scales are
// equal when root and name match, even if another name has the same recipe.
type Scale struct {
	root PitchClass
	name string
}

// NewScale returns the scale called name on root, e.g. "major" or "dorian"
func NewScale(root PitchClass, name string) (Scale, error) {
	if _, ok := scaleIntervals[name]; !ok {
		return Scale{}, newError(ErrUnknownScaleName, name)
	}
	return Scale{root: root, name: name}, nil
}

// ScaleNames returns the known scale names in table order
func ScaleNames() []string {
	names := make([]string, len(scaleRecipes))
	for i, r := range scaleRecipes {
		names[i] = r.name
	}
	return names
}

func (s Scale) Root() PitchClass {
	return s.root
}

func (s Scale) Name() string {
	return s.name
}

func (s Scale) Intervals() []Interval {
	intervals := scaleIntervals[s.name]
	out := make([]Interval, len(intervals))
	copy(out, intervals)
	return out
}

// Tones returns the root transposed by each scale interval, in scale order
func (s Scale) Tones() []PitchClass {
	intervals := scaleIntervals[s.name]
	tones := make([]PitchClass, len(intervals))
	for i, iv := range intervals {
		tones[i] = iv.ApplyTo(s.root)
	}
	return tones
}

// Contains reports whether pc is one of the scale tones
func (s Scale) Contains(pc PitchClass) bool {
	for _, t := range s.Tones() {
		if t == pc {
			return true
		}
	}
	return false
}

// Degree harmonizes the 1-based scale degree n as a triad stacked in
// thirds: scale tones n, n+2 and n+4, wrapping around the scale. Degrees
// outside 1..len(tones) wrap too, so 8 is 1 again and 0 is the last degree.
// It fails with ErrNoMatchingChord when the triad is not a known chord,
// which happens on most pentatonic degrees.
func (s Scale) Degree(n int) (Chord, error) {
	tones := s.Tones()
	size := len(tones)
	i := n - 1

	return ChordFromTones(
		tones[mod(i, size)],
		tones[mod(i+2, size)],
		tones[mod(i+4, size)],
	)
}

// DegreeNumeral is Degree with the degree written as a Roman numeral such
// as "IV" or "vii"
func (s Scale) DegreeNumeral(numeral string) (Chord, error) {
	n, err := ParseRomanNumeral(numeral)
	if err != nil {
		return Chord{}, err
	}
	return s.Degree(n)
}

// String lists the scale tones, e.g. "C, D, E, F, G, A, B"
func (s Scale) String() string {
	return joinTones(s.Tones(), ", ")
}
