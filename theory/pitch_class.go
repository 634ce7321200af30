// Package theory models twelve-tone equal-tempered music theory as value
// types: pitch classes, notes, intervals, scales and chords.
//
// All values are immutable and every lookup table is read-only after package
// initialization, so values may be shared freely between goroutines.
package theory

import (
	"cmp"
	"iter"
	"strings"
)

// pitchClassNames is the canonical spelling of each pitch class (sharps only)
var pitchClassNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// PitchClass is one of the 12 pitch classes, C (0) through B (11)
type PitchClass struct {
	value int
}

// Named pitch classes
var (
	C      = PitchClass{0}
	CSharp = PitchClass{1}
	D      = PitchClass{2}
	DSharp = PitchClass{3}
	E      = PitchClass{4}
	F      = PitchClass{5}
	FSharp = PitchClass{6}
	G      = PitchClass{7}
	GSharp = PitchClass{8}
	A      = PitchClass{9}
	ASharp = PitchClass{10}
	B      = PitchClass{11}
)

// NewPitchClass returns the pitch class congruent to n modulo 12
func NewPitchClass(n int) PitchClass {
	return PitchClass{value: mod(n, 12)}
}

// ParsePitchClass parses one of the names C, C#, D ... B, ignoring case
func ParsePitchClass(name string) (PitchClass, error) {
	upper := strings.ToUpper(name)
	for i, n := range pitchClassNames {
		if n == upper {
			return PitchClass{value: i}, nil
		}
	}
	return PitchClass{}, newError(ErrInvalidPitchName, name)
}

// MustParsePitchClass is like ParsePitchClass but panics on error
func MustParsePitchClass(name string) PitchClass {
	pc, err := ParsePitchClass(name)
	if err != nil {
		panic(err)
	}
	return pc
}

// PitchClassNames returns the 12 canonical names starting at C
func PitchClassNames() []string {
	names := make([]string, len(pitchClassNames))
	copy(names, pitchClassNames[:])
	return names
}

// AllPitchClasses yields the 12 pitch classes once each, starting at start
// and wrapping past B back to C.
func AllPitchClasses(start PitchClass) iter.Seq[PitchClass] {
	return func(yield func(PitchClass) bool) {
		for i := 0; i < 12; i++ {
			if !yield(start.TransposeUp(i)) {
				return
			}
		}
	}
}

func (p PitchClass) Value() int {
	return p.value
}

func (p PitchClass) String() string {
	return pitchClassNames[p.value]
}

// TransposeUp returns the pitch class n semitones above p
func (p PitchClass) TransposeUp(n int) PitchClass {
	return NewPitchClass(p.value + n)
}

// TransposeDown returns the pitch class n semitones below p
func (p PitchClass) TransposeDown(n int) PitchClass {
	return NewPitchClass(p.value - n)
}

func (p PitchClass) Less(other PitchClass) bool {
	return p.value < other.value
}

// Compare returns -1, 0 or +1 ordering by numeric value
func (p PitchClass) Compare(other PitchClass) int {
	return cmp.Compare(p.value, other.value)
}

// mod is the non-negative remainder of a divided by m
func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// floorDiv rounds the quotient towards negative infinity
func floorDiv(a, m int) int {
	q := a / m
	if a%m != 0 && (a < 0) != (m < 0) {
		q--
	}
	return q
}
