package theory

import (
	"fmt"
	"iter"
	"regexp"
	"strconv"
)

// notePattern is a pitch name (sharps only) followed by a decimal octave
var notePattern = regexp.MustCompile(`^([A-Ga-g]#?)([0-9]+)$`)

// Note is a pitch class in a specific octave. Its MIDI number is
// pitch class + 12*octave, so C4 is 48.
type Note struct {
	pitchClass PitchClass
	octave     int
}

func NewNote(pc PitchClass, octave int) Note {
	return Note{pitchClass: pc, octave: octave}
}

// ParseNote parses text such as "C4", "f#3" or "A10"
func ParseNote(text string) (Note, error) {
	m := notePattern.FindStringSubmatch(text)
	if m == nil {
		return Note{}, newError(ErrInvalidNoteSyntax, text)
	}

	pc, err := ParsePitchClass(m[1])
	if err != nil {
		// "E#" and "B#" pass the pattern but are not pitch names
		return Note{}, newError(ErrInvalidNoteSyntax, text)
	}

	octave, err := strconv.Atoi(m[2])
	if err != nil {
		return Note{}, newError(ErrInvalidNoteSyntax, text)
	}

	return Note{pitchClass: pc, octave: octave}, nil
}

// MustParseNote is like ParseNote but panics on error. It is meant for
// literal note tables.
func MustParseNote(text string) Note {
	n, err := ParseNote(text)
	if err != nil {
		panic(err)
	}
	return n
}

// NoteFromMIDI returns the note with the given MIDI number
func NoteFromMIDI(number int) Note {
	return Note{
		pitchClass: NewPitchClass(number),
		octave:     floorDiv(number, 12),
	}
}

// NotesInOctaves yields every note from C of minOctave through B of
// maxOctave, octave by octave
func NotesInOctaves(minOctave, maxOctave int) iter.Seq[Note] {
	return func(yield func(Note) bool) {
		for octave := minOctave; octave <= maxOctave; octave++ {
			for pc := range AllPitchClasses(C) {
				if !yield(Note{pitchClass: pc, octave: octave}) {
					return
				}
			}
		}
	}
}

// NoteRange yields the chromatic walk from low up to high, both inclusive.
// A high note below low can never be reached by ascending, so it is
// rejected up front instead of producing an endless sequence.
func NoteRange(low, high Note) (iter.Seq[Note], error) {
	if high.MIDINumber() < low.MIDINumber() {
		return nil, newError(ErrUnreachableRange, fmt.Sprintf("%s..%s", low, high))
	}

	return func(yield func(Note) bool) {
		note := low
		for note != high {
			if !yield(note) {
				return
			}
			note = note.TransposeUp(1)
		}
		yield(high)
	}, nil
}

func (n Note) PitchClass() PitchClass {
	return n.pitchClass
}

func (n Note) Octave() int {
	return n.octave
}

func (n Note) MIDINumber() int {
	return n.pitchClass.value + 12*n.octave
}

// Distance is the absolute number of semitones between two notes
func (n Note) Distance(other Note) int {
	d := n.MIDINumber() - other.MIDINumber()
	if d < 0 {
		return -d
	}
	return d
}

// TransposeUp moves the note up by semitones. The octave is incremented
// whenever the pitch class wraps past B.
func (n Note) TransposeUp(semitones int) Note {
	return NoteFromMIDI(n.MIDINumber() + semitones)
}

// TransposeDown moves the note down by semitones. The octave is
// decremented whenever the pitch class wraps below C.
func (n Note) TransposeDown(semitones int) Note {
	return NoteFromMIDI(n.MIDINumber() - semitones)
}

// Transpose applies an interval to the note
func (n Note) Transpose(iv Interval) Note {
	return iv.ApplyToNote(n)
}

// Less reports whether n sorts before other. Notes in a lower octave sort
// first, but otherwise any note with a lower pitch class also sorts first,
// regardless of octave: C5 is Less than A4. Use MIDINumber for a strict
// pitch ordering.
func (n Note) Less(other Note) bool {
	return n.octave < other.octave || n.pitchClass.Less(other.pitchClass)
}

// ContainsPitchClass reports whether the note is an instance of pc
func (n Note) ContainsPitchClass(pc PitchClass) bool {
	return n.pitchClass == pc
}

func (n Note) String() string {
	return n.pitchClass.String() + strconv.Itoa(n.octave)
}
