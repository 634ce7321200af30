package theory

import (
	"slices"
	"strconv"
	"testing"

	"pgregory.net/rapid"
)

func testPitchClass_Congruence_Properties(t *rapid.T) {
	n := rapid.IntRange(-10000, 10000).Draw(t, "n")
	k := rapid.IntRange(-100, 100).Draw(t, "k")

	if NewPitchClass(n) != NewPitchClass(n+12*k) {
		t.Fatalf("pitch class of %d differs from %d", n, n+12*k)
	}
	if v := NewPitchClass(n).Value(); v < 0 || v >= 12 {
		t.Fatalf("value %d out of range", v)
	}
}

func TestPitchClass_Congruence_Properties(t *testing.T) {
	rapid.Check(t, testPitchClass_Congruence_Properties)
}

func testPitchClass_TransposeRoundTrip_Properties(t *rapid.T) {
	p := NewPitchClass(rapid.IntRange(0, 11).Draw(t, "p"))
	n := rapid.IntRange(-50, 50).Draw(t, "n")

	if got := p.TransposeUp(1).TransposeDown(1); got != p {
		t.Fatalf("up/down by one: expected %s, got %s", p, got)
	}
	if got := p.TransposeUp(n).TransposeDown(n); got != p {
		t.Fatalf("up/down by %d: expected %s, got %s", n, p, got)
	}
}

func TestPitchClass_TransposeRoundTrip_Properties(t *testing.T) {
	rapid.Check(t, testPitchClass_TransposeRoundTrip_Properties)
}

func testNote_TextRoundTrip_Properties(t *rapid.T) {
	name := rapid.SampledFrom(PitchClassNames()).Draw(t, "name")
	octave := rapid.IntRange(0, 99).Draw(t, "octave")
	text := name + strconv.Itoa(octave)

	n, err := ParseNote(text)
	if err != nil {
		t.Fatalf("ParseNote(%q) failed: %v", text, err)
	}
	if n.String() != text {
		t.Fatalf("round trip: expected %q, got %q", text, n.String())
	}
}

func TestNote_TextRoundTrip_Properties(t *testing.T) {
	rapid.Check(t, testNote_TextRoundTrip_Properties)
}

func testNote_MIDIArithmetic_Properties(t *rapid.T) {
	start := rapid.IntRange(-60, 200).Draw(t, "start")
	semitones := rapid.IntRange(-48, 48).Draw(t, "semitones")
	n := NoteFromMIDI(start)

	if n.MIDINumber() != start {
		t.Fatalf("NoteFromMIDI(%d) gives MIDI %d", start, n.MIDINumber())
	}
	if got := n.Transpose(NewInterval(semitones, 0)).MIDINumber(); got != start+semitones {
		t.Fatalf("%s + %d: expected MIDI %d, got %d", n, semitones, start+semitones, got)
	}
	if got := n.TransposeUp(semitones).TransposeDown(semitones); got != n {
		t.Fatalf("up/down by %d: expected %s, got %s", semitones, n, got)
	}
}

func TestNote_MIDIArithmetic_Properties(t *testing.T) {
	rapid.Check(t, testNote_MIDIArithmetic_Properties)
}

func testNoteRange_Length_Properties(t *rapid.T) {
	low := NoteFromMIDI(rapid.IntRange(0, 100).Draw(t, "low"))
	high := low.TransposeUp(rapid.IntRange(0, 48).Draw(t, "span"))

	seq, err := NoteRange(low, high)
	if err != nil {
		t.Fatalf("NoteRange(%s, %s) failed: %v", low, high, err)
	}

	notes := slices.Collect(seq)
	if len(notes) != low.Distance(high)+1 {
		t.Fatalf("expected %d notes, got %d", low.Distance(high)+1, len(notes))
	}
	for i := 1; i < len(notes); i++ {
		if notes[i].MIDINumber() != notes[i-1].MIDINumber()+1 {
			t.Fatalf("step %d is not a semitone: %s -> %s", i, notes[i-1], notes[i])
		}
	}
}

func TestNoteRange_Length_Properties(t *testing.T) {
	rapid.Check(t, testNoteRange_Length_Properties)
}

func testChord_FromTonesRoundTrip_Properties(t *rapid.T) {
	root := NewPitchClass(rapid.IntRange(0, 11).Draw(t, "root"))
	chordType := rapid.SampledFrom(ChordTypes()).Draw(t, "chordType")

	chord, err := NewChord(root, chordType)
	if err != nil {
		t.Fatalf("NewChord failed: %v", err)
	}
	found, err := ChordFromTones(chord.Tones()...)
	if err != nil {
		t.Fatalf("ChordFromTones(%s) failed: %v", chord, err)
	}
	if !found.Equal(chord) {
		t.Fatalf("expected %s, got %s", chord, found)
	}
}

func TestChord_FromTonesRoundTrip_Properties(t *testing.T) {
	rapid.Check(t, testChord_FromTonesRoundTrip_Properties)
}

func FuzzChord_FromTonesRoundTrip_Properties(f *testing.F) {
	f.Add([]byte{0x00})
	f.Fuzz(rapid.MakeFuzz(testChord_FromTonesRoundTrip_Properties))
}
