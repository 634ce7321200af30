// Package box describes the combs of physical music boxes: which notes a
// given mechanism can sound.
package box

import (
	"fmt"
	"slices"
	"sort"

	"github.com/RyanBlaney/musicbox/theory"
)

// Layout is the ordered set of notes on a music box comb
type Layout struct {
	name  string
	notes []theory.Note
}

// gi30Notes lists the off-range tines first, then the chromatic run
var gi30Notes = func() []theory.Note {
	notes := make([]theory.Note, 0, 30)
	for _, text := range []string{"E6", "D6", "D4", "C4", "B3", "A3", "G3", "D3", "C3"} {
		notes = append(notes, theory.MustParseNote(text))
	}

	run, err := theory.NoteRange(theory.MustParseNote("E4"), theory.MustParseNote("C6"))
	if err != nil {
		panic(err)
	}
	for n := range run {
		notes = append(notes, n)
	}
	return notes
}()

var layouts = map[string]Layout{
	"gi30": {name: "gi30", notes: gi30Notes},
}

// GI30 is the 30-note chromatic comb
func GI30() Layout {
	return layouts["gi30"]
}

// Lookup returns a layout by name
func Lookup(name string) (Layout, error) {
	l, ok := layouts[name]
	if !ok {
		return Layout{}, fmt.Errorf("unknown music box layout: %s", name)
	}
	return l, nil
}

// Names returns the known layout names, sorted
func Names() []string {
	names := make([]string, 0, len(layouts))
	for name := range layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (l Layout) Name() string {
	return l.name
}

// Notes returns the comb in its listed order
func (l Layout) Notes() []theory.Note {
	return slices.Clone(l.notes)
}

// Contains reports whether the comb has a tine for n
func (l Layout) Contains(n theory.Note) bool {
	return slices.Contains(l.notes, n)
}

// Playable returns the comb notes that belong to the scale, lowest first
func (l Layout) Playable(scale theory.Scale) []theory.Note {
	var playable []theory.Note
	for _, n := range l.notes {
		if scale.Contains(n.PitchClass()) {
			playable = append(playable, n)
		}
	}

	sort.Slice(playable, func(i, j int) bool {
		return playable[i].MIDINumber() < playable[j].MIDINumber()
	})
	return playable
}

// Coverage is the fraction of the scale's pitch classes that at least one
// tine can sound
func (l Layout) Coverage(scale theory.Scale) float64 {
	tones := scale.Tones()
	if len(tones) == 0 {
		return 0.0
	}

	covered := 0
	for _, pc := range tones {
		for _, n := range l.notes {
			if n.ContainsPitchClass(pc) {
				covered++
				break
			}
		}
	}

	return float64(covered) / float64(len(tones))
}
