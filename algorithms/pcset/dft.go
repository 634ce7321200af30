package pcset

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/RyanBlaney/musicbox/theory"
)

// DFTMagnitudes returns |F(k)| for k = 0..6 of the set's chroma vector.
// F(0) is the set size; the others measure how well the set fits an even
// division of the octave into k parts (k=3 augmented, k=5 diatonic, k=6
// whole-tone, ...). Magnitudes are unchanged by transposition.
func DFTMagnitudes(tones []theory.PitchClass) []float64 {
	// mjibson/go-dsp handles the non-power-of-2 length directly
	spectrum := fft.FFTReal(ChromaVector(tones))

	magnitudes := make([]float64, 7)
	for k := range magnitudes {
		magnitudes[k] = roundTo(cmplx.Abs(spectrum[k]), 9)
	}
	return magnitudes
}
