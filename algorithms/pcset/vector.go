// Package pcset analyses pitch-class sets: chroma vectors, interval
// content, Fourier magnitudes and key estimation.
package pcset

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/RyanBlaney/musicbox/theory"
)

// ChromaVector returns a 12-element vector with 1 for every pitch class
// present in tones and 0 elsewhere. Duplicates count once.
func ChromaVector(tones []theory.PitchClass) []float64 {
	vector := make([]float64, 12)
	for _, t := range tones {
		vector[t.Value()] = 1.0
	}
	return vector
}

// IntervalClassVector counts, for each interval class 1..6, the unordered
// pairs of distinct pitch classes that far apart. Index 0 is class 1.
func IntervalClassVector(tones []theory.PitchClass) [6]int {
	var icv [6]int
	chroma := ChromaVector(tones)

	for a := 0; a < 12; a++ {
		if chroma[a] == 0 {
			continue
		}
		for b := a + 1; b < 12; b++ {
			if chroma[b] == 0 {
				continue
			}
			ic := b - a
			if ic > 6 {
				ic = 12 - ic
			}
			icv[ic-1]++
		}
	}

	return icv
}

// Similarity is the cosine similarity of the chroma vectors of a and b,
// from 0 (disjoint) to 1 (same set). Empty sets have similarity 0.
func Similarity(a, b []theory.PitchClass) float64 {
	va := ChromaVector(a)
	vb := ChromaVector(b)

	normA := floats.Norm(va, 2)
	normB := floats.Norm(vb, 2)
	if normA == 0 || normB == 0 {
		return 0.0
	}

	return floats.Dot(va, vb) / (normA * normB)
}

// Transpose returns the pitch classes of tones moved up by n semitones
func Transpose(tones []theory.PitchClass, n int) []theory.PitchClass {
	out := make([]theory.PitchClass, len(tones))
	for i, t := range tones {
		out[i] = t.TransposeUp(n)
	}
	return out
}

// roundTo trims floating point noise from transform output
func roundTo(x float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(x*scale) / scale
}
