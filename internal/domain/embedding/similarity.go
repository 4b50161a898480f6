package embedding

import (
	"fmt"
	"io"
	"math"
)

// DefaultSimilarityThreshold is the minimum cosine similarity a synonym
// candidate must score against its source word to be accepted.
const DefaultSimilarityThreshold = 0.70

// Cosine computes the cosine similarity of two vectors, a value in [-1, 1].
// Mismatched dimensions or a zero-magnitude vector yield 0.
func Cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		x := float64(a[i])
		y := float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// Similarities scores each candidate against word using cosine similarity of
// their vectors in m.  The result always contains word itself mapped to 1.0
// (self-similarity).  Candidates without a vector are omitted from the result
// rather than scored as zero; if word itself has no vector, no candidate can
// be scored and only the self entry is returned.
func Similarities(word string, candidates []string, m Model) map[string]float64 {
	sims := map[string]float64{word: 1.0}
	if m == nil {
		return sims
	}
	ref, ok := m.Vector(word)
	if !ok {
		return sims
	}
	for _, c := range candidates {
		vec, ok := m.Vector(c)
		if !ok {
			continue
		}
		sims[c] = Cosine(ref, vec)
	}
	return sims
}

// Reporter receives one callback per scored candidate.  It is a purely
// observational diagnostic hook, not part of the functional contract.
type Reporter func(word string, score float64)

// WriterReporter returns a Reporter that writes one line per candidate to w
// in the form "word: <w>, cosine similarity: <s>".
func WriterReporter(w io.Writer) Reporter {
	return func(word string, score float64) {
		fmt.Fprintf(w, "word: %s, cosine similarity: %v\n", word, score)
	}
}

// Report invokes r for every entry of sims.  A nil Reporter is a no-op, so
// call sites do not need to guard the diagnostic path.
func Report(sims map[string]float64, r Reporter) {
	if r == nil {
		return
	}
	for word, score := range sims {
		r(word, score)
	}
}
