// Package embedding defines the word-embedding capability consumed by the
// generator and the cosine-similarity scoring used to filter synonym
// candidates.
package embedding

// Model is the capability of looking up a fixed-length vector for a token.
// Absence is signalled by the bool, never by an error: a missing vector means
// "no similarity data available" and the affected candidate is simply
// excluded from similarity-filtered results.
//
// Implementations must be safe for concurrent readers; a Model is shared
// read-only across many Generator instances.
type Model interface {
	Vector(word string) ([]float32, bool)
}

// MapModel is a Model backed by an in-memory word → vector table.  It is the
// representation produced by the word2vec text loader and the natural stub
// for tests.
type MapModel map[string][]float32

// Vector returns the vector for word, if present.
func (m MapModel) Vector(word string) ([]float32, bool) {
	v, ok := m[word]
	return v, ok
}

// Len returns the vocabulary size.
func (m MapModel) Len() int { return len(m) }
