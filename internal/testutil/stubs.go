// Package testutil provides deterministic stub implementations of the
// generator's external capability ports for use in unit tests.
package testutil

import (
	"context"

	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/domain/text"
)

// StubPOSResolver resolves tags from a fixed word → tag map.  Unknown words
// resolve to POSOther; a non-nil Err fails every call.
type StubPOSResolver struct {
	Tags map[string]text.POSTag
	Err  error

	// Calls records every word the resolver was asked about, in order.
	Calls []string
}

// Resolve implements generator.POSResolver.
func (s *StubPOSResolver) Resolve(_ context.Context, word, _ string) (text.POSTag, error) {
	s.Calls = append(s.Calls, word)
	if s.Err != nil {
		return text.POSOther, s.Err
	}
	if tag, ok := s.Tags[word]; ok {
		return tag, nil
	}
	return text.POSOther, nil
}

// StubLexicon serves synonyms from a fixed word → lemmas map, ignoring the
// POS tag (tag gating is the generator's job, exercised separately).  A
// non-nil Err fails every call.
type StubLexicon struct {
	Entries map[string][]string
	Err     error
}

// Synonyms implements generator.Lexicon.
func (s *StubLexicon) Synonyms(_ context.Context, word string, _ text.POSTag) ([]string, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Entries[word], nil
}
