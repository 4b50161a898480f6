// Package generator implements utterance generation: given one canonical
// training utterance, it produces a deduplicated set of paraphrase candidates
// by substituting individual words with part-of-speech-gated, similarity-
// filtered synonyms and by substituting matched phrase fragments with
// alternates from a curated phrase table.
//
// Output is recall-oriented: candidates are NOT guaranteed to be grammatical
// or semantically valid and require downstream manual review.
package generator

import (
	"context"

	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/domain/text"
)

// POSResolver resolves the grammatical category of a word in context.  The
// utterance argument is the full normalized utterance the word occurs in,
// supplied for contextual disambiguation.
//
// The generator performs its own precondition checks (non-empty word, word
// present in the utterance) before delegating, so implementations may assume
// both hold.
type POSResolver interface {
	Resolve(ctx context.Context, word, utterance string) (text.POSTag, error)
}

// Lexicon resolves same-category synonym forms for a word from a lexical
// knowledge base.  It is only consulted for the six substitutable categories;
// implementations map the POS tag to their internal part-of-speech code and
// collect every lemma form from every matching sense.
//
// Returned lemmas may contain multi-word forms joined with underscores; the
// generator filters those out.
type Lexicon interface {
	Synonyms(ctx context.Context, word string, pos text.POSTag) ([]string, error)
}
