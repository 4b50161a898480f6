package generator

import (
	"context"
	"strings"

	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/domain/embedding"
	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/domain/text"
	"github.com/matthewstachyra/virtual-assistant-utterance-generator/pkg/errors"
)

// SynonymMap maps a normalized word to its ordered list of accepted synonym
// strings.  Invariants for every entry:
//
//   - every candidate is a single token (no underscore-joined multi-word lemma)
//   - every candidate normalizes to a string different from the source word
//   - when an embedding model is configured, every candidate scored at least
//     the similarity threshold against the source word's vector
//
// Presence of a word in the map implies at least one usable alternative
// exists; words whose candidate list came up empty are omitted entirely.
type SynonymMap map[string][]string

// buildSynonymMap applies POS resolution, lexical synonym lookup, and
// similarity filtering to every word of the normalized utterance.  Any POS or
// lexicon failure aborts the whole build; per-candidate embedding misses are
// tolerated as "no score".
func (g *Generator) buildSynonymMap(ctx context.Context) (SynonymMap, error) {
	m := make(SynonymMap)
	for _, word := range strings.Fields(g.utterance) {
		candidates, err := g.synonymsFor(ctx, word)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeSynonymMapBuild, "synonym map construction failed").WithDetail("word=" + word)
		}

		accepted := make([]string, 0, len(candidates))
		for _, c := range candidates {
			if strings.Contains(c, "_") {
				continue
			}
			if text.Normalize(c) == word {
				continue
			}
			accepted = append(accepted, c)
		}
		if len(accepted) > 0 {
			m[word] = accepted
		}
	}
	return m, nil
}

// synonymsFor returns the similarity-filtered synonym candidates for one word
// of the utterance.  Words outside the six substitutable categories, and
// single-character words, yield no candidates without error.
func (g *Generator) synonymsFor(ctx context.Context, word string) ([]string, error) {
	pos, err := g.resolvePOS(ctx, word)
	if err != nil {
		return nil, err
	}
	if !pos.Substitutable() {
		return nil, nil
	}
	if len(word) < 2 {
		return nil, nil
	}

	candidates, err := g.lexicon.Synonyms(ctx, word, pos)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeLexiconUnavailable, "synonym lookup failed")
	}
	if g.model == nil {
		return candidates, nil
	}

	sims := embedding.Similarities(word, candidates, g.model)
	embedding.Report(sims, g.reporter)

	filtered := make([]string, 0, len(candidates))
	for _, c := range candidates {
		score, scored := sims[c]
		if scored && score >= g.threshold {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

// resolvePOS checks the generator's preconditions and delegates to the
// injected POS resolver.  An empty word, or a word whose normalized form is
// not present in the stored utterance, is an ErrCodeInvalidWord failure that
// aborts synonym-map construction.
func (g *Generator) resolvePOS(ctx context.Context, word string) (text.POSTag, error) {
	if word == "" || g.utterance == "" {
		return text.POSOther, errors.New(errors.ErrCodeInvalidWord, "word and utterance must be non-empty")
	}
	if !strings.Contains(g.utterance, text.Normalize(word)) {
		return text.POSOther, errors.New(errors.ErrCodeInvalidWord, "word is not in the utterance").WithDetail("word=" + word)
	}
	pos, err := g.resolver.Resolve(ctx, word, g.utterance)
	if err != nil {
		return text.POSOther, errors.Wrap(err, errors.ErrCodePOSResolveFailed, "part-of-speech resolution failed").WithDetail("word=" + word)
	}
	return pos, nil
}
