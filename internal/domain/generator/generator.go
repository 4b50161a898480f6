package generator

import (
	"context"
	"math/rand"
	"time"

	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/domain/embedding"
	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/domain/phrase"
	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/domain/text"
	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/infrastructure/monitoring/logging"
)

// Generator produces paraphrase candidates for a single utterance.  It is
// built once per input utterance: normalization and synonym-map construction
// happen eagerly in New, and the instance is immutable afterwards.  Only the
// randomized ordering of Generate's output varies between calls.
//
// The embedding model and phrase table may be shared read-only across many
// Generator instances.
type Generator struct {
	utterance string
	tokens    []text.Token
	synonyms  SynonymMap

	resolver  POSResolver
	lexicon   Lexicon
	model     embedding.Model
	table     *phrase.Table
	threshold float64
	reporter  embedding.Reporter
	rng       *rand.Rand
	logger    logging.Logger
}

// Option configures a Generator at construction time.
type Option func(*Generator)

// WithModel supplies the embedding model used to similarity-filter synonym
// candidates.  Without a model the filter is bypassed entirely and all
// lexical synonyms are accepted unfiltered.
func WithModel(m embedding.Model) Option {
	return func(g *Generator) { g.model = m }
}

// WithPhraseTable overrides the phrase table.  Defaults to phrase.Default().
func WithPhraseTable(t *phrase.Table) Option {
	return func(g *Generator) { g.table = t }
}

// WithThreshold overrides the similarity acceptance threshold.  Defaults to
// embedding.DefaultSimilarityThreshold.
func WithThreshold(threshold float64) Option {
	return func(g *Generator) { g.threshold = threshold }
}

// WithReporter installs a diagnostic hook that receives every scored
// candidate during synonym-map construction.  Off by default.
func WithReporter(r embedding.Reporter) Option {
	return func(g *Generator) { g.reporter = r }
}

// WithRand injects the random source used to shuffle Generate's output,
// letting tests seed the ordering.  Defaults to a time-seeded source.
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) { g.rng = rng }
}

// WithLogger injects the structured logger.  Defaults to the process logger.
func WithLogger(l logging.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// New normalizes the raw utterance and eagerly builds its synonym map using
// the injected POS resolver and lexicon.  Every external lookup is a blocking
// call executed inline here; a failing POS or lexicon lookup aborts the whole
// construction.  Per-candidate embedding misses never abort.
func New(ctx context.Context, utterance string, resolver POSResolver, lexicon Lexicon, opts ...Option) (*Generator, error) {
	g := &Generator{
		utterance: text.Normalize(utterance),
		resolver:  resolver,
		lexicon:   lexicon,
		table:     phrase.Default(),
		threshold: embedding.DefaultSimilarityThreshold,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.logger == nil {
		g.logger = logging.Default()
	}

	g.tokens = text.Tokens(g.utterance)

	synonyms, err := g.buildSynonymMap(ctx)
	if err != nil {
		return nil, err
	}
	g.synonyms = synonyms

	g.logger.Debug("generator constructed",
		logging.String("utterance", g.utterance),
		logging.Int("words", len(g.tokens)),
		logging.Int("words_with_synonyms", len(g.synonyms)))

	return g, nil
}

// Utterance returns the normalized utterance the generator was built for.
func (g *Generator) Utterance() string { return g.utterance }

// Synonyms returns a copy of the synonym map.
func (g *Generator) Synonyms() SynonymMap {
	out := make(SynonymMap, len(g.synonyms))
	for word, cands := range g.synonyms {
		out[word] = append([]string(nil), cands...)
	}
	return out
}

// Generate returns the combined candidate list: single-word substitutions
// first, phrase substitutions appended, then randomly permuted.  There is no
// deduplication across the word/phrase boundary, so phrase output may repeat
// entries already present from word substitution; repeated calls return the
// same multiset in a different order.
func (g *Generator) Generate() []string {
	words := g.substituteWords()
	phrases := g.substitutePhrases()

	out := make([]string, 0, len(words)+len(phrases))
	out = append(out, words...)
	out = append(out, phrases...)

	g.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
