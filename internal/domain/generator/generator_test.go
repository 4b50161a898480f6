package generator

import (
	"context"
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/domain/embedding"
	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/domain/phrase"
	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/domain/text"
	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/testutil"
	"github.com/matthewstachyra/virtual-assistant-utterance-generator/pkg/errors"
)

// unitVec returns a 2-d vector with the given cosine against {1, 0}.
func unitVec(cos float64) []float32 {
	sin := 1 - cos*cos
	if sin < 0 {
		sin = 0
	}
	return []float32{float32(cos), float32(math.Sqrt(sin))}
}

func seededRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func TestNew_NormalizesUtterance(t *testing.T) {
	g, err := New(context.Background(), "Do I <b>Need</b> A Referral 123?",
		&testutil.StubPOSResolver{}, &testutil.StubLexicon{}, WithRand(seededRand()))
	require.NoError(t, err)
	assert.Equal(t, "do i need a referral", g.Utterance())
}

func TestNew_SynonymMapInvariants(t *testing.T) {
	resolver := &testutil.StubPOSResolver{Tags: map[string]text.POSTag{
		"need":     text.POSVerb,
		"referral": text.POSNoun,
	}}
	lexicon := &testutil.StubLexicon{Entries: map[string][]string{
		// "need" itself and a multi-word lemma must both be filtered out.
		"need":     {"need", "require", "ask", "stand_in_need"},
		"referral": {"referral", "recommendation"},
	}}
	model := embedding.MapModel{
		"need":           unitVec(1.0),
		"require":        unitVec(0.9),
		"ask":            unitVec(0.3),
		"referral":       unitVec(1.0),
		"recommendation": unitVec(0.8),
	}

	g, err := New(context.Background(), "do i need a referral", resolver, lexicon,
		WithModel(model), WithRand(seededRand()))
	require.NoError(t, err)

	syns := g.Synonyms()
	assert.Equal(t, SynonymMap{
		"need":     {"require"},
		"referral": {"recommendation"},
	}, syns)

	for word, cands := range syns {
		for _, c := range cands {
			assert.NotContains(t, c, "_")
			assert.NotEqual(t, word, text.Normalize(c))
		}
	}
}

func TestNew_NoModelAcceptsAllLexicalSynonyms(t *testing.T) {
	resolver := &testutil.StubPOSResolver{Tags: map[string]text.POSTag{"need": text.POSVerb}}
	lexicon := &testutil.StubLexicon{Entries: map[string][]string{
		"need": {"require", "ask", "want"},
	}}

	g, err := New(context.Background(), "do i need a referral", resolver, lexicon,
		WithRand(seededRand()))
	require.NoError(t, err)
	assert.Equal(t, []string{"require", "ask", "want"}, g.Synonyms()["need"])
}

func TestNew_EmbeddingMissExcludesCandidate(t *testing.T) {
	resolver := &testutil.StubPOSResolver{Tags: map[string]text.POSTag{"need": text.POSVerb}}
	lexicon := &testutil.StubLexicon{Entries: map[string][]string{
		"need": {"require", "necessitate"},
	}}
	// "necessitate" has no vector: silently dropped, never scored as zero.
	model := embedding.MapModel{
		"need":    unitVec(1.0),
		"require": unitVec(0.95),
	}

	g, err := New(context.Background(), "i need this", resolver, lexicon,
		WithModel(model), WithRand(seededRand()))
	require.NoError(t, err)
	assert.Equal(t, []string{"require"}, g.Synonyms()["need"])
}

func TestNew_UnsupportedPOSYieldsNoCandidates(t *testing.T) {
	// Every word resolves to POSOther; the lexicon has entries that must
	// never be consulted.
	resolver := &testutil.StubPOSResolver{}
	lexicon := &testutil.StubLexicon{Entries: map[string][]string{
		"need": {"require"},
	}}

	g, err := New(context.Background(), "do i need a referral", resolver, lexicon,
		WithRand(seededRand()))
	require.NoError(t, err)
	assert.Empty(t, g.Synonyms())
}

func TestNew_SingleCharWordsSkipped(t *testing.T) {
	resolver := &testutil.StubPOSResolver{Tags: map[string]text.POSTag{"i": text.POSPron}}
	lexicon := &testutil.StubLexicon{Entries: map[string][]string{
		"i": {"me", "myself"},
	}}

	g, err := New(context.Background(), "i need this", resolver, lexicon,
		WithRand(seededRand()))
	require.NoError(t, err)
	assert.NotContains(t, g.Synonyms(), "i")
}

func TestNew_LexiconFailureAbortsBuild(t *testing.T) {
	resolver := &testutil.StubPOSResolver{Tags: map[string]text.POSTag{"need": text.POSVerb}}
	lexicon := &testutil.StubLexicon{Err: errors.New(errors.ErrCodeExternalService, "wordnet down")}

	_, err := New(context.Background(), "i need this", resolver, lexicon,
		WithRand(seededRand()))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeSynonymMapBuild))
	assert.True(t, errors.IsCode(err, errors.ErrCodeLexiconUnavailable))
}

func TestNew_ResolverFailureAbortsBuild(t *testing.T) {
	resolver := &testutil.StubPOSResolver{Err: errors.New(errors.ErrCodeExternalService, "tagger down")}

	_, err := New(context.Background(), "i need this", resolver, &testutil.StubLexicon{},
		WithRand(seededRand()))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodePOSResolveFailed))
}

func TestResolvePOS_Preconditions(t *testing.T) {
	g := &Generator{utterance: "do i need a referral", resolver: &testutil.StubPOSResolver{}}

	_, err := g.resolvePOS(context.Background(), "")
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidWord))

	_, err = g.resolvePOS(context.Background(), "injection")
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidWord))

	empty := &Generator{utterance: "", resolver: &testutil.StubPOSResolver{}}
	_, err = empty.resolvePOS(context.Background(), "need")
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidWord))

	// Happy path delegates to the resolver.
	tag, err := g.resolvePOS(context.Background(), "need")
	require.NoError(t, err)
	assert.Equal(t, text.POSOther, tag)
}

func TestGenerate_NoSynonymsNoPhraseMatch(t *testing.T) {
	g, err := New(context.Background(), "hello world",
		&testutil.StubPOSResolver{}, &testutil.StubLexicon{}, WithRand(seededRand()))
	require.NoError(t, err)

	out := g.Generate()
	assert.Equal(t, []string{"hello world"}, out)
}

func TestGenerate_MultisetStableAcrossCalls(t *testing.T) {
	resolver := &testutil.StubPOSResolver{Tags: map[string]text.POSTag{
		"need":     text.POSVerb,
		"referral": text.POSNoun,
	}}
	lexicon := &testutil.StubLexicon{Entries: map[string][]string{
		"need":     {"require", "want"},
		"referral": {"recommendation"},
	}}

	g, err := New(context.Background(), "do i need a referral", resolver, lexicon,
		WithRand(seededRand()))
	require.NoError(t, err)

	first := g.Generate()
	second := g.Generate()

	sortedFirst := append([]string(nil), first...)
	sortedSecond := append([]string(nil), second...)
	sort.Strings(sortedFirst)
	sort.Strings(sortedSecond)
	assert.Equal(t, sortedFirst, sortedSecond)
}

func TestGenerate_CombinesWordAndPhraseOutput(t *testing.T) {
	resolver := &testutil.StubPOSResolver{Tags: map[string]text.POSTag{"referral": text.POSNoun}}
	lexicon := &testutil.StubLexicon{Entries: map[string][]string{
		"referral": {"recommendation"},
	}}

	g, err := New(context.Background(), "do i need a referral", resolver, lexicon,
		WithRand(seededRand()))
	require.NoError(t, err)

	out := g.Generate()
	assert.Contains(t, out, "do i need a referral")
	assert.Contains(t, out, "do i need a recommendation")
	assert.Contains(t, out, "must i a referral")
}

func TestGenerate_EmptyUtterance(t *testing.T) {
	g, err := New(context.Background(), "",
		&testutil.StubPOSResolver{}, &testutil.StubLexicon{}, WithRand(seededRand()))
	require.NoError(t, err)
	assert.Empty(t, g.Generate())
}

func TestNew_ReporterObservesScores(t *testing.T) {
	resolver := &testutil.StubPOSResolver{Tags: map[string]text.POSTag{"need": text.POSVerb}}
	lexicon := &testutil.StubLexicon{Entries: map[string][]string{
		"need": {"require"},
	}}
	model := embedding.MapModel{
		"need":    unitVec(1.0),
		"require": unitVec(0.9),
	}

	scores := make(map[string]float64)
	_, err := New(context.Background(), "i need this", resolver, lexicon,
		WithModel(model),
		WithReporter(func(word string, score float64) { scores[word] = score }),
		WithRand(seededRand()))
	require.NoError(t, err)

	assert.InDelta(t, 1.0, scores["need"], 1e-6)
	assert.InDelta(t, 0.9, scores["require"], 1e-6)
}

func TestWithThreshold(t *testing.T) {
	resolver := &testutil.StubPOSResolver{Tags: map[string]text.POSTag{"need": text.POSVerb}}
	lexicon := &testutil.StubLexicon{Entries: map[string][]string{
		"need": {"require", "ask"},
	}}
	model := embedding.MapModel{
		"need":    unitVec(1.0),
		"require": unitVec(0.9),
		"ask":     unitVec(0.3),
	}

	// A permissive threshold admits what the default 0.70 rejects.
	g, err := New(context.Background(), "i need this", resolver, lexicon,
		WithModel(model), WithThreshold(0.25), WithRand(seededRand()))
	require.NoError(t, err)
	assert.Equal(t, []string{"require", "ask"}, g.Synonyms()["need"])
}

func TestSynonyms_ReturnsCopy(t *testing.T) {
	resolver := &testutil.StubPOSResolver{Tags: map[string]text.POSTag{"need": text.POSVerb}}
	lexicon := &testutil.StubLexicon{Entries: map[string][]string{"need": {"require"}}}

	g, err := New(context.Background(), "i need this", resolver, lexicon,
		WithRand(seededRand()))
	require.NoError(t, err)

	first := g.Synonyms()
	first["need"][0] = "mutated"
	assert.Equal(t, []string{"require"}, g.Synonyms()["need"])
}

func TestDefaultPhraseTableIsUsed(t *testing.T) {
	g, err := New(context.Background(), "do i need a referral",
		&testutil.StubPOSResolver{}, &testutil.StubLexicon{}, WithRand(seededRand()))
	require.NoError(t, err)
	require.NotNil(t, g.table)
	assert.Equal(t, phrase.Default().Len(), g.table.Len())
}
