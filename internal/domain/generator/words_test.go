package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/domain/text"
)

func wordGenerator(utterance string, synonyms SynonymMap) *Generator {
	return &Generator{
		utterance: utterance,
		tokens:    text.Tokens(utterance),
		synonyms:  synonyms,
	}
}

func TestSubstituteWords_UnchangedCopyAlwaysFirst(t *testing.T) {
	g := wordGenerator("do i need a referral", SynonymMap{
		"need": {"require"},
	})

	out := g.substituteWords()
	assert.Equal(t, []string{
		"do i need a referral",
		"do i require a referral",
	}, out)
}

func TestSubstituteWords_OnePositionPerVariant(t *testing.T) {
	// Substitutions never compound: each variant differs from the original
	// at exactly one word span.
	g := wordGenerator("need a referral", SynonymMap{
		"need":     {"require"},
		"referral": {"recommendation"},
	})

	out := g.substituteWords()
	assert.Equal(t, []string{
		"need a referral",
		"require a referral",
		"need a recommendation",
	}, out)
}

func TestSubstituteWords_RepeatedWordConsumedLeftToRight(t *testing.T) {
	g := wordGenerator("need to need", SynonymMap{
		"need": {"require"},
	})

	out := g.substituteWords()
	assert.Equal(t, []string{
		"need to need",
		"require to need",
		"need to require",
	}, out)
}

func TestSubstituteWords_SkipsPositionWhenWordConsumed(t *testing.T) {
	// Synthetic token list where the third position's word has no occurrence
	// left after the cursor passed it.
	g := &Generator{
		utterance: "abc ab",
		tokens: []text.Token{
			{Text: "abc", Start: 0, End: 3},
			{Text: "ab", Start: 4, End: 6},
			{Text: "abc", Start: 0, End: 3},
		},
		synonyms: SynonymMap{"abc": {"xyz"}},
	}

	out := g.substituteWords()
	assert.Equal(t, []string{
		"abc ab",
		"xyz ab",
	}, out)
}

func TestSubstituteWords_EmptyUtterance(t *testing.T) {
	g := wordGenerator("", nil)
	assert.Empty(t, g.substituteWords())
}

func TestCandidatesAt(t *testing.T) {
	g := wordGenerator("i need this", SynonymMap{
		"need": {"require", "want"},
	})

	assert.Equal(t, []string{"need", "require", "want"}, g.candidatesAt("need"))
	assert.Equal(t, []string{"this"}, g.candidatesAt("this"))
}
