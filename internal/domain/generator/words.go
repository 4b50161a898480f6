package generator

import "strings"

// substituteWords walks the utterance positionally and, for each word, emits
// one utterance per candidate with only that word's span replaced.  Each
// position's candidate list is the original word followed by its mapped
// synonyms, so an unchanged copy of the utterance is always among the output.
// Substitutions are never cumulative across candidates or positions.
//
// Span location uses a single left-to-right cursor: each position targets the
// first occurrence of the *original* word text at or after the end of the
// previous position's located span, and the cursor advances once per
// position.  With repeated word tokens this consumes occurrences strictly
// left to right.  If a word's occurrences were all consumed by earlier
// positions the position is skipped and the cursor stays put.
//
// The result is deduplicated, preserving first-seen order.
func (g *Generator) substituteWords() []string {
	var out []string
	seen := make(map[string]struct{})
	cursor := 0

	for _, tok := range g.tokens {
		word := tok.Text

		rel := strings.Index(g.utterance[cursor:], word)
		if rel < 0 {
			continue
		}
		start := cursor + rel
		end := start + len(word)

		for _, cand := range g.candidatesAt(word) {
			gen := g.utterance[:start] + cand + g.utterance[end:]
			if _, dup := seen[gen]; dup {
				continue
			}
			seen[gen] = struct{}{}
			out = append(out, gen)
		}
		cursor = end
	}
	return out
}

// candidatesAt returns the candidate list for one word position: the word
// itself first, then its accepted synonyms.  Words absent from the synonym
// map have only themselves.
func (g *Generator) candidatesAt(word string) []string {
	cands := make([]string, 0, 1+len(g.synonyms[word]))
	cands = append(cands, word)
	return append(cands, g.synonyms[word]...)
}
