// Package text provides utterance normalization and tokenization primitives
// shared by the synonym and phrase substitution pipelines.
package text

import (
	"regexp"
	"strings"
)

var (
	tagPattern   = regexp.MustCompile(`<.*?>`)
	digitPattern = regexp.MustCompile(`[0-9]+`)
	wordPattern  = regexp.MustCompile(`\w+`)
)

// Normalize lowercases the input, strips tag-like spans (`<...>`) and digit
// runs, then re-joins the remaining word-character tokens with single spaces.
//
// Normalize is idempotent: Normalize(Normalize(x)) == Normalize(x) for all x.
// Empty input yields empty output; there are no failure modes.
func Normalize(s string) string {
	lower := strings.ToLower(s)
	clean := tagPattern.ReplaceAllString(lower, "")
	clean = digitPattern.ReplaceAllString(clean, "")
	return strings.Join(wordPattern.FindAllString(clean, -1), " ")
}

// Token is a word of a normalized utterance together with its byte offsets
// into the normalized string.  Spans are computed once so that positional
// substitution never has to re-derive them by substring search.
type Token struct {
	Text  string
	Start int
	End   int
}

// Tokens splits a normalized utterance into its word tokens with spans.
// The input is expected to be the output of Normalize; other inputs are
// tokenized by the same word pattern but spans then refer to the raw string.
func Tokens(normalized string) []Token {
	idxs := wordPattern.FindAllStringIndex(normalized, -1)
	out := make([]Token, 0, len(idxs))
	for _, span := range idxs {
		out = append(out, Token{
			Text:  normalized[span[0]:span[1]],
			Start: span[0],
			End:   span[1],
		})
	}
	return out
}
