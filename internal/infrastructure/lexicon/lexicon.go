// Package lexicon provides the file-backed lexical knowledge base behind
// part-of-speech resolution and synonym lookup.  A lexicon file is a YAML
// document keyed by word, each entry carrying the word's part-of-speech tag
// and its synonyms grouped by WordNet part-of-speech code:
//
//	words:
//	  need:
//	    pos: VERB
//	    synonyms:
//	      v: [require, necessitate, want]
//	  doctor:
//	    pos: NOUN
//	    synonyms:
//	      n: [physician, doc, md]
package lexicon

import (
	"context"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/domain/text"
	"github.com/matthewstachyra/virtual-assistant-utterance-generator/pkg/errors"
)

// WordNetCode maps a part-of-speech tag to the WordNet lookup code used to
// group synonyms.  Pronouns and proper nouns share the noun code.  The second
// return is false for tags outside the substitutable categories.
func WordNetCode(pos text.POSTag) (string, bool) {
	switch pos {
	case text.POSVerb:
		return "v", true
	case text.POSNoun, text.POSPron, text.POSPropn:
		return "n", true
	case text.POSAdj:
		return "a", true
	case text.POSAdv:
		return "r", true
	default:
		return "", false
	}
}

// Entry is one word's lexical record.
type Entry struct {
	POS      text.POSTag         `yaml:"pos"`
	Synonyms map[string][]string `yaml:"synonyms"`
}

// File is an in-memory lexicon loaded from a YAML document.  It implements
// both part-of-speech resolution and synonym lookup for the generator.
type File struct {
	words map[string]Entry
}

type fileDoc struct {
	Words map[string]Entry `yaml:"words"`
}

// Load reads and parses the lexicon file at path.
func Load(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeLexiconLoadFailed, "failed to read lexicon file").WithDetail(path)
	}
	return Parse(raw)
}

// Parse builds a File from raw YAML.
func Parse(raw []byte) (*File, error) {
	var doc fileDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeLexiconLoadFailed, "failed to parse lexicon file")
	}
	if doc.Words == nil {
		doc.Words = map[string]Entry{}
	}
	return &File{words: doc.Words}, nil
}

// Len returns the number of words in the lexicon.
func (f *File) Len() int { return len(f.words) }

// Resolve returns the part-of-speech tag recorded for word.  Words absent
// from the lexicon resolve to the non-substitutable tag rather than an error;
// missing coverage is expected for function words and domain terms.
func (f *File) Resolve(_ context.Context, word, _ string) (text.POSTag, error) {
	entry, ok := f.words[text.Normalize(word)]
	if !ok || entry.POS == "" {
		return text.POSOther, nil
	}
	return entry.POS, nil
}

// Synonyms returns the synonyms recorded for word under the WordNet code of
// pos.  The returned slice is a copy in lexicon file order.
func (f *File) Synonyms(_ context.Context, word string, pos text.POSTag) ([]string, error) {
	code, ok := WordNetCode(pos)
	if !ok {
		return nil, nil
	}
	entry, ok := f.words[text.Normalize(word)]
	if !ok {
		return nil, nil
	}
	return append([]string(nil), entry.Synonyms[code]...), nil
}
