package text

// POSTag is the grammatical category of a word, using the Universal
// Dependencies coarse tag set for the categories the generator cares about.
type POSTag string

const (
	POSVerb  POSTag = "VERB"
	POSNoun  POSTag = "NOUN"
	POSPron  POSTag = "PRON"
	POSPropn POSTag = "PROPN"
	POSAdj   POSTag = "ADJ"
	POSAdv   POSTag = "ADV"

	// POSOther covers every category outside the six substitutable ones.
	// Words tagged POSOther yield no synonym candidates; this is not an error.
	POSOther POSTag = "X"
)

// String returns the tag's string form.
func (t POSTag) String() string { return string(t) }

// Substitutable reports whether words of this category participate in
// synonym substitution.
func (t POSTag) Substitutable() bool {
	switch t {
	case POSVerb, POSNoun, POSPron, POSPropn, POSAdj, POSAdv:
		return true
	default:
		return false
	}
}
