// Package phrase defines the phrase table: a fixed collection of equivalence
// classes, each an ordered list of interchangeable phrase strings covering a
// single communicative intent (e.g., ways of asking "do I need X").
//
// The table is static configuration: loaded once, never mutated at runtime,
// and editable independently of the generation algorithm.
package phrase

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/matthewstachyra/virtual-assistant-utterance-generator/pkg/errors"
)

// EquivalenceClass is an ordered list of phrase strings considered alternate
// ways of expressing the same intent.  Order matters: the substitution
// assembler only offers members at indices 0 through len-2 as replacements.
type EquivalenceClass struct {
	Name    string   `yaml:"name"`
	Phrases []string `yaml:"phrases"`
}

// Table is a fixed collection of equivalence classes.
type Table struct {
	classes []EquivalenceClass
}

// NewTable constructs a Table from the given classes after validation.
func NewTable(classes []EquivalenceClass) (*Table, error) {
	t := &Table{classes: classes}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Classes returns the table's equivalence classes.  Callers must not mutate
// the returned slice.
func (t *Table) Classes() []EquivalenceClass {
	if t == nil {
		return nil
	}
	return t.classes
}

// Len returns the number of equivalence classes.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.classes)
}

func (t *Table) validate() error {
	for i, c := range t.classes {
		if c.Name == "" {
			return errors.Newf(errors.ErrCodePhraseTableInvalid, "class %d has no name", i)
		}
		if len(c.Phrases) == 0 {
			return errors.Newf(errors.ErrCodePhraseTableInvalid, "class %q has no phrases", c.Name)
		}
		for j, p := range c.Phrases {
			if p == "" {
				return errors.Newf(errors.ErrCodePhraseTableInvalid, "class %q phrase %d is empty", c.Name, j)
			}
		}
	}
	return nil
}

// tableFile is the on-disk YAML representation of a phrase table.
type tableFile struct {
	Classes []EquivalenceClass `yaml:"classes"`
}

// LoadFile reads a phrase table from a YAML file of the form:
//
//	classes:
//	  - name: need
//	    phrases: ["do i need", "must i", ...]
//
// A malformed file fails the load; the compiled-in Default table never fails.
func LoadFile(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodePhraseTableLoadFailed, "failed to read phrase table file").WithDetail(path)
	}
	var f tableFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodePhraseTableLoadFailed, "failed to parse phrase table yaml").WithDetail(path)
	}
	return NewTable(f.Classes)
}
