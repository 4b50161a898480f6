package phrase

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthewstachyra/virtual-assistant-utterance-generator/pkg/errors"
)

func TestDefault_TwelveClasses(t *testing.T) {
	table := Default()
	require.Equal(t, 12, table.Len())

	names := make([]string, 0, table.Len())
	for _, c := range table.Classes() {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{
		"need", "signs", "timing", "billing", "frequency", "scheduling",
		"insurance", "location", "ability", "preparation", "forgetfulness",
		"explanation",
	}, names)
}

func TestDefault_NeedClassOrder(t *testing.T) {
	// The assembler relies on member order; the final entry is never offered
	// as a replacement, so the order here is part of observed behaviour.
	need := Default().Classes()[0]
	assert.Equal(t, []string{
		"do i need",
		"do i need to",
		"must i",
		"must i have",
		"is it required that i",
		"will i need",
		"will i need to",
	}, need.Phrases)
}

func TestDefault_Validates(t *testing.T) {
	_, err := NewTable(Default().Classes())
	assert.NoError(t, err)
}

func TestNewTable_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		classes []EquivalenceClass
	}{
		{"unnamed_class", []EquivalenceClass{{Phrases: []string{"a"}}}},
		{"no_phrases", []EquivalenceClass{{Name: "x"}}},
		{"empty_phrase", []EquivalenceClass{{Name: "x", Phrases: []string{"a", ""}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTable(tt.classes)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrCodePhraseTableInvalid))
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "phrases.yaml")
	data := `classes:
  - name: need
    phrases:
      - do i need
      - must i
  - name: billing
    phrases:
      - what is my bill
      - how much do i owe
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	table, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())
	assert.Equal(t, "need", table.Classes()[0].Name)
	assert.Equal(t, []string{"do i need", "must i"}, table.Classes()[0].Phrases)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodePhraseTableLoadFailed))
}

func TestLoadFile_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("classes: [not, a, mapping"), 0o644))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodePhraseTableLoadFailed))
}
