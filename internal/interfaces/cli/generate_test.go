package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/application/augment"
)

const testLexiconYAML = `words:
  need:
    pos: VERB
    synonyms:
      v: [require]
  referral:
    pos: NOUN
    synonyms:
      n: [recommendation]
`

const testVectorsTXT = `need 1 0
require 1 0
referral 0 1
recommendation 1 0
want 0 1
`

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

// runCommand executes the root command with the given args and returns its
// captured output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerateCommand_Text(t *testing.T) {
	lex := writeTestFile(t, "lexicon.yaml", testLexiconYAML)

	out, err := runCommand(t, "generate", "do i need a referral", "--lexicon", lex, "--seed", "7")
	if err != nil {
		t.Fatalf("execution failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) < 3 {
		t.Fatalf("expected several candidates, got %d lines:\n%s", len(lines), out)
	}
	for _, want := range []string{
		"do i need a referral",
		"do i require a referral",
		"must i a referral",
		"will i need a referral",
	} {
		if !strings.Contains(out, want+"\n") {
			t.Errorf("output should contain %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "will i need to a referral") {
		t.Errorf("final class entry should never be offered, got:\n%s", out)
	}
}

func TestGenerateCommand_EmbeddingFilter(t *testing.T) {
	lex := writeTestFile(t, "lexicon.yaml", testLexiconYAML)
	vec := writeTestFile(t, "vectors.txt", testVectorsTXT)

	out, err := runCommand(t, "generate", "do i need a referral",
		"--lexicon", lex, "--embeddings", vec, "--seed", "7")
	if err != nil {
		t.Fatalf("execution failed: %v", err)
	}

	// require scores 1.0 against need and passes; recommendation scores 0
	// against referral and is filtered out.
	if !strings.Contains(out, "do i require a referral") {
		t.Errorf("high-similarity synonym should survive, got:\n%s", out)
	}
	if strings.Contains(out, "recommendation") {
		t.Errorf("low-similarity synonym should be filtered, got:\n%s", out)
	}
}

func TestGenerateCommand_JSON(t *testing.T) {
	lex := writeTestFile(t, "lexicon.yaml", testLexiconYAML)

	out, err := runCommand(t, "generate", "Do I need a referral?",
		"--lexicon", lex, "--seed", "7", "-o", "json")
	if err != nil {
		t.Fatalf("execution failed: %v", err)
	}

	var result augment.GenerateResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("output is not valid json: %v\n%s", err, out)
	}
	if result.Utterance != "do i need a referral" {
		t.Errorf("expected normalized utterance, got %q", result.Utterance)
	}
	if len(result.Candidates) == 0 {
		t.Error("expected at least one candidate")
	}
}

func TestGenerateCommand_ShowSynonyms(t *testing.T) {
	lex := writeTestFile(t, "lexicon.yaml", testLexiconYAML)

	out, err := runCommand(t, "generate", "do i need a referral",
		"--lexicon", lex, "--seed", "7", "--show-synonyms")
	if err != nil {
		t.Fatalf("execution failed: %v", err)
	}
	if !strings.Contains(out, "# need:") {
		t.Errorf("expected synonym map in output, got:\n%s", out)
	}
}

func TestGenerateCommand_NoLexicon(t *testing.T) {
	_, err := runCommand(t, "generate", "do i need a referral")
	if err == nil {
		t.Fatal("expected error without a configured lexicon")
	}
	if !strings.Contains(err.Error(), "no lexicon configured") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestGenerateCommand_PersistWithoutDatabase(t *testing.T) {
	lex := writeTestFile(t, "lexicon.yaml", testLexiconYAML)
	_, err := runCommand(t, "generate", "do i need a referral", "--lexicon", lex, "--persist")
	if err == nil {
		t.Fatal("expected error when persisting without a database")
	}
}

func TestGenerateCommand_MissingUtterance(t *testing.T) {
	lex := writeTestFile(t, "lexicon.yaml", testLexiconYAML)
	_, err := runCommand(t, "generate", "--lexicon", lex)
	if err == nil {
		t.Fatal("expected error for missing utterance argument")
	}
}
