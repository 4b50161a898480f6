package cli

import (
	"bytes"
	"testing"
)

func TestNewRootCommand_Structure(t *testing.T) {
	cmd := NewRootCommand()
	if cmd == nil {
		t.Fatal("NewRootCommand should return a command")
	}
	if cmd.Use != "uttgen" {
		t.Errorf("expected Use='uttgen', got %q", cmd.Use)
	}
	if cmd.Short == "" {
		t.Error("Short should not be empty")
	}
	if cmd.Long == "" {
		t.Error("Long should not be empty")
	}
}

func TestNewRootCommand_SubcommandRegistration(t *testing.T) {
	cmd := NewRootCommand()
	subNames := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		subNames[sub.Name()] = true
	}
	for _, name := range []string{"generate", "phrases", "similarity"} {
		if !subNames[name] {
			t.Errorf("expected subcommand %q not found", name)
		}
	}
}

func TestNewRootCommand_GlobalFlags(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"config", "log-level", "output", "lexicon", "embeddings", "phrase-table", "threshold", "seed"} {
		if cmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("persistent flag %q should exist", name)
		}
	}
}

func TestNewRootCommand_OutputFlagDefault(t *testing.T) {
	cmd := NewRootCommand()
	f := cmd.PersistentFlags().Lookup("output")
	if f == nil {
		t.Fatal("output flag should exist")
	}
	if f.DefValue != "text" {
		t.Errorf("output flag default should be 'text', got %q", f.DefValue)
	}
}

func TestRootCommand_Version(t *testing.T) {
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execution failed: %v", err)
	}
	if out.Len() == 0 {
		t.Error("version output should not be empty")
	}
}
