// Package cli implements the uttgen command tree.  Generation runs locally
// against the configured lexicon and embedding model; no server is required.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/config"
	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/infrastructure/monitoring/logging"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// RootOptions holds global CLI flags.
type RootOptions struct {
	ConfigPath  string
	LogLevel    string
	Output      string
	Lexicon     string
	Embeddings  string
	PhraseTable string
	Threshold   float64
	Seed        int64
}

// NewRootCommand creates the root command with global flags and subcommands.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:     "uttgen",
		Short:   "Generate paraphrased utterances for intent-classifier training data",
		Long:    "uttgen expands a seed utterance into paraphrased variants using\nsynonym substitution gated by part of speech and embedding similarity,\nplus phrase-table rewrites.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "config file path")
	pf.StringVar(&opts.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVarP(&opts.Output, "output", "o", "text", "output format (text, json)")
	pf.StringVar(&opts.Lexicon, "lexicon", "", "lexicon file path (overrides config)")
	pf.StringVar(&opts.Embeddings, "embeddings", "", "embedding model path (overrides config)")
	pf.StringVar(&opts.PhraseTable, "phrase-table", "", "phrase table path (overrides config)")
	pf.Float64Var(&opts.Threshold, "threshold", 0, "similarity threshold (overrides config)")
	pf.Int64Var(&opts.Seed, "seed", 0, "shuffle seed (0 means time-seeded)")

	cmd.AddCommand(
		newGenerateCommand(opts),
		newPhrasesCommand(opts),
		newSimilarityCommand(opts),
	)
	return cmd
}

// loadConfig resolves the effective configuration: file or environment, then
// flag overrides.
func (o *RootOptions) loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error
	if o.ConfigPath != "" {
		cfg, err = config.Load(o.ConfigPath)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return nil, err
	}

	if o.LogLevel != "" {
		cfg.Log.Level = o.LogLevel
	}
	if o.Lexicon != "" {
		cfg.Lexicon.Path = o.Lexicon
	}
	if o.Embeddings != "" {
		cfg.Embeddings.Path = o.Embeddings
	}
	if o.PhraseTable != "" {
		cfg.Generator.PhraseTablePath = o.PhraseTable
	}
	if o.Threshold != 0 {
		cfg.Generator.SimilarityThreshold = o.Threshold
	}
	if o.Seed != 0 {
		cfg.Generator.ShuffleSeed = o.Seed
	}
	return cfg, nil
}

// newLogger builds the CLI logger.  CLI output goes to stdout; logs stay on
// stderr so piping candidates into other tools stays clean.
func (o *RootOptions) newLogger(cfg *config.Config) (logging.Logger, error) {
	lc := cfg.Log
	lc.OutputPaths = []string{"stderr"}
	return logging.NewLogger(lc)
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
