package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/domain/embedding"
	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/infrastructure/embeddings"
	"github.com/matthewstachyra/virtual-assistant-utterance-generator/pkg/errors"
)

func newSimilarityCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "similarity <word> <candidate>...",
		Short: "Score candidate words against a reference word",
		Long:  "similarity loads the embedding model and prints the cosine similarity\nof each candidate against the reference word. Candidates without a\nvector are omitted; the reference word always scores 1 against itself.",
		Example: `  uttgen similarity need require want --embeddings vectors.txt
  uttgen similarity doctor physician -o json --embeddings vectors.txt`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if cfg.Embeddings.Path == "" {
				return errors.New(errors.ErrCodeModelLoadFailed, "no embedding model configured; pass --embeddings or set embeddings.path")
			}
			model, err := embeddings.Load(cfg.Embeddings.Path)
			if err != nil {
				return err
			}

			sims := embedding.Similarities(args[0], args[1:], model)

			out := cmd.OutOrStdout()
			if opts.Output == "json" {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(sims)
			}

			embedding.Report(sims, embedding.WriterReporter(out))
			return nil
		},
	}
}
