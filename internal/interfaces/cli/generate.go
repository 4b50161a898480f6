package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/application/augment"
	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/config"
	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/domain/embedding"
	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/domain/phrase"
	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/infrastructure/database/postgres"
	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/infrastructure/embeddings"
	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/infrastructure/lexicon"
	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/infrastructure/monitoring/logging"
	"github.com/matthewstachyra/virtual-assistant-utterance-generator/pkg/errors"
)

func newGenerateCommand(opts *RootOptions) *cobra.Command {
	var showSynonyms bool
	var persist bool

	cmd := &cobra.Command{
		Use:   "generate <utterance>",
		Short: "Generate paraphrased variants of an utterance",
		Example: `  uttgen generate "do i need a referral" --lexicon lexicon.yaml
  uttgen generate "how much does a visit cost" --lexicon lexicon.yaml --embeddings vectors.txt -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			logger, err := opts.newLogger(cfg)
			if err != nil {
				return err
			}

			svc, cleanup, err := buildService(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer cleanup()

			result, err := svc.Generate(cmd.Context(), &augment.GenerateInput{
				Utterance: args[0],
				Persist:   persist,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.Output == "json" {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}

			for _, candidate := range result.Candidates {
				fmt.Fprintln(out, candidate)
			}
			if showSynonyms {
				for word, syns := range result.Synonyms {
					fmt.Fprintf(out, "# %s: %v\n", word, syns)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showSynonyms, "show-synonyms", false, "also print the synonym map")
	cmd.Flags().BoolVar(&persist, "persist", false, "store the batch in the configured database")
	return cmd
}

// buildService assembles the local augmentation service from configuration.
// The returned cleanup function releases the database pool when persistence
// is configured.
func buildService(ctx context.Context, cfg *config.Config, logger logging.Logger) (augment.Service, func(), error) {
	cleanup := func() {}

	if cfg.Lexicon.Path == "" {
		return nil, nil, errors.New(errors.ErrCodeLexiconUnavailable, "no lexicon configured; pass --lexicon or set lexicon.path")
	}
	lex, err := lexicon.Load(cfg.Lexicon.Path)
	if err != nil {
		return nil, nil, err
	}

	var model embedding.Model
	if cfg.Embeddings.Path != "" {
		m, err := embeddings.Load(cfg.Embeddings.Path)
		if err != nil {
			return nil, nil, err
		}
		model = m
	}

	var table *phrase.Table
	if cfg.Generator.PhraseTablePath != "" {
		table, err = phrase.LoadFile(cfg.Generator.PhraseTablePath)
		if err != nil {
			return nil, nil, err
		}
	}

	var repo augment.BatchRepository
	if cfg.Database.Enabled {
		pool, err := postgres.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return nil, nil, err
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		repo = postgres.NewBatchRepository(pool, logger)
		cleanup = pool.Close
	}

	return augment.NewService(augment.Deps{
		Resolver:  lex,
		Lexicon:   lex,
		Model:     model,
		Table:     table,
		Repo:      repo,
		Logger:    logger,
		Threshold: cfg.Generator.SimilarityThreshold,
		Seed:      cfg.Generator.ShuffleSeed,
	}), cleanup, nil
}
