package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/domain/phrase"
)

func newPhrasesCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "phrases",
		Short: "Print the active phrase equivalence classes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			table := phrase.Default()
			if cfg.Generator.PhraseTablePath != "" {
				loaded, err := phrase.LoadFile(cfg.Generator.PhraseTablePath)
				if err != nil {
					return err
				}
				table = loaded
			}

			out := cmd.OutOrStdout()
			if opts.Output == "json" {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(table.Classes())
			}

			for _, class := range table.Classes() {
				fmt.Fprintf(out, "%s:\n", class.Name)
				fmt.Fprintf(out, "  %s\n", strings.Join(class.Phrases, " | "))
			}
			return nil
		},
	}
}
