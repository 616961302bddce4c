package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/songshelf/internal/catalog"
	"github.com/blackwell-systems/songshelf/internal/config"
	"github.com/blackwell-systems/songshelf/internal/util"
)

func newFetchCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download the sheet rows for offline use",
		Long: `Download the raw rows from the configured source and save them as YAML.
Point --file (or source.file in the config) at the result to work offline.

Examples:
  songshelf fetch -o ~/songs.yml
  songshelf --file ~/songs.yml browse`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := newSource().LoadRows(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetching rows from %s: %w", cfg.Source.Describe(), err)
			}

			data, err := catalog.Marshal(rows)
			if err != nil {
				return err
			}
			if output == "" || output == "-" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}

			path := config.ExpandHome(output)
			if err := util.WriteFile(path, data); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			ok("Saved %d rows to %s", len(rows), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	return cmd
}
