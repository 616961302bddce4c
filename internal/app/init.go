package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/songshelf/internal/config"
)

func newInitCmd() *cobra.Command {
	var (
		sheetID   string
		sheetName string
		force     bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file pointing at your song sheet",
		Long: `Write a config file with the sheet to read songs from.

The sheet must be published through an opensheet-style endpoint. Pass --file
to read a rows file saved with 'songshelf fetch' instead.`,
		Example: `  # Use your own sheet
  songshelf init --sheet-id 1AbC... --sheet-name songs

  # Work from a saved rows file
  songshelf init --file ~/songs.yml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := flagConfig
			if path == "" {
				path = config.DefaultPath()
			}
			path = config.ExpandHome(path)

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			out := *cfg
			if sheetID = strings.TrimSpace(sheetID); sheetID != "" {
				out.Source.SheetID = sheetID
			}
			if sheetName = strings.TrimSpace(sheetName); sheetName != "" {
				out.Source.SheetName = sheetName
			}

			if err := config.Save(path, &out); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}
			ok("Wrote %s", path)
			fmt.Fprintf(cmd.OutOrStdout(), "  source: %s\n", out.Source.Describe())
			fmt.Fprintf(cmd.OutOrStdout(), "\nNext: run %s\n", color.CyanString("songshelf browse"))
			return nil
		},
	}

	cmd.Flags().StringVar(&sheetID, "sheet-id", "", "Spreadsheet ID")
	cmd.Flags().StringVar(&sheetName, "sheet-name", "", "Sheet tab name (default: sheet1)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	return cmd
}
