package app

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/songshelf/internal/catalog"
)

func newLanguagesCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List languages with song counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := loadLibrary(cmd.Context(), catalog.NewFilter())
			if err != nil {
				return err
			}
			reg := lib.Registry()
			w := cmd.OutOrStdout()

			langs := reg.SortedLanguages()
			stats := make([]catalog.Stat, 0, len(langs))
			for _, l := range langs {
				stats = append(stats, catalog.Stat{Name: l, Count: reg.LanguageCounts.Get(l)})
			}

			if jsonOut {
				return writeJSON(w, stats)
			}

			if len(stats) == 0 {
				fmt.Fprintln(w, "No languages found.")
				return nil
			}
			for _, s := range stats {
				fmt.Fprintf(w, "  %s %s\n", padRight(color.YellowString("%s", s.Name), s.Name, 16), color.HiBlackString("(%d)", s.Count))
			}
			fmt.Fprintf(w, "\n%d languages\n", len(stats))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}
