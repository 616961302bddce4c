package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSearchCmd() *cobra.Command {
	var (
		ff      filterFlags
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search songs by title, artist, language, category or notes",
		Long: `Search the song list for a case-insensitive substring.
Matches title, artist, language, the raw category field and notes.

Use --lang or --category to narrow results further.

Examples:
  songshelf search 周杰倫
  songshelf search love --lang English
  songshelf search "" -c 搖滾 --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				ff.search = args[0]
			}
			f := ff.filter()
			if f.IsZero() {
				return fmt.Errorf("provide a search query or use --lang/--category to filter")
			}

			lib, err := loadLibrary(cmd.Context(), f)
			if err != nil {
				return err
			}
			v := lib.View()
			w := cmd.OutOrStdout()

			if jsonOut {
				return writeJSON(w, v.Songs)
			}

			if len(v.Songs) == 0 {
				fmt.Fprintln(w, "No songs found.")
				return nil
			}

			printSongs(w, v.Songs, cfg.Display.IsHighlighted)
			fmt.Fprintf(w, "\n%d result(s)\n", len(v.Songs))
			return nil
		},
	}

	ff.bind(cmd)
	cmd.Flags().Lookup("search").Hidden = true
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}
