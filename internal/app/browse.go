package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/songshelf/internal/tui"
)

func newBrowseCmd() *cobra.Command {
	var (
		ff     filterFlags
		format string
	)

	cmd := &cobra.Command{
		Use:     "browse",
		Aliases: []string{"ls"},
		Short:   "Browse songs (interactive browser or text output)",
		Long: `List songs, optionally narrowed by language, categories and a search term.

Filters combine: the language must match exactly, every --category must be
present on the song, and the search term must appear in one of its fields.

Examples:
  songshelf browse
  songshelf ls --lang 國語 -c 流行 -c 抒情
  songshelf ls -s love --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := ff.filter()

			if tui.ShouldUseTUI(cmd) {
				return runBrowser(cmd, f)
			}

			lib, err := loadLibrary(cmd.Context(), f)
			if err != nil {
				return err
			}
			v := lib.View()
			w := cmd.OutOrStdout()

			switch format {
			case "json":
				return writeJSON(w, v)
			case "", "text":
			default:
				return fmt.Errorf("unknown format %q (want text or json)", format)
			}

			if len(v.Songs) == 0 {
				fmt.Fprintln(w, "No songs found.")
				return nil
			}

			title := fmt.Sprintf("── %d of %d songs", len(v.Songs), v.Total)
			if desc := describeFilter(v.Filter); desc != "" {
				title += "  (" + desc + ")"
			}
			header(w, "%s", title)
			printSongs(w, v.Songs, cfg.Display.IsHighlighted)
			return nil
		},
	}

	ff.bind(cmd)
	cmd.Flags().StringVar(&format, "format", "", "Output format: text or json")
	return cmd
}
