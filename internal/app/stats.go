package app

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/songshelf/internal/catalog"
)

func newStatsCmd() *cobra.Command {
	var (
		ff       filterFlags
		top      int
		filtered bool
		jsonOut  bool
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show headline statistics: total songs, top languages, top category",
		Long: `Show the total song count, the most common languages and the most used
category. Statistics cover the whole list unless --filtered is given, in
which case they follow the --lang/--category/--search filter.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if top > 0 {
				cfg.Display.TopLanguages = top
			}
			lib, err := loadLibrary(cmd.Context(), ff.filter())
			if err != nil {
				return err
			}
			v := lib.View()
			sum := v.Summary
			if filtered {
				sum = v.FilteredSummary
			}
			w := cmd.OutOrStdout()

			if jsonOut {
				return writeJSON(w, sum)
			}

			printSummary(w, sum, v.Total)
			return nil
		},
	}

	ff.bind(cmd)
	cmd.Flags().IntVar(&top, "top", 0, "Number of languages to report (default from config)")
	cmd.Flags().BoolVar(&filtered, "filtered", false, "Report on the filtered songs instead of the whole list")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func printSummary(w io.Writer, sum catalog.Summary, total int) {
	header(w, "── Song library")
	fmt.Fprintf(w, "  %-14s %d", "songs", sum.TotalSongs)
	if sum.TotalSongs != total {
		fmt.Fprintf(w, " %s", color.HiBlackString("of %d", total))
	}
	fmt.Fprintln(w)
	for i, l := range sum.TopLanguages {
		fmt.Fprintf(w, "  %-14s %s %d\n", fmt.Sprintf("language #%d", i+1), color.YellowString("%s", l.Name), l.Count)
	}
	if sum.TopCategory != nil {
		fmt.Fprintf(w, "  %-14s %s %d\n", "top category", color.CyanString("%s", sum.TopCategory.Name), sum.TopCategory.Count)
	} else {
		fmt.Fprintf(w, "  %-14s %s\n", "top category", color.HiBlackString("none"))
	}
}
