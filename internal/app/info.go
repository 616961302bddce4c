package app

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/songshelf/internal/catalog"
)

func newInfoCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "info <id>",
		Short: "Show every field of one song",
		Long: `Show one song by its ID, as printed by browse and search.
IDs are row positions and change when rows are inserted above.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil || id < 1 {
				return fmt.Errorf("invalid song id %q", args[0])
			}

			lib, err := loadLibrary(cmd.Context(), catalog.NewFilter())
			if err != nil {
				return err
			}
			song := catalog.ByID(lib.Songs(), id)
			if song == nil {
				return fmt.Errorf("song %d not found (%d songs loaded)", id, len(lib.Songs()))
			}
			w := cmd.OutOrStdout()

			if jsonOut {
				return writeJSON(w, song)
			}

			reg := lib.Registry()
			header(w, "Song #%d", song.ID)
			printField(w, "title", song.Title)
			printField(w, "artist", song.Artist)
			printField(w, "language", song.Language)
			var cats []string
			for _, c := range song.Categories {
				if c == "" {
					continue
				}
				if rank, ok := reg.Rank(c); ok && rank < catalog.AdHocRankBase {
					cats = append(cats, c)
				} else {
					cats = append(cats, c+color.HiBlackString("*"))
				}
			}
			printField(w, "categories", strings.Join(cats, ", "))
			printField(w, "notes", song.Notes)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

// printField prints one aligned label/value line; empty values show as "-".
func printField(w io.Writer, label, value string) {
	if value == "" {
		value = color.HiBlackString("-")
	}
	fmt.Fprintf(w, "  %-14s %s\n", color.CyanString(label+":"), value)
}
