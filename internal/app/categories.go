package app

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/songshelf/internal/catalog"
	"github.com/blackwell-systems/songshelf/internal/library"
)

// categoryEntry is one category with its count under the current filter.
type categoryEntry struct {
	Name        string `json:"name"`
	Count       int    `json:"count"`
	Rank        int    `json:"rank"`
	Declared    bool   `json:"declared"`
	Highlighted bool   `json:"highlighted,omitempty"`
}

func newCategoriesCmd() *cobra.Command {
	var (
		ff      filterFlags
		sortBy  string
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"tags"},
		Short:   "List categories with song counts",
		Long: `List every category in display order with the number of songs carrying it.

Declared category items come first in sheet order, then categories that only
appear inline on songs. Counts follow the --lang/--category/--search filter.

Examples:
  songshelf categories
  songshelf tags --lang 國語 --sort count
  songshelf categories -c 流行 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if sortBy != "rank" && sortBy != "count" {
				return fmt.Errorf("unknown sort %q (want rank or count)", sortBy)
			}

			lib, err := loadLibrary(cmd.Context(), ff.filter())
			if err != nil {
				return err
			}
			entries := collectCategories(lib.View(), sortBy)
			w := cmd.OutOrStdout()

			if jsonOut {
				return writeJSON(w, entries)
			}

			if len(entries) == 0 {
				fmt.Fprintln(w, "No categories found.")
				return nil
			}

			for _, e := range entries {
				name := color.CyanString("%s", e.Name)
				if e.Highlighted {
					name = color.New(color.FgCyan, color.Bold).Sprint(e.Name)
				}
				fmt.Fprintf(w, "  %s %s\n", padRight(name, e.Name, 24), color.HiBlackString("(%d)", e.Count))
			}
			fmt.Fprintf(w, "\n%d categories\n", len(entries))
			return nil
		},
	}

	ff.bind(cmd)
	cmd.Flags().StringVar(&sortBy, "sort", "rank", "Sort order: rank or count")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

// collectCategories lists the registry's categories with counts scoped to
// the view. Sorting by count keeps rank order among equal counts.
func collectCategories(v library.View, sortBy string) []categoryEntry {
	cats := v.Registry.SortedCategories()
	entries := make([]categoryEntry, 0, len(cats))
	for _, c := range cats {
		rank, _ := v.Registry.Rank(c)
		entries = append(entries, categoryEntry{
			Name:        c,
			Count:       v.CategoryCounts.Get(c),
			Rank:        rank,
			Declared:    rank < catalog.AdHocRankBase,
			Highlighted: cfg.Display.IsHighlighted(c),
		})
	}
	if sortBy == "count" {
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Count > entries[j].Count
		})
	}
	return entries
}

// padRight pads a colored string to width cells measured on its plain text.
func padRight(styled, plain string, width int) string {
	if n := ansi.StringWidth(plain); n < width {
		return styled + strings.Repeat(" ", width-n)
	}
	return styled
}
