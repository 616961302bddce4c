package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/songshelf/internal/cache"
	"github.com/blackwell-systems/songshelf/internal/catalog"
	"github.com/blackwell-systems/songshelf/internal/library"
	"github.com/blackwell-systems/songshelf/internal/logger"
	"github.com/blackwell-systems/songshelf/internal/sheet"
	"github.com/blackwell-systems/songshelf/internal/tui"
)

// newSource returns the configured row source: the local file when one is
// set, the cached rows with --offline, otherwise the sheet endpoint with
// every download written to the cache.
func newSource() library.Source {
	if cfg.Source.UsesFile() {
		return library.FileSource{Path: cfg.Source.File}
	}

	sheetID, sheetName := cfg.Source.SheetID, cfg.Source.EffectiveSheetName()
	if flagOffline {
		return cache.Offline{Cache: cache.New(cfg.Cache.Dir), SheetID: sheetID, SheetName: sheetName}
	}

	client := sheet.New(cfg.Source.APIBase, sheetID, sheetName,
		sheet.WithTimeout(cfg.Source.Timeout),
		sheet.WithLogger(log),
	)
	if cfg.Cache.Disabled {
		return client
	}
	return cache.WriteThrough{
		Upstream:  client,
		Cache:     cache.New(cfg.Cache.Dir),
		SheetID:   sheetID,
		SheetName: sheetName,
		Log:       log,
	}
}

func newLibrary(opts ...library.Option) *library.Library {
	opts = append([]library.Option{
		library.WithLogger(log),
		library.WithTopLanguages(cfg.Display.TopLanguages),
	}, opts...)
	return library.New(newSource(), opts...)
}

// loadLibrary builds a library and performs the first load.
func loadLibrary(ctx context.Context, f catalog.Filter) (*library.Library, error) {
	lib := newLibrary()
	if err := lib.Reload(ctx); err != nil {
		return nil, fmt.Errorf("%w (source: %s)", err, cfg.Source.Describe())
	}
	lib.SetFilter(f)
	warnUnknownFacets(lib.Registry(), f)
	return lib, nil
}

// runBrowser opens the interactive browser with f preselected.
func runBrowser(cmd *cobra.Command, f catalog.Filter) error {
	// The alternate screen owns the terminal; keep log lines off stderr.
	lib := newLibrary(library.WithLogger(logger.Discard()))
	lib.SetFilter(f)
	return tui.Run(cmd.Context(), lib, tui.Options{
		Title:       "songshelf",
		Source:      cfg.Source.Describe(),
		Highlighted: cfg.Display.IsHighlighted,
		LoadOnStart: true,
	})
}

// filterFlags are the --search/--lang/--category flags shared by listing
// commands.
type filterFlags struct {
	search     string
	language   string
	categories []string
}

func (ff *filterFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&ff.search, "search", "s", "", "Case-insensitive text search (title, artist, language, category, notes)")
	cmd.Flags().StringVar(&ff.language, "lang", catalog.AllLanguages, "Only songs in this language (\"all\" for every language)")
	cmd.Flags().StringSliceVarP(&ff.categories, "category", "c", nil, "Only songs tagged with every given category (repeatable)")
}

// filter converts the flags into a catalog filter. Repeated categories
// collapse to one selection.
func (ff *filterFlags) filter() catalog.Filter {
	f := catalog.NewFilter()
	f.SetSearch(ff.search)
	f.SetLanguage(strings.TrimSpace(ff.language))
	for _, c := range ff.categories {
		c = strings.TrimSpace(c)
		if c != "" && !f.IsSelected(c) {
			f.ToggleCategory(c)
		}
	}
	return f
}

// warnUnknownFacets flags filter values the loaded songs never use. They are
// not errors; they simply match nothing.
func warnUnknownFacets(reg *catalog.Registry, f catalog.Filter) {
	if !f.AllLanguagesSelected() && !reg.HasLanguage(f.Language) {
		warn("Unknown language %q; no songs will match", f.Language)
	}
	for _, c := range f.Categories {
		if !reg.HasCategory(c) {
			warn("Unknown category %q; no songs will match", c)
		}
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// printSongs writes one line per song: id, title, artist, language and
// category tags.
func printSongs(w io.Writer, songs []catalog.Song, highlighted func(string) bool) {
	for _, s := range songs {
		artist := ""
		if s.Artist != "" {
			artist = color.HiBlackString(" - %s", s.Artist)
		}
		lang := ""
		if s.Language != "" {
			lang = " " + color.YellowString("(%s)", s.Language)
		}
		fmt.Fprintf(w, "  %s  %s%s%s%s\n",
			color.WhiteString("%4d", s.ID),
			s.Title,
			artist,
			lang,
			formatCategories(s.Categories, highlighted),
		)
		if s.Notes != "" {
			fmt.Fprintf(w, "        %s\n", color.HiBlackString(s.Notes))
		}
	}
}

func formatCategories(cats []string, highlighted func(string) bool) string {
	var parts []string
	for _, c := range cats {
		if c == "" {
			continue
		}
		if highlighted != nil && highlighted(c) {
			parts = append(parts, color.New(color.FgCyan, color.Bold).Sprint(c))
		} else {
			parts = append(parts, color.CyanString(c))
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return " [" + strings.Join(parts, ",") + "]"
}

// describeFilter renders the active filter for headings, or "" when the
// filter matches everything.
func describeFilter(f catalog.Filter) string {
	var parts []string
	if !f.AllLanguagesSelected() {
		parts = append(parts, "language="+f.Language)
	}
	if len(f.Categories) > 0 {
		parts = append(parts, "categories="+strings.Join(f.Categories, "+"))
	}
	if strings.TrimSpace(f.Search) != "" {
		parts = append(parts, fmt.Sprintf("search=%q", f.Search))
	}
	return strings.Join(parts, " ")
}
