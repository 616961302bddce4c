package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// AllLanguages is the language filter value that disables the language stage.
const AllLanguages = "all"

// Filter is the user-controlled view state: a free-text term, one language and
// a set of categories that must all be present.
type Filter struct {
	Search     string   `json:"search,omitempty"`
	Language   string   `json:"language,omitempty"`
	Categories []string `json:"categories,omitempty"` // selection order, no duplicates
}

// NewFilter returns a filter that matches every song.
func NewFilter() Filter {
	return Filter{Language: AllLanguages}
}

// SetSearch replaces the search term.
func (f *Filter) SetSearch(term string) {
	f.Search = term
}

// SetLanguage selects one language, or AllLanguages.
func (f *Filter) SetLanguage(lang string) {
	f.Language = lang
}

// ToggleCategory adds cat to the selection, or removes it if already selected.
func (f *Filter) ToggleCategory(cat string) {
	for i, c := range f.Categories {
		if c == cat {
			f.Categories = append(f.Categories[:i:i], f.Categories[i+1:]...)
			return
		}
	}
	f.Categories = append(f.Categories, cat)
}

// ClearCategories empties the category selection.
func (f *Filter) ClearCategories() {
	f.Categories = nil
}

// IsSelected reports whether cat is in the category selection.
func (f Filter) IsSelected(cat string) bool {
	for _, c := range f.Categories {
		if c == cat {
			return true
		}
	}
	return false
}

// AllLanguagesSelected reports whether the language stage is disabled.
func (f Filter) AllLanguagesSelected() bool {
	return f.Language == "" || f.Language == AllLanguages
}

// IsZero reports whether the filter matches every song.
func (f Filter) IsZero() bool {
	return f.AllLanguagesSelected() && len(f.Categories) == 0 && strings.TrimSpace(f.Search) == ""
}

// Apply returns the songs passing the language, category and search stages,
// in their original order.
func (f Filter) Apply(songs []Song) []Song {
	term := ""
	fold := cases.Lower(language.Und)
	if strings.TrimSpace(f.Search) != "" {
		term = fold.String(f.Search)
	}

	out := make([]Song, 0, len(songs))
	for _, s := range songs {
		if !f.AllLanguagesSelected() && s.Language != f.Language {
			continue
		}
		if !hasAllCategories(s, f.Categories) {
			continue
		}
		if term != "" && !matchesSearch(s, term, fold) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Result is one recomputed view: the filtered songs and the category counts
// scoped to them.
type Result struct {
	Songs          []Song `json:"songs"`
	CategoryCounts Counts `json:"category_counts"`
}

// Run applies the filter and counts categories over the filtered songs.
func (f Filter) Run(songs []Song) Result {
	matched := f.Apply(songs)
	return Result{
		Songs:          matched,
		CategoryCounts: CountCategories(matched),
	}
}

// ByID returns the song with the given ID, or nil.
func ByID(songs []Song, id int) *Song {
	for i := range songs {
		if songs[i].ID == id {
			return &songs[i]
		}
	}
	return nil
}

func hasAllCategories(s Song, cats []string) bool {
	for _, c := range cats {
		if !s.HasCategory(c) {
			return false
		}
	}
	return true
}

func matchesSearch(s Song, term string, fold cases.Caser) bool {
	for _, field := range []string{s.Title, s.Artist, s.Language, s.Category, s.Notes} {
		if field != "" && strings.Contains(fold.String(field), term) {
			return true
		}
	}
	return false
}
