package catalog

import "sort"

// AdHocRankBase is the first rank handed to categories that only appear inline
// on songs. Declared category items rank below it.
const AdHocRankBase = 1000

// Registry holds the facets derived from one load. It is built once by
// ExtractFacets and never modified afterwards.
type Registry struct {
	Languages      []string       `json:"languages"`
	Categories     []string       `json:"categories"`
	Order          map[string]int `json:"order"`
	Counts         Counts         `json:"counts"`
	LanguageCounts Counts         `json:"language_counts"`

	languages  map[string]struct{}
	categories map[string]struct{}
}

// ExtractFacets builds the registry for a load from the raw rows (declared
// category items) and the normalized songs (languages, inline categories,
// counts).
func ExtractFacets(songs []Song, rows []Row) *Registry {
	r := &Registry{
		Order:      make(map[string]int),
		languages:  make(map[string]struct{}),
		categories: make(map[string]struct{}),
	}

	declared := 0
	for _, row := range rows {
		item := row.Lookup(CategoryItemKeys...)
		if item == "" {
			continue
		}
		if _, ok := r.Order[item]; ok {
			continue
		}
		r.Order[item] = declared
		declared++
		r.addCategory(item)
	}

	adHoc := 0
	for _, s := range songs {
		if s.Language != "" {
			if _, ok := r.languages[s.Language]; !ok {
				r.languages[s.Language] = struct{}{}
				r.Languages = append(r.Languages, s.Language)
			}
			r.LanguageCounts.Add(s.Language)
		}
		for _, cat := range s.Categories {
			if cat == "" {
				continue
			}
			r.addCategory(cat)
			r.Counts.Add(cat)
			if _, ok := r.Order[cat]; !ok {
				r.Order[cat] = AdHocRankBase + adHoc
				adHoc++
			}
		}
	}

	return r
}

func (r *Registry) addCategory(cat string) {
	if _, ok := r.categories[cat]; ok {
		return
	}
	r.categories[cat] = struct{}{}
	r.Categories = append(r.Categories, cat)
}

// Rank returns the display rank of a category and whether the registry knows it.
func (r *Registry) Rank(cat string) (int, bool) {
	if r == nil {
		return 0, false
	}
	rank, ok := r.Order[cat]
	return rank, ok
}

// HasLanguage reports whether any song uses lang.
func (r *Registry) HasLanguage(lang string) bool {
	if r == nil {
		return false
	}
	_, ok := r.languages[lang]
	return ok
}

// HasCategory reports whether cat was declared or used by any song.
func (r *Registry) HasCategory(cat string) bool {
	if r == nil {
		return false
	}
	_, ok := r.categories[cat]
	return ok
}

// SortedLanguages returns the languages in alphabetical order.
func (r *Registry) SortedLanguages() []string {
	if r == nil {
		return nil
	}
	out := make([]string, len(r.Languages))
	copy(out, r.Languages)
	sort.Strings(out)
	return out
}

// SortedCategories returns the categories by rank.
func (r *Registry) SortedCategories() []string {
	if r == nil {
		return nil
	}
	out := make([]string, len(r.Categories))
	copy(out, r.Categories)
	r.SortByRank(out)
	return out
}

// SortByRank orders cats by rank in place. Categories the registry has never
// seen sort last, by name.
func (r *Registry) SortByRank(cats []string) {
	sort.SliceStable(cats, func(i, j int) bool {
		ri, iok := r.Rank(cats[i])
		rj, jok := r.Rank(cats[j])
		switch {
		case iok && jok:
			return ri < rj
		case iok != jok:
			return iok
		default:
			return cats[i] < cats[j]
		}
	})
}
