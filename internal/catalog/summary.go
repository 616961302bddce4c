package catalog

import "sort"

// DefaultTopLanguages is how many languages Summarize reports when topN <= 0.
const DefaultTopLanguages = 2

// Stat is one name with its occurrence count.
type Stat struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

// Summary holds the headline statistics for a song collection.
type Summary struct {
	TotalSongs   int    `json:"total_songs" yaml:"total_songs"`
	TopLanguages []Stat `json:"top_languages" yaml:"top_languages"`
	TopCategory  *Stat  `json:"top_category,omitempty" yaml:"top_category,omitempty"`
}

// Summarize reports the song total, the topN languages and the single most
// used category. Ties keep first-counted order.
func Summarize(songs []Song, languageCounts, categoryCounts Counts, topN int) Summary {
	if topN <= 0 {
		topN = DefaultTopLanguages
	}
	sum := Summary{
		TotalSongs:   len(songs),
		TopLanguages: Ranked(languageCounts, topN),
	}
	if top := Ranked(categoryCounts, 1); len(top) == 1 {
		sum.TopCategory = &top[0]
	}
	return sum
}

// Ranked returns counts sorted by count descending, ties in first-counted
// order, truncated to limit. limit <= 0 returns everything.
func Ranked(c Counts, limit int) []Stat {
	stats := make([]Stat, 0, c.Len())
	for _, k := range c.keys {
		stats = append(stats, Stat{Name: k, Count: c.n[k]})
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Count > stats[j].Count
	})
	if limit > 0 && len(stats) > limit {
		stats = stats[:limit]
	}
	return stats
}
