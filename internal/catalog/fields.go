package catalog

import "github.com/spf13/cast"

// Field aliases in priority order: the localized sheet header first, then the
// English fallbacks.
var (
	TitleKeys        = []string{"歌名", "title", "Song"}
	ArtistKeys       = []string{"歌手", "artist", "Artist"}
	LanguageKeys     = []string{"語言", "language", "Language"}
	CategoryKeys     = []string{"分類", "category", "Category"}
	NotesKeys        = []string{"備註", "notes", "Notes"}
	CategoryItemKeys = []string{"分類項目", "CategoryItem"}
)

// Lookup returns the value of the first key present on the row with a non-nil
// value, stringified. It returns "" when no key matches.
func (r Row) Lookup(keys ...string) string {
	for _, k := range keys {
		v, ok := r[k]
		if !ok || v == nil {
			continue
		}
		s, err := cast.ToStringE(v)
		if err != nil {
			return ""
		}
		return s
	}
	return ""
}
