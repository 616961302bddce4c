package catalog

import "strings"

// Normalize converts a raw row into a Song. index is the row's position in the
// load (0-based); the song ID is index+1. Missing fields become "" and no row
// is ever rejected.
func Normalize(row Row, index int) Song {
	s := Song{
		ID:       index + 1,
		Title:    row.Lookup(TitleKeys...),
		Artist:   row.Lookup(ArtistKeys...),
		Language: row.Lookup(LanguageKeys...),
		Category: row.Lookup(CategoryKeys...),
		Notes:    row.Lookup(NotesKeys...),
	}
	s.Categories = SplitCategories(s.Category)
	return s
}

// NormalizeAll normalizes every row in order.
func NormalizeAll(rows []Row) []Song {
	songs := make([]Song, len(rows))
	for i, row := range rows {
		songs[i] = Normalize(row, i)
	}
	return songs
}

// SplitCategories splits a raw category field on "," and trims each piece.
// Empty pieces from stray commas are kept; counting and registration skip them.
func SplitCategories(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
