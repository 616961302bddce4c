package catalog

// Row is one spreadsheet row as decoded from the data source. Values are
// usually strings but numbers and booleans show up when a cell is typed.
type Row map[string]any

// Song is one normalized entry in the song list.
type Song struct {
	ID         int      `yaml:"id" json:"id"`
	Title      string   `yaml:"title" json:"title"`
	Artist     string   `yaml:"artist" json:"artist"`
	Language   string   `yaml:"language" json:"language"`
	Category   string   `yaml:"category" json:"category"` // raw, unsplit
	Notes      string   `yaml:"notes" json:"notes"`
	Categories []string `yaml:"categories,omitempty" json:"categories"`
}

// HasCategory reports whether cat is one of the song's category tokens.
// Matching is exact.
func (s Song) HasCategory(cat string) bool {
	for _, c := range s.Categories {
		if c == cat {
			return true
		}
	}
	return false
}
