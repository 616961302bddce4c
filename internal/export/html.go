package export

import (
	"fmt"
	"html"
	"io"
	"sort"
	"strings"

	"github.com/blackwell-systems/songshelf/internal/catalog"
	"github.com/blackwell-systems/songshelf/internal/library"
	"github.com/blackwell-systems/songshelf/internal/util"
)

// badgePalette holds the language badge colors; util.Bucket picks one.
var badgePalette = []string{
	"#fce7f3", "#dbeafe", "#fef9c3", "#dcfce7", "#f3e8ff",
	"#fee2e2", "#e0e7ff", "#ffedd5", "#ccfbf1",
}

// HTMLOptions controls the static page.
type HTMLOptions struct {
	Title       string
	Highlighted func(cat string) bool
}

// WriteHTML renders the view as a self-contained HTML page: headline stats,
// the category cloud with counts for the visible songs, and one section per
// language.
func WriteHTML(w io.Writer, v library.View, opts HTMLOptions) error {
	_, err := io.WriteString(w, renderHTML(v, opts))
	return err
}

func renderHTML(v library.View, opts HTMLOptions) string {
	if opts.Title == "" {
		opts.Title = "Song Library"
	}
	highlighted := opts.Highlighted
	if highlighted == nil {
		highlighted = func(string) bool { return false }
	}

	var s strings.Builder

	s.WriteString(`<!DOCTYPE html>
<html lang="zh-Hant">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>` + html.EscapeString(opts.Title) + `</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
            background: linear-gradient(135deg, #f5f7fa, #c3cfe2);
            color: #374151;
            line-height: 1.6;
            padding: 24px;
        }
        header, .stats, .categories, .language-section { max-width: 1200px; margin: 0 auto 24px; }
        h1 { font-size: 2rem; color: #3730a3; }
        .subtitle { color: #6b7280; }
        .stats { display: grid; grid-template-columns: repeat(auto-fill, minmax(180px, 1fr)); gap: 12px; }
        .stat { background: #eef2ff; border-radius: 8px; padding: 12px; text-align: center; }
        .stat-value { font-size: 1.8rem; font-weight: 700; color: #4f46e5; }
        .stat-label { font-size: 0.85rem; color: #4b5563; }
        .categories { display: flex; flex-wrap: wrap; gap: 8px; }
        .category { background: #f3e8ff; color: #6d28d9; border-radius: 8px; padding: 4px 10px; font-size: 0.85rem; }
        .category.highlight { background: #fecaca; color: #991b1b; font-weight: 700; }
        .category.selected { background: #8b5cf6; color: #fff; }
        .count { margin-left: 4px; font-size: 0.75rem; opacity: 0.8; }
        .language-title { font-size: 1.3rem; color: #3730a3; border-bottom: 2px solid #c7d2fe; margin-bottom: 12px; }
        .song-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(260px, 1fr)); gap: 16px; }
        .song-card { background: #fff; border-radius: 10px; padding: 14px; box-shadow: 0 2px 8px rgba(0,0,0,0.08); }
        .song-title { font-weight: 600; color: #111827; }
        .song-artist { color: #6b7280; font-size: 0.9rem; }
        .song-notes { color: #9ca3af; font-size: 0.8rem; margin-top: 6px; }
        .badges { display: flex; flex-wrap: wrap; gap: 4px; margin-top: 8px; }
        .badge { border-radius: 999px; padding: 2px 8px; font-size: 0.75rem; }
        .no-results { text-align: center; color: #6b7280; padding: 40px; }
    </style>
</head>
<body>
    <header>
        <h1>` + html.EscapeString(opts.Title) + `</h1>
        <div class="subtitle">` + fmt.Sprintf("%d / %d songs", len(v.Songs), v.Total) + `</div>
    </header>
`)

	renderStats(&s, v.Summary)
	renderCategoryCloud(&s, v, highlighted)

	if len(v.Songs) == 0 {
		s.WriteString(`    <div class="no-results">No songs match the current filter.</div>
`)
	}

	// Group songs by language, sections in alphabetical order, unknown last.
	byLang := make(map[string][]catalog.Song)
	var langs []string
	for _, song := range v.Songs {
		if _, ok := byLang[song.Language]; !ok {
			langs = append(langs, song.Language)
		}
		byLang[song.Language] = append(byLang[song.Language], song)
	}
	sort.SliceStable(langs, func(i, j int) bool {
		if (langs[i] == "") != (langs[j] == "") {
			return langs[j] == ""
		}
		return langs[i] < langs[j]
	})

	for _, lang := range langs {
		songs := byLang[lang]
		name := lang
		if name == "" {
			name = "Other"
		}
		fmt.Fprintf(&s, `    <section class="language-section" data-language="%s">
        <h2 class="language-title">%s (%d)</h2>
        <div class="song-grid">
`, html.EscapeString(lang), html.EscapeString(name), len(songs))
		for _, song := range songs {
			renderSongCard(&s, song, highlighted)
		}
		s.WriteString(`        </div>
    </section>
`)
	}

	s.WriteString(`</body>
</html>
`)
	return s.String()
}

func renderStats(s *strings.Builder, sum catalog.Summary) {
	s.WriteString(`    <div class="stats">
`)
	writeStat(s, "#eef2ff", fmt.Sprint(sum.TotalSongs), "songs")
	for _, l := range sum.TopLanguages {
		writeStat(s, languageColor(l.Name), fmt.Sprint(l.Count), l.Name+" songs")
	}
	if sum.TopCategory != nil {
		writeStat(s, "#f3e8ff", fmt.Sprint(sum.TopCategory.Count), "top: "+sum.TopCategory.Name)
	}
	s.WriteString(`    </div>
`)
}

func writeStat(s *strings.Builder, bg, value, label string) {
	fmt.Fprintf(s, `        <div class="stat" style="background:%s"><div class="stat-value">%s</div><div class="stat-label">%s</div></div>
`, bg, html.EscapeString(value), html.EscapeString(label))
}

func renderCategoryCloud(s *strings.Builder, v library.View, highlighted func(string) bool) {
	cats := v.Registry.SortedCategories()
	if len(cats) == 0 {
		return
	}
	s.WriteString(`    <div class="categories">
`)
	for _, cat := range cats {
		class := "category"
		if highlighted(cat) {
			class += " highlight"
		}
		if v.Filter.IsSelected(cat) {
			class += " selected"
		}
		fmt.Fprintf(s, `        <span class="%s" data-category="%s">%s<span class="count">%d</span></span>
`, class, html.EscapeString(cat), html.EscapeString(cat), v.CategoryCounts.Get(cat))
	}
	s.WriteString(`    </div>
`)
}

func renderSongCard(s *strings.Builder, song catalog.Song, highlighted func(string) bool) {
	fmt.Fprintf(s, `            <div class="song-card" data-id="%d">
                <div class="song-title">%s</div>
`, song.ID, html.EscapeString(song.Title))
	if song.Artist != "" {
		fmt.Fprintf(s, `                <div class="song-artist">%s</div>
`, html.EscapeString(song.Artist))
	}
	s.WriteString(`                <div class="badges">
`)
	if song.Language != "" {
		fmt.Fprintf(s, `                    <span class="badge" style="background:%s">%s</span>
`, languageColor(song.Language), html.EscapeString(song.Language))
	}
	for _, cat := range song.Categories {
		if cat == "" {
			continue
		}
		class := "badge category"
		if highlighted(cat) {
			class += " highlight"
		}
		fmt.Fprintf(s, `                    <span class="%s">%s</span>
`, class, html.EscapeString(cat))
	}
	s.WriteString(`                </div>
`)
	if song.Notes != "" {
		fmt.Fprintf(s, `                <div class="song-notes">%s</div>
`, html.EscapeString(song.Notes))
	}
	s.WriteString(`            </div>
`)
}

func languageColor(lang string) string {
	if lang == "" {
		return "#f9fafb"
	}
	return badgePalette[util.Bucket(lang, len(badgePalette))]
}
