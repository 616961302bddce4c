package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/blackwell-systems/songshelf/internal/catalog"
)

// SongItem is one row of the song list.
type SongItem struct {
	Song catalog.Song
}

// FilterValue implements list.Item. The list's own filtering is disabled;
// searching goes through the library filter.
func (s SongItem) FilterValue() string {
	return s.Song.Title + " " + s.Song.Artist
}

func songItems(songs []catalog.Song) []list.Item {
	items := make([]list.Item, len(songs))
	for i, s := range songs {
		items[i] = SongItem{Song: s}
	}
	return items
}

// Column width constraints
const (
	idWidth         = 5
	minTitleWidth   = 12
	maxTitleWidth   = 40
	minArtistWidth  = 8
	maxArtistWidth  = 24
	minLangWidth    = 4
	maxLangWidth    = 10
	minCatWidth     = 6
	columnGap       = 1
	cursorPrefixLen = 2
)

// computeColumnWidths distributes the list width across the columns.
func computeColumnWidths(totalWidth int) (titleW, artistW, langW, catW int) {
	usable := totalWidth - cursorPrefixLen - idWidth - columnGap*4
	if usable < minTitleWidth+minArtistWidth+minLangWidth+minCatWidth {
		return minTitleWidth, minArtistWidth, minLangWidth, minCatWidth
	}
	titleW = min(usable*40/100, maxTitleWidth)
	artistW = min(usable*25/100, maxArtistWidth)
	langW = min(usable*10/100, maxLangWidth)
	catW = usable - titleW - artistW - langW

	titleW = max(titleW, minTitleWidth)
	artistW = max(artistW, minArtistWidth)
	langW = max(langW, minLangWidth)
	catW = max(catW, minCatWidth)
	return
}

// padOrTruncate fits s into exactly width terminal cells. Wide (CJK) runes
// count as two cells.
func padOrTruncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) > width {
		s = ansi.Truncate(s, width, "…")
	}
	if w := ansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

// songDelegate renders songs as fixed-width columns.
type songDelegate struct {
	highlighted func(string) bool
}

func (d songDelegate) Height() int                             { return 1 }
func (d songDelegate) Spacing() int                            { return 0 }
func (d songDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d songDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	si, ok := item.(SongItem)
	if !ok {
		return
	}
	song := si.Song

	listWidth := m.Width()
	if listWidth <= 0 {
		listWidth = 80
	}
	titleW, artistW, langW, catW := computeColumnWidths(listWidth)
	gap := strings.Repeat(" ", columnGap)

	isCursor := index == m.Index()
	prefix := "  "
	if isCursor {
		prefix = StyleHighlight.Render("›") + " "
	}

	idCol := padOrTruncate(fmt.Sprintf("%d", song.ID), idWidth)
	titleCol := padOrTruncate(song.Title, titleW)
	artistCol := padOrTruncate(song.Artist, artistW)
	langCol := padOrTruncate(song.Language, langW)

	var titleStyled string
	if isCursor {
		titleStyled = StyleHighlight.Render(titleCol)
	} else {
		titleStyled = StyleNormal.Render(titleCol)
	}

	line := prefix +
		StyleHelp.Render(idCol) + gap +
		titleStyled + gap +
		StyleHelp.Render(artistCol) + gap +
		LanguageStyle(song.Language).Render(langCol) + gap +
		d.renderCategories(song.Categories, catW)
	_, _ = fmt.Fprint(w, line)
}

// renderCategories joins the song's non-empty tokens within width cells.
func (d songDelegate) renderCategories(cats []string, width int) string {
	var parts []string
	used := 0
	for _, c := range cats {
		if c == "" {
			continue
		}
		cw := ansi.StringWidth(c)
		sep := 0
		if len(parts) > 0 {
			sep = 1
		}
		if used+sep+cw > width {
			if len(parts) == 0 {
				parts = append(parts, CategoryStyle(d.isHighlighted(c)).Render(padOrTruncate(c, width)))
			}
			break
		}
		parts = append(parts, CategoryStyle(d.isHighlighted(c)).Render(c))
		used += sep + cw
	}
	return strings.Join(parts, " ")
}

func (d songDelegate) isHighlighted(cat string) bool {
	return d.highlighted != nil && d.highlighted(cat)
}
