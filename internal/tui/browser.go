package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/blackwell-systems/songshelf/internal/catalog"
	"github.com/blackwell-systems/songshelf/internal/library"
)

// Options configures the browser.
type Options struct {
	Title       string
	Source      string           // shown in the header, e.g. "sheet <id>/sheet1"
	Highlighted func(string) bool // categories rendered bold
	LoadOnStart bool              // reload when the program starts
}

type pane int

const (
	paneSongs pane = iota
	paneCategories
)

// loadedMsg reports the end of a reload.
type loadedMsg struct{ err error }

// Model is the bubbletea model of the song browser. Every state change goes
// through the library; the model only keeps cursors and the last view.
type Model struct {
	lib  *library.Library
	ctx  context.Context
	opts Options
	keys browserKeys

	list      list.Model
	search    textinput.Model
	searching bool
	focus     pane
	catCursor int

	view    library.View
	status  library.Status
	loading bool

	width     int
	height    int
	activeKey string
	quitting  bool
}

// NewModel builds a browser over lib.
func NewModel(ctx context.Context, lib *library.Library, opts Options) Model {
	if opts.Title == "" {
		opts.Title = "Songs"
	}

	l := list.New(nil, songDelegate{highlighted: opts.Highlighted}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.Styles.PaginationStyle = StyleHelp
	l.DisableQuitKeybindings()

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "title, artist, language, category, notes"
	ti.CharLimit = 120

	m := Model{
		lib:     lib,
		ctx:     ctx,
		opts:    opts,
		keys:    newBrowserKeys(),
		list:    l,
		search:  ti,
		loading: opts.LoadOnStart,
	}
	m.search.SetValue(lib.Filter().Search)
	m.refresh()
	return m
}

// Init starts the first load when requested.
func (m Model) Init() tea.Cmd {
	if m.opts.LoadOnStart {
		return m.reloadCmd()
	}
	return nil
}

func (m Model) reloadCmd() tea.Cmd {
	lib, ctx := m.lib, m.ctx
	return func() tea.Msg {
		return loadedMsg{err: lib.Reload(ctx)}
	}
}

// refresh pulls a fresh view from the library and resets dependent cursors.
func (m *Model) refresh() {
	m.view = m.lib.View()
	m.status = m.lib.Status()

	cursor := m.list.Index()
	m.list.SetItems(songItems(m.view.Songs))
	if cursor >= len(m.view.Songs) {
		cursor = len(m.view.Songs) - 1
	}
	if cursor >= 0 {
		m.list.Select(cursor)
	}

	if n := len(m.categories()); m.catCursor >= n {
		m.catCursor = max(n-1, 0)
	}
}

func (m Model) categories() []string {
	return m.view.Registry.SortedCategories()
}

// languageOptions is the language bar: "all" followed by every language.
func (m Model) languageOptions() []string {
	return append([]string{catalog.AllLanguages}, m.view.Registry.SortedLanguages()...)
}

func (m *Model) cycleLanguage(step int) {
	opts := m.languageOptions()
	cur := 0
	if !m.view.Filter.AllLanguagesSelected() {
		for i, o := range opts {
			if o == m.view.Filter.Language {
				cur = i
				break
			}
		}
	}
	next := (cur + step + len(opts)) % len(opts)
	m.lib.SetLanguage(opts[next])
	m.refresh()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case loadedMsg:
		m.loading = false
		m.refresh()
		return m, nil

	case clearActiveKeyMsg:
		m.activeKey = ""
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateKeys(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Accept):
		m.searching = false
		m.search.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.lib.SetSearch("")
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.view.Filter.Search {
		m.lib.SetSearch(m.search.Value())
		m.refresh()
	}
	return m, cmd
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		cmd := m.search.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.Cancel):
		if m.view.Filter.Search != "" {
			m.search.SetValue("")
			m.lib.SetSearch("")
			m.refresh()
		}
		return m, nil

	case key.Matches(msg, m.keys.NextLang):
		m.cycleLanguage(1)
		m.activeKey = "]"
		return m, flashCmd()

	case key.Matches(msg, m.keys.PrevLang):
		m.cycleLanguage(-1)
		m.activeKey = "["
		return m, flashCmd()

	case key.Matches(msg, m.keys.AllLangs):
		m.lib.SetLanguage(catalog.AllLanguages)
		m.refresh()
		m.activeKey = "a"
		return m, flashCmd()

	case key.Matches(msg, m.keys.ClearCats):
		m.lib.ClearCategories()
		m.refresh()
		m.activeKey = "x"
		return m, flashCmd()

	case key.Matches(msg, m.keys.Reload):
		if m.loading {
			return m, nil
		}
		m.loading = true
		m.activeKey = "r"
		return m, tea.Batch(m.reloadCmd(), flashCmd())

	case key.Matches(msg, m.keys.SwitchPane):
		if m.focus == paneSongs {
			m.focus = paneCategories
		} else {
			m.focus = paneSongs
		}
		return m, nil
	}

	if m.focus == paneCategories {
		return m.updateCategoryPane(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateCategoryPane(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cats := m.categories()
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.catCursor > 0 {
			m.catCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.catCursor < len(cats)-1 {
			m.catCursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if m.catCursor < len(cats) {
			m.lib.ToggleCategory(cats[m.catCursor])
			m.refresh()
			m.activeKey = " "
			return m, flashCmd()
		}
	}
	return m, nil
}

// Layout constants
const (
	categoryPaneWidth = 26
	headerLines       = 4 // title, language bar, search, blank
	footerLines       = 3 // stats, divider, shortcuts
)

func (m *Model) resize() {
	frameW, frameH := StyleBorder.GetFrameSize()
	listW := m.width - frameW - categoryPaneWidth - 1
	listH := m.height - frameH - headerLines - footerLines
	m.list.SetSize(max(listW, 40), max(listH, 3))
	m.search.Width = max(listW-4, 10)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder
	s.WriteString(m.renderHeader())
	s.WriteString("\n")
	s.WriteString(m.renderLanguageBar())
	s.WriteString("\n")
	s.WriteString(m.renderSearch())
	s.WriteString("\n\n")

	listView := m.list.View()
	if len(m.view.Songs) == 0 {
		listView = lipgloss.NewStyle().Width(m.list.Width()).Height(m.list.Height()).
			Render(StyleHelp.Render("  No songs match the current filter."))
	}
	divider := lipgloss.NewStyle().
		BorderLeft(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorTeal).
		PaddingLeft(1)
	main := lipgloss.JoinHorizontal(lipgloss.Top, listView, divider.Render(m.renderCategoryPane()))
	s.WriteString(main)
	s.WriteString("\n")
	s.WriteString(m.renderStats())
	s.WriteString("\n")
	s.WriteString(StyleHelp.Render(strings.Repeat("─", max(m.list.Width()+categoryPaneWidth, 40))))
	s.WriteString("\n")
	s.WriteString(m.renderFooter())

	return StyleBorder.Render(s.String())
}

func (m Model) renderHeader() string {
	title := StyleHeader.Render(m.opts.Title)
	count := StyleHelp.Render(fmt.Sprintf("  %d / %d", len(m.view.Songs), m.view.Total))

	var state string
	switch {
	case m.loading:
		state = StyleHighlight.Render("  loading…")
	case m.status.Err != nil:
		state = StyleError.Render(fmt.Sprintf("  ✗ %v", m.status.Err)) + StyleHelp.Render("  (r to retry)")
	case m.status.Loads > 0:
		state = StyleSuccess.Render("  ✓ ") + StyleHelp.Render(m.opts.Source+" @ "+m.status.LoadedAt.Format("15:04:05"))
	}
	return title + count + state
}

func (m Model) renderLanguageBar() string {
	parts := make([]string, 0, len(m.view.Registry.Languages)+1)
	for _, lang := range m.languageOptions() {
		label := lang
		if lang == catalog.AllLanguages {
			label = "All"
		}
		selected := lang == m.view.Filter.Language ||
			(lang == catalog.AllLanguages && m.view.Filter.AllLanguagesSelected())
		if selected {
			parts = append(parts, StyleHighlight.Render("["+label+"]"))
		} else if lang == catalog.AllLanguages {
			parts = append(parts, StyleNormal.Render(" "+label+" "))
		} else {
			parts = append(parts, LanguageStyle(lang).Render(" "+label+" "))
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) renderSearch() string {
	if m.searching {
		return m.search.View()
	}
	if m.view.Filter.Search != "" {
		return StyleHelp.Render("/ ") + StyleHighlight.Render(m.view.Filter.Search) + StyleHelp.Render("  (esc clears)")
	}
	return StyleHelp.Render("/ to search")
}

// renderCategoryPane lists categories in rank order with counts scoped to the
// visible songs. Selected categories are marked; the cursor shows when the
// pane has focus.
func (m Model) renderCategoryPane() string {
	cats := m.categories()
	height := max(m.list.Height(), 3)

	offset := max(m.catCursor-height+1, 0)

	var lines []string
	for i := offset; i < len(cats) && i < offset+height; i++ {
		cat := cats[i]
		mark := "  "
		if m.view.Filter.IsSelected(cat) {
			mark = StyleSuccess.Render("✓ ")
		}
		if m.focus == paneCategories && i == m.catCursor {
			mark = StyleHighlight.Render("› ")
			if m.view.Filter.IsSelected(cat) {
				mark = StyleHighlight.Render("✓ ")
			}
		}
		highlighted := m.opts.Highlighted != nil && m.opts.Highlighted(cat)
		name := padOrTruncate(cat, categoryPaneWidth-8)
		count := fmt.Sprintf("%4d", m.view.CategoryCounts.Get(cat))
		lines = append(lines, mark+CategoryStyle(highlighted).Render(name)+" "+StyleHelp.Render(count))
	}
	if len(cats) == 0 {
		lines = append(lines, StyleHelp.Render("no categories"))
	}
	return lipgloss.NewStyle().Width(categoryPaneWidth).Render(strings.Join(lines, "\n"))
}

// renderStats shows the headline numbers of the full set and the filtered
// count when a filter is active.
func (m Model) renderStats() string {
	sum := m.view.Summary
	parts := []string{fmt.Sprintf("%d songs", sum.TotalSongs)}
	for _, l := range sum.TopLanguages {
		parts = append(parts, LanguageStyle(l.Name).Render(l.Name)+fmt.Sprintf(" %d", l.Count))
	}
	if sum.TopCategory != nil {
		parts = append(parts, "top "+StyleCategory.Render(sum.TopCategory.Name)+fmt.Sprintf(" %d", sum.TopCategory.Count))
	}
	if !m.view.Filter.IsZero() {
		parts = append(parts, StyleHighlight.Render(fmt.Sprintf("showing %d", m.view.FilteredSummary.TotalSongs)))
	}
	return " " + strings.Join(parts, StyleHelp.Render(" · "))
}

func (m Model) renderFooter() string {
	return renderFooterBar([]shortcut{
		{Key: "/", Label: "/ search"},
		{Key: "[", Label: "[ prev lang"},
		{Key: "]", Label: "] next lang"},
		{Key: "a", Label: "a all langs"},
		{Key: "", Label: "tab pane"},
		{Key: " ", Label: "space toggle"},
		{Key: "x", Label: "x clear"},
		{Key: "r", Label: "r reload"},
		{Key: "", Label: "q quit"},
	}, m.activeKey)
}

// Run opens the browser in the alternate screen and blocks until the user
// quits.
func Run(ctx context.Context, lib *library.Library, opts Options) error {
	p := tea.NewProgram(NewModel(ctx, lib, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running browser: %w", err)
	}
	return nil
}
