package tui

import "github.com/charmbracelet/bubbles/key"

// browserKeys are the key bindings of the song browser.
type browserKeys struct {
	Quit       key.Binding
	Search     key.Binding
	Accept     key.Binding
	Cancel     key.Binding
	NextLang   key.Binding
	PrevLang   key.Binding
	AllLangs   key.Binding
	Toggle     key.Binding
	ClearCats  key.Binding
	Reload     key.Binding
	SwitchPane key.Binding
	Up         key.Binding
	Down       key.Binding
}

func newBrowserKeys() browserKeys {
	return browserKeys{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "done"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear search"),
		),
		NextLang: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next language"),
		),
		PrevLang: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev language"),
		),
		AllLangs: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "all languages"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle category"),
		),
		ClearCats: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear categories"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		SwitchPane: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k browserKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.NextLang, k.Toggle, k.Reload, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k browserKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Search, k.Accept, k.Cancel},
		{k.NextLang, k.PrevLang, k.AllLangs},
		{k.SwitchPane, k.Toggle, k.ClearCats},
		{k.Reload, k.Quit},
	}
}
