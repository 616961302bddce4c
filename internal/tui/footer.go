package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// clearActiveKeyMsg clears the footer highlight of the last pressed shortcut.
type clearActiveKeyMsg struct{}

// shortcut pairs a trigger key with its footer label.
type shortcut struct {
	Key   string // matched against the active key; empty never highlights
	Label string
}

// flashCmd returns a tick that clears the footer highlight after 500ms.
// Set activeKey on the model before returning it:
//
//	m.activeKey = "x"
//	return m, flashCmd()
func flashCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(time.Time) tea.Msg {
		return clearActiveKeyMsg{}
	})
}

// renderFooterBar renders the shortcut labels. The one matching activeKey is
// rendered with StyleHighlight, the rest dim.
func renderFooterBar(shortcuts []shortcut, activeKey string) string {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	parts := make([]string, len(shortcuts))
	for i, sc := range shortcuts {
		if activeKey != "" && sc.Key == activeKey {
			parts[i] = StyleHighlight.Render("[ " + sc.Label + " ]")
		} else {
			parts[i] = dim.Render(sc.Label)
		}
	}

	return lipgloss.NewStyle().Padding(0, 1).Render(strings.Join(parts, dim.Render(" • ")))
}
