package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/blackwell-systems/songshelf/internal/util"
)

// Color palette matching the fatih/color usage of the CLI.
var (
	// ColorGreen for success indicators
	ColorGreen = lipgloss.AdaptiveColor{Light: "#00AF00", Dark: "#00D700"}

	// ColorCyan for categories and metadata
	ColorCyan = lipgloss.AdaptiveColor{Light: "#00AFAF", Dark: "#00D7D7"}

	// ColorWhite for primary text
	ColorWhite = lipgloss.AdaptiveColor{Light: "#262626", Dark: "#FFFFFF"}

	// ColorGray for secondary text and help
	ColorGray = lipgloss.AdaptiveColor{Light: "#767676", Dark: "#808080"}

	// ColorYellow for the cursor and active filters
	ColorYellow = lipgloss.AdaptiveColor{Light: "#D7AF00", Dark: "#FFD700"}

	// ColorRed for load failures
	ColorRed = lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"}

	// ColorTeal for borders and dividers
	ColorTeal = lipgloss.AdaptiveColor{Light: "#008787", Dark: "#5FAFAF"}
)

// languagePalette holds the language badge colors. util.Bucket picks one so a
// language keeps its color across runs.
var languagePalette = []lipgloss.Color{
	"205", "39", "220", "78", "141", "203", "69", "214", "43",
}

// Reusable styles
var (
	StyleNormal = lipgloss.NewStyle().Foreground(ColorWhite)

	StyleHighlight = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true)

	StyleSuccess = lipgloss.NewStyle().Foreground(ColorGreen)

	StyleError = lipgloss.NewStyle().Foreground(ColorRed)

	StyleCategory = lipgloss.NewStyle().Foreground(ColorCyan)

	StyleHelp = lipgloss.NewStyle().Foreground(ColorGray)

	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Bold(true)

	StyleBorder = lipgloss.NewStyle().
			Foreground(ColorGray).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorTeal)
)

// LanguageStyle returns the badge style of a language.
func LanguageStyle(lang string) lipgloss.Style {
	if lang == "" {
		return StyleHelp
	}
	return lipgloss.NewStyle().Foreground(languagePalette[util.Bucket(lang, len(languagePalette))])
}

// CategoryStyle returns the style of a category chip. Highlighted categories
// render bold.
func CategoryStyle(highlighted bool) lipgloss.Style {
	if highlighted {
		return StyleCategory.Bold(true)
	}
	return StyleCategory
}
