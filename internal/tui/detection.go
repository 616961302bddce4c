package tui

import (
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/songshelf/internal/util"
)

// ShouldUseTUI returns true if the command should open the interactive browser.
// The browser runs when:
// - stdin and stdout are terminals (not piped or redirected)
// - --no-interactive is not set
// - no output format was requested (indicates scripting intent)
func ShouldUseTUI(cmd *cobra.Command) bool {
	if !util.IsTTY() || !util.IsInputTTY() {
		return false
	}

	if noInteractive, _ := cmd.Flags().GetBool("no-interactive"); noInteractive {
		return false
	}

	if f := cmd.Flags().Lookup("format"); f != nil && f.Changed {
		return false
	}
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return false
	}

	return true
}
