package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/songshelf/internal/catalog"
	"github.com/blackwell-systems/songshelf/internal/config"
	"github.com/blackwell-systems/songshelf/internal/logger"
	"github.com/blackwell-systems/songshelf/internal/tui"
	"github.com/blackwell-systems/songshelf/internal/util"
)

var (
	cfg *config.Config
	log *slog.Logger

	flagNoColor       bool
	flagNoInteractive bool
	flagConfig        string
	flagFile          string
	flagLogLevel      string
	flagOffline       bool
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "songshelf",
		Short: "Browse a spreadsheet-backed song list from the terminal",
		Long: `songshelf loads a song list kept in a spreadsheet, groups it by language
and category, and lets you search and filter it.

Rows come from an opensheet-style JSON endpoint, or from a local YAML/JSON
file saved with 'songshelf fetch' (use --file).

Run 'songshelf' with no arguments to open the interactive browser.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if tui.ShouldUseTUI(cmd) {
				return runBrowser(cmd, catalog.NewFilter())
			}
			return cmd.Help()
		},
	}

	pf := cmd.PersistentFlags()
	pf.BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	pf.BoolVar(&flagNoInteractive, "no-interactive", false, "Disable the interactive browser")
	pf.StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/songshelf/config.yml)")
	pf.StringVar(&flagFile, "file", "", "Read rows from a local YAML/JSON file instead of the sheet")
	pf.BoolVar(&flagOffline, "offline", false, "Use the rows cached by the last successful download")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		util.InitColor(flagNoColor)

		// A missing .env is normal.
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading .env: %w", err)
		}

		var err error
		cfg, err = config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if flagFile != "" {
			cfg.Source.File = config.ExpandHome(flagFile)
		}
		if flagLogLevel != "" {
			cfg.Log.Level = flagLogLevel
		}

		log = logger.New(logger.Config{
			Writer: cmd.ErrOrStderr(),
			Format: cfg.Log.Format,
			Level:  logger.ParseLevel(cfg.Log.Level),
		})
		slog.SetDefault(log)
		return nil
	}

	cmd.AddCommand(
		newBrowseCmd(),
		newSearchCmd(),
		newCategoriesCmd(),
		newLanguagesCmd(),
		newStatsCmd(),
		newInfoCmd(),
		newCacheCmd(),
		newFetchCmd(),
		newInitCmd(),
		newExportCmd(),
		newVersionCmd(),
	)
	return cmd
}

// Execute is the entry point called from main.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

// ok prints a green success line.
func ok(format string, a ...interface{}) {
	fmt.Println(color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintln(w, color.CyanString(fmt.Sprintf(format, a...)))
}
