package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/songshelf/internal/cache"
	"github.com/blackwell-systems/songshelf/internal/catalog"
)

func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the offline copy of downloaded rows",
		Long: `Every successful download from the sheet is kept on disk so --offline can
serve it later. These commands inspect or remove that copy.`,
	}

	cmd.AddCommand(
		newCacheInfoCmd(),
		newCacheClearCmd(),
	)
	return cmd
}

func newCacheInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show what is cached for the configured sheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr := cache.New(cfg.Cache.Dir)
			w := cmd.OutOrStdout()
			sheetID, sheetName := cfg.Source.SheetID, cfg.Source.EffectiveSheetName()

			header(w, "Cache: %s", mgr.Dir())
			if cfg.Cache.Disabled {
				printField(w, "status", color.YellowString("disabled"))
			}

			entry, err := mgr.Load(sheetID, sheetName)
			if err != nil {
				printField(w, "sheet", sheetID+"/"+sheetName)
				printField(w, "rows", color.RedString("not cached"))
				return nil
			}

			size := int64(0)
			if info, err := os.Stat(entry.Path); err == nil {
				size = info.Size()
			}
			songs := catalog.NormalizeAll(entry.Rows)
			reg := catalog.ExtractFacets(songs, entry.Rows)

			printField(w, "sheet", sheetID+"/"+sheetName)
			printField(w, "path", entry.Path)
			printField(w, "rows", fmt.Sprintf("%d (%d languages, %d categories)", len(entry.Rows), len(reg.Languages), len(reg.Categories)))
			printField(w, "size", humanBytes(size))
			printField(w, "saved", fmt.Sprintf("%s (%s ago)", entry.SavedAt.Format(time.RFC3339), time.Since(entry.SavedAt).Round(time.Second)))
			return nil
		},
	}
}

func newCacheClearCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove cached rows",
		Long: `Remove the cached rows of the configured sheet, or every cached sheet
with --all. The next online load downloads them again.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr := cache.New(cfg.Cache.Dir)

			if all {
				if _, err := os.Stat(mgr.Dir()); os.IsNotExist(err) {
					ok("Cache is already empty")
					return nil
				}
				size, count := calculateDirSize(mgr.Dir())
				if err := os.RemoveAll(mgr.Dir()); err != nil {
					return fmt.Errorf("removing cache: %w", err)
				}
				ok("Cleared %d files (%s)", count, humanBytes(size))
				return nil
			}

			sheetID, sheetName := cfg.Source.SheetID, cfg.Source.EffectiveSheetName()
			if !mgr.Exists(sheetID, sheetName) {
				ok("Nothing cached for %s/%s", sheetID, sheetName)
				return nil
			}
			if err := mgr.Remove(sheetID, sheetName); err != nil {
				return fmt.Errorf("removing cached rows: %w", err)
			}
			ok("Removed cached rows for %s/%s", sheetID, sheetName)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Remove every cached sheet")
	return cmd
}

// calculateDirSize returns the total size and number of files under dir.
func calculateDirSize(dir string) (int64, int) {
	var size int64
	var count int
	_ = filepath.Walk(dir, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if !info.IsDir() {
			size += info.Size()
			count++
		}
		return nil
	})
	return size, count
}

func humanBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for n := n / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
