package app

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/songshelf/internal/config"
	"github.com/blackwell-systems/songshelf/internal/export"
	"github.com/blackwell-systems/songshelf/internal/util"
)

func newExportCmd() *cobra.Command {
	var (
		ff     filterFlags
		format string
		output string
		title  string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the filtered songs as HTML, Parquet or YAML",
		Long: `Write the songs matching the filter to a file.

  html     a static page with stats, the category cloud and one section per language
  parquet  one record per song, for analysis tools
  yaml     the normalized songs

Examples:
  songshelf export --format html -o songs.html
  songshelf export --format parquet --lang 國語 -o mandarin.parquet
  songshelf export --format yaml -c 流行 > pop.yml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(format)
			if format == export.FormatParquet && (output == "" || output == "-") && util.IsTTY() {
				return fmt.Errorf("refusing to write parquet to a terminal; use -o")
			}

			lib, err := loadLibrary(cmd.Context(), ff.filter())
			if err != nil {
				return err
			}
			v := lib.View()

			var buf bytes.Buffer
			opts := export.HTMLOptions{Title: title, Highlighted: cfg.Display.IsHighlighted}
			if err := export.Write(&buf, format, v, opts); err != nil {
				return err
			}

			if output == "" || output == "-" {
				_, err := cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			path := config.ExpandHome(output)
			if err := util.WriteFile(path, buf.Bytes()); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			ok("Exported %d of %d songs to %s", len(v.Songs), v.Total, path)
			return nil
		},
	}

	ff.bind(cmd)
	cmd.Flags().StringVar(&format, "format", export.FormatHTML, "Export format: "+strings.Join(export.Formats, ", "))
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVar(&title, "title", "", "Page title for HTML output")
	return cmd
}
