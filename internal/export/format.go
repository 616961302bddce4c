// Package export writes a song view to files other tools can read.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/blackwell-systems/songshelf/internal/library"
)

// Supported export formats.
const (
	FormatHTML    = "html"
	FormatParquet = "parquet"
	FormatYAML    = "yaml"
)

// Formats lists the supported formats.
var Formats = []string{FormatHTML, FormatParquet, FormatYAML}

// Write dispatches on format.
func Write(w io.Writer, format string, v library.View, opts HTMLOptions) error {
	switch strings.ToLower(format) {
	case FormatHTML:
		return WriteHTML(w, v, opts)
	case FormatParquet:
		return WriteParquet(w, v.Songs)
	case FormatYAML, "yml":
		return WriteYAML(w, v.Songs)
	default:
		return fmt.Errorf("unknown export format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
}
