package export

import (
	"io"

	"github.com/blackwell-systems/songshelf/internal/catalog"
)

// WriteYAML writes the normalized songs as YAML.
func WriteYAML(w io.Writer, songs []catalog.Song) error {
	data, err := catalog.MarshalSongs(songs)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
