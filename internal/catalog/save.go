package catalog

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Marshal encodes rows to YAML bytes.
func Marshal(rows []Row) ([]byte, error) {
	return encodeYAML(rows)
}

// MarshalSongs encodes normalized songs to YAML bytes.
func MarshalSongs(songs []Song) ([]byte, error) {
	return encodeYAML(songs)
}

func encodeYAML(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encoding yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding yaml: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes rows to a file on disk.
func Save(path string, rows []Row) error {
	data, err := Marshal(rows)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
