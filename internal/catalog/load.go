package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a rows file saved by Save (or any JSON array of objects) from disk.
func Load(path string) ([]Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rows file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML or JSON bytes into rows.
func Parse(data []byte) ([]Row, error) {
	if len(data) == 0 {
		return []Row{}, nil
	}
	var rows []Row
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parsing rows: %w", err)
	}
	if rows == nil {
		return []Row{}, nil
	}
	return rows, nil
}
