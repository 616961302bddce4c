package library

import (
	"context"

	"github.com/blackwell-systems/songshelf/internal/catalog"
)

// Source produces the raw rows of one load.
type Source interface {
	LoadRows(ctx context.Context) ([]catalog.Row, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) ([]catalog.Row, error)

// LoadRows calls f.
func (f SourceFunc) LoadRows(ctx context.Context) ([]catalog.Row, error) {
	return f(ctx)
}

// FileSource reads rows from a local YAML or JSON file.
type FileSource struct {
	Path string
}

// LoadRows reads and parses the file.
func (s FileSource) LoadRows(ctx context.Context) ([]catalog.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return catalog.Load(s.Path)
}
