package cache

import (
	"context"
	"log/slog"

	"github.com/blackwell-systems/songshelf/internal/catalog"
)

// RowSource is anything that yields rows; library.Source satisfies it.
type RowSource interface {
	LoadRows(ctx context.Context) ([]catalog.Row, error)
}

// WriteThrough wraps a sheet source and stores every successful download.
// A failed store is logged and never fails the load.
type WriteThrough struct {
	Upstream  RowSource
	Cache     *Manager
	SheetID   string
	SheetName string
	Log       *slog.Logger
}

// LoadRows fetches from upstream and caches the result.
func (s WriteThrough) LoadRows(ctx context.Context) ([]catalog.Row, error) {
	rows, err := s.Upstream.LoadRows(ctx)
	if err != nil {
		return nil, err
	}
	path, err := s.Cache.Store(s.SheetID, s.SheetName, rows)
	if err != nil {
		s.logger().Warn("caching rows failed", "sheet", s.SheetID, "tab", s.SheetName, "error", err)
	} else {
		s.logger().Debug("cached rows", "path", path, "rows", len(rows))
	}
	return rows, nil
}

func (s WriteThrough) logger() *slog.Logger {
	if s.Log != nil {
		return s.Log
	}
	return slog.Default()
}

// Offline serves the cached rows of a tab without touching the network.
type Offline struct {
	Cache     *Manager
	SheetID   string
	SheetName string
}

// LoadRows reads the cached rows.
func (s Offline) LoadRows(ctx context.Context) ([]catalog.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entry, err := s.Cache.Load(s.SheetID, s.SheetName)
	if err != nil {
		return nil, err
	}
	return entry.Rows, nil
}
