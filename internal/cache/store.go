package cache

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/blackwell-systems/songshelf/internal/catalog"
	"github.com/blackwell-systems/songshelf/internal/util"
)

// ErrNotCached is returned by Load when nothing is cached for the tab.
var ErrNotCached = errors.New("no cached rows")

// Entry is one cached download.
type Entry struct {
	Rows    []catalog.Row
	Path    string
	SavedAt time.Time
}

// Store writes rows to the cache path for the tab through a temp file, then
// records their sha256 beside them. Returns the final file path.
func (m *Manager) Store(sheetID, sheetName string, rows []catalog.Row) (string, error) {
	if err := m.EnsureDir(sheetID); err != nil {
		return "", fmt.Errorf("create cache dir: %w", err)
	}

	data, err := catalog.Marshal(rows)
	if err != nil {
		return "", err
	}

	destPath := m.Path(sheetID, sheetName)
	tmpPath := destPath + ".tmp"

	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("writing to cache: %w", err)
	}

	sum := util.SHA256(data)
	if err := verifySum(tmpPath, sum); err != nil {
		_ = os.Remove(tmpPath)
		return "", err
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		_ = os.Remove(tmpPath)
		return "", err
	}
	if err := os.WriteFile(m.checksumPath(sheetID, sheetName), []byte(sum+"\n"), 0600); err != nil {
		return "", fmt.Errorf("writing checksum: %w", err)
	}
	return destPath, nil
}

// Load reads the cached rows of a tab, verifying the checksum when one was
// recorded.
func (m *Manager) Load(sheetID, sheetName string) (*Entry, error) {
	path := m.Path(sheetID, sheetName)
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w for sheet %s/%s", ErrNotCached, sheetID, sheetName)
	}
	if err != nil {
		return nil, err
	}

	if sum, err := os.ReadFile(m.checksumPath(sheetID, sheetName)); err == nil {
		if err := verifySum(path, strings.TrimSpace(string(sum))); err != nil {
			return nil, fmt.Errorf("cached rows for %s/%s: %w", sheetID, sheetName, err)
		}
	}

	rows, err := catalog.Load(path)
	if err != nil {
		return nil, err
	}
	return &Entry{Rows: rows, Path: path, SavedAt: info.ModTime()}, nil
}

// verifySum compares the sha256 of the file at path with want. An empty want
// skips the check.
func verifySum(path, want string) error {
	if want == "" {
		return nil
	}
	got, err := util.SHA256File(path)
	if err != nil {
		return fmt.Errorf("computing checksum: %w", err)
	}
	if got != want {
		return fmt.Errorf("checksum mismatch: expected %s, got %s", want, got)
	}
	return nil
}
