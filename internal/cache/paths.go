// Package cache keeps the last rows downloaded from each sheet so songshelf
// can work offline.
package cache

import (
	"os"
	"path/filepath"
	"strings"
)

// Manager handles the local row cache.
type Manager struct {
	baseDir string
}

// New creates a cache Manager rooted at baseDir.
func New(baseDir string) *Manager {
	return &Manager{baseDir: baseDir}
}

// Dir returns the cache root.
func (m *Manager) Dir() string {
	return m.baseDir
}

// Path returns the cache path for a sheet tab.
// Layout: <baseDir>/<sheetID>/<sheetName>.yml
func (m *Manager) Path(sheetID, sheetName string) string {
	return filepath.Join(m.baseDir, safeName(sheetID), safeName(sheetName)+".yml")
}

// checksumPath is the sidecar holding the sha256 of the cached file.
func (m *Manager) checksumPath(sheetID, sheetName string) string {
	return m.Path(sheetID, sheetName) + ".sha256"
}

// Exists reports whether rows are cached for the tab.
func (m *Manager) Exists(sheetID, sheetName string) bool {
	_, err := os.Stat(m.Path(sheetID, sheetName))
	return err == nil
}

// EnsureDir creates the directory of a sheet's cache entries.
func (m *Manager) EnsureDir(sheetID string) error {
	return os.MkdirAll(filepath.Join(m.baseDir, safeName(sheetID)), 0750)
}

// Remove deletes the cached rows and checksum if they exist.
func (m *Manager) Remove(sheetID, sheetName string) error {
	for _, p := range []string{m.Path(sheetID, sheetName), m.checksumPath(sheetID, sheetName)} {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

// safeName keeps a sheet id or tab name from escaping the cache directory.
func safeName(s string) string {
	s = strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(s)
	if s == "" {
		return "_"
	}
	return s
}
