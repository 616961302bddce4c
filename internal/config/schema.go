package config

import (
	"strings"
	"time"
)

// Config is the top-level songshelf configuration.
type Config struct {
	Source  SourceConfig  `mapstructure:"source" yaml:"source"`
	Display DisplayConfig `mapstructure:"display" yaml:"display"`
	Cache   CacheConfig   `mapstructure:"cache" yaml:"cache"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
}

// SourceConfig says where song rows come from.
type SourceConfig struct {
	APIBase   string        `mapstructure:"api_base" yaml:"api_base"`
	SheetID   string        `mapstructure:"sheet_id" yaml:"sheet_id"`
	SheetName string        `mapstructure:"sheet_name" yaml:"sheet_name"`
	File      string        `mapstructure:"file" yaml:"file,omitempty"` // local rows file; overrides the sheet
	Timeout   time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// DisplayConfig holds presentation settings.
type DisplayConfig struct {
	TopLanguages int      `mapstructure:"top_languages" yaml:"top_languages"`
	Highlighted  []string `mapstructure:"highlighted" yaml:"highlighted,omitempty"` // categories rendered bold
}

// CacheConfig controls the offline copy of downloaded rows.
type CacheConfig struct {
	Dir      string `mapstructure:"dir" yaml:"dir"`
	Disabled bool   `mapstructure:"disabled" yaml:"disabled,omitempty"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"` // "text" or "json"
}

// UsesFile reports whether rows are read from a local file.
func (s *SourceConfig) UsesFile() bool {
	return strings.TrimSpace(s.File) != ""
}

// EffectiveSheetName returns the tab name, defaulting to "sheet1".
func (s *SourceConfig) EffectiveSheetName() string {
	if s.SheetName != "" {
		return s.SheetName
	}
	return "sheet1"
}

// Describe returns a short human-readable label for the source.
func (s *SourceConfig) Describe() string {
	if s.UsesFile() {
		return s.File
	}
	return "sheet " + s.SheetID + "/" + s.EffectiveSheetName()
}

// IsHighlighted reports whether a category should be rendered bold.
func (d *DisplayConfig) IsHighlighted(cat string) bool {
	for _, h := range d.Highlighted {
		if h == cat {
			return true
		}
	}
	return false
}
