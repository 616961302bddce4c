package config_test

import (
	"strings"
	"testing"

	"github.com/blackwell-systems/songshelf/internal/config"
)

func TestUsesFile(t *testing.T) {
	s := config.SourceConfig{File: "rows.yml"}
	if !s.UsesFile() {
		t.Error("UsesFile should be true when File is set")
	}
	s.File = "   "
	if s.UsesFile() {
		t.Error("UsesFile should be false for blank File")
	}
}

func TestEffectiveSheetName_Custom(t *testing.T) {
	s := config.SourceConfig{SheetName: "songs"}
	if got := s.EffectiveSheetName(); got != "songs" {
		t.Errorf("EffectiveSheetName = %q, want %q", got, "songs")
	}
}

func TestEffectiveSheetName_Default(t *testing.T) {
	s := config.SourceConfig{}
	if got := s.EffectiveSheetName(); got != "sheet1" {
		t.Errorf("EffectiveSheetName = %q, want %q", got, "sheet1")
	}
}

func TestDescribe(t *testing.T) {
	s := config.SourceConfig{SheetID: "abc"}
	if got := s.Describe(); got != "sheet abc/sheet1" {
		t.Errorf("Describe = %q", got)
	}
	s.File = "/tmp/rows.yml"
	if got := s.Describe(); got != "/tmp/rows.yml" {
		t.Errorf("Describe with file = %q", got)
	}
}

func TestIsHighlighted(t *testing.T) {
	d := config.DisplayConfig{Highlighted: []string{"流行", "搖滾"}}
	if !d.IsHighlighted("搖滾") {
		t.Error("IsHighlighted(搖滾) = false, want true")
	}
	if d.IsHighlighted("抒情") {
		t.Error("IsHighlighted(抒情) = true, want false")
	}
}

func TestDefaultPath(t *testing.T) {
	p := config.DefaultPath()
	if p == "" {
		t.Fatal("DefaultPath returned empty string")
	}
	if !strings.HasSuffix(p, "config.yml") {
		t.Errorf("DefaultPath = %q, should end with config.yml", p)
	}
}
