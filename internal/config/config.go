package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Defaults for a fresh install: the public opensheet mirror of the song sheet.
const (
	DefaultAPIBase   = "https://opensheet.elk.sh"
	DefaultSheetID   = "1z-kl4dUioRrhJaq82O283991VPtg2PfXqx4eN5fQ9-8"
	DefaultSheetName = "sheet1"
)

// DefaultHighlighted are the genre categories rendered bold.
var DefaultHighlighted = []string{"流行", "抒情", "搖滾", "民謠", "電子", "嘻哈", "爵士", "古典"}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "songshelf", "config.yml")
}

// Load reads the config from path (or SONGSHELF_CONFIG, or the default path)
// layered over defaults and SONGSHELF_* environment variables. A missing file
// is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("source.api_base", DefaultAPIBase)
	v.SetDefault("source.sheet_id", DefaultSheetID)
	v.SetDefault("source.sheet_name", DefaultSheetName)
	v.SetDefault("source.file", "")
	v.SetDefault("source.timeout", "30s")
	v.SetDefault("display.top_languages", 2)
	v.SetDefault("display.highlighted", DefaultHighlighted)
	v.SetDefault("cache.dir", defaultCacheDir())
	v.SetDefault("cache.disabled", false)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")

	v.SetEnvPrefix("SONGSHELF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configPath := path
	if configPath == "" {
		configPath = os.Getenv("SONGSHELF_CONFIG")
	}
	if configPath == "" {
		configPath = DefaultPath()
	}
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		// Running without a config file is fine; defaults point at the public sheet.
		if !os.IsNotExist(err) {
			if _, isCfgNotFound := err.(viper.ConfigFileNotFoundError); !isCfgNotFound {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.Source.File = ExpandHome(cfg.Source.File)
	cfg.Cache.Dir = ExpandHome(cfg.Cache.Dir)
	if cfg.Display.TopLanguages <= 0 {
		cfg.Display.TopLanguages = 2
	}

	return &cfg, nil
}

// Save writes the config to path, or the default path when empty.
func Save(path string, cfg *Config) error {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(cfg)
}

func defaultCacheDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "songshelf", "cache")
}

// ExpandHome expands a leading ~/ in a path.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}
