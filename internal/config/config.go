package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	StorePath    string `toml:"store_path"`
	FontPath     string `toml:"font_path"`
	ReportMarker string `toml:"report_marker"`
	SortOrder    string `toml:"sort_order"` // "lexical" or "clock"
	LegacyRTL    bool   `toml:"legacy_rtl"`
	ShortTime    bool   `toml:"short_time"`
}

func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return loadFrom(filepath.Join(home, ".config", "roadwatch", "config.toml"), home)
}

func loadFrom(cfgPath, home string) (*Config, error) {
	cfg := &Config{
		StorePath: filepath.Join(home, ".local", "share", "roadwatch", "road_data.json"),
		SortOrder: "lexical",
	}

	if _, err := os.Stat(cfgPath); err == nil {
		if _, err := toml.DecodeFile(cfgPath, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
	}

	// expand ~ in paths
	cfg.StorePath = expandHome(cfg.StorePath, home)
	cfg.FontPath = expandHome(cfg.FontPath, home)

	return cfg, nil
}

func expandHome(path, home string) string {
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}
