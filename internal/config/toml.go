// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Display DisplayConfig `toml:"display"`
	Server  ServerConfig  `toml:"server"`
}

// DisplayConfig maps startup display settings.
type DisplayConfig struct {
	Key         *string `toml:"key"`
	ShowDegrees *bool   `toml:"degrees"`
	Pentatonic  *bool   `toml:"pentatonic"`
	Color       *string `toml:"color"`
}

// ServerConfig maps settings for `frets serve`.
type ServerConfig struct {
	Addr     *string `toml:"addr"`
	AllowAll *bool   `toml:"allow-all-origins"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
