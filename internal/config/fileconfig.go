package config

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/chime-player/chime/internal/platform"
)

// FileConfig holds the optional file-based configuration. Users who prefer a
// config file over the in-app settings dialog can place a TOML file in the
// per-user config directory; its values take precedence over preferences.
type FileConfig struct {
	DataDir       string  `koanf:"data_dir"`
	DefaultVolume float64 `koanf:"default_volume"`
}

// LoadFile reads the config file at path. A missing file is not an error and
// yields zero values, meaning "no override".
func LoadFile(path string) (*FileConfig, error) {
	cfg := &FileConfig{}

	if _, err := os.Stat(path); err != nil {
		return cfg, nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.DefaultVolume = clampVolume(cfg.DefaultVolume)
	return cfg, nil
}

// Load reads the config file from the default per-user location.
func Load() (*FileConfig, error) {
	return LoadFile(platform.DefaultConfigPath())
}

// Apply overlays the file values onto the preference-backed settings.
// Zero values leave the corresponding setting untouched.
func (c *FileConfig) Apply(settings *Settings) {
	if c.DataDir != "" {
		settings.SetDataDirectory(c.DataDir)
	}
	if c.DefaultVolume > 0 {
		settings.SetDefaultVolume(c.DefaultVolume)
	}
}
