package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/sounder-audio/sounder/internal/sink"
)

const appName = "sounder"

type Config struct {
	Icons    string  `koanf:"icons"`     // "nerd", "unicode", or "ascii"
	Volume   float64 `koanf:"volume"`    // initial playback gain, 0..2 (default: 1.0)
	SeekStep int     `koanf:"seek_step"` // arrow-key seek in seconds (default: 5)
}

// Load reads every config file in priority order (last wins) and
// applies defaults for anything left unset.
func Load() (*Config, error) {
	k := koanf.New(".")

	for _, path := range configPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		Volume:   1.0,
		SeekStep: 5,
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.Volume < 0 {
		cfg.Volume = 0
	}
	if cfg.Volume > sink.VolumeMax {
		cfg.Volume = sink.VolumeMax
	}
	if cfg.SeekStep <= 0 {
		cfg.SeekStep = 5
	}

	return cfg, nil
}

func configPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/sounder/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}
