package access

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is the on-disk configuration, loaded from a TOML file next to the
// layer's loader. Everything has a usable default; a missing file is not an
// error.
type Config struct {
	Log    LogConfig         `toml:"log"`
	Speech SpeechConfig      `toml:"speech"`
	Keys   map[string]string `toml:"keys"`
}

// LogConfig controls the structured log sink.
type LogConfig struct {
	// Path is the log file location. Empty logs to stderr.
	Path string `toml:"path"`
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
}

// SpeechConfig controls announcement behavior.
type SpeechConfig struct {
	// Enabled silences the layer entirely when false, for sighted
	// streamers running with the patch installed.
	Enabled bool `toml:"enabled"`
}

// Keys maps action names (lowercased Key names, e.g. "confirm",
// "jumpboard") to physical key names understood by the platform decoder in
// use. Unmapped actions keep the decoder's defaults.

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Log:    LogConfig{Level: "warn"},
		Speech: SpeechConfig{Enabled: true},
		Keys:   map[string]string{},
	}
}

// LoadConfig reads a TOML config file, applying defaults for anything the
// file leaves out.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("load config %s: %w", path, err)
	}
	if cfg.Keys == nil {
		cfg.Keys = map[string]string{}
	}
	return cfg, nil
}
