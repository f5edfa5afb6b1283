// Package config persists the renderer's video settings as a flat TOML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Video holds the persisted render settings. Framerate doubles as the pacing
// selector: -1 means sync with the emulated video, anything else is a fixed
// target. FilterMethod is 0 for nearest, 1 for linear.
type Video struct {
	VSync        int    `toml:"vsync"`
	Framerate    int    `toml:"framerate"`
	FilterMethod int    `toml:"filter_method"`
	ShaderPath   string `toml:"shader"`
}

// Default returns the settings used when no file exists yet.
func Default() *Video {
	return &Video{Framerate: -1}
}

// Load reads the settings file at path. A missing file yields defaults.
func Load(path string) (*Video, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %q: %w", path, err)
	}
	v := Default()
	if err := toml.Unmarshal(b, v); err != nil {
		return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
	}
	return v, nil
}

// Save writes the settings to path.
func (v *Video) Save(path string) error {
	b, err := toml.Marshal(v)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("failed to write config %q: %w", path, err)
	}
	return nil
}
