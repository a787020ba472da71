package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrUnknownMaze is returned by Load when no file or preset matches an id.
var ErrUnknownMaze = errors.New("config: unknown maze")

// Parse decodes a maze definition, fills in defaults and validates it.
func Parse(data []byte) (MazeConfig, error) {
	var cfg MazeConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadFile reads and validates a single maze file.
func LoadFile(path string) (MazeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return MazeConfig{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Load resolves a maze by id.
// Search order: customPath -> ~/.maze/mazes/<id>.yaml -> ./mazes/<id>.yaml -> embedded preset.
// A file that exists but does not validate is an error rather than being skipped.
func Load(id, customPath string) (MazeConfig, error) {
	if customPath != "" {
		return LoadFile(customPath)
	}

	// Try user maze directory
	if p := userMazePath(id); p != "" {
		if cfg, ok, err := tryFile(p); ok || err != nil {
			return cfg, err
		}
	}

	// Try local mazes directory
	if cfg, ok, err := tryFile(filepath.Join("mazes", id+".yaml")); ok || err != nil {
		return cfg, err
	}

	return Preset(id)
}

// tryFile loads path if it exists. ok is false when there is no such file.
func tryFile(path string) (MazeConfig, bool, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return MazeConfig{}, false, nil
	}
	cfg, err := LoadFile(path)
	return cfg, err == nil, err
}

// userMazePath returns the path to a user maze file, or empty if home is unavailable.
func userMazePath(id string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".maze", "mazes", id+".yaml")
}

// LoadAll loads every maze that Load can resolve by preset id.
func LoadAll() ([]MazeConfig, error) {
	ids := Presets()
	cfgs := make([]MazeConfig, 0, len(ids))
	for _, id := range ids {
		cfg, err := Load(id, "")
		if err != nil {
			return nil, err
		}
		cfgs = append(cfgs, cfg)
	}
	return cfgs, nil
}
