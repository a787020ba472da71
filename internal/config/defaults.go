package config

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"
)

//go:embed mazes/*.yaml
var presetFS embed.FS

// Presets returns the ids of the embedded mazes, sorted.
func Presets() []string {
	entries, err := presetFS.ReadDir("mazes")
	if err != nil {
		return nil
	}
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	sort.Strings(ids)
	return ids
}

func presetData(id string) ([]byte, error) {
	return presetFS.ReadFile(path.Join("mazes", id+".yaml"))
}

// Preset parses an embedded maze without consulting the filesystem.
func Preset(id string) (MazeConfig, error) {
	data, err := presetData(id)
	if err != nil {
		return MazeConfig{}, fmt.Errorf("%w %q", ErrUnknownMaze, id)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config: preset %s: %w", id, err)
	}
	return cfg, nil
}
