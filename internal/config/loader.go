package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalConfigPath is the project-relative config location.
const LocalConfigPath = "configs/minerun.yaml"

// SourceDefaults names the built-in configuration in Loaded.Source.
const SourceDefaults = "defaults"

// Loaded is a configuration together with the file it came from.
type Loaded struct {
	Config MinerunConfig
	Source string
}

// Candidates lists the files Locate tries when no explicit path is given,
// in order.
func Candidates() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".minerun", "configs", "minerun.yaml"))
	}
	return append(paths, LocalConfigPath)
}

// Locate resolves the configuration. An explicit path must exist and parse.
// Otherwise the first candidate that parses wins; unreadable or invalid
// candidates are skipped, ending at the embedded defaults.
func Locate(path string) (Loaded, error) {
	if path != "" {
		cfg, err := readFile(path)
		if err != nil {
			return Loaded{Config: DefaultMinerunConfig(), Source: SourceDefaults}, err
		}
		return Loaded{Config: cfg, Source: path}, nil
	}

	for _, candidate := range Candidates() {
		if cfg, err := readFile(candidate); err == nil {
			return Loaded{Config: cfg, Source: candidate}, nil
		}
	}

	cfg, err := Parse(defaultMinerunYAML)
	if err != nil {
		cfg = DefaultMinerunConfig()
	}
	return Loaded{Config: cfg, Source: SourceDefaults}, nil
}

// Load returns the configuration Locate resolves.
func Load(path string) (MinerunConfig, error) {
	l, err := Locate(path)
	return l.Config, err
}

func readFile(path string) (MinerunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultMinerunConfig(), fmt.Errorf("config: %s does not exist", path)
		}
		return DefaultMinerunConfig(), fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return DefaultMinerunConfig(), fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (MinerunConfig, error) {
	cfg := DefaultMinerunConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes cfg as YAML.
func Marshal(cfg MinerunConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}
