// Package config loads the optional .cloxrc.yaml settings file the CLI
// reads before starting a REPL or running a script, grounded on the
// teacher's yaml.v3-backed manifest/lockfile loading
// (pkg/driver/lockfile.go in the retrieved able interpreter).
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file clox looks for, first in the current
// directory then in the user's home directory.
const FileName = ".cloxrc.yaml"

// Config holds the driver-level settings that sit around the language
// core (spec.md's Driver component, §4.5): none of these affect
// compilation or evaluation semantics.
type Config struct {
	Trace        bool   `yaml:"trace"`
	Prompt       string `yaml:"prompt"`
	HistoryFile  string `yaml:"historyFile"`
	ExamplesRepo string `yaml:"examplesRepo"`
}

// Default returns the settings clox uses when no config file is found.
func Default() *Config {
	return &Config{Prompt: "> "}
}

// Load resolves .cloxrc.yaml from the current directory, then $HOME,
// merging found fields over the defaults. A missing file is not an
// error; a present-but-malformed file is, since that is host input the
// user explicitly asked to be read (spec.md §7.3: host errors are fatal
// by design).
func Load() (*Config, error) {
	cfg := Default()

	path, err := locate()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func locate() (string, error) {
	if _, err := os.Stat(FileName); err == nil {
		return FileName, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", nil
	}
	candidate := filepath.Join(home, FileName)
	if _, err := os.Stat(candidate); err == nil {
		return candidate, nil
	}
	return "", nil
}
