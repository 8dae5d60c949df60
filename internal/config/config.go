// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
// Package config loads the ejdict command configuration from TOML.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the name of the configuration file.
const FileName = "config.toml"

// ErrUnknownKey indicates a key in the configuration file that is not
// recognized.
var ErrUnknownKey = errors.New("unknown configuration key")

// Config is the ejdict command configuration.
type Config struct {
	Look       LookConfig       `toml:"look"`
	Candidates CandidatesConfig `toml:"candidates"`
	Complete   CompleteConfig   `toml:"complete"`
	Output     OutputConfig     `toml:"output"`
	Log        LogConfig        `toml:"log"`
}

// LookConfig holds options for the look command.
type LookConfig struct {
	// Mode is the search mode name. It is validated when used.
	Mode string `toml:"mode"`
}

// CandidatesConfig holds options for the candidates command.
type CandidatesConfig struct {
	Mode   string `toml:"mode"`
	Number int    `toml:"number"`
}

// CompleteConfig holds options for the complete command.
type CompleteConfig struct {
	Number int `toml:"number"`
}

// OutputConfig holds output options.
type OutputConfig struct {
	// JSON selects JSON output instead of a table.
	JSON bool `toml:"json"`
}

// LogConfig holds logging options.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Look: LookConfig{
			Mode: "lower",
		},
		Candidates: CandidatesConfig{
			Mode:   "fuzzy",
			Number: 5,
		},
		Complete: CompleteConfig{
			Number: 10,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Load reads the configuration file at path. Settings missing from the file
// keep their built-in values.
func Load(path string) (*Config, error) {
	c := Default()
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return nil, fmt.Errorf("loading config %q: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("loading config %q: %w: %v", path, ErrUnknownKey, undecoded[0])
	}
	return c, nil
}

// DefaultPath returns the default configuration file path. It is
// $XDG_CONFIG_HOME/ejdict/config.toml, or ~/.config/ejdict/config.toml when
// XDG_CONFIG_HOME is not set.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "ejdict", FileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding config directory: %w", err)
	}
	return filepath.Join(home, ".config", "ejdict", FileName), nil
}

// Resolve loads the configuration. A non-empty path must exist. Otherwise the
// file at [DefaultPath] is read if present, and the built-in configuration is
// used if not. Resolve returns the path that was loaded, or "" for the
// built-in configuration.
func Resolve(path string) (*Config, string, error) {
	if path != "" {
		c, err := Load(path)
		if err != nil {
			return nil, "", err
		}
		return c, path, nil
	}

	path, err := DefaultPath()
	if err != nil {
		return Default(), "", nil //nolint:nilerr // no home directory means no config file.
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return Default(), "", nil
	}
	c, err := Load(path)
	if err != nil {
		return nil, "", err
	}
	return c, path, nil
}
