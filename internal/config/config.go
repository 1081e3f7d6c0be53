// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package config loads skippy configuration files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvVar names a config file when no -config flag is given.
const EnvVar = "SKIPPY_CONFIG"

// Config holds settings shared by the skippy commands.
type Config struct {
	Prompt      string `yaml:"prompt"`
	HistoryFile string `yaml:"history_file"`
	DB          string `yaml:"db"`
	PersistMode string `yaml:"persist_mode"`
	PreludeFile string `yaml:"prelude_file"`
	Stdlib      bool   `yaml:"stdlib"`
	Stats       bool   `yaml:"stats"`
	Debug       bool   `yaml:"debug"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Prompt:      "skippy> ",
		PersistMode: "never",
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := Decode(bytes.NewReader(data), &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode overlays the YAML document in r onto cfg. Unknown keys are errors.
func Decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Path returns flagPath, or the SKIPPY_CONFIG file when flagPath is empty.
func Path(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	return os.Getenv(EnvVar)
}
