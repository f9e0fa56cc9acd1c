// Package config loads the engine's tunable cutoffs from an optional YAML
// file that overrides a handful of defaults safe to tune per deployment
// without a rebuild.
package config

import (
	"fmt"
	"os"

	"github.com/sunho/sdsearch/tagdb"
	"gopkg.in/yaml.v2"
)

// EngineConfig holds the per-deployment tunables layered on top of the
// core's compiled-in defaults (InitialCutoff=1600, FinalCutoff=256,
// MaxWordLen=64).
type EngineConfig struct {
	InitialCutoff int    `yaml:"initial_cutoff"`
	FinalCutoff   int    `yaml:"final_cutoff"`
	MaxWordLen    int    `yaml:"max_word_len"`
	LogLevel      string `yaml:"log_level"`
}

// Default returns an EngineConfig matching the engine's compiled-in defaults.
func Default() EngineConfig {
	return EngineConfig{
		InitialCutoff: tagdb.InitialCutoff,
		FinalCutoff:   tagdb.FinalCutoff,
		MaxWordLen:    tagdb.MaxWordLen,
		LogLevel:      "info",
	}
}

// Load reads an EngineConfig from a YAML file at path, falling back to
// Default() for any field left unset (zero) in the file. An empty path
// returns Default() without touching the filesystem.
func Load(path string) (EngineConfig, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return EngineConfig{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var override EngineConfig
	if err := yaml.Unmarshal(data, &override); err != nil {
		return EngineConfig{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if override.InitialCutoff != 0 {
		cfg.InitialCutoff = override.InitialCutoff
	}
	if override.FinalCutoff != 0 {
		cfg.FinalCutoff = override.FinalCutoff
	}
	if override.MaxWordLen != 0 {
		cfg.MaxWordLen = override.MaxWordLen
	}
	if override.LogLevel != "" {
		cfg.LogLevel = override.LogLevel
	}
	return cfg, nil
}
