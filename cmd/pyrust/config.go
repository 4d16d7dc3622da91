package main

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/fidelcastrodev/pyrustlang/internal/log"
)

const configFile = ".pyrustlang.yaml"

// replConfig controls REPL appearance. All fields are optional; a missing
// or malformed config file falls back to the defaults.
type replConfig struct {
	Prompt      string `yaml:"prompt"`
	ContPrompt  string `yaml:"continuation_prompt"`
	HistoryFile string `yaml:"history_file"`
	Color       *bool  `yaml:"color"`
}

func defaultConfig() replConfig {
	return replConfig{
		Prompt:      ">>> ",
		ContPrompt:  "... ",
		HistoryFile: ".pyrust_history",
	}
}

func loadConfig() replConfig {
	cfg := defaultConfig()
	home, err := os.UserHomeDir()
	if err != nil {
		return cfg
	}
	path := filepath.Join(home, configFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Warn("ignoring malformed config file", "path", path, "error", err)
		return defaultConfig()
	}
	if cfg.Prompt == "" {
		cfg.Prompt = ">>> "
	}
	if cfg.ContPrompt == "" {
		cfg.ContPrompt = "... "
	}
	if cfg.HistoryFile == "" {
		cfg.HistoryFile = ".pyrust_history"
	}
	return cfg
}

func (c replConfig) historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return c.HistoryFile
	}
	return filepath.Join(home, c.HistoryFile)
}

func (c replConfig) colorEnabled() bool {
	return c.Color == nil || *c.Color
}
