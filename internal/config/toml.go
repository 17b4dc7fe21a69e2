// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/wordstats/internal/model"
)

// DefaultBaseDir is where word lists are read from, relative to the working directory.
const DefaultBaseDir = ".."

// DefaultFiles are the word lists analyzed when no override is configured.
var DefaultFiles = []string{
	"eff.txt",
	"effshort1.txt",
	"effshort2.txt",
	"got.txt",
	"potter.txt",
	"startrek.txt",
	"starwars.txt",
}

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Analysis AnalysisConfig `toml:"analysis"`
	History  HistoryConfig  `toml:"history"`
}

// AnalysisConfig maps analysis inputs and outputs.
type AnalysisConfig struct {
	BaseDir *string  `toml:"base-dir"`
	Files   []string `toml:"files"`
	OutDir  *string  `toml:"out-dir"`
}

// HistoryConfig maps run history settings.
type HistoryConfig struct {
	DB *string `toml:"db"`
}

// DefaultRunConfig returns the built-in list of word lists.
func DefaultRunConfig() model.RunConfig {
	return model.RunConfig{
		BaseDir: DefaultBaseDir,
		Files:   append([]string(nil), DefaultFiles...),
		OutDir:  ".",
	}
}

// Apply overlays values set in the file onto cfg.
func Apply(fileCfg FileConfig, cfg model.RunConfig) model.RunConfig {
	if fileCfg.Analysis.BaseDir != nil {
		cfg.BaseDir = *fileCfg.Analysis.BaseDir
	}
	if len(fileCfg.Analysis.Files) > 0 {
		cfg.Files = append([]string(nil), fileCfg.Analysis.Files...)
	}
	if fileCfg.Analysis.OutDir != nil {
		cfg.OutDir = *fileCfg.Analysis.OutDir
	}
	return cfg
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
