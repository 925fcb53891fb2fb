package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"misty-maze/generation"
)

// Settings are the runtime knobs read from an optional YAML file
type Settings struct {
	MazeWidth            int     `yaml:"maze_width"`
	MazeHeight           int     `yaml:"maze_height"`
	CoinProbability      float64 `yaml:"coin_probability"`
	Seed                 int64   `yaml:"seed"` // 0 picks a seed from the clock
	MaxPlacementAttempts int     `yaml:"max_placement_attempts"`
	ExtraCorridors       int     `yaml:"extra_corridors"`
	GenerationRetries    int     `yaml:"generation_retries"`
	Fullscreen           bool    `yaml:"fullscreen"`
	Music                string  `yaml:"music"` // mp3 or ogg looped in the background, empty for none
	Volume               float64 `yaml:"volume"`
	Strict               bool    `yaml:"strict"` // reject configs that fail validation
}

// DefaultSettings give an 80x50 maze with half the
// floor covered in coins
func DefaultSettings() Settings {
	return Settings{
		MazeWidth:            80,
		MazeHeight:           50,
		CoinProbability:      generation.DefaultCoinProbability,
		MaxPlacementAttempts: generation.DefaultMaxPlacementAttempts,
		GenerationRetries:    3,
		Volume:               0.5,
	}
}

// LoadSettings reads settings from path on top of the defaults. A missing
// file is not an error; an empty path skips loading.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()
	if path == "" {
		return settings, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return settings, fmt.Errorf("reading settings %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return DefaultSettings(), fmt.Errorf("parsing settings %s: %w", path, err)
	}
	return settings, nil
}

// MazeConfig derives the generator config from the maze size, then applies
// the overrides set in the file
func (s Settings) MazeConfig() (generation.MazeConfig, error) {
	cfg := generation.DeriveConfig(s.MazeWidth, s.MazeHeight)
	cfg.CoinProbability = s.CoinProbability
	if s.MaxPlacementAttempts > 0 {
		cfg.MaxPlacementAttempts = s.MaxPlacementAttempts
	}
	cfg.ExtraCorridors = s.ExtraCorridors

	if s.Strict {
		if err := cfg.Validate(); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}
