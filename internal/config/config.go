// Package config handles configuration loading for zoo. It supports
// XDG config paths, environment overrides, and built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/alighten/zoo/internal/store"
)

// Config holds all configuration for zoo.
type Config struct {
	Data DataConfig `mapstructure:"data"`
	Game GameConfig `mapstructure:"game"`
}

// DataConfig holds persistence settings.
type DataConfig struct {
	// Path is the SQLite database file holding the decision tree.
	Path string `mapstructure:"path"`
}

// GameConfig holds gameplay settings.
type GameConfig struct {
	// SeedAnimal is the single guess a brand-new tree starts with.
	SeedAnimal string `mapstructure:"seed_animal"`
	// Color toggles colored terminal output.
	Color bool `mapstructure:"color"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Data: DataConfig{Path: store.DefaultDBPath()},
		Game: GameConfig{SeedAnimal: "dog", Color: true},
	}
}

// Load loads configuration from the user config file and environment.
// Precedence (highest to lowest):
// 1. Environment variables (ZOO_DATA_PATH, ZOO_GAME_SEED_ANIMAL, ZOO_GAME_COLOR)
// 2. User config (~/.config/zoo/config.yaml)
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(getUserConfigDir())

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading user config: %w", err)
		}
	}

	bindEnv(v)
	return unmarshal(v)
}

// LoadFromPath loads configuration from a specific file (for testing).
func LoadFromPath(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}

	bindEnv(v)
	return unmarshal(v)
}

// GetUserConfigPath returns the path to the user config file.
func GetUserConfigPath() string {
	return filepath.Join(getUserConfigDir(), "config.yaml")
}

func setDefaults(v *viper.Viper) {
	def := Default()
	v.SetDefault("data.path", def.Data.Path)
	v.SetDefault("game.seed_animal", def.Game.SeedAnimal)
	v.SetDefault("game.color", def.Game.Color)
}

func bindEnv(v *viper.Viper) {
	v.SetEnvPrefix("ZOO")
	v.AutomaticEnv()
	v.BindEnv("data.path", "ZOO_DATA_PATH")
	v.BindEnv("game.seed_animal", "ZOO_GAME_SEED_ANIMAL")
	v.BindEnv("game.color", "ZOO_GAME_COLOR")
}

func unmarshal(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return cfg, nil
}

// getUserConfigDir returns the XDG config directory for zoo.
func getUserConfigDir() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, _ := os.UserHomeDir()
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "zoo")
}
