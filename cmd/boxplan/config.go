package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/metalagman/boxplan/internal/config"
	"github.com/spf13/viper"
)

func loadConfig(repoRoot string) (config.Config, error) {
	path := viper.GetString("config")
	if path == "" {
		path = filepath.Join(".boxplan", "config.json")
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(repoRoot, path)
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return config.Default(), nil
		}
		return config.Config{}, fmt.Errorf("stat config: %w", err)
	}
	viper.SetConfigFile(path)
	viper.SetConfigType("json")
	if err := viper.ReadInConfig(); err != nil {
		return config.Config{}, fmt.Errorf("read config: %w", err)
	}
	settings := viper.AllSettings()
	if err := config.ValidateSettings(settings); err != nil {
		return config.Config{}, err
	}
	return config.Decode(settings)
}
