// Package storage provides the startup configuration file and the
// session history database.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"roundclock/internal/core/model"
)

const (
	configFileName  = "config.yaml"
	historyFileName = "history.db"
)

// AppConfig is everything read from the user's config file. The file is
// user-edited only; RoundClock never writes it back.
type AppConfig struct {
	Session     model.SessionConfig
	HistoryPath string
}

type yamlConfig struct {
	Rounds      int     `yaml:"rounds"`
	WorkSeconds float64 `yaml:"work_seconds"`
	RestSeconds float64 `yaml:"rest_seconds"`
	HistoryPath string  `yaml:"history_path"`
}

// DefaultSession returns the built-in session parameters (a Tabata:
// eight rounds of 20 seconds on, 10 seconds off).
func DefaultSession() model.SessionConfig {
	return model.SessionConfig{
		Rounds:       8,
		WorkDuration: 20 * time.Second,
		RestDuration: 10 * time.Second,
	}
}

// LoadConfig reads the startup configuration from YAML.
// A missing file yields the defaults.
func LoadConfig(appName string) (AppConfig, error) {
	config := AppConfig{Session: DefaultSession()}

	configDir, err := resolveConfigDir(appName)
	if err != nil {
		return config, err
	}
	config.HistoryPath = filepath.Join(configDir, historyFileName)

	rawData, err := os.ReadFile(filepath.Join(configDir, configFileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return config, fmt.Errorf("read config file: %w", err)
	}

	var fileData yamlConfig
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return config, fmt.Errorf("parse config yaml: %w", err)
	}

	applyFileConfig(&config, fileData)
	return config, nil
}

func resolveConfigDir(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName), nil
}

func applyFileConfig(config *AppConfig, fileData yamlConfig) {
	if fileData.Rounds > 0 {
		config.Session.Rounds = fileData.Rounds
	}
	if fileData.WorkSeconds > 0 {
		config.Session.WorkDuration = secondsToDuration(fileData.WorkSeconds)
	}
	if fileData.RestSeconds > 0 {
		config.Session.RestDuration = secondsToDuration(fileData.RestSeconds)
	}
	if fileData.HistoryPath != "" {
		config.HistoryPath = fileData.HistoryPath
	}
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}
