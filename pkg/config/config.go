package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	apiKeyEnv = "VBB_API_KEY"

	// placeholderKey is the value shipped in setup instructions; it is
	// treated the same as an unset key so copy-pasted templates never
	// issue real calls.
	placeholderKey = "YOUR_VBB_API_KEY_HERE"
)

// ErrMissingAPIKey signals that no usable API key is configured. No real
// call can succeed without one, so interaction must halt (or fall back to
// demo mode when the user explicitly asks for it).
var ErrMissingAPIKey = errors.New("VBB_API_KEY is not set (demo mode available via --demo)")

// APIKey reads the VBB API bearer key from the environment.
func APIKey() (string, error) {
	key := os.Getenv(apiKeyEnv)
	if key == "" || key == placeholderKey {
		return "", ErrMissingAPIKey
	}
	return key, nil
}

// AppConfig holds all user-defined persistent settings
type AppConfig struct {
	DefaultStationID   string `json:"default_station_id,omitempty"`
	DefaultStationName string `json:"default_station_name,omitempty"`
	LastQuery          string `json:"last_query,omitempty"`
	AccentColor        string `json:"accent_color,omitempty"`
}

// getConfigPath returns the absolute path to ~/.vbbdash.json
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".vbbdash.json"), nil
}

// Load reads the application configuration from disk.
// Returns an empty struct if the file does not exist.
func Load() (*AppConfig, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, just return an empty default configuration
		if os.IsNotExist(err) {
			return &AppConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Save writes the application configuration back to disk.
func Save(cfg *AppConfig) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
