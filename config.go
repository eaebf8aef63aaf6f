package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// Config represents the configuration structure.
type Config struct {
	TMDbApiKey     string `json:"tmdb_api_key,omitempty"`
	TMDbApiKeyFile Path   `json:"tmdb_api_key_file,omitempty"`
	CacheDB        Path   `json:"cache_db,omitempty"`
}

// ConfigPath returns the path to the configuration file.
func ConfigPath(path Path) Path {
	if path == "" {
		exePath, _ := os.Executable()
		return Path(filepath.Dir(exePath)).appendingPathComponent("config.json")
	}
	if path.isDirectory() {
		return path.appendingPathComponent("config.json")
	}
	return path
}

// LoadConfig loads configuration from the specified path. A missing
// default config file is fine; the API key then has to come from the
// key file or the environment.
func LoadConfig(configFile Path) (*Config, error) {
	var config Config
	file, err := os.Open(string(ConfigPath(configFile)))
	if err == nil {
		defer file.Close()
		if err := json.NewDecoder(file).Decode(&config); err != nil {
			return nil, err
		}
	} else if configFile != "" {
		// an explicitly named config must exist
		return nil, err
	}

	if config.TMDbApiKey == "" {
		keyFile := config.TMDbApiKeyFile
		if keyFile == "" {
			keyFile = Path(os.Getenv("TMDB_API_KEY_FILE"))
		}
		if keyFile == "" {
			keyFile = "./.tmdb-api-key"
		}
		if data, err := os.ReadFile(string(keyFile)); err == nil {
			config.TMDbApiKey = strings.TrimSpace(string(data))
		}
	}
	if config.TMDbApiKey == "" {
		config.TMDbApiKey = os.Getenv("TMDB_API_KEY")
	}

	if config.CacheDB == "" {
		exePath, _ := os.Executable()
		config.CacheDB = Path(filepath.Dir(exePath)).appendingPathComponent("search-cache.db")
	}

	return &config, nil
}
