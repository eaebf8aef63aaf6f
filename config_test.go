package main

import (
	"os"
	"testing"
)

func TestLoadConfigFromFile(t *testing.T) {
	dir := Path(t.TempDir())
	configFile := dir.appendingPathComponent("config.json")
	err := os.WriteFile(string(configFile), []byte(`{"tmdb_api_key": "key-from-config", "cache_db": "cache.db"}`), 0644)
	if err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(configFile)
	if err != nil {
		t.Fatal(err)
	}
	if config.TMDbApiKey != "key-from-config" {
		t.Errorf("expected key from config, got %q", config.TMDbApiKey)
	}
	if config.CacheDB != "cache.db" {
		t.Errorf("expected cache db from config, got %q", config.CacheDB)
	}
}

func TestLoadConfigDirectoryResolvesToConfigJSON(t *testing.T) {
	dir := Path(t.TempDir())
	err := os.WriteFile(string(dir.appendingPathComponent("config.json")), []byte(`{"tmdb_api_key": "k"}`), 0644)
	if err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(dir)
	if err != nil {
		t.Fatal(err)
	}
	if config.TMDbApiKey != "k" {
		t.Errorf("expected config.json inside the directory to be read, got %q", config.TMDbApiKey)
	}
}

func TestLoadConfigKeyFromKeyFile(t *testing.T) {
	dir := Path(t.TempDir())
	keyFile := dir.appendingPathComponent("tmdb.key")
	if err := os.WriteFile(string(keyFile), []byte("key-from-file\n"), 0600); err != nil {
		t.Fatal(err)
	}
	configFile := dir.appendingPathComponent("config.json")
	err := os.WriteFile(string(configFile), []byte(`{"tmdb_api_key_file": "`+string(keyFile)+`"}`), 0644)
	if err != nil {
		t.Fatal(err)
	}
	t.Setenv("TMDB_API_KEY", "key-from-env")

	config, err := LoadConfig(configFile)
	if err != nil {
		t.Fatal(err)
	}
	if config.TMDbApiKey != "key-from-file" {
		t.Errorf("the key file takes precedence over the environment, got %q", config.TMDbApiKey)
	}
}

func TestLoadConfigKeyFromEnvironment(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "key-from-env")
	t.Setenv("TMDB_API_KEY_FILE", "")

	config, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if config.TMDbApiKey != "key-from-env" {
		t.Errorf("expected the environment fallback, got %q", config.TMDbApiKey)
	}
}

func TestLoadConfigMissingExplicitFileFails(t *testing.T) {
	if _, err := LoadConfig(Path(t.TempDir()).appendingPathComponent("nope.json")); err == nil {
		t.Fatal("an explicitly named missing config must be an error")
	}
}
