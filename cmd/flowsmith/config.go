package main

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config holds all flowsmith server configuration.
// Priority: env vars > settings.json > defaults.
type Config struct {
	ListenAddr string `json:"listen_addr"`
	BaseURL    string `json:"base_url"`
	LogLevel   string `json:"log_level"`
	Toolset    string `json:"toolset"`
	Transport  string `json:"transport"`
}

func defaultConfig() Config {
	return Config{
		ListenAddr: ":4200",
		LogLevel:   "info",
		Toolset:    "full",
		Transport:  "stdio",
	}
}

func flowsmithDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".flowsmith"
	}
	return filepath.Join(home, ".flowsmith")
}

func settingsPath() string {
	return filepath.Join(flowsmithDir(), "settings.json")
}

func loadConfig() Config {
	cfg := defaultConfig()

	// Layer 2: settings.json (ignore if missing).
	if data, err := os.ReadFile(settingsPath()); err == nil {
		_ = json.Unmarshal(data, &cfg)
	}

	// Layer 3: env vars override.
	if v := os.Getenv("FLOWSMITH_LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("FLOWSMITH_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("FLOWSMITH_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("FLOWSMITH_TOOLSET"); v != "" {
		cfg.Toolset = v
	}
	if v := os.Getenv("FLOWSMITH_TRANSPORT"); v != "" {
		cfg.Transport = v
	}

	// Derive base_url from listen_addr if empty.
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost" + cfg.ListenAddr
	}

	return cfg
}
