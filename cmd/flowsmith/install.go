package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
)

// runInstall writes a settings.json so MCP client configs can launch
// flowsmith without flags.
func runInstall(args []string) {
	fs := flag.NewFlagSet("install", flag.ExitOnError)
	listenAddr := fs.String("listen-addr", ":4200", "TCP listen address for the SSE transport")
	baseURL := fs.String("base-url", "", "public base URL (derived from listen-addr if empty)")
	logLevel := fs.String("log-level", "info", "log level: debug, info, warn, error")
	toolset := fs.String("toolset", "full", "toolset: full or diagram")
	transport := fs.String("transport", "stdio", "transport: stdio or sse")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	dir := flowsmithDir()
	if err := os.MkdirAll(dir, 0o700); err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot create %s: %v\n", dir, err)
		os.Exit(1)
	}

	cfg := Config{
		ListenAddr: *listenAddr,
		BaseURL:    *baseURL,
		LogLevel:   *logLevel,
		Toolset:    *toolset,
		Transport:  *transport,
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost" + cfg.ListenAddr
	}

	data, _ := json.MarshalIndent(cfg, "", "  ")
	path := settingsPath()
	if err := os.WriteFile(path, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot write %s: %v\n", path, err)
		os.Exit(1)
	}
	fmt.Printf("Config written to %s\n", path)
}
