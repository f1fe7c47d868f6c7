// Package config resolves the filesystem locations kube-switcher works with.
//
// Values are read from the environment once at process start and then passed
// explicitly to the scanner, selector and activator.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Environment variables understood by kube-switcher.
const (
	EnvConfigsDir = "KSWITCHER_CONFIGS_DIR"
	EnvDebug      = "KSWITCHER_DEBUG"
)

// envValueTrue is the string value used to enable boolean environment variables.
const envValueTrue = "true"

// Default locations, relative to the user's home directory.
const (
	DefaultConfigsDir = "~/.kube/configs"
	DefaultActivePath = "~/.kube/config"
)

// Config holds the resolved locations for a single invocation.
type Config struct {
	// ContextDir is the directory scanned for candidate kubeconfig files.
	ContextDir string

	// ActivePath is the kubeconfig file overwritten on activation.
	ActivePath string

	// Debug enables debug logging.
	Debug bool
}

// FromEnv builds a Config from the environment, falling back to the
// home-relative defaults.
func FromEnv() (*Config, error) {
	dir := os.Getenv(EnvConfigsDir)
	if dir == "" {
		dir = DefaultConfigsDir
	}

	contextDir, err := ExpandPath(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to expand %s: %w", EnvConfigsDir, err)
	}

	activePath, err := ExpandPath(DefaultActivePath)
	if err != nil {
		return nil, fmt.Errorf("failed to expand active kubeconfig path: %w", err)
	}

	return &Config{
		ContextDir: contextDir,
		ActivePath: activePath,
		Debug:      strings.EqualFold(os.Getenv(EnvDebug), envValueTrue),
	}, nil
}

// ExpandPath expands a path starting with ~/ to the full home directory path.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, strings.TrimPrefix(path[1:], "/")), nil
}
