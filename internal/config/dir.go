package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	APP_NAME    = "infixc"
	CONFIG_FILE = "config.toml"
)

// Dir returns the per-user configuration directory without creating it.
func Dir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, APP_NAME), nil
	}
	if os.Getenv("OS") == "Windows_NT" && os.Getenv("APPDATA") != "" {
		return filepath.Join(os.Getenv("APPDATA"), APP_NAME), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", APP_NAME), nil
}

func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, CONFIG_FILE), nil
}

// WriteDefault creates path, and its directory, holding DEFAULT_CONFIG_FILE.
// An existing file is left alone.
func WriteDefault(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, err
	}
	if err := writeStringToFile(path, DEFAULT_CONFIG_FILE); err != nil {
		return false, err
	}
	return true, nil
}

func writeStringToFile(fileName, content string) error {
	file, err := os.OpenFile(fileName, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.WriteString(content)
	return err
}
