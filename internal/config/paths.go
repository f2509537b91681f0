// Package config handles settings persistence and path management.
package config

import (
	"os"
	"path/filepath"
)

const (
	// HomeDirName is the name of the ticklog directory under the user's home.
	HomeDirName = ".ticklog"

	// SettingsFileName is the name of the settings file inside the home dir.
	SettingsFileName = "settings.yaml"

	// LogFileName is the name of the diagnostic log file inside the home dir.
	LogFileName = "ticklog.log"

	// homeEnv overrides the ticklog home directory, mainly for tests.
	homeEnv = "TICKLOG_HOME"
)

// HomeDir returns the ticklog home directory (~/.ticklog, or $TICKLOG_HOME).
func HomeDir() (string, error) {
	if dir := os.Getenv(homeEnv); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, HomeDirName), nil
}

// SettingsFile returns the path to settings.yaml.
func SettingsFile() (string, error) {
	dir, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFileName), nil
}

// LogFile returns the path to the diagnostic log file.
func LogFile() (string, error) {
	dir, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, LogFileName), nil
}

// DefaultStorageFolder returns the folder log files land in until the user
// picks one: the Documents directory under the user's home.
func DefaultStorageFolder() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "Documents"), nil
}
