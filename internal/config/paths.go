package config

import (
	"os"
	"path/filepath"
)

// DefaultConfigDir returns the default tmui config directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return DefaultConfigDirName
	}
	return filepath.Join(home, DefaultConfigDirName)
}

// DefaultConfigPath returns the default tmui config file path.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), DefaultConfigFileName)
}

// DefaultLogPath returns the default log file path.
func DefaultLogPath() string {
	return filepath.Join(DefaultConfigDir(), DefaultLogFileName)
}

// DefaultDumpPath returns the suggested screen dump path.
func DefaultDumpPath() string {
	return filepath.Join(DefaultConfigDir(), DefaultDumpFileName)
}
