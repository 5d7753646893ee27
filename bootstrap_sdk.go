package tmui

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"pkt.systems/pslog"
)

// Bootstrap validates cfg and writes it as YAML to path, or to
// DefaultConfigPath when path is empty. An existing file is never
// overwritten.
func Bootstrap(cfg Config, path string, logger pslog.Logger) (string, error) {
	if logger == nil {
		logger = pslog.LoggerFromEnv()
	}
	if err := cfg.Validate(); err != nil {
		return "", fmt.Errorf("bootstrap: %w", err)
	}
	if path == "" {
		path = DefaultConfigPath()
	}

	switch _, err := os.Stat(path); {
	case err == nil:
		return "", fmt.Errorf("bootstrap: config already exists at %s", path)
	case !errors.Is(err, fs.ErrNotExist):
		return "", err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	logger.Info("bootstrapped config", "path", path)
	return path, nil
}
