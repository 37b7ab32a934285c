package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrHomeDirNotFound is returned when the user's home directory cannot be resolved.
var ErrHomeDirNotFound = errors.New("could not find home directory")

var (
	getEnv      = os.Getenv
	userHomeDir = os.UserHomeDir
)

// GlobalConfigPath resolves the global config file path using XDG conventions.
func GlobalConfigPath() (string, error) {
	if xdgHome := getEnv("XDG_CONFIG_HOME"); xdgHome != "" {
		return filepath.Join(xdgHome, DefaultConfigName, DefaultConfigFile), nil
	}

	home, err := homeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".config", DefaultConfigName, DefaultConfigFile), nil
}

// DataDir resolves the directory holding the data file: data.dir when set,
// otherwise ~/must.
func DataDir(cfg *Config) (string, error) {
	if cfg.Data.Dir != "" {
		return cfg.Data.Dir, nil
	}

	home, err := homeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, DefaultDataDirName), nil
}

// DataFilePath resolves the full path of the data file.
func DataFilePath(cfg *Config) (string, error) {
	dir, err := DataDir(cfg)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, cfg.Data.File), nil
}

func homeDir() (string, error) {
	dir, err := userHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHomeDirNotFound, err)
	}
	if dir == "" {
		return "", ErrHomeDirNotFound
	}
	return dir, nil
}
