package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	defaultPort            = 8080
	defaultShutdownTimeout = 5 * time.Second
	defaultLogLevel        = "debug"
	defaultWebappEnvFile   = "webapp.env"
)

// applyDefaults fills fields left empty by every source. The static root
// falls back to the directory holding the executable, and the webapp env
// file to webapp.env inside the static root.
func (cfg *StructuredConfig) applyDefaults() error {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaultPort
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = defaultShutdownTimeout
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaultLogLevel
	}

	if cfg.Static.RootDir == "" {
		dir, err := executableDir()
		if err != nil {
			return err
		}
		cfg.Static.RootDir = dir
	}
	if cfg.Static.EnvFile == "" {
		cfg.Static.EnvFile = filepath.Join(cfg.Static.RootDir, defaultWebappEnvFile)
	}

	return nil
}

func executableDir() (string, error) {
	execPath, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(execPath), nil
}
