// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	environment := map[string]string{
		"CONFIG": "/path/to/config.json",

		"HOST":             "127.0.0.1",
		"PORT":             "9090",
		"SHUTDOWN_TIMEOUT": "30s",

		"STATIC_ROOT":     "/srv/webapp",
		"WEBAPP_ENV_FILE": "/srv/webapp/webapp.env",

		"LOG_LEVEL": "warn",
	}

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg, environment)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)

	assert.Equal(t, "/srv/webapp", cfg.Static.RootDir)
	assert.Equal(t, "/srv/webapp/webapp.env", cfg.Static.EnvFile)

	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg, map[string]string{})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseEnv_InvalidPort(t *testing.T) {
	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg, map[string]string{"PORT": "eighty"})

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"minutes", "1m", time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"milliseconds", "250ms", 250 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &StructuredConfig{}
			err := parseEnv(cfg, map[string]string{"SHUTDOWN_TIMEOUT": tt.envValue})

			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Server.ShutdownTimeout)
		})
	}
}

func TestLoadEnvironment_ReadsDotenvFile(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "server.env")
	require.NoError(t, os.WriteFile(p, []byte("PORT=9001\nSTATIC_ROOT=/from/dotenv\n"), 0o600))
	t.Setenv(dotenvPathVar, p)

	// Act
	environment, err := loadEnvironment()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "9001", environment["PORT"])
	assert.Equal(t, "/from/dotenv", environment["STATIC_ROOT"])
}

func TestLoadEnvironment_ProcessEnvironmentWins(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "server.env")
	require.NoError(t, os.WriteFile(p, []byte("PORT=9001\n"), 0o600))
	t.Setenv(dotenvPathVar, p)
	t.Setenv("PORT", "9002")

	// Act
	environment, err := loadEnvironment()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "9002", environment["PORT"])
}

func TestLoadEnvironment_MissingDotenvFile(t *testing.T) {
	// Arrange
	t.Setenv(dotenvPathVar, filepath.Join(t.TempDir(), "absent.env"))
	t.Setenv("PORT", "9003")

	// Act
	environment, err := loadEnvironment()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "9003", environment["PORT"])
}

func TestLoadEnvironment_DotenvIsDirectory(t *testing.T) {
	// Arrange
	t.Setenv(dotenvPathVar, t.TempDir())

	// Act
	environment, err := loadEnvironment()

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDotenvFile)
	assert.Nil(t, environment)
}
