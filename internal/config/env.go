// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// dotenvPathVar names the OS variable holding the server's dotenv file.
const (
	dotenvPathVar     = "SERVER_ENV_FILE"
	defaultDotenvPath = "server.env"
)

// loadEnvironment returns the variables of the server's dotenv file
// overlaid with the current process environment, the process taking
// precedence. A missing dotenv file is treated as empty.
func loadEnvironment() (map[string]string, error) {
	path := os.Getenv(dotenvPathVar)
	if path == "" {
		path = defaultDotenvPath
	}

	environment, err := godotenv.Read(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w (%s): %w", ErrDotenvFile, path, err)
	}

	osEnvironment := os.Environ()
	if environment == nil {
		environment = make(map[string]string, len(osEnvironment))
	}

	for _, specification := range osEnvironment {
		key, value, found := strings.Cut(specification, "=")
		if !found {
			continue
		}
		environment[key] = value
	}

	return environment, nil
}

// parseEnv populates cfg from environment using the caarlos0/env library.
// Struct fields are mapped via their `env` tags.
func parseEnv(cfg any, environment map[string]string) error {
	err := env.ParseWithOptions(cfg, env.Options{Environment: environment})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
