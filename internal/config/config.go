// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"os"
	"strconv"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// server. It is populated by merging values from environment variables,
// command-line flags, and an optional JSON file.
type StructuredConfig struct {
	// Server holds the listening address and shutdown settings.
	Server Server

	// Static holds the directories and files served to the browser.
	Static Static

	// Log holds logging settings.
	Log Log

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Server holds network and lifecycle settings for the HTTP server.
type Server struct {
	// Host is the interface to bind. Empty means all interfaces.
	// Env: HOST
	Host string `env:"HOST"`

	// Port is the TCP port to listen on.
	// Env: PORT
	Port int `env:"PORT"`

	// ShutdownTimeout bounds graceful shutdown after a stop signal
	// (e.g. "5s").
	// Env: SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Address returns Host and Port joined as a listen address.
func (s Server) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Static describes what the server exposes over HTTP.
type Static struct {
	// RootDir is the directory served for every path except /config.js.
	// Env: STATIC_ROOT
	RootDir string `env:"STATIC_ROOT"`

	// EnvFile is the KEY=VALUE file rendered into /config.js.
	// Env: WEBAPP_ENV_FILE
	EnvFile string `env:"WEBAPP_ENV_FILE"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LOG_LEVEL"`
}

// GetStructuredConfig loads, merges, defaults and validates the server
// configuration from all available sources:
//  1. Environment variables (seeded from the dotenv file named by
//     SERVER_ENV_FILE, if it exists)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder(os.Args[1:]).
		withEnv().
		withFlags().
		withJSON().
		build()
}
