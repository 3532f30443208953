// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package webenv

// Keys understood by the front end. Any other key found in the environment
// file is kept in [Configuration] but never rendered.
const (
	KeyAPIBaseURL      = "N8N_API_BASE_URL"
	KeyAPIKey          = "N8N_API_KEY"
	KeyRefreshInterval = "REFRESH_INTERVAL"
	KeyDebugMode       = "DEBUG_MODE"
)

// DefaultFileName is the name of the environment file looked up in the
// static root when no explicit path is configured.
const DefaultFileName = "webapp.env"

// KnownKeys lists the rendered keys in output order.
var KnownKeys = []string{
	KeyAPIBaseURL,
	KeyAPIKey,
	KeyRefreshInterval,
	KeyDebugMode,
}

var defaults = map[string]string{
	KeyAPIBaseURL:      "http://localhost:5678/api/v1",
	KeyAPIKey:          "your-api-key-here",
	KeyRefreshInterval: "30000",
	KeyDebugMode:       "false",
}

// Configuration maps environment file keys to their raw values.
type Configuration map[string]string

// Defaults returns a fresh copy of the mapping used when the environment
// file does not exist.
func Defaults() Configuration {
	cfg := make(Configuration, len(defaults))
	for k, v := range defaults {
		cfg[k] = v
	}
	return cfg
}

// Get returns the value stored for key. A key that is present wins even when
// its value is empty; an absent known key falls back to its default and an
// absent unknown key yields "".
func (c Configuration) Get(key string) string {
	if v, ok := c[key]; ok {
		return v
	}
	return defaults[key]
}
