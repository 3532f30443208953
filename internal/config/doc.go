// Package config provides configuration loading, merging, and validation
// facilities for the webapp dev server process.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables, optionally seeded from a dotenv file
//  2. Command-line flags
//  3. JSON config file
//
// Defaults are applied to whatever is still unset after merging. The main
// entry point is [GetStructuredConfig].
//
// This package configures the server itself. The front end's runtime values
// (webapp.env) are handled by package webenv.
package config
