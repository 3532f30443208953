// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package webenv

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/MKhiriev/webapp-dev-server/internal/logger"
)

//go:generate mockgen -source=loader.go -destination=../mock/loader_mock.go -package=mock

// Loader produces the current [Configuration]. Implementations must be safe
// for concurrent use because the HTTP server calls Load from many goroutines.
type Loader interface {
	Load(ctx context.Context) (Configuration, error)
}

// FileLoader reads a [Configuration] from a single environment file on every
// call to Load. It keeps no state between calls.
type FileLoader struct {
	path   string
	logger *logger.Logger
}

// NewFileLoader returns a [FileLoader] bound to path.
func NewFileLoader(path string, logger *logger.Logger) *FileLoader {
	return &FileLoader{
		path:   path,
		logger: logger,
	}
}

// Path returns the environment file path the loader reads.
func (l *FileLoader) Path() string {
	return l.path
}

// Load reads and parses the environment file.
//
// A missing file is not an error: a warning is logged and [Defaults] is
// returned. Any other failure to read the file is wrapped in [ErrReadEnvFile].
func (l *FileLoader) Load(ctx context.Context) (Configuration, error) {
	f, err := os.Open(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		l.logger.Warn().Str("path", l.path).Msg("environment file not found, using default values")
		return Defaults(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrReadEnvFile, l.path, err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrReadEnvFile, l.path, err)
	}

	return cfg, nil
}

// Parse reads KEY=VALUE lines from r.
//
// Blank lines and lines starting with '#' are skipped. Every other line is
// split on the first '=' and both sides are trimmed; lines without '=' are
// ignored. Values are taken verbatim, quotes included.
func Parse(r io.Reader) (Configuration, error) {
	cfg := make(Configuration)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}

		cfg[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return cfg, nil
}
