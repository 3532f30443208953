// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoStaticRoot is returned by NewHandlers when no static root
	// directory is configured.
	errNoStaticRoot = errors.New("no static root directory configured")

	// errNoLoader is returned by NewHandlers when no webapp environment
	// loader is supplied.
	errNoLoader = errors.New("no webapp environment loader")
)
