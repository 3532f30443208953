package webenv

import "errors"

var (
	// ErrReadEnvFile is returned when the environment file exists but
	// cannot be read.
	ErrReadEnvFile = errors.New("error reading environment file")
)
