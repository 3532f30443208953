package config

import "errors"

var (
	// ErrDotenvFile indicates that the server's dotenv file exists but could
	// not be parsed.
	ErrDotenvFile = errors.New("unable to load environment file")
	// ErrInvalidServerConfigs indicates an unusable listening port or
	// shutdown timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStaticConfigs indicates a static root that does not exist or
	// is not a directory.
	ErrInvalidStaticConfigs = errors.New("invalid static configuration")
)
