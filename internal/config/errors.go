package config

import "errors"

var (
	// ErrNoTokenSignKey is returned by validation when no configuration
	// source provides the JWT signing secret. The server refuses to start
	// with an empty or hard-coded key.
	ErrNoTokenSignKey = errors.New("token sign key is not configured")

	// ErrNoDatabaseDSN is returned by validation when no configuration
	// source provides the database connection string.
	ErrNoDatabaseDSN = errors.New("database DSN is not configured")
)
