// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Fallback values applied by applyDefaults when no configuration source
// provides the field.
const (
	DefaultHTTPAddress    = ":8080"
	DefaultTokenIssuer    = "eye-test-server"
	DefaultTokenDuration  = time.Hour
	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxOpenConns   = 10
)

// applyDefaults fills unset fields of the merged [StructuredConfig] with
// their fallback values. Secrets have no defaults: the token sign key and
// the database DSN must always come from a configuration source.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if len(cfg.Server.CORSAllowedOrigins) == 0 {
		cfg.Server.CORSAllowedOrigins = []string{"*"}
	}
	if cfg.Auth.TokenIssuer == "" {
		cfg.Auth.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.Auth.TokenDuration == 0 {
		cfg.Auth.TokenDuration = DefaultTokenDuration
	}
	if cfg.Storage.DB.MaxOpenConns == 0 {
		cfg.Storage.DB.MaxOpenConns = DefaultMaxOpenConns
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.TokenSignKey == "" {
		return ErrNoTokenSignKey
	}
	if cfg.Storage.DB.DSN == "" {
		return ErrNoDatabaseDSN
	}

	return nil
}
