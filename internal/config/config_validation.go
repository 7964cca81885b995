// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// Supported database/sql driver names.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// Bounds of the bcrypt work factor accepted by the service. The upper bound
// keeps a single hash well under a second on commodity hardware.
const (
	MinPasswordHashCost = 4
	MaxPasswordHashCost = 16
)

// validate checks that the final merged [StructuredConfig] satisfies all
// service invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: empty token sign key", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration < 0 {
		return fmt.Errorf("%w: negative token duration", ErrInvalidAppConfigs)
	}
	if cfg.App.PasswordHashCost < MinPasswordHashCost || cfg.App.PasswordHashCost > MaxPasswordHashCost {
		return fmt.Errorf("%w: password hash cost must be within %d..%d",
			ErrInvalidAppConfigs, MinPasswordHashCost, MaxPasswordHashCost)
	}
	if cfg.App.PasswordHashConcurrency < 1 {
		return fmt.Errorf("%w: password hash concurrency must be positive", ErrInvalidAppConfigs)
	}
	if cfg.App.InitialBalance < 0 {
		return fmt.Errorf("%w: negative initial balance", ErrInvalidAppConfigs)
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty address", ErrInvalidServerConfigs)
	}
	if cfg.Server.RateLimitRequests < 1 || cfg.Server.RateLimitWindow <= 0 {
		return fmt.Errorf("%w: rate limit quota and window must be positive", ErrInvalidServerConfigs)
	}

	if _, err := url.ParseRequestURI(cfg.Adapter.PokeAPIURL); err != nil {
		return fmt.Errorf("%w: bad PokeAPI URL: %w", ErrInvalidAdapterConfigs, err)
	}
	if cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.RetryCount < 0 {
		return fmt.Errorf("%w: timeout must be positive and retry count non-negative", ErrInvalidAdapterConfigs)
	}

	return nil
}
