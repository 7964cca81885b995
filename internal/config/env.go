// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from environ, a list of "KEY=value" pairs in the form
// returned by os.Environ. Fields are mapped via their `env` and `envPrefix`
// tags, so SERVER_ADDRESS lands in cfg.Server.HTTPAddress.
func parseEnv(cfg *StructuredConfig, environ []string) error {
	if err := env.ParseWithOptions(cfg, env.Options{Environment: env.ToMap(environ)}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
