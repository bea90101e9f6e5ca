// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// platformEnv holds variables that hosting platforms set without any
// application prefix.
type platformEnv struct {
	Port int `env:"PORT"`
}

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types; the unprefixed PORT
// variable is read separately into Server.Port.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	platform, err := env.ParseAs[platformEnv]()
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	if platform.Port != 0 {
		cfg.Server.Port = platform.Port
	}

	return nil
}
