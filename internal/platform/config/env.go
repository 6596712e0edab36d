// Package config loads process configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Parse builds a T from environment variables declared by its `env` struct
// tags, applying `envDefault` values for variables that are unset.
func Parse[T any]() (T, error) {
	cfg, err := env.ParseAs[T]()
	if err != nil {
		var zero T
		return zero, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
