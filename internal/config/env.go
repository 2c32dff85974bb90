package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"

	"github.com/verte-zerg/typetest/internal/model"
)

// ApplyEnv overrides cfg with any TYPETEST_* variables that are set.
// Unset variables leave the existing values untouched.
func ApplyEnv(cfg *model.Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}
	return nil
}
