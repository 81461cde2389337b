package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvOverrides are settings taken from the environment. Unset fields defer
// to the stored preferences.
type EnvOverrides struct {
	BaseDir              string `env:"HATS_BASE_DIR"`
	ParseContributorMeta *bool  `env:"HATS_CONTRIBUTOR_META"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv reads the environment overrides into the settings
func (s *Settings) LoadEnv() error {
	var overrides EnvOverrides
	if err := ParseEnv(&overrides); err != nil {
		return err
	}
	s.env = overrides
	return nil
}
