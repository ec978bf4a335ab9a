package config

import (
	"fmt"
	"github.com/spf13/viper"
)

type ComparisonConfig struct {
	SavedExpirationDays int    `mapstructure:"saved_expiration_days"`
	MetricsAddress      string `mapstructure:"metrics_address"`
}

func (config ComparisonConfig) validate() error {
	if config.SavedExpirationDays <= 0 {
		return fmt.Errorf("saved_expiration_days must be greater than zero")
	}
	return nil
}

func (config ComparisonConfig) bindEnvironmentVariables(v *viper.Viper) error {
	if err := v.BindEnv("comparison.saved_expiration_days", "SAVED_COMPARISON_EXPIRATION_DAYS"); err != nil {
		return err
	}
	return v.BindEnv("comparison.metrics_address", "METRICS_ADDRESS")
}
