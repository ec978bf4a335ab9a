package config

import (
	"errors"
	"fmt"
	"github.com/spf13/viper"
	"strings"
)

type AIConfig struct {
	Key                  string  `mapstructure:"key"`
	Model                string  `mapstructure:"model"`
	MaxRequestsPerMinute float32 `mapstructure:"max_requests_per_minute"`
	MaxRequestsPerDay    float32 `mapstructure:"max_requests_per_day"`
}

func (config AIConfig) validate() error {

	var missingFields []string

	if config.Key == "" {
		missingFields = append(missingFields, "key")
	}

	if config.Model == "" {
		missingFields = append(missingFields, "model")
	}

	if len(missingFields) > 0 {
		return fmt.Errorf("missing required variables: %s", strings.Join(missingFields, ", "))
	}

	if config.MaxRequestsPerMinute < 0 || config.MaxRequestsPerDay < 0 {
		return fmt.Errorf("rate limits must not be negative")
	}

	return nil
}

func (config AIConfig) bindEnvironmentVariables(v *viper.Viper) error {
	var errs []error
	if err := v.BindEnv("ai.key", "AI_KEY"); err != nil {
		errs = append(errs, err)
	}

	if err := v.BindEnv("ai.model", "AI_MODEL"); err != nil {
		errs = append(errs, err)
	}

	if err := v.BindEnv("ai.max_requests_per_minute", "AI_MAX_REQUESTS_PER_MINUTE"); err != nil {
		errs = append(errs, err)
	}

	if err := v.BindEnv("ai.max_requests_per_day", "AI_MAX_REQUESTS_PER_DAY"); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
