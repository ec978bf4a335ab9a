package config

import (
	"errors"
	"fmt"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"os"
)

type Config struct {
	Logger     LoggerConfig     `mapstructure:"logger"`
	AI         AIConfig         `mapstructure:"ai"`
	DB         DBConfig         `mapstructure:"db"`
	Comparison ComparisonConfig `mapstructure:"comparison"`
}

var configFile = "./configs/config.yaml"

func Get() *Config {

	if value, ok := os.LookupEnv("CONFIG_PATH"); ok {
		configFile = value
	}

	config, err := Load(configFile)
	if err != nil {
		log.Fatal(err)
	}

	return config
}

func Load(file string) (*Config, error) {

	v := viper.New()
	v.SetConfigFile(file)

	v.SetDefault("logger.log_level", string(LevelInfo))
	v.SetDefault("logger.output_file", "./logs/errors.log")
	v.SetDefault("ai.model", "gemini-1.5-flash")
	v.SetDefault("comparison.saved_expiration_days", 30)
	v.SetDefault("comparison.metrics_address", ":8080")

	if err := bindEnvironmentVariables(v); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", file, err)
	}

	config := Config{}
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func bindEnvironmentVariables(v *viper.Viper) error {
	var errs []error

	ai, db, logger, comparison := AIConfig{}, DBConfig{}, LoggerConfig{}, ComparisonConfig{}

	if err := ai.bindEnvironmentVariables(v); err != nil {
		errs = append(errs, fmt.Errorf("AIConfig: %w", err))
	}

	if err := db.bindEnvironmentVariables(v); err != nil {
		errs = append(errs, fmt.Errorf("DBConfig: %w", err))
	}

	if err := logger.bindEnvironmentVariables(v); err != nil {
		errs = append(errs, fmt.Errorf("LoggerConfig: %w", err))
	}

	if err := comparison.bindEnvironmentVariables(v); err != nil {
		errs = append(errs, fmt.Errorf("ComparisonConfig: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
	}

	return nil
}

func (config Config) validate() error {
	var errs []error

	if err := config.DB.validate(); err != nil {
		errs = append(errs, fmt.Errorf("DBConfig: %w", err))
	}

	if err := config.AI.validate(); err != nil {
		errs = append(errs, fmt.Errorf("AIConfig: %w", err))
	}

	if err := config.Logger.validate(); err != nil {
		errs = append(errs, fmt.Errorf("LoggerConfig: %w", err))
	}

	if err := config.Comparison.validate(); err != nil {
		errs = append(errs, fmt.Errorf("ComparisonConfig: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
	}

	return nil
}
