// Package config provides configuration management and dependency injection for the applicant corrector.
// It loads the INI properties file and sets up the DI container.
package config

import (
	"fmt"
	"time"

	"applicant-corrector/domain/errors"
	"github.com/spf13/viper"
)

// DefaultConfigPath is where the corrector looks for its properties file
// when no --config flag is given.
const DefaultConfigPath = "properties/config.properties"

// DefaultDatasetPath is the dataset location used when neither the --source
// flag nor the [Source] csv_path key is set.
const DefaultDatasetPath = "source/2025_occupation_fix.csv"

// Config represents the application configuration.
type Config struct {
	Authorization AuthorizationConfig `mapstructure:"authorization"`
	API           APIConfig           `mapstructure:"api"`
	Source        SourceConfig        `mapstructure:"source"`
	Log           LogConfig           `mapstructure:"log"`
}

// AuthorizationConfig holds the static bearer credential.
type AuthorizationConfig struct {
	JWTToken string `mapstructure:"jwt_token"`
}

// APIConfig holds the CMS endpoint settings.
type APIConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// SourceConfig holds the input dataset settings.
type SourceConfig struct {
	CSVPath string `mapstructure:"csv_path"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
	Dir   string `mapstructure:"dir"`
}

// Timeout returns the outbound HTTP timeout. Zero disables the client
// timeout.
func (c *APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// LoadConfig loads configuration from an INI properties file. The credential
// and base URL are required and have no default or environment fallback; a
// missing file, section, or key aborts the run before any HTTP is issued.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults for the optional keys.
	v.SetDefault("api.timeout_seconds", 30)
	v.SetDefault("source.csv_path", DefaultDatasetPath)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.dir", "log")

	if configPath == "" {
		configPath = DefaultConfigPath
	}
	v.SetConfigFile(configPath)
	v.SetConfigType("ini")

	// Read config file.
	if err := v.ReadInConfig(); err != nil {
		return nil, &errors.ConfigError{Path: configPath, Err: err}
	}

	// Required keys are checked against the file contents, not the merged
	// settings, so a missing section and a missing key report differently.
	if err := validateRequired(v); err != nil {
		return nil, &errors.ConfigError{Path: configPath, Err: err}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, &errors.ConfigError{Path: configPath, Err: fmt.Errorf("failed to unmarshal config: %w", err)}
	}

	// Validate configuration.
	if err := config.Validate(); err != nil {
		return nil, &errors.ConfigError{Path: configPath, Err: err}
	}

	return &config, nil
}

// validateRequired enforces presence of the credential and base URL keys.
func validateRequired(v *viper.Viper) error {
	if !v.InConfig("authorization") {
		return fmt.Errorf("Authorization section not found in config file")
	}

	if !v.InConfig("authorization.jwt_token") {
		return fmt.Errorf("jwt_token key not found in Authorization section")
	}

	if !v.InConfig("api") {
		return fmt.Errorf("API section not found in config file")
	}

	if !v.InConfig("api.base_url") {
		return fmt.Errorf("base_url key not found in API section")
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.API.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout_seconds cannot be negative")
	}

	return nil
}
