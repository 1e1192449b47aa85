package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// RestConfig aggregates all settings required by the REST application
type RestConfig struct {
	Logger   LoggerSettings   `mapstructure:"logger"`
	Database DatabaseSettings `mapstructure:"database"`
	Dataset  DatasetSettings  `mapstructure:"dataset"`
	Server   ServerSettings   `mapstructure:"server"`
}

// InitializeRestConfig loads the REST application configuration from a YAML file.
// Values can be overridden through environment variables prefixed with LIVESKETCH,
// e.g. LIVESKETCH_DATABASE_DSN.
func InitializeRestConfig(configPath string) (*RestConfig, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetEnvPrefix("LIVESKETCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Validate checks every settings section of the RestConfig
func (c *RestConfig) Validate() error {
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Dataset.Validate(); err != nil {
		return err
	}
	return c.Server.Validate()
}
