package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. EXPENSE_DATA_FILE.
const EnvPrefix = "EXPENSE"

// Config represents the application configuration
type Config struct {
	DataFile       string `mapstructure:"data_file"`       // .csv or .db
	CurrencySymbol string `mapstructure:"currency_symbol"` // display only
	LogLevel       string `mapstructure:"log_level"`
	Color          bool   `mapstructure:"color"`
	Autoload       bool   `mapstructure:"autoload"` // load DataFile when the shell starts
	Autosave       bool   `mapstructure:"autosave"` // save DataFile on exit
}

// LoadConfig loads configuration from file and environment variables.
// An empty configPath means defaults and environment only.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("data_file", "expenses.csv")
	v.SetDefault("currency_symbol", "$")
	v.SetDefault("log_level", "info")
	v.SetDefault("color", true)
	v.SetDefault("autoload", false)
	v.SetDefault("autosave", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks values that would otherwise fail later at runtime.
func (c *Config) Validate() error {
	switch strings.ToLower(filepath.Ext(c.DataFile)) {
	case ".csv", ".db":
	default:
		return fmt.Errorf("invalid data_file %q: must end in .csv or .db", c.DataFile)
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}

	return nil
}
