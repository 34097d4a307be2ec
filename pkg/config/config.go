// Package config provides shared configuration functionality using Viper
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type ServeConfig struct {
	Port       int    `mapstructure:"port"`
	Hostname   string `mapstructure:"hostname"`
	BaseFolder string `mapstructure:"base_folder"`
}

// Config holds common configuration values shared across all services
type Config struct {
	// Basic configuration
	Environment string `mapstructure:"environment"`
	LogLevel    string `mapstructure:"log_level"`

	Serve ServeConfig `mapstructure:"serve"`
}

func setServeDefaults(v *viper.Viper) {
	v.SetDefault("serve.port", 8080)
	v.SetDefault("serve.hostname", "")
	v.SetDefault("serve.base_folder", "")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")
	v.SetDefault("log_level", "info")

	setServeDefaults(v)
}

func ConfigureViper() {
	// We can pull config from env variables with a `FITS_` prefix if we want
	viper.SetEnvPrefix("FITS")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.SetConfigName("config")
	viper.AddConfigPath(".")
}

func init() {
	ConfigureViper()
}

// Load loads shared configuration using Viper with defaults
func Load(configPath string, overrideStr string) *Config {
	setDefaults(viper.GetViper())

	// If a custom config path is provided, use it
	if configPath != "" {
		viper.SetConfigFile(configPath)
	}

	err := viper.ReadInConfig()
	if err != nil {
		// Ignore file not found errors (config is optional)
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			slog.Error("Failed to read config file", "error", err, "config_file", viper.ConfigFileUsed())
			os.Exit(1)
		}
		slog.Info("No config file found, using defaults")
	} else {
		slog.Info("Loaded config file", "path", viper.ConfigFileUsed())
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		panic(fmt.Errorf("unable to unmarshal config: %w", err))
	}

	// Process override flag if provided (after loading config to ensure highest precedence)
	if overrideStr != "" {
		// Split into key-value pairs
		pairs := strings.Split(overrideStr, ",")
		for _, pair := range pairs {
			// Split into key and value
			parts := strings.SplitN(pair, ":", 2)
			if len(parts) != 2 {
				slog.Error("Invalid override format", "pair", pair, "expected", "key:value")
				os.Exit(1)
			}
			key := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])
			viper.Set(key, value)
		}
		// Reload config struct to pick up overrides
		if err := viper.Unmarshal(&cfg); err != nil {
			slog.Error("Failed to apply overrides to config", "error", err)
			os.Exit(1)
		}
	}

	return &cfg
}

// BindFlags binds pflags to viper keys. bindFlags is a map of pflag names to viper keys.
func BindFlags(bindFlags map[string]string) {
	for flagName, viperKey := range bindFlags {
		if err := viper.BindPFlag(viperKey, pflag.Lookup(flagName)); err != nil {
			slog.Error("Failed to bind flag", "flag", flagName, "error", err)
			os.Exit(1)
		}
	}
}
