// Package config loads the application configuration from a YAML file
// with environment overrides.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type ExportConfig struct {
	Dir string `mapstructure:"dir"`
}

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	Export   ExportConfig   `mapstructure:"export"`
}

// Load reads configuration from the given file path (e.g. "munim.yaml").
// If path is empty, it looks for "munim.yaml" in the current working
// directory and falls back to defaults when no file exists. A path
// given explicitly must exist.
//
// Environment variables prefixed MUNIM override file values, with dots
// mapped to underscores: MUNIM_DATABASE_PATH=ledger.db.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("database.path", "munim.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("export.dir", ".")

	if path == "" {
		v.SetConfigName("munim")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	} else {
		v.SetConfigFile(path)
	}

	v.SetEnvPrefix("MUNIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
