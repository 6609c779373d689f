// Package config loads strand configuration from file, environment, and
// defaults via viper. Precedence: explicit flags (handled by the CLI) >
// environment (STRAND_*) > config file > defaults.
package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// Config holds the runtime configuration for strand.
type Config struct {
	// DBPath is the SQLite database file path.
	DBPath string `mapstructure:"db_path"`

	// LogLevel is the minimum log level: debug, info, warn, or error.
	LogLevel string `mapstructure:"log_level"`

	// LogJSON selects JSON log encoding instead of console output.
	LogJSON bool `mapstructure:"log_json"`
}

// Defaults applied when neither file nor environment provides a value.
const (
	DefaultDBPath   = "strand.db"
	DefaultLogLevel = "info"
)

// Load reads configuration. When path is empty, a strand.yaml in the
// working directory is used if present; a missing file is not an error
// (defaults and environment still apply). An explicit path that cannot be
// read is an error.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("STRAND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "read config file %s", path)
		}
	} else {
		v.SetConfigName("strand")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, errors.Wrap(err, "read config file")
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "unmarshal config")
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("db_path", DefaultDBPath)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("log_json", false)
}
