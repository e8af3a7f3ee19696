// SPDX-License-Identifier: MIT

package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/matrixlab/log"
)

// EnvPrefix is the prefix of environment overrides, e.g. MATRIXLAB_SOLVER=lu.
const EnvPrefix = "MATRIXLAB"

// Config keys.
const (
	KeyLogLevel           = "log_level"
	KeySolver             = "solver"
	KeyMaxDeterminantSize = "max_determinant_size"
	KeySeed               = "seed"
)

// SetDefaults sets the default values for the viper config.
func SetDefaults(v *viper.Viper) {
	keys := map[string]interface{}{
		KeyLogLevel:           "info",
		KeySolver:             SolverCofactor,
		KeyMaxDeterminantSize: 8,
		KeySeed:               0,
	}

	for k, value := range keys {
		v.SetDefault(k, value)
	}
}

// NewViper returns a viper instance with defaults and environment binding.
// When path is non-empty the file is registered as the config file.
func NewViper(path string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	}

	return v
}

// Read reads the config file at path (optional) merged with the environment.
func Read(path string) (*Config, error) {
	return ReadFrom(NewViper(path))
}

// ReadFrom unmarshals and validates the configuration held by v. A config file
// registered on v is read first.
func ReadFrom(v *viper.Viper) (*Config, error) {
	if v.ConfigFileUsed() != "" {
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		log.Debugf("Unmarshaling Config failed. %v", err)
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Default returns the validated default configuration.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		panic(err)
	}

	return c
}
