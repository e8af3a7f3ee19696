// SPDX-License-Identifier: MIT

// Package config holds the runtime settings of the matrixlab tools: log level,
// determinant solver, the size guard for factorial-time operations and the
// random seed. Values come from defaults, an optional file and MATRIXLAB_*
// environment variables, in increasing priority, and are validated before use.
package config

import (
	"errors"
	"fmt"

	unilogger "github.com/neuronlabs/uni-logger"
	"gopkg.in/go-playground/validator.v9"

	"github.com/katalvlaran/matrixlab/log"
	"github.com/katalvlaran/matrixlab/matrix"
)

// Solver names accepted by Config.Solver.
const (
	SolverCofactor = "cofactor"
	SolverLU       = "lu"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the validated runtime configuration.
type Config struct {
	// LogLevel is a log.ParseLevel name.
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug3 debug2 debug info warn warning error critical"`
	// Solver selects the determinant algorithm for det and inverse.
	Solver string `mapstructure:"solver" validate:"required,oneof=cofactor lu"`
	// MaxDeterminantSize is the largest n accepted by det/inverse in worksheets.
	MaxDeterminantSize int `mapstructure:"max_determinant_size" validate:"min=1,max=12"`
	// Seed for random matrices; 0 means time-seeded.
	Seed int64 `mapstructure:"seed"`
}

var validate = validator.New()

// Validate checks c against its struct tags.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: field '%s' failed on '%s' (value: %v)", ErrInvalidConfig, fe.Field(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// DeterminantSolver returns the matrix.DeterminantSolver named by c.Solver.
func (c *Config) DeterminantSolver() matrix.DeterminantSolver {
	if c.Solver == SolverLU {
		return matrix.LUSolver{}
	}

	return matrix.CofactorSolver{}
}

// Level returns the parsed log level.
func (c *Config) Level() (unilogger.Level, error) {
	return log.ParseLevel(c.LogLevel)
}
