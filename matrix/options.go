// SPDX-License-Identifier: MIT

// Package matrix: functional options for the stochastic factory (Random).
//
// Contract (strict):
//   - Options are functional (type RandomOption func(*randomConfig)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs (programmer error).
//     Operations themselves MUST NOT panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.

package matrix

import (
	"math/rand"
	"time"
)

// RandomOption customizes the Random factory.
// Complexity: applying N options costs O(N) time, O(1) space.
type RandomOption func(*randomConfig)

// randomConfig is the resolved configuration of a Random call.
type randomConfig struct {
	rng *rand.Rand // never nil after newRandomConfig
}

// WithRand provides an explicit RNG. The caller owns the seed policy and the
// stream may be shared across calls (draws advance the shared state).
// Panics on nil.
func WithRand(r *rand.Rand) RandomOption {
	if r == nil {
		panic("matrix: WithRand(nil)")
	}
	return func(c *randomConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) RandomOption {
	return func(c *randomConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// newRandomConfig applies opts in order; later options win.
// Without any RNG option the source is seeded from the wall clock.
func newRandomConfig(opts ...RandomOption) randomConfig {
	var cfg randomConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return cfg
}
