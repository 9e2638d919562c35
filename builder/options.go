// SPDX-License-Identifier: MIT
// Package: bfpath/builder
//
// options.go - functional options and the resolved builderConfig.
//
// Option constructors panic on meaningless inputs (nil functions); the
// constructors themselves never panic.
//
// Deterministic defaults:
//   - idFn     = DefaultIDFn ("0","1","2",...)
//   - rng      = nil (stochastic constructors return ErrNeedRandSource)
//   - weightFn = DefaultWeightFn (constant 1)

package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig aggregates all knobs used by constructors.
type builderConfig struct {
	idFn     func(int) string
	rng      *rand.Rand
	weightFn WeightFn
}

// BuilderOption customizes a builderConfig before construction.
type BuilderOption func(*builderConfig)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// WithIDScheme sets the vertex ID generator idx → string. Panics on nil.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithIDPrefix labels vertices prefix+idx, e.g. WithIDPrefix("v") → "v0","v1",...
func WithIDPrefix(prefix string) BuilderOption {
	return WithIDScheme(func(idx int) string {
		return prefix + strconv.Itoa(idx)
	})
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new seeded *rand.Rand, making stochastic builders reproducible.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}
