// Package gridcells - functional options for Random.
//
// Option constructors validate and panic on meaningless values; the generators
// themselves never panic and only return sentinel errors.
package gridcells

import "math/rand"

// Default reward range of Random (inclusive).
const (
	DefaultMinReward = 0
	DefaultMaxReward = 30
)

// Option customizes a generator by mutating its config before generation.
type Option func(*config)

// config aggregates the generator knobs. Passed by value to generators.
type config struct {
	rng       *rand.Rand
	minReward int
	maxReward int
}

// newConfig applies opts in order (last wins) over deterministic defaults.
// A nil rng after all options resolves to the default seeded stream.
func newConfig(opts ...Option) config {
	cfg := config{
		minReward: DefaultMinReward,
		maxReward: DefaultMaxReward,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}

	return cfg
}

// WithSeed draws rewards from a new source seeded with seed (0 ⇒ default seed).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand draws rewards from r. Panics on nil.
// r is not goroutine-safe; do not share it across concurrent generators.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("gridcells: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithRewardRange sets the inclusive reward range [lo, hi].
// Panics if lo < 0 or lo > hi.
func WithRewardRange(lo, hi int) Option {
	if lo < 0 || lo > hi {
		panic("gridcells: WithRewardRange(lo<0 || lo>hi)")
	}
	return func(c *config) {
		c.minReward, c.maxReward = lo, hi
	}
}
