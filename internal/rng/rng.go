package rng

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_stream.go github.com/courtside/hoopgen/internal/rng Stream

// Stream is the single source of randomness for one simulation run.
// Every random decision in a run is drawn from its stream, which keeps
// runs independent of each other and reproducible under a fixed seed.
type Stream interface {
	// Intn returns a uniform int in [0, n). Panics if n <= 0.
	Intn(n int) int

	// Float64 returns a uniform float64 in [0.0, 1.0).
	Float64() float64

	// Shuffle pseudo-randomizes the order of n elements via swap.
	Shuffle(n int, swap func(i, j int))
}

// Config for a seeded source
type Config struct {
	// Optional seed for reproducible runs
	Seed int64
}

// Source is a seeded Stream backed by math/rand.
type Source struct {
	random *rand.Rand
}

// New creates a new seeded source. A zero seed falls back to the wall
// clock.
func New(cfg *Config) *Source {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &Source{
		random: random,
	}
}

// Intn returns a uniform int in [0, n).
func (s *Source) Intn(n int) int {
	return s.random.Intn(n)
}

// Float64 returns a uniform float64 in [0.0, 1.0).
func (s *Source) Float64() float64 {
	return s.random.Float64()
}

// Shuffle pseudo-randomizes the order of n elements via swap.
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	s.random.Shuffle(n, swap)
}

// Pick returns a uniformly drawn element of options, or the empty
// string when there is nothing to pick.
func Pick(s Stream, options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[s.Intn(len(options))]
}

// WeightedIndex draws an index by cumulative scan over non-negative
// weights. Zero-weight entries are never chosen. Returns -1 when no
// weight is positive.
func WeightedIndex(s Stream, weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return -1
	}
	roll := s.Intn(total)
	cumulative := 0
	for i, w := range weights {
		cumulative += w
		if roll < cumulative {
			return i
		}
	}
	return len(weights) - 1
}

// Chance reports a bernoulli draw with probability p. A draw is
// consumed regardless of p.
func Chance(s Stream, p float64) bool {
	return s.Float64() < p
}

// Sample returns k elements of pool drawn without replacement. When k
// exceeds the pool size the whole pool is returned, in drawn order.
func Sample(s Stream, pool []string, k int) []string {
	if k < 0 {
		k = 0
	}
	if k > len(pool) {
		k = len(pool)
	}
	drawn := append([]string(nil), pool...)
	s.Shuffle(len(drawn), func(i, j int) {
		drawn[i], drawn[j] = drawn[j], drawn[i]
	})
	return drawn[:k]
}
