package generator

import "math/rand"

// Sampler is the source of every random draw the generators make.
type Sampler interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
	// Float64 returns a value in [0, 1).
	Float64() float64
}

// NewRandSampler returns a math/rand backed sampler seeded with seed.
func NewRandSampler(seed int64) Sampler {
	return rand.New(rand.NewSource(seed))
}

// Pick draws one element uniformly.
func Pick[T any](s Sampler, items []T) T {
	return items[s.Intn(len(items))]
}

// IntRange draws uniformly from [lo, hi].
func IntRange(s Sampler, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.Intn(hi-lo+1)
}

// PickWeighted draws one element with probability proportional to its weight.
func PickWeighted[T any](s Sampler, items []T, weights []float64) T {
	var total float64
	for _, w := range weights {
		total += w
	}
	target := s.Float64() * total
	for i, w := range weights {
		if target < w {
			return items[i]
		}
		target -= w
	}
	// Float rounding can leave target just past the last bucket.
	for i := len(weights) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return items[i]
		}
	}
	return items[len(items)-1]
}
