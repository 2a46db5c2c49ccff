package generator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPickWeightedFollowsWeights(t *testing.T) {
	s := NewRandSampler(11)
	items := []string{"pending", "approved", "rejected"}
	weights := []float64{0.2, 0.7, 0.1}

	counts := make(map[string]int)
	const draws = 20000
	for i := 0; i < draws; i++ {
		counts[PickWeighted(s, items, weights)]++
	}
	for i, item := range items {
		share := float64(counts[item]) / draws
		assert.LessOrEqual(t, math.Abs(share-weights[i]), 0.02, item)
	}
}

func TestPickWeightedSkipsZeroWeights(t *testing.T) {
	s := NewRandSampler(3)
	for i := 0; i < 100; i++ {
		assert.Equal(t, "b", PickWeighted(s, []string{"a", "b", "c"}, []float64{0, 1, 0}))
	}
}

func TestIntRangeInclusive(t *testing.T) {
	s := NewRandSampler(5)
	seen := make(map[int]bool)
	for i := 0; i < 500; i++ {
		v := IntRange(s, 0, 5)
		assert.GreaterOrEqual(t, v, 0)
		assert.LessOrEqual(t, v, 5)
		seen[v] = true
	}
	assert.Len(t, seen, 6)
	assert.Equal(t, 3, IntRange(s, 3, 3))
}

func TestSamplerIsDeterministic(t *testing.T) {
	a, b := NewRandSampler(77), NewRandSampler(77)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}
