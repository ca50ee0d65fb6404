package domain_util

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopKMatchesSortedPrefix(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	greater := func(a, b int) bool { return a > b }

	for round := 0; round < 50; round++ {
		n := r.Intn(100)
		k := r.Intn(20)
		values := r.Perm(n)

		top := NewTopK[int](k, greater)
		for _, v := range values {
			top.Offer(v)
		}

		expected := make([]int, len(values))
		copy(expected, values)
		sort.Sort(sort.Reverse(sort.IntSlice(expected)))
		if len(expected) > k {
			expected = expected[:k]
		}
		assert.Equal(t, expected, top.Sorted(), "n=%d k=%d", n, k)
	}
}

func TestTopKZeroCapacity(t *testing.T) {
	top := NewTopK[int](0, func(a, b int) bool { return a > b })
	assert.False(t, top.Offer(1))
	assert.Equal(t, 0, top.Len())
	assert.Empty(t, top.Sorted())
}

func TestTopKRejectsWorse(t *testing.T) {
	top := NewTopK[int](2, func(a, b int) bool { return a > b })
	assert.True(t, top.Offer(5))
	assert.True(t, top.Offer(7))
	assert.False(t, top.Offer(3))
	assert.True(t, top.Offer(6))
	assert.Equal(t, []int{7, 6}, top.Sorted())
}
