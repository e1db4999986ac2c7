package algo

import (
	"math/rand/v2"
	"time"
)

// Shuffler permutes n elements in place through swap.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// NewSeededShuffler returns a reproducible shuffler for the given seed.
// A zero seed draws one from the clock.
func NewSeededShuffler(seed uint64) Shuffler {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Permutation returns the first n indices of a shuffled [0, size).
// n is clamped to [0, size].
func Permutation(s Shuffler, size, n int) []int {
	n = max(0, min(n, size))
	idx := make([]int, size)
	for i := range idx {
		idx[i] = i
	}
	s.Shuffle(size, func(i, j int) {
		idx[i], idx[j] = idx[j], idx[i]
	})
	return idx[:n]
}
