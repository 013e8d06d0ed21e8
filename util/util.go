package util

import (
	"fmt"
	"math/rand"
)

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// GenerateKeys generates num distinct string keys using the given RNG.
// Keys mix a random component with a sequence number so that runs are
// reproducible but hash distributions stay realistic.
func (r *RNG) GenerateKeys(num int) []string {
	keys := make([]string, num)
	for i := range keys {
		keys[i] = fmt.Sprintf("%08x-%d", r.rand.Uint32(), i)
	}
	return keys
}

// GenerateScores generates num random scores in [0, max).
func (r *RNG) GenerateScores(num int, max int64) []int64 {
	scores := make([]int64, num)
	for i := range scores {
		scores[i] = r.rand.Int63n(max)
	}
	return scores
}

// Intn returns a random int in [0, n).
func (r *RNG) Intn(n int) int {
	return r.rand.Intn(n)
}

// Shuffle pseudo-randomizes the order of n elements via swap.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	r.rand.Shuffle(n, swap)
}
