package engine

import "math/rand"

// RandSource is the only randomness the engine needs.
// Tests supply scripted sequences; the game uses a seeded math/rand source.
type RandSource interface {
	// IntN returns a value in [0, n).
	IntN(n int) int
}

type mathRand struct {
	rng *rand.Rand
}

func (m mathRand) IntN(n int) int {
	return m.rng.Intn(n)
}

// NewRandSource returns a RandSource backed by math/rand with the given seed.
func NewRandSource(seed int64) RandSource {
	return mathRand{rng: rand.New(rand.NewSource(seed))}
}
