package miner

import mrand "math/rand"

// seededGenerator wraps a per-instance math/rand source. It exists purely
// so the zero-value-friendly Miner struct can hold a named type rather
// than an anonymous *mrand.Rand, keeping the constructor explicit about
// the per-instance seeding requirement (spec §9).
type seededGenerator struct {
	rand *mrand.Rand
}

func newSeededGenerator() *seededGenerator {
	return &seededGenerator{rand: seededRand()}
}
