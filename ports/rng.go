package ports

import (
	"math/rand"
	"time"
)

// RNG abstracts random source creation so generation strategies can
// run deterministically under test.
type RNG interface {
	// Stream returns an independent random source for a named
	// operation. The same name and seed always produce the same
	// sequence.
	Stream(name string, seed int64) *rand.Rand
}

// SystemRNG is the production source: time-seeded unless an explicit
// seed is given.
type SystemRNG struct{}

// Stream implements RNG. A zero seed picks a time-based one.
func (SystemRNG) Stream(name string, seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	mix := seed
	for _, r := range name {
		mix = mix*31 + int64(r)
	}
	return rand.New(rand.NewSource(mix))
}
