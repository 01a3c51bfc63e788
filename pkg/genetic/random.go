package genetic

import "math/rand/v2"

// NewRand returns the pseudo-random source every operator draws from. Equal seeds yield equal runs.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
