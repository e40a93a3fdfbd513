package matchsim

import "math/rand/v2"

const pcgStream = 0x9e3779b97f4a7c15

// Source is the random stream threaded through one simulation. *rand.Rand
// from math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
	IntN(n int) int
	Perm(n int) []int
}

// NewSource returns a PCG-backed source. Equal seeds replay identical matches.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^pcgStream))
}

func chance(rng Source, p float64) bool {
	return rng.Float64() < p
}

// weightedIndex draws an index in proportion to weights. Non-positive weights
// never win unless every weight is non-positive, in which case the draw is
// uniform. It returns -1 for an empty slice.
func weightedIndex(rng Source, weights []float64) int {
	if len(weights) == 0 {
		return -1
	}

	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return rng.IntN(len(weights))
	}

	roll := rng.Float64() * total
	last := -1
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		last = i
		roll -= w
		if roll < 0 {
			return i
		}
	}
	return last
}
