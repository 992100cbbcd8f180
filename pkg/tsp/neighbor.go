package tsp

import (
	"math/rand/v2"
	"slices"
)

// Move identifies a neighbor-generation strategy. Every move takes the
// current tour and returns a fresh candidate that differs by a small local
// change and is a valid permutation by construction.
type Move string

const (
	// MoveReverse is the classic 2-opt move: reverse the segment between two
	// random positions. It changes at most two edges of the cycle and is the
	// default because it repairs crossing edges directly.
	MoveReverse Move = "reverse"

	// MoveSwap exchanges the cities at two random positions. A weaker
	// neighborhood than reverse (it changes up to four edges), kept for
	// experimentation and parity with transposition-based searches.
	MoveSwap Move = "swap"
)

// ValidMoves is the set of supported neighbor moves.
var ValidMoves = map[Move]bool{
	MoveReverse: true,
	MoveSwap:    true,
}

// propose returns a candidate tour one move away from t. The input tour is
// never modified.
func (m Move) propose(t Tour, rng *rand.Rand) Tour {
	i, j := randPair(len(t), rng)
	cand := slices.Clone(t)
	switch m {
	case MoveSwap:
		cand[i], cand[j] = cand[j], cand[i]
	default: // MoveReverse
		slices.Reverse(cand[i : j+1])
	}
	return cand
}

// randPair draws two distinct positions uniformly at random and returns them
// ordered i < j. n must be at least 2.
func randPair(n int, rng *rand.Rand) (int, int) {
	i := rng.IntN(n)
	j := rng.IntN(n - 1)
	if j >= i {
		j++
	}
	if j < i {
		i, j = j, i
	}
	return i, j
}
