package tsp

import (
	"math/rand/v2"
	"slices"
	"testing"
)

func TestRandPairBoundsAndDistinctness(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 3))
	for _, n := range []int{2, 3, 5, 50} {
		for trial := 0; trial < 500; trial++ {
			i, j := randPair(n, rng)
			if i < 0 || j >= n {
				t.Fatalf("randPair(%d) = (%d, %d), out of range", n, i, j)
			}
			if i >= j {
				t.Fatalf("randPair(%d) = (%d, %d), want i < j", n, i, j)
			}
		}
	}
}

func TestMovesPreservePermutation(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 5))
	for _, move := range []Move{MoveReverse, MoveSwap} {
		t.Run(string(move), func(t *testing.T) {
			tour := RandomTour(20, rng)
			for trial := 0; trial < 1000; trial++ {
				tour = move.propose(tour, rng)
				if err := tour.Validate(20); err != nil {
					t.Fatalf("trial %d: candidate not a permutation: %v", trial, err)
				}
			}
		})
	}
}

func TestProposeDoesNotMutateInput(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 9))
	orig := IdentityTour(10)
	snapshot := orig.Clone()
	for trial := 0; trial < 100; trial++ {
		_ = MoveReverse.propose(orig, rng)
		_ = MoveSwap.propose(orig, rng)
	}
	if !slices.Equal(orig, snapshot) {
		t.Errorf("propose mutated its input: %v != %v", orig, snapshot)
	}
}

func TestProposeAlwaysDiffers(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 11))
	tour := IdentityTour(6)
	for trial := 0; trial < 200; trial++ {
		cand := MoveSwap.propose(tour, rng)
		if slices.Equal(cand, tour) {
			t.Fatal("swap candidate identical to input")
		}
	}
}

func TestReverseSegment(t *testing.T) {
	// Fixed rng stream: just verify a reversed candidate really is the input
	// with one contiguous segment flipped.
	rng := rand.New(rand.NewPCG(13, 13))
	tour := IdentityTour(8)
	for trial := 0; trial < 200; trial++ {
		cand := MoveReverse.propose(tour, rng)

		// Locate the differing window.
		lo, hi := 0, len(tour)-1
		for lo < len(tour) && cand[lo] == tour[lo] {
			lo++
		}
		if lo == len(tour) {
			t.Fatal("reverse candidate identical to input")
		}
		for cand[hi] == tour[hi] {
			hi--
		}
		for k := lo; k <= hi; k++ {
			if cand[k] != tour[hi-(k-lo)] {
				t.Fatalf("segment [%d,%d] is not a reversal: %v vs %v", lo, hi, cand, tour)
			}
		}
	}
}
