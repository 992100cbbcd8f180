// Package tsp solves the Euclidean traveling salesman problem approximately
// using simulated annealing.
//
// # Overview
//
// Given a set of city coordinates, the package searches for a cyclic visiting
// order (a tour) that minimizes total Euclidean travel distance. The search is
// a classic annealing loop: perturb the current tour with a small local move,
// accept or reject the candidate using the Metropolis criterion at the current
// temperature, and cool the temperature over time so the search converges from
// broad exploration to greedy improvement.
//
// # Basic Usage
//
// Build a [Cities] instance, configure [Options], and run [Solve]:
//
//	cities := tsp.Cities{
//	    {X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0},
//	}
//	result, err := tsp.Solve(ctx, cities, tsp.Options{
//	    MaxIterations: 1000,
//	    Seed:          42,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Tour, result.Length)
//
// For finer control (progress hooks, custom schedules) construct an
// [Annealer] with [New] and call [Annealer.Run].
//
// # Determinism
//
// All randomness flows through a single PCG stream seeded from
// [Options.Seed]. The same cities, options, and seed always produce the same
// tour and length, which makes runs reproducible and the search testable.
// A zero seed selects a fixed default seed rather than a time-based one.
//
// # Invariants
//
// A [Tour] is a permutation of the city indices 0..N-1 at all times. The
// neighbor moves preserve this by construction; a malformed tour reaching the
// hot loop indicates a programming error and fails fast with a panic rather
// than returning a corrupted result. Invalid configuration (fewer than two
// cities, non-positive temperature, a cooling rate outside (0,1), a
// non-positive iteration cap) is rejected before the loop starts with one of
// the sentinel errors in this package.
//
// # Concurrency
//
// An [Annealer] owns its search state exclusively and must not be shared
// across goroutines. Independent annealers over the same (read-only) Cities
// are safe to run in parallel, which is the natural way to do multi-start
// search: run several seeded annealers and keep the global best.
package tsp
