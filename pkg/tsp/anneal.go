package tsp

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"
)

var (
	// ErrBadTemperature is returned when the initial temperature is not
	// strictly positive.
	ErrBadTemperature = errors.New("initial temperature must be > 0")

	// ErrBadCooling is returned when the cooling rate is outside (0,1).
	// Only the exponential schedule uses the rate, but a nonsensical value
	// is rejected regardless so typos surface early.
	ErrBadCooling = errors.New("cooling rate must be in (0,1)")

	// ErrBadIterations is returned when the iteration cap is not positive.
	// The cap is the hard termination bound and cannot be disabled.
	ErrBadIterations = errors.New("iteration cap must be > 0")

	// ErrBadFloor is returned when the temperature floor is not strictly
	// positive. A zero floor would let the Metropolis rule divide by zero.
	ErrBadFloor = errors.New("temperature floor must be > 0")

	// ErrAlreadyRun is returned by [Annealer.Run] on a second call. An
	// annealer owns one run's search state and is not reusable.
	ErrAlreadyRun = errors.New("annealer has already run")
)

// Default configuration values applied by [Options.ValidateAndSetDefaults].
const (
	// DefaultCooling is the per-step decay factor of the exponential
	// schedule.
	DefaultCooling = 0.9995

	// DefaultMaxIterations bounds the search when the caller does not.
	DefaultMaxIterations = 100_000

	// DefaultMinTemp is the temperature floor. It also doubles as the
	// temperature-based stop condition: once the schedule reaches the
	// floor the search has gone effectively greedy.
	DefaultMinTemp = 1e-8

	// DefaultSeed replaces a zero seed so unconfigured runs are still
	// reproducible.
	DefaultSeed = uint64(42)

	// initialTempScale multiplies the instance's mean pairwise distance to
	// derive a default initial temperature. A worse-by-one-typical-edge
	// candidate then starts out accepted with probability ~e^{-1/10}.
	initialTempScale = 10.0
)

// Progress is a snapshot of the search handed to an [Options.Hook].
type Progress struct {
	Iteration   int
	Temperature float64
	Current     float64 // length of the current tour
	Best        float64 // length of the best tour so far
	Accepted    int     // accepted moves so far
}

// Options configures a single annealing run. The zero value is usable:
// every field has a documented default applied by ValidateAndSetDefaults.
type Options struct {
	// InitialTemp is T0. Zero means "derive from the instance":
	// initialTempScale times the mean pairwise distance.
	InitialTemp float64 `json:"initial_temp,omitempty"`

	// Cooling is the exponential decay rate alpha in (0,1).
	Cooling float64 `json:"cooling,omitempty"`

	// Schedule selects the cooling family. Default exponential.
	Schedule ScheduleKind `json:"schedule,omitempty"`

	// Move selects the neighbor move. Default reverse (2-opt).
	Move Move `json:"move,omitempty"`

	// MaxIterations is the hard upper bound on loop iterations.
	MaxIterations int `json:"max_iterations,omitempty"`

	// StallLimit stops the run after this many consecutive iterations
	// without an improvement to the best tour. Zero disables early stop.
	StallLimit int `json:"stall_limit,omitempty"`

	// MinTemp is the temperature floor and the temperature stop condition.
	MinTemp float64 `json:"min_temp,omitempty"`

	// Seed drives the PCG random stream. Zero selects DefaultSeed.
	Seed uint64 `json:"seed,omitempty"`

	// ShuffleStart randomizes the initial tour instead of starting from
	// identity order. Defaults to true; set SkipShuffle to disable.
	SkipShuffle bool `json:"skip_shuffle,omitempty"`

	// Hook, when non-nil, is invoked every HookEvery iterations (and once
	// at termination) with a progress snapshot. Runtime only, never
	// serialized.
	Hook func(Progress) `json:"-"`

	// HookEvery is the hook invocation interval in iterations. Zero means
	// every 1000 iterations.
	HookEvery int `json:"-"`

	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks the configuration against cities and fills
// in defaults. Idempotent. Returns one of the sentinel configuration errors
// on invalid input; the run never starts in that case.
func (o *Options) ValidateAndSetDefaults(cities Cities) error {
	if o.validated {
		return nil
	}
	if err := cities.Validate(); err != nil {
		return err
	}

	if o.InitialTemp == 0 {
		o.InitialTemp = initialTempScale * cities.meanDistance()
		if o.InitialTemp == 0 {
			// All cities coincide; any positive value behaves the same.
			o.InitialTemp = 1
		}
	}
	if o.InitialTemp < 0 {
		return fmt.Errorf("%w (got %g)", ErrBadTemperature, o.InitialTemp)
	}
	if o.Cooling == 0 {
		o.Cooling = DefaultCooling
	}
	if o.Cooling <= 0 || o.Cooling >= 1 {
		return fmt.Errorf("%w (got %g)", ErrBadCooling, o.Cooling)
	}
	if o.Schedule == "" {
		o.Schedule = ScheduleExponential
	}
	if !ValidSchedules[o.Schedule] {
		return fmt.Errorf("invalid schedule %q (must be one of: exponential, inverse, linear)", o.Schedule)
	}
	if o.Move == "" {
		o.Move = MoveReverse
	}
	if !ValidMoves[o.Move] {
		return fmt.Errorf("invalid move %q (must be one of: reverse, swap)", o.Move)
	}
	if o.MaxIterations == 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if o.MaxIterations < 0 {
		return fmt.Errorf("%w (got %d)", ErrBadIterations, o.MaxIterations)
	}
	if o.StallLimit < 0 {
		return fmt.Errorf("stall limit must be >= 0 (got %d)", o.StallLimit)
	}
	if o.MinTemp == 0 {
		o.MinTemp = DefaultMinTemp
	}
	if o.MinTemp <= 0 {
		return fmt.Errorf("%w (got %g)", ErrBadFloor, o.MinTemp)
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.HookEvery <= 0 {
		o.HookEvery = 1000
	}

	o.validated = true
	return nil
}

// Acceptance returns the Metropolis acceptance probability for moving from a
// tour of length current to one of length candidate at the given
// temperature. Improvements and ties are always accepted (probability 1);
// worse candidates are accepted with probability exp(-delta/temperature),
// which tends to 0 as the temperature approaches zero.
func Acceptance(current, candidate, temperature float64) float64 {
	if candidate <= current {
		return 1
	}
	return math.Exp(-(candidate - current) / temperature)
}

// StopReason records which condition terminated a run.
type StopReason string

const (
	// StopMaxIterations: the iteration cap was reached.
	StopMaxIterations StopReason = "max_iterations"
	// StopTemperature: the schedule cooled down to the floor.
	StopTemperature StopReason = "temperature"
	// StopStalled: no best-so-far improvement within the stall limit.
	StopStalled StopReason = "stalled"
	// StopCancelled: the context was cancelled mid-run.
	StopCancelled StopReason = "cancelled"
	// StopTrivial: the instance admits exactly one tour (two cities), so
	// there is nothing to search.
	StopTrivial StopReason = "trivial"
)

// Result is what a terminated run returns: the best tour observed and the
// run statistics. Only the result survives the run; all other search state
// is discarded.
type Result struct {
	Tour          Tour          `json:"tour"`
	Length        float64       `json:"length"`
	InitialLength float64       `json:"initial_length"`
	Iterations    int           `json:"iterations"`
	Accepted      int           `json:"accepted"`
	FinalTemp     float64       `json:"final_temp"`
	Stop          StopReason    `json:"stop"`
	Seed          uint64        `json:"seed"`
	Duration      time.Duration `json:"duration"`
}

// Improvement returns how much shorter the best tour is than the initial
// one, as a fraction of the initial length.
func (r Result) Improvement() float64 {
	if r.InitialLength == 0 {
		return 0
	}
	return (r.InitialLength - r.Length) / r.InitialLength
}

// runState is the annealer lifecycle: initialized -> running -> terminated.
type runState int

const (
	stateInitialized runState = iota
	stateRunning
	stateTerminated
)

// Annealer drives one simulated-annealing run over a fixed instance. Create
// with [New], run once with [Annealer.Run]. Not safe for concurrent use;
// run independent annealers instead.
type Annealer struct {
	cities   Cities
	opts     Options
	schedule Schedule
	rng      *rand.Rand
	state    runState

	current Tour
	currLen float64
	best    Tour
	bestLen float64
}

// New validates the configuration and prepares an annealer in its
// initialized state: initial tour constructed (shuffled unless
// opts.SkipShuffle), best-so-far equal to the initial tour.
func New(cities Cities, opts Options) (*Annealer, error) {
	if err := opts.ValidateAndSetDefaults(cities); err != nil {
		return nil, err
	}

	a := &Annealer{
		cities:   cities,
		opts:     opts,
		schedule: newSchedule(opts.Schedule, opts.InitialTemp, opts.Cooling, opts.MinTemp, opts.MaxIterations),
		rng:      rand.New(rand.NewPCG(opts.Seed, opts.Seed^0xdeadbeef)),
	}

	n := len(cities)
	if opts.SkipShuffle {
		a.current = IdentityTour(n)
	} else {
		a.current = RandomTour(n, a.rng)
	}
	a.current.mustBeValid(n)
	a.currLen = a.current.Length(cities)
	a.best = a.current.Clone()
	a.bestLen = a.currLen
	return a, nil
}

// Run executes the annealing loop until a stop condition holds and returns
// the best tour seen. Stop conditions: the iteration cap (hard bound), the
// temperature floor, the stall limit if configured, and ctx cancellation.
// Cancellation is an ordinary stop condition, not an error - the best tour
// found so far is still returned, with Stop set to StopCancelled.
//
// Run may be called exactly once; later calls return ErrAlreadyRun.
func (a *Annealer) Run(ctx context.Context) (Result, error) {
	if a.state != stateInitialized {
		return Result{}, ErrAlreadyRun
	}
	a.state = stateRunning
	start := time.Now()

	n := len(a.cities)
	initialLen := a.currLen

	// Two cities admit a single cyclic tour; the initial tour is already
	// optimal (there and back).
	if n == 2 {
		return a.terminate(initialLen, 0, 0, a.opts.InitialTemp, StopTrivial, start), nil
	}

	var (
		iter     int
		accepted int
		lastImp  int
		temp     = a.opts.InitialTemp
		reason   = StopMaxIterations
	)

	for iter = 0; iter < a.opts.MaxIterations; iter++ {
		if ctx.Err() != nil {
			reason = StopCancelled
			break
		}

		temp = a.schedule.Temperature(iter)
		if temp <= a.opts.MinTemp {
			reason = StopTemperature
			break
		}

		cand := a.opts.Move.propose(a.current, a.rng)
		candLen := cand.Length(a.cities)

		if p := Acceptance(a.currLen, candLen, temp); p >= 1 || a.rng.Float64() < p {
			a.current = cand
			a.currLen = candLen
			accepted++

			if a.currLen < a.bestLen {
				a.best = a.current.Clone()
				a.bestLen = a.currLen
				lastImp = iter
			}
		}

		if a.opts.StallLimit > 0 && iter-lastImp >= a.opts.StallLimit {
			reason = StopStalled
			break
		}

		if a.opts.Hook != nil && iter%a.opts.HookEvery == 0 {
			a.opts.Hook(Progress{
				Iteration:   iter,
				Temperature: temp,
				Current:     a.currLen,
				Best:        a.bestLen,
				Accepted:    accepted,
			})
		}
	}

	return a.terminate(initialLen, iter, accepted, temp, reason, start), nil
}

// terminate snapshots the result, fires the final hook, and seals the
// annealer. The best tour is re-validated here so a defective move cannot
// silently hand back a corrupted permutation.
func (a *Annealer) terminate(initialLen float64, iters, accepted int, temp float64, reason StopReason, start time.Time) Result {
	a.best.mustBeValid(len(a.cities))
	a.state = stateTerminated

	res := Result{
		Tour:          a.best,
		Length:        a.bestLen,
		InitialLength: initialLen,
		Iterations:    iters,
		Accepted:      accepted,
		FinalTemp:     temp,
		Stop:          reason,
		Seed:          a.opts.Seed,
		Duration:      time.Since(start),
	}
	if a.opts.Hook != nil {
		a.opts.Hook(Progress{
			Iteration:   iters,
			Temperature: temp,
			Current:     a.currLen,
			Best:        a.bestLen,
			Accepted:    accepted,
		})
	}
	return res
}

// Solve is the one-shot entry point: validate, run, return the best tour.
// Equivalent to New followed by Run.
func Solve(ctx context.Context, cities Cities, opts Options) (Result, error) {
	a, err := New(cities, opts)
	if err != nil {
		return Result{}, err
	}
	return a.Run(ctx)
}
