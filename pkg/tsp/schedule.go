package tsp

import "math"

// ScheduleKind identifies a cooling schedule family.
type ScheduleKind string

const (
	// ScheduleExponential is geometric decay: T(step) = T0 * alpha^step.
	// The canonical annealing schedule and the default.
	ScheduleExponential ScheduleKind = "exponential"

	// ScheduleInverse is hyperbolic decay: T(step) = T0 / (1 + step).
	// Cools fast early and very slowly late.
	ScheduleInverse ScheduleKind = "inverse"

	// ScheduleLinear decays T0 by a fixed fraction per step:
	// T(step) = T0 * (1 - step/horizon), clamped at the floor.
	ScheduleLinear ScheduleKind = "linear"
)

// ValidSchedules is the set of supported cooling schedules.
var ValidSchedules = map[ScheduleKind]bool{
	ScheduleExponential: true,
	ScheduleInverse:     true,
	ScheduleLinear:      true,
}

// Schedule maps an iteration number to a temperature. Implementations must
// be monotonically non-increasing in step and must never return a value
// below their floor, so the Metropolis rule never divides by zero.
type Schedule interface {
	Temperature(step int) float64
}

// Exponential cools geometrically from T0 by factor Alpha per step, floored
// at Floor. Alpha closer to 1 means slower cooling and more exploration.
type Exponential struct {
	T0    float64
	Alpha float64
	Floor float64
}

// Temperature implements [Schedule].
func (s Exponential) Temperature(step int) float64 {
	return max(s.T0*math.Pow(s.Alpha, float64(step)), s.Floor)
}

// Inverse cools as T0/(1+step), floored at Floor.
type Inverse struct {
	T0    float64
	Floor float64
}

// Temperature implements [Schedule].
func (s Inverse) Temperature(step int) float64 {
	return max(s.T0/float64(1+step), s.Floor)
}

// Linear cools from T0 to Floor in equal decrements over Horizon steps.
// After the horizon it stays at the floor.
type Linear struct {
	T0      float64
	Horizon int
	Floor   float64
}

// Temperature implements [Schedule].
func (s Linear) Temperature(step int) float64 {
	if s.Horizon <= 0 {
		return max(s.T0, s.Floor)
	}
	frac := float64(step) / float64(s.Horizon)
	return max(s.T0*(1-frac), s.Floor)
}

// newSchedule builds the schedule selected by opts. Options are validated
// before this is called.
func newSchedule(kind ScheduleKind, t0, alpha, floor float64, horizon int) Schedule {
	switch kind {
	case ScheduleInverse:
		return Inverse{T0: t0, Floor: floor}
	case ScheduleLinear:
		return Linear{T0: t0, Horizon: horizon, Floor: floor}
	default:
		return Exponential{T0: t0, Alpha: alpha, Floor: floor}
	}
}
