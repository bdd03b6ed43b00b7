// Package cooling models a cup of coffee losing heat to the room through
// Newton's law of cooling, dT/dt = -k (T - Tenv).
package cooling

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/climlab/internal/integrators"
)

var (
	// ErrUnreachable indicates a target temperature the curve never crosses.
	ErrUnreachable = errors.New("cooling: target temperature is never reached")

	// ErrParameterBounds indicates a non-positive rate or step.
	ErrParameterBounds = errors.New("cooling: parameter out of valid bounds")
)

const (
	DefaultTInit = 90.0
	DefaultTEnv  = 20.0
	DefaultK     = 1.0 / 300.0
)

// Params are in degrees Celsius and 1/s.
type Params struct {
	TInit float64
	TEnv  float64
	K     float64
}

func DefaultParams() Params {
	return Params{TInit: DefaultTInit, TEnv: DefaultTEnv, K: DefaultK}
}

// Temperature is the analytic solution at time t (seconds).
func (p Params) Temperature(t float64) float64 {
	return p.TEnv + (p.TInit-p.TEnv)*math.Exp(-p.K*t)
}

func (p Params) Series(times []float64) []float64 {
	out := make([]float64, len(times))
	for i, t := range times {
		out[i] = p.Temperature(t)
	}
	return out
}

// TimeToReach inverts the law for the first time the coffee hits target.
func (p Params) TimeToReach(target float64) (float64, error) {
	if p.K <= 0 {
		return 0, fmt.Errorf("k=%g: %w", p.K, ErrParameterBounds)
	}
	if target == p.TInit {
		return 0, nil
	}
	ratio := (target - p.TEnv) / (p.TInit - p.TEnv)
	if ratio <= 0 || ratio >= 1 {
		return 0, fmt.Errorf("target %.2f outside (%.2f, %.2f]: %w", target, p.TEnv, p.TInit, ErrUnreachable)
	}
	return -math.Log(ratio) / p.K, nil
}

// Derive is Newton's law for a single temperature state.
func (p Params) Derive(x integrators.State, t float64) integrators.State {
	return integrators.State{-p.K * (x[0] - p.TEnv)}
}

// Integrate steps the cooling ODE with integ on [0, tstop] from TInit.
func (p Params) Integrate(integ integrators.Integrator, dt, tstop float64) (times, temps []float64, err error) {
	if dt <= 0 || tstop <= 0 {
		return nil, nil, fmt.Errorf("dt=%g tstop=%g: %w", dt, tstop, ErrParameterBounds)
	}
	n := int(math.Floor(tstop/dt + 1e-9))
	states := integrators.Run(integ, p, integrators.State{p.TInit}, dt, n)

	times = make([]float64, len(states))
	temps = make([]float64, len(states))
	for i, x := range states {
		times[i] = float64(i) * dt
		temps[i] = x[0]
	}
	return times, temps, nil
}

// Euler integrates with forward Euler, the scheme used in the lab.
func (p Params) Euler(dt, tstop float64) (times, temps []float64, err error) {
	return p.Integrate(integrators.NewEuler(), dt, tstop)
}

func (p Params) RK4(dt, tstop float64) (times, temps []float64, err error) {
	return p.Integrate(integrators.NewRK4(), dt, tstop)
}

// CreamComparison answers the coffee question: is it better to add cream
// immediately or right before drinking? Cream lowers the temperature by
// drop degrees at the moment it is added.
type CreamComparison struct {
	CreamFirst float64 // time to target with cream added at t=0
	CreamLast  float64 // time to target with cream added on arrival
}

func (p Params) CompareCream(drop, target float64) (CreamComparison, error) {
	first := p
	first.TInit -= drop
	tFirst, err := first.TimeToReach(target)
	if err != nil {
		return CreamComparison{}, err
	}
	tLast, err := p.TimeToReach(target + drop)
	if err != nil {
		return CreamComparison{}, err
	}
	return CreamComparison{CreamFirst: tFirst, CreamLast: tLast}, nil
}
