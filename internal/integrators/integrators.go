// Package integrators advances ordinary differential equations dx/dt = f(x, t)
// by one fixed step at a time.
package integrators

// State is the vector being integrated.
type State []float64

// System supplies the right-hand side of the ODE.
type System interface {
	Derive(x State, t float64) State
}

// Integrator takes one step of size dt from (x, t). The returned state is
// freshly allocated; x is left untouched.
type Integrator interface {
	Step(sys System, x State, t, dt float64) State
}

// Run applies integ n times from x0, returning every state including x0.
func Run(integ Integrator, sys System, x0 State, dt float64, n int) []State {
	out := make([]State, 0, n+1)
	x := make(State, len(x0))
	copy(x, x0)
	out = append(out, x)
	for i := 0; i < n; i++ {
		x = integ.Step(sys, x, float64(i)*dt, dt)
		out = append(out, x)
	}
	return out
}
