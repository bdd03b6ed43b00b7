package heat

import "math"

// MaxStability is the largest r = C2*Dt/Dx² for which FTCS stays stable.
const MaxStability = 0.5

// Extents that are whole multiples of the step should not lose their last
// node to rounding (0.3/0.1 = 2.9999999999999996).
const gridEps = 1e-9

// stabilityTol is a few ulps relative to the limit: a timestep computed as
// MaxDt passes, anything measurably above it does not.
const stabilityTol = 4 * 0x1p-52

// Params describes one diffusion run. Lower is the x=0 edge, Upper x=XStop.
type Params struct {
	XStop float64
	TStop float64
	Dx    float64
	Dt    float64
	C2    float64

	Lower Boundary
	Upper Boundary

	// Initial is evaluated at every node for column 0; nil means 4x - 4x².
	Initial func(x float64) float64
}

// DefaultInitial is the parabolic profile 4x - 4x², zero at x=0 and x=1.
func DefaultInitial(x float64) float64 {
	return 4*x - 4*x*x
}

// Stability returns r = C2*Dt/Dx².
func (p Params) Stability() float64 {
	return p.C2 * p.Dt / (p.Dx * p.Dx)
}

// MaxDt returns the largest stable timestep for the current Dx and C2.
func (p Params) MaxDt() float64 {
	return p.Dx * p.Dx / (2 * p.C2)
}

// Shape returns (M, N): space nodes and time points.
func (p Params) Shape() (int, int) {
	return nodes(p.XStop, p.Dx), nodes(p.TStop, p.Dt)
}

func nodes(extent, step float64) int {
	return int(math.Floor(extent/step+gridEps)) + 1
}

func axis(n int, step float64) []float64 {
	a := make([]float64, n)
	for i := range a {
		a[i] = float64(i) * step
	}
	return a
}

// Solve integrates the heat equation forward in time.
func Solve(p Params) (*Result, error) {
	r := p.Stability()
	if r > MaxStability*(1+stabilityTol) {
		return nil, &StabilityError{Dt: p.Dt, DtMax: p.MaxDt(), R: r}
	}

	m, n := p.Shape()
	res := &Result{
		Space: axis(m, p.Dx),
		Time:  axis(n, p.Dt),
		Field: make([][]float64, m),
		R:     r,
	}
	backing := make([]float64, m*n)
	for i := range res.Field {
		res.Field[i] = backing[i*n : (i+1)*n : (i+1)*n]
	}

	initial := p.Initial
	if initial == nil {
		initial = DefaultInitial
	}
	for i, x := range res.Space {
		res.Field[i][0] = initial(x)
	}

	u := res.Field
	for j := 0; j < n-1; j++ {
		for i := 1; i < m-1; i++ {
			u[i][j+1] = (1-2*r)*u[i][j] + r*(u[i+1][j]+u[i-1][j])
		}

		t := res.Time[j+1]
		// Without interior nodes a Neumann edge holds its previous value.
		lower, upper := u[0][j], u[m-1][j]
		if m >= 3 {
			lower, upper = u[1][j+1], u[m-2][j+1]
		}
		// With a single node both edges share it; the upper rule wins.
		u[0][j+1] = p.Lower.apply(lower, t)
		u[m-1][j+1] = p.Upper.apply(upper, t)
	}

	return res, nil
}
