// Package deriv approximates first derivatives of sampled data with finite
// differences and measures how the error scales with the step.
package deriv

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

var ErrTooFewSamples = errors.New("deriv: not enough samples")

// Forward returns (y[i+1]-y[i])/dx, valid at x[0..n-2].
func Forward(y []float64, dx float64) []float64 {
	if len(y) < 2 {
		return nil
	}
	out := make([]float64, len(y)-1)
	for i := range out {
		out[i] = (y[i+1] - y[i]) / dx
	}
	return out
}

// Backward returns (y[i]-y[i-1])/dx, valid at x[1..n-1]. The values equal
// Forward's; only the abscissa they belong to differs.
func Backward(y []float64, dx float64) []float64 {
	return Forward(y, dx)
}

// Central returns (y[i+1]-y[i-1])/(2dx), valid at x[1..n-2].
func Central(y []float64, dx float64) []float64 {
	if len(y) < 3 {
		return nil
	}
	out := make([]float64, len(y)-2)
	for i := range out {
		out[i] = (y[i+2] - y[i]) / (2 * dx)
	}
	return out
}

// Sample evaluates f on [0, stop) with step dx.
func Sample(f func(float64) float64, stop, dx float64) (x, y []float64) {
	n := int(math.Ceil(stop/dx - 1e-9))
	x = make([]float64, n)
	y = make([]float64, n)
	for i := range x {
		x[i] = float64(i) * dx
		y[i] = f(x[i])
	}
	return x, y
}

// Study holds errors of each scheme at the last point it can reach, for
// every step size.
type Study struct {
	Dx      []float64
	Forward []float64
	Central []float64
}

// Convergence compares Forward and Central differences of f against the
// exact derivative df on [0, stop) for each step in dxs.
func Convergence(f, df func(float64) float64, stop float64, dxs []float64) (*Study, error) {
	s := &Study{
		Dx:      make([]float64, len(dxs)),
		Forward: make([]float64, len(dxs)),
		Central: make([]float64, len(dxs)),
	}
	for k, dx := range dxs {
		x, y := Sample(f, stop, dx)
		if len(x) < 3 {
			return nil, fmt.Errorf("dx=%g over [0, %g): %w", dx, stop, ErrTooFewSamples)
		}
		fwd := Forward(y, dx)
		cnt := Central(y, dx)

		n := len(x)
		s.Dx[k] = dx
		s.Forward[k] = math.Abs(fwd[len(fwd)-1] - df(x[n-2]))
		s.Central[k] = math.Abs(cnt[len(cnt)-1] - df(x[n-2]))
	}
	return s, nil
}

// Order fits the slope of log(err) against log(dx). Zero errors are skipped.
func Order(dxs, errs []float64) (float64, error) {
	var lx, le []float64
	for i := range dxs {
		if errs[i] <= 0 || dxs[i] <= 0 {
			continue
		}
		lx = append(lx, math.Log(dxs[i]))
		le = append(le, math.Log(errs[i]))
	}
	if len(lx) < 2 {
		return 0, ErrTooFewSamples
	}
	_, slope := stat.LinearRegression(lx, le, nil, false)
	return slope, nil
}
