// Package atmosphere computes radiative-equilibrium temperatures for grey
// atmospheres stacked above a surface.
//
//   - [SingleLayer]: closed-form surface temperature under one layer
//   - [NLayer]: flux balance for N layers solved as a linear system
//   - [SolarForcing]: predicted warming from observed solar constant changes
package atmosphere

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Sigma is the Stefan-Boltzmann constant in W/m²/K⁴.
const Sigma = 5.67e-8

const (
	DefaultS0      = 1350.0
	DefaultAlbedo  = 0.33
	DefaultEpsilon = 1.0
)

var (
	// ErrParameterBounds indicates an emissivity, albedo or layer count out of range.
	ErrParameterBounds = errors.New("atmosphere: parameter out of valid bounds")

	// ErrSingular indicates the flux balance could not be solved.
	ErrSingular = errors.New("atmosphere: flux balance matrix is singular")

	// ErrDimensionMismatch indicates forcing series of different lengths.
	ErrDimensionMismatch = errors.New("atmosphere: series lengths differ")
)

// SingleLayer returns the surface temperature (K) under one layer of
// emissivity epsilon.
func SingleLayer(s0, albedo, epsilon float64) float64 {
	return math.Pow(s0*(1-albedo)/(2*Sigma*(2-epsilon)), 0.25)
}

// Equilibrium is the solved state of an N-layer atmosphere. Index 0 is the
// surface, index i the i-th layer counted upward.
type Equilibrium struct {
	Fluxes       []float64
	Temperatures []float64
}

func (e *Equilibrium) Surface() float64 { return e.Temperatures[0] }

// NLayer solves the energy balance of n layers, each absorbing a fraction
// epsilon of the longwave flux that crosses it.
func NLayer(n int, epsilon, albedo, s0 float64) (*Equilibrium, error) {
	if n < 0 {
		return nil, fmt.Errorf("layers=%d: %w", n, ErrParameterBounds)
	}
	if epsilon <= 0 || epsilon > 1 {
		return nil, fmt.Errorf("epsilon=%g: %w", epsilon, ErrParameterBounds)
	}
	if albedo < 0 || albedo > 1 {
		return nil, fmt.Errorf("albedo=%g: %w", albedo, ErrParameterBounds)
	}

	size := n + 1
	a := mat.NewDense(size, size, nil)
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			a.Set(i, j, coefficient(i, j, epsilon))
		}
	}

	b := mat.NewVecDense(size, nil)
	b.SetVec(0, -0.25*s0*(1-albedo))

	var fluxes mat.VecDense
	if err := fluxes.SolveVec(a, b); err != nil {
		return nil, fmt.Errorf("%d layers, epsilon=%g: %w", n, epsilon, ErrSingular)
	}

	eq := &Equilibrium{
		Fluxes:       make([]float64, size),
		Temperatures: make([]float64, size),
	}
	for i := 0; i < size; i++ {
		f := fluxes.AtVec(i)
		eq.Fluxes[i] = f
		emissivity := epsilon
		if i == 0 {
			emissivity = 1
		}
		eq.Temperatures[i] = math.Pow(f/(emissivity*Sigma), 0.25)
	}
	return eq, nil
}

// coefficient is row i, column j of the balance matrix: how much of the
// flux emitted by body j is absorbed by body i.
func coefficient(i, j int, epsilon float64) float64 {
	if i == j {
		if i == 0 {
			return -1
		}
		return -2
	}
	absorb := 1.0
	if i > 0 {
		absorb = epsilon
	}
	between := abs(i-j) - 1
	return absorb * math.Pow(1-epsilon, float64(between))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ForcingPoint pairs a modelled surface temperature with an observation.
type ForcingPoint struct {
	Year      float64
	S0        float64
	Predicted float64
	Observed  float64
}

// SolarForcing compares the warming a single-layer model predicts from solar
// constant changes against observed anomalies. Observations are anchored to
// the model at reference index ref.
func SolarForcing(years, s0, anomalies []float64, ref int, albedo, epsilon float64) ([]ForcingPoint, error) {
	if len(years) != len(s0) || len(years) != len(anomalies) {
		return nil, ErrDimensionMismatch
	}
	if ref < 0 || ref >= len(years) {
		return nil, fmt.Errorf("reference index %d: %w", ref, ErrParameterBounds)
	}

	base := SingleLayer(s0[ref], albedo, epsilon)
	out := make([]ForcingPoint, len(years))
	for i := range years {
		out[i] = ForcingPoint{
			Year:      years[i],
			S0:        s0[i],
			Predicted: SingleLayer(s0[i], albedo, epsilon),
			Observed:  base + anomalies[i] - anomalies[ref],
		}
	}
	return out, nil
}
