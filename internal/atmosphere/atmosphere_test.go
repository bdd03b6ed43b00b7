package atmosphere

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestSingleLayerMatchesNLayer(t *testing.T) {
	for _, eps := range []float64{0.25, 0.5, 0.9, 1.0} {
		eq, err := NLayer(1, eps, DefaultAlbedo, DefaultS0)
		if err != nil {
			t.Fatalf("eps=%g: %v", eps, err)
		}
		want := SingleLayer(DefaultS0, DefaultAlbedo, eps)
		if !scalar.EqualWithinRel(eq.Surface(), want, 1e-10) {
			t.Errorf("eps=%g: expected surface %f, got %f", eps, want, eq.Surface())
		}
	}
}

func TestNLayerBlackBody(t *testing.T) {
	absorbed := 0.25 * DefaultS0 * (1 - DefaultAlbedo)

	tests := []struct {
		layers int
	}{
		{0}, {1}, {2}, {5}, {10},
	}

	for _, tt := range tests {
		eq, err := NLayer(tt.layers, 1, DefaultAlbedo, DefaultS0)
		if err != nil {
			t.Fatalf("layers=%d: %v", tt.layers, err)
		}
		if len(eq.Temperatures) != tt.layers+1 {
			t.Fatalf("layers=%d: expected %d temperatures, got %d", tt.layers, tt.layers+1, len(eq.Temperatures))
		}

		// perfectly absorbing layers: surface flux is (N+1) times the absorbed solar flux
		want := math.Pow(float64(tt.layers+1)*absorbed/Sigma, 0.25)
		if !scalar.EqualWithinRel(eq.Surface(), want, 1e-10) {
			t.Errorf("layers=%d: expected %f, got %f", tt.layers, want, eq.Surface())
		}

		// temperature decreases upward
		for i := 1; i < len(eq.Temperatures); i++ {
			if eq.Temperatures[i] >= eq.Temperatures[i-1] {
				t.Errorf("layers=%d: layer %d not colder than layer %d", tt.layers, i, i-1)
			}
		}

		// top of atmosphere emits what the planet absorbs
		top := eq.Fluxes[len(eq.Fluxes)-1]
		if !scalar.EqualWithinRel(top, absorbed, 1e-10) {
			t.Errorf("layers=%d: expected outgoing %f, got %f", tt.layers, absorbed, top)
		}
	}
}

func TestNLayerInvalid(t *testing.T) {
	tests := []struct {
		name    string
		layers  int
		epsilon float64
		albedo  float64
	}{
		{"negative layers", -1, 0.5, 0.3},
		{"zero epsilon", 3, 0, 0.3},
		{"epsilon above one", 3, 1.2, 0.3},
		{"albedo above one", 3, 0.5, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NLayer(tt.layers, tt.epsilon, tt.albedo, DefaultS0)
			if !errors.Is(err, ErrParameterBounds) {
				t.Errorf("expected ErrParameterBounds, got %v", err)
			}
		})
	}
}

func TestSolarForcing(t *testing.T) {
	years := []float64{1900, 1950, 2000}
	s0 := []float64{1365.0, 1366.5, 1368.0}
	anom := []float64{-0.4, 0, 0.4}

	pts, err := SolarForcing(years, s0, anom, 1, DefaultAlbedo, DefaultEpsilon)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if pts[1].Predicted != pts[1].Observed {
		t.Error("reference year should anchor observed to predicted")
	}

	predicted := pts[2].Predicted - pts[0].Predicted
	observed := pts[2].Observed - pts[0].Observed
	if predicted >= observed {
		t.Errorf("solar forcing alone should underpredict warming: predicted %f observed %f", predicted, observed)
	}

	if _, err := SolarForcing(years, s0[:2], anom, 1, DefaultAlbedo, DefaultEpsilon); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}
