package config

import (
	"math"
	"sort"
)

// Kangerlussuaq, Greenland: monthly surface temperatures span -21.0 to 10.7 C
// around a mean of -5.7 C. Depth in metres, time in days.
var kangerSurface = BoundaryConfig{
	Type:      "seasonal",
	Mean:      -5.675,
	Amplitude: 15.85,
	Period:    365,
	Phase:     -math.Pi / 2,
}

var Presets = map[string]map[string]*Config{
	"heat": {
		"textbook": {
			Model: "heat",
			Heat: HeatConfig{
				XStop: 1, TStop: 0.2, Dx: 0.2, Dt: 0.02, C2: 1,
				Lower:   BoundaryConfig{Type: "dirichlet"},
				Upper:   BoundaryConfig{Type: "dirichlet"},
				Initial: InitialConfig{Type: "parabola"},
			},
		},
		"insulated": {
			Model: "heat",
			Heat: HeatConfig{
				XStop: 1, TStop: 1, Dx: 0.05, Dt: 0.001, C2: 1,
				Lower:   BoundaryConfig{Type: "neumann"},
				Upper:   BoundaryConfig{Type: "neumann"},
				Initial: InitialConfig{Type: "parabola"},
			},
		},
		"permafrost": {
			Model: "heat",
			Heat: HeatConfig{
				XStop: 100, TStop: 365 * 20, Dx: 1, Dt: 10, C2: 0.0216,
				Lower:   kangerSurface,
				Upper:   BoundaryConfig{Type: "dirichlet", Value: 5},
				Initial: InitialConfig{Type: "uniform"},
			},
		},
	},
	"cooling": {
		"coffee": {
			Model:   "cooling",
			Cooling: CoolingConfig{TInit: 90, TEnv: 20, K: 1.0 / 300, TStop: 600, Dt: 30, Target: 60, Cream: 5},
		},
	},
	"atmosphere": {
		"earth": {
			Model:      "atmosphere",
			Atmosphere: AtmosphereConfig{Layers: 1, Epsilon: 0.255, Albedo: 0.33, S0: 1350},
		},
		"venus": {
			Model:      "atmosphere",
			Atmosphere: AtmosphereConfig{Layers: 30, Epsilon: 1, Albedo: 0.33, S0: 2600},
		},
	},
	"forest": {
		"lab": {
			Model:  "forest",
			Forest: ForestConfig{Mode: "fire", ISize: 3, JSize: 3, NStep: 4, PSpread: 1, Runs: 1},
		},
		"wildfire": {
			Model:  "forest",
			Forest: ForestConfig{Mode: "fire", ISize: 50, JSize: 50, NStep: 100, PSpread: 0.6, PBare: 0.1, Runs: 20},
		},
		"outbreak": {
			Model:  "forest",
			Forest: ForestConfig{Mode: "disease", ISize: 50, JSize: 50, NStep: 100, PSpread: 0.5, PBare: 0.2, PStart: 0.01, PFatal: 0.1, Runs: 20},
		},
	},
}

func GetPreset(model, preset string) *Config {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	cfg, ok := modelPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
