package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/climlab/internal/cooling"
	"github.com/san-kum/climlab/internal/forest"
	"github.com/san-kum/climlab/internal/heat"
)

const (
	DefaultXStop = 1.0
	DefaultTStop = 0.2
	DefaultDx    = 0.2
	DefaultDt    = 0.02
	DefaultC2    = 1.0
)

type Config struct {
	Model      string           `yaml:"model"`
	Seed       int64            `yaml:"seed"`
	Heat       HeatConfig       `yaml:"heat"`
	Cooling    CoolingConfig    `yaml:"cooling"`
	Atmosphere AtmosphereConfig `yaml:"atmosphere"`
	Forest     ForestConfig     `yaml:"forest"`
}

type HeatConfig struct {
	XStop   float64        `yaml:"xstop"`
	TStop   float64        `yaml:"tstop"`
	Dx      float64        `yaml:"dx"`
	Dt      float64        `yaml:"dt"`
	C2      float64        `yaml:"c2"`
	Lower   BoundaryConfig `yaml:"lower"`
	Upper   BoundaryConfig `yaml:"upper"`
	Initial InitialConfig  `yaml:"initial"`
}

// BoundaryConfig selects an edge rule. Type is one of neumann (default),
// dirichlet or seasonal; seasonal is Mean + Amplitude*sin(2πt/Period + Phase).
type BoundaryConfig struct {
	Type      string  `yaml:"type"`
	Value     float64 `yaml:"value"`
	Mean      float64 `yaml:"mean"`
	Amplitude float64 `yaml:"amplitude"`
	Period    float64 `yaml:"period"`
	Phase     float64 `yaml:"phase"`
}

// InitialConfig selects column 0: parabola (4x-4x², default) or uniform.
type InitialConfig struct {
	Type  string  `yaml:"type"`
	Value float64 `yaml:"value"`
}

type CoolingConfig struct {
	TInit  float64 `yaml:"t_init"`
	TEnv   float64 `yaml:"t_env"`
	K      float64 `yaml:"k"`
	TStop  float64 `yaml:"tstop"`
	Dt     float64 `yaml:"dt"`
	Target float64 `yaml:"target"`
	Cream  float64 `yaml:"cream"`
}

type AtmosphereConfig struct {
	Layers  int     `yaml:"layers"`
	Epsilon float64 `yaml:"epsilon"`
	Albedo  float64 `yaml:"albedo"`
	S0      float64 `yaml:"s0"`
}

type ForestConfig struct {
	Mode    string  `yaml:"mode"`
	ISize   int     `yaml:"isize"`
	JSize   int     `yaml:"jsize"`
	NStep   int     `yaml:"nstep"`
	PSpread float64 `yaml:"pspread"`
	PBare   float64 `yaml:"pbare"`
	PStart  float64 `yaml:"pstart"`
	PFatal  float64 `yaml:"pfatal"`
	Runs    int     `yaml:"runs"`
}

func DefaultConfig() *Config {
	fc := forest.DefaultConfig()
	return &Config{
		Model: "heat",
		Heat: HeatConfig{
			XStop:   DefaultXStop,
			TStop:   DefaultTStop,
			Dx:      DefaultDx,
			Dt:      DefaultDt,
			C2:      DefaultC2,
			Lower:   BoundaryConfig{Type: "dirichlet"},
			Upper:   BoundaryConfig{Type: "dirichlet"},
			Initial: InitialConfig{Type: "parabola"},
		},
		Cooling: CoolingConfig{
			TInit:  cooling.DefaultTInit,
			TEnv:   cooling.DefaultTEnv,
			K:      cooling.DefaultK,
			TStop:  600,
			Dt:     30,
			Target: 60,
			Cream:  5,
		},
		Atmosphere: AtmosphereConfig{
			Layers:  1,
			Epsilon: 1,
			Albedo:  0.33,
			S0:      1350,
		},
		Forest: ForestConfig{
			Mode:    fc.Mode.String(),
			ISize:   fc.ISize,
			JSize:   fc.JSize,
			NStep:   fc.NStep,
			PSpread: fc.PSpread,
			Runs:    1,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects heat settings the solver cannot grid. Stability is left
// to the solver so its error carries the limit.
func (h HeatConfig) Validate() error {
	for name, v := range map[string]float64{
		"xstop": h.XStop, "tstop": h.TStop, "dx": h.Dx, "dt": h.Dt, "c2": h.C2,
	} {
		if !(v > 0) || math.IsInf(v, 0) {
			return fmt.Errorf("heat: %s must be positive, got %g", name, v)
		}
	}
	for _, b := range []BoundaryConfig{h.Lower, h.Upper} {
		if b.Type == "seasonal" && b.Period <= 0 {
			return fmt.Errorf("heat: seasonal boundary needs a positive period, got %g", b.Period)
		}
	}
	return nil
}

// Params converts the section into solver input.
func (h HeatConfig) Params() (heat.Params, error) {
	if err := h.Validate(); err != nil {
		return heat.Params{}, err
	}
	lower, err := h.Lower.Boundary()
	if err != nil {
		return heat.Params{}, fmt.Errorf("lower boundary: %w", err)
	}
	upper, err := h.Upper.Boundary()
	if err != nil {
		return heat.Params{}, fmt.Errorf("upper boundary: %w", err)
	}
	initial, err := h.Initial.Func()
	if err != nil {
		return heat.Params{}, err
	}
	return heat.Params{
		XStop:   h.XStop,
		TStop:   h.TStop,
		Dx:      h.Dx,
		Dt:      h.Dt,
		C2:      h.C2,
		Lower:   lower,
		Upper:   upper,
		Initial: initial,
	}, nil
}

func (b BoundaryConfig) Boundary() (heat.Boundary, error) {
	switch b.Type {
	case "", "neumann":
		return heat.Neumann(), nil
	case "dirichlet":
		return heat.Dirichlet(b.Value), nil
	case "seasonal":
		mean, amp, period, phase := b.Mean, b.Amplitude, b.Period, b.Phase
		return heat.DirichletFunc(func(t float64) float64 {
			return mean + amp*math.Sin(2*math.Pi*t/period+phase)
		}), nil
	default:
		return heat.Boundary{}, fmt.Errorf("unknown boundary type: %s", b.Type)
	}
}

func (i InitialConfig) Func() (func(float64) float64, error) {
	switch i.Type {
	case "", "parabola":
		return heat.DefaultInitial, nil
	case "uniform":
		v := i.Value
		return func(float64) float64 { return v }, nil
	default:
		return nil, fmt.Errorf("unknown initial condition: %s", i.Type)
	}
}

func (c CoolingConfig) Params() cooling.Params {
	return cooling.Params{TInit: c.TInit, TEnv: c.TEnv, K: c.K}
}

// ForestConfig converts the section, taking the seed from the top level.
func (c *Config) ForestConfig() (forest.Config, error) {
	mode, err := forest.ParseMode(c.Forest.Mode)
	if err != nil {
		return forest.Config{}, err
	}
	fc := forest.Config{
		Mode:    mode,
		ISize:   c.Forest.ISize,
		JSize:   c.Forest.JSize,
		NStep:   c.Forest.NStep,
		PSpread: c.Forest.PSpread,
		PBare:   c.Forest.PBare,
		PStart:  c.Forest.PStart,
		PFatal:  c.Forest.PFatal,
		Seed:    c.Seed,
	}
	return fc, fc.Validate()
}
