package forest

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestSimulateCertainSpread(t *testing.T) {
	run, err := Simulate(DefaultConfig())
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}

	if len(run.Frames) != 4 {
		t.Fatalf("expected 4 frames, got %d", len(run.Frames))
	}

	tests := []struct {
		frame   int
		burning int
		bare    int
	}{
		{0, 1, 0},
		{1, 4, 1},
		{2, 4, 5},
		{3, 0, 9},
	}

	for _, tt := range tests {
		f := run.Frames[tt.frame]
		if got := f.Count(Burning); got != tt.burning {
			t.Errorf("frame %d: expected %d burning, got %d", tt.frame, tt.burning, got)
		}
		if got := f.Count(Bare); got != tt.bare {
			t.Errorf("frame %d: expected %d bare, got %d", tt.frame, tt.bare, got)
		}
	}

	if run.Frames[1][0][0] != Forest {
		t.Error("diagonal neighbours must not ignite in one step")
	}

	if got := run.Extinguished(); got != 3 {
		t.Errorf("expected fire out at frame 3, got %d", got)
	}
}

func TestSimulateNoSpread(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ISize, cfg.JSize = 5, 7
	cfg.PSpread = 0

	run, err := Simulate(cfg)
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}

	final := run.Final()
	if final.Count(Bare) != 1 || final.Count(Forest) != 34 {
		t.Errorf("only the centre should burn: bare=%d forest=%d", final.Count(Bare), final.Count(Forest))
	}
	if final[2][3] != Bare {
		t.Error("centre cell should have burnt out")
	}
}

func TestSimulateDeterministic(t *testing.T) {
	cfg := Config{
		Mode: Disease, ISize: 20, JSize: 20, NStep: 15,
		PSpread: 0.6, PBare: 0.2, PStart: 0.05, PFatal: 0.3, Seed: 7,
	}

	a, err := Simulate(cfg)
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}
	b, err := Simulate(cfg)
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}

	if !reflect.DeepEqual(a.Frames, b.Frames) {
		t.Error("same seed should reproduce the same frames")
	}
}

func TestDiseaseFatality(t *testing.T) {
	cfg := Config{Mode: Disease, ISize: 9, JSize: 9, NStep: 30, PSpread: 1, PFatal: 1}
	run, err := Simulate(cfg)
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}

	final := run.Final()
	if final.Count(Dead) != 81 {
		t.Errorf("certain spread and fatality should kill everyone, got %d dead", final.Count(Dead))
	}

	fr := final.Fractions()
	if fr.Dead != 1 || fr.Forest != 0 {
		t.Errorf("unexpected fractions %+v", fr)
	}
}

func TestFireNeverKills(t *testing.T) {
	cfg := Config{Mode: Fire, ISize: 9, JSize: 9, NStep: 30, PSpread: 1, PFatal: 1}
	run, err := Simulate(cfg)
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}
	if run.Final().Count(Dead) != 0 {
		t.Error("fatality only applies in disease mode")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		mut  func(*Config)
	}{
		{"zero rows", func(c *Config) { c.ISize = 0 }},
		{"zero steps", func(c *Config) { c.NStep = 0 }},
		{"spread above one", func(c *Config) { c.PSpread = 1.5 }},
		{"negative bare", func(c *Config) { c.PBare = -0.1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mut(&cfg)
			if _, err := Simulate(cfg); !errors.Is(err, ErrParameterBounds) {
				t.Errorf("expected ErrParameterBounds, got %v", err)
			}
		})
	}
}

func TestEnsemble(t *testing.T) {
	cfg := Config{Mode: Fire, ISize: 15, JSize: 15, NStep: 40, PSpread: 0.5, PBare: 0.1, Seed: 0}

	res, err := Ensemble(context.Background(), cfg, 8, 100)
	if err != nil {
		t.Fatalf("ensemble failed: %v", err)
	}
	if len(res) != 8 {
		t.Fatalf("expected 8 runs, got %d", len(res))
	}

	for i, s := range res {
		if s.Seed != int64(100+i) {
			t.Errorf("run %d: expected seed %d, got %d", i, 100+i, s.Seed)
		}

		c := cfg
		c.Seed = s.Seed
		run, err := Simulate(c)
		if err != nil {
			t.Fatalf("simulate failed: %v", err)
		}
		if run.Final().Fractions() != s.Final {
			t.Errorf("run %d: ensemble result differs from serial run", i)
		}
	}

	m := Mean(res)
	if total := m.Dead + m.Bare + m.Forest + m.Burning; total < 0.999 || total > 1.001 {
		t.Errorf("mean fractions should sum to 1, got %f", total)
	}
}

func TestEnsembleCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Ensemble(ctx, DefaultConfig(), 4, 0)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestEnsembleRejectsRunCount(t *testing.T) {
	for _, n := range []int{0, -1} {
		res, err := Ensemble(context.Background(), DefaultConfig(), n, 0)
		if !errors.Is(err, ErrParameterBounds) {
			t.Errorf("runs=%d: expected ErrParameterBounds, got %v", n, err)
		}
		if res != nil {
			t.Errorf("runs=%d: expected no results", n)
		}
	}
}

func TestParseMode(t *testing.T) {
	if m, err := ParseMode("disease"); err != nil || m != Disease {
		t.Errorf("expected disease, got %v, %v", m, err)
	}
	if _, err := ParseMode("flood"); err == nil {
		t.Error("expected error for unknown mode")
	}
}
