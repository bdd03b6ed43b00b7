package main

import (
	"context"
	"fmt"
	"math"

	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/san-kum/climlab/internal/atmosphere"
	"github.com/san-kum/climlab/internal/deriv"
	"github.com/san-kum/climlab/internal/forest"
	"github.com/san-kum/climlab/internal/report"
	"github.com/san-kum/climlab/internal/storage"
)

func runCooling(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, "cooling")
	if err != nil {
		return err
	}
	c := cfg.Cooling
	p := c.Params()

	times, euler, err := p.Euler(c.Dt, c.TStop)
	if err != nil {
		return err
	}
	_, rk4, err := p.RK4(c.Dt, c.TStop)
	if err != nil {
		return err
	}
	exact := p.Series(times)

	eulerErr, rk4Err := 0.0, 0.0
	for i := range times {
		eulerErr = math.Max(eulerErr, math.Abs(euler[i]-exact[i]))
		rk4Err = math.Max(rk4Err, math.Abs(rk4[i]-exact[i]))
	}

	pairs := []report.Pair{
		report.F("t init", p.TInit),
		report.F("t env", p.TEnv),
		report.F("k", p.K),
		report.F("euler max err", eulerErr),
		report.F("rk4 max err", rk4Err),
	}
	metricVals := map[string]float64{"euler_max_err": eulerErr, "rk4_max_err": rk4Err}

	if tt, err := p.TimeToReach(c.Target); err == nil {
		pairs = append(pairs, report.F("time to target", tt))
		metricVals["time_to_target"] = tt
	} else {
		level.Warn(logger).Log("msg", "target not reached", "target", c.Target, "err", err)
	}

	if cmp, err := p.CompareCream(c.Cream, c.Target); err == nil {
		pairs = append(pairs, report.F("cream first", cmp.CreamFirst), report.F("cream last", cmp.CreamLast))
		metricVals["cream_first"] = cmp.CreamFirst
		metricVals["cream_last"] = cmp.CreamLast
	}
	fmt.Println(report.Summary("coffee cooling", pairs...))
	fmt.Println()

	table, err := storage.SeriesTable([]string{"t", "analytic", "euler", "rk4"}, times, exact, euler, rk4)
	if err != nil {
		return err
	}
	rows := make([][]float64, 0, 12)
	for _, i := range report.Sample(len(times), 12) {
		rows = append(rows, table.Rows[i])
	}
	fmt.Println(report.Table(table.Header, rows, 3))

	return saveRun(storage.RunMetadata{
		Model:   "cooling",
		Params:  map[string]float64{"t_init": p.TInit, "t_env": p.TEnv, "k": p.K, "dt": c.Dt, "tstop": c.TStop},
		Metrics: metricVals,
	}, table)
}

func runAtmosphere(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, "atmosphere")
	if err != nil {
		return err
	}
	a := cfg.Atmosphere

	eq, err := atmosphere.NLayer(a.Layers, a.Epsilon, a.Albedo, a.S0)
	if err != nil {
		return err
	}

	fmt.Println(report.Summary("n-layer atmosphere",
		report.F("layers", float64(a.Layers)),
		report.F("epsilon", a.Epsilon),
		report.F("albedo", a.Albedo),
		report.F("s0", a.S0),
		report.F("surface (K)", eq.Surface()),
		report.F("single layer (K)", atmosphere.SingleLayer(a.S0, a.Albedo, a.Epsilon)),
	))
	fmt.Println()

	idx := make([]float64, len(eq.Fluxes))
	for i := range idx {
		idx[i] = float64(i)
	}
	table, err := storage.SeriesTable([]string{"level", "flux", "temperature"}, idx, eq.Fluxes, eq.Temperatures)
	if err != nil {
		return err
	}
	fmt.Println(report.Table(table.Header, table.Rows, 2))

	return saveRun(storage.RunMetadata{
		Model:   "atmosphere",
		Params:  map[string]float64{"layers": float64(a.Layers), "epsilon": a.Epsilon, "albedo": a.Albedo, "s0": a.S0},
		Metrics: map[string]float64{"surface": eq.Surface()},
	}, table)
}

func runForcing(cmd *cobra.Command, args []string) error {
	years := []float64{1900, 1950, 2000}
	s0 := []float64{1365.0, 1366.5, 1368.0}
	anomalies := []float64{-0.4, 0, 0.4}

	pts, err := atmosphere.SolarForcing(years, s0, anomalies, 1, atmosphere.DefaultAlbedo, atmosphere.DefaultEpsilon)
	if err != nil {
		return err
	}

	rows := make([][]float64, len(pts))
	for i, p := range pts {
		rows[i] = []float64{p.Year, p.S0, p.Predicted, p.Observed}
	}
	fmt.Println(report.Table([]string{"year", "s0", "predicted (K)", "observed (K)"}, rows, 3))
	share := (pts[2].Predicted - pts[0].Predicted) / (pts[2].Observed - pts[0].Observed)
	fmt.Println(report.Note(fmt.Sprintf("solar forcing explains %.0f%% of observed warming", 100*share)))
	return nil
}

func runForest(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, "forest")
	if err != nil {
		return err
	}
	fc, err := cfg.ForestConfig()
	if err != nil {
		return err
	}

	if cfg.Forest.Runs > 1 {
		return runForestEnsemble(cmd.Context(), fc, cfg.Forest.Runs)
	}

	run, err := forest.Simulate(fc)
	if err != nil {
		return err
	}

	hist := run.History()
	frame := make([]float64, len(hist))
	dead := make([]float64, len(hist))
	bare := make([]float64, len(hist))
	live := make([]float64, len(hist))
	burning := make([]float64, len(hist))
	for k, h := range hist {
		frame[k] = float64(k)
		dead[k], bare[k], live[k], burning[k] = h.Dead, h.Bare, h.Forest, h.Burning
	}
	names := stateNames(fc.Mode)
	table, err := storage.SeriesTable(append([]string{"frame"}, names...), frame, dead, bare, live, burning)
	if err != nil {
		return err
	}

	final := hist[len(hist)-1]
	fmt.Println(report.Summary(fc.Mode.String()+" automaton",
		report.S("grid", fmt.Sprintf("%d x %d", fc.ISize, fc.JSize)),
		report.S("seed", fmt.Sprint(fc.Seed)),
		report.F("extinguished", float64(run.Extinguished())),
		report.F(names[2], final.Forest),
		report.F(names[1], final.Bare),
		report.F(names[0], final.Dead),
	))
	fmt.Println()

	rows := make([][]float64, 0, 12)
	for _, i := range report.Sample(len(table.Rows), 12) {
		rows = append(rows, table.Rows[i])
	}
	fmt.Println(report.Table(table.Header, rows, 3))

	return saveRun(storage.RunMetadata{
		Model: "forest",
		Seed:  fc.Seed,
		Params: map[string]float64{
			"isize": float64(fc.ISize), "jsize": float64(fc.JSize), "nstep": float64(fc.NStep),
			"pspread": fc.PSpread, "pbare": fc.PBare, "pstart": fc.PStart, "pfatal": fc.PFatal,
		},
		Labels:  map[string]string{"mode": fc.Mode.String()},
		Metrics: map[string]float64{"extinguished": float64(run.Extinguished()), "final_" + names[2]: final.Forest},
	}, table)
}

func runForestEnsemble(ctx context.Context, fc forest.Config, n int) error {
	if ctx == nil {
		ctx = context.Background()
	}
	level.Info(logger).Log("msg", "running ensemble", "runs", n, "seed_start", fc.Seed)

	res, err := forest.Ensemble(ctx, fc, n, fc.Seed)
	if err != nil {
		return err
	}

	names := stateNames(fc.Mode)
	seeds := make([]float64, len(res))
	dead := make([]float64, len(res))
	bare := make([]float64, len(res))
	live := make([]float64, len(res))
	ext := make([]float64, len(res))
	for i, s := range res {
		seeds[i] = float64(s.Seed)
		dead[i], bare[i], live[i] = s.Final.Dead, s.Final.Bare, s.Final.Forest
		ext[i] = float64(s.Extinguished)
	}
	table, err := storage.SeriesTable([]string{"seed", names[0], names[1], names[2], "extinguished"},
		seeds, dead, bare, live, ext)
	if err != nil {
		return err
	}
	fmt.Println(report.Table(table.Header, table.Rows, 3))

	mean := forest.Mean(res)
	fmt.Println(report.Summary("ensemble mean",
		report.F(names[0], mean.Dead),
		report.F(names[1], mean.Bare),
		report.F(names[2], mean.Forest),
	))

	return saveRun(storage.RunMetadata{
		Model: "forest",
		Seed:  fc.Seed,
		Params: map[string]float64{
			"isize": float64(fc.ISize), "jsize": float64(fc.JSize), "nstep": float64(fc.NStep),
			"pspread": fc.PSpread, "pbare": fc.PBare, "pstart": fc.PStart, "pfatal": fc.PFatal,
			"runs": float64(n),
		},
		Labels: map[string]string{"mode": fc.Mode.String(), "kind": "ensemble"},
		Metrics: map[string]float64{
			"mean_" + names[0]: mean.Dead,
			"mean_" + names[1]: mean.Bare,
			"mean_" + names[2]: mean.Forest,
		},
	}, table)
}

func stateNames(m forest.Mode) []string {
	if m == forest.Disease {
		return []string{"dead", "immune", "healthy", "sick"}
	}
	return []string{"dead", "bare", "forest", "burning"}
}

func runDeriv(cmd *cobra.Command, args []string) error {
	dxs := make([]float64, derivSteps)
	for n := range dxs {
		dxs[n] = math.Pow(2, -float64(n))
	}

	s, err := deriv.Convergence(math.Sin, math.Cos, derivStop, dxs)
	if err != nil {
		return err
	}

	rows := make([][]float64, len(dxs))
	for k := range dxs {
		rows[k] = []float64{s.Dx[k], s.Forward[k], s.Central[k]}
	}
	fmt.Println(report.Table([]string{"dx", "forward err", "central err"}, rows, 10))

	pairs := make([]report.Pair, 0, 2)
	if o, err := deriv.Order(s.Dx, s.Forward); err == nil {
		pairs = append(pairs, report.F("forward order", o))
	}
	if o, err := deriv.Order(s.Dx, s.Central); err == nil {
		pairs = append(pairs, report.F("central order", o))
	}
	fmt.Println(report.Summary("convergence", pairs...))
	return nil
}
