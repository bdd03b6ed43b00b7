package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/san-kum/climlab/internal/heat"
	"github.com/san-kum/climlab/internal/metrics"
	"github.com/san-kum/climlab/internal/report"
	"github.com/san-kum/climlab/internal/storage"
)

func runHeat(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, "heat")
	if err != nil {
		return err
	}

	p, err := cfg.Heat.Params()
	if err != nil {
		return err
	}

	m, n := p.Shape()
	level.Debug(logger).Log("msg", "solving", "nodes", m, "steps", n, "r", p.Stability(),
		"lower", p.Lower, "upper", p.Upper)

	start := time.Now()
	res, err := heat.Solve(p)
	if err != nil {
		var se *heat.StabilityError
		if errors.As(err, &se) {
			level.Warn(logger).Log("msg", "reduce dt or increase dx", "dt", se.Dt, "dt_max", se.DtMax, "r", se.R)
		}
		return err
	}
	level.Info(logger).Log("msg", "solved", "model", "heat", "elapsed", time.Since(start))

	vals := metrics.Evaluate(res, metrics.Defaults()...)

	pairs := []report.Pair{
		report.F("r", res.R),
		report.F("dt max", p.MaxDt()),
		report.S("grid", fmt.Sprintf("%d x %d", m, n)),
		report.S("lower", p.Lower.String()),
		report.S("upper", p.Upper.String()),
	}
	pairs = append(pairs, report.Metrics(vals)...)
	fmt.Println(report.Summary("heat equation", pairs...))
	fmt.Println()

	cols := report.Sample(n, showColumns)
	headers := make([]string, 0, len(cols)+1)
	headers = append(headers, "x")
	for _, j := range cols {
		headers = append(headers, fmt.Sprintf("t=%.4g", res.Time[j]))
	}
	rows := make([][]float64, m)
	for i := range rows {
		row := make([]float64, 0, len(cols)+1)
		row = append(row, res.Space[i])
		for _, j := range cols {
			row = append(row, res.Field[i][j])
		}
		rows[i] = row
	}
	fmt.Println(report.Table(headers, rows, 5))

	h := cfg.Heat
	return saveRun(storage.RunMetadata{
		Model: "heat",
		Params: map[string]float64{
			"xstop": h.XStop, "tstop": h.TStop, "dx": h.Dx, "dt": h.Dt, "c2": h.C2, "r": res.R,
		},
		Labels: map[string]string{
			"lower":   p.Lower.String(),
			"upper":   p.Upper.String(),
			"initial": h.Initial.Type,
		},
		Metrics: vals,
	}, storage.FieldTable(res))
}
