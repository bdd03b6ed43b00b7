// Package metrics observes a solved field one time column at a time and
// reduces it to named scalars for run summaries.
package metrics

import "github.com/san-kum/climlab/internal/heat"

type Metric interface {
	Name() string
	Observe(col []float64, t float64)
	Value() float64
	Reset()
}

// Defaults returns the metrics recorded for every heat run.
func Defaults() []Metric {
	return []Metric{
		NewHeatContent(),
		NewContentDrift(),
		NewPeak(),
		NewActiveLayer(0),
	}
}

// Evaluate resets each metric, feeds it every column of res in time order
// and collects the values by name.
func Evaluate(res *heat.Result, ms ...Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		m.Reset()
	}
	for j, t := range res.Time {
		col := res.Column(j)
		for _, m := range ms {
			m.Observe(col, t)
		}
	}
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}
