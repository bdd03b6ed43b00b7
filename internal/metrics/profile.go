package metrics

import "math"

// Peak is the largest value seen anywhere in the field.
type Peak struct {
	name string
	peak float64
	seen bool
}

func NewPeak() *Peak {
	return &Peak{name: "peak"}
}

func (p *Peak) Name() string { return p.name }

func (p *Peak) Observe(col []float64, t float64) {
	for _, v := range col {
		if !p.seen || v > p.peak {
			p.peak = v
			p.seen = true
		}
	}
}

func (p *Peak) Value() float64 { return p.peak }

func (p *Peak) Reset() {
	p.peak = 0
	p.seen = false
}

// ActiveLayer counts the leading nodes whose maximum over time rises above
// threshold. On a permafrost run with depth as the space axis this is the
// seasonally thawed layer, in grid nodes.
type ActiveLayer struct {
	name      string
	threshold float64
	max       []float64
}

func NewActiveLayer(threshold float64) *ActiveLayer {
	return &ActiveLayer{name: "active_layer", threshold: threshold}
}

func (a *ActiveLayer) Name() string { return a.name }

func (a *ActiveLayer) Observe(col []float64, t float64) {
	if a.max == nil {
		a.max = make([]float64, len(col))
		for i := range a.max {
			a.max[i] = math.Inf(-1)
		}
	}
	for i, v := range col {
		if i < len(a.max) && v > a.max[i] {
			a.max[i] = v
		}
	}
}

func (a *ActiveLayer) Value() float64 {
	n := 0
	for _, v := range a.max {
		if v <= a.threshold {
			break
		}
		n++
	}
	return float64(n)
}

func (a *ActiveLayer) Reset() { a.max = nil }
