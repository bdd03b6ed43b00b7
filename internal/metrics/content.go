package metrics

import "math"

func interiorSum(col []float64) float64 {
	sum := 0.0
	for i := 1; i < len(col)-1; i++ {
		sum += col[i]
	}
	return sum
}

// HeatContent is the interior sum of the last observed column.
type HeatContent struct {
	name    string
	content float64
}

func NewHeatContent() *HeatContent {
	return &HeatContent{name: "heat_content"}
}

func (h *HeatContent) Name() string { return h.name }

func (h *HeatContent) Observe(col []float64, t float64) {
	h.content = interiorSum(col)
}

func (h *HeatContent) Value() float64 { return h.content }

func (h *HeatContent) Reset() { h.content = 0 }

// ContentDrift tracks the largest relative change of interior heat content
// from the first observation.
type ContentDrift struct {
	name     string
	initial  float64
	maxDrift float64
	samples  int
}

func NewContentDrift() *ContentDrift {
	return &ContentDrift{name: "content_drift"}
}

func (c *ContentDrift) Name() string { return c.name }

func (c *ContentDrift) Observe(col []float64, t float64) {
	content := interiorSum(col)
	if c.samples == 0 {
		c.initial = content
	}
	c.samples++

	if c.initial != 0 {
		drift := math.Abs(content-c.initial) / math.Abs(c.initial)
		c.maxDrift = math.Max(c.maxDrift, drift)
	}
}

func (c *ContentDrift) Value() float64 { return c.maxDrift }

func (c *ContentDrift) Reset() {
	c.initial = 0
	c.maxDrift = 0
	c.samples = 0
}
