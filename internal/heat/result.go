package heat

import "math"

// Result holds the axes and the solution field, Field[space][time].
type Result struct {
	Time  []float64
	Space []float64
	Field [][]float64
	R     float64
}

// Shape returns (M, N).
func (r *Result) Shape() (int, int) {
	if len(r.Field) == 0 {
		return 0, 0
	}
	return len(r.Field), len(r.Field[0])
}

// Column copies the profile at time index j.
func (r *Result) Column(j int) []float64 {
	col := make([]float64, len(r.Field))
	for i := range r.Field {
		col[i] = r.Field[i][j]
	}
	return col
}

// At returns the time index closest to t.
func (r *Result) At(t float64) int {
	best, dist := 0, math.Inf(1)
	for j, tj := range r.Time {
		if d := math.Abs(tj - t); d < dist {
			best, dist = j, d
		}
	}
	return best
}

// InteriorSum sums column j over the non-edge nodes. With Neumann edges it
// is the quantity the scheme conserves.
func (r *Result) InteriorSum(j int) float64 {
	sum := 0.0
	for i := 1; i < len(r.Field)-1; i++ {
		sum += r.Field[i][j]
	}
	return sum
}

// Extrema returns the minimum and maximum over the whole field.
func (r *Result) Extrema() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, row := range r.Field {
		for _, v := range row {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	return lo, hi
}
