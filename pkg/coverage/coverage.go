package coverage

// Point is the coverage probability at one true mean. Err is the binomial
// standard error for simulated points and zero for exact evaluation.
type Point struct {
	Mean        float64 `json:"mean"`
	Probability float64 `json:"probability"`
	Err         float64 `json:"err"`
}

// Curve is a coverage scan over an evenly spaced grid of true means.
type Curve []Point

// Grid returns nGrid mid-bin means covering (min, max): mean j sits at
// min + (j+0.5)*step, so neither endpoint is ever sampled exactly.
func Grid(min, max float64, nGrid int) []float64 {
	step := (max - min) / float64(nGrid)
	means := make([]float64, nGrid)
	for j := range means {
		means[j] = min + (float64(j)+0.5)*step
	}
	return means
}
