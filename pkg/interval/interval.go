package interval

// Interval is a confidence interval on the Poisson mean for one observed
// count. For the central construction 0 <= Lower <= Upper always holds; the
// sqrt baselines deliberately leave their bounds unclamped.
type Interval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// Contains reports whether mean lies strictly inside the interval.
func (iv Interval) Contains(mean float64) bool {
	return iv.Lower < mean && mean < iv.Upper
}

// Table holds one interval per observed count, indexed from 0. Tables are
// built once and never mutated.
type Table []Interval
