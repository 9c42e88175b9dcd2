package poisson

import (
	"gonum.org/v1/gonum/mathext"
)

// TailAbove returns P(X >= n) for X ~ Poisson(mean), via the regularized
// lower incomplete gamma function identity P(X >= n) = P(n, mean).
// For n <= 0 the tail is the whole distribution and the result is exactly 1.
func TailAbove(n int, mean float64) float64 {
	if n <= 0 {
		return 1
	}
	return mathext.GammaIncReg(float64(n), mean)
}

// TailBelow returns P(X <= n) for X ~ Poisson(mean), via the complementary
// identity P(X <= n) = Q(n+1, mean). For n < 0 the result is exactly 0.
func TailBelow(n int, mean float64) float64 {
	if n < 0 {
		return 0
	}
	return mathext.GammaIncRegComp(float64(n+1), mean)
}
