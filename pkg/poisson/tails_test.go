package poisson

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestTailBelowMatchesPoissonCDF(t *testing.T) {
	const tol = 1e-10
	tests := []struct {
		n    int
		mean float64
		want float64
	}{
		{0, 1, 0.367879441171442},
		{1, 1, 0.735758882342885},
		{2, 1, 0.919698602928606},
		{5, 1, 0.999405815182418},
		{0, 2.5, 0.082084998623899},
		{1, 2.5, 0.287297495183646},
		{3, 2.5, 0.757576133133066},
		{9, 2.5, 0.999722647905379},
	}
	for _, tt := range tests {
		got := TailBelow(tt.n, tt.mean)
		if !scalar.EqualWithinAbs(got, tt.want, tol) {
			t.Errorf("TailBelow(%d, %g) = %e, want %e", tt.n, tt.mean, got, tt.want)
		}
	}
}

func TestTailAboveComplementsTailBelow(t *testing.T) {
	const tol = 1e-12
	for _, mean := range []float64{0.1, 1, 2.5, 10, 50} {
		for n := 1; n <= 20; n++ {
			above := TailAbove(n, mean)
			below := TailBelow(n-1, mean)
			if !scalar.EqualWithinAbs(above+below, 1, tol) {
				t.Errorf("TailAbove(%d, %g) + TailBelow(%d, %g) = %v, want 1",
					n, mean, n-1, mean, above+below)
			}
		}
	}
}

func TestTailAboveMatchesDistuvSurvival(t *testing.T) {
	const tol = 1e-10
	for _, mean := range []float64{0.5, 1, 4, 12} {
		d := distuv.Poisson{Lambda: mean}
		for n := 1; n <= 15; n++ {
			want := 1 - d.CDF(float64(n-1))
			got := TailAbove(n, mean)
			if !scalar.EqualWithinAbs(got, want, tol) {
				t.Errorf("TailAbove(%d, %g) = %e, want %e", n, mean, got, want)
			}
		}
	}
}

func TestTailEdgeCases(t *testing.T) {
	assert.Equal(t, 1.0, TailAbove(0, 3.5))
	assert.Equal(t, 1.0, TailAbove(-1, 3.5))
	assert.Equal(t, 0.0, TailBelow(-1, 3.5))
	assert.Equal(t, 0.0, TailAbove(3, 0))
	assert.Equal(t, 1.0, TailBelow(3, 0))
	assert.InDelta(t, math.Exp(-2), TailBelow(0, 2), 1e-14)
}
