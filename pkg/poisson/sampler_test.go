package poisson

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSamplerIsReproducible(t *testing.T) {
	a := NewSampler(42)
	b := NewSampler(42)
	for i := 0; i < 1000; i++ {
		assert.Equal(t, a.Draw(3.7), b.Draw(3.7), "draw %d diverged", i)
	}
}

func TestSamplerSeedsDiffer(t *testing.T) {
	a := NewSampler(1)
	b := NewSampler(2)
	same := true
	for i := 0; i < 100; i++ {
		if a.Draw(5) != b.Draw(5) {
			same = false
			break
		}
	}
	assert.False(t, same, "different seeds produced identical draw sequences")
}

func TestSamplerMeanApproximatesLambda(t *testing.T) {
	const (
		lambda = 4.0
		n      = 20000
	)
	s := NewSampler(7)
	sum := 0
	for i := 0; i < n; i++ {
		sum += s.Draw(lambda)
	}
	got := float64(sum) / n
	// std error is sqrt(lambda/n) ~ 0.014, so 0.1 is a generous margin
	assert.InDelta(t, lambda, got, 0.1)
}
