package poisson

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Sampler draws Poisson-distributed counts from a single sequential random
// source. Draws must stay on one goroutine; a fixed seed reproduces the
// exact draw sequence.
type Sampler struct {
	src rand.Source
}

func NewSampler(seed uint64) *Sampler {
	return &Sampler{src: rand.NewPCG(seed, seed)}
}

// NewSamplerFromSource wraps an existing source, for callers that share one
// source across several consumers.
func NewSamplerFromSource(src rand.Source) *Sampler {
	return &Sampler{src: src}
}

// Draw returns one Poisson(mean) count.
func (s *Sampler) Draw(mean float64) int {
	d := distuv.Poisson{Lambda: mean, Src: s.src}
	return int(d.Rand())
}
