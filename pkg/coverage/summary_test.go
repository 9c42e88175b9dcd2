package coverage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	curve := Curve{
		{Mean: 0.5, Probability: 0.6},
		{Mean: 1.5, Probability: 0.7},
		{Mean: 2.5, Probability: 0.8},
	}
	s, err := Summarize(curve, 0.683)
	require.NoError(t, err)

	assert.InDelta(t, 0.6, s.Min, 1e-12)
	assert.InDelta(t, 0.8, s.Max, 1e-12)
	assert.InDelta(t, 0.7, s.Mean, 1e-12)
	assert.InDelta(t, 1.0/3.0, s.BelowTarget, 1e-12)
}

func TestSummarizeEmptyCurve(t *testing.T) {
	_, err := Summarize(nil, 0.683)
	assert.Error(t, err)
}
