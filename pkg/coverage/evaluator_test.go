package coverage

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hepstats/poissoncover/pkg/interval"
	"github.com/hepstats/poissoncover/pkg/poisson"
)

func TestGrid(t *testing.T) {
	means := Grid(0, 10, 100)
	require.Len(t, means, 100)

	assert.InDelta(t, 0.05, means[0], 1e-12)
	assert.InDelta(t, 9.95, means[99], 1e-12)
	for j := 1; j < len(means); j++ {
		assert.InDelta(t, 0.1, means[j]-means[j-1], 1e-12)
	}
}

func TestExactCentralCoverageMeetsTarget(t *testing.T) {
	const cl = 0.683
	table, err := interval.BuildCentral(175, cl)
	require.NoError(t, err)

	ev := &Evaluator{Table: table}
	curve, err := ev.Exact(Grid(0, 10, 100))
	require.NoError(t, err)

	for _, pt := range curve {
		assert.GreaterOrEqual(t, pt.Probability, cl-1e-6, "mean %g", pt.Mean)
		assert.Zero(t, pt.Err, "mean %g", pt.Mean)
	}
}

func TestSimulationAgreesWithExact(t *testing.T) {
	const (
		cl   = 0.683
		nRep = 1000
	)
	table, err := interval.BuildCentral(60, cl)
	require.NoError(t, err)

	means := Grid(0, 10, 100)
	ev := &Evaluator{Table: table}

	exact, err := ev.Exact(means)
	require.NoError(t, err)
	simulated, err := ev.Simulate(means, nRep, poisson.NewSampler(3))
	require.NoError(t, err)
	require.Len(t, simulated, len(exact))

	agree := 0
	for j := range exact {
		diff := math.Abs(simulated[j].Probability - exact[j].Probability)
		if diff <= 3*simulated[j].Err {
			agree++
		}
	}
	assert.GreaterOrEqual(t, agree, 95, "agreement on %d of %d grid points", agree, len(exact))
}

func TestSqrtIntervalsUnderCoverAtMeanOne(t *testing.T) {
	const cl = 0.683
	central, err := interval.BuildCentral(10, cl)
	require.NoError(t, err)
	sqrt := interval.BuildSqrt(10)

	means := []float64{1}
	centralCurve, err := (&Evaluator{Table: central}).Exact(means)
	require.NoError(t, err)
	sqrtCurve, err := (&Evaluator{Table: sqrt}).Exact(means)
	require.NoError(t, err)

	assert.Less(t, sqrtCurve[0].Probability, cl)
	assert.Less(t, sqrtCurve[0].Probability, centralCurve[0].Probability)
}

func TestExactDetectsContainmentGap(t *testing.T) {
	table := interval.Table{
		{Lower: 0, Upper: 2},
		{Lower: 5, Upper: 7},
		{Lower: 0.5, Upper: 3},
		{Lower: 8, Upper: 9},
	}
	_, err := (&Evaluator{Table: table}).Exact([]float64{1})
	require.ErrorIs(t, err, ErrRunGap)
}

func TestExactFailsWhenNoIntervalCoversMean(t *testing.T) {
	table := interval.Table{
		{Lower: 1, Upper: 2},
		{Lower: 1.5, Upper: 3},
	}
	_, err := (&Evaluator{Table: table}).Exact([]float64{5})
	require.ErrorIs(t, err, ErrNoInterval)
}

func TestExactFailsWhenRunReachesTableEnd(t *testing.T) {
	table, err := interval.BuildCentral(3, 0.683)
	require.NoError(t, err)

	_, err = (&Evaluator{Table: table}).Exact([]float64{2.5})
	require.ErrorIs(t, err, ErrRunTruncated)
}

func TestSimulateOutOfRangeCountsAsMiss(t *testing.T) {
	table, err := interval.BuildCentral(2, 0.683)
	require.NoError(t, err)

	ev := &Evaluator{Table: table}
	curve, err := ev.Simulate([]float64{8}, 200, poisson.NewSampler(5))
	require.NoError(t, err)
	require.Len(t, curve, 1)

	// almost every draw at mean 8 exceeds the two tabulated counts and
	// must land in the fixed denominator as a miss
	p := curve[0].Probability
	assert.Less(t, p, 0.2)
	assert.InDelta(t, math.Sqrt(200*p*(1-p))/200, curve[0].Err, 1e-15)
}

func TestSimulateStrictRange(t *testing.T) {
	table, err := interval.BuildCentral(2, 0.683)
	require.NoError(t, err)

	ev := &Evaluator{Table: table, StrictRange: true}
	_, err = ev.Simulate([]float64{8}, 50, poisson.NewSampler(5))
	require.ErrorIs(t, err, ErrCountRange)
}

func TestSimulateRejectsBadRepetitions(t *testing.T) {
	ev := &Evaluator{Table: interval.BuildSqrt(5)}
	_, err := ev.Simulate([]float64{1}, 0, poisson.NewSampler(1))
	assert.Error(t, err)
}
