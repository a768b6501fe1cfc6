package lognormal

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestQuantileSaturation(t *testing.T) {
	d := New(0, 1)
	tt := []struct {
		p   float64
		exp float64
	}{
		{p: 0, exp: -16},
		{p: -0.5, exp: -16},
		{p: math.Inf(-1), exp: -16},
		{p: 1, exp: 16},
		{p: 3, exp: 16},
		{p: math.Inf(1), exp: 16},
	}
	for _, tc := range tt {
		v, err := d.Quantile(tc.p)
		require.NoError(t, err)
		assert.Equal(t, tc.exp, v, "p=%g", tc.p)
	}

	d.SetSearch(SearchSettings{Low: -3, High: 5, Tolerance: 1e-7, MaxIterations: 70})
	v, err := d.Quantile(0)
	require.NoError(t, err)
	assert.Equal(t, -3.0, v)
	v, err = d.Quantile(1)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)
}

func TestQuantileStandard(t *testing.T) {
	d := New(0, 1)

	median, err := d.Quantile(0.5)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, median, 1e-7)

	// CDF(e^(mu+sigma)) is the standard normal CDF at 1
	x, err := d.Quantile(0.8413447460685429)
	require.NoError(t, err)
	assert.InDelta(t, math.E, x, 1e-5)
}

func TestQuantileRoundTrip(t *testing.T) {
	probs := []float64{1e-3, 0.01, 0.1, 0.25, 0.5, 0.75, 0.9, 0.99, 0.999}
	for _, tc := range params {
		t.Run(tc.name, func(t *testing.T) {
			d := New(tc.mu, tc.sigma)
			ref := distuv.LogNormal{Mu: tc.mu, Sigma: tc.sigma}
			for _, p := range probs {
				x, err := d.Quantile(p)
				require.NoError(t, err, "p=%g", p)

				got, err := d.CDF(x)
				require.NoError(t, err)
				assert.InDelta(t, p, got, DefaultTolerance, "p=%g", p)

				// a CDF error of 1e-7 moves ln(x) by at most 1e-7 / min density
				want := ref.Quantile(p)
				assert.InDelta(t, math.Log(want), math.Log(x), 1e-7*tc.sigma/0.003, "p=%g", p)
			}
		})
	}
}

func TestQuantileMedianIsExpMu(t *testing.T) {
	for _, tc := range params {
		d := New(tc.mu, tc.sigma)
		x, err := d.Quantile(0.5)
		require.NoError(t, err)
		assert.InEpsilon(t, math.Exp(tc.mu), x, 1e-6, tc.name)
	}
}

func TestQuantileNonConvergence(t *testing.T) {
	for _, mu := range []float64{100, -100} {
		d := New(mu, 1)
		v, err := d.Quantile(0.5)
		assert.True(t, errors.Is(err, ErrNonConvergence), "mu=%g: got %v", mu, err)
		assert.False(t, errors.Is(err, ErrInvalidParameter))
		assert.Zero(t, v, "no approximate value on failure")

		// a wider bracket reaches it
		d.SetSearch(SearchSettings{Low: -200, High: 200, Tolerance: 1e-7, MaxIterations: 70})
		x, err := d.Quantile(0.5)
		require.NoError(t, err)
		assert.InEpsilon(t, math.Exp(mu), x, 1e-6)
	}
}

func TestQuantileIterationCap(t *testing.T) {
	d := New(0, 1, WithSearch(SearchSettings{Low: -16, High: 16, Tolerance: 1e-7, MaxIterations: 3}))
	_, err := d.Quantile(0.3)
	assert.True(t, errors.Is(err, ErrNonConvergence))
}

func TestQuantileInvalidInput(t *testing.T) {
	d := New(0, 1)
	_, err := d.Quantile(math.NaN())
	assert.True(t, errors.Is(err, ErrDomain))

	tt := []struct {
		name string
		s    SearchSettings
	}{
		{name: "reversed", s: SearchSettings{Low: 16, High: -16, Tolerance: 1e-7, MaxIterations: 70}},
		{name: "empty", s: SearchSettings{Low: 1, High: 1, Tolerance: 1e-7, MaxIterations: 70}},
		{name: "infinite", s: SearchSettings{Low: math.Inf(-1), High: 16, Tolerance: 1e-7, MaxIterations: 70}},
		{name: "nan", s: SearchSettings{Low: math.NaN(), High: 16, Tolerance: 1e-7, MaxIterations: 70}},
		{name: "zero tolerance", s: SearchSettings{Low: -16, High: 16, Tolerance: 0, MaxIterations: 70}},
		{name: "no iterations", s: SearchSettings{Low: -16, High: 16, Tolerance: 1e-7, MaxIterations: 0}},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, errors.Is(tc.s.Validate(), ErrInvalidSearch))
			d.SetSearch(tc.s)
			_, err := d.Quantile(0.5)
			assert.True(t, errors.Is(err, ErrInvalidSearch), "got %v", err)
		})
	}
	assert.NoError(t, DefaultSearch().Validate())
}

func TestQuantileTieBreak(t *testing.T) {
	// with mu = 0 the first midpoint hits the median exactly
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	d := New(0, 1, WithLogger(logger))

	x, err := d.Quantile(0.5)
	require.NoError(t, err)
	assert.Equal(t, 1.0, x)

	require.Len(t, hook.AllEntries(), 1)
	e := hook.LastEntry()
	assert.Equal(t, logrus.DebugLevel, e.Level)
	assert.Equal(t, 1, e.Data["iter"])
	assert.Equal(t, 0.0, e.Data["mid"])
	assert.Equal(t, 0.5, e.Data["cdf"])
}

func TestQuantileTrace(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	d := New(0, 1, WithLogger(logger))

	_, err := d.Quantile(0.8413447460685429)
	require.NoError(t, err)
	entries := hook.AllEntries()
	require.NotEmpty(t, entries)
	for i, e := range entries {
		assert.Equal(t, i+1, e.Data["iter"])
	}

	hook.Reset()
	d = New(100, 1, WithLogger(logger))
	_, err = d.Quantile(0.5)
	require.Error(t, err)
	assert.Len(t, hook.AllEntries(), DefaultMaxIterations)
}
