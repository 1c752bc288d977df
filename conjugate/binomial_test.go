// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conjugate

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/aclements/go-conjugate/stats"
)

const tol = 1e-4

func TestBinomialBeta_Contract(t *testing.T) {
	bp := NewBinomialBeta()
	assert.Equal(t, "Binomial", bp.Distribution())
	assert.Equal(t, "Beta", bp.Prior())
	assert.True(t, bp.Contains("p"))
	assert.False(t, bp.Contains("a"))
	assert.Equal(t, []string{"p"}, bp.Parameters())
	assert.Equal(t, []string{"alpha", "beta"}, bp.HyperparameterNames())
	assert.Equal(t, map[string]float64{"alpha": 1, "beta": 1}, bp.Hyperparameters())
	assert.Equal(t, map[string]int{"n": 0, "k": 0}, bp.Data())

	lo, hi, err := bp.Support("p")
	require.NoError(t, err)
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 1.0, hi)
	_, _, err = bp.Support("q")
	assert.True(t, errors.Is(err, ErrParameter))

	// Parameters is restartable and owned by the caller.
	ps := bp.Parameters()
	ps[0] = "x"
	assert.Equal(t, []string{"p"}, bp.Parameters())
}

func TestBinomialBeta_Means(t *testing.T) {
	bp := NewBinomialBeta()
	mean, err := bp.PriorMean("p")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, mean, 1e-12)

	require.NoError(t, bp.AddData(map[string]int{"n": 5, "k": 2}))
	mean, err = bp.PosteriorMean("p")
	require.NoError(t, err)
	assert.InDelta(t, 3.0/7, mean, 1e-12)

	_, err = bp.PriorMean("a")
	assert.True(t, errors.Is(err, ErrParameter))
	_, err = bp.PosteriorMean("a")
	assert.True(t, errors.Is(err, ErrParameter))
}

func TestBinomialBeta_PosteriorMeanFormula(t *testing.T) {
	bp := NewBinomialBeta()
	for _, prior := range [][2]float64{{1, 1}, {0.5, 0.5}, {2, 7}, {10, 3}} {
		require.NoError(t, bp.SetPrior(prior[0], prior[1]))
		for _, n := range []int{0, 1, 7, 40} {
			prev := math.Inf(-1)
			for k := 0; k <= n; k++ {
				require.NoError(t, bp.SetData(map[string]int{"n": n, "k": k}))
				mean, err := bp.PosteriorMean("p")
				require.NoError(t, err)
				want := (prior[0] + float64(k)) / (prior[0] + prior[1] + float64(n))
				assert.InDelta(t, want, mean, 1e-12)
				assert.GreaterOrEqual(t, mean, prev, "posterior mean not monotone in k")
				prev = mean
			}
		}
	}
}

func TestBinomialBeta_Regions(t *testing.T) {
	bp := NewBinomialBeta()
	require.NoError(t, bp.AddData(map[string]int{"n": 5, "k": 2}))

	hdr, err := bp.PosteriorHighDensityRegion("p", 0.95)
	require.NoError(t, err)
	assert.InDelta(t, 0.10482705290430133, hdr.Lo, tol)
	assert.InDelta(t, 0.76128981963103848, hdr.Hi, tol)

	ccr, err := bp.PosteriorCentralRegion("p", 0.95)
	require.NoError(t, err)
	assert.InDelta(t, 0.11811724875702526, ccr.Lo, tol)
	assert.InDelta(t, 0.77722190449648787, ccr.Hi, tol)

	assert.LessOrEqual(t, hdr.Width(), ccr.Width())

	_, err = bp.PosteriorHighDensityRegion("nonsense", 0.95)
	assert.True(t, errors.Is(err, ErrParameter))
	_, err = bp.PosteriorCentralRegion("nonsense", 0.95)
	assert.True(t, errors.Is(err, ErrParameter))
	_, err = bp.PosteriorCentralRegion("p", 1.5)
	assert.True(t, errors.Is(err, stats.ErrConfidence))
}

func TestBinomialBeta_SymmetricRegions(t *testing.T) {
	bp := NewBinomialBeta()
	require.NoError(t, bp.SetPrior(2, 2))
	require.NoError(t, bp.SetData(map[string]int{"n": 10, "k": 5}))
	hdr, err := bp.PosteriorHighDensityRegion("p", 0.9)
	require.NoError(t, err)
	ccr, err := bp.PosteriorCentralRegion("p", 0.9)
	require.NoError(t, err)
	assert.InDelta(t, ccr.Lo, hdr.Lo, tol)
	assert.InDelta(t, ccr.Hi, hdr.Hi, tol)
}

func TestBinomialBeta_SetHyperparameters(t *testing.T) {
	bp := NewBinomialBeta()
	require.NoError(t, bp.SetHyperparameters(map[string]float64{"alpha": 5, "beta": 10}))
	assert.Equal(t, map[string]float64{"alpha": 5, "beta": 10}, bp.Hyperparameters())

	bad := []map[string]float64{
		{"alpha": 5, "beta": -1},
		{"alpha": 0, "beta": 1},
		{"alpha": math.NaN(), "beta": 1},
		{"alpha": math.Inf(1), "beta": 1},
		{"alpha0": 5, "alpha1": 10},
		{"alpha": 5},
		{"alpha": 5, "beta": 1, "gamma": 2},
		nil,
	}
	for _, h := range bad {
		err := bp.SetHyperparameters(h)
		assert.True(t, errors.Is(err, ErrParameter), "%v: got %v", h, err)
		assert.Equal(t, map[string]float64{"alpha": 5, "beta": 10}, bp.Hyperparameters(),
			"prior changed by failed update %v", h)
	}
}

func TestBinomialBeta_Data(t *testing.T) {
	bp := NewBinomialBeta()
	require.NoError(t, bp.SetData(map[string]int{"n": 45, "k": 40}))
	assert.Equal(t, map[string]int{"n": 45, "k": 40}, bp.Data())
	assert.Equal(t, 45, bp.Observations())

	require.NoError(t, bp.SetData(map[string]int{"n": 5, "k": 1}))
	require.NoError(t, bp.AddData(map[string]int{"n": 10, "k": 2}))
	n, k := bp.Trials()
	assert.Equal(t, 15, n)
	assert.Equal(t, 3, k)

	// A missing key adds zero.
	require.NoError(t, bp.AddData(map[string]int{"n": 1}))
	assert.Equal(t, map[string]int{"n": 16, "k": 3}, bp.Data())
	require.NoError(t, bp.AddTrials(4, 4))
	assert.Equal(t, map[string]int{"n": 20, "k": 7}, bp.Data())
}

func TestBinomialBeta_DataErrors(t *testing.T) {
	bp := NewBinomialBeta()
	require.NoError(t, bp.SetData(map[string]int{"n": 3, "k": 1}))
	before := bp.Data()

	for _, bad := range []map[string]int{
		{"n": 2, "k": 5},
		{"m": 10, "k": 2},
		{"n": -1},
		{"k": 3},
	} {
		err := bp.AddData(bad)
		assert.True(t, errors.Is(err, ErrData), "AddData(%v): got %v", bad, err)
		assert.Equal(t, before, bp.Data())
	}

	err := bp.SetData(map[string]int{"n": 2, "k": 5})
	assert.True(t, errors.Is(err, ErrData))
	assert.Equal(t, before, bp.Data(), "failed SetData must not clear data")
}

func TestBinomialBeta_Overflow(t *testing.T) {
	bp := NewBinomialBeta()
	require.NoError(t, bp.SetData(map[string]int{"n": math.MaxInt, "k": math.MaxInt}))
	for _, bad := range []map[string]int{
		{"n": 1, "k": 1},
		{"n": 1},
	} {
		err := bp.AddData(bad)
		assert.True(t, errors.Is(err, ErrData), "AddData(%v): got %v", bad, err)
		assert.Equal(t, map[string]int{"n": math.MaxInt, "k": math.MaxInt}, bp.Data())
	}
	assert.True(t, errors.Is(bp.AddTrials(math.MaxInt, 0), ErrData))
	assert.Equal(t, math.MaxInt, bp.Observations())

	require.NoError(t, bp.SetPrior(2, 3))
	err := bp.SetHyperparameters(map[string]float64{"alpha": math.MaxFloat64, "beta": math.MaxFloat64})
	assert.True(t, errors.Is(err, ErrParameter), "got %v", err)
	assert.Equal(t, map[string]float64{"alpha": 2, "beta": 3}, bp.Hyperparameters())
}

func TestBinomialBeta_AddDataAccumulates(t *testing.T) {
	for _, c := range [][4]int{{5, 2, 3, 3}, {0, 0, 10, 1}, {7, 7, 0, 0}} {
		a := NewBinomialBeta()
		require.NoError(t, a.AddData(map[string]int{"n": c[0], "k": c[1]}))
		require.NoError(t, a.AddData(map[string]int{"n": c[2], "k": c[3]}))

		b := NewBinomialBeta()
		require.NoError(t, b.AddData(map[string]int{"n": c[0] + c[2], "k": c[1] + c[3]}))
		assert.Equal(t, b.Data(), a.Data())
	}
}

func TestBinomialBeta_SetDataResets(t *testing.T) {
	x := map[string]int{"n": 6, "k": 4}

	a := NewBinomialBeta()
	require.NoError(t, a.SetData(map[string]int{"n": 100, "k": 50}))
	require.NoError(t, a.SetData(x))

	b := NewBinomialBeta()
	require.NoError(t, b.SetData(map[string]int{"n": 100, "k": 50}))
	require.NoError(t, b.SetData(map[string]int{"n": 0, "k": 0}))
	require.NoError(t, b.AddData(x))

	assert.Equal(t, b.Data(), a.Data())
}

func TestBinomialBeta_String(t *testing.T) {
	bp := NewBinomialBeta()
	require.NoError(t, bp.SetData(map[string]int{"n": 10, "k": 2}))
	want := "bp := conjugate.NewBinomialBeta()\n" +
		"bp.SetData(map[string]int{\"n\": 10, \"k\": 2})\n" +
		"bp.SetHyperparameters(map[string]float64{\"alpha\": 1, \"beta\": 1})"
	assert.Equal(t, want, bp.String())
}

func TestBinomialBeta_Logging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	bp := NewBinomialBeta(WithLogger(zap.New(core)))

	require.NoError(t, bp.SetData(map[string]int{"n": 4, "k": 1}))
	assert.Error(t, bp.SetData(map[string]int{"n": 1, "k": 4}))
	assert.Equal(t, 1, logs.FilterMessage("set data").Len())
	assert.Equal(t, 1, logs.FilterMessage("rejected data").Len())

	bp = NewBinomialBeta(
		WithLogger(zap.New(core)),
		WithRegionSearch(stats.HDRSearch{Minimizer: stats.NelderMead{MaxIterations: 1}}),
	)
	_, err := bp.PosteriorHighDensityRegion("p", 0.95)
	assert.True(t, errors.Is(err, stats.ErrNotConverged))
	assert.Equal(t, 1, logs.FilterMessage("high-density region search did not converge").Len())
}
