// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conjugate

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/aclements/go-conjugate/stats"
)

// BinomialBeta infers the success probability p of a binomial
// process from k successes in n trials, given a Beta(alpha, beta)
// prior.
//
// The posterior is Beta(alpha+k, beta+n-k).
type BinomialBeta struct {
	common

	// Prior hyperparameters. Both > 0.
	alpha, beta float64

	// Observed trials and successes. 0 <= k <= n.
	n, k int
}

var _ Model = (*BinomialBeta)(nil)

const binomialParam = "p"

// NewBinomialBeta returns a model with a uniform Beta(1, 1) prior and
// no data.
func NewBinomialBeta(opts ...Option) *BinomialBeta {
	return &BinomialBeta{
		common: newCommon(opts),
		alpha:  1,
		beta:   1,
	}
}

func (*BinomialBeta) Distribution() string { return "Binomial" }
func (*BinomialBeta) Prior() string        { return "Beta" }

func (*BinomialBeta) Contains(name string) bool {
	return name == binomialParam
}

func (*BinomialBeta) Parameters() []string {
	return []string{binomialParam}
}

func (m *BinomialBeta) Support(name string) (lo, hi float64, err error) {
	if !m.Contains(name) {
		return 0, 0, errUnknownParameter(name)
	}
	return 0, 1, nil
}

func (*BinomialBeta) HyperparameterNames() []string {
	return []string{"alpha", "beta"}
}

func (m *BinomialBeta) Hyperparameters() map[string]float64 {
	return map[string]float64{"alpha": m.alpha, "beta": m.beta}
}

// SetPrior sets the Beta prior's shape parameters.
func (m *BinomialBeta) SetPrior(alpha, beta float64) error {
	if !validHyperparameter(alpha) || !validHyperparameter(beta) {
		m.log.Debug("rejected prior", zap.Float64("alpha", alpha), zap.Float64("beta", beta))
		return errors.Wrapf(ErrParameter, "alpha and beta must be greater than zero, got %v and %v", alpha, beta)
	}
	if math.IsInf(alpha+beta, 0) {
		m.log.Debug("rejected prior", zap.Float64("alpha", alpha), zap.Float64("beta", beta))
		return errors.Wrapf(ErrParameter, "alpha+beta overflows, got %v and %v", alpha, beta)
	}
	m.alpha, m.beta = alpha, beta
	m.log.Debug("set prior", zap.Float64("alpha", alpha), zap.Float64("beta", beta))
	return nil
}

// SetHyperparameters replaces the prior. h must have exactly the keys
// "alpha" and "beta".
func (m *BinomialBeta) SetHyperparameters(h map[string]float64) error {
	alpha, okA := h["alpha"]
	beta, okB := h["beta"]
	if !okA || !okB || len(h) != 2 {
		m.log.Debug("rejected prior", zap.Strings("keys", sortedKeys(h)))
		return errors.Wrapf(ErrParameter, "hyperparameter keys must be [alpha beta], got %v", sortedKeys(h))
	}
	return m.SetPrior(alpha, beta)
}

func (m *BinomialBeta) Data() map[string]int {
	return map[string]int{"n": m.n, "k": m.k}
}

// Trials returns the observed number of trials and successes.
func (m *BinomialBeta) Trials() (n, k int) {
	return m.n, m.k
}

// AddTrials records k successes in n more trials.
func (m *BinomialBeta) AddTrials(n, k int) error {
	return m.addTrials(m.n, m.k, n, k)
}

func (m *BinomialBeta) addTrials(n0, k0, n, k int) error {
	if n < 0 || k < 0 {
		m.log.Debug("rejected data", zap.Int("n", n), zap.Int("k", k))
		return errors.Wrapf(ErrData, "counts must be non-negative, got n=%d k=%d", n, k)
	}
	sumN, okN := addCount(n0, n)
	sumK, okK := addCount(k0, k)
	if !okN || !okK {
		m.log.Debug("rejected data", zap.Int("n", n), zap.Int("k", k))
		return errors.Wrapf(ErrData, "adding n=%d k=%d to n=%d k=%d overflows", n, k, n0, k0)
	}
	n, k = sumN, sumK
	if k > n {
		m.log.Debug("rejected data", zap.Int("n", n), zap.Int("k", k))
		return errors.Wrapf(ErrData, "data has k > n (k=%d, n=%d)", k, n)
	}
	m.n, m.k = n, k
	m.log.Debug("set data", zap.Int("n", n), zap.Int("k", k))
	return nil
}

// AddData adds counts for keys "n" (trials) and "k" (successes). A
// missing key adds zero.
func (m *BinomialBeta) AddData(data map[string]int) error {
	n, k, err := m.parseData(data)
	if err != nil {
		return err
	}
	return m.addTrials(m.n, m.k, n, k)
}

// SetData replaces the data with the counts for keys "n" and "k".
func (m *BinomialBeta) SetData(data map[string]int) error {
	n, k, err := m.parseData(data)
	if err != nil {
		return err
	}
	return m.addTrials(0, 0, n, k)
}

func (m *BinomialBeta) parseData(data map[string]int) (n, k int, err error) {
	for _, key := range sortedKeys(data) {
		switch key {
		case "n":
			n = data[key]
		case "k":
			k = data[key]
		default:
			m.log.Debug("rejected data", zap.String("key", key))
			return 0, 0, errors.Wrapf(ErrData, "key %q in data not valid", key)
		}
	}
	return n, k, nil
}

func (m *BinomialBeta) Observations() int {
	return m.n
}

func (m *BinomialBeta) PriorDist(name string) (stats.BetaDist, error) {
	if !m.Contains(name) {
		return stats.BetaDist{}, errUnknownParameter(name)
	}
	return stats.BetaDist{Alpha: m.alpha, Beta: m.beta}, nil
}

func (m *BinomialBeta) PosteriorDist(name string) (stats.BetaDist, error) {
	if !m.Contains(name) {
		return stats.BetaDist{}, errUnknownParameter(name)
	}
	return stats.BetaDist{
		Alpha: m.alpha + float64(m.k),
		Beta:  m.beta + float64(m.n-m.k),
	}, nil
}

// PriorMean returns alpha/(alpha+beta).
func (m *BinomialBeta) PriorMean(name string) (float64, error) {
	d, err := m.PriorDist(name)
	if err != nil {
		return 0, err
	}
	return d.Mean(), nil
}

// PosteriorMean returns (alpha+k)/(alpha+beta+n).
func (m *BinomialBeta) PosteriorMean(name string) (float64, error) {
	d, err := m.PosteriorDist(name)
	if err != nil {
		return 0, err
	}
	return d.Mean(), nil
}

func (m *BinomialBeta) PosteriorCentralRegion(name string, confidence float64) (stats.Region, error) {
	d, err := m.PosteriorDist(name)
	if err != nil {
		return stats.Region{}, err
	}
	return m.centralRegion(name, d, confidence)
}

func (m *BinomialBeta) PosteriorHighDensityRegion(name string, confidence float64) (stats.Region, error) {
	d, err := m.PosteriorDist(name)
	if err != nil {
		return stats.Region{}, err
	}
	return m.highDensityRegion(name, d, confidence)
}

func (m *BinomialBeta) String() string {
	return fmt.Sprintf("bp := conjugate.NewBinomialBeta()\n"+
		"bp.SetData(%s)\n"+
		"bp.SetHyperparameters(%s)",
		goIntMap([]string{"n", "k"}, []int{m.n, m.k}),
		goFloatMap(m.HyperparameterNames(), []float64{m.alpha, m.beta}))
}
