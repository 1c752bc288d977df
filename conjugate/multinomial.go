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

// MultinomialDirichlet infers the category probabilities p_i of a
// categorical process from per-category counts n_i, given a
// Dirichlet(a_1, ..., a_K) prior.
//
// Categories are identified by labels from an alphabet fixed at
// construction. For label "x", the parameter is named "p_x", its
// hyperparameter "a_x", and its data key is "x" itself.
//
// The marginal of a Dirichlet is a Beta: with A = Σa_j and N = Σn_j,
// p_i has prior Beta(a_i, A-a_i) and posterior
// Beta(a_i+n_i, A-a_i+N-n_i).
type MultinomialDirichlet struct {
	common

	alphabet   []string
	params     []string // "p_" + label
	hypers     []string // "a_" + label
	labelIdx   map[string]int
	paramIdx   map[string]int
	hyperIdx   map[string]int
	prior      []float64 // a_i, all > 0
	counts     []int     // n_i, all >= 0
	priorTotal float64   // A
	countTotal int       // N
}

var _ Model = (*MultinomialDirichlet)(nil)

// NewMultinomialDirichlet returns a model over the given alphabet with
// a flat Dirichlet(1, ..., 1) prior and no data.
//
// The alphabet must have at least two distinct labels.
func NewMultinomialDirichlet(alphabet []string, opts ...Option) (*MultinomialDirichlet, error) {
	if len(alphabet) < 2 {
		return nil, errors.Wrapf(ErrParameter, "alphabet must have at least two labels, got %d", len(alphabet))
	}
	k := len(alphabet)
	m := &MultinomialDirichlet{
		common:   newCommon(opts),
		alphabet: append([]string(nil), alphabet...),
		params:   make([]string, k),
		hypers:   make([]string, k),
		labelIdx: make(map[string]int, k),
		paramIdx: make(map[string]int, k),
		hyperIdx: make(map[string]int, k),
		prior:    make([]float64, k),
		counts:   make([]int, k),
	}
	for i, label := range alphabet {
		if _, ok := m.labelIdx[label]; ok {
			return nil, errors.Wrapf(ErrParameter, "duplicate label %q in alphabet", label)
		}
		m.params[i] = "p_" + label
		m.hypers[i] = "a_" + label
		m.labelIdx[label] = i
		m.paramIdx[m.params[i]] = i
		m.hyperIdx[m.hypers[i]] = i
		m.prior[i] = 1
	}
	m.priorTotal = float64(k)
	return m, nil
}

func (*MultinomialDirichlet) Distribution() string { return "Multinomial" }
func (*MultinomialDirichlet) Prior() string        { return "Dirichlet" }

// Alphabet returns the category labels in order.
func (m *MultinomialDirichlet) Alphabet() []string {
	return append([]string(nil), m.alphabet...)
}

func (m *MultinomialDirichlet) Contains(name string) bool {
	_, ok := m.paramIdx[name]
	return ok
}

func (m *MultinomialDirichlet) Parameters() []string {
	return append([]string(nil), m.params...)
}

func (m *MultinomialDirichlet) Support(name string) (lo, hi float64, err error) {
	if !m.Contains(name) {
		return 0, 0, errUnknownParameter(name)
	}
	return 0, 1, nil
}

func (m *MultinomialDirichlet) HyperparameterNames() []string {
	return append([]string(nil), m.hypers...)
}

func (m *MultinomialDirichlet) Hyperparameters() map[string]float64 {
	h := make(map[string]float64, len(m.hypers))
	for i, name := range m.hypers {
		h[name] = m.prior[i]
	}
	return h
}

// SetHyperparameters merges h into the prior: hyperparameters not
// named in h keep their current value. Every key must be one of
// HyperparameterNames.
func (m *MultinomialDirichlet) SetHyperparameters(h map[string]float64) error {
	for _, name := range sortedKeys(h) {
		if _, ok := m.hyperIdx[name]; !ok {
			m.log.Debug("rejected prior", zap.String("key", name))
			return errors.Wrapf(ErrParameter, "invalid hyperparameter %q", name)
		}
		if v := h[name]; !validHyperparameter(v) {
			m.log.Debug("rejected prior", zap.String("key", name), zap.Float64("value", v))
			return errors.Wrapf(ErrParameter, "hyperparameter %s must be greater than zero, got %v", name, v)
		}
	}
	prior := append([]float64(nil), m.prior...)
	for name, v := range h {
		prior[m.hyperIdx[name]] = v
	}
	total := 0.0
	for _, v := range prior {
		total += v
	}
	if math.IsInf(total, 0) {
		m.log.Debug("rejected prior", zap.Float64s("prior", prior))
		return errors.Wrap(ErrParameter, "sum of hyperparameters overflows")
	}
	m.prior, m.priorTotal = prior, total
	m.log.Debug("set prior", zap.Float64s("prior", m.prior))
	return nil
}

func (m *MultinomialDirichlet) Data() map[string]int {
	d := make(map[string]int, len(m.alphabet))
	for i, label := range m.alphabet {
		d[label] = m.counts[i]
	}
	return d
}

// AddData adds data[label] observations of each label. Every key must
// be in the alphabet and every count must be non-negative.
func (m *MultinomialDirichlet) AddData(data map[string]int) error {
	return m.addData(m.counts, data)
}

// SetData replaces the counts: labels not in data get count 0.
func (m *MultinomialDirichlet) SetData(data map[string]int) error {
	return m.addData(make([]int, len(m.counts)), data)
}

func (m *MultinomialDirichlet) addData(base []int, data map[string]int) error {
	for _, label := range sortedKeys(data) {
		if _, ok := m.labelIdx[label]; !ok {
			m.log.Debug("rejected data", zap.String("key", label))
			return errors.Wrapf(ErrData, "data has key %q not found in alphabet", label)
		}
		if n := data[label]; n < 0 {
			m.log.Debug("rejected data", zap.String("key", label), zap.Int("count", n))
			return errors.Wrapf(ErrData, "count for %q is negative: %d", label, n)
		}
	}
	counts := append([]int(nil), base...)
	for _, label := range sortedKeys(data) {
		i := m.labelIdx[label]
		n, ok := addCount(counts[i], data[label])
		if !ok {
			m.log.Debug("rejected data", zap.String("key", label), zap.Int("count", data[label]))
			return errors.Wrapf(ErrData, "count for %q overflows", label)
		}
		counts[i] = n
	}
	total := 0
	for _, n := range counts {
		var ok bool
		if total, ok = addCount(total, n); !ok {
			m.log.Debug("rejected data", zap.Ints("counts", counts))
			return errors.Wrap(ErrData, "total count overflows")
		}
	}
	m.counts, m.countTotal = counts, total
	m.log.Debug("set data", zap.Ints("counts", m.counts))
	return nil
}

func (m *MultinomialDirichlet) Observations() int {
	return m.countTotal
}

func (m *MultinomialDirichlet) index(name string) (int, error) {
	i, ok := m.paramIdx[name]
	if !ok {
		return 0, errUnknownParameter(name)
	}
	return i, nil
}

// PriorDist returns Beta(a_i, A-a_i).
func (m *MultinomialDirichlet) PriorDist(name string) (stats.BetaDist, error) {
	i, err := m.index(name)
	if err != nil {
		return stats.BetaDist{}, err
	}
	ai := m.prior[i]
	return stats.BetaDist{Alpha: ai, Beta: m.priorTotal - ai}, nil
}

// PosteriorDist returns Beta(a_i+n_i, A-a_i+N-n_i).
func (m *MultinomialDirichlet) PosteriorDist(name string) (stats.BetaDist, error) {
	i, err := m.index(name)
	if err != nil {
		return stats.BetaDist{}, err
	}
	ai, ni := m.prior[i], float64(m.counts[i])
	return stats.BetaDist{
		Alpha: ai + ni,
		Beta:  m.priorTotal - ai + float64(m.countTotal) - ni,
	}, nil
}

// PriorMean returns a_i/A.
func (m *MultinomialDirichlet) PriorMean(name string) (float64, error) {
	i, err := m.index(name)
	if err != nil {
		return 0, err
	}
	return m.prior[i] / m.priorTotal, nil
}

// PosteriorMean returns (a_i+n_i)/(A+N).
func (m *MultinomialDirichlet) PosteriorMean(name string) (float64, error) {
	i, err := m.index(name)
	if err != nil {
		return 0, err
	}
	return (m.prior[i] + float64(m.counts[i])) / (m.priorTotal + float64(m.countTotal)), nil
}

func (m *MultinomialDirichlet) PosteriorCentralRegion(name string, confidence float64) (stats.Region, error) {
	d, err := m.PosteriorDist(name)
	if err != nil {
		return stats.Region{}, err
	}
	return m.centralRegion(name, d, confidence)
}

func (m *MultinomialDirichlet) PosteriorHighDensityRegion(name string, confidence float64) (stats.Region, error) {
	d, err := m.PosteriorDist(name)
	if err != nil {
		return stats.Region{}, err
	}
	return m.highDensityRegion(name, d, confidence)
}

func (m *MultinomialDirichlet) String() string {
	return fmt.Sprintf("mp, _ := conjugate.NewMultinomialDirichlet(%s)\n"+
		"mp.SetData(%s)\n"+
		"mp.SetHyperparameters(%s)",
		goStrings(m.alphabet),
		goIntMap(m.alphabet, m.counts),
		goFloatMap(m.hypers, m.prior))
}
