// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package conjugate performs Bayesian inference of the parameters of
// discrete-outcome processes using conjugate priors.
//
// Two families are supported: BinomialBeta infers the success
// probability of a Bernoulli process from a Beta prior, and
// MultinomialDirichlet infers the category probabilities of a
// categorical process from a Dirichlet prior. Both have closed-form
// posteriors, so every query is a pure function of the model's
// current hyperparameters and data.
//
// Models are not safe for concurrent use. Mutators validate their
// whole input before writing anything, so a failed call leaves the
// model unchanged.
package conjugate // import "github.com/aclements/go-conjugate/conjugate"

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/aclements/go-conjugate/stats"
)

// A Model is a posterior over the parameters of one distribution
// family.
//
// Parameter names are fixed when the model is created. Every query
// taking a parameter name fails with an error wrapping ErrParameter
// if the name is not one of Parameters.
type Model interface {
	// Distribution and Prior name the likelihood and prior
	// families, e.g. "Binomial" and "Beta".
	Distribution() string
	Prior() string

	// Contains reports whether name is one of Parameters.
	Contains(name string) bool

	// Parameters returns the parameter names in their fixed
	// order. The caller owns the returned slice.
	Parameters() []string

	// Support returns the bounds of the domain of a parameter.
	Support(name string) (lo, hi float64, err error)

	// HyperparameterNames returns the prior hyperparameter names
	// in their fixed order.
	HyperparameterNames() []string

	// Hyperparameters returns a copy of the prior
	// hyperparameters.
	Hyperparameters() map[string]float64

	// SetHyperparameters assigns prior hyperparameters. All
	// values must be positive and finite. On error, the prior is
	// unchanged and the error wraps ErrParameter.
	SetHyperparameters(h map[string]float64) error

	// Data returns a copy of the observed counts.
	Data() map[string]int

	// SetData replaces the observed counts: it is equivalent to
	// resetting every count to zero and calling AddData.
	SetData(data map[string]int) error

	// AddData accumulates counts onto the observed data. On
	// error, the data is unchanged and the error wraps ErrData.
	AddData(data map[string]int) error

	// Observations returns the total number of observations.
	Observations() int

	PriorMean(name string) (float64, error)
	PosteriorMean(name string) (float64, error)

	// PriorDist and PosteriorDist return the marginal prior and
	// posterior distributions of a parameter.
	PriorDist(name string) (stats.BetaDist, error)
	PosteriorDist(name string) (stats.BetaDist, error)

	// PosteriorCentralRegion and PosteriorHighDensityRegion
	// return credible regions of a parameter's marginal
	// posterior. See stats.CentralRegion and
	// stats.HighDensityRegion.
	PosteriorCentralRegion(name string, confidence float64) (stats.Region, error)
	PosteriorHighDensityRegion(name string, confidence float64) (stats.Region, error)

	// String returns Go source that recreates the model's state.
	String() string
}

// An Option configures a Model.
type Option func(*common)

// WithLogger sets the logger that mutations and region searches are
// reported to. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(c *common) {
		c.log = l
	}
}

// WithRegionSearch sets the search used by PosteriorHighDensityRegion.
func WithRegionSearch(s stats.HDRSearch) Option {
	return func(c *common) {
		c.search = s
	}
}

// common holds the configuration shared by both families.
type common struct {
	log    *zap.Logger
	search stats.HDRSearch
}

func newCommon(opts []Option) common {
	c := common{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func errUnknownParameter(name string) error {
	return errors.Wrapf(ErrParameter, "parameter %q not recognized", name)
}

// validHyperparameter reports whether v can be a shape parameter.
func validHyperparameter(v float64) bool {
	// Also false for NaN.
	return v > 0 && v < inf
}

func (c *common) centralRegion(name string, d stats.BetaDist, confidence float64) (stats.Region, error) {
	r, err := stats.CentralRegion(d, confidence)
	if err != nil {
		return r, errors.Wrapf(err, "central region of %s", name)
	}
	return r, nil
}

func (c *common) highDensityRegion(name string, d stats.BetaDist, confidence float64) (stats.Region, error) {
	r, err := c.search.Region(d, confidence)
	if errors.Is(err, stats.ErrNotConverged) {
		c.log.Warn("high-density region search did not converge",
			zap.String("parameter", name),
			zap.Float64("alpha", d.Alpha),
			zap.Float64("beta", d.Beta),
			zap.Float64("confidence", confidence),
			zap.Stringer("region", r),
		)
	}
	if err != nil {
		return r, errors.Wrapf(err, "high-density region of %s", name)
	}
	return r, nil
}
