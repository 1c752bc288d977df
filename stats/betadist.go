// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// BetaDist is a beta distribution with support [0, 1].
//
// The beta distribution is the conjugate prior of the Bernoulli,
// binomial, and geometric likelihoods, and the marginal of each
// component of a Dirichlet distribution.
type BetaDist struct {
	// Alpha and Beta are the shape parameters. Both must be > 0.
	Alpha, Beta float64
}

func (d BetaDist) backend() distuv.Beta {
	return distuv.Beta{Alpha: d.Alpha, Beta: d.Beta}
}

// PDF returns the density of d at x. It is 0 outside [0, 1] and may
// be +Inf at a boundary when the corresponding shape parameter is
// less than 1.
func (d BetaDist) PDF(x float64) float64 {
	if x < 0 || x > 1 {
		return 0
	}
	return d.backend().Prob(x)
}

func (d BetaDist) PDFEach(xs []float64) []float64 {
	return pdfEach(d, xs)
}

func (d BetaDist) CDF(x float64) float64 {
	return d.backend().CDF(x)
}

// InvCDF returns the y'th quantile of d. It returns NaN if y is
// outside [0, 1].
func (d BetaDist) InvCDF(y float64) float64 {
	if y < 0 || y > 1 || math.IsNaN(y) {
		return nan
	}
	return d.backend().Quantile(y)
}

func (d BetaDist) InvCDFEach(ys []float64) []float64 {
	return invCDFEach(d, ys)
}

func (d BetaDist) Bounds() (float64, float64) {
	return 0, 1
}

func (d BetaDist) Mean() float64 {
	return d.Alpha / (d.Alpha + d.Beta)
}

func (d BetaDist) Variance() float64 {
	s := d.Alpha + d.Beta
	return d.Alpha * d.Beta / (s * s * (s + 1))
}

// Mode returns the mode of d. If both shape parameters are <= 1 the
// density has no unique interior maximum and Mode returns NaN.
func (d BetaDist) Mode() float64 {
	return d.backend().Mode()
}
