// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conjugate

import (
	"gonum.org/v1/gonum/floats"

	"github.com/aclements/go-conjugate/stats"
)

// FillKind selects the credible region shaded under a density plot.
type FillKind int

const (
	FillNone FillKind = iota
	FillCentral
	FillHighDensity
)

func (k FillKind) String() string {
	switch k {
	case FillCentral:
		return "ccr"
	case FillHighDensity:
		return "hdr"
	}
	return ""
}

// A Plot describes a density plot of one parameter's marginal
// distribution. It carries everything a renderer needs; producing
// one does not draw anything.
type Plot struct {
	Dist stats.Dist

	// Mean is marked on the plot.
	Mean float64

	// Xs are the points at which to evaluate the density.
	Xs []float64

	// Fill and Region select the shaded region. Region is
	// meaningful only if Fill != FillNone.
	Fill   FillKind
	Region stats.Region

	Confidence     float64
	XLabel, YLabel string
}

// plotPoints is the number of points in Plot.Xs.
const plotPoints = 99

// plotXs returns plotPoints evenly spaced points strictly inside
// [lo, hi], where densities may be infinite.
func plotXs(lo, hi float64) []float64 {
	dx := (hi - lo) / (plotPoints + 1)
	return floats.Span(make([]float64, plotPoints), lo+dx, hi-dx)
}

// PriorPlot describes the marginal prior density of parameter name.
func PriorPlot(m Model, name string) (Plot, error) {
	d, err := m.PriorDist(name)
	if err != nil {
		return Plot{}, err
	}
	// name is known to be valid once the distribution lookup succeeded.
	lo, hi, _ := m.Support(name)
	mean, _ := m.PriorMean(name)
	return Plot{
		Dist:       d,
		Mean:       mean,
		Xs:         plotXs(lo, hi),
		Confidence: 0.95,
		XLabel:     name,
		YLabel:     "Prior pdf",
	}, nil
}

// PosteriorPlot describes the marginal posterior density of parameter
// name. If the model has observations, the high-density region is
// shaded; otherwise the central region is.
//
// If the high-density search did not converge, PosteriorPlot returns
// the plot with its best-effort region and an error wrapping
// stats.ErrNotConverged.
func PosteriorPlot(m Model, name string, confidence float64) (Plot, error) {
	d, err := m.PosteriorDist(name)
	if err != nil {
		return Plot{}, err
	}
	// name is known to be valid once the distribution lookup succeeded.
	lo, hi, _ := m.Support(name)
	mean, _ := m.PosteriorMean(name)
	p := Plot{
		Dist:       d,
		Mean:       mean,
		Xs:         plotXs(lo, hi),
		Confidence: confidence,
		XLabel:     name,
		YLabel:     "Posterior pdf",
	}
	if m.Observations() > 0 {
		p.Fill = FillHighDensity
		p.Region, err = m.PosteriorHighDensityRegion(name, confidence)
	} else {
		p.Fill = FillCentral
		p.Region, err = m.PosteriorCentralRegion(name, confidence)
	}
	return p, err
}
