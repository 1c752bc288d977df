// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

var (
	// ErrConfidence is returned when a credible region is
	// requested for a confidence level outside (0, 1).
	ErrConfidence = errors.New("confidence must be in (0, 1)")

	// ErrNotConverged is returned by HighDensityRegion when the
	// minimizer exhausted its iteration budget. The region
	// returned alongside it is the best estimate found.
	ErrNotConverged = errors.New("high-density region search did not converge")
)

// Region is a closed interval [Lo, Hi] of a distribution's domain.
//
// Regions are only as accurate as the distribution's InvCDF. For Beta
// shapes near zero the quantile function loses precision and a
// region may hold much less mass than requested.
type Region struct {
	Lo, Hi float64
}

func (r Region) Width() float64 {
	return r.Hi - r.Lo
}

func (r Region) Contains(x float64) bool {
	return r.Lo <= x && x <= r.Hi
}

func (r Region) String() string {
	return fmt.Sprintf("[%.6g, %.6g]", r.Lo, r.Hi)
}

func checkConfidence(confidence float64) error {
	if !(confidence > 0 && confidence < 1) {
		return errors.Wrapf(ErrConfidence, "got %v", confidence)
	}
	return nil
}

// CentralRegion returns the equal-tailed credible region of d holding
// probability mass confidence. Each tail outside the region holds
// (1-confidence)/2.
func CentralRegion(d Dist, confidence float64) (Region, error) {
	if err := checkConfidence(confidence); err != nil {
		return Region{nan, nan}, err
	}
	alpha := 1 - confidence
	return Region{d.InvCDF(alpha / 2), d.InvCDF(1 - alpha/2)}, nil
}

// DefaultHDRTolerance is the objective tolerance of the default
// high-density region search.
const DefaultHDRTolerance = 1e-8

// HDRSearch configures a high-density region search.
//
// The zero value uses NelderMead and DefaultHDRTolerance.
type HDRSearch struct {
	Minimizer Minimizer
	Tolerance float64
}

// HighDensityRegion returns the narrowest credible region of d holding
// probability mass confidence using the default HDRSearch.
func HighDensityRegion(d Dist, confidence float64) (Region, error) {
	return HDRSearch{}.Region(d, confidence)
}

// Region returns the narrowest credible region of d holding
// probability mass confidence.
//
// Every region holding mass c has the form
// [InvCDF(L), InvCDF(L+c)] for some L in [0, 1-c]. Region minimizes
// the width of this interval over L, starting from L = 1-c. For a
// symmetric unimodal d the result equals CentralRegion.
//
// If the minimizer runs out of iterations, Region returns its best
// estimate together with an error wrapping ErrNotConverged.
func (s HDRSearch) Region(d Dist, confidence float64) (Region, error) {
	if err := checkConfidence(confidence); err != nil {
		return Region{nan, nan}, err
	}
	m := s.Minimizer
	if m == nil {
		m = NelderMead{}
	}
	tol := s.Tolerance
	if tol == 0 {
		tol = DefaultHDRTolerance
	}

	maxL := 1 - confidence
	width := func(l float64) float64 {
		if l < 0 || l > maxL || math.IsNaN(l) {
			return inf
		}
		// l+confidence may round just past 1.
		return d.InvCDF(math.Min(l+confidence, 1)) - d.InvCDF(l)
	}

	res, err := m.Minimize(width, maxL, tol)
	if err != nil {
		return Region{nan, nan}, errors.Wrap(err, "high-density region")
	}
	l := math.Max(0, math.Min(res.X, maxL))
	r := Region{d.InvCDF(l), d.InvCDF(math.Min(l+confidence, 1))}
	if !res.Converged {
		return r, errors.Wrapf(ErrNotConverged, "after %d iterations", res.Iterations)
	}
	return r, nil
}
