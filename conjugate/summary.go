// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conjugate

import "github.com/aclements/go-conjugate/stats"

// A Summary gives the point estimates and credible regions of one
// parameter.
type Summary struct {
	Parameter string

	PriorMean, PosteriorMean float64

	// Central and HighDensity are credible regions of the
	// posterior at the confidence passed to Summarize.
	Central, HighDensity stats.Region
}

// Summarize returns a Summary of every parameter of m, in parameter
// order. It stops at the first error.
func Summarize(m Model, confidence float64) ([]Summary, error) {
	var out []Summary
	for _, name := range m.Parameters() {
		s := Summary{Parameter: name}
		var err error
		if s.PriorMean, err = m.PriorMean(name); err != nil {
			return nil, err
		}
		if s.PosteriorMean, err = m.PosteriorMean(name); err != nil {
			return nil, err
		}
		if s.Central, err = m.PosteriorCentralRegion(name, confidence); err != nil {
			return nil, err
		}
		if s.HighDensity, err = m.PosteriorHighDensityRegion(name, confidence); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
