// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats provides continuous distributions and the credible
// regions computed from them.
//
// A credible region is an interval of a distribution's domain that
// holds a given probability mass. CentralRegion puts equal mass in
// each tail. HighDensityRegion finds the narrowest interval with the
// requested mass, which requires a numerical search when the
// distribution is skewed.
package stats // import "github.com/aclements/go-conjugate/stats"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
