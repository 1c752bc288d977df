// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/optimize"
)

// A Minimizer finds a local minimum of a univariate function.
type Minimizer interface {
	// Minimize searches for a local minimum of f starting from
	// x0. The search stops once f stops improving by more than
	// tol. An error is returned only if the search could not
	// run at all; a search that ran out of budget reports
	// Converged == false instead.
	Minimize(f func(x float64) float64, x0, tol float64) (MinimizeResult, error)
}

// MinimizeResult is the outcome of a Minimizer search.
type MinimizeResult struct {
	// X is the best location found and F is f(X).
	X, F float64

	// Iterations is the number of major iterations performed.
	Iterations int

	// Converged indicates that the search stopped because f
	// stopped improving. If false, X is only the best estimate
	// found within the iteration budget.
	Converged bool
}

// DefaultMaxIterations is the iteration budget used by a zero
// NelderMead.
const DefaultMaxIterations = 400

// NelderMead is a Minimizer using the Nelder-Mead simplex method.
//
// f may return +Inf to mark infeasible points, as long as f(x0) is
// finite. The initial simplex step is 5% of x0 (or 0.00025 if x0 is
// 0).
type NelderMead struct {
	// MaxIterations bounds the number of major iterations. If
	// zero, DefaultMaxIterations is used.
	MaxIterations int

	// Patience is the number of consecutive iterations without
	// significant improvement after which the search is
	// considered converged. If zero, 20 is used.
	Patience int
}

func (m NelderMead) Minimize(f func(x float64) float64, x0, tol float64) (MinimizeResult, error) {
	maxIter := m.MaxIterations
	if maxIter == 0 {
		maxIter = DefaultMaxIterations
	}
	patience := m.Patience
	if patience == 0 {
		patience = 20
	}
	if fx0 := f(x0); math.IsNaN(fx0) || math.IsInf(fx0, 0) {
		return MinimizeResult{X: x0, F: fx0}, errors.Errorf("objective is not finite at initial guess %v", x0)
	}

	step := 0.05 * x0
	if x0 == 0 {
		step = 0.00025
	}
	problem := optimize.Problem{
		Func: func(x []float64) float64 { return f(x[0]) },
	}
	settings := &optimize.Settings{
		Converger: &optimize.FunctionConverge{
			Absolute:   tol,
			Iterations: patience,
		},
		MajorIterations: maxIter,
	}
	res, err := optimize.Minimize(problem, []float64{x0}, settings, &optimize.NelderMead{SimplexSize: step})
	if res == nil {
		return MinimizeResult{X: x0, F: f(x0)}, errors.Wrap(err, "nelder-mead")
	}
	out := MinimizeResult{
		X:          res.X[0],
		F:          res.F,
		Iterations: res.MajorIterations,
		Converged:  res.Status == optimize.FunctionConvergence,
	}
	if err != nil && !res.Status.Early() {
		return out, errors.Wrap(err, "nelder-mead")
	}
	return out, nil
}
