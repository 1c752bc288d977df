// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"
)

func TestNelderMead(t *testing.T) {
	check := func(f func(float64) float64, x0, wx float64) {
		t.Helper()
		res, err := NelderMead{}.Minimize(f, x0, 1e-12)
		if err != nil {
			t.Fatalf("unexpected error %v", err)
		}
		if !res.Converged {
			t.Errorf("want converged, got %+v", res)
		}
		if math.Abs(res.X-wx) > 1e-4 {
			t.Errorf("want minimum at %v, got %+v", wx, res)
		}
	}
	check(func(x float64) float64 { return (x - 2) * (x - 2) }, 1, 2)
	check(func(x float64) float64 { return (x + 3) * (x + 3) }, 0, -3)

	// Infeasible points are +Inf; the minimum is on the boundary.
	check(func(x float64) float64 {
		if x < 0 {
			return inf
		}
		return x + 1
	}, 0.5, 0)
}

func TestNelderMeadBudget(t *testing.T) {
	f := func(x float64) float64 { return (x - 10) * (x - 10) }
	res, err := NelderMead{MaxIterations: 2}.Minimize(f, 1, 1e-12)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if res.Converged {
		t.Errorf("want unconverged result with a 2 iteration budget, got %+v", res)
	}
	if res.F > f(1) {
		t.Errorf("best value %v is worse than the initial value %v", res.F, f(1))
	}
}

func TestNelderMeadBadStart(t *testing.T) {
	f := func(x float64) float64 { return inf }
	if _, err := (NelderMead{}).Minimize(f, 0, 1e-8); err == nil {
		t.Errorf("want error for non-finite initial value")
	}
}
