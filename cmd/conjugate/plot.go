// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/aclements/go-conjugate/conjugate"
)

// FprintPDF draws p as a width x height text plot. Cells under the
// density are drawn with '#' inside the shaded region and '.'
// elsewhere, and a '^' below the axis marks the mean.
func FprintPDF(w io.Writer, p conjugate.Plot, width, height int) error {
	if width < 2 || height < 1 {
		return errors.Errorf("plot must be at least 2x1, got %dx%d", width, height)
	}
	if len(p.Xs) < 2 {
		return errors.New("plot has fewer than two points")
	}
	lo, hi := p.Xs[0], p.Xs[len(p.Xs)-1]
	xs := floats.Span(make([]float64, width), lo, hi)
	ys := p.Dist.PDFEach(xs)

	ymax := 0.0
	for _, y := range ys {
		if !math.IsInf(y, 0) && y > ymax {
			ymax = y
		}
	}
	if ymax == 0 {
		ymax = 1
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (max %.4g)\n", p.YLabel, ymax)
	for row := height; row >= 1; row-- {
		threshold := ymax * (float64(row) - 0.5) / float64(height)
		line := make([]byte, width)
		for j, y := range ys {
			switch {
			case y < threshold:
				line[j] = ' '
			case p.Fill != conjugate.FillNone && p.Region.Contains(xs[j]):
				line[j] = '#'
			default:
				line[j] = '.'
			}
		}
		b.WriteString(strings.TrimRight(string(line), " "))
		b.WriteByte('\n')
	}

	axis := []byte(strings.Repeat("-", width))
	if col := plotColumn(p.Mean, lo, hi, width); col >= 0 {
		axis[col] = '^'
	}
	b.Write(axis)
	b.WriteByte('\n')

	left, right := fmt.Sprintf("%.3g", lo), fmt.Sprintf("%.3g", hi)
	gap := width - len(left) - len(right) - len(p.XLabel)
	if gap < 2 {
		gap = 2
	}
	fmt.Fprintf(&b, "%s%s%s%s%s\n", left, strings.Repeat(" ", gap/2), p.XLabel, strings.Repeat(" ", gap-gap/2), right)

	fmt.Fprintf(&b, "^ mean %.4g\n", p.Mean)
	if p.Fill != conjugate.FillNone {
		fmt.Fprintf(&b, "# %g%% %s %v\n", p.Confidence*100, strings.ToUpper(p.Fill.String()), p.Region)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// plotColumn returns the column of x in a width-column plot of
// [lo, hi], or -1 if x falls outside it.
func plotColumn(x, lo, hi float64, width int) int {
	if math.IsNaN(x) || x < lo || x > hi {
		return -1
	}
	col := int(math.Round((x - lo) / (hi - lo) * float64(width-1)))
	if col >= width {
		col = width - 1
	}
	return col
}
