// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conjugate

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

var inf = math.Inf(1)

// goStrings formats ss as a Go []string literal.
func goStrings(ss []string) string {
	q := make([]string, len(ss))
	for i, s := range ss {
		q[i] = strconv.Quote(s)
	}
	return "[]string{" + strings.Join(q, ", ") + "}"
}

// goIntMap and goFloatMap format a map as a Go literal with entries
// in the given key order.

func goIntMap(keys []string, vals []int) string {
	var b strings.Builder
	b.WriteString("map[string]int{")
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%q: %d", k, vals[i])
	}
	b.WriteString("}")
	return b.String()
}

func goFloatMap(keys []string, vals []float64) string {
	var b strings.Builder
	b.WriteString("map[string]float64{")
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%q: %v", k, vals[i])
	}
	b.WriteString("}")
	return b.String()
}

// addCount returns a+b for non-negative counts, or false if the sum
// overflows an int.
func addCount(a, b int) (int, bool) {
	if b > math.MaxInt-a {
		return 0, false
	}
	return a + b, true
}

// sortedKeys returns the keys of m in sorted order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
