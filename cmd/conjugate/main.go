// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command conjugate infers the parameters of a binomial or
// multinomial process from observed counts and prints their prior
// and posterior means and credible regions.
//
// For example,
//
//	conjugate binomial --n 5 --k 2
//	conjugate multinomial --alphabet a,b,c --counts a=10,c=5 --prior a=2 --plot
//
// Every flag can also be set from the environment with a CONJUGATE_
// prefix, e.g. CONJUGATE_CONFIDENCE=0.9.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
