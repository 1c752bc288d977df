// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conjugate

import "github.com/pkg/errors"

var (
	// ErrParameter is the cause of every error reporting an
	// unknown parameter name or an invalid hyperparameter
	// assignment.
	ErrParameter = errors.New("invalid parameter")

	// ErrData is the cause of every error reporting invalid
	// observed data.
	ErrData = errors.New("invalid data")
)
