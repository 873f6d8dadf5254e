// Copyright 2024 The RVLib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathx provides the numeric primitives shared by the rv
// distribution types.
package mathx

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// ErrDomain is returned when a function is evaluated outside its
// domain.
var ErrDomain = errors.New("mathx: domain error")

// eqTolerance is twice the machine epsilon for float64.
const eqTolerance = 2 * 0x1p-52

// Equal reports whether a and b are equal within twice the machine
// epsilon for float64. Two sample values that satisfy Equal are
// treated as the same value throughout the rv package.
//
// The tolerance is absolute, not relative, so comparisons of very
// large magnitudes may spuriously report inequality.
func Equal(a, b float64) bool {
	return scalar.EqualWithinAbs(a, b, eqTolerance)
}

// Sqrt returns √x, or ErrDomain when x is negative. It exists so that
// a negative operand surfaces as an error instead of a NaN propagating
// silently into downstream statistics.
func Sqrt(x float64) (float64, error) {
	if x < 0 {
		return 0, fmt.Errorf("%w: square root of negative value %v", ErrDomain, x)
	}
	return math.Sqrt(x), nil
}
