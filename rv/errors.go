// Copyright 2024 The RVLib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rv

import (
	"errors"
	"fmt"
)

// Error kinds reported by this package. Failures wrap one of these
// sentinels; callers classify them with errors.Is. Domain errors
// (square root of a negative, lognormal pdf/cdf of a non-positive
// input) wrap mathx.ErrDomain.
var (
	// ErrInvalidParameter reports a distribution parameter outside
	// its allowed range, such as a non-positive sigma.
	ErrInvalidParameter = errors.New("rv: invalid parameter")

	// ErrInvalidArgument reports an argument outside its documented
	// range, such as an inverse-CDF probability outside [0, 1].
	ErrInvalidArgument = errors.New("rv: invalid argument")

	// ErrOutOfRange reports an indexed access beyond container
	// bounds.
	ErrOutOfRange = errors.New("rv: index out of range")

	// ErrNotFound reports a frequency lookup for a value absent from
	// the sample set.
	ErrNotFound = errors.New("rv: value not found")

	// ErrUnsupported reports an operation the representation does
	// not provide, such as inverse-CDF sampling on an unweighted
	// sample set.
	ErrUnsupported = errors.New("rv: unsupported operation")

	// ErrUninitialized reports use of a container whose combining
	// equation has not been set.
	ErrUninitialized = errors.New("rv: equation not initialized")

	// ErrSizeMismatch reports a value vector whose length does not
	// match the expected count. It is a kind of ErrInvalidArgument.
	ErrSizeMismatch = fmt.Errorf("%w: size mismatch", ErrInvalidArgument)
)
