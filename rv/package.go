// Copyright 2024 The RVLib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rv represents scalar quantities whose true values are
// uncertain.
//
// A quantity can be held in either of two interchangeable
// representations: a parametric distribution (Normal, Lognormal) with
// closed-form formulas over a small parameter vector, or a
// nonparametric distribution (Unweighted, Weighted) computed directly
// over a stored sample set. The translation functions Sample and Fit
// move information between the two representations, and SampleMC and
// SampleLH evaluate a scalar function of several independent random
// variables by repeated sampling.
package rv // import "github.com/nasa/RVLib/rv"

import "github.com/op/go-logging"

var log = logging.MustGetLogger("rv")
