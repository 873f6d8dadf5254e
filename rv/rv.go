// Copyright 2024 The RVLib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rv

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"
)

// Statistics is a representation-agnostic summary of a distribution:
// its mean, mode, and standard deviation. It carries information from
// a nonparametric fit into a parametric constructor and describes any
// RandomVariable uniformly.
//
// Statistics itself places no constraint on its fields; a consuming
// constructor rejects a non-positive Std.
type Statistics struct {
	Mean, Mode, Std float64
}

func (s Statistics) String() string {
	return fmt.Sprintf("mean %g  mode %g  std %g", s.Mean, s.Mode, s.Std)
}

// A RandomVariable is a scalar quantity whose true value is uncertain,
// represented either parametrically or by a stored sample set.
type RandomVariable interface {
	// Mean returns the expected value of the variable.
	Mean() float64

	// Median returns the value splitting the distribution's
	// probability mass in half.
	Median() float64

	// Mode returns the most probable value.
	Mode() float64

	// StdDev returns the standard deviation.
	StdDev() float64

	// Variance returns the squared standard deviation.
	Variance() float64

	// Stats returns the compact mean/mode/std summary.
	Stats() Statistics

	// SampleSingle draws one value from the variable.
	SampleSingle() float64

	// Sample draws n values from the variable.
	Sample(n int) []float64

	// SampleICDF draws the value at cumulative probability p.
	// Representations without an inverse CDF return ErrUnsupported.
	SampleICDF(p float64) (float64, error)

	// SampleICDFEach returns SampleICDF(ps[i]) for each i. n must
	// equal len(ps).
	SampleICDFEach(n int, ps []float64) ([]float64, error)
}

// A Parametric distribution represents uncertainty with a small fixed
// parameter vector and closed-form formulas.
type Parametric interface {
	RandomVariable

	// PDF returns the probability density at x.
	PDF(x float64) (float64, error)

	// CDF returns the probability that the variable is at most x.
	CDF(x float64) (float64, error)

	// ICDF returns the value at cumulative probability p. p must be
	// in [0, 1].
	ICDF(p float64) (float64, error)

	// Params returns the distribution's parameter vector.
	Params() []float64
}

// Pair is a distinct sample value and the number of times it occurs.
type Pair struct {
	Val  float64
	Freq int
}

// A NonParametric distribution represents uncertainty directly as a
// stored sample set, weighted or unweighted.
type NonParametric interface {
	RandomVariable

	// Append grows the sample by one occurrence of x.
	Append(x float64)

	// Get returns the k-th sample value, counting every occurrence.
	Get(k int) (float64, error)

	// Len returns the total number of occurrences stored.
	Len() int

	// MeanHeight returns the mean frequency per distinct value: the
	// total count divided by the distinct-value count.
	MeanHeight() float64

	// FreqTable returns value/frequency pairs sorted by value.
	FreqTable() []Pair

	// Values returns the sample expanded to one element per
	// occurrence.
	Values() []float64
}

// icdfEach evaluates d's inverse CDF at each probability in ps after
// checking that n matches the vector length.
func icdfEach(d RandomVariable, n int, ps []float64) ([]float64, error) {
	if n != len(ps) {
		return nil, fmt.Errorf("%w: %d probabilities for %d requested samples", ErrSizeMismatch, len(ps), n)
	}
	xs := make([]float64, len(ps))
	for i, p := range ps {
		x, err := d.SampleICDF(p)
		if err != nil {
			return nil, err
		}
		xs[i] = x
	}
	return xs, nil
}

// timeSource returns src, or a fresh time-seeded source when src is
// nil.
func timeSource(src rand.Source) rand.Source {
	if src != nil {
		return src
	}
	return rand.NewSource(uint64(time.Now().UnixNano()))
}
