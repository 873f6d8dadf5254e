// Copyright 2024 The RVLib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rv

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/nasa/RVLib/mathx"
)

// Unweighted is a nonparametric distribution stored as a literal
// ordered sequence of sample values, duplicates preserved
// positionally. The sequence grows by Append and never shrinks.
//
// The round-robin sampling cursor is per-instance mutable state
// retained across calls; an Unweighted shared across goroutines
// requires external synchronization.
type Unweighted struct {
	xs     []float64
	cursor int
}

// NewUnweighted returns a container over a copy of xs.
func NewUnweighted(xs ...float64) *Unweighted {
	u := &Unweighted{}
	u.setValues(append([]float64(nil), xs...))
	return u
}

// NewUnweightedFromPairs expands each (value, frequency) pair into
// frequency repeated copies of its value.
func NewUnweightedFromPairs(pairs []Pair) *Unweighted {
	u := &Unweighted{}
	for _, p := range pairs {
		for i := 0; i < p.Freq; i++ {
			u.xs = append(u.xs, p.Val)
		}
	}
	return u
}

func (u *Unweighted) setValues(xs []float64) {
	u.xs = xs
	u.cursor = 0
}

// Len returns the number of stored values.
func (u *Unweighted) Len() int { return len(u.xs) }

// Values returns a copy of the stored values in order.
func (u *Unweighted) Values() []float64 {
	return append([]float64(nil), u.xs...)
}

// Append grows the sample by one value.
func (u *Unweighted) Append(x float64) { u.xs = append(u.xs, x) }

// Get returns the k-th stored value.
func (u *Unweighted) Get(k int) (float64, error) {
	if k < 0 || k >= len(u.xs) {
		return 0, fmt.Errorf("%w: index %d with %d values", ErrOutOfRange, k, len(u.xs))
	}
	return u.xs[k], nil
}

// Set replaces the k-th stored value in place.
func (u *Unweighted) Set(k int, x float64) error {
	if k < 0 || k >= len(u.xs) {
		return fmt.Errorf("%w: index %d with %d values", ErrOutOfRange, k, len(u.xs))
	}
	u.xs[k] = x
	return nil
}

// Mean returns the arithmetic mean over all stored values.
func (u *Unweighted) Mean() float64 {
	return stat.Mean(u.xs, nil)
}

// Median returns the middle element of the sorted sample, averaging
// the two middle elements for an even-sized sample.
func (u *Unweighted) Median() float64 {
	n := len(u.xs)
	if n == 0 {
		return math.NaN()
	}
	tmp := append([]float64(nil), u.xs...)
	sort.Float64s(tmp)
	if n%2 == 0 {
		return (tmp[n/2-1] + tmp[n/2]) / 2
	}
	return tmp[n/2]
}

// StdDev returns the sample standard deviation (n-1 divisor).
func (u *Unweighted) StdDev() float64 {
	return stat.StdDev(u.xs, nil)
}

func (u *Unweighted) Variance() float64 {
	sd := u.StdDev()
	return sd * sd
}

// Mode returns the most frequent sample value, found by scanning runs
// of equal values in a sorted copy. When several values tie at the
// highest frequency, the first in sorted order wins.
func (u *Unweighted) Mode() float64 {
	if len(u.xs) == 0 {
		return math.NaN()
	}
	tmp := append([]float64(nil), u.xs...)
	sort.Float64s(tmp)

	mode, best := tmp[0], 1
	runVal, run := tmp[0], 1
	for _, x := range tmp[1:] {
		if mathx.Equal(runVal, x) {
			run++
		} else {
			runVal, run = x, 1
		}
		if run > best {
			best, mode = run, runVal
		}
	}
	return mode
}

// MeanHeight returns the mean frequency per distinct value.
func (u *Unweighted) MeanHeight() float64 {
	if len(u.xs) == 0 {
		return math.NaN()
	}
	return float64(len(u.xs)) / float64(len(u.FreqTable()))
}

// FreqTable returns the sample grouped into (value, frequency) pairs
// sorted by value.
func (u *Unweighted) FreqTable() []Pair {
	return groupValues(u.xs)
}

// Weighted groups the sample into a frequency-compressed container.
func (u *Unweighted) Weighted() *Weighted {
	return NewWeighted(u.xs...)
}

func (u *Unweighted) Stats() Statistics {
	return Statistics{Mean: u.Mean(), Mode: u.Mode(), Std: u.StdDev()}
}

// SampleSingle returns the next value in round-robin order through the
// stored sequence. The cursor is retained across calls and never
// reset. The sample must be non-empty; drawing from an empty sample
// panics.
func (u *Unweighted) SampleSingle() float64 {
	if len(u.xs) == 0 {
		panic("rv: SampleSingle on an empty unweighted sample set")
	}
	x := u.xs[u.cursor%len(u.xs)]
	u.cursor++
	return x
}

// Sample returns the next n values in round-robin order.
func (u *Unweighted) Sample(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = u.SampleSingle()
	}
	return xs
}

// SampleICDF is not supported for the unweighted representation.
func (u *Unweighted) SampleICDF(p float64) (float64, error) {
	return 0, fmt.Errorf("%w: unweighted sample sets do not support inverse-CDF sampling", ErrUnsupported)
}

// SampleICDFEach is not supported for the unweighted representation.
func (u *Unweighted) SampleICDFEach(n int, ps []float64) ([]float64, error) {
	return nil, fmt.Errorf("%w: unweighted sample sets do not support inverse-CDF sampling", ErrUnsupported)
}
