// Copyright 2024 The RVLib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rv

import (
	"gonum.org/v1/gonum/stat/sampleuv"
)

// The translation functions move information between the parametric
// and nonparametric representations and sample functions of several
// independent random variables. They are generic over the concrete
// target type: T is one of the nonparametric containers (Unweighted,
// Weighted) for the sampling directions, or one of the parametric
// families (Normal, Lognormal) for Fit.

// nonParametricPtr constrains a pointer to a concrete nonparametric
// container that can be rebuilt from raw sample values.
type nonParametricPtr[T any] interface {
	*T
	NonParametric
	setValues([]float64)
}

// parametricPtr constrains a pointer to a concrete parametric family
// that can be fit from summary statistics.
type parametricPtr[T any] interface {
	*T
	Parametric
	fromStats(Statistics) error
}

// Sample draws n values from p and collects them into a fresh
// nonparametric container of type T. No resampling correction is
// applied.
func Sample[T any, PT nonParametricPtr[T]](p Parametric, n int) *T {
	var t T
	PT(&t).setValues(p.Sample(n))
	return &t
}

// Fit constructs the parametric family T from the mean/mode/std
// summary of np. This is a pure method-of-moments fit; no
// maximum-likelihood refinement is attempted.
func Fit[T any, PT parametricPtr[T]](np NonParametric) (*T, error) {
	var t T
	if err := PT(&t).fromStats(np.Stats()); err != nil {
		return nil, err
	}
	return &t, nil
}

// SampleMC evaluates c's equation over n plain Monte Carlo
// iterations. Each iteration draws one sample from every member in
// stored order, combines the vector with the equation, and collects
// the scalar result into a container of type T.
func SampleMC[T any, PT nonParametricPtr[T]](c *Container, n int) (*T, error) {
	args := make([]float64, c.Len())
	out := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		for j, rv := range c.rvs {
			args[j] = rv.SampleSingle()
		}
		y, err := c.Equation(args)
		if err != nil {
			return nil, err
		}
		out = append(out, y)
	}
	var t T
	PT(&t).setValues(out)
	return &t, nil
}

// quantiler adapts a RandomVariable's inverse-CDF sampling to the
// distuv.Quantiler interface expected by sampleuv, capturing the first
// error since Quantile cannot return one.
type quantiler struct {
	rv  RandomVariable
	err error
}

func (q *quantiler) Quantile(p float64) float64 {
	x, err := q.rv.SampleICDF(p)
	if err != nil && q.err == nil {
		q.err = err
	}
	return x
}

// SampleLH evaluates c's equation over n Latin hypercube samples.
//
// For each member, the [0, 1] probability range is divided into n
// equal strata; every stratum is hit exactly once across the n
// samples, jittered uniformly within the stratum, and the stratified
// probabilities pass through the member's inverse CDF. The per-sample
// value vectors are combined in the members' stored order. Members
// without inverse-CDF support propagate their ErrUnsupported.
func SampleLH[T any, PT nonParametricPtr[T]](c *Container, n int) (*T, error) {
	src := timeSource(c.Src)

	// One stratified column of n draws per member variable.
	cols := make([][]float64, c.Len())
	for i, rv := range c.rvs {
		q := &quantiler{rv: rv}
		cols[i] = make([]float64, n)
		sampleuv.LatinHypercube{Q: q, Src: src}.Sample(cols[i])
		if q.err != nil {
			return nil, q.err
		}
	}

	args := make([]float64, c.Len())
	out := make([]float64, 0, n)
	for j := 0; j < n; j++ {
		for i := range cols {
			args[i] = cols[i][j]
		}
		y, err := c.Equation(args)
		if err != nil {
			return nil, err
		}
		out = append(out, y)
	}
	var t T
	PT(&t).setValues(out)
	return &t, nil
}
