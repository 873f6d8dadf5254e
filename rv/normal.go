// Copyright 2024 The RVLib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rv

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/nasa/RVLib/mathx"
)

// Normal is a normal (Gaussian) distribution with mean mu and standard
// deviation sigma. Sigma is strictly positive at all times.
type Normal struct {
	mu, sigma float64

	// Src is the source of randomness used by Sample. If nil, every
	// call seeds a fresh time-based source.
	Src rand.Source
}

// defaultSigma is the scale used when no parameters are given.
const defaultSigma = 0.1

// DefaultNormal returns a Normal with mu = 0 and sigma = 0.1.
func DefaultNormal() *Normal {
	return &Normal{sigma: defaultSigma}
}

// NewNormal returns a Normal with the given location and scale. Sigma
// must be positive.
func NewNormal(mu, sigma float64) (*Normal, error) {
	n := &Normal{mu: mu}
	if err := n.SetSigma(sigma); err != nil {
		return nil, err
	}
	return n, nil
}

// NewNormalFromParams constructs a Normal from a {mu, sigma} parameter
// vector.
func NewNormalFromParams(params []float64) (*Normal, error) {
	if len(params) != 2 {
		return nil, fmt.Errorf("%w: Normal takes exactly 2 parameters, got %d", ErrInvalidArgument, len(params))
	}
	return NewNormal(params[0], params[1])
}

// NewNormalFromStats constructs the Normal whose mean and standard
// deviation match the summary s.
func NewNormalFromStats(s Statistics) (*Normal, error) {
	return NewNormal(s.Mean, s.Std)
}

func (n *Normal) fromStats(s Statistics) error {
	n.mu = s.Mean
	return n.SetSigma(s.Std)
}

// SetSigma sets the scale parameter. A non-positive value is rejected
// with ErrInvalidParameter and the prior sigma is kept.
func (n *Normal) SetSigma(sigma float64) error {
	if sigma <= 0 {
		return fmt.Errorf("%w: sigma of a Normal distribution must be positive, got %v", ErrInvalidParameter, sigma)
	}
	n.sigma = sigma
	return nil
}

// SetMu sets the location parameter.
func (n *Normal) SetMu(mu float64) { n.mu = mu }

func (n *Normal) Mu() float64    { return n.mu }
func (n *Normal) Sigma() float64 { return n.sigma }

// Params returns the {mu, sigma} parameter vector.
func (n *Normal) Params() []float64 { return []float64{n.mu, n.sigma} }

func (n *Normal) Mean() float64   { return n.mu }
func (n *Normal) Median() float64 { return n.mu }
func (n *Normal) Mode() float64   { return n.mu }

func (n *Normal) StdDev() float64   { return n.sigma }
func (n *Normal) Variance() float64 { return n.sigma * n.sigma }

func (n *Normal) Stats() Statistics {
	return Statistics{Mean: n.Mean(), Mode: n.Mode(), Std: n.StdDev()}
}

// 1/sqrt(2 * pi)
const invSqrt2Pi = 0.39894228040143267793994605993438186847585863116493465766592583

// PDF returns the probability density at x.
func (n *Normal) PDF(x float64) (float64, error) {
	z := x - n.mu
	return math.Exp(-z*z/(2*n.sigma*n.sigma)) * invSqrt2Pi / n.sigma, nil
}

// CDF returns the probability that the variable is at most x.
func (n *Normal) CDF(x float64) (float64, error) {
	return 0.5 + 0.5*math.Erf((x-n.mu)/(n.sigma*math.Sqrt2)), nil
}

// ICDF returns the value at cumulative probability p. p must be in
// [0, 1]. Exactly 0 or 1 would invert to ∓infinity, so those inputs
// are nudged inward by clampProb.
func (n *Normal) ICDF(p float64) (float64, error) {
	p, err := clampProb(p)
	if err != nil {
		return 0, err
	}
	return normQuantile(p)*n.sigma + n.mu, nil
}

// smallestProb stands in for a cumulative probability of exactly 0 so
// that the quantile stays finite.
const smallestProb = math.SmallestNonzeroFloat64

// clampProb validates p ∈ [0, 1] and substitutes the nearest
// representable probability inside (0, 1) for the exact boundary
// values, logging a notice that the substitution occurred. The upper
// substitute must itself round below 1: 1-SmallestNonzeroFloat64 is
// exactly 1 in float64, so Nextafter supplies the largest double
// below 1.
func clampProb(p float64) (float64, error) {
	switch {
	case p < 0 || p > 1:
		return 0, fmt.Errorf("%w: cumulative probability %v outside [0, 1]", ErrInvalidArgument, p)
	case mathx.Equal(p, 0):
		log.Warning("icdf(0) is -Inf; substituting the smallest positive probability")
		return smallestProb, nil
	case mathx.Equal(p, 1):
		log.Warning("icdf(1) is +Inf; substituting the largest probability below 1")
		return math.Nextafter(1, 0), nil
	}
	return p, nil
}

// normQuantile returns the standard normal deviate z corresponding to
// the lower tail area p, accurate to about 1 part in 10**16.
//
// This is algorithm AS 241 (Wichura, 1988, Appl. Statist. 37 no. 3):
// the central region |p-0.5| <= 0.425 uses a single rational
// polynomial in q², the tails two further rational polynomials in
// r = sqrt(-log(min(p, 1-p))), split at r = 5.
func normQuantile(p float64) float64 {
	q := p - 0.5
	if math.Abs(q) <= 0.425 { // 0.075 <= p <= 0.925
		r := 0.180625 - q*q
		return q * (((((((r*2509.0809287301226727+33430.575583588128105)*r+67265.770927008700853)*r+45921.953931549871457)*r+13731.693765509461125)*r+1971.5909503065514427)*r+133.14166789178437745)*r + 3.387132872796366608) /
			(((((((r*5226.495278852854561+28729.085735721942674)*r+39307.89580009271061)*r+21213.794301586595867)*r+5394.1960214247511077)*r+687.1870074920579083)*r+42.313330701600911252)*r + 1)
	}

	r := p // min(p, 1-p) < 0.075
	if q > 0 {
		r = 1 - p
	}
	r = math.Sqrt(-math.Log(r))

	var z float64
	if r <= 5 { // min(p, 1-p) >= exp(-25) ~= 1.3888e-11
		r -= 1.6
		z = (((((((r*7.7454501427834140764e-4+0.0227238449892691845833)*r+0.24178072517745061177)*r+1.27045825245236838258)*r+3.64784832476320460504)*r+5.7694972214606914055)*r+4.6303378461565452959)*r + 1.42343711074968357734) /
			(((((((r*1.05075007164441684324e-9+5.475938084995344946e-4)*r+0.0151986665636164571966)*r+0.14810397642748007459)*r+0.68976733498510000455)*r+1.6763848301838038494)*r+2.05319162663775882187)*r + 1)
	} else { // very close to 0 or 1
		r -= 5
		z = (((((((r*2.01033439929228813265e-7+2.71155556874348757815e-5)*r+0.0012426609473880784386)*r+0.026532189526576123093)*r+0.29656057182850489123)*r+1.7848265399172913358)*r+5.4637849111641143699)*r + 6.6579046435011037772) /
			(((((((r*2.04426310338993978564e-15+1.4215117583164458887e-7)*r+1.8463183175100546818e-5)*r+7.868691311456132591e-4)*r+0.0148753612908506148525)*r+0.13692988092273580531)*r+0.59983220655588793769)*r + 1)
	}
	if q < 0 {
		z = -z
	}
	return z
}

// Sample draws n values from a generator calibrated to (mu, sigma).
func (n *Normal) Sample(count int) []float64 {
	dist := distuv.Normal{Mu: n.mu, Sigma: n.sigma, Src: timeSource(n.Src)}
	xs := make([]float64, count)
	for i := range xs {
		xs[i] = dist.Rand()
	}
	return xs
}

// SampleSingle draws one value.
func (n *Normal) SampleSingle() float64 {
	return n.Sample(1)[0]
}

// SampleICDF returns the value at cumulative probability p.
func (n *Normal) SampleICDF(p float64) (float64, error) {
	return n.ICDF(p)
}

// SampleICDFEach returns SampleICDF(ps[i]) for each i. count must
// equal len(ps).
func (n *Normal) SampleICDFEach(count int, ps []float64) ([]float64, error) {
	return icdfEach(n, count, ps)
}
