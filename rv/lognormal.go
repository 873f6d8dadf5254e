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

// Lognormal is the distribution of a variable whose logarithm is
// normally distributed. Mu and sigma are the log-space location and
// scale; sigma is strictly positive at all times.
type Lognormal struct {
	mu, sigma float64

	// Src is the source of randomness used by Sample. If nil, every
	// call seeds a fresh time-based source.
	Src rand.Source
}

// DefaultLognormal returns a Lognormal with mu = 0 and sigma = 0.1.
func DefaultLognormal() *Lognormal {
	return &Lognormal{sigma: defaultSigma}
}

// NewLognormal returns a Lognormal with the given log-space location
// and scale. Sigma must be positive.
func NewLognormal(mu, sigma float64) (*Lognormal, error) {
	l := &Lognormal{mu: mu}
	if err := l.SetSigma(sigma); err != nil {
		return nil, err
	}
	return l, nil
}

// NewLognormalFromParams constructs a Lognormal from a {mu, sigma}
// parameter vector.
func NewLognormalFromParams(params []float64) (*Lognormal, error) {
	if len(params) != 2 {
		return nil, fmt.Errorf("%w: Lognormal takes exactly 2 parameters, got %d", ErrInvalidArgument, len(params))
	}
	return NewLognormal(params[0], params[1])
}

// NewLognormalFromStats constructs the Lognormal whose mean and
// standard deviation match the summary s, via the moment-matching
// identities for the family. The mean must be positive.
func NewLognormalFromStats(s Statistics) (*Lognormal, error) {
	l := &Lognormal{}
	if err := l.fromStats(s); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Lognormal) fromStats(s Statistics) error {
	if s.Mean <= 0 {
		return fmt.Errorf("%w: lognormal moment fit requires a positive mean, got %v", mathx.ErrDomain, s.Mean)
	}
	// mu = ln(mean / sqrt(1 + std²/mean²)), sigma = sqrt(ln(1 + std²/mean²)).
	ratio := 1 + (s.Std*s.Std)/(s.Mean*s.Mean)
	sigma, err := mathx.Sqrt(math.Log(ratio))
	if err != nil {
		return err
	}
	if err := l.SetSigma(sigma); err != nil {
		return err
	}
	l.mu = math.Log(s.Mean / math.Sqrt(ratio))
	return nil
}

// SetSigma sets the log-space scale parameter. A non-positive value is
// rejected with ErrInvalidParameter and the prior sigma is kept.
func (l *Lognormal) SetSigma(sigma float64) error {
	if sigma <= 0 {
		return fmt.Errorf("%w: sigma of a Lognormal distribution must be positive, got %v", ErrInvalidParameter, sigma)
	}
	l.sigma = sigma
	return nil
}

// SetMu sets the log-space location parameter.
func (l *Lognormal) SetMu(mu float64) { l.mu = mu }

func (l *Lognormal) Mu() float64    { return l.mu }
func (l *Lognormal) Sigma() float64 { return l.sigma }

// Params returns the {mu, sigma} parameter vector.
func (l *Lognormal) Params() []float64 { return []float64{l.mu, l.sigma} }

func (l *Lognormal) Mean() float64   { return math.Exp(l.mu + l.sigma*l.sigma/2) }
func (l *Lognormal) Median() float64 { return math.Exp(l.mu) }
func (l *Lognormal) Mode() float64   { return math.Exp(l.mu - l.sigma*l.sigma) }

func (l *Lognormal) Variance() float64 {
	s2 := l.sigma * l.sigma
	return (math.Exp(s2) - 1) * math.Exp(2*l.mu+s2)
}

// StdDev returns the standard deviation. The variance is a product of
// non-negative factors, so the checked square root cannot fail for a
// finite sigma; a NaN is returned (and the cause logged) if it ever
// does.
func (l *Lognormal) StdDev() float64 {
	sd, err := mathx.Sqrt(l.Variance())
	if err != nil {
		log.Warningf("lognormal standard deviation: %v", err)
		return math.NaN()
	}
	return sd
}

func (l *Lognormal) Stats() Statistics {
	return Statistics{Mean: l.Mean(), Mode: l.Mode(), Std: l.StdDev()}
}

// PDF returns the probability density at x. x must be positive.
func (l *Lognormal) PDF(x float64) (float64, error) {
	if x <= 0 {
		return 0, fmt.Errorf("%w: lognormal density is defined only for x > 0, got %v", mathx.ErrDomain, x)
	}
	z := (math.Log(x) - l.mu) / l.sigma
	return math.Exp(-z*z/2) * invSqrt2Pi / (x * l.sigma), nil
}

// CDF returns the probability that the variable is at most x. x must
// be positive.
func (l *Lognormal) CDF(x float64) (float64, error) {
	if x <= 0 {
		return 0, fmt.Errorf("%w: lognormal distribution is defined only for x > 0, got %v", mathx.ErrDomain, x)
	}
	return 0.5 + 0.5*math.Erf((math.Log(x)-l.mu)/(l.sigma*math.Sqrt2)), nil
}

// ICDF returns the value at cumulative probability p, by
// exponentiating the normal quantile of the same p.
func (l *Lognormal) ICDF(p float64) (float64, error) {
	p, err := clampProb(p)
	if err != nil {
		return 0, err
	}
	return math.Exp(normQuantile(p)*l.sigma + l.mu), nil
}

// Sample draws n values from a generator calibrated to (mu, sigma).
func (l *Lognormal) Sample(count int) []float64 {
	dist := distuv.LogNormal{Mu: l.mu, Sigma: l.sigma, Src: timeSource(l.Src)}
	xs := make([]float64, count)
	for i := range xs {
		xs[i] = dist.Rand()
	}
	return xs
}

// SampleSingle draws one value.
func (l *Lognormal) SampleSingle() float64 {
	return l.Sample(1)[0]
}

// SampleICDF returns the value at cumulative probability p.
func (l *Lognormal) SampleICDF(p float64) (float64, error) {
	return l.ICDF(p)
}

// SampleICDFEach returns SampleICDF(ps[i]) for each i. count must
// equal len(ps).
func (l *Lognormal) SampleICDFEach(count int, ps []float64) ([]float64, error) {
	return icdfEach(l, count, ps)
}
