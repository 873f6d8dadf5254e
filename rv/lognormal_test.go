// Copyright 2024 The RVLib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rv

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/exp/rand"

	"github.com/nasa/RVLib/mathx"
)

func TestLognormalMoments(t *testing.T) {
	l, err := NewLognormal(0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(math.Exp(0.5), l.Mean()) {
		t.Errorf("mean = %v, want e^0.5", l.Mean())
	}
	if !aeq(1, l.Median()) {
		t.Errorf("median = %v, want 1", l.Median())
	}
	if !aeq(math.Exp(-1), l.Mode()) {
		t.Errorf("mode = %v, want e^-1", l.Mode())
	}
	if !aeq(math.E*math.E-math.E, l.Variance()) {
		t.Errorf("variance = %v, want e^2-e", l.Variance())
	}
	if !aeq(math.Sqrt(math.E*math.E-math.E), l.StdDev()) {
		t.Errorf("std = %v", l.StdDev())
	}
}

func TestLognormalConstructors(t *testing.T) {
	if d := DefaultLognormal(); d.Mu() != 0 || d.Sigma() != 0.1 {
		t.Errorf("default = (%v, %v), want (0, 0.1)", d.Mu(), d.Sigma())
	}
	if _, err := NewLognormal(0, 0); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("NewLognormal(0, 0) error = %v, want ErrInvalidParameter", err)
	}
	if _, err := NewLognormalFromParams([]float64{1}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("1-element param vector error = %v, want ErrInvalidArgument", err)
	}
	l, err := NewLognormalFromParams([]float64{0.5, 0.25})
	if err != nil || l.Mu() != 0.5 || l.Sigma() != 0.25 {
		t.Errorf("NewLognormalFromParams = (%v, %v), %v", l.Mu(), l.Sigma(), err)
	}
	if p := l.Params(); len(p) != 2 || p[0] != 0.5 || p[1] != 0.25 {
		t.Errorf("params = %v, want [0.5 0.25]", p)
	}
}

func TestLognormalFromStats(t *testing.T) {
	// The moment fit must reproduce the requested mean and standard
	// deviation.
	l, err := NewLognormalFromStats(Statistics{Mean: 10, Std: 3})
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(10, l.Mean()) {
		t.Errorf("fit mean = %v, want 10", l.Mean())
	}
	if !aeq(3, l.StdDev()) {
		t.Errorf("fit std = %v, want 3", l.StdDev())
	}

	for _, mean := range []float64{0, -2} {
		if _, err := NewLognormalFromStats(Statistics{Mean: mean, Std: 1}); !errors.Is(err, mathx.ErrDomain) {
			t.Errorf("fit with mean %v: error = %v, want ErrDomain", mean, err)
		}
	}
}

func TestLognormalPDF(t *testing.T) {
	l, _ := NewLognormal(0, 1)
	if p, _ := l.PDF(1); !aeq(1/math.Sqrt(2*math.Pi), p) {
		t.Errorf("pdf(1) = %v, want %v", p, 1/math.Sqrt(2*math.Pi))
	}
	// pdf(e) has z = 1 and an extra 1/x factor.
	if p, _ := l.PDF(math.E); !aeq(math.Exp(-0.5)/(math.E*math.Sqrt(2*math.Pi)), p) {
		t.Errorf("pdf(e) = %v", p)
	}
	for _, x := range []float64{0, -1} {
		if _, err := l.PDF(x); !errors.Is(err, mathx.ErrDomain) {
			t.Errorf("pdf(%v) error = %v, want ErrDomain", x, err)
		}
	}
}

func TestLognormalCDF(t *testing.T) {
	l, _ := NewLognormal(0, 1)
	if c, _ := l.CDF(1); !aeq(0.5, c) {
		t.Errorf("cdf(1) = %v, want 0.5", c)
	}
	if c, _ := l.CDF(1e9); !aeq(1, c) {
		t.Errorf("cdf(1e9) = %v, want 1", c)
	}
	if _, err := l.CDF(0); !errors.Is(err, mathx.ErrDomain) {
		t.Errorf("cdf(0) error = %v, want ErrDomain", err)
	}
}

func TestLognormalICDF(t *testing.T) {
	l, _ := NewLognormal(0, 1)
	if x, _ := l.ICDF(0.5); !aeq(1, x) {
		t.Errorf("icdf(0.5) = %v, want 1", x)
	}
	if x, _ := l.ICDF(0.975); !aeq(math.Exp(1.959963984540054), x) {
		t.Errorf("icdf(0.975) = %v", x)
	}
	if _, err := l.ICDF(1.5); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("icdf(1.5) error = %v, want ErrInvalidArgument", err)
	}

	// Boundary probabilities substitute inward and stay finite and
	// positive.
	for _, p := range []float64{0, 1} {
		x, err := l.ICDF(p)
		if err != nil {
			t.Fatalf("icdf(%v): %v", p, err)
		}
		if math.IsInf(x, 0) || math.IsNaN(x) || x <= 0 {
			t.Errorf("icdf(%v) = %v, want finite and positive", p, x)
		}
	}

	// Round trip through the CDF.
	shifted, _ := NewLognormal(1, 0.3)
	for _, p := range []float64{0.01, 0.25, 0.5, 0.75, 0.99} {
		x, err := shifted.ICDF(p)
		if err != nil {
			t.Fatalf("icdf(%v): %v", p, err)
		}
		back, _ := shifted.CDF(x)
		if !aeq(p, back) {
			t.Errorf("cdf(icdf(%v)) = %v", p, back)
		}
	}
}

func TestLognormalSample(t *testing.T) {
	l, _ := NewLognormal(0, 0.5)
	l.Src = rand.NewSource(1)

	xs := l.Sample(20000)
	if len(xs) != 20000 {
		t.Fatalf("len = %d, want 20000", len(xs))
	}
	for _, x := range xs[:100] {
		if x <= 0 {
			t.Fatalf("sample produced non-positive value %v", x)
		}
	}
	got := NewUnweighted(xs...)
	if mean := got.Mean(); math.Abs(mean-l.Mean()) > 0.05 {
		t.Errorf("sample mean = %v, want within 0.05 of %v", mean, l.Mean())
	}
}
