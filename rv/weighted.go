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

// Weighted is a nonparametric distribution stored as
// frequency-compressed (value, frequency) pairs with a cached total
// count. Values in the pair set are pairwise distinct under the
// scaled-epsilon equality test, frequencies are positive, and the
// frequency sum always equals the cached total.
//
// The round-robin sampling cursor is per-instance mutable state
// retained across calls; a Weighted shared across goroutines requires
// external synchronization.
type Weighted struct {
	pairs  []Pair
	total  int
	cursor int
}

// NewWeighted groups xs into frequency pairs after a full sort.
// Values within the scaled-epsilon tolerance collapse into one pair.
func NewWeighted(xs ...float64) *Weighted {
	w := &Weighted{}
	w.setValues(xs)
	return w
}

// NewWeightedFromPairs returns a container over a copy of pairs. The
// values must be pairwise distinct and the frequencies positive.
func NewWeightedFromPairs(pairs []Pair) (*Weighted, error) {
	w := &Weighted{}
	for _, p := range pairs {
		if p.Freq <= 0 {
			return nil, fmt.Errorf("%w: frequency of value %v must be positive, got %d", ErrInvalidParameter, p.Val, p.Freq)
		}
		if w.find(p.Val) >= 0 {
			return nil, fmt.Errorf("%w: duplicate value %v", ErrInvalidParameter, p.Val)
		}
		w.pairs = append(w.pairs, p)
		w.total += p.Freq
	}
	return w, nil
}

func (w *Weighted) setValues(xs []float64) {
	w.pairs = groupValues(xs)
	w.total = len(xs)
	w.cursor = 0
}

// groupValues sorts a copy of xs and run-length-encodes it into
// (value, frequency) pairs. Values within the scaled-epsilon tolerance
// collapse into one pair.
func groupValues(xs []float64) []Pair {
	if len(xs) == 0 {
		return nil
	}
	tmp := append([]float64(nil), xs...)
	sort.Float64s(tmp)

	pairs := []Pair{{Val: tmp[0]}}
	for _, x := range tmp {
		if !mathx.Equal(pairs[len(pairs)-1].Val, x) {
			pairs = append(pairs, Pair{Val: x})
		}
		pairs[len(pairs)-1].Freq++
	}
	return pairs
}

// find returns the index of the pair whose value equals val under the
// scaled-epsilon test, or -1.
func (w *Weighted) find(val float64) int {
	for i, p := range w.pairs {
		if mathx.Equal(p.Val, val) {
			return i
		}
	}
	return -1
}

// Len returns the total number of occurrences (the frequency sum).
func (w *Weighted) Len() int { return w.total }

// Pairs returns a copy of the stored pairs in storage order.
func (w *Weighted) Pairs() []Pair {
	return append([]Pair(nil), w.pairs...)
}

// Pair returns the k-th stored pair.
func (w *Weighted) Pair(k int) (Pair, error) {
	if k < 0 || k >= len(w.pairs) {
		return Pair{}, fmt.Errorf("%w: pair index %d with %d pairs", ErrOutOfRange, k, len(w.pairs))
	}
	return w.pairs[k], nil
}

// SetPair replaces the k-th stored pair and adjusts the cached total.
func (w *Weighted) SetPair(k int, p Pair) error {
	if k < 0 || k >= len(w.pairs) {
		return fmt.Errorf("%w: pair index %d with %d pairs", ErrOutOfRange, k, len(w.pairs))
	}
	if p.Freq <= 0 {
		return fmt.Errorf("%w: frequency of value %v must be positive, got %d", ErrInvalidParameter, p.Val, p.Freq)
	}
	if i := w.find(p.Val); i >= 0 && i != k {
		return fmt.Errorf("%w: value %v already stored at pair %d", ErrInvalidParameter, p.Val, i)
	}
	w.total += p.Freq - w.pairs[k].Freq
	w.pairs[k] = p
	return nil
}

// SetFreq sets the frequency recorded for an existing value and
// adjusts the cached total.
func (w *Weighted) SetFreq(val float64, freq int) error {
	i := w.find(val)
	if i < 0 {
		return fmt.Errorf("%w: value %v not in the sample set", ErrNotFound, val)
	}
	if freq <= 0 {
		return fmt.Errorf("%w: frequency of value %v must be positive, got %d", ErrInvalidParameter, val, freq)
	}
	w.total += freq - w.pairs[i].Freq
	w.pairs[i].Freq = freq
	return nil
}

// Freq returns the frequency recorded for val.
func (w *Weighted) Freq(val float64) (int, error) {
	i := w.find(val)
	if i < 0 {
		return 0, fmt.Errorf("%w: value %v not in the sample set", ErrNotFound, val)
	}
	return w.pairs[i].Freq, nil
}

// Append adds one occurrence of x, incrementing the frequency of an
// existing equal value rather than creating a duplicate pair.
func (w *Weighted) Append(x float64) {
	if i := w.find(x); i >= 0 {
		w.pairs[i].Freq++
	} else {
		w.pairs = append(w.pairs, Pair{Val: x, Freq: 1})
	}
	w.total++
}

// AppendPair adds p.Freq occurrences of p.Val, merging with an
// existing equal value.
func (w *Weighted) AppendPair(p Pair) error {
	if p.Freq <= 0 {
		return fmt.Errorf("%w: frequency of value %v must be positive, got %d", ErrInvalidParameter, p.Val, p.Freq)
	}
	if i := w.find(p.Val); i >= 0 {
		w.pairs[i].Freq += p.Freq
	} else {
		w.pairs = append(w.pairs, p)
	}
	w.total += p.Freq
	return nil
}

// Get treats the pair set as a virtual expanded sequence in pair order
// and returns the k-th element by walking cumulative frequency.
func (w *Weighted) Get(k int) (float64, error) {
	if k < 0 || k >= w.total {
		return 0, fmt.Errorf("%w: index %d with %d values", ErrOutOfRange, k, w.total)
	}
	return virtualAt(w.pairs, k), nil
}

// virtualAt returns the k-th element of the expanded sequence
// described by pairs. k must be below the frequency sum.
func virtualAt(pairs []Pair, k int) float64 {
	sum := 0
	for _, p := range pairs {
		sum += p.Freq
		if k < sum {
			return p.Val
		}
	}
	return math.NaN()
}

// Values expands each pair into frequency repeated copies of its
// value, in pair order.
func (w *Weighted) Values() []float64 {
	xs := make([]float64, 0, w.total)
	for _, p := range w.pairs {
		for i := 0; i < p.Freq; i++ {
			xs = append(xs, p.Val)
		}
	}
	return xs
}

// Unweighted expands the pair set into an unweighted container.
func (w *Weighted) Unweighted() *Unweighted {
	return NewUnweighted(w.Values()...)
}

// FreqTable returns the pairs sorted by value.
func (w *Weighted) FreqTable() []Pair {
	pairs := w.Pairs()
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Val < pairs[j].Val })
	return pairs
}

// valsWeights returns the distinct values and their frequencies as
// aligned vectors for the gonum weighted-moment routines.
func (w *Weighted) valsWeights() (vals, weights []float64) {
	vals = make([]float64, len(w.pairs))
	weights = make([]float64, len(w.pairs))
	for i, p := range w.pairs {
		vals[i] = p.Val
		weights[i] = float64(p.Freq)
	}
	return vals, weights
}

// Mean returns the frequency-weighted arithmetic mean.
func (w *Weighted) Mean() float64 {
	vals, weights := w.valsWeights()
	return stat.Mean(vals, weights)
}

// StdDev returns the population standard deviation over the virtual
// expanded sequence (divisor n).
func (w *Weighted) StdDev() float64 {
	vals, weights := w.valsWeights()
	return stat.PopStdDev(vals, weights)
}

func (w *Weighted) Variance() float64 {
	sd := w.StdDev()
	return sd * sd
}

// Median returns the middle element of the value-sorted virtual
// sequence, averaging the two middle elements for an even total.
func (w *Weighted) Median() float64 {
	if w.total == 0 {
		return math.NaN()
	}
	table := w.FreqTable()
	if w.total%2 == 0 {
		return (virtualAt(table, w.total/2-1) + virtualAt(table, w.total/2)) / 2
	}
	return virtualAt(table, w.total/2)
}

// Mode returns the value of the highest-frequency pair. The first
// pair in storage order wins ties.
func (w *Weighted) Mode() float64 {
	if len(w.pairs) == 0 {
		return math.NaN()
	}
	best := w.pairs[0]
	for _, p := range w.pairs[1:] {
		if p.Freq > best.Freq {
			best = p
		}
	}
	return best.Val
}

// MeanHeight returns the mean frequency per distinct value.
func (w *Weighted) MeanHeight() float64 {
	if len(w.pairs) == 0 {
		return math.NaN()
	}
	return float64(w.total) / float64(len(w.pairs))
}

func (w *Weighted) Stats() Statistics {
	return Statistics{Mean: w.Mean(), Mode: w.Mode(), Std: w.StdDev()}
}

// SampleSingle returns the next virtual element in round-robin order.
// The cursor is retained across calls and never reset. The sample
// must be non-empty; drawing from an empty sample panics.
func (w *Weighted) SampleSingle() float64 {
	if w.total == 0 {
		panic("rv: SampleSingle on an empty weighted sample set")
	}
	x := virtualAt(w.pairs, w.cursor%w.total)
	w.cursor++
	return x
}

// Sample returns the next n virtual elements in round-robin order.
func (w *Weighted) Sample(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = w.SampleSingle()
	}
	return xs
}

// SampleICDF returns the empirical quantile at cumulative probability
// p: the element of the value-sorted virtual sequence whose cumulative
// frequency share first reaches p.
func (w *Weighted) SampleICDF(p float64) (float64, error) {
	if p < 0 || p > 1 {
		return 0, fmt.Errorf("%w: cumulative probability %v outside [0, 1]", ErrInvalidArgument, p)
	}
	if w.total == 0 {
		return 0, fmt.Errorf("%w: inverse-CDF sampling on an empty sample set", ErrUnsupported)
	}
	k := int(math.Ceil(p*float64(w.total))) - 1
	if k < 0 {
		k = 0
	}
	return virtualAt(w.FreqTable(), k), nil
}

// SampleICDFEach returns SampleICDF(ps[i]) for each i. n must equal
// len(ps).
func (w *Weighted) SampleICDFEach(n int, ps []float64) ([]float64, error) {
	return icdfEach(w, n, ps)
}
