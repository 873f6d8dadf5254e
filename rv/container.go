// Copyright 2024 The RVLib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rv

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// An Equation combines one sample from each member of a Container into
// a single scalar. It is called with a vector whose length equals the
// container's size, in the members' stored order.
type Equation func(args []float64) float64

// A Container holds an ordered list of independent random variables
// and the equation that combines one sample from each. The stored
// order is the argument order the equation sees. The container does
// not own its members; they may be shared with the caller.
//
// The zero Container is empty with no equation set.
type Container struct {
	rvs []RandomVariable
	eq  Equation

	// Src is the source of randomness used by the Latin hypercube
	// sampler. If nil, every call seeds a fresh time-based source.
	Src rand.Source
}

// NewContainer returns a container over rvs combining with eq.
func NewContainer(eq Equation, rvs ...RandomVariable) (*Container, error) {
	c := &Container{rvs: rvs}
	if err := c.SetEquation(eq); err != nil {
		return nil, err
	}
	return c, nil
}

// Add appends a member distribution. The equation's expected argument
// count is not revalidated here; Equation fails fast on any mismatch.
func (c *Container) Add(rv RandomVariable) {
	c.rvs = append(c.rvs, rv)
}

// Len returns the number of member distributions.
func (c *Container) Len() int { return len(c.rvs) }

// Vars returns a copy of the member list in stored order.
func (c *Container) Vars() []RandomVariable {
	return append([]RandomVariable(nil), c.rvs...)
}

// SetEquation sets the combining equation. A nil equation is rejected
// with ErrUninitialized.
func (c *Container) SetEquation(eq Equation) error {
	if eq == nil {
		return fmt.Errorf("%w: nil equation", ErrUninitialized)
	}
	c.eq = eq
	return nil
}

// Equation applies the combining equation to one sample per member.
// len(args) must equal Len().
func (c *Container) Equation(args []float64) (float64, error) {
	if c.eq == nil {
		return 0, fmt.Errorf("%w: no equation set on the container", ErrUninitialized)
	}
	if len(args) != len(c.rvs) {
		return 0, fmt.Errorf("%w: %d arguments for %d member distributions", ErrSizeMismatch, len(args), len(c.rvs))
	}
	return c.eq(args), nil
}
