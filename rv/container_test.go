// Copyright 2024 The RVLib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rv

import (
	"errors"
	"testing"
)

func TestContainerZeroValue(t *testing.T) {
	var c Container
	if c.Len() != 0 {
		t.Errorf("len = %d, want 0", c.Len())
	}
	if _, err := c.Equation(nil); !errors.Is(err, ErrUninitialized) {
		t.Errorf("equation on zero container error = %v, want ErrUninitialized", err)
	}
}

func TestContainerEquation(t *testing.T) {
	sum := func(args []float64) float64 {
		s := 0.0
		for _, a := range args {
			s += a
		}
		return s
	}
	n1, _ := NewNormal(0, 1)
	n2, _ := NewNormal(5, 1)
	c, err := NewContainer(sum, n1, n2)
	if err != nil {
		t.Fatal(err)
	}

	y, err := c.Equation([]float64{2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if y != 5 {
		t.Errorf("equation([2 3]) = %v, want 5", y)
	}

	if _, err := c.Equation([]float64{1}); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("short argument vector error = %v, want ErrSizeMismatch", err)
	}
	if _, err := c.Equation([]float64{1, 2, 3}); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("long argument vector error = %v, want ErrSizeMismatch", err)
	}
}

func TestContainerNilEquation(t *testing.T) {
	if _, err := NewContainer(nil); !errors.Is(err, ErrUninitialized) {
		t.Errorf("NewContainer(nil) error = %v, want ErrUninitialized", err)
	}
	var c Container
	if err := c.SetEquation(nil); !errors.Is(err, ErrUninitialized) {
		t.Errorf("SetEquation(nil) error = %v, want ErrUninitialized", err)
	}
	if err := c.SetEquation(func(args []float64) float64 { return 0 }); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Equation(nil); err != nil {
		t.Errorf("equation after SetEquation: %v", err)
	}
}

func TestContainerAddVars(t *testing.T) {
	var c Container
	n, _ := NewNormal(0, 1)
	u := NewUnweighted(1, 2, 3)
	c.Add(n)
	c.Add(u)
	if c.Len() != 2 {
		t.Fatalf("len = %d, want 2", c.Len())
	}
	// Vars preserves insertion order; the equation sees arguments in
	// this order.
	vars := c.Vars()
	if vars[0] != RandomVariable(n) || vars[1] != RandomVariable(u) {
		t.Error("Vars order differs from insertion order")
	}
	vars[0] = nil
	if c.Vars()[0] == nil {
		t.Error("Vars must return a copy")
	}
}
