// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import "github.com/cprakashj01/raccoon/ad"

// V3 holds a vector with 3 components; e.g. one row of the displacement gradient
type V3[T ad.Number[T]] [3]T

// ZeroV3 returns the zero vector
func ZeroV3[T ad.Number[T]]() (v V3[T]) {
	var z T
	for i := 0; i < 3; i++ {
		v[i] = z.Const(0)
	}
	return
}

// Values returns the real parts
func (u V3[T]) Values() (v [3]float64) {
	for i := 0; i < 3; i++ {
		v[i] = u[i].Value()
	}
	return
}

// Derivs returns the derivative parts
func (u V3[T]) Derivs() (v [3]float64) {
	for i := 0; i < 3; i++ {
		v[i] = u[i].Deriv()
	}
	return
}
