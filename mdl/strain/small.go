// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strain

import (
	"github.com/cprakashj01/raccoon/ad"
	"github.com/cprakashj01/raccoon/mdl"
)

// Small computes the small (infinitesimal) strain ε = ½ (A + Aᵀ)
type Small[T ad.Number[T]] struct {
	Base[T]
}

// add models to database
func init() {
	mdl.SetAllocator("small_strain", func() mdl.Material { return new(Small[ad.Real]) })
	mdl.SetAllocator(mdl.AdPrefix+"small_strain", func() mdl.Material { return new(Small[ad.Dual]) })
}

// ComputeQp computes the small strain and the mechanical strain
func (o *Small[T]) ComputeQp(qp *mdl.Qp) (err error) {
	A := o.GradDisp(qp.Index)
	o.Finish(qp.Index, A.Add(A.Transpose()).Scale(0.5))
	return
}
