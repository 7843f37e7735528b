// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package elast implements linear elastic models: elasticity tensors and stresses
package elast

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cprakashj01/raccoon/ad"
	"github.com/cprakashj01/raccoon/inp"
	"github.com/cprakashj01/raccoon/mdl"
	"github.com/cprakashj01/raccoon/prop"
	"github.com/cprakashj01/raccoon/tensor"
)

// Isotropic computes the isotropic elasticity tensor
//
//   C_ijkl = f(t,x) [ λ δ_ij δ_kl + G (δ_ik δ_jl + δ_il δ_jk) ]
//
//   where f is an optional prefactor function (default: 1)
type Isotropic[T ad.Number[T]] struct {

	// parameters
	Lam float64 // Lamé's first parameter λ
	G   float64 // shear modulus

	// input
	Name      string       // name of material block
	Prefix    string       // prefix of property names
	Prefactor inp.Function // prefactor; may be nil

	// properties
	C *prop.Prop[tensor.R4[T]] // elasticity tensor
}

// add models to database
func init() {
	mdl.SetAllocator("isotropic_elasticity", func() mdl.Material { return new(Isotropic[ad.Real]) })
	mdl.SetAllocator(mdl.AdPrefix+"isotropic_elasticity", func() mdl.Material { return new(Isotropic[ad.Dual]) })
}

// Init initialises model
func (o *Isotropic[T]) Init(ndim int, mat *inp.MatData, funcs mdl.FuncDb) (err error) {
	o.Name = mat.Name
	o.Prefix = mat.Prefix()
	o.Lam, o.G, err = Moduli(mat)
	if err != nil {
		return
	}
	if mat.Prefactor != "" {
		o.Prefactor, err = funcs.Func(mat.Prefactor)
		if err != nil {
			return chk.Err("prefactor: %s:\n%v", o.Name, err)
		}
	}
	return
}

// Declare declares the elasticity tensor
func (o *Isotropic[T]) Declare(store *prop.Store) (err error) {
	o.C, err = prop.Declare[tensor.R4[T]](store, o.Prefix+"elasticity_tensor")
	return
}

// Resolve does nothing
func (o *Isotropic[T]) Resolve(store *prop.Store) (err error) { return }

// Supplies returns the name of the elasticity tensor
func (o *Isotropic[T]) Supplies() []string { return []string{o.Prefix + "elasticity_tensor"} }

// Needs returns nil
func (o *Isotropic[T]) Needs() []string { return nil }

// InitQp does nothing
func (o *Isotropic[T]) InitQp(qp int) {}

// ComputeQp computes the elasticity tensor
func (o *Isotropic[T]) ComputeQp(qp *mdl.Qp) (err error) {
	var z T
	C := tensor.Isotropic(z.Const(o.Lam), z.Const(o.G))
	if o.Prefactor != nil {
		C = C.ScaleBy(mdl.Eval[T](o.Prefactor, qp))
	}
	o.C.Set(qp.Index, C)
	return
}

// Moduli returns λ and G from one of the pairs (E, nu), (lambda, G) or (K, G)
func Moduli(mat *inp.MatData) (λ, G float64, err error) {
	E, hasE := mat.Prm("E")
	l, hasL := mat.Prm("lambda")
	K, hasK := mat.Prm("K")
	switch {
	case hasE:
		ν, err := mat.MustPrm("nu")
		if err != nil {
			return 0, 0, err
		}
		if ν <= -1 || ν >= 0.5 {
			return 0, 0, chk.Err("%s: Poisson's coefficient must be in (-1, 0.5). nu = %g is invalid", mat.Name, ν)
		}
		λ = E * ν / ((1 + ν) * (1 - 2*ν))
		G = E / (2 * (1 + ν))
	case hasL:
		G, err = mat.MustPrm("G")
		λ = l
	case hasK:
		G, err = mat.MustPrm("G")
		λ = K - 2*G/3
	default:
		err = chk.Err("%s: elastic parameters must be given as one of the pairs (E, nu), (lambda, G) or (K, G)", mat.Name)
	}
	if err != nil {
		return 0, 0, err
	}
	return
}
