// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mdl implements the interface and database of material models evaluated at integration points
//  Models are registered by name. Names starting with "ad_" select the differentiable
//  instantiation of a model, whose values carry derivatives with respect to time.
package mdl

import (
	"sort"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cprakashj01/raccoon/ad"
	"github.com/cprakashj01/raccoon/inp"
	"github.com/cprakashj01/raccoon/prop"
)

// AdPrefix is the prefix of names of differentiable models
const AdPrefix = "ad_"

// Qp holds data of one integration point at one time
type Qp struct {
	Index int       // index of integration point
	T     float64   // time
	X     []float64 // [3] coordinates
}

// FuncDb defines a database of functions
type FuncDb interface {
	Func(name string) (inp.Function, error) // returns function by name
}

// Material defines the interface for material models
//  Lifecycle: Init → Declare → Resolve → (InitQp at all points → ComputeQp at all points per time)
type Material interface {
	Init(ndim int, mat *inp.MatData, funcs FuncDb) error // initialises model and checks parameters
	Declare(store *prop.Store) error                     // declares properties computed by this model
	Resolve(store *prop.Store) error                     // gets handles to properties consumed by this model
	Supplies() []string                                  // names of declared properties
	Needs() []string                                     // names of consumed properties
	InitQp(qp int)                                       // initialises stateful values at integration point
	ComputeQp(qp *Qp) error                              // computes properties at integration point
}

// New returns a new material model
func New(name string) (model Material, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'mdl' database", name)
	}
	return allocator(), nil
}

// SetAllocator sets a new model allocator
func SetAllocator(name string, fcn func() Material) {
	if _, ok := allocators[name]; ok {
		chk.Panic("cannot set allocator for model named %q because it exists already", name)
	}
	allocators[name] = fcn
}

// Names returns the (sorted) names of all available models
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// IsAd tells whether the model name selects a differentiable model
func IsAd(name string) bool {
	return strings.HasPrefix(name, AdPrefix)
}

// allocators holds all available models; modelname => allocator
var allocators = map[string]func() Material{}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// GetFuncs returns functions from database
func GetFuncs(funcs FuncDb, names []string) (fcns []inp.Function, err error) {
	fcns = make([]inp.Function, len(names))
	for i, name := range names {
		fcns[i], err = funcs.Func(name)
		if err != nil {
			return nil, err
		}
	}
	return
}

// Eval evaluates function f at qp
//  Note: differentiable numbers are seeded with ∂f/∂t
func Eval[T ad.Number[T]](f inp.Function, qp *Qp) T {
	var z T
	if !z.IsDifferentiable() {
		return z.Const(f.F(qp.T, qp.X))
	}
	return z.Var(f.F(qp.T, qp.X), f.G(qp.T, qp.X))
}

// Prefixed returns the names with prefix
func Prefixed(prefix string, names []string) (res []string) {
	res = make([]string, len(names))
	for i, name := range names {
		res[i] = prefix + name
	}
	return
}
