// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the collection and output of material properties at integration points
package out

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cprakashj01/raccoon/ad"
	"github.com/cprakashj01/raccoon/prop"
	"github.com/cprakashj01/raccoon/tensor"
	"gonum.org/v1/gonum/floats"
)

// constants
var (
	TolSym = 1e-12 // tolerance to consider a rank-two tensor symmetric
)

// Value holds the output of one property at one point
type Value struct {
	Kind      string    `json:"kind"`                // "scalar", "vector", "rank2" or "rank4"
	Values    []float64 `json:"values"`              // values; row-major
	Derivs    []float64 `json:"derivs,omitempty"`    // time derivatives (differentiable properties only)
	Old       []float64 `json:"old,omitempty"`       // values at the end of the previous step (stateful properties only)
	Principal []float64 `json:"principal,omitempty"` // principal values of symmetric rank-two tensors; ascending
	Mandel    []float64 `json:"mandel,omitempty"`    // Mandel representation of symmetric rank-two tensors
	Det       *float64  `json:"det,omitempty"`       // determinant of deformation gradients
}

// Point holds all outputs at one integration point
type Point struct {
	Index int               `json:"index"` // index of integration point
	X     []float64         `json:"x"`     // coordinates
	Props map[string]*Value `json:"props"` // property name => value
}

// Frame holds all outputs at one time
type Frame struct {
	T      float64  `json:"t"`      // time
	Points []*Point `json:"points"` // all points
}

// Results holds all outputs of a simulation
type Results struct {
	Key    string   `json:"key"`    // simulation key
	Desc   string   `json:"desc"`   // description
	Names  []string `json:"names"`  // names of output properties
	Frames []*Frame `json:"frames"` // all frames
}

// NewResults returns a new Results structure
//  Input:
//   names -- names of properties to output; nil means all properties in store (sorted)
func NewResults(key, desc string, store *prop.Store, names []string) (o *Results, err error) {
	o = &Results{Key: key, Desc: desc}
	if len(names) == 0 {
		o.Names = store.SortedNames()
		return
	}
	for _, name := range names {
		if !store.Has(name) {
			return nil, chk.Err("cannot output property %q because it has not been declared", name)
		}
	}
	o.Names = append([]string{}, names...)
	return
}

// Collect collects values of all output properties at all points
func (o *Results) Collect(store *prop.Store, t float64, points [][]float64) (err error) {
	frame := &Frame{T: t, Points: make([]*Point, len(points))}
	for qp, x := range points {
		p := &Point{Index: qp, X: x, Props: make(map[string]*Value)}
		for _, name := range o.Names {
			v, err := store.Value(name, qp)
			if err != nil {
				return err
			}
			p.Props[name], err = NewValue(name, v)
			if err != nil {
				return chk.Err("cannot collect property at integration point %d (t = %g):\n%v", qp, t, err)
			}
			old, err := store.OldValue(name, qp)
			if err != nil {
				return err
			}
			if old != nil {
				ov, err := NewValue(name, old)
				if err != nil {
					return chk.Err("cannot collect old property at integration point %d (t = %g):\n%v", qp, t, err)
				}
				p.Props[name].Old = ov.Values
			}
		}
		frame.Points[qp] = p
	}
	o.Frames = append(o.Frames, frame)
	return
}

// Save saves results to <dirout>/<key>.json or .yaml
func (o *Results) Save(dirout, enctype string) (fn string, err error) {
	var buf bytes.Buffer
	err = GetEncoder(&buf, enctype).Encode(o)
	if err != nil {
		return "", chk.Err("cannot encode results:\n%v", err)
	}
	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		return "", chk.Err("cannot create output directory:\n%v", err)
	}
	fn = filepath.Join(dirout, o.Key+GetExt(enctype))
	err = os.WriteFile(fn, buf.Bytes(), 0644)
	if err != nil {
		return "", chk.Err("cannot write results file:\n%v", err)
	}
	return
}

// MaxAbs returns the maximum absolute value of property name over all points of the last frame
func (o *Results) MaxAbs(name string) (res float64) {
	if len(o.Frames) == 0 {
		return
	}
	for _, p := range o.Frames[len(o.Frames)-1].Points {
		if v, ok := p.Props[name]; ok && len(v.Values) > 0 {
			res = math.Max(res, floats.Norm(v.Values, math.Inf(1)))
		}
	}
	return
}

// Summary prints the maximum absolute values of all outputs at the last frame
func (o *Results) Summary() {
	if len(o.Frames) == 0 {
		return
	}
	io.Pf("> Results at t = %g\n", o.Frames[len(o.Frames)-1].T)
	for _, name := range o.Names {
		io.Pf("  max |%s| = %g\n", name, o.MaxAbs(name))
	}
}

// NewValue converts a property value to output
func NewValue(name string, v interface{}) (res *Value, err error) {
	switch val := v.(type) {
	case float64:
		res = &Value{Kind: "scalar", Values: []float64{val}}
	case ad.Real:
		res = &Value{Kind: "scalar", Values: []float64{val.Value()}}
	case ad.Dual:
		res = &Value{Kind: "scalar", Values: []float64{val.Value()}, Derivs: []float64{val.Deriv()}}
	case tensor.V3[ad.Real]:
		vv := val.Values()
		res = &Value{Kind: "vector", Values: vv[:]}
	case tensor.V3[ad.Dual]:
		vv, dv := val.Values(), val.Derivs()
		res = &Value{Kind: "vector", Values: vv[:], Derivs: dv[:]}
	case tensor.R2[ad.Real]:
		res, err = rank2(name, val.Values(), nil)
	case tensor.R2[ad.Dual]:
		d := val.Derivs()
		res, err = rank2(name, val.Values(), &d)
	case tensor.R4[ad.Real]:
		res = &Value{Kind: "rank4", Values: rank4(func(i, j, k, l int) float64 { return val[i][j][k][l].Value() })}
	case tensor.R4[ad.Dual]:
		res = &Value{
			Kind:   "rank4",
			Values: rank4(func(i, j, k, l int) float64 { return val[i][j][k][l].Value() }),
			Derivs: rank4(func(i, j, k, l int) float64 { return val[i][j][k][l].Deriv() }),
		}
	default:
		err = chk.Err("cannot output property %q with values of type %T", name, v)
	}
	if err != nil {
		return nil, err
	}
	err = checkFinite(name, res.Values, res.Derivs)
	if err != nil {
		return nil, err
	}
	return
}

// rank2 converts a rank-two tensor
func rank2(name string, v [3][3]float64, d *[3][3]float64) (res *Value, err error) {
	res = &Value{Kind: "rank2", Values: tensor.Flat(v)}
	if d != nil {
		res.Derivs = tensor.Flat(*d)
	}
	err = checkFinite(name, res.Values, res.Derivs)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(name, "deformation_gradient") {
		det := tensor.Determinant(v)
		res.Det = &det
	}
	if tensor.IsSym(v, TolSym) {
		res.Principal, err = tensor.Principal(v)
		if err != nil {
			return nil, err
		}
		res.Mandel, err = tensor.Mandel(v)
	}
	return
}

// rank4 flattens a rank-four tensor
func rank4(f func(i, j, k, l int) float64) (res []float64) {
	res = make([]float64, 0, 81)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					res = append(res, f(i, j, k, l))
				}
			}
		}
	}
	return
}

// checkFinite returns an error if any value is NaN or Inf
func checkFinite(name string, vals ...[]float64) error {
	for _, vv := range vals {
		for i, v := range vv {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return chk.Err("property %q has non-finite value %g at component %d", name, v, i)
			}
		}
	}
	return nil
}
