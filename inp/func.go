// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Function defines a scalar function of time and space and its time derivative
type Function interface {
	F(t float64, x []float64) float64 // value
	G(t float64, x []float64) float64 // ∂f/∂t
}

// FuncData holds function definition
type FuncData struct {
	Name string     `json:"name"` // name of function. ex: zero, load, sxx, etc.
	Type string     `json:"type"` // type of function. ex: cte, rmp, lin
	Prms dbf.Params `json:"prms"` // parameters
}

// FuncsData holds functions
type FuncsData []*FuncData

// Get returns function by name
//  Note: "zero" and "none" are always available and return the zero function
func (o FuncsData) Get(name string) (fcn dbf.T, err error) {
	if name == "zero" || name == "none" {
		fcn = &dbf.Zero
		return
	}
	for _, f := range o {
		if f.Name == name {
			fcn, err = newFunc(f.Type, f.Prms)
			if err != nil {
				err = chk.Err("cannot get function named %q because of the following error:\n%v", name, err)
			}
			return
		}
	}
	err = chk.Err("cannot find function named %q\n", name)
	return
}

// Func returns function by name as a Function
func (o FuncsData) Func(name string) (fcn Function, err error) {
	f, err := o.Get(name)
	if err != nil {
		return
	}
	return f, nil
}

// Check checks that names are given and unique
func (o FuncsData) Check() (err error) {
	names := make(map[string]bool)
	for i, f := range o {
		if f.Name == "" {
			return chk.Err("function # %d has no name", i)
		}
		if f.Name == "zero" || f.Name == "none" {
			return chk.Err("function name %q is reserved", f.Name)
		}
		if names[f.Name] {
			return chk.Err("function name %q is repeated", f.Name)
		}
		names[f.Name] = true
	}
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////////

// newFunc allocates a function of type typ
//  Note: dbf.New panics on unknown types or invalid parameters; the panic is returned as an error
func newFunc(typ string, prms dbf.Params) (fcn dbf.T, err error) {
	defer func() {
		if r := recover(); r != nil {
			fcn, err = nil, chk.Err("%v", r)
		}
	}()
	return dbf.New(typ, prms), nil
}

// String prints one function
func (o FuncData) String() string {
	l := io.Sf("    {\"name\":%q, \"type\":%q, \"prms\":[", o.Name, o.Type)
	for i, p := range o.Prms {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("{\"n\":%q, \"v\":%g}", p.N, p.V)
	}
	return l + "]}"
}

// String prints functions
func (o FuncsData) String() string {
	if len(o) == 0 {
		return "  \"functions\" : []"
	}
	l := "  \"functions\" : [\n"
	for i, f := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", f)
	}
	l += "\n  ]"
	return l
}
