// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"context"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cprakashj01/raccoon/inp"
	"github.com/cprakashj01/raccoon/mdl"
	"github.com/cprakashj01/raccoon/prop"
	"golang.org/x/sync/errgroup"

	// register models
	_ "github.com/cprakashj01/raccoon/mdl/disp"
	_ "github.com/cprakashj01/raccoon/mdl/eigen"
	_ "github.com/cprakashj01/raccoon/mdl/elast"
	_ "github.com/cprakashj01/raccoon/mdl/generic"
	_ "github.com/cprakashj01/raccoon/mdl/strain"
)

// Domain holds all materials evaluated at a set of integration points and the store of properties
type Domain struct {

	// init: auxiliary variables
	Sim      *inp.Simulation // [from FEM] input data
	Nworkers int             // maximum number of concurrent workers
	ShowMsg  bool            // show messages

	// materials and properties
	Store    *prop.Store    // all properties
	Mats     []mdl.Material // materials in evaluation order
	MatNames []string       // names of material blocks in evaluation order
}

// NewDomain returns a new domain
//  Note: materials are initialised, ordered, declared and resolved here
func NewDomain(sim *inp.Simulation, nworkers int, verbose bool) (o *Domain, err error) {

	// new domain
	o = new(Domain)
	o.Sim = sim
	o.Nworkers = nworkers
	if o.Nworkers < 1 {
		o.Nworkers = 1
	}
	o.ShowMsg = verbose
	o.Store = prop.NewStore(sim.Nqp())

	// allocate and initialise materials
	n := len(sim.Materials)
	mats := make([]mdl.Material, n)
	names := make([]string, n)
	for i, mat := range sim.Materials {
		mats[i], err = mdl.New(mat.Type)
		if err != nil {
			return nil, chk.Err("cannot allocate material %q:\n%v", mat.Name, err)
		}
		err = mats[i].Init(sim.Ndim, mat, sim.Functions)
		if err != nil {
			return nil, chk.Err("cannot initialise material %q:\n%v", mat.Name, err)
		}
		names[i] = mat.Name
	}

	// evaluation order
	idx, err := Order(names, mats)
	if err != nil {
		return nil, err
	}
	for _, i := range idx {
		o.Mats = append(o.Mats, mats[i])
		o.MatNames = append(o.MatNames, names[i])
	}
	if o.ShowMsg {
		io.Pf("> Evaluation order = %v\n", o.MatNames)
	}

	// declare and resolve properties
	for i, m := range o.Mats {
		err = m.Declare(o.Store)
		if err != nil {
			return nil, chk.Err("material %q cannot declare properties:\n%v", o.MatNames[i], err)
		}
	}
	for i, m := range o.Mats {
		err = m.Resolve(o.Store)
		if err != nil {
			return nil, chk.Err("material %q cannot get properties:\n%v", o.MatNames[i], err)
		}
	}
	return
}

// Reinit restarts the stateful lifecycle: initial values are set at all points and copied to old values
func (o *Domain) Reinit() {
	for qp := 0; qp < o.Store.Nqp(); qp++ {
		for _, m := range o.Mats {
			m.InitQp(qp)
		}
	}
	o.Store.Shift()
}

// Step computes all materials at all points for time t
//  Note: points are split in chunks processed concurrently; the first error cancels the step
func (o *Domain) Step(ctx context.Context, t float64) (err error) {
	nqp := o.Store.Nqp()
	size := (nqp + o.Nworkers - 1) / o.Nworkers
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Nworkers)
	for start := 0; start < nqp; start += size {
		start := start
		end := start + size
		if end > nqp {
			end = nqp
		}
		g.Go(func() error {
			return o.compute(gctx, t, start, end)
		})
	}
	return g.Wait()
}

// Shift copies current values to old values of stateful properties
func (o *Domain) Shift() {
	o.Store.Shift()
}

// compute computes all materials at points in [start, end)
func (o *Domain) compute(ctx context.Context, t float64, start, end int) error {
	for qp := start; qp < end; qp++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		p := &mdl.Qp{Index: qp, T: t, X: o.Sim.Points[qp]}
		for i, m := range o.Mats {
			if err := m.ComputeQp(p); err != nil {
				return chk.Err("material %q failed at time %g:\n%v", o.MatNames[i], t, err)
			}
		}
	}
	return nil
}
