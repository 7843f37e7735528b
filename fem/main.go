// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the driver evaluating materials at integration points over time
package fem

import (
	"context"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cprakashj01/raccoon/inp"
	"github.com/cprakashj01/raccoon/out"
)

// Main holds all data for a simulation evaluating materials at integration points
type Main struct {
	Sim     *inp.Simulation // simulation data
	Dom     *Domain         // materials and properties
	Results *out.Results    // collected results
	Save    bool            // save results file at the end of Run
	ShowMsg bool            // show messages
}

// NewMain returns a new Main structure
//  Input:
//   simfilepath -- simulation (.sim, .yaml) filename including full path
//   alias       -- word to be appended to simulation key; e.g. when running multiple simulations
//   dirout      -- output directory; overrides the one in the simulation file if not empty
//   nworkers    -- maximum number of concurrent workers
//   verbose     -- show messages
func NewMain(simfilepath, alias, dirout string, nworkers int, verbose bool) (o *Main, err error) {

	// read input data
	sim, err := inp.ReadSim(simfilepath, alias)
	if err != nil {
		return
	}
	if dirout != "" {
		sim.DirOut = dirout
	}
	if verbose {
		io.Pf("> Simulation file read\n")
	}

	// new Main object
	o, err = NewMainSim(sim, nworkers, verbose)
	if err != nil {
		return
	}
	o.Save = true
	return
}

// NewMainSim returns a new Main structure from existent simulation data
//  Note: results are not saved by Run unless Save is set
func NewMainSim(sim *inp.Simulation, nworkers int, verbose bool) (o *Main, err error) {
	o = new(Main)
	o.Sim = sim
	o.ShowMsg = verbose
	o.Dom, err = NewDomain(sim, nworkers, verbose)
	if err != nil {
		return nil, err
	}
	o.Results, err = out.NewResults(sim.Key, sim.Data.Desc, o.Dom.Store, sim.Outputs)
	if err != nil {
		return nil, err
	}
	if o.ShowMsg {
		io.Pf("> Initialisation step completed\n")
	}
	return
}

// Run evaluates all materials at all points for all times
func (o *Main) Run(ctx context.Context) (err error) {

	// exit commands
	cputime := time.Now()
	defer func() { err = o.onexit(cputime, err) }()

	// initial values
	o.Dom.Reinit()

	// time loop
	times := o.Sim.Times()
	if o.ShowMsg {
		io.Pf("> Running %d steps with %d workers\n", len(times), o.Dom.Nworkers)
	}
	for _, t := range times {
		err = o.Dom.Step(ctx, t)
		if err != nil {
			return
		}
		err = o.Results.Collect(o.Dom.Store, t, o.Sim.Points)
		if err != nil {
			return
		}
		o.Dom.Shift()
		if o.ShowMsg {
			io.Pf("> t = %g\n", t)
		}
	}
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// onexit prints final message with cpu time and saves results
func (o *Main) onexit(cputime time.Time, prevErr error) (err error) {

	// show final message
	if o.ShowMsg {
		if prevErr == nil {
			o.Results.Summary()
			io.PfGreen("> Success\n")
			io.Pf("> CPU time = %v\n", time.Now().Sub(cputime))
		} else {
			io.PfRed("> Failed\n")
		}
	}

	// skip if previous error is not nil
	if prevErr != nil {
		return prevErr
	}

	// save results
	if o.Save {
		fn, err := o.Results.Save(o.Sim.DirOut, o.Sim.EncType)
		if err != nil {
			return chk.Err("cannot save results:\n%v", err)
		}
		if o.ShowMsg {
			io.Pf("> Results saved in %s\n", fn)
		}
	}
	return
}
