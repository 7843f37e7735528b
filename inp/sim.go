// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON or YAML file
package inp

import (
	"bytes"
	"encoding/json"
	goio "io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/ghodss/yaml"
)

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc"`    // description of simulation
	Ndim    int    `json:"ndim"`    // space dimension: 2 or 3; default is 3
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/raccoon
	Encoder string `json:"encoder"` // encoder name; e.g. "json" or "yaml"
}

// TimeControl holds data for defining the sequence of evaluation times
type TimeControl struct {
	T0 float64 `json:"t0"` // initial time
	Tf float64 `json:"tf"` // final time
	Dt float64 `json:"dt"` // time step size
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data      Data        `json:"data"`      // global simulation data
	Functions FuncsData   `json:"functions"` // functions of (t, x)
	Points    [][]float64 `json:"points"`    // [nqp][ndim] coordinates of integration points
	Materials MatsData    `json:"materials"` // material blocks
	Control   TimeControl `json:"control"`   // time control
	Outputs   []string    `json:"outputs"`   // names of properties to be saved; empty means all

	// derived
	Key     string // simulation key; e.g. mysim01.sim => mysim01 or mysim01-alias
	DirOut  string // directory to save results
	EncType string // encoder type
	Ndim    int    // space dimension
}

// ReadSim reads all simulation data from a .sim (JSON) or .yaml/.yml (YAML) file
func ReadSim(simfilepath, alias string) (o *Simulation, err error) {

	// read file
	b, err := os.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read simulation file %q:\n%v", simfilepath, err)
	}

	// decode
	fn := filepath.Base(simfilepath)
	o, err = DecodeSim(b, isYaml(fn))
	if err != nil {
		return nil, chk.Err("ReadSim: cannot decode simulation file %q:\n%v", simfilepath, err)
	}

	// filename key
	o.Key = io.FnKey(fn)
	if alias != "" {
		o.Key += "-" + alias
	}

	// output directory
	o.DirOut = os.ExpandEnv(o.Data.DirOut)
	if o.DirOut == "" {
		o.DirOut = filepath.Join(os.TempDir(), "raccoon", io.FnKey(fn))
	}
	return
}

// DecodeSim decodes and checks simulation data
//  Note: Key and DirOut are not set
func DecodeSim(b []byte, isyaml bool) (o *Simulation, err error) {
	o = new(Simulation)
	if isyaml {
		err = yaml.Unmarshal(b, o)
	} else {
		err = json.Unmarshal(b, o)
	}
	if err != nil {
		return nil, err
	}
	err = o.PostProcess()
	if err != nil {
		return nil, err
	}
	return
}

// PostProcess sets default values and checks data
func (o *Simulation) PostProcess() (err error) {

	// space dimension
	o.Ndim = o.Data.Ndim
	if o.Ndim == 0 {
		o.Ndim = 3
	}
	if o.Ndim != 2 && o.Ndim != 3 {
		return chk.Err("space dimension must be 2 or 3. ndim = %d is invalid", o.Ndim)
	}

	// encoder type
	o.EncType = o.Data.Encoder
	if o.EncType != "json" && o.EncType != "yaml" {
		o.EncType = "json"
	}

	// points
	if len(o.Points) == 0 {
		return chk.Err("at least one integration point must be given in \"points\"")
	}
	for i, x := range o.Points {
		if len(x) < o.Ndim || len(x) > 3 {
			return chk.Err("integration point # %d must have between %d and 3 coordinates. %v is invalid", i, o.Ndim, x)
		}
		if len(x) < 3 {
			o.Points[i] = append(x, make([]float64, 3-len(x))...)
		}
	}

	// functions and materials
	err = o.Functions.Check()
	if err != nil {
		return
	}
	if len(o.Materials) == 0 {
		return chk.Err("at least one material must be given in \"materials\"")
	}
	err = o.Materials.Check()
	if err != nil {
		return
	}

	// time control
	if o.Control.Dt < 1e-14 {
		o.Control.Dt = 1
	}
	if o.Control.Tf < o.Control.T0 {
		return chk.Err("final time tf=%g must not be smaller than initial time t0=%g", o.Control.Tf, o.Control.T0)
	}
	return
}

// Times returns all evaluation times t0 + dt, t0 + 2 dt, ... up to tf
//  Note: the last time is always tf; t0 is not included
func (o *Simulation) Times() (times []float64) {
	t0, tf, dt := o.Control.T0, o.Control.Tf, o.Control.Dt
	if tf-t0 < 1e-14 {
		return []float64{t0}
	}
	n := int(math.Ceil((tf-t0)/dt - 1e-10))
	times = make([]float64, n)
	for i := 0; i < n; i++ {
		times[i] = math.Min(t0+float64(i+1)*dt, tf)
	}
	times[n-1] = tf
	return
}

// Nqp returns the number of integration points
func (o *Simulation) Nqp() int {
	return len(o.Points)
}

// GetInfo writes a summary of the simulation data
func (o *Simulation) GetInfo(w goio.Writer) (err error) {
	var buf bytes.Buffer
	io.Ff(&buf, "{\n  \"key\" : %q,\n  \"ndim\" : %d,\n  \"npoints\" : %d,\n  \"ntimes\" : %d,\n", o.Key, o.Ndim, o.Nqp(), len(o.Times()))
	io.Ff(&buf, "%v,\n%v\n}\n", o.Functions, o.Materials)
	_, err = w.Write(buf.Bytes())
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// isYaml tells whether a filename has a YAML extension
func isYaml(fn string) bool {
	ext := strings.ToLower(filepath.Ext(fn))
	return ext == ".yaml" || ext == ".yml"
}
