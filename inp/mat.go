// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// MatData holds the input parameters of one material (model) block
type MatData struct {

	// input
	Name string `json:"name"` // name of material block; e.g. "eig1"
	Type string `json:"type"` // name of model; e.g. "green_strain", "ad_eigenstrain_from_eigenstress"

	// property naming
	BaseName string `json:"base_name"` // optional prefix allowing multiple systems on the same points

	// eigenstrain from eigenstress
	EigenstrainName string   `json:"eigenstrain_name"` // name of eigenstrain computed by this model
	EigenStress     []string `json:"eigen_stress"`     // [ndim*ndim] function names; xx, yx, zx, xy, yy, zy, xz, yz, zz

	// strain calculators
	EigenstrainNames []string `json:"eigenstrain_names"` // eigenstrains subtracted from the total strain
	GlobalStrain     string   `json:"global_strain"`     // name of property with a global strain added to the total strain

	// displacement gradient from functions
	GradDisp []string `json:"grad_disp"` // [ndim*ndim] function names; row-major ∂u_i/∂X_j

	// elasticity
	Prefactor string `json:"prefactor"` // function name scaling the elasticity tensor

	// generic tensor
	Property string   `json:"property"` // name of property computed by a generic model
	Values   []string `json:"values"`   // [ndim*ndim] function names; row-major

	// numeric parameters
	Prms dbf.Params `json:"prms"` // parameters; e.g. E, nu
}

// MatsData holds material blocks
type MatsData []*MatData

// Prefix returns the prefix of all property names
//  Note: a non-empty base name "phase1" gives "phase1_"
func (o *MatData) Prefix() string {
	if o.BaseName == "" {
		return ""
	}
	return o.BaseName + "_"
}

// Prm returns the value of parameter named n
func (o *MatData) Prm(n string) (v float64, found bool) {
	p := o.Prms.Find(n)
	if p == nil {
		return
	}
	return p.V, true
}

// MustPrm returns the value of parameter named n or an error if it is not available
func (o *MatData) MustPrm(n string) (v float64, err error) {
	v, found := o.Prm(n)
	if !found {
		err = chk.Err("material %q (%s): parameter %q must be given in \"prms\"", o.Name, o.Type, n)
	}
	return
}

// Check checks names and types of all material blocks
func (o MatsData) Check() (err error) {
	names := make(map[string]bool)
	for i, m := range o {
		if m.Name == "" {
			return chk.Err("material # %d has no name", i)
		}
		if m.Type == "" {
			return chk.Err("material %q has no type", m.Name)
		}
		if names[m.Name] {
			return chk.Err("material name %q is repeated", m.Name)
		}
		names[m.Name] = true
	}
	return
}

// String prints one material
func (o *MatData) String() string {
	return io.Sf("    {\"name\":%q, \"type\":%q, \"base_name\":%q}", o.Name, o.Type, o.BaseName)
}

// String prints all materials
func (o MatsData) String() string {
	if len(o) == 0 {
		return "  \"materials\" : []"
	}
	l := "  \"materials\" : [\n"
	for i, m := range o {
		if i > 0 {
			l += ",\n"
		}
		l += m.String()
	}
	return l + "\n  ]"
}
