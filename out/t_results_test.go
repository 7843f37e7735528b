// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"encoding/json"
	"math"
	"os"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cprakashj01/raccoon/ad"
	"github.com/cprakashj01/raccoon/prop"
	"github.com/cprakashj01/raccoon/tensor"
	"github.com/ghodss/yaml"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// store returns a store with one point and a few properties
func store(tst *testing.T) *prop.Store {
	s := prop.NewStore(1)
	ε, _ := prop.Declare[tensor.R2[ad.Real]](s, "strain")
	F, _ := prop.Declare[tensor.R2[ad.Dual]](s, "deformation_gradient")
	u, _ := prop.Declare[tensor.V3[ad.Real]](s, "grad_disp_x")
	c, _ := prop.Declare[float64](s, "density")
	C, _ := prop.Declare[tensor.R4[ad.Real]](s, "elasticity_tensor")
	ε.Set(0, tensor.FromFloats[ad.Real]([3][3]float64{{2, 1, 0}, {1, 2, 0}, {0, 0, 5}}))
	f := tensor.Identity[ad.Dual]()
	f[0][1] = ad.NewDual(0.5, 1)
	F.Set(0, f)
	u.Set(0, tensor.V3[ad.Real]{1, 2, 3})
	c.Set(0, 2.5)
	C.Set(0, tensor.Isotropic[ad.Real](1, 2))
	return s
}

func Test_results01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("results01")

	s := store(tst)
	res, err := NewResults("res01", "test", s, nil)
	if err != nil {
		tst.Errorf("NewResults failed:\n%v", err)
		return
	}
	chk.Strings(tst, "names", res.Names, []string{"deformation_gradient", "density", "elasticity_tensor", "grad_disp_x", "strain"})
	err = res.Collect(s, 1, [][]float64{{0, 0, 0}})
	if err != nil {
		tst.Errorf("Collect failed:\n%v", err)
		return
	}
	p := res.Frames[0].Points[0]

	// symmetric rank-two
	v := p.Props["strain"]
	chk.Array(tst, "strain", 1e-15, v.Values, []float64{2, 1, 0, 1, 2, 0, 0, 0, 5})
	chk.Array(tst, "principal", 1e-14, v.Principal, []float64{1, 3, 5})
	if v.Det != nil || v.Derivs != nil {
		tst.Errorf("strain must not have det or derivatives\n")
		return
	}

	// deformation gradient
	v = p.Props["deformation_gradient"]
	if v.Det == nil {
		tst.Errorf("deformation gradient must have det\n")
		return
	}
	chk.Float64(tst, "det F", 1e-15, *v.Det, 1)
	chk.Array(tst, "dF/dt", 1e-15, v.Derivs, []float64{0, 1, 0, 0, 0, 0, 0, 0, 0})
	if v.Principal != nil {
		tst.Errorf("non-symmetric tensor must not have principal values\n")
		return
	}

	// others
	chk.Array(tst, "grad_disp_x", 1e-15, p.Props["grad_disp_x"].Values, []float64{1, 2, 3})
	chk.Array(tst, "density", 1e-15, p.Props["density"].Values, []float64{2.5})
	if len(p.Props["elasticity_tensor"].Values) != 81 {
		tst.Errorf("rank-four tensor must have 81 values\n")
		return
	}
	chk.Float64(tst, "C0000", 1e-15, p.Props["elasticity_tensor"].Values[0], 5)
	chk.Float64(tst, "max |strain|", 1e-15, res.MaxAbs("strain"), 5)
	res.Summary()

	// unknown output
	_, err = NewResults("res01", "", s, []string{"stress"})
	if err == nil {
		tst.Errorf("NewResults should have failed\n")
		return
	}
	io.Pforan("%v\n", err)

	// unsupported type
	_, err = NewValue("x", "string")
	if err == nil {
		tst.Errorf("NewValue should have failed\n")
	}
}

func Test_results02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("results02")

	s := store(tst)
	res, err := NewResults("res02", "save", s, []string{"strain", "density"})
	if err != nil {
		tst.Errorf("NewResults failed:\n%v", err)
		return
	}
	for _, t := range []float64{0.5, 1} {
		err = res.Collect(s, t, [][]float64{{1, 2, 3}})
		if err != nil {
			tst.Errorf("Collect failed:\n%v", err)
			return
		}
	}

	dirout := tst.TempDir()
	for _, enctype := range []string{"json", "yaml"} {
		fn, err := res.Save(dirout, enctype)
		if err != nil {
			tst.Errorf("Save failed:\n%v", err)
			return
		}
		io.Pforan("file = %v\n", fn)
		b, err := os.ReadFile(fn)
		if err != nil {
			tst.Errorf("cannot read file:\n%v", err)
			return
		}
		var back Results
		if enctype == "yaml" {
			err = yaml.Unmarshal(b, &back)
		} else {
			err = json.Unmarshal(b, &back)
		}
		if err != nil {
			tst.Errorf("cannot decode file:\n%v", err)
			return
		}
		if len(back.Frames) != 2 {
			tst.Errorf("wrong number of frames: %d\n", len(back.Frames))
			return
		}
		chk.Float64(tst, "t", 1e-15, back.Frames[1].T, 1)
		chk.Array(tst, "x", 1e-15, back.Frames[1].Points[0].X, []float64{1, 2, 3})
		chk.Array(tst, "strain", 1e-15, back.Frames[1].Points[0].Props["strain"].Values, []float64{2, 1, 0, 1, 2, 0, 0, 0, 5})
	}
}

func Test_results03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("results03")

	// non-finite values are reported with the property and the point
	s := prop.NewStore(2)
	ε, _ := prop.Declare[tensor.R2[ad.Real]](s, "strain")
	c, _ := prop.Declare[float64](s, "density")
	ε.Set(0, tensor.Zero[ad.Real]())
	ε.Set(1, tensor.FromFloats[ad.Real]([3][3]float64{{math.NaN(), 0, 0}, {0, 1, 0}, {0, 0, 1}}))
	c.Set(0, 1)
	c.Set(1, math.Inf(-1))
	for _, name := range []string{"strain", "density"} {
		res, err := NewResults("res03", "nan", s, []string{name})
		if err != nil {
			tst.Errorf("NewResults failed:\n%v", err)
			return
		}
		err = res.Collect(s, 1, [][]float64{{0, 0, 0}, {1, 0, 0}})
		if err == nil {
			tst.Errorf("Collect should have failed\n")
			return
		}
		io.Pforan("%v\n", err)
		msg := err.Error()
		if !strings.Contains(msg, "integration point 1") || !strings.Contains(msg, io.Sf("%q", name)) {
			tst.Errorf("error should name property and point: %v\n", msg)
			return
		}
	}

	// old values are checked too
	old, _ := prop.GetOld[float64](s, "density")
	s.Shift()
	c.Set(1, 2)
	chk.Float64(tst, "old density", 1e-15, old.At(0), 1)
	res, _ := NewResults("res03", "old", s, []string{"density"})
	err := res.Collect(s, 2, [][]float64{{0, 0, 0}, {1, 0, 0}})
	if err == nil {
		tst.Errorf("Collect should have failed with non-finite old value\n")
		return
	}
	io.Pforan("%v\n", err)
}
