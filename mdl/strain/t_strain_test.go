// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strain

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cprakashj01/raccoon/ad"
	"github.com/cprakashj01/raccoon/ana"
	"github.com/cprakashj01/raccoon/inp"
	"github.com/cprakashj01/raccoon/mdl"
	_ "github.com/cprakashj01/raccoon/mdl/eigen"
	_ "github.com/cprakashj01/raccoon/mdl/elast"
	"github.com/cprakashj01/raccoon/prop"
	"github.com/cprakashj01/raccoon/tensor"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// gradFuncs returns functions A_ij(t) = A0_ij + t A1_ij
func gradFuncs(A0, A1 [3][3]float64) (db mdl.FuncMap, names []string) {
	db = make(mdl.FuncMap)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			name := io.Sf("A%d%d", i, j)
			db[name] = mdl.Poly{A: A0[i][j], B: A1[i][j]}
			names = append(names, name)
		}
	}
	return
}

// run computes all models at point 0 and time t and returns the store
func run(tst *testing.T, t float64, db mdl.FuncDb, mats ...*inp.MatData) *prop.Store {
	c, err := mdl.NewChain(3, 1, db, mats...)
	if err != nil {
		tst.Errorf("NewChain failed:\n%v", err)
		return nil
	}
	err = c.Compute(&mdl.Qp{Index: 0, T: t, X: []float64{0, 0, 0}})
	if err != nil {
		tst.Errorf("Compute failed:\n%v", err)
		return nil
	}
	return c.Store
}

// get returns the values of a rank-two property at point 0
func get(tst *testing.T, s *prop.Store, name string) (v [3][3]float64) {
	r, err := prop.Get[tensor.R2[ad.Real]](s, name)
	if err != nil {
		tst.Errorf("Get failed:\n%v", err)
		return
	}
	return r.At(0).Values()
}

func Test_green01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("green01")

	// zero displacement gradient
	db, names := gradFuncs([3][3]float64{}, [3][3]float64{})
	s := run(tst, 0, db,
		&inp.MatData{Name: "disp", Type: "function_grad_disp", GradDisp: names},
		&inp.MatData{Name: "strain", Type: "green_strain"},
	)
	if s == nil {
		return
	}
	I := [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	ana.CheckTensor(tst, "F", 1e-15, get(tst, s, "deformation_gradient"), I)
	ana.CheckTensor(tst, "E", 1e-15, get(tst, s, "total_strain"), [3][3]float64{})
	ana.CheckTensor(tst, "mech", 1e-15, get(tst, s, "mechanical_strain"), [3][3]float64{})

	// uniaxial stretch and simple shear
	for _, c := range []struct {
		A    [3][3]float64
		F, E [3][3]float64
	}{
		{A: [3][3]float64{{0.1, 0, 0}}},
		{A: [3][3]float64{{0, 0.2, 0}}},
	} {
		if c.A[0][0] != 0 {
			c.F, c.E = ana.UniaxialStretch(c.A[0][0])
		} else {
			c.F, c.E = ana.SimpleShear(c.A[0][1])
		}
		db, names = gradFuncs(c.A, [3][3]float64{})
		s = run(tst, 0, db,
			&inp.MatData{Name: "disp", Type: "function_grad_disp", GradDisp: names},
			&inp.MatData{Name: "strain", Type: "green_strain"},
		)
		if s == nil {
			return
		}
		ana.CheckTensor(tst, "F", 1e-15, get(tst, s, "deformation_gradient"), c.F)
		ana.CheckTensor(tst, "E", 1e-15, get(tst, s, "total_strain"), c.E)
		ana.CheckTensor(tst, "mech", 1e-15, get(tst, s, "mechanical_strain"), c.E)
	}
}

func Test_green02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("green02")

	// hand-computed: A = [[0.1, 0.2, 0], [0, 0.3, 0], [0, 0, 0]]
	//  F = [[1.1, 0.2, 0], [0, 1.3, 0], [0, 0, 1]]
	//  FᵀF = [[1.21, 0.22, 0], [0.22, 1.73, 0], [0, 0, 1]]
	A := [3][3]float64{{0.1, 0.2, 0}, {0, 0.3, 0}, {0, 0, 0}}
	Ecorrect := [3][3]float64{{0.105, 0.11, 0}, {0.11, 0.365, 0}, {0, 0, 0}}

	// eigenstrain from hydrostatic eigen-stress p = -3
	db, names := gradFuncs(A, [3][3]float64{})
	db["p"] = mdl.Poly{A: -3}
	p := []string{"p", "zero", "zero", "zero", "p", "zero", "zero", "zero", "p"}
	s := run(tst, 0, db,
		&inp.MatData{Name: "disp", Type: "function_grad_disp", GradDisp: names},
		&inp.MatData{Name: "elast", Type: "isotropic_elasticity", Prms: []*dbf.P{{N: "K", V: 100}, {N: "G", V: 50}}},
		&inp.MatData{Name: "eig", Type: "eigenstrain_from_eigenstress", EigenstrainName: "thermal", EigenStress: p},
		&inp.MatData{Name: "strain", Type: "green_strain", EigenstrainNames: []string{"thermal"}},
	)
	if s == nil {
		return
	}
	E := get(tst, s, "total_strain")
	io.Pforan("E = %v\n", E)
	ana.CheckTensor(tst, "E", 1e-14, E, Ecorrect)

	// mechanical = total - eigenstrain, exactly
	eig := get(tst, s, "thermal")
	chk.Float64(tst, "ε*_00", 1e-14, eig[0][0], 0.01)
	var mech [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			mech[i][j] = E[i][j] - eig[i][j]
		}
	}
	ana.CheckTensor(tst, "mech", 0, get(tst, s, "mechanical_strain"), mech)
}

func Test_green03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("green03")

	// two eigenstrains and a global strain
	db, names := gradFuncs([3][3]float64{{0, 0.2, 0}}, [3][3]float64{})
	store := prop.NewStore(1)
	disp, err := mdl.New("function_grad_disp")
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	green, err := mdl.New("green_strain")
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	err = disp.Init(3, &inp.MatData{Name: "disp", Type: "function_grad_disp", GradDisp: names, BaseName: "b"}, db)
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	mat := &inp.MatData{Name: "strain", Type: "green_strain", BaseName: "b", EigenstrainNames: []string{"e1", "e2"}, GlobalStrain: "gs"}
	err = green.Init(3, mat, db)
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	chk.Strings(tst, "needs", green.Needs(), []string{"b_grad_disp_x", "b_grad_disp_y", "b_grad_disp_z", "b_e1", "b_e2", "b_gs"})
	chk.Strings(tst, "supplies", green.Supplies(), []string{"b_total_strain", "b_mechanical_strain", "b_deformation_gradient"})

	// external properties
	e1, _ := prop.Declare[tensor.R2[ad.Real]](store, "b_e1")
	e2, _ := prop.Declare[tensor.R2[ad.Real]](store, "b_e2")
	gs, _ := prop.Declare[tensor.R2[ad.Real]](store, "b_gs")
	e1.Set(0, tensor.FromFloats[ad.Real]([3][3]float64{{0.01, 0, 0}, {0, 0.01, 0}, {0, 0, 0.01}}))
	e2.Set(0, tensor.FromFloats[ad.Real]([3][3]float64{{0, 0.003, 0}, {0.003, 0, 0}, {0, 0, 0}}))
	gs.Set(0, tensor.FromFloats[ad.Real]([3][3]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0.5}}))

	// resolve before declaring the displacement gradient fails
	err = green.Declare(store)
	if err != nil {
		tst.Errorf("Declare failed:\n%v", err)
		return
	}
	err = green.Resolve(store)
	if err == nil {
		tst.Errorf("Resolve should have failed\n")
		return
	}
	io.Pforan("%v\n", err)
	err = disp.Declare(store)
	if err != nil {
		tst.Errorf("Declare failed:\n%v", err)
		return
	}
	err = green.Resolve(store)
	if err != nil {
		tst.Errorf("Resolve failed:\n%v", err)
		return
	}

	// compute
	disp.InitQp(0)
	green.InitQp(0)
	qp := &mdl.Qp{Index: 0, X: []float64{0, 0, 0}}
	if err = disp.ComputeQp(qp); err != nil {
		tst.Errorf("ComputeQp failed:\n%v", err)
		return
	}
	if err = green.ComputeQp(qp); err != nil {
		tst.Errorf("ComputeQp failed:\n%v", err)
		return
	}
	_, E := ana.SimpleShear(0.2)
	E[2][2] += 0.5
	ana.CheckTensor(tst, "total", 1e-15, get(tst, store, "b_total_strain"), E)
	E[0][0] -= 0.01
	E[1][1] -= 0.01
	E[2][2] -= 0.01
	E[0][1] -= 0.003
	E[1][0] -= 0.003
	ana.CheckTensor(tst, "mech", 1e-15, get(tst, store, "b_mechanical_strain"), E)
}

func Test_green04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("green04")

	// A(t) = A0 + t A1
	A0 := [3][3]float64{{0.1, 0.2, 0}, {0, 0.3, 0}, {0, 0, 0}}
	A1 := [3][3]float64{{1, 0, 0}, {0, 0, 2}, {0, 0, 0}}
	db, names := gradFuncs(A0, A1)
	t := 0.5

	// plain
	sr := run(tst, t, db,
		&inp.MatData{Name: "disp", Type: "function_grad_disp", GradDisp: names},
		&inp.MatData{Name: "strain", Type: "green_strain"},
	)
	if sr == nil {
		return
	}

	// differentiable
	sd := run(tst, t, db,
		&inp.MatData{Name: "disp", Type: "ad_function_grad_disp", GradDisp: names},
		&inp.MatData{Name: "strain", Type: "ad_green_strain"},
	)
	if sd == nil {
		return
	}
	r, err := prop.Get[tensor.R2[ad.Dual]](sd, "total_strain")
	if err != nil {
		tst.Errorf("Get failed:\n%v", err)
		return
	}
	E := r.At(0)
	ana.CheckTensor(tst, "values", 1e-14, E.Values(), get(tst, sr, "total_strain"))

	// dE/dt = ½ (Ḟᵀ F + Fᵀ Ḟ) with Ḟ = A1
	var F [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			F[i][j] = A0[i][j] + t*A1[i][j]
		}
		F[i][i] += 1
	}
	var dE [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				dE[i][j] += (A1[k][i]*F[k][j] + F[k][i]*A1[k][j]) / 2.0
			}
		}
	}
	io.Pforan("dE/dt = %v\n", E.Derivs())
	ana.CheckTensor(tst, "dE/dt", 1e-14, E.Derivs(), dE)
}

func Test_small01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("small01")

	A := [3][3]float64{{0.1, 0.2, 0}, {0, 0.3, 0}, {0.4, 0, 0}}
	db, names := gradFuncs(A, [3][3]float64{})
	s := run(tst, 0, db,
		&inp.MatData{Name: "disp", Type: "function_grad_disp", GradDisp: names},
		&inp.MatData{Name: "strain", Type: "small_strain"},
	)
	if s == nil {
		return
	}
	ε := [3][3]float64{{0.1, 0.1, 0.2}, {0.1, 0.3, 0}, {0.2, 0, 0}}
	ana.CheckTensor(tst, "ε", 1e-15, get(tst, s, "total_strain"), ε)
	ana.CheckTensor(tst, "mech", 1e-15, get(tst, s, "mechanical_strain"), ε)
	if s.Has("deformation_gradient") {
		tst.Errorf("small strain must not declare the deformation gradient\n")
	}
}
