// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cprakashj01/raccoon/ad"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func checkR2(tst *testing.T, msg string, tol float64, a [3][3]float64, correct [][]float64) {
	chk.Deep2(tst, msg, tol, Mat(a), correct)
}

func Test_rank2a(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rank2a")

	I := Identity[ad.Real]()
	chk.Float64(tst, "tr(I)", 1e-15, I.Trace().Value(), 3)
	checkR2(tst, "dev(I)", 1e-15, I.Deviatoric().Values(), [][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}})

	a := FromFloats[ad.Real]([3][3]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 10},
	})
	chk.Float64(tst, "tr(a)", 1e-15, a.Trace().Value(), 16)
	checkR2(tst, "aᵀ", 1e-15, a.Transpose().Values(), [][]float64{
		{1, 4, 7},
		{2, 5, 8},
		{3, 6, 10},
	})
	p := 16.0 / 3.0
	checkR2(tst, "dev(a)", 1e-14, a.Deviatoric().Values(), [][]float64{
		{1 - p, 2, 3},
		{4, 5 - p, 6},
		{7, 8, 10 - p},
	})
	chk.Float64(tst, "tr(dev(a))", 1e-14, a.Deviatoric().Trace().Value(), 0)
	checkR2(tst, "a+I", 1e-15, a.AddIa(1).Values(), [][]float64{
		{2, 2, 3},
		{4, 6, 6},
		{7, 8, 11},
	})
	checkR2(tst, "a-a", 1e-15, a.Sub(a).Values(), [][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}})
	checkR2(tst, "a+a", 1e-15, a.Add(a).Values(), Mat(a.Scale(2).Values()))
	checkR2(tst, "a*I", 1e-15, a.Mul(I).Values(), Mat(a.Values()))
	checkR2(tst, "a*a", 1e-15, a.Mul(a).Values(), [][]float64{
		{30, 36, 45},
		{66, 81, 102},
		{109, 134, 169},
	})
	chk.Float64(tst, "det(a) gonum", 1e-13, Determinant(a.Values()), -3)
}

func Test_rank2b(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rank2b")

	// a(t) = t * b  =>  da/dt = b
	b := [3][3]float64{
		{1, 2, 0},
		{2, -1, 3},
		{0, 3, 4},
	}
	t := 0.5
	var a R2[ad.Dual]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			a[i][j] = ad.NewDual(t*b[i][j], b[i][j])
		}
	}

	// d(aᵀa)/dt = 2 t bᵀb
	c := a.Transpose().Mul(a)
	btb := FromFloats[ad.Real](b).Transpose().Mul(FromFloats[ad.Real](b)).Values()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			chk.Float64(tst, io.Sf("c%d%d", i, j), 1e-14, c[i][j].Value(), t*t*btb[i][j])
			chk.Float64(tst, io.Sf("dc%d%d", i, j), 1e-14, c[i][j].Deriv(), 2*t*btb[i][j])
		}
	}

	// d(tr a)/dt = tr b
	chk.Float64(tst, "dtr", 1e-15, a.Trace().Deriv(), 4)

	// ScaleBy: d(t a)/dt = a + t b = 2 t b
	s := ad.NewDual(t, 1)
	sa := a.ScaleBy(s)
	chk.Float64(tst, "d(ta)01", 1e-15, sa[0][1].Deriv(), 2*t*b[0][1])
}

func Test_rank2c(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rank2c")

	r0 := V3[ad.Real]{1, 2, 3}
	r1 := V3[ad.Real]{4, 5, 6}
	r2 := V3[ad.Real]{7, 8, 9}
	a := FromRows(r0, r1, r2)
	checkR2(tst, "rows", 1e-15, a.Values(), [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	chk.Array(tst, "flat", 1e-15, Flat(a.Values()), []float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
}

func Test_convert01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("convert01")

	s := [3][3]float64{
		{2, 1, 0},
		{1, 2, 0},
		{0, 0, 5},
	}
	λ, err := Principal(s)
	if err != nil {
		tst.Errorf("Principal failed: %v\n", err)
		return
	}
	io.Pforan("λ = %v\n", λ)
	chk.Array(tst, "λ", 1e-14, λ, []float64{1, 3, 5})

	m, err := Mandel(s)
	if err != nil {
		tst.Errorf("Mandel failed: %v\n", err)
		return
	}
	chk.Array(tst, "mandel", 1e-15, m, []float64{2, 2, 5, math.Sqrt2, 0, 0})
	chk.Float64(tst, "m[3]/√2", 1e-15, m[3]/math.Sqrt2, s[0][1])
	chk.Float64(tst, "Determinant", 1e-13, Determinant(s), 15)

	_, err = Principal([3][3]float64{{1, 2, 0}, {0, 1, 0}, {0, 0, 1}})
	if err == nil {
		tst.Errorf("Principal should have failed for non-symmetric tensor\n")
	}
}
