// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cprakashj01/raccoon/mdl"
)

// Order returns the evaluation order of materials such that suppliers of properties come before
// their consumers. The input order is kept whenever dependencies allow.
//  Input:
//   names -- names of material blocks (for messages)
//   mats  -- materials
//  Output:
//   idx -- indices of materials in evaluation order
func Order(names []string, mats []mdl.Material) (idx []int, err error) {

	// suppliers
	supplier := make(map[string]int)
	for i, m := range mats {
		for _, p := range m.Supplies() {
			if j, ok := supplier[p]; ok {
				return nil, chk.Err("property %q is supplied by materials %q and %q", p, names[j], names[i])
			}
			supplier[p] = i
		}
	}

	// dependencies
	deps := make([][]int, len(mats))
	for i, m := range mats {
		for _, p := range m.Needs() {
			j, ok := supplier[p]
			if !ok {
				return nil, chk.Err("material %q needs property %q which is not supplied by any material", names[i], p)
			}
			if j == i {
				return nil, chk.Err("material %q needs property %q supplied by itself", names[i], p)
			}
			deps[i] = append(deps[i], j)
		}
	}

	// depth-first search with temporary (on stack) and permanent (done) marks
	permanent := make([]bool, len(mats))
	temporary := make([]bool, len(mats))
	var visit func(i int) error
	visit = func(i int) error {
		if permanent[i] {
			return nil
		}
		if temporary[i] {
			return chk.Err("cyclic dependency involving material %q", names[i])
		}
		temporary[i] = true
		for _, j := range deps[i] {
			if err := visit(j); err != nil {
				return err
			}
		}
		temporary[i] = false
		permanent[i] = true
		idx = append(idx, i)
		return nil
	}
	for i := range mats {
		if err = visit(i); err != nil {
			return nil, err
		}
	}
	return
}
