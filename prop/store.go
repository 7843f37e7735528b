// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package prop implements a store of material properties at integration points
//  Properties are declared by the material computing them and consumed by other
//  materials through read handles obtained once, at setup time.
package prop

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Reader defines a read-only view of a property
type Reader[V any] interface {
	Name() string // property name
	At(qp int) V  // value at integration point qp
}

// Prop holds the values of one property at all integration points
type Prop[V any] struct {
	name     string // property name
	Cur      []V    // [nqp] current values
	Old      []V    // [nqp] values at the end of the previous step; nil if not stateful
	stateful bool   // Old is tracked
}

// Name returns the property name
func (o *Prop[V]) Name() string { return o.name }

// At returns the current value at integration point qp
func (o *Prop[V]) At(qp int) V { return o.Cur[qp] }

// Set sets the current value at integration point qp
func (o *Prop[V]) Set(qp int, v V) { o.Cur[qp] = v }

// Stateful tells whether old values are tracked
func (o *Prop[V]) Stateful() bool { return o.stateful }

// oldView reads old values of a property
type oldView[V any] struct {
	p *Prop[V]
}

func (o oldView[V]) Name() string { return o.p.name + "_old" }
func (o oldView[V]) At(qp int) V  { return o.p.Old[qp] }

// entry is the type-independent part of a property
type entry interface {
	Name() string
	Stateful() bool
	shift()
	value(qp int) interface{}
	oldValue(qp int) interface{}
	typeName() string
}

func (o *Prop[V]) shift() {
	if o.stateful {
		copy(o.Old, o.Cur)
	}
}

func (o *Prop[V]) value(qp int) interface{} { return o.Cur[qp] }

func (o *Prop[V]) oldValue(qp int) interface{} {
	if !o.stateful {
		return nil
	}
	return o.Old[qp]
}

func (o *Prop[V]) typeName() string {
	var v V
	return typeOf(v)
}

// Store holds all properties of a set of integration points
type Store struct {
	nqp   int              // number of integration points
	props map[string]entry // all properties
	order []string         // names in declaration order
}

// NewStore returns a new store for nqp integration points
func NewStore(nqp int) (o *Store) {
	o = new(Store)
	o.nqp = nqp
	o.props = make(map[string]entry)
	return
}

// Nqp returns the number of integration points
func (o *Store) Nqp() int { return o.nqp }

// Has tells whether a property has been declared
func (o *Store) Has(name string) bool {
	_, ok := o.props[name]
	return ok
}

// Names returns the names of all properties in declaration order
func (o *Store) Names() []string {
	return append([]string{}, o.order...)
}

// SortedNames returns the names of all properties in alphabetical order
func (o *Store) SortedNames() (names []string) {
	names = o.Names()
	sort.Strings(names)
	return
}

// Value returns the current value of property name at qp as an empty interface
func (o *Store) Value(name string, qp int) (v interface{}, err error) {
	p, ok := o.props[name]
	if !ok {
		return nil, chk.Err("material property %q has not been declared", name)
	}
	if qp < 0 || qp >= o.nqp {
		return nil, chk.Err("integration point index %d is out of range [0, %d)", qp, o.nqp)
	}
	return p.value(qp), nil
}

// OldValue returns the old value of property name at qp; nil if the property is not stateful
func (o *Store) OldValue(name string, qp int) (v interface{}, err error) {
	p, ok := o.props[name]
	if !ok {
		return nil, chk.Err("material property %q has not been declared", name)
	}
	return p.oldValue(qp), nil
}

// Shift copies current values to old values of all stateful properties
//  Note: to be called after each converged step
func (o *Store) Shift() {
	for _, name := range o.order {
		o.props[name].shift()
	}
}

// Declare declares a new property with values of type V
func Declare[V any](s *Store, name string) (p *Prop[V], err error) {
	if name == "" {
		return nil, chk.Err("cannot declare material property with empty name")
	}
	if e, ok := s.props[name]; ok {
		return nil, chk.Err("material property %q (%s) has been declared already", name, e.typeName())
	}
	p = &Prop[V]{name: name, Cur: make([]V, s.nqp)}
	s.props[name] = p
	s.order = append(s.order, name)
	return
}

// Get returns a read handle to an existing property with values of type V
func Get[V any](s *Store, name string) (r Reader[V], err error) {
	p, err := lookup[V](s, name)
	if err != nil {
		return
	}
	return p, nil
}

// GetOld returns a read handle to the old values of an existing property and marks it stateful
func GetOld[V any](s *Store, name string) (r Reader[V], err error) {
	p, err := lookup[V](s, name)
	if err != nil {
		return
	}
	if !p.stateful {
		p.stateful = true
		p.Old = make([]V, s.nqp)
		copy(p.Old, p.Cur)
	}
	return oldView[V]{p}, nil
}

// lookup finds a property and checks its type
func lookup[V any](s *Store, name string) (p *Prop[V], err error) {
	e, ok := s.props[name]
	if !ok {
		return nil, chk.Err("material property %q has not been declared", name)
	}
	p, ok = e.(*Prop[V])
	if !ok {
		var v V
		return nil, chk.Err("material property %q holds %s values; %s was requested", name, e.typeName(), typeOf(v))
	}
	return
}

// typeOf returns the Go type of v as a string
func typeOf(v interface{}) string {
	return io.Sf("%T", v)
}
