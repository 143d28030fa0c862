// Copyright (c) 2025 Niema Moshiri and The Zaparoo Project.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of wfextract.
//
// wfextract is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// wfextract is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with wfextract.  If not, see <https://www.gnu.org/licenses/>.

// Package pkgtext implements the engine's key/value text grammar: a
// hand-written lexer-free recursive-descent parser over the raw package
// payload, producing an order-preserving value tree.
package pkgtext

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Kind identifies which alternative of the Value sum type is populated.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindString
	KindList
	KindDict
)

// Value is the decoded package text sum type: exactly one of Int, Float,
// Str, List, or Dict is meaningful, selected by Kind.
type Value struct {
	Kind  Kind
	Int   int64
	Float float64
	Str   string
	List  []*Value
	Dict  *Dict
}

// MarshalJSON renders the Value as its JSON equivalent: dicts keep
// insertion order, lists keep element order.
func (v *Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindInt:
		return json.Marshal(v.Int)
	case KindFloat:
		return json.Marshal(v.Float)
	case KindString:
		return json.Marshal(v.Str)
	case KindList:
		if v.List == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.List)
	case KindDict:
		return v.Dict.MarshalJSON()
	default:
		return nil, fmt.Errorf("pkgtext: unknown value kind %d", v.Kind)
	}
}

// Dict is an ordered string-keyed map: iteration and JSON encoding follow
// first-insertion order, per the grammar's key-order invariant.
type Dict struct {
	keys   []string
	values map[string]*Value
}

// NewDict returns an empty Dict.
func NewDict() *Dict {
	return &Dict{values: make(map[string]*Value)}
}

// Set inserts or overwrites the value for key, preserving the position of
// the first insertion.
func (d *Dict) Set(key string, v *Value) {
	if _, exists := d.values[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.values[key] = v
}

// Get returns the value for key, and whether it was present.
func (d *Dict) Get(key string) (*Value, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Keys returns the dict's keys in first-insertion order.
func (d *Dict) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Len returns the number of keys in the dict.
func (d *Dict) Len() int {
	return len(d.keys)
}

// MarshalJSON renders the dict as a JSON object preserving key order,
// which encoding/json's map handling cannot do on its own.
func (d *Dict) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(d.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
