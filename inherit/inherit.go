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

// Package inherit resolves a package's full decoded content by composing
// its own dict over its parent's, recursively, with cycle detection.
package inherit

import (
	"fmt"

	"github.com/evoeng/wfextract/packages"
	"github.com/evoeng/wfextract/pkgtext"
)

// Resolver walks the parent chain of packages drawn from a single catalog.
type Resolver struct {
	catalog *packages.Catalog
}

// NewResolver returns a Resolver over catalog.
func NewResolver(catalog *packages.Catalog) *Resolver {
	return &Resolver{catalog: catalog}
}

// Resolve returns pkg's full decoded content: its own dict overlaid on
// its resolved parent's, or just its own dict if it has no parent.
func (r *Resolver) Resolve(pkg *packages.Package) (*pkgtext.Value, error) {
	return r.resolve(pkg, make(map[string]bool))
}

func (r *Resolver) resolve(pkg *packages.Package, visiting map[string]bool) (*pkgtext.Value, error) {
	key := pkg.FullPath()
	if visiting[key] {
		return nil, CycleError{Package: key}
	}

	own, err := r.catalog.Tree(pkg)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", key, err)
	}
	if pkg.ParentPath == "" {
		return own, nil
	}

	parentKey := pkg.ParentFullPath()
	parentPkg, ok := r.catalog.Lookup(parentKey)
	if !ok {
		return nil, ResolutionError{Package: key, Parent: parentKey}
	}

	visiting[key] = true
	parentTree, err := r.resolve(parentPkg, visiting)
	delete(visiting, key)
	if err != nil {
		return nil, err
	}

	return overlay(parentTree, own), nil
}

// overlay composes child over parent: top-level keys are overwritten,
// nested dicts are replaced wholesale rather than merged.
func overlay(parent, own *pkgtext.Value) *pkgtext.Value {
	if parent == nil || parent.Kind != pkgtext.KindDict || own.Kind != pkgtext.KindDict {
		return own
	}

	merged := pkgtext.NewDict()
	for _, k := range parent.Dict.Keys() {
		v, _ := parent.Dict.Get(k)
		merged.Set(k, v)
	}
	for _, k := range own.Dict.Keys() {
		v, _ := own.Dict.Get(k)
		merged.Set(k, v)
	}
	return &pkgtext.Value{Kind: pkgtext.KindDict, Dict: merged}
}
