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

package inherit

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingParent is wrapped by ResolutionError.
	ErrMissingParent = errors.New("inherit: parent package not found")

	// ErrCycle is wrapped by CycleError.
	ErrCycle = errors.New("inherit: inheritance cycle detected")
)

// ResolutionError reports a package whose declared parent does not exist
// in the catalog.
type ResolutionError struct {
	Package string
	Parent  string
}

func (e ResolutionError) Error() string {
	return fmt.Sprintf("package %q references missing parent %q", e.Package, e.Parent)
}

func (e ResolutionError) Unwrap() error {
	return ErrMissingParent
}

// CycleError reports a package reached twice while walking the
// inheritance chain.
type CycleError struct {
	Package string
}

func (e CycleError) Error() string {
	return fmt.Sprintf("inheritance cycle detected at %q", e.Package)
}

func (e CycleError) Unwrap() error {
	return ErrCycle
}
