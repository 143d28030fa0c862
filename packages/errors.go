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

package packages

import "errors"

var (
	// ErrStructural indicates a negative struct or chunk count in a
	// Packages.bin stream. A truncated stream does not wrap ErrStructural;
	// it surfaces as the wrapped read error (io.EOF or io.ErrUnexpectedEOF).
	ErrStructural = errors.New("packages: structurally invalid catalog")

	// ErrDuplicatePath indicates two chunks resolved to the same
	// effective full path.
	ErrDuplicatePath = errors.New("packages: duplicate package path")

	// ErrGrammar is returned by Catalog.Tree when a package's raw payload
	// fails to parse.
	ErrGrammar = errors.New("packages: package text does not parse")
)
