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

package cache

import "errors"

var (
	// ErrInvalidMagic indicates the TOC does not start with the expected
	// magic bytes.
	ErrInvalidMagic = errors.New("cache: invalid TOC magic")

	// ErrUnsupportedVersion indicates a TOC version other than 16 or 20.
	ErrUnsupportedVersion = errors.New("cache: unsupported TOC version")

	// ErrStructural indicates a truncated record or a reference to a
	// directory index that has not been seen yet.
	ErrStructural = errors.New("cache: structurally invalid TOC")
)
