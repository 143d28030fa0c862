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

package languages

import "errors"

// ErrStructural indicates a negative count where Languages.bin requires a
// non-negative one. A truncated stream does not wrap ErrStructural; it
// surfaces as the wrapped read error (io.EOF or io.ErrUnexpectedEOF).
var ErrStructural = errors.New("languages: structurally invalid catalog")
