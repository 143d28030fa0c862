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

package pkgtext

import (
	"errors"
	"fmt"
)

// ErrGrammar is the sentinel all GrammarError values wrap.
var ErrGrammar = errors.New("pkgtext: package text does not parse")

// GrammarError reports where in the input text parsing failed.
type GrammarError struct {
	Offset  int
	Message string
}

func (e GrammarError) Error() string {
	return fmt.Sprintf("pkgtext: %s (offset %d)", e.Message, e.Offset)
}

func (e GrammarError) Unwrap() error {
	return ErrGrammar
}
