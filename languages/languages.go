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

// Package languages parses Languages.bin: a header, a flat list of
// declared language names, and a set of string-id groups whose payload
// blob is carried opaquely (it is encrypted/encoded and out of scope to
// decode).
package languages

import (
	"fmt"
	"io"

	"golang.org/x/text/language"

	"github.com/evoeng/wfextract/binreader"
)

const (
	hashSize        = 16
	headerSpareSize = 5
	idSpareSize     = 8
)

// IDString is one string-id entry within a Group: a length-prefixed id
// paired with 8 opaque trailing bytes.
type IDString struct {
	ID string
}

// Group is one record of Languages.bin's group table. Blob carries the
// group's encrypted/encoded string payload verbatim; this reader never
// attempts to decrypt or interpret it.
type Group struct {
	Name    string
	Unk     int32
	Blob    []byte
	Strings []IDString
}

// Language is one declared language name, best-effort-parsed into a
// canonical BCP-47 tag for display. Tag is the zero Tag when Name did
// not parse; this is never fatal.
type Language struct {
	Name string
	Tag  language.Tag
}

// Catalog holds the fully decoded contents of a Languages.bin stream.
type Catalog struct {
	Hash          []byte
	Unk           int32
	FormatVersion int32

	Languages []Language
	Groups    []Group
}

// Parse reads a Languages.bin stream in full and builds a Catalog.
func Parse(r io.Reader) (*Catalog, error) {
	br := binreader.New(r)

	hash, err := br.Read(hashSize)
	if err != nil {
		return nil, fmt.Errorf("read hash: %w", err)
	}
	unk, err := br.ReadInt32()
	if err != nil {
		return nil, fmt.Errorf("read unk: %w", err)
	}
	formatVersion, err := br.ReadInt32()
	if err != nil {
		return nil, fmt.Errorf("read format version: %w", err)
	}
	if _, err := br.Read(headerSpareSize); err != nil {
		return nil, fmt.Errorf("read header spare bytes: %w", err)
	}

	numLanguages, err := br.ReadInt32()
	if err != nil {
		return nil, fmt.Errorf("read language count: %w", err)
	}
	if numLanguages < 0 {
		return nil, fmt.Errorf("%w: negative language count %d", ErrStructural, numLanguages)
	}
	langs := make([]Language, 0, numLanguages)
	for i := int32(0); i < numLanguages; i++ {
		name, err := br.ReadLengthPrefixedString()
		if err != nil {
			return nil, fmt.Errorf("read language %d name: %w", i, err)
		}
		langs = append(langs, Language{Name: name, Tag: parseLanguageTag(name)})
	}

	numGroups, err := br.ReadInt32()
	if err != nil {
		return nil, fmt.Errorf("read group count: %w", err)
	}
	if numGroups < 0 {
		return nil, fmt.Errorf("%w: negative group count %d", ErrStructural, numGroups)
	}
	groups := make([]Group, 0, numGroups)
	for i := int32(0); i < numGroups; i++ {
		g, err := parseGroup(br, i)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}

	return &Catalog{
		Hash:          hash,
		Unk:           unk,
		FormatVersion: formatVersion,
		Languages:     langs,
		Groups:        groups,
	}, nil
}

func parseGroup(br *binreader.Reader, i int32) (Group, error) {
	name, err := br.ReadLengthPrefixedString()
	if err != nil {
		return Group{}, fmt.Errorf("read group %d name: %w", i, err)
	}
	unk, err := br.ReadInt32()
	if err != nil {
		return Group{}, fmt.Errorf("read group %d unk: %w", i, err)
	}
	stringCount, err := br.ReadInt32()
	if err != nil {
		return Group{}, fmt.Errorf("read group %d string count: %w", i, err)
	}
	if stringCount < 0 {
		return Group{}, fmt.Errorf("%w: negative string count %d in group %d", ErrStructural, stringCount, i)
	}
	blob, err := br.ReadLengthPrefixedBytes()
	if err != nil {
		return Group{}, fmt.Errorf("read group %d blob: %w", i, err)
	}

	strs := make([]IDString, 0, stringCount)
	for j := int32(0); j < stringCount; j++ {
		id, err := br.ReadLengthPrefixedString()
		if err != nil {
			return Group{}, fmt.Errorf("read group %d string %d id: %w", i, j, err)
		}
		if _, err := br.Read(idSpareSize); err != nil {
			return Group{}, fmt.Errorf("read group %d string %d spare bytes: %w", i, j, err)
		}
		strs = append(strs, IDString{ID: id})
	}

	return Group{Name: name, Unk: unk, Blob: blob, Strings: strs}, nil
}

// parseLanguageTag best-effort-parses name as a BCP-47 tag. Failure is
// never fatal: the zero Tag is returned and the raw Name is retained.
func parseLanguageTag(name string) language.Tag {
	tag, err := language.Parse(name)
	if err != nil {
		return language.Und
	}
	return tag
}
