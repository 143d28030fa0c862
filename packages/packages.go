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

// Package packages parses Packages.bin: a 29-byte hash, a struct table, a
// nested chunk stream of raw package payloads, and one descriptor per
// chunk naming that package's header path, name, and parent.
package packages

import (
	"bytes"
	"fmt"
	"io"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/evoeng/wfextract/binreader"
	"github.com/evoeng/wfextract/pkgtext"
)

const (
	hashSize        = 29
	treeCacheSize   = 256
	headerSpareSize = 5
	parentSpareSize = 4
)

// TopStruct is one entry of the struct table preceding the chunk stream;
// its fields are opaque to this reader beyond name and Unk.
type TopStruct struct {
	Name string
	Unk  int32
}

// Package is one named text blob within a catalog, optionally inheriting
// from another package in the same catalog.
type Package struct {
	HeaderPath string
	Name       string
	ParentPath string
	Raw        []byte
}

// FullPath is the effective full path used to index the package.
func (p *Package) FullPath() string {
	return p.HeaderPath + "/" + p.Name
}

// ParentFullPath is the effective full path of the declared parent, or
// "" if the package has none.
func (p *Package) ParentFullPath() string {
	if p.ParentPath == "" {
		return ""
	}
	return p.HeaderPath + "/" + p.ParentPath
}

// Catalog indexes every Package parsed from a Packages.bin stream, and
// caches decoded value trees behind a bounded LRU.
type Catalog struct {
	Hash    []byte
	Structs []TopStruct

	packages map[string]*Package
	order    []string
	trees    *lru.Cache[string, *pkgtext.Value]
}

// Parse reads a Packages.bin stream in full and builds a Catalog.
func Parse(r io.Reader) (*Catalog, error) {
	br := binreader.New(r)

	hash, err := br.Read(hashSize)
	if err != nil {
		return nil, fmt.Errorf("read hash: %w", err)
	}

	numStructs, err := br.ReadInt32()
	if err != nil {
		return nil, fmt.Errorf("read struct count: %w", err)
	}
	if numStructs < 0 {
		return nil, fmt.Errorf("%w: negative struct count %d", ErrStructural, numStructs)
	}
	structs := make([]TopStruct, 0, numStructs)
	for i := int32(0); i < numStructs; i++ {
		name, err := br.ReadLengthPrefixedString()
		if err != nil {
			return nil, fmt.Errorf("read struct %d name: %w", i, err)
		}
		unk, err := br.ReadInt32()
		if err != nil {
			return nil, fmt.Errorf("read struct %d unk: %w", i, err)
		}
		structs = append(structs, TopStruct{Name: name, Unk: unk})
	}

	chunkBytes, err := br.ReadLengthPrefixedBytes()
	if err != nil {
		return nil, fmt.Errorf("read chunk block: %w", err)
	}
	rawChunks, err := readChunkStream(chunkBytes)
	if err != nil {
		return nil, err
	}

	packages := make(map[string]*Package, len(rawChunks))
	order := make([]string, 0, len(rawChunks))
	for i, raw := range rawChunks {
		headerPath, err := br.ReadLengthPrefixedString()
		if err != nil {
			return nil, fmt.Errorf("read chunk %d header path: %w", i, err)
		}
		name, err := br.ReadLengthPrefixedString()
		if err != nil {
			return nil, fmt.Errorf("read chunk %d name: %w", i, err)
		}
		if _, err := br.Read(headerSpareSize); err != nil {
			return nil, fmt.Errorf("read chunk %d spare bytes: %w", i, err)
		}
		parentPath, err := br.ReadLengthPrefixedString()
		if err != nil {
			return nil, fmt.Errorf("read chunk %d parent path: %w", i, err)
		}
		if _, err := br.Read(parentSpareSize); err != nil {
			return nil, fmt.Errorf("read chunk %d trailing bytes: %w", i, err)
		}

		pkg := &Package{HeaderPath: headerPath, Name: name, ParentPath: parentPath, Raw: raw}
		key := pkg.FullPath()
		if _, exists := packages[key]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePath, key)
		}
		packages[key] = pkg
		order = append(order, key)
	}

	trees, err := lru.New[string, *pkgtext.Value](treeCacheSize)
	if err != nil {
		return nil, fmt.Errorf("create tree cache: %w", err)
	}

	return &Catalog{
		Hash:     hash,
		Structs:  structs,
		packages: packages,
		order:    order,
		trees:    trees,
	}, nil
}

// readChunkStream parses the nested chunk-size block: an int32 count
// followed by that many NUL-terminated C-strings.
func readChunkStream(block []byte) ([][]byte, error) {
	br := binreader.New(bytes.NewReader(block))
	numChunks, err := br.ReadInt32()
	if err != nil {
		return nil, fmt.Errorf("read chunk count: %w", err)
	}
	if numChunks < 0 {
		return nil, fmt.Errorf("%w: negative chunk count %d", ErrStructural, numChunks)
	}
	chunks := make([][]byte, 0, numChunks)
	for i := int32(0); i < numChunks; i++ {
		s, err := br.ReadCString()
		if err != nil {
			return nil, fmt.Errorf("read chunk %d payload: %w", i, err)
		}
		chunks = append(chunks, []byte(s))
	}
	return chunks, nil
}

// Lookup returns the package at fullPath, if present.
func (c *Catalog) Lookup(fullPath string) (*Package, bool) {
	p, ok := c.packages[fullPath]
	return p, ok
}

// Paths returns every indexed package's full path, in catalog order.
func (c *Catalog) Paths() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Tree decodes pkg's raw payload into a value tree, caching the result.
func (c *Catalog) Tree(pkg *Package) (*pkgtext.Value, error) {
	key := pkg.FullPath()
	if v, ok := c.trees.Get(key); ok {
		return v, nil
	}
	v, err := pkgtext.Parse(string(pkg.Raw))
	if err != nil {
		return nil, fmt.Errorf("%w: package %s: %v", ErrGrammar, key, err)
	}
	c.trees.Add(key, v)
	return v, nil
}
