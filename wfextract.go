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

// Package wfextract reconstructs EvoEng asset bundles on disk and decodes
// the engine's Packages.bin/Languages.bin catalogs. It composes the
// cache, packages, inherit, and languages packages behind a small
// top-level API; the cmd/ binaries are thin wrappers around it.
package wfextract

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/evoeng/wfextract/cache"
	"github.com/evoeng/wfextract/inherit"
	"github.com/evoeng/wfextract/languages"
	"github.com/evoeng/wfextract/packages"
	"github.com/evoeng/wfextract/pkgtext"
)

// CacheResult is an alias for cache.Result for convenience.
type CacheResult = cache.Result

// ExtractCache parses tocFile, then materializes every entry's payload
// from cacheFile under outputRoot on fs. It never fails partway through:
// per-entry write failures are collected on the returned Result.
func ExtractCache(cacheFile io.ReadSeeker, tocFile io.Reader, fs afero.Fs, outputRoot string) (*CacheResult, error) {
	entries, err := cache.ParseTOC(tocFile)
	if err != nil {
		return nil, fmt.Errorf("parse toc: %w", err)
	}

	result, err := cache.Materialize(cacheFile, entries, fs, outputRoot)
	if err != nil {
		return nil, fmt.Errorf("materialize cache: %w", err)
	}
	return result, nil
}

// PackageCatalog is an alias for packages.Catalog for convenience.
type PackageCatalog = packages.Catalog

// OpenPackages parses a Packages.bin stream into a catalog.
func OpenPackages(r io.Reader) (*PackageCatalog, error) {
	cat, err := packages.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("open packages catalog: %w", err)
	}
	return cat, nil
}

// ResolvePackage returns fullPath's fully inherited value tree, composed
// over its ancestors per the catalog's declared parent chain.
func ResolvePackage(cat *PackageCatalog, fullPath string) (*pkgtext.Value, error) {
	pkg, ok := cat.Lookup(fullPath)
	if !ok {
		return nil, fmt.Errorf("resolve package %s: %w", fullPath, ErrPackageNotFound)
	}

	v, err := inherit.NewResolver(cat).Resolve(pkg)
	if err != nil {
		return nil, fmt.Errorf("resolve package %s: %w", fullPath, err)
	}
	return v, nil
}

// PackageSkipNote records a non-fatal per-package failure during
// ExtractPackages.
type PackageSkipNote struct {
	Path string
	Err  error
}

// PackagesResult summarizes an ExtractPackages run.
type PackagesResult struct {
	WfpkgWritten int
	JSONWritten  int
	Skipped      []PackageSkipNote
}

// ExtractPackages writes every package in cat under outputRoot on fs: a
// byte-exact "<path>.wfpkg" of the raw payload, and — only when
// inheritance resolution and grammar parsing both succeed — a
// "<path>.json" decoded value tree. A GrammarError or ResolutionError is
// fatal to that package's JSON output only; the .wfpkg is still written.
// Per-package failures are recorded in Result.Skipped and never abort
// the run, mirroring cache.Materialize's recovery policy.
func ExtractPackages(cat *PackageCatalog, fs afero.Fs, outputRoot string) (*PackagesResult, error) {
	res := &PackagesResult{}
	resolver := inherit.NewResolver(cat)

	for _, p := range cat.Paths() {
		pkg, ok := cat.Lookup(p)
		if !ok {
			continue
		}

		localPath := filepath.Join(outputRoot, filepath.FromSlash(strings.TrimPrefix(p, "/")))
		if err := fs.MkdirAll(filepath.Dir(localPath), 0o755); err != nil {
			res.Skipped = append(res.Skipped, PackageSkipNote{Path: p, Err: fmt.Errorf("create parent dirs: %w", err)})
			continue
		}

		if err := afero.WriteFile(fs, localPath+".wfpkg", pkg.Raw, 0o644); err != nil {
			res.Skipped = append(res.Skipped, PackageSkipNote{Path: p, Err: fmt.Errorf("write wfpkg: %w", err)})
			continue
		}
		res.WfpkgWritten++

		v, err := resolver.Resolve(pkg)
		if err != nil {
			res.Skipped = append(res.Skipped, PackageSkipNote{Path: p, Err: err})
			continue
		}

		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			res.Skipped = append(res.Skipped, PackageSkipNote{Path: p, Err: fmt.Errorf("encode json: %w", err)})
			continue
		}
		if err := afero.WriteFile(fs, localPath+".json", data, 0o644); err != nil {
			res.Skipped = append(res.Skipped, PackageSkipNote{Path: p, Err: fmt.Errorf("write json: %w", err)})
			continue
		}
		res.JSONWritten++
	}

	return res, nil
}

// LanguageCatalog is an alias for languages.Catalog for convenience.
type LanguageCatalog = languages.Catalog

// OpenLanguages parses a Languages.bin stream into a catalog.
func OpenLanguages(r io.Reader) (*LanguageCatalog, error) {
	cat, err := languages.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("open languages catalog: %w", err)
	}
	return cat, nil
}
