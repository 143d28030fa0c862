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

// Command pkgsextract decodes a Packages.bin catalog, either dumping it
// to a mirrored tree of .wfpkg/.json files or inspecting it from stdout.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/evoeng/wfextract"
)

var (
	inputFile   = flag.String("i", "", "path to Packages.bin (required)")
	outputRoot  = flag.String("out", "", "directory to write <path>.wfpkg/<path>.json into")
	packagePath = flag.String("path", "", "dump only this package's resolved tree to stdout, e.g. /Weapons/Rifle")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s -i <Packages.bin> [-out <dir>] [-path <full-path>]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Decodes a Packages.bin catalog.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -i Packages.bin -out extracted/\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -i Packages.bin -path /Weapons/Rifle\n", os.Args[0])
	}
	flag.Parse()

	if *inputFile == "" {
		fmt.Fprintf(os.Stderr, "Error: input file required (-i)\n")
		flag.Usage()
		os.Exit(1)
	}

	f, err := os.Open(*inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", *inputFile, err)
		os.Exit(1)
	}
	defer f.Close()

	cat, err := wfextract.OpenPackages(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing catalog: %v\n", err)
		os.Exit(1)
	}

	switch {
	case *outputRoot != "":
		extractTree(cat)
	case *packagePath != "":
		dumpPackage(cat, *packagePath)
	default:
		for _, p := range cat.Paths() {
			fmt.Println(p)
		}
	}
}

// extractTree writes every package's <path>.wfpkg, and <path>.json where
// resolution succeeded, under -out.
func extractTree(cat *wfextract.PackageCatalog) {
	result, err := wfextract.ExtractPackages(cat, afero.NewOsFs(), *outputRoot)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error extracting packages: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d .wfpkg and %d .json files to %s\n", result.WfpkgWritten, result.JSONWritten, *outputRoot)
	for _, skip := range result.Skipped {
		fmt.Fprintf(os.Stderr, "Skipped %s: %v\n", skip.Path, skip.Err)
	}
}

// dumpPackage resolves one package's full tree to stdout as JSON.
func dumpPackage(cat *wfextract.PackageCatalog, path string) {
	v, err := wfextract.ResolvePackage(cat, path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving %s: %v\n", path, err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}
}
