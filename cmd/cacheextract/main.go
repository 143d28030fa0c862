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

// Command cacheextract materializes an EvoEng cache/toc pair onto disk.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/evoeng/wfextract"
)

var (
	cachePath  = flag.String("cache", "", "path to the cache blob (required)")
	tocPath    = flag.String("toc", "", "path to the toc index (required)")
	outputRoot = flag.String("out", "", "directory to write extracted files into (required)")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s -cache <file> -toc <file> -out <dir>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Materializes an EvoEng cache/toc pair onto disk.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *cachePath == "" || *tocPath == "" || *outputRoot == "" {
		fmt.Fprintf(os.Stderr, "Error: -cache, -toc, and -out are all required\n")
		flag.Usage()
		os.Exit(1)
	}

	cacheFile, err := os.Open(*cachePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening cache: %v\n", err)
		os.Exit(1)
	}
	defer cacheFile.Close()

	tocFile, err := os.Open(*tocPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening toc: %v\n", err)
		os.Exit(1)
	}
	defer tocFile.Close()

	result, err := wfextract.ExtractCache(cacheFile, tocFile, afero.NewOsFs(), *outputRoot)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error extracting cache: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d files to %s\n", result.Written, *outputRoot)
	for _, skip := range result.Skipped {
		fmt.Fprintf(os.Stderr, "Skipped %s: %v\n", skip.Path, skip.Err)
	}
}
