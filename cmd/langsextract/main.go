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

// Command langsextract decodes a Languages.bin catalog to JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/evoeng/wfextract"
)

var inputFile = flag.String("i", "", "path to Languages.bin (required)")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s -i <Languages.bin>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Decodes a Languages.bin catalog to JSON.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
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

	cat, err := wfextract.OpenLanguages(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing catalog: %v\n", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cat); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}
}
