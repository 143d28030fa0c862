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

package lzvariant

import (
	"bytes"
	"strings"
	"testing"
)

func chunkHeader(compLen, decompLen int) []byte {
	return []byte{
		byte(compLen >> 8), byte(compLen),
		byte(decompLen >> 8), byte(decompLen),
	}
}

func TestDecompressRawChunk(t *testing.T) {
	t.Parallel()

	stream := append(chunkHeader(5, 5), []byte("Hello")...)
	got, err := Decompress(bytes.NewReader(stream), 5)
	if err != nil {
		t.Fatalf("Decompress() error = %v", err)
	}
	if string(got) != "Hello" {
		t.Errorf("Decompress() = %q, want %q", got, "Hello")
	}
}

func TestDecompressLiteralRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		n    int
	}{
		{name: "single byte run", n: 1},
		{name: "maximal literal run", n: 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			literal := strings.Repeat("x", tt.n)
			body := append([]byte{byte(tt.n - 1)}, literal...)
			stream := append(chunkHeader(len(body), tt.n), body...)

			got, err := Decompress(bytes.NewReader(stream), tt.n)
			if err != nil {
				t.Fatalf("Decompress() error = %v", err)
			}
			if string(got) != literal {
				t.Errorf("Decompress() = %q, want %q", got, literal)
			}
		})
	}
}

func TestDecompressBackReferenceShort(t *testing.T) {
	t.Parallel()

	// Literal run "AB", then a back-reference with copylen_raw=2 (< 7)
	// copying 4 bytes starting at the run's first byte: the copy overlaps
	// its own tail and must propagate byte-by-byte.
	body := []byte{0x01, 'A', 'B', 0x40, 0x01}
	stream := append(chunkHeader(len(body), 6), body...)

	got, err := Decompress(bytes.NewReader(stream), 6)
	if err != nil {
		t.Fatalf("Decompress() error = %v", err)
	}
	if want := "ABABAB"; string(got) != want {
		t.Errorf("Decompress() = %q, want %q", got, want)
	}
}

func TestDecompressBackReferenceExtended(t *testing.T) {
	t.Parallel()

	// Literal run "XYZ", then a back-reference with copylen_raw == 7 and
	// an extension byte of 2 (copylen = 7+2+2 = 11), lookback 2 (source
	// index 0): the period-3 pattern must repeat across the whole copy.
	body := []byte{0x02, 'X', 'Y', 'Z', 0xE0, 0x02, 0x02}
	const decompLen = 14
	stream := append(chunkHeader(len(body), decompLen), body...)

	got, err := Decompress(bytes.NewReader(stream), decompLen)
	if err != nil {
		t.Fatalf("Decompress() error = %v", err)
	}
	if len(got) != decompLen {
		t.Fatalf("Decompress() produced %d bytes, want %d", len(got), decompLen)
	}
	if string(got[:3]) != "XYZ" {
		t.Fatalf("Decompress() prefix = %q, want %q", got[:3], "XYZ")
	}
	for i := 3; i < decompLen; i++ {
		if got[i] != got[i-3] {
			t.Errorf("Decompress()[%d] = %q, want period-3 repeat %q", i, got[i], got[i-3])
		}
	}
}

func TestDecompressOverlappingRunExpandsSingleByte(t *testing.T) {
	t.Parallel()

	// Literal run "A", then a back-reference with lookback 0 and
	// copylen_raw=3 (copylen=5): lookback < copylen, so the byte must
	// propagate to fill the whole run with 'A'.
	body := []byte{0x00, 'A', 0x60, 0x00}
	const decompLen = 6
	stream := append(chunkHeader(len(body), decompLen), body...)

	got, err := Decompress(bytes.NewReader(stream), decompLen)
	if err != nil {
		t.Fatalf("Decompress() error = %v", err)
	}
	if want := strings.Repeat("A", decompLen); string(got) != want {
		t.Errorf("Decompress() = %q, want %q", got, want)
	}
}

func TestDecompressErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		stream []byte
		size   int
	}{
		{
			name:   "truncated header",
			stream: []byte{0x00, 0x01},
			size:   1,
		},
		{
			name:   "lookback before start of output",
			stream: append(chunkHeader(2, 3), []byte{0x20, 0x00}...),
			size:   3,
		},
		{
			name:   "literal run past end of chunk",
			stream: append(chunkHeader(1, 2), []byte{0x00}...),
			size:   2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := Decompress(bytes.NewReader(tt.stream), tt.size); err == nil {
				t.Fatalf("Decompress() error = nil, want error")
			}
		})
	}
}
