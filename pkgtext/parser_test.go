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
	"encoding/json"
	"testing"
)

func TestParseScenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "plain string", text: "A=B\n", want: `{"A":"B"}`},
		{name: "int", text: "A=1\n", want: `{"A":1}`},
		{name: "float", text: "A=1.0\n", want: `{"A":1}`},
		{name: "empty list", text: "A={}\n", want: `{"A":[]}`},
		{name: "nested dict", text: "A={\nA=1\n}\n", want: `{"A":{"A":1}}`},
		{name: "int list", text: "A={1,2,3}\n", want: `{"A":[1,2,3]}`},
		{name: "raw string list with trailing comma", text: "A={\nRawString1,RawString2,\n}\n", want: `{"A":["RawString1","RawString2"]}`},
		{name: "digit-prefixed raw string", text: "A=1x1\n", want: `{"A":"1x1"}`},
		{name: "negative scientific float", text: "A=-9.2029601e-05\n", want: `{"A":-9.2029601e-05}`},
		{name: "uuid-like raw string", text: "A=88c1934b-3e5e-4f63-a599-1670f585aee2\n", want: `{"A":"88c1934b-3e5e-4f63-a599-1670f585aee2"}`},
		{name: "quoted string with url", text: "A={\nB=\"https://example.com/?a=b\"\n}\n", want: `{"A":{"B":"https://example.com/?a=b"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v, err := Parse(tt.text)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.text, err)
			}
			gotBytes, err := json.Marshal(v)
			if err != nil {
				t.Fatalf("json.Marshal() error = %v", err)
			}

			// Compare via decoded values so float formatting differences
			// (e.g. 1.0 vs 1) don't cause a spurious failure.
			var got, want any
			if err := json.Unmarshal(gotBytes, &got); err != nil {
				t.Fatalf("json.Unmarshal(got) error = %v", err)
			}
			if err := json.Unmarshal([]byte(tt.want), &want); err != nil {
				t.Fatalf("json.Unmarshal(want) error = %v", err)
			}
			gotCanon, _ := json.Marshal(got)
			wantCanon, _ := json.Marshal(want)
			if string(gotCanon) != string(wantCanon) {
				t.Errorf("Parse(%q) = %s, want %s", tt.text, gotCanon, wantCanon)
			}
		})
	}
}

func TestParseEmptyInput(t *testing.T) {
	t.Parallel()

	v, err := Parse("")
	if err != nil {
		t.Fatalf("Parse(\"\") error = %v", err)
	}
	if v.Kind != KindDict || v.Dict.Len() != 0 {
		t.Errorf("Parse(\"\") = %+v, want empty dict", v)
	}
}

func TestParseKeyOrderPreserved(t *testing.T) {
	t.Parallel()

	v, err := Parse("Z=1\nA=2\nM=3\n")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := []string{"Z", "A", "M"}
	got := v.Dict.Keys()
	if len(got) != len(want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParseDuplicateKeyOverwrites(t *testing.T) {
	t.Parallel()

	v, err := Parse("A=1\nA=2\n")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	got, ok := v.Dict.Get("A")
	if !ok {
		t.Fatalf("Get(A) = not found")
	}
	if got.Int != 2 {
		t.Errorf("Get(A).Int = %d, want 2", got.Int)
	}
	if n := v.Dict.Len(); n != 1 {
		t.Errorf("Len() = %d, want 1", n)
	}
}

func TestParseBlankLinesAccepted(t *testing.T) {
	t.Parallel()

	if _, err := Parse("\n\nA=1\n\n\n"); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
	}{
		{name: "unterminated quoted string", text: "A=\"unterminated\n"},
		{name: "missing equals", text: "A\n"},
		{name: "unterminated dict", text: "A={\nB=1\n"},
		{name: "trailing garbage", text: "A=1\nextra"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := Parse(tt.text); err == nil {
				t.Fatalf("Parse(%q) error = nil, want error", tt.text)
			}
		})
	}
}
