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

// Package cache parses an EvoEng TOC index and materializes the files it
// describes out of the paired cache blob, decompressing LZ-encoded
// entries via lzvariant.
package cache

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/evoeng/wfextract/binreader"
)

// tocMagic is the 4-byte magic at the start of every TOC file.
var tocMagic = [4]byte{0x4E, 0xC6, 0x67, 0x18}

const tocRecordSize = 96

// filetimeUnixDiff100ns is the number of 100-ns intervals between the
// FILETIME epoch (1601-01-01 UTC) and the Unix epoch (1970-01-01 UTC).
const filetimeUnixDiff100ns = 116444736000000000

// Entry is one materializable member of the archive: a file (Offset != -1)
// or a directory (Offset == -1, never materialized on its own).
type Entry struct {
	Offset         int64
	Timestamp      *time.Time
	CompressedSize int32
	Size           int32
	ScopeIndex     int32
	Parent         int32
	Filename       string
	Path           string // the parent directory's resolved path
	IsDirectory    bool
}

// FullPath returns the absolute POSIX-style path of the entry.
func (e Entry) FullPath() string {
	return path.Join(e.Path, e.Filename)
}

// ParseTOC reads fixed 96-byte records from r until EOF, validating the
// magic and version, and returns the resulting entries with their
// directory-table paths resolved.
func ParseTOC(r io.Reader) ([]Entry, error) {
	magic := make([]byte, 4)
	if _, err := io.ReadFull(r, magic); err != nil {
		return nil, fmt.Errorf("read magic: %w", err)
	}
	if !bytes.Equal(magic, tocMagic[:]) {
		return nil, ErrInvalidMagic
	}

	br := binreader.New(r)
	version, err := br.ReadInt32()
	if err != nil {
		return nil, fmt.Errorf("read version: %w", err)
	}
	if version != 16 && version != 20 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}

	directories := map[int32]string{0: "/"}
	var nextDirIndex int32
	var entries []Entry

	for {
		buf := make([]byte, tocRecordSize)
		if _, err := io.ReadFull(r, buf); err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("%w: truncated record: %v", ErrStructural, err)
		}

		offset := int64(binary.LittleEndian.Uint64(buf[0:8]))
		rawTimestamp := int64(binary.LittleEndian.Uint64(buf[8:16]))
		compressedSize := int32(binary.LittleEndian.Uint32(buf[16:20]))
		size := int32(binary.LittleEndian.Uint32(buf[20:24]))
		scopeIndex := int32(binary.LittleEndian.Uint32(buf[24:28]))
		parent := int32(binary.LittleEndian.Uint32(buf[28:32]))
		filename := string(bytes.TrimRight(buf[32:96], "\x00"))

		var timestamp *time.Time
		if rawTimestamp > 0 {
			t := filetimeToTime(rawTimestamp)
			timestamp = &t
		}

		parentPath, ok := directories[parent]
		if !ok {
			return nil, fmt.Errorf("%w: parent index %d not yet seen", ErrStructural, parent)
		}

		isDir := offset == -1
		if isDir {
			nextDirIndex++
			directories[nextDirIndex] = path.Join(parentPath, filename)
		}

		entries = append(entries, Entry{
			Offset:         offset,
			Timestamp:      timestamp,
			CompressedSize: compressedSize,
			Size:           size,
			ScopeIndex:     scopeIndex,
			Parent:         parent,
			Filename:       filename,
			Path:           parentPath,
			IsDirectory:    isDir,
		})
	}

	return entries, nil
}

// filetimeToTime converts a Windows FILETIME (100-ns ticks since
// 1601-01-01 UTC) to a time.Time.
func filetimeToTime(ft int64) time.Time {
	return time.Unix(0, (ft-filetimeUnixDiff100ns)*100).UTC()
}
