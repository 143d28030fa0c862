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

package cache

import (
	"crypto/md5" //nolint:gosec // collision-avoidance tactic, not a security property
	"encoding/hex"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/evoeng/wfextract/lzvariant"
)

// SkipNote records a non-fatal per-entry failure during materialization.
type SkipNote struct {
	Path string
	Err  error
}

// Result summarizes a Materialize run.
type Result struct {
	Written int
	Skipped []SkipNote
}

// Materialize writes every file entry (directories are structural only)
// under outputRoot on fs, reading payloads from cache at each entry's
// offset. Per-entry failures are recorded in Result.Skipped and never
// abort the run.
func Materialize(cacheFile io.ReadSeeker, entries []Entry, fs afero.Fs, outputRoot string) (*Result, error) {
	res := &Result{}
	for _, e := range entries {
		if e.IsDirectory {
			continue
		}

		data, err := readPayload(cacheFile, e)
		if err != nil {
			res.Skipped = append(res.Skipped, SkipNote{Path: e.FullPath(), Err: err})
			continue
		}

		localPath := filepath.Join(outputRoot, filepath.FromSlash(strings.TrimPrefix(e.FullPath(), "/")))
		finalPath := resolveDestination(fs, localPath, data)

		if err := fs.MkdirAll(filepath.Dir(finalPath), 0o755); err != nil {
			res.Skipped = append(res.Skipped, SkipNote{Path: e.FullPath(), Err: fmt.Errorf("create parent dirs: %w", err)})
			continue
		}
		if err := afero.WriteFile(fs, finalPath, data, 0o644); err != nil {
			res.Skipped = append(res.Skipped, SkipNote{Path: e.FullPath(), Err: fmt.Errorf("write file: %w", err)})
			continue
		}
		if e.Timestamp != nil {
			if err := fs.Chtimes(finalPath, *e.Timestamp, *e.Timestamp); err != nil {
				res.Skipped = append(res.Skipped, SkipNote{Path: e.FullPath(), Err: fmt.Errorf("set mtime: %w", err)})
				continue
			}
		}
		res.Written++
	}
	return res, nil
}

// readPayload seeks cacheFile to e.Offset and returns the raw or
// LZ-decompressed payload bytes.
func readPayload(cacheFile io.ReadSeeker, e Entry) ([]byte, error) {
	if _, err := cacheFile.Seek(e.Offset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek cache to offset %d: %w", e.Offset, err)
	}
	if e.CompressedSize == e.Size {
		buf := make([]byte, e.CompressedSize)
		if _, err := io.ReadFull(cacheFile, buf); err != nil {
			return nil, fmt.Errorf("read raw payload: %w", err)
		}
		return buf, nil
	}
	data, err := lzvariant.Decompress(cacheFile, int(e.Size))
	if err != nil {
		return nil, fmt.Errorf("decompress payload: %w", err)
	}
	return data, nil
}

// resolveDestination applies the collision-avoidance tactic from §4.3: a
// directory collision appends a literal ~, and if that still collides,
// a second ~ followed by the first 5 hex digits of the payload's MD5.
func resolveDestination(fs afero.Fs, path string, data []byte) string {
	final := path
	if info, err := fs.Stat(path); err == nil && info.IsDir() {
		final += "~"
	}
	if _, err := fs.Stat(final); err == nil {
		sum := md5.Sum(data) //nolint:gosec // collision-avoidance tactic, not a security property
		final += "~" + hex.EncodeToString(sum[:])[:5]
	}
	return final
}
