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

// Package binreader provides the primitive reads shared by every EvoEng
// binary format: little-endian/big-endian integers, length-prefixed
// strings and NUL-terminated C-strings, consumed sequentially from a
// cursor over an io.Reader.
package binreader

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Reader is a sequential cursor over a byte stream. All reads are fatal
// on underrun: a short read returns a wrapped io.ErrUnexpectedEOF, or a
// wrapped io.EOF when no bytes at all remain.
type Reader struct {
	r io.Reader
}

// New wraps r in a Reader.
func New(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Read returns the next n bytes, or an error if fewer than n remain.
func (r *Reader) Read(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r.r, buf); err != nil {
		return nil, fmt.Errorf("read %d bytes: %w", n, err)
	}
	return buf, nil
}

// ReadInt32 reads a little-endian signed 32-bit integer.
func (r *Reader) ReadInt32() (int32, error) {
	buf, err := r.Read(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(buf)), nil
}

// ReadInt64 reads a little-endian signed 64-bit integer.
func (r *Reader) ReadInt64() (int64, error) {
	buf, err := r.Read(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(buf)), nil
}

// ReadUint16BE reads a big-endian uint16, as used by the LZ chunk header.
func (r *Reader) ReadUint16BE() (uint16, error) {
	buf, err := r.Read(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(buf), nil
}

// ReadUint16LE reads a little-endian uint16.
func (r *Reader) ReadUint16LE() (uint16, error) {
	buf, err := r.Read(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(buf), nil
}

// ReadLengthPrefixedString reads an int32 length L followed by L bytes,
// decoded as UTF-8.
func (r *Reader) ReadLengthPrefixedString() (string, error) {
	buf, err := r.ReadLengthPrefixedBytes()
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// ReadLengthPrefixedBytes reads an int32 length L followed by L raw bytes,
// without interpreting them as text. Used for opaque blobs such as the
// Languages.bin encoded-strings payload.
func (r *Reader) ReadLengthPrefixedBytes() ([]byte, error) {
	n, err := r.ReadInt32()
	if err != nil {
		return nil, fmt.Errorf("read length prefix: %w", err)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: negative length prefix %d", ErrStructural, n)
	}
	buf, err := r.Read(int(n))
	if err != nil {
		return nil, fmt.Errorf("read %d-byte body: %w", n, err)
	}
	return buf, nil
}

// ReadCString reads bytes up to and including a NUL, and returns them with
// the NUL stripped.
func (r *Reader) ReadCString() (string, error) {
	var buf []byte
	one := make([]byte, 1)
	for {
		if _, err := io.ReadFull(r.r, one); err != nil {
			return "", fmt.Errorf("read cstring: %w", err)
		}
		if one[0] == 0 {
			return string(buf), nil
		}
		buf = append(buf, one[0])
	}
}
