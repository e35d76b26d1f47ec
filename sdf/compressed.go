/*
 * compressed.go, part of ligan.
 *
 * Copyright 2024 The ligan Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package sdf

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

//Compression identifies the compression of an SDF stream.
type Compression int

const (
	Plain Compression = iota
	Gzip
	Zstd
	LZ4
)

//CompressionFor deduces the compression from the file extension: .gz (gzip),
//.zst (zstd), .lz4 (lz4). Anything else is plain text.
func CompressionFor(filename string) Compression {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".gz":
		return Gzip
	case ".zst":
		return Zstd
	case ".lz4":
		return LZ4
	default:
		return Plain
	}
}

//zstd.Decoder's Close doesn't return an error, so it can't be an io.ReadCloser itself.
type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

//NewReader returns a reader that decompresses r according to the extension of filename.
//Closing the returned reader does not close r.
func NewReader(r io.Reader, filename string) (io.ReadCloser, error) {
	switch CompressionFor(filename) {
	case Gzip:
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, newError(err, filename, 0, "can't open gzip stream")
		}
		return gz, nil
	case Zstd:
		z, err := zstd.NewReader(r)
		if err != nil {
			return nil, newError(err, filename, 0, "can't open zstd stream")
		}
		return zstdReadCloser{z}, nil
	case LZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return io.NopCloser(r), nil
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

//NewWriter returns a writer that compresses into w according to the extension of filename.
//The returned writer must be closed to flush the compressed stream. Closing it does not close w.
func NewWriter(w io.Writer, filename string) (io.WriteCloser, error) {
	switch CompressionFor(filename) {
	case Gzip:
		return gzip.NewWriter(w), nil
	case Zstd:
		z, err := zstd.NewWriter(w)
		if err != nil {
			return nil, newError(err, filename, 0, "can't open zstd stream")
		}
		return z, nil
	case LZ4:
		return lz4.NewWriter(w), nil
	default:
		return nopWriteCloser{w}, nil
	}
}
