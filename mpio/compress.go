/*
 * compress.go, part of gomultipole
 *
 * Copyright 2024 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

package mpio

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

//Compression formats, as selected by the file name suffix.
const (
	None = "none"
	Zstd = "zstd"
	Gzip = "gzip"
)

//CompressionOf returns the compression format implied by the suffix of name.
func CompressionOf(name string) string {
	n := strings.ToLower(name)
	switch {
	case strings.HasSuffix(n, ".zst"):
		return Zstd
	case strings.HasSuffix(n, ".gz"):
		return Gzip
	}
	return None
}

//WithSuffix returns name with the suffix for the given compression
//format added, unless it is already there.
func WithSuffix(name, compression string) string {
	if CompressionOf(name) != None {
		return name
	}
	switch compression {
	case Zstd:
		return name + ".zst"
	case Gzip:
		return name + ".gz"
	}
	return name
}

//zstd.Decoder's Close doesn't return an error, so it doesn't
//implement io.ReadCloser.
type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

//fileReader closes the decompressor and then the file.
type fileReader struct {
	io.Reader
	dec io.Closer
	f   *os.File
}

func (r *fileReader) Close() error {
	if r.dec != nil {
		r.dec.Close()
	}
	return r.f.Close()
}

//Open opens the file name for reading, decompressing it if its name
//ends in .zst or .gz.
func Open(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"Open"}, true}
	}
	buf := bufio.NewReader(f)
	var dec io.ReadCloser
	switch CompressionOf(name) {
	case Zstd:
		var d *zstd.Decoder
		d, err = zstd.NewReader(buf)
		if err == nil {
			dec = zstdReadCloser{d}
		}
	case Gzip:
		dec, err = gzip.NewReader(buf)
	default:
		return &fileReader{Reader: buf, f: f}, nil
	}
	if err != nil {
		f.Close()
		return nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"Open"}, true}
	}
	return &fileReader{Reader: dec, dec: dec, f: f}, nil
}

//fileWriter flushes and closes the compressor and then the file.
type fileWriter struct {
	*bufio.Writer
	enc io.WriteCloser
	f   *os.File
}

func (w *fileWriter) Close() error {
	err := w.Writer.Flush()
	if w.enc != nil {
		if err2 := w.enc.Close(); err == nil {
			err = err2
		}
	}
	if err2 := w.f.Close(); err == nil {
		err = err2
	}
	return err
}

//Create creates the file name for writing, compressing it if its name
//ends in .zst or .gz. The file is only complete after Close.
func Create(name string) (io.WriteCloser, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"Create"}, true}
	}
	var enc io.WriteCloser
	switch CompressionOf(name) {
	case Zstd:
		enc, err = zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	case Gzip:
		enc, err = gzip.NewWriterLevel(f, gzip.BestCompression)
	default:
		return &fileWriter{Writer: bufio.NewWriter(f), f: f}, nil
	}
	if err != nil {
		f.Close()
		return nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"Create"}, true}
	}
	return &fileWriter{Writer: bufio.NewWriter(enc), enc: enc, f: f}, nil
}
