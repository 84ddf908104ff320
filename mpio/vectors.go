/*
 * vectors.go, part of gomultipole
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
	"fmt"
	"io"

	multipole "github.com/rmera/gomultipole"
	"github.com/rmera/gomultipole/fixedpoint"
	"gonum.org/v1/gonum/spatial/r3"
)

//ReadVecs reads n 3D vectors, one per line, from r. If n is
//negative, it reads until the end of the input.
func ReadVecs(r io.Reader, n int) ([]r3.Vec, error) {
	L := newLineReader(r)
	var ret []r3.Vec
	for n < 0 || len(ret) < n {
		f, err := L.next()
		if err == io.EOF && n < 0 {
			break
		}
		if err != nil {
			return nil, Error{fmt.Sprintf("%s: %d vectors expected, %d read", ShortFile, n, len(ret)), "", []string{"ReadVecs"}, true}
		}
		if len(f) != 3 {
			return nil, L.errorf("ReadVecs", "%d fields, 3 expected", len(f))
		}
		v, err := parseFloats(f)
		if err != nil {
			return nil, L.errorf("ReadVecs", "%s", err)
		}
		ret = append(ret, r3.Vec{X: v[0], Y: v[1], Z: v[2]})
	}
	return ret, nil
}

//ReadTorques reads the torques on n sites from r, and returns them
//in a fixed-point buffer with the given padding.
func ReadTorques(r io.Reader, n, padded int) (*fixedpoint.Buffer, error) {
	vecs, err := ReadVecs(r, n)
	if err != nil {
		return nil, withFile(err, "", "ReadTorques")
	}
	ret := fixedpoint.NewBuffer(n, padded)
	for i, v := range vecs {
		ret.Set(i, v)
	}
	return ret, nil
}

//ReadTorquesFile reads the torques on n sites from the file name, which may be compressed.
func ReadTorquesFile(name string, n, padded int) (*fixedpoint.Buffer, error) {
	f, err := Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ret, err := ReadTorques(f, n, padded)
	return ret, withFile(err, name, "ReadTorquesFile")
}

//WriteVecs writes the vectors to w, one per line.
func WriteVecs(w io.Writer, vecs []r3.Vec) error {
	bw := bufio.NewWriter(w)
	for _, v := range vecs {
		fmt.Fprintf(bw, "%s %s %s\n", ftoa(v.X), ftoa(v.Y), ftoa(v.Z))
	}
	return bw.Flush()
}

//WriteBuffer writes the decoded content of a fixed-point buffer to w,
//one vector per line.
func WriteBuffer(w io.Writer, b *fixedpoint.Buffer) error {
	vecs := make([]r3.Vec, b.Len())
	for i := range vecs {
		vecs[i] = b.Vec(i)
	}
	return WriteVecs(w, vecs)
}

//WriteLabMoments writes one line per site with the lab dipole
//and the XX, XY, XZ, YY, YZ lab quadrupole components.
func WriteLabMoments(w io.Writer, lab *multipole.LabMoments) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# dx dy dz qxx qxy qxz qyy qyz")
	for i, d := range lab.Dipoles {
		q := lab.Quadrupoles[i]
		fmt.Fprintf(bw, "%s %s %s %s %s %s %s %s\n", ftoa(d.X), ftoa(d.Y), ftoa(d.Z),
			ftoa(q.XX), ftoa(q.XY), ftoa(q.XZ), ftoa(q.YY), ftoa(q.YZ))
	}
	return bw.Flush()
}

//WriteFile creates the file name (compressed according to its suffix)
//and writes to it with write.
func WriteFile(name string, write func(io.Writer) error) error {
	f, err := Create(name)
	if err != nil {
		return err
	}
	if err = write(f); err != nil {
		f.Close()
		return withFile(err, name, "WriteFile")
	}
	return f.Close()
}

//ReadFloats reads n numbers, one per line, from r. If n is
//negative, it reads until the end of the input.
func ReadFloats(r io.Reader, n int) ([]float64, error) {
	L := newLineReader(r)
	var ret []float64
	for n < 0 || len(ret) < n {
		f, err := L.next()
		if err == io.EOF && n < 0 {
			break
		}
		if err != nil {
			return nil, Error{fmt.Sprintf("%s: %d values expected, %d read", ShortFile, n, len(ret)), "", []string{"ReadFloats"}, true}
		}
		v, err := parseFloats(f)
		if err != nil || len(v) != 1 {
			return nil, L.errorf("ReadFloats", "one number per line expected")
		}
		ret = append(ret, v[0])
	}
	return ret, nil
}
