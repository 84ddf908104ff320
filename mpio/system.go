/*
 * system.go, part of gomultipole
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
	"strconv"
	"strings"

	multipole "github.com/rmera/gomultipole"
	"github.com/rmera/gomultipole/pbc"
	"github.com/rmera/gomultipole/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

//fields per atom line: position, axis type, z, x, y neighbors, dipole and quadrupole.
const atomFields = 3 + 1 + 3 + 3 + 5

//lineReader returns the non-empty, non-comment lines of a file, one by one.
type lineReader struct {
	s    *bufio.Scanner
	line int
}

func newLineReader(r io.Reader) *lineReader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &lineReader{s: s}
}

//next returns the fields of the next line with content.
func (L *lineReader) next() ([]string, error) {
	for L.s.Scan() {
		L.line++
		l := L.s.Text()
		if i := strings.Index(l, "#"); i >= 0 {
			l = l[:i]
		}
		f := strings.Fields(l)
		if len(f) > 0 {
			return f, nil
		}
	}
	if err := L.s.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

func (L *lineReader) errorf(caller, format string, args ...interface{}) Error {
	return Error{fmt.Sprintf("line %d: %s: ", L.line, WrongFormat) + fmt.Sprintf(format, args...), "", []string{caller}, true}
}

func parseFloats(f []string) ([]float64, error) {
	ret := make([]float64, len(f))
	var err error
	for i, v := range f {
		ret[i], err = strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, err
		}
	}
	return ret, nil
}

//ReadSystem reads a system from r. The first line with content gives the
//number of atoms. It may be followed by a line starting with "box" and the
//nine components of the box vectors. Each atom line contains the position,
//the axis type (numeric or by name), the z, x and y neighbor indexes, the
//local dipole and the XX, XY, XZ, YY, YZ quadrupole components.
//Text after a # is ignored. The box is nil if not given.
func ReadSystem(r io.Reader) (*multipole.System, *pbc.Box, error) {
	L := newLineReader(r)
	f, err := L.next()
	if err != nil {
		return nil, nil, Error{ShortFile, "", []string{"ReadSystem"}, true}
	}
	n, err := strconv.Atoi(f[0])
	if err != nil || n <= 0 || len(f) != 1 {
		return nil, nil, L.errorf("ReadSystem", "expected the number of atoms, got %q", strings.Join(f, " "))
	}
	var box *pbc.Box
	pos := make([]float64, 3*n)
	axes := make([]multipole.Axes, n)
	dips := make([]r3.Vec, n)
	quads := make([]multipole.Quadrupole, n)
	for i := 0; i < n; i++ {
		f, err = L.next()
		if err != nil {
			return nil, nil, Error{fmt.Sprintf("%s: %d atoms expected, %d read", ShortFile, n, i), "", []string{"ReadSystem"}, true}
		}
		if i == 0 && box == nil && strings.ToLower(f[0]) == "box" {
			b, err := parseFloats(f[1:])
			if err != nil {
				return nil, nil, L.errorf("ReadSystem", "box: %s", err)
			}
			if box, err = pbc.FromSlice(b); err != nil {
				return nil, nil, L.errorf("ReadSystem", "box: %s", err)
			}
			i--
			continue
		}
		if len(f) != atomFields {
			return nil, nil, L.errorf("ReadSystem", "%d fields in atom line, %d expected", len(f), atomFields)
		}
		t, err := multipole.ParseAxisType(f[3])
		if err != nil {
			return nil, nil, L.errorf("ReadSystem", "%s", err)
		}
		idx := make([]int, 3)
		for j := range idx {
			if idx[j], err = strconv.Atoi(f[4+j]); err != nil {
				return nil, nil, L.errorf("ReadSystem", "neighbor index: %s", err)
			}
		}
		num, err := parseFloats(append(f[:3:3], f[7:]...))
		if err != nil {
			return nil, nil, L.errorf("ReadSystem", "%s", err)
		}
		copy(pos[3*i:], num[:3])
		axes[i] = multipole.Axes{Z: idx[0], X: idx[1], Y: idx[2], Type: t}
		dips[i] = r3.Vec{X: num[3], Y: num[4], Z: num[5]}
		quads[i] = multipole.Quadrupole{XX: num[6], XY: num[7], XZ: num[8], YY: num[9], YZ: num[10]}
	}
	coords, err := v3.NewMatrix(pos)
	if err != nil {
		return nil, nil, Error{err.Error(), "", []string{"ReadSystem"}, true}
	}
	S, err := multipole.NewSystem(coords, axes, dips, quads)
	if err != nil {
		if e, ok := err.(*multipole.Error); ok {
			e.Decorate("ReadSystem")
		}
		return nil, nil, err
	}
	return S, box, nil
}

//ReadSystemFile reads a system from the file name, which may be compressed.
func ReadSystemFile(name string) (*multipole.System, *pbc.Box, error) {
	f, err := Open(name)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	S, box, err := ReadSystem(f)
	return S, box, withFile(err, name, "ReadSystemFile")
}

func ftoa(x float64) string {
	return strconv.FormatFloat(x, 'g', 10, 64)
}

//WriteSystem writes S, and box if not nil, to w in the format read by ReadSystem.
func WriteSystem(w io.Writer, S *multipole.System, box *pbc.Box) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# x y z axis z x y dx dy dz qxx qxy qxz qyy qyz\n%d\n", S.Len())
	if box != nil {
		s := box.Slice()
		str := make([]string, len(s))
		for i, v := range s {
			str[i] = ftoa(v)
		}
		fmt.Fprintf(bw, "box %s\n", strings.Join(str, " "))
	}
	for i := 0; i < S.Len(); i++ {
		p, a, d, q := S.Coords.Vec(i), S.Axes[i], S.Dipoles[i], S.Quadrupoles[i]
		fmt.Fprintf(bw, "%s %s %s %d %d %d %d %s %s %s %s %s %s %s %s\n",
			ftoa(p.X), ftoa(p.Y), ftoa(p.Z), int(a.Type), a.Z, a.X, a.Y,
			ftoa(d.X), ftoa(d.Y), ftoa(d.Z), ftoa(q.XX), ftoa(q.XY), ftoa(q.XZ), ftoa(q.YY), ftoa(q.YZ))
	}
	return bw.Flush()
}
