/*
 * mpio_test.go, part of gomultipole
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
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	multipole "github.com/rmera/gomultipole"
	"github.com/rmera/gomultipole/pbc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

const water = `# a water molecule, the O frame bisects the H atoms
3
box 20 0 0 0 20 0 0 0 20
0.0 0.0 0.0   bisector 1 2 -1   0 0 -0.4   0.1 0 0 -0.3 0
0.757 0.586 0.0   0 0 2 -1   0 0 0.1  0 0 0 0 0   # H1
-0.757 0.586 0.0  z-then-x 0 1 -1   0 0 0.1  0 0 0 0 0
`

func TestReadSystem(Te *testing.T) {
	S, box, err := ReadSystem(strings.NewReader(water))
	require.NoError(Te, err)
	require.NotNil(Te, box)
	assert.Equal(Te, 3, S.Len())
	assert.Equal(Te, 8000.0, box.Volume())
	assert.Equal(Te, multipole.Axes{Z: 1, X: 2, Y: -1, Type: multipole.Bisector}, S.Axes[0])
	assert.Equal(Te, multipole.ZThenX, S.Axes[2].Type)
	assert.Equal(Te, r3.Vec{X: 0.757, Y: 0.586}, S.Coords.Vec(1))
	assert.Equal(Te, r3.Vec{Z: -0.4}, S.Dipoles[0])
	assert.Equal(Te, multipole.Quadrupole{XX: 0.1, YY: -0.3}, S.Quadrupoles[0])
}

func TestReadSystemErrors(Te *testing.T) {
	bad := map[string]string{
		"empty":      "# nothing\n",
		"natoms":     "two\n",
		"short":      "2\n0 0 0 0 1 2 -1 0 0 0 0 0 0 0 0\n",
		"fields":     "1\n0 0 0 0 1 2\n",
		"axis":       "1\n0 0 0 pyramidal 1 2 -1 0 0 0 0 0 0 0 0\n",
		"box":        "1\nbox 1 2 3\n0 0 0 0 1 2 -1 0 0 0 0 0 0 0 0\n",
		"neighbor":   "1\n0 0 0 0 1.5 2 -1 0 0 0 0 0 0 0 0\n",
		"outOfRange": "1\n0 0 0 0 1 2 -1 0 0 0 0 0 0 0 0\n",
	}
	for name, in := range bad {
		_, _, err := ReadSystem(strings.NewReader(in))
		assert.Error(Te, err, name)
	}
	_, _, err := ReadSystem(strings.NewReader(bad["fields"]))
	assert.Contains(Te, err.Error(), "line 2")
	_, _, err = ReadSystem(strings.NewReader(bad["outOfRange"]))
	assert.Contains(Te, err.Error(), "ReadSystem: NewSystem")
}

func TestSystemRoundTrip(Te *testing.T) {
	S, box, err := ReadSystem(strings.NewReader(water))
	require.NoError(Te, err)
	dir := Te.TempDir()
	for _, name := range []string{"w.mpx", "w.mpx.zst", "w.mpx.gz"} {
		p := filepath.Join(dir, name)
		require.NoError(Te, WriteFile(p, func(w io.Writer) error { return WriteSystem(w, S, box) }))
		S2, box2, err := ReadSystemFile(p)
		require.NoError(Te, err, name)
		assert.Equal(Te, box.Slice(), box2.Slice())
		assert.Equal(Te, S.Axes, S2.Axes)
		assert.Equal(Te, S.Dipoles, S2.Dipoles)
		assert.Equal(Te, S.Quadrupoles, S2.Quadrupoles)
		assert.Equal(Te, S.Coords.RawMatrix().Data, S2.Coords.RawMatrix().Data)
	}
	_, _, err = ReadSystemFile(filepath.Join(dir, "missing.mpx"))
	assert.Error(Te, err)
}

func TestVectors(Te *testing.T) {
	vecs, err := ReadVecs(strings.NewReader("1 2 3\n\n# c\n-0.5 0 1e-3\n"), -1)
	require.NoError(Te, err)
	assert.Equal(Te, []r3.Vec{{X: 1, Y: 2, Z: 3}, {X: -0.5, Z: 1e-3}}, vecs)
	_, err = ReadVecs(strings.NewReader("1 2 3\n"), 2)
	assert.Error(Te, err)
	_, err = ReadVecs(strings.NewReader("1 2\n"), 1)
	assert.Error(Te, err)

	tq, err := ReadTorques(strings.NewReader("0 0 1\n0.5 0.25 -2\n"), 2, 0)
	require.NoError(Te, err)
	assert.Equal(Te, r3.Vec{X: 0.5, Y: 0.25, Z: -2}, tq.Vec(1))

	var buf bytes.Buffer
	require.NoError(Te, WriteBuffer(&buf, tq))
	assert.Equal(Te, "0 0 1\n0.5 0.25 -2\n", buf.String())

	f, err := ReadFloats(strings.NewReader("1.5\n2\n"), -1)
	require.NoError(Te, err)
	assert.Equal(Te, []float64{1.5, 2}, f)
	_, err = ReadFloats(strings.NewReader("1.5 3\n"), -1)
	assert.Error(Te, err)
}

func TestWriteLabMoments(Te *testing.T) {
	lab := multipole.NewLabMoments(1)
	lab.Dipoles[0] = r3.Vec{X: 1, Y: 1.0 / 3}
	lab.Quadrupoles[0] = multipole.Quadrupole{XX: 0.5, YZ: -2}
	var buf bytes.Buffer
	require.NoError(Te, WriteLabMoments(&buf, lab))
	assert.Equal(Te, "# dx dy dz qxx qxy qxz qyy qyz\n1 0.3333333333 0 0.5 0 0 0 -2\n", buf.String())
}

func TestCompression(Te *testing.T) {
	assert.Equal(Te, Zstd, CompressionOf("a.mpx.ZST"))
	assert.Equal(Te, Gzip, CompressionOf("a.gz"))
	assert.Equal(Te, None, CompressionOf("a.mpx"))
	assert.Equal(Te, "a.out.zst", WithSuffix("a.out", Zstd))
	assert.Equal(Te, "a.out.gz", WithSuffix("a.out.gz", Zstd))
	assert.Equal(Te, "a.out", WithSuffix("a.out", None))
	box, err := pbc.NewRectangular(1, 1, 1)
	require.NoError(Te, err)
	var buf bytes.Buffer
	S, _, err := ReadSystem(strings.NewReader(water))
	require.NoError(Te, err)
	require.NoError(Te, WriteSystem(&buf, S, box))
	_, box2, err := ReadSystem(&buf)
	require.NoError(Te, err)
	assert.Equal(Te, box.Slice(), box2.Slice())
}
