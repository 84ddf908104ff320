/*
 * frame_test.go, part of gomultipole
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

package multipole

import (
	"math"
	"testing"

	"github.com/rmera/gomultipole/pbc"
	"github.com/rmera/gomultipole/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestIdentityFrames(Te *testing.T) {
	c := site0()
	id := IdentityFrame()
	for _, a := range []Axes{NoAxes(), {Z: -1, X: 2, Y: 3, Type: ZThenX}, {Z: 1, X: 2, Y: 3, Type: 5}, {Z: 1, X: 2, Y: 3, Type: -3}} {
		assert.Equal(Te, id, BuildFrame(c, 0, a, nil), a.String())
	}
}

func TestFramesAreOrthonormal(Te *testing.T) {
	for i, g := range irregular {
		c := v3.FromVecs(g)
		for _, t := range []AxisType{ZThenX, Bisector, ZBisect, ThreeFold, ZOnly} {
			f := BuildFrame(c, 0, axesFor(t), nil)
			assert.Less(Te, f.Orthonormality(), tol, "geometry %d %s", i, t)
			assert.InDelta(Te, 1.0, f.Determinant(), tol, "geometry %d %s", i, t)
			assertVec(Te, r3.Cross(f.Z, f.X), f.Y, tol)
		}
	}
}

func TestZThenXFrame(Te *testing.T) {
	c := v3.FromVecs(irregular[0])
	f := BuildFrame(c, 0, axesFor(ZThenX), nil)
	//Z points to the z neighbor, X lies in the plane of the z and x neighbors
	assertVec(Te, unit(r3.Sub(irregular[0][1], irregular[0][0])), f.Z, tol)
	assert.InDelta(Te, 0, r3.Dot(f.Y, r3.Sub(irregular[0][2], irregular[0][0])), tol)
	assert.Greater(Te, r3.Dot(f.X, r3.Sub(irregular[0][2], irregular[0][0])), 0.0)
}

func TestBisectorFrame(Te *testing.T) {
	f := BuildFrame(site0(), 0, axesFor(Bisector), nil)
	s := 1 / math.Sqrt2
	assertVec(Te, vec(s, 0, s), f.Z, tol)
	assertVec(Te, vec(s, 0, -s), f.X, tol)
	assertVec(Te, vec(0, 1, 0), f.Y, tol)
	assert.False(Te, f.Reverse)
}

func TestZBisectFrame(Te *testing.T) {
	f := BuildFrame(site0(), 0, axesFor(ZBisect), nil)
	s := 1 / math.Sqrt2
	assertVec(Te, vec(0, 0, 1), f.Z, tol)
	assertVec(Te, vec(s, s, 0), f.X, tol)
	assertVec(Te, vec(-s, s, 0), f.Y, tol)
}

func TestThreeFoldFrame(Te *testing.T) {
	f := BuildFrame(site0(), 0, axesFor(ThreeFold), nil)
	s := 1 / math.Sqrt(3)
	assertVec(Te, vec(s, s, s), f.Z, tol)
	//x neighbor direction, orthogonalized
	assertVec(Te, unit(vec(2, -1, -1)), f.X, tol)
}

func TestZOnlyFrame(Te *testing.T) {
	c := v3.FromVecs([]r3.Vec{vec(0, 0, 0), vec(0, 0, 2), vec(5, 5, 5)})
	f := BuildFrame(c, 0, Axes{Z: 1, X: 2, Y: -1, Type: ZOnly}, nil)
	assert.Equal(Te, IdentityFrame(), f)
	//z along x: the reference direction switches to y
	c = v3.FromVecs([]r3.Vec{vec(0, 0, 0), vec(2, 0, 0)})
	f = BuildFrame(c, 0, Axes{Z: 1, X: -1, Y: -1, Type: ZOnly}, nil)
	assertVec(Te, vec(1, 0, 0), f.Z, tol)
	assertVec(Te, vec(0, 1, 0), f.X, tol)
	assertVec(Te, vec(0, 0, 1), f.Y, tol)
}

func TestDegradedFrames(Te *testing.T) {
	c := v3.FromVecs(irregular[1])
	zthenx := BuildFrame(c, 0, Axes{Z: 1, X: 2, Y: -1, Type: ZThenX}, nil)
	for _, a := range []Axes{{Z: 1, X: 2, Y: -1, Type: ZBisect}, {Z: 1, X: 2, Y: 7, Type: ThreeFold}} {
		f := BuildFrame(c, 0, a, nil)
		assert.Equal(Te, zthenx, f, a.String())
		assert.False(Te, f.Reverse)
	}
	zonly := BuildFrame(c, 0, Axes{Z: 1, X: -1, Y: -1, Type: ZOnly}, nil)
	for _, t := range []AxisType{ZThenX, Bisector, ZBisect, ThreeFold} {
		assert.Equal(Te, zonly, BuildFrame(c, 0, Axes{Z: 1, X: -1, Y: 3, Type: t}, nil), t.String())
	}
}

func TestChirality(Te *testing.T) {
	a := axesFor(ZThenX)
	//y neighbor at +y: negative volume.
	assert.True(Te, BuildFrame(site0(), 0, a, nil).Reverse)
	c := v3.FromVecs([]r3.Vec{vec(0, 0, 0), vec(0, 0, 1), vec(1, 0, 0), vec(0, -1, 0)})
	f := BuildFrame(c, 0, a, nil)
	assert.False(Te, f.Reverse)
	assert.Equal(Te, IdentityFrame(), f)
	//no y neighbor, no check
	assert.False(Te, BuildFrame(site0(), 0, Axes{Z: 1, X: 2, Y: -1, Type: ZThenX}, nil).Reverse)
	//only z-then-x sites are checked
	assert.False(Te, BuildFrame(site0(), 0, axesFor(Bisector), nil).Reverse)
}

func mirror(vecs []r3.Vec) []r3.Vec {
	ret := make([]r3.Vec, len(vecs))
	for i, v := range vecs {
		ret[i] = vec(v.X, -v.Y, v.Z)
	}
	return ret
}

func TestMirrorImages(Te *testing.T) {
	dip := vec(0.3, -0.8, 0.5)
	q := Quadrupole{XX: 0.4, XY: -0.25, XZ: 0.1, YY: -0.7, YZ: 0.35}
	for i, g := range irregular {
		f := BuildFrame(v3.FromVecs(g), 0, axesFor(ZThenX), nil)
		fm := BuildFrame(v3.FromVecs(mirror(g)), 0, axesFor(ZThenX), nil)
		assert.NotEqual(Te, f.Reverse, fm.Reverse, "geometry %d", i)
		d, lq := RotateMoments(f, dip, q)
		dm, lqm := RotateMoments(fm, dip, q)
		assertVec(Te, vec(d.X, -d.Y, d.Z), dm, tol, "geometry %d", i)
		assertQuad(Te, Quadrupole{XX: lq.XX, XY: -lq.XY, XZ: lq.XZ, YY: lq.YY, YZ: -lq.YZ}, lqm, tol, "geometry %d", i)
	}
}

func TestPeriodicFrames(Te *testing.T) {
	box, err := pbc.NewRectangular(10, 10, 10)
	require.NoError(Te, err)
	wrapped := v3.FromVecs([]r3.Vec{vec(0.5, 5, 5), vec(9.7, 5.2, 5.1), vec(0.6, 4.1, 4.8), vec(1.2, 5.5, 5.9)})
	unwrapped := v3.FromVecs([]r3.Vec{vec(0.5, 5, 5), vec(-0.3, 5.2, 5.1), vec(0.6, 4.1, 4.8), vec(1.2, 5.5, 5.9)})
	for _, t := range []AxisType{ZThenX, Bisector, ZBisect, ThreeFold, ZOnly} {
		a := axesFor(t)
		fw := BuildFrame(wrapped, 0, a, box)
		fu := BuildFrame(unwrapped, 0, a, nil)
		assertVec(Te, fu.X, fw.X, tol, t.String())
		assertVec(Te, fu.Y, fw.Y, tol, t.String())
		assertVec(Te, fu.Z, fw.Z, tol, t.String())
		assert.Equal(Te, fu.Reverse, fw.Reverse)
	}
}

//In a small box the cross product in the chirality check is longer than
//half the box. It is a volume term, not a displacement, so it is not wrapped.
func TestPeriodicChirality(Te *testing.T) {
	box, err := pbc.NewRectangular(3, 3, 3)
	require.NoError(Te, err)
	c := v3.FromVecs([]r3.Vec{vec(0, 0, 0), vec(0, 0, 1.4), vec(1.4, 0, 0), vec(0, -1.4, 0)})
	a := axesFor(ZThenX)
	assert.InDelta(Te, 2.744, chiralVolume(c, 0, a, box), 1e-12)
	assert.False(Te, BuildFrame(c, 0, a, box).Reverse)
	assert.Equal(Te, BuildFrame(c, 0, a, nil), BuildFrame(c, 0, a, box))
}

func TestFrameMatrix(Te *testing.T) {
	f := BuildFrame(v3.FromVecs(irregular[2]), 0, axesFor(Bisector), nil)
	m := f.Matrix()
	assert.Equal(Te, f.Y.X, m.At(1, 0))
	assert.Equal(Te, f.Z.Z, m.At(2, 2))
}
