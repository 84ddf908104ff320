/*
 * rotate_test.go, part of gomultipole
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
	"testing"

	"github.com/rmera/gomultipole/v3"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	testDipole = vec(0.3, -0.8, 0.5)
	testQuad   = Quadrupole{XX: 0.4, XY: -0.25, XZ: 0.1, YY: -0.7, YZ: 0.35}
)

func TestRotateIdentity(Te *testing.T) {
	d, q := RotateMoments(IdentityFrame(), testDipole, testQuad)
	assert.Equal(Te, testDipole, d)
	assertQuad(Te, testQuad, q, 0)
}

func TestRotateAgainstMatrices(Te *testing.T) {
	for i, g := range irregular {
		c := v3.FromVecs(g)
		for _, t := range []AxisType{ZThenX, Bisector, ZBisect, ThreeFold, ZOnly} {
			f := BuildFrame(c, 0, axesFor(t), nil)
			d, q := RotateMoments(f, testDipole, testQuad)
			local := testDipole
			lq := testQuad
			if f.Reverse {
				local.Y = -local.Y
				lq.XY = -lq.XY
				lq.YZ = -lq.YZ
			}
			R := f.Matrix()
			//lab = R^T local, Qlab = R^T Q R
			var dv mat.VecDense
			dv.MulVec(R.T(), mat.NewVecDense(3, []float64{local.X, local.Y, local.Z}))
			assertVec(Te, vec(dv.AtVec(0), dv.AtVec(1), dv.AtVec(2)), d, tol, "geometry %d %s", i, t)
			var tmp, Q mat.Dense
			tmp.Mul(R.T(), lq.Tensor())
			Q.Mul(&tmp, R)
			assertQuad(Te, QuadrupoleFromTensor(&Q), q, tol, "geometry %d %s", i, t)
			assert.InDelta(Te, 0, q.Trace(), tol)
			assert.InDelta(Te, q.ZZ(), Q.At(2, 2), tol)
			assert.InDelta(Te, r3.Norm(testDipole), r3.Norm(d), tol)
		}
	}
}

func TestRotateReverse(Te *testing.T) {
	f := IdentityFrame()
	f.Reverse = true
	d, q := RotateMoments(f, testDipole, testQuad)
	assertVec(Te, vec(0.3, 0.8, 0.5), d, 0)
	assertQuad(Te, Quadrupole{XX: 0.4, XY: 0.25, XZ: 0.1, YY: -0.7, YZ: -0.35}, q, tol)
}

func TestQuadrupoleTensor(Te *testing.T) {
	T := testQuad.Tensor()
	assert.Equal(Te, testQuad.XY, T.At(1, 0))
	assert.Equal(Te, testQuad.YZ, T.At(2, 1))
	assert.InDelta(Te, 0.3, T.At(2, 2), tol)
	assert.Equal(Te, testQuad, QuadrupoleFromTensor(T))
	assert.InDelta(Te, 0, testQuad.Trace(), tol)
}
