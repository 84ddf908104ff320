/*
 * frame.go, part of gomultipole
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

	"github.com/rmera/gomultipole/v3"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

//MinimumImager maps a displacement vector to its periodic image
//closest to the origin. *pbc.Box implements it.
type MinimumImager interface {
	MinImage(d r3.Vec) r3.Vec
}

//delta returns the displacement from "from" to "to", wrapped by box if box is not nil.
func delta(box MinimumImager, from, to r3.Vec) r3.Vec {
	d := r3.Sub(to, from)
	if box != nil {
		d = box.MinImage(d)
	}
	return d
}

//normVec returns v normalized and its original norm. A zero vector
//is returned unchanged, with norm 0.
func normVec(v r3.Vec) (r3.Vec, float64) {
	n := r3.Norm(v)
	if n > 0 {
		return r3.Scale(1/n, v), n
	}
	return r3.Vec{}, 0
}

func unit(v r3.Vec) r3.Vec {
	u, _ := normVec(v)
	return u
}

//fallbackX returns the reference direction used as "x" by sites without
//x neighbor: the x axis, unless dir is close to it, in which case the y axis.
func fallbackX(dir r3.Vec) r3.Vec {
	if math.Abs(dir.X) < 0.866 {
		return r3.Vec{X: 1}
	}
	return r3.Vec{Y: 1}
}

//Frame is an orthonormal local frame. X, Y and Z are the local axes
//expressed in lab coordinates, Y = Z x X. Reverse is set when the
//chirality check of a z-then-x site requires the local y axis to be
//mirrored.
type Frame struct {
	X, Y, Z r3.Vec
	Reverse bool
}

//IdentityFrame returns the frame whose axes are the lab axes.
func IdentityFrame() Frame {
	return Frame{X: r3.Vec{X: 1}, Y: r3.Vec{Y: 1}, Z: r3.Vec{Z: 1}}
}

//BuildFrame returns the local frame of the atom-th site in coords, defined by
//axes. box, if not nil, is used to wrap every displacement.
//Sites without frame get the identity frame.
func BuildFrame(coords *v3.Matrix, atom int, axes Axes, box MinimumImager) Frame {
	n := coords.NVecs()
	eff := axes.effective(n)
	if eff == NoAxisType {
		return IdentityFrame()
	}
	pos := coords.Vec(atom)
	z := unit(delta(box, pos, coords.Vec(axes.Z)))
	var x, y r3.Vec
	if eff == ZOnly {
		x = fallbackX(z)
	} else {
		x = delta(box, pos, coords.Vec(axes.X))
	}
	if eff == ZBisect || eff == ThreeFold {
		y = unit(delta(box, pos, coords.Vec(axes.Y)))
	}
	z, x = rules[eff].orient(z, x, y)
	x = unit(r3.Sub(x, r3.Scale(r3.Dot(x, z), z)))
	f := Frame{X: x, Y: r3.Cross(z, x), Z: z}
	if axes.Type == ZThenX && eff == ZThenX && axes.Y >= 0 && axes.Y < n {
		f.Reverse = chiralVolume(coords, atom, axes, box) < 0
	}
	return f
}

//chiralVolume returns the signed volume of the tetrahedron formed by the
//site and its z, x and y neighbors, with the y neighbor as origin.
func chiralVolume(coords *v3.Matrix, atom int, axes Axes, box MinimumImager) float64 {
	py := coords.Vec(axes.Y)
	d0 := delta(box, py, coords.Vec(atom))
	d1 := delta(box, py, coords.Vec(axes.Z))
	d2 := delta(box, py, coords.Vec(axes.X))
	return r3.Dot(d0, r3.Cross(d1, d2))
}

//Matrix returns the rotation matrix of the frame, with X, Y and Z as rows.
//It takes lab vectors to the local frame.
func (f Frame) Matrix() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		f.X.X, f.X.Y, f.X.Z,
		f.Y.X, f.Y.Y, f.Y.Z,
		f.Z.X, f.Z.Y, f.Z.Z,
	})
}

//Orthonormality returns the largest absolute deviation of R*R^T from the identity,
//where R is the frame's matrix.
func (f Frame) Orthonormality() float64 {
	R := f.Matrix()
	P := mat.NewDense(3, 3, nil)
	P.Mul(R, R.T())
	P.Sub(P, eye3())
	return maxAbs(P)
}

//Determinant returns the determinant of the frame's matrix, 1 for
//right-handed frames.
func (f Frame) Determinant() float64 {
	return mat.Det(f.Matrix())
}

func eye3() *mat.Dense {
	return mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
}

func maxAbs(m mat.Matrix) float64 {
	r, c := m.Dims()
	var ret float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			ret = math.Max(ret, math.Abs(m.At(i, j)))
		}
	}
	return ret
}
