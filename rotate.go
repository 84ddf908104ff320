/*
 * rotate.go, part of gomultipole
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
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

//Quadrupole is a traceless quadrupole, given by its five independent
//components. ZZ = -(XX+YY).
type Quadrupole struct {
	XX, XY, XZ, YY, YZ float64
}

//ZZ returns the ZZ component.
func (q Quadrupole) ZZ() float64 {
	return -(q.XX + q.YY)
}

//Trace returns XX+YY+ZZ, which is zero up to rounding by construction.
func (q Quadrupole) Trace() float64 {
	return q.XX + q.YY + q.ZZ()
}

//Tensor returns the full, symmetric 3x3 tensor.
func (q Quadrupole) Tensor() *mat.SymDense {
	return mat.NewSymDense(3, []float64{
		q.XX, q.XY, q.XZ,
		q.XY, q.YY, q.YZ,
		q.XZ, q.YZ, q.ZZ(),
	})
}

//QuadrupoleFromTensor returns the independent components of the
//upper triangle of t. The trace of t is not checked.
func QuadrupoleFromTensor(t mat.Matrix) Quadrupole {
	return Quadrupole{XX: t.At(0, 0), XY: t.At(0, 1), XZ: t.At(0, 2), YY: t.At(1, 1), YZ: t.At(1, 2)}
}

//Slice returns the components as XX, XY, XZ, YY, YZ
func (q Quadrupole) Slice() []float64 {
	return []float64{q.XX, q.XY, q.XZ, q.YY, q.YZ}
}

func (q Quadrupole) String() string {
	return fmt.Sprintf("{XX: %g, XY: %g, XZ: %g, YY: %g, YZ: %g}", q.XX, q.XY, q.XZ, q.YY, q.YZ)
}

//RotateMoments takes a local dipole and quadrupole to the lab frame,
//using the axes of f. If f is reversed, the local moments are mirrored
//through the xz plane first.
func RotateMoments(f Frame, dipole r3.Vec, quad Quadrupole) (r3.Vec, Quadrupole) {
	if f.Reverse {
		dipole.Y = -dipole.Y
		quad.XY = -quad.XY
		quad.YZ = -quad.YZ
	}
	lab := r3.Add(r3.Add(r3.Scale(dipole.X, f.X), r3.Scale(dipole.Y, f.Y)), r3.Scale(dipole.Z, f.Z))
	//rows of the rotation matrix, and the local tensor
	R := [3][3]float64{
		{f.X.X, f.X.Y, f.X.Z},
		{f.Y.X, f.Y.Y, f.Y.Z},
		{f.Z.X, f.Z.Y, f.Z.Z},
	}
	Q := [3][3]float64{
		{quad.XX, quad.XY, quad.XZ},
		{quad.XY, quad.YY, quad.YZ},
		{quad.XZ, quad.YZ, quad.ZZ()},
	}
	element := func(a, b int) float64 {
		var ret float64
		for i := 0; i < 3; i++ {
			var s float64
			for j := 0; j < 3; j++ {
				s += Q[i][j] * R[j][b]
			}
			ret += R[i][a] * s
		}
		return ret
	}
	return lab, Quadrupole{XX: element(0, 0), XY: element(0, 1), XZ: element(0, 2), YY: element(1, 1), YZ: element(1, 2)}
}
