/*
 * gocoords.go, part of gomultipole
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

package v3

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

//Returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

//FromVecs returns a new Matrix with the given vectors as rows.
//It panics if no vectors are given.
func FromVecs(vecs []r3.Vec) *Matrix {
	if len(vecs) == 0 {
		panic(ErrShape)
	}
	ret := Zeros(len(vecs))
	for i, v := range vecs {
		ret.SetVec(i, v)
	}
	return ret
}

//METHODS

//return the number of vecs in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

//Vec returns the ith vector of F as an r3.Vec. It reads the
//backing data directly, so it is safe to call concurrently
//with SetVec calls on other rows.
func (F *Matrix) Vec(i int) r3.Vec {
	r := F.RawMatrix()
	if i < 0 || i >= r.Rows {
		panic(ErrIndexOutOfRange)
	}
	s := r.Data[i*r.Stride : i*r.Stride+3]
	return r3.Vec{X: s[0], Y: s[1], Z: s[2]}
}

//SetVec puts v in the ith vector of F.
func (F *Matrix) SetVec(i int, v r3.Vec) {
	r := F.RawMatrix()
	if i < 0 || i >= r.Rows {
		panic(ErrIndexOutOfRange)
	}
	s := r.Data[i*r.Stride : i*r.Stride+3]
	s[0] = v.X
	s[1] = v.Y
	s[2] = v.Z
}
