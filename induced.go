/*
 * induced.go, part of gomultipole
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
	"github.com/rmera/gomultipole/fixedpoint"
	"gonum.org/v1/gonum/spatial/r3"
)

//RecordInducedDipoles sets the induced dipole of each site to its
//polarizability times the field accumulated, in fixed point, in field.
//It panics if the lengths of field, polarizability and out differ.
func RecordInducedDipoles(field *fixedpoint.Buffer, polarizability []float64, out []r3.Vec, options ...*Options) {
	o := getOptions(options)
	n := len(out)
	if field.Len() != n || len(polarizability) != n {
		panic(ErrInducedShape)
	}
	o.run(KernelInducedDipoles, n, func(i int) {
		scale := polarizability[i] / fixedpoint.Scale
		x, y, z := field.RawVec(i)
		out[i] = r3.Vec{X: scale * float64(x), Y: scale * float64(y), Z: scale * float64(z)}
	})
}
