/*
 * helpers_test.go, part of gomultipole
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
	"gonum.org/v1/gonum/spatial/r3"
)

const tol = 1e-12

func vec(x, y, z float64) r3.Vec { return r3.Vec{X: x, Y: y, Z: z} }

//site0 places a site at the origin with its z, x and y neighbors along the lab axes.
func site0() *v3.Matrix {
	return v3.FromVecs([]r3.Vec{vec(0, 0, 0), vec(0, 0, 1), vec(1, 0, 0), vec(0, 1, 0)})
}

//irregular geometries of a site (first vector) and its z, x and y neighbors.
var irregular = [][]r3.Vec{
	{vec(0.1, -0.2, 0.3), vec(0.2, 0.1, 1.4), vec(1.2, -0.1, 0.5), vec(-0.4, 0.9, 0.2)},
	{vec(1.0, 1.0, 1.0), vec(1.3, 0.8, 2.1), vec(2.0, 1.5, 0.7), vec(0.2, 1.9, 0.8)},
	{vec(-0.5, 0.3, 0.0), vec(-0.6, 1.4, 0.2), vec(0.6, 0.1, -0.3), vec(-1.4, -0.4, 0.3)},
}

func axesFor(t AxisType) Axes {
	return Axes{Z: 1, X: 2, Y: 3, Type: t}
}

func assertVec(t *testing.T, want, got r3.Vec, delta float64, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, delta, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, delta, msgAndArgs...)
	assert.InDelta(t, want.Z, got.Z, delta, msgAndArgs...)
}

func assertQuad(t *testing.T, want, got Quadrupole, delta float64, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDeltaSlice(t, want.Slice(), got.Slice(), delta, msgAndArgs...)
}
