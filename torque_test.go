/*
 * torque_test.go, part of gomultipole
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

	"github.com/rmera/gomultipole/fixedpoint"
	"github.com/rmera/gomultipole/pbc"
	"github.com/rmera/gomultipole/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

var testTorque = vec(0.3, -0.7, 1.1)

//Forces for site0 under testTorque, worked out by hand from the closed forms.
func TestDistributeTorqueClosedForms(Te *testing.T) {
	tx, ty, tz := testTorque.X, testTorque.Y, testTorque.Z
	cases := []struct {
		t          AxisType
		z, x, y    r3.Vec
		applyX, aY bool
	}{
		{ZThenX, vec(ty, -tx, 0), vec(0, tz, 0), vec(0, 0, 0), true, false},
		{Bisector, vec(ty/2, -tx, 0), vec(0, tz, -ty/2), vec(0, 0, 0), true, false},
		{ZBisect, vec(ty, -tx, 0), vec(0, tz/2, 0), vec(-tz/2, 0, 0), true, true},
		{ThreeFold, vec(ty-tz, tz-tx, 0), vec(0, tz-tx, tx-ty), vec(ty-tz, 0, tx-ty), true, true},
		{ZOnly, vec(ty, -tx, 0), vec(0, 0, 0), vec(0, 0, 0), false, false},
	}
	for _, c := range cases {
		if c.t == ThreeFold {
			c.z, c.x, c.y = r3.Scale(1.0/3, c.z), r3.Scale(1.0/3, c.x), r3.Scale(1.0/3, c.y)
		}
		f, tg := DistributeTorque(site0(), 0, axesFor(c.t), testTorque, nil)
		assertVec(Te, c.z, f.Z, tol, c.t.String())
		assertVec(Te, c.x, f.X, tol, c.t.String())
		assertVec(Te, c.y, f.Y, tol, c.t.String())
		assertVec(Te, vec(0, 0, 0), f.Net(), tol, c.t.String())
		assert.Equal(Te, 0, tg.Self)
		assert.Equal(Te, 1, tg.Z)
		if c.applyX {
			assert.Equal(Te, 2, tg.X)
		} else {
			assert.Equal(Te, -1, tg.X)
		}
		if c.aY {
			assert.Equal(Te, 3, tg.Y)
		} else {
			assert.Equal(Te, -1, tg.Y)
		}
	}
}

func TestNoAxisNoForces(Te *testing.T) {
	for _, a := range []Axes{NoAxes(), {Z: -1, X: 2, Y: 3, Type: ZThenX}, {Z: 1, X: 2, Y: 3, Type: 6}} {
		f, tg := DistributeTorque(site0(), 0, a, testTorque, nil)
		assert.Equal(Te, Forces{}, f)
		assert.Equal(Te, Targets{Self: -1, X: -1, Y: -1, Z: -1}, tg)
	}
}

//the forces on the neighbors produce, about the site, the torque predicted
//by each rule, and add up to zero.
func TestTorqueReproduction(Te *testing.T) {
	taus := []r3.Vec{testTorque, vec(-1, 0.2, 0.4), vec(0, 0, 1)}
	for i, g := range irregular {
		c := v3.FromVecs(g)
		S, err := NewSystem(c, []Axes{NoAxes(), NoAxes(), NoAxes(), NoAxes()}, make([]r3.Vec, 4), make([]Quadrupole, 4))
		require.NoError(Te, err)
		for _, t := range []AxisType{ZThenX, Bisector, ZBisect, ZOnly} {
			for _, tau := range taus {
				f, tg, geo := distribute(c, 0, axesFor(t), tau, nil)
				assertVec(Te, vec(0, 0, 0), f.Net(), 1e-10)
				want, ok := rules[t].reproduced(geo, tau)
				if t == ZBisect && i == 2 {
					//the z bond falls between the bisected ones here.
					assert.False(Te, ok)
					continue
				}
				require.True(Te, ok)
				assertVec(Te, want, producedTorque(S, 0, f, tg, nil), 1e-10, "geometry %d %s", i, t)
			}
		}
	}
}

//With the z bond along a lab axis the z-only rule reproduces the torque
//perpendicular to the bond.
func TestZOnlyPerpendicularTorque(Te *testing.T) {
	c := site0()
	S, err := NewSystem(c, []Axes{NoAxes(), NoAxes(), NoAxes(), NoAxes()}, make([]r3.Vec, 4), make([]Quadrupole, 4))
	require.NoError(Te, err)
	f, tg := DistributeTorque(c, 0, axesFor(ZOnly), testTorque, nil)
	assertVec(Te, vec(testTorque.X, testTorque.Y, 0), producedTorque(S, 0, f, tg, nil), tol)
}

func TestThreeFoldDropsAxialTorque(Te *testing.T) {
	c := site0()
	S, err := NewSystem(c, []Axes{NoAxes(), NoAxes(), NoAxes(), NoAxes()}, make([]r3.Vec, 4), make([]Quadrupole, 4))
	require.NoError(Te, err)
	f, tg := DistributeTorque(c, 0, axesFor(ThreeFold), testTorque, nil)
	s := (testTorque.X + testTorque.Y + testTorque.Z) / 3
	assertVec(Te, r3.Sub(testTorque, vec(s, s, s)), producedTorque(S, 0, f, tg, nil), tol)
}

func TestPeriodicTorque(Te *testing.T) {
	box, err := pbc.NewRectangular(10, 10, 10)
	require.NoError(Te, err)
	wrapped := v3.FromVecs([]r3.Vec{vec(0.5, 5, 5), vec(9.7, 5.2, 5.1), vec(0.6, 4.1, 4.8), vec(1.2, 5.5, 5.9)})
	unwrapped := v3.FromVecs([]r3.Vec{vec(0.5, 5, 5), vec(-0.3, 5.2, 5.1), vec(0.6, 4.1, 4.8), vec(1.2, 5.5, 5.9)})
	for _, t := range []AxisType{ZThenX, Bisector, ZBisect, ThreeFold, ZOnly} {
		fw, _ := DistributeTorque(wrapped, 0, axesFor(t), testTorque, box)
		fu, _ := DistributeTorque(unwrapped, 0, axesFor(t), testTorque, nil)
		assertVec(Te, fu.Z, fw.Z, 1e-10, t.String())
		assertVec(Te, fu.X, fw.X, 1e-10, t.String())
		assertVec(Te, fu.Y, fw.Y, 1e-10, t.String())
	}
}

func TestAddToIsExactlyClosed(Te *testing.T) {
	for _, g := range irregular {
		c := v3.FromVecs(g)
		for _, t := range []AxisType{ZThenX, Bisector, ZBisect, ThreeFold, ZOnly} {
			buf := fixedpoint.NewBuffer(4, 0)
			f, tg := DistributeTorque(c, 0, axesFor(t), testTorque, nil)
			f.addTo(buf, tg)
			x, y, z := int64(0), int64(0), int64(0)
			for i := 0; i < 4; i++ {
				a, b, d := buf.RawVec(i)
				x, y, z = x+a, y+b, z+d
			}
			assert.Equal(Te, [3]int64{0, 0, 0}, [3]int64{x, y, z}, t.String())
			assertVec(Te, f.Z, buf.Vec(1), 1e-9)
		}
	}
}
