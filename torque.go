/*
 * torque.go, part of gomultipole
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
	"github.com/rmera/gomultipole/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

//geometry holds the bond vectors of a site as seen from the neighbors
//(u for z, v for x, w for y or u x v), normalized, with their lengths,
//and the normalized cross products between them with the corresponding
//angle sines and cosines.
type geometry struct {
	u, v, w      r3.Vec
	nu, nv, nw   float64
	uv, uw, vw   r3.Vec
	uvCos, uvSin float64
	uwCos, uwSin float64
	vwCos, vwSin float64
}

func newGeometry(coords *v3.Matrix, atom int, axes Axes, eff AxisType, box MinimumImager) *geometry {
	g := new(geometry)
	pos := coords.Vec(atom)
	g.u, g.nu = normVec(delta(box, coords.Vec(axes.Z), pos))
	if eff == ZOnly {
		g.v, g.nv = normVec(fallbackX(g.u))
	} else {
		g.v, g.nv = normVec(delta(box, coords.Vec(axes.X), pos))
	}
	if eff == ZBisect || eff == ThreeFold {
		g.w, g.nw = normVec(delta(box, coords.Vec(axes.Y), pos))
	} else {
		g.w, g.nw = normVec(r3.Cross(g.u, g.v))
	}
	g.uv = unit(r3.Cross(g.v, g.u))
	g.uw = unit(r3.Cross(g.w, g.u))
	g.vw = unit(r3.Cross(g.w, g.v))
	g.uvCos = r3.Dot(g.u, g.v)
	g.uvSin = sine(g.uvCos)
	g.uwCos = r3.Dot(g.u, g.w)
	g.uwSin = sine(g.uwCos)
	g.vwCos = r3.Dot(g.v, g.w)
	g.vwSin = sine(g.vwCos)
	return g
}

//dphi returns the rotation angle derivatives about u, v and w.
func (g *geometry) dphi(torque r3.Vec) (float64, float64, float64) {
	return -r3.Dot(g.u, torque), -r3.Dot(g.v, torque), -r3.Dot(g.w, torque)
}

//Forces contains the forces that a torque on a site produces on the site
//itself and on its z, x and y neighbors.
type Forces struct {
	Self, X, Y, Z r3.Vec
}

//Net returns the sum of the four forces.
func (f Forces) Net() r3.Vec {
	return r3.Add(r3.Add(f.Self, f.X), r3.Add(f.Y, f.Z))
}

//Targets contains the indexes of the atoms that receive each of the
//forces in a Forces. A -1 means the corresponding force is not applied.
type Targets struct {
	Self, X, Y, Z int
}

//DistributeTorque returns the forces equivalent to the lab-frame torque
//on the atom-th site, and the atoms they act on. The forces
//add up to zero. Sites without frame get no forces.
//box, if not nil, is used to wrap every displacement.
func DistributeTorque(coords *v3.Matrix, atom int, axes Axes, torque r3.Vec, box MinimumImager) (Forces, Targets) {
	f, t, _ := distribute(coords, atom, axes, torque, box)
	return f, t
}

func distribute(coords *v3.Matrix, atom int, axes Axes, torque r3.Vec, box MinimumImager) (Forces, Targets, *geometry) {
	t := Targets{Self: -1, X: -1, Y: -1, Z: -1}
	eff := axes.effective(coords.NVecs())
	if eff == NoAxisType {
		return Forces{}, t, nil
	}
	g := newGeometry(coords, atom, axes, eff, box)
	f := rules[eff].forces(g, torque)
	f.Self = r3.Scale(-1, r3.Add(f.Z, r3.Add(f.X, f.Y)))
	t.Self, t.Z = atom, axes.Z
	if eff != ZOnly {
		t.X = axes.X
	}
	if eff == ZBisect || eff == ThreeFold {
		t.Y = axes.Y
	}
	return f, t, g
}

//addTo adds the forces to the buffer at their targets. The self
//force is taken as minus the encoded sum of the others, so the net
//contribution to the buffer is exactly zero.
func (f Forces) addTo(buf *fixedpoint.Buffer, t Targets) {
	if t.Self < 0 {
		return
	}
	var sx, sy, sz int64
	add := func(i int, v r3.Vec) {
		x, y, z := fixedpoint.FromFloat(v.X), fixedpoint.FromFloat(v.Y), fixedpoint.FromFloat(v.Z)
		buf.AddRaw(i, x, y, z)
		sx, sy, sz = sx-x, sy-y, sz-z
	}
	add(t.Z, f.Z)
	if t.X >= 0 {
		add(t.X, f.X)
	}
	if t.Y >= 0 {
		add(t.Y, f.Y)
	}
	buf.AddRaw(t.Self, sx, sy, sz)
}
