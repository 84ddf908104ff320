/*
 * rules.go, part of gomultipole
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

	"gonum.org/v1/gonum/spatial/r3"
)

//rule implements one axis type: how the raw neighbor directions are
//turned into the frame, and how a torque on the site is turned into forces.
type rule interface {
	//orient takes the unit direction to the z neighbor, the direction
	//to the x neighbor (or the fallback) and the unit direction to the y
	//neighbor (zero if not used), and returns the final Z and the x
	//direction to be orthogonalized against it.
	orient(z, x, y r3.Vec) (r3.Vec, r3.Vec)
	//forces returns the forces on the z, x and y neighbors. Self is
	//left for the caller.
	forces(g *geometry, torque r3.Vec) Forces
	//reproduced returns the part of torque that the forces reproduce, if
	//the rule has a closed form for it.
	reproduced(g *geometry, torque r3.Vec) (r3.Vec, bool)
}

//rules is indexed by the effective axis type.
var rules = [...]rule{
	ZThenX:    zThenX{},
	Bisector:  bisector{},
	ZBisect:   zBisect{},
	ThreeFold: threeFold{},
	ZOnly:     zOnly{},
}

func sine(cos float64) float64 {
	return math.Sqrt(1 - cos*cos)
}

type zThenX struct{}

func (zThenX) orient(z, x, y r3.Vec) (r3.Vec, r3.Vec) { return z, x }

func (zThenX) forces(g *geometry, torque r3.Vec) Forces {
	dU, dV, dW := g.dphi(torque)
	var f Forces
	f.Z = r3.Add(r3.Scale(dV/(g.nu*g.uvSin), g.uv), r3.Scale(dW/g.nu, g.uw))
	f.X = r3.Scale(-dU/(g.nv*g.uvSin), g.uv)
	return f
}

func (zThenX) reproduced(g *geometry, torque r3.Vec) (r3.Vec, bool) { return torque, true }

type bisector struct{}

func (bisector) orient(z, x, y r3.Vec) (r3.Vec, r3.Vec) {
	x = unit(x)
	return unit(r3.Add(z, x)), x
}

func (bisector) forces(g *geometry, torque r3.Vec) Forces {
	dU, dV, dW := g.dphi(torque)
	var f Forces
	f.Z = r3.Add(r3.Scale(dV/(g.nu*g.uvSin), g.uv), r3.Scale(0.5*dW/g.nu, g.uw))
	f.X = r3.Add(r3.Scale(-dU/(g.nv*g.uvSin), g.uv), r3.Scale(0.5*dW/g.nv, g.vw))
	return f
}

func (bisector) reproduced(g *geometry, torque r3.Vec) (r3.Vec, bool) { return torque, true }

type zBisect struct{}

func (zBisect) orient(z, x, y r3.Vec) (r3.Vec, r3.Vec) {
	return z, unit(r3.Add(unit(x), y))
}

//The 1/(sin1+sin2) factor is not guarded. It is only singular when both
//bisected bonds are parallel to the z bond.
func (zBisect) forces(g *geometry, torque r3.Vec) Forces {
	dU := -r3.Dot(g.u, torque)
	r, _ := normVec(r3.Add(g.v, g.w))
	s, _ := normVec(r3.Cross(g.u, r))
	ur := unit(r3.Cross(r, g.u))
	us := unit(r3.Cross(s, g.u))
	urSin := sine(r3.Dot(g.u, r))
	vsCos := r3.Dot(g.v, s)
	wsCos := r3.Dot(g.w, s)
	t1 := unit(r3.Sub(g.v, r3.Scale(vsCos, s)))
	t2 := unit(r3.Sub(g.w, r3.Scale(wsCos, s)))
	sins := sine(r3.Dot(g.u, t1)) + sine(r3.Dot(g.u, t2))
	dR := -r3.Dot(r, torque)
	dS := -r3.Dot(s, torque)
	var f Forces
	f.Z = r3.Add(r3.Scale(dR/(g.nu*urSin), ur), r3.Scale(dS/g.nu, us))
	f.X = r3.Scale(dU/(g.nv*sins), r3.Sub(r3.Scale(sine(vsCos), s), r3.Scale(vsCos, t1)))
	f.Y = r3.Scale(dU/(g.nw*sins), r3.Sub(r3.Scale(sine(wsCos), s), r3.Scale(wsCos, t2)))
	return f
}

//The z-bisect forces reproduce the whole torque as long as the z bond,
//seen along the normal to the plane of z and the bisector, doesn't
//fall between the two bisected bonds.
func (zBisect) reproduced(g *geometry, torque r3.Vec) (r3.Vec, bool) {
	s := unit(r3.Cross(g.u, r3.Add(g.v, g.w)))
	t1 := unit(r3.Sub(g.v, r3.Scale(r3.Dot(g.v, s), s)))
	t2 := unit(r3.Sub(g.w, r3.Scale(r3.Dot(g.w, s), s)))
	if r3.Dot(r3.Cross(t1, g.u), s)*r3.Dot(r3.Cross(g.u, t2), s) >= 0 {
		return r3.Vec{}, false
	}
	return torque, true
}

type threeFold struct{}

func (threeFold) orient(z, x, y r3.Vec) (r3.Vec, r3.Vec) {
	x = unit(x)
	return unit(r3.Add(z, r3.Add(x, y))), x
}

func (threeFold) forces(g *geometry, torque r3.Vec) Forces {
	dU, dV, dW := g.dphi(torque)
	uw := r3.Scale(1/g.uwSin, g.uw)
	uv := r3.Scale(1/g.uvSin, g.uv)
	vw := r3.Scale(1/g.vwSin, g.vw)
	var f Forces
	f.Z = r3.Scale(1/(3*g.nu), r3.Add(r3.Scale(dW-dU, uw), r3.Scale(dV-dU, uv)))
	f.X = r3.Scale(1/(3*g.nv), r3.Add(r3.Scale(dW-dV, vw), r3.Scale(dV-dU, uv)))
	f.Y = r3.Scale(1/(3*g.nw), r3.Add(r3.Scale(dW-dU, uw), r3.Scale(dW-dV, vw)))
	return f
}

//3-fold forces only reproduce the torque components perpendicular to
//a combination of the three bonds. There is no simple closed form for it.
func (threeFold) reproduced(g *geometry, torque r3.Vec) (r3.Vec, bool) { return r3.Vec{}, false }

type zOnly struct{}

func (zOnly) orient(z, x, y r3.Vec) (r3.Vec, r3.Vec) { return z, x }

func (zOnly) forces(g *geometry, torque r3.Vec) Forces {
	_, dV, dW := g.dphi(torque)
	var f Forces
	f.Z = r3.Add(r3.Scale(dV/(g.nu*g.uvSin), g.uv), r3.Scale(dW/g.nu, g.uw))
	return f
}

//A single bond can't carry torque about its own axis. The rest of the
//torque is reproduced in the basis of the bond and the reference x
//direction, so it is only the perpendicular component when both are
//orthogonal.
func (zOnly) reproduced(g *geometry, torque r3.Vec) (r3.Vec, bool) {
	vperp := r3.Sub(g.v, r3.Scale(g.uvCos, g.u))
	ret := r3.Scale(r3.Dot(g.v, torque)/(g.uvSin*g.uvSin), vperp)
	return r3.Add(ret, r3.Scale(r3.Dot(g.w, torque), g.w)), true
}
