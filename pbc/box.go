/*
 * box.go, part of gomultipole
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

//Package pbc implements periodic simulation boxes and the minimum-image
//convention for displacement vectors.
package pbc

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

//Box is a periodic box given by three box vectors in reduced form:
//A lies along x, B in the xy plane, and C is unrestricted, with a
//positive diagonal. A rectangular box is the special case where all
//off-diagonal components are zero.
type Box struct {
	a, b, c r3.Vec
	inv     r3.Vec //inverse of the diagonal, i.e. 1/A.X, 1/B.Y, 1/C.Z
}

//NewBox returns a triclinic box from its three vectors. The vectors must
//be in reduced form.
func NewBox(a, b, c r3.Vec) (*Box, error) {
	if a.Y != 0 || a.Z != 0 || b.Z != 0 {
		return nil, Error{fmt.Sprintf("pbc: box vectors not in reduced form: a=%v b=%v", a, b), []string{"NewBox"}, true}
	}
	if a.X <= 0 || b.Y <= 0 || c.Z <= 0 {
		return nil, Error{fmt.Sprintf("pbc: box vectors must have a positive diagonal: %g %g %g", a.X, b.Y, c.Z), []string{"NewBox"}, true}
	}
	if math.Abs(b.X) > a.X/2 || math.Abs(c.X) > a.X/2 || math.Abs(c.Y) > b.Y/2 {
		return nil, Error{fmt.Sprintf("pbc: box vectors are not reduced: a=%v b=%v c=%v", a, b, c), []string{"NewBox"}, true}
	}
	return &Box{a: a, b: b, c: c, inv: r3.Vec{X: 1 / a.X, Y: 1 / b.Y, Z: 1 / c.Z}}, nil
}

//NewRectangular returns an orthorhombic box with the given edge lengths.
func NewRectangular(x, y, z float64) (*Box, error) {
	return NewBox(r3.Vec{X: x}, r3.Vec{Y: y}, r3.Vec{Z: z})
}

//FromSlice builds a box from the 9 components ax ay az bx by bz cx cy cz.
func FromSlice(s []float64) (*Box, error) {
	if len(s) != 9 {
		return nil, Error{fmt.Sprintf("pbc: 9 components needed for a box, got %d", len(s)), []string{"FromSlice"}, true}
	}
	B, err := NewBox(r3.Vec{X: s[0], Y: s[1], Z: s[2]}, r3.Vec{X: s[3], Y: s[4], Z: s[5]}, r3.Vec{X: s[6], Y: s[7], Z: s[8]})
	if e, ok := err.(Error); ok {
		e.deco = e.Decorate("FromSlice")
		return nil, e
	}
	return B, err
}

//Vectors returns the three box vectors.
func (B *Box) Vectors() [3]r3.Vec {
	return [3]r3.Vec{B.a, B.b, B.c}
}

//Slice returns the box vectors as 9 consecutive components.
func (B *Box) Slice() []float64 {
	return []float64{B.a.X, B.a.Y, B.a.Z, B.b.X, B.b.Y, B.b.Z, B.c.X, B.c.Y, B.c.Z}
}

//Triclinic returns whether any of the box vectors has off-diagonal components.
func (B *Box) Triclinic() bool {
	return B.b.X != 0 || B.c.X != 0 || B.c.Y != 0
}

//Volume returns the volume of the box.
func (B *Box) Volume() float64 {
	return B.a.X * B.b.Y * B.c.Z
}

//MinImage returns the periodic image of the displacement d closest to the
//origin. The C vector is removed first, then B, then A, so that the
//off-diagonal terms of the later vectors never reintroduce a shift along
//the earlier ones.
func (B *Box) MinImage(d r3.Vec) r3.Vec {
	d = r3.Sub(d, r3.Scale(math.Floor(d.Z*B.inv.Z+0.5), B.c))
	d = r3.Sub(d, r3.Scale(math.Floor(d.Y*B.inv.Y+0.5), B.b))
	d = r3.Sub(d, r3.Scale(math.Floor(d.X*B.inv.X+0.5), B.a))
	return d
}

func (B *Box) String() string {
	return fmt.Sprintf("Box{a: %v, b: %v, c: %v}", B.a, B.b, B.c)
}

//Error is returned by the box constructors that take user data.
type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

//Critical return whether the error is critical or it can be ignored
func (err Error) Critical() bool { return err.critical }
