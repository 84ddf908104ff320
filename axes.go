/*
 * axes.go, part of gomultipole
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
	"strconv"
	"strings"
)

//AxisType tells how the local frame of a site is built from its neighbors.
type AxisType int

//The axis types understood by the package. Any other value, including
//NoAxisType, means the site has no local frame.
const (
	ZThenX    AxisType = 0
	Bisector  AxisType = 1
	ZBisect   AxisType = 2
	ThreeFold AxisType = 3
	ZOnly     AxisType = 4

	NoAxisType AxisType = 5
)

var axisNames = map[AxisType]string{
	ZThenX:    "z-then-x",
	Bisector:  "bisector",
	ZBisect:   "z-bisect",
	ThreeFold: "3-fold",
	ZOnly:     "z-only",
}

//Valid returns true if t is one of the known axis types.
func (t AxisType) Valid() bool {
	return t >= ZThenX && t <= ZOnly
}

func (t AxisType) String() string {
	if n, ok := axisNames[t]; ok {
		return n
	}
	return "no-axis"
}

//ParseAxisType accepts either the numeric tag of an axis type
//or its name, as returned by String. Numeric tags outside
//the known range are accepted and give a site without frame.
func ParseAxisType(s string) (AxisType, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if i, err := strconv.Atoi(s); err == nil {
		return AxisType(i), nil
	}
	for k, v := range axisNames {
		if v == s {
			return k, nil
		}
	}
	switch s {
	case "no-axis", "none":
		return NoAxisType, nil
	case "zthenx":
		return ZThenX, nil
	case "zbisect":
		return ZBisect, nil
	case "threefold":
		return ThreeFold, nil
	case "zonly":
		return ZOnly, nil
	}
	return NoAxisType, newError("ParseAxisType", "unknown axis type %q", s)
}

//Axes is the axis descriptor of a site: the indexes of its z, x and
//y neighbors (-1 when not used) and its axis type.
type Axes struct {
	X, Y, Z int
	Type    AxisType
}

//NoAxes returns a descriptor for a site without local frame.
func NoAxes() Axes {
	return Axes{X: -1, Y: -1, Z: -1, Type: NoAxisType}
}

//Defined returns true if the descriptor defines a local frame, i.e.
//it has a z neighbor and a known axis type.
func (a Axes) Defined() bool {
	return a.Z >= 0 && a.Type.Valid()
}

func (a Axes) String() string {
	return fmt.Sprintf("%s(z=%d x=%d y=%d)", a.Type, a.Z, a.X, a.Y)
}

//effective returns the axis type whose rule is actually used for the
//site, in a system of natoms atoms. A descriptor that lacks a
//neighbor its type requires falls back to a simpler rule: without x
//neighbor a site is handled as z-only, and a z-bisect or 3-fold site
//whose y neighbor is out of range is handled as z-then-x.
//Frames and torques use the same resolution.
func (a Axes) effective(natoms int) AxisType {
	if !a.Defined() {
		return NoAxisType
	}
	if a.Type == ZOnly || a.X < 0 {
		return ZOnly
	}
	if (a.Type == ZBisect || a.Type == ThreeFold) && (a.Y < 0 || a.Y >= natoms) {
		return ZThenX
	}
	return a.Type
}

//Degraded returns true if, in a system of natoms atoms, the site
//falls back to a simpler rule than the one its type names.
func (a Axes) Degraded(natoms int) bool {
	return a.Defined() && a.effective(natoms) != a.Type
}
