/*
 * system.go, part of gomultipole
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
	"sync"

	"github.com/rmera/gomultipole/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

//System contains what the kernels need to know about each site:
//coordinates, axis descriptors and the local permanent moments.
//The kernels only read from a System.
type System struct {
	Coords      *v3.Matrix
	Axes        []Axes
	Dipoles     []r3.Vec
	Quadrupoles []Quadrupole
	degraded    []int
	warn        sync.Once
}

//NewSystem checks the data and returns a System built from it. It returns
//an error if the lengths don't match, if a site uses itself as z or x
//neighbor, or if a z or x index falls outside the system. y indexes are only
//used by z-bisect and 3-fold sites, and are range-checked when the frames
//are built. The System keeps references to the given slices.
func NewSystem(coords *v3.Matrix, axes []Axes, dipoles []r3.Vec, quads []Quadrupole) (*System, error) {
	if coords == nil {
		return nil, newError("NewSystem", "nil coordinates")
	}
	n := coords.NVecs()
	if len(axes) != n || len(dipoles) != n || len(quads) != n {
		return nil, newError("NewSystem", "mismatched lengths: %d coordinates, %d axes, %d dipoles, %d quadrupoles", n, len(axes), len(dipoles), len(quads))
	}
	S := &System{Coords: coords, Axes: axes, Dipoles: dipoles, Quadrupoles: quads}
	for i, a := range axes {
		if !a.Defined() {
			continue
		}
		if a.Z >= n || (a.X >= n && a.Type != ZOnly) {
			return nil, newError("NewSystem", "site %d: neighbor index out of range in %v (%d atoms)", i, a, n)
		}
		if a.Z == i || (a.X == i && a.Type != ZOnly) || (a.Y == i && (a.Type == ZBisect || a.Type == ThreeFold)) {
			return nil, newError("NewSystem", "site %d uses itself as a frame neighbor: %v", i, a)
		}
		if a.Degraded(n) {
			S.degraded = append(S.degraded, i)
		}
	}
	return S, nil
}

//Len returns the number of sites in the system.
func (S *System) Len() int {
	return S.Coords.NVecs()
}

//Degraded returns the indexes of the sites whose descriptors lack a
//neighbor their axis type needs, and thus use a simpler rule.
func (S *System) Degraded() []int {
	return S.degraded
}

//Frame returns the local frame of the i-th site.
func (S *System) Frame(i int, box MinimumImager) Frame {
	return BuildFrame(S.Coords, i, S.Axes[i], box)
}

//LabMoments holds the lab-frame dipoles and quadrupoles of a system.
//The kernels overwrite it on every call.
type LabMoments struct {
	Dipoles     []r3.Vec
	Quadrupoles []Quadrupole
}

//NewLabMoments returns storage for the lab moments of n sites.
func NewLabMoments(n int) *LabMoments {
	return &LabMoments{Dipoles: make([]r3.Vec, n), Quadrupoles: make([]Quadrupole, n)}
}

//Len returns the number of sites.
func (L *LabMoments) Len() int {
	return len(L.Dipoles)
}
