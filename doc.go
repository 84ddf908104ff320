/*
 * doc.go, part of gomultipole
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

/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*Package multipole builds the local coordinate frames of atomic multipole sites and
uses them to move quantities between the local and the lab frame.

Each particle carries an axis descriptor: the indexes of up to three neighbor atoms
(z, x and y) and an axis type that tells how the frame is defined from them.


	**Capabilities**


    Builds orthonormal local frames for the z-then-x, bisector, z-bisect,
	3-fold and z-only axis types, including the chirality (parity) check
	of z-then-x sites.

    Rotates local dipoles and traceless quadrupoles into the lab frame.

    Converts lab-frame torques on a site into forces on the site and on the
    atoms defining its frame, so that the forces add up to zero.

    Records induced dipoles from an accumulated field and the atomic polarizabilities.

    Works with or without periodic boundary conditions (rectangular or triclinic boxes).

    The per-particle kernels run concurrently. Forces are accumulated in
    fixed-point, so results do not depend on the number of goroutines used.

    Diagnostics for frame orthonormality, quadrupole trace and force closure.


The subpackage v3 provides the coordinate matrix, fixedpoint the accumulation
buffers, pbc periodic boxes, and mpio reading and writing of systems, torques and results.

*/
package multipole
