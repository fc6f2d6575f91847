/*
 * geometry.go, part of gonci.
 *
 * Copyright 2025 The gonci developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package gonci

import (
	"math"

	"gonci/v3"
)

const appzero float64 = 0.0000001 //used to correct floating point zeros

//Deg2Rad is a multiplication factor to transform degrees to radians.
const Deg2Rad = math.Pi / 180.0

//Rad2Deg is a multiplication factor to transform radians to degrees.
const Rad2Deg = 180.0 / math.Pi

//Distance returns the euclidean distance, in Angstroms, between atoms
//i and j. It returns a GeometryError if i and j are the same atom.
func (M *Molecule) Distance(i, j int) (float64, error) {
	if i == j {
		return 0, NewGeometryError("Distance: atom %d measured against itself", i)
	}
	d := v3.Zeros(1)
	d.Sub(M.Coord(j), M.Coord(i))
	return d.Norm(2), nil
}

//Angle returns the angle, in degrees, formed at atom j by atoms i, j
//and k. The result is in [0,180]. It returns a GeometryError if the
//three indexes are not distinct or either bond vector has (near) zero
//length.
func (M *Molecule) Angle(i, j, k int) (float64, error) {
	if i == j || j == k || i == k {
		return 0, NewGeometryError("Angle: indexes %d %d %d are not distinct", i, j, k)
	}
	v1 := v3.Zeros(1)
	v2 := v3.Zeros(1)
	v1.Sub(M.Coord(i), M.Coord(j))
	v2.Sub(M.Coord(k), M.Coord(j))
	n1 := v1.Norm(2)
	n2 := v2.Norm(2)
	if n1 <= appzero || n2 <= appzero {
		return 0, NewGeometryError("Angle: degenerate geometry at atoms %d %d %d", i, j, k)
	}
	cos := v1.Dot(v2) / (n1 * n2)
	//floating point can push the cosine just outside [-1,1]
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos) * Rad2Deg, nil
}

//Dihedral returns the dihedral angle, in degrees, defined by atoms
//i, j, k and l, around the j-k axis. The result is in (-180,180]. It
//returns a GeometryError if the indexes are not distinct or if three
//consecutive atoms are (near) collinear, which leaves the torsion
//undefined.
func (M *Molecule) Dihedral(i, j, k, l int) (float64, error) {
	ix := []int{i, j, k, l}
	for a := 0; a < len(ix); a++ {
		for b := a + 1; b < len(ix); b++ {
			if ix[a] == ix[b] {
				return 0, NewGeometryError("Dihedral: indexes %d %d %d %d are not distinct", i, j, k, l)
			}
		}
	}
	b1 := v3.Zeros(1)
	b2 := v3.Zeros(1)
	b3 := v3.Zeros(1)
	b1.Sub(M.Coord(i), M.Coord(j))
	b2.Sub(M.Coord(k), M.Coord(j))
	b3.Sub(M.Coord(l), M.Coord(k))
	n1 := v3.Zeros(1)
	n2 := v3.Zeros(1)
	n1.Cross(b1, b2)
	n2.Cross(b2, b3)
	if n1.Norm(2) <= appzero || n2.Norm(2) <= appzero {
		return 0, NewGeometryError("Dihedral: collinear atoms among %d %d %d %d", i, j, k, l)
	}
	n1.Unit(n1)
	n2.Unit(n2)
	ub2 := v3.Zeros(1)
	ub2.Unit(b2)
	m1 := v3.Zeros(1)
	m1.Cross(n1, ub2)
	x := n1.Dot(n2)
	y := m1.Dot(n2)
	dihedral := math.Atan2(y, x) * Rad2Deg
	if dihedral <= -180 {
		dihedral += 360
	}
	return dihedral, nil
}
