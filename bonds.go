/*
 * bonds.go, part of gonci.
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

import "gonum.org/v1/gonum/mat"

//DefaultBondTolerance is the slack, in Angstroms, added to the sum of
//covalent radii when deciding whether two atoms are bonded.
const DefaultBondTolerance = 0.3

//DetectBonds computes the covalent bond matrix of the molecule: atoms
//i and j are bonded when their distance is at most the sum of their
//single-bond covalent radii plus the tolerance. If no tolerance is
//given, DefaultBondTolerance is used.
//
//All element symbols are validated against the table before any state
//is touched, so a failed call leaves the molecule unchanged. A
//successful call increases the bond revision and invalidates any
//previously computed fragments.
func (M *Molecule) DetectBonds(table *PeriodicTable, tolerance ...float64) error {
	tol := DefaultBondTolerance
	if len(tolerance) > 0 {
		tol = tolerance[0]
	}
	n := len(M.atoms)
	radii := make([]float64, n)
	for i, at := range M.atoms {
		r, err := table.CovalentRadius(at.Symbol)
		if err != nil {
			return errDecorate(err, "DetectBonds")
		}
		radii[i] = r
	}
	bonds := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d, err := M.Distance(i, j)
			if err != nil {
				return errDecorate(err, "DetectBonds")
			}
			if d <= radii[i]+radii[j]+tol {
				bonds.SetSym(i, j, 1)
			}
		}
	}
	M.bonds = bonds
	M.bondRev++
	M.frags = nil
	M.fragOf = nil
	return nil
}
