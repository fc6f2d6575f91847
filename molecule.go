/*
 * molecule.go, part of gonci.
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
	"gonum.org/v1/gonum/mat"

	"gonci/v3"
)

//Atom contains the per-atom information that does not depend on any
//other atom. The coordinates live separately, in the Molecule, so
//geometry can be operated on as a whole.
type Atom struct {
	//Symbol is the element symbol, with conventional capitalization
	//("Br", not "BR").
	Symbol string
	//Charge is the partial charge read from the input, if any.
	Charge float64
}

//Molecule is a set of atoms, their cartesian coordinates, and the
//derived state computed from them: the covalent bond matrix and the
//partition into fragments. Derived state is computed on demand and
//invalidated when the state it was derived from changes.
type Molecule struct {
	//Title is the free-form description line of the structure, as
	//read from the input file.
	Title string

	atoms  []*Atom
	coords *v3.Matrix

	bonds   *mat.SymDense
	bondRev int

	frags  map[int][]int
	fragOf []int
}

//NewMolecule builds a Molecule from atoms and their coordinates. The
//coordinate matrix must have exactly one vector per atom.
func NewMolecule(title string, atoms []*Atom, coords *v3.Matrix) (*Molecule, error) {
	if coords == nil || len(atoms) != coords.NVecs() {
		n := 0
		if coords != nil {
			n = coords.NVecs()
		}
		return nil, NewStateError("NewMolecule: %d atoms but %d coordinate vectors", len(atoms), n)
	}
	return &Molecule{Title: title, atoms: atoms, coords: coords}, nil
}

//Len returns the number of atoms in the molecule.
func (M *Molecule) Len() int {
	return len(M.atoms)
}

//Atom returns the ith atom. It panics if i is out of range.
func (M *Molecule) Atom(i int) *Atom {
	return M.atoms[i]
}

//Coords returns the coordinate matrix of the molecule. The matrix is
//shared with the molecule, not copied.
func (M *Molecule) Coords() *v3.Matrix {
	return M.coords
}

//Coord returns a view of the coordinates of the ith atom. It panics if
//i is out of range.
func (M *Molecule) Coord(i int) *v3.Matrix {
	return M.coords.VecView(i)
}

//HasBonds reports whether covalent bonds have been detected for the
//current coordinates.
func (M *Molecule) HasBonds() bool {
	return M.bonds != nil
}

//BondRevision returns a counter that increases every time the bonds of
//the molecule are (re)detected. Consumers holding state derived from
//the bond graph can compare revisions to notice that their state went
//stale.
func (M *Molecule) BondRevision() int {
	return M.bondRev
}

//Bonded reports whether atoms i and j are covalently bonded. It returns
//a StateError if the bonds have not been detected.
func (M *Molecule) Bonded(i, j int) (bool, error) {
	if M.bonds == nil {
		return false, NewStateError("Bonded: bonds not yet detected")
	}
	if i == j {
		return false, nil
	}
	return M.bonds.At(i, j) != 0, nil
}

//Neighbors returns the indexes of the atoms covalently bonded to atom
//i, in ascending order. It returns a StateError if the bonds have not
//been detected.
func (M *Molecule) Neighbors(i int) ([]int, error) {
	if M.bonds == nil {
		return nil, NewStateError("Neighbors: bonds not yet detected")
	}
	var nbr []int
	for j := 0; j < len(M.atoms); j++ {
		if j != i && M.bonds.At(i, j) != 0 {
			nbr = append(nbr, j)
		}
	}
	return nbr, nil
}

//BondCount returns the total number of covalent bonds. It returns a
//StateError if the bonds have not been detected.
func (M *Molecule) BondCount() (int, error) {
	if M.bonds == nil {
		return 0, NewStateError("BondCount: bonds not yet detected")
	}
	n := 0
	for i := 0; i < len(M.atoms); i++ {
		for j := i + 1; j < len(M.atoms); j++ {
			if M.bonds.At(i, j) != 0 {
				n++
			}
		}
	}
	return n, nil
}

//Fragments returns the partition of the molecule into covalently
//connected fragments, as a map from 1-based fragment id to the
//ascending list of member atom indexes. The map is the molecule's own,
//callers must not modify it. It returns a StateError if the fragments
//have not been computed, or were invalidated by a bond re-detection.
func (M *Molecule) Fragments() (map[int][]int, error) {
	if M.frags == nil {
		return nil, NewStateError("Fragments: fragments not yet computed")
	}
	return M.frags, nil
}

//FragmentOf returns the 1-based id of the fragment containing atom i.
//It returns a StateError if the fragments have not been computed.
func (M *Molecule) FragmentOf(i int) (int, error) {
	if M.fragOf == nil {
		return 0, NewStateError("FragmentOf: fragments not yet computed")
	}
	return M.fragOf[i], nil
}
