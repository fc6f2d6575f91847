/*
 * geometry_test.go, part of gonci.
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
	"testing"

	"gonci/v3"
)

//makeMol builds a molecule from symbols and flat coordinates, failing
//the test on any construction error.
func makeMol(Te *testing.T, symbols []string, coords []float64) *Molecule {
	Te.Helper()
	atoms := make([]*Atom, len(symbols))
	for i, s := range symbols {
		atoms[i] = &Atom{Symbol: s}
	}
	m, err := v3.NewMatrix(coords)
	if err != nil {
		Te.Fatal(err)
	}
	mol, err := NewMolecule("test molecule", atoms, m)
	if err != nil {
		Te.Fatal(err)
	}
	return mol
}

func TestDistance(Te *testing.T) {
	mol := makeMol(Te, []string{"O", "H"}, []float64{
		0, 0, 0,
		0.9572, 0, 0,
	})
	d, err := mol.Distance(0, 1)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(d-0.9572) > 1e-10 {
		Te.Errorf("got O-H distance %v, want 0.9572", d)
	}
	d2, err := mol.Distance(1, 0)
	if err != nil {
		Te.Fatal(err)
	}
	if d != d2 {
		Te.Errorf("distance not symmetric: %v vs %v", d, d2)
	}
	_, err = mol.Distance(1, 1)
	if !IsGeometryError(err) {
		Te.Errorf("self distance: got %v, want GeometryError", err)
	}
}

func TestAngle(Te *testing.T) {
	mol := makeMol(Te, []string{"H", "O", "H", "H"}, []float64{
		1, 0, 0,
		0, 0, 0,
		0, 1, 0,
		0, 0, 0, //coincides with the vertex
	})
	ang, err := mol.Angle(0, 1, 2)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(ang-90) > 1e-9 {
		Te.Errorf("got angle %v, want 90", ang)
	}
	//straight line
	mol2 := makeMol(Te, []string{"C", "C", "C"}, []float64{
		-1, 0, 0,
		0, 0, 0,
		1, 0, 0,
	})
	ang, err = mol2.Angle(0, 1, 2)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(ang-180) > 1e-9 {
		Te.Errorf("got angle %v, want 180", ang)
	}
	if _, err = mol.Angle(0, 1, 1); !IsGeometryError(err) {
		Te.Errorf("repeated index: got %v, want GeometryError", err)
	}
	if _, err = mol.Angle(0, 1, 3); !IsGeometryError(err) {
		Te.Errorf("zero-length leg: got %v, want GeometryError", err)
	}
}

func TestDihedral(Te *testing.T) {
	//i, j, k fixed, l moves around the j-k axis
	cases := []struct {
		l    []float64
		want float64
	}{
		{[]float64{-1, 1, 0}, 0},
		{[]float64{1, 1, 0}, 180},
		{[]float64{0, 1, 1}, -90},
		{[]float64{0, 1, -1}, 90},
	}
	for _, c := range cases {
		coords := []float64{
			1, 0, 0,
			0, 0, 0,
			0, 1, 0,
		}
		coords = append(coords, c.l...)
		mol := makeMol(Te, []string{"C", "C", "C", "C"}, coords)
		d, err := mol.Dihedral(0, 1, 2, 3)
		if err != nil {
			Te.Fatal(err)
		}
		if math.Abs(d-c.want) > 1e-9 {
			Te.Errorf("l=%v: got dihedral %v, want %v", c.l, d, c.want)
		}
		if d <= -180 || d > 180 {
			Te.Errorf("dihedral %v outside (-180,180]", d)
		}
	}
	//collinear i, j, k leaves the torsion undefined
	lin := makeMol(Te, []string{"C", "C", "C", "C"}, []float64{
		-1, 0, 0,
		0, 0, 0,
		1, 0, 0,
		2, 1, 0,
	})
	if _, err := lin.Dihedral(0, 1, 2, 3); !IsGeometryError(err) {
		Te.Errorf("collinear atoms: got %v, want GeometryError", err)
	}
	mol := makeMol(Te, []string{"C", "C", "C", "C"}, []float64{
		1, 0, 0,
		0, 0, 0,
		0, 1, 0,
		0, 1, 1,
	})
	if _, err := mol.Dihedral(0, 1, 2, 2); !IsGeometryError(err) {
		Te.Errorf("repeated index: got %v, want GeometryError", err)
	}
}
