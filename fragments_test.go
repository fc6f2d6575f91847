/*
 * fragments_test.go, part of gonci.
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
	"reflect"
	"testing"
)

func TestFindFragmentsOrder(Te *testing.T) {
	mol, err := XYZRead("test/cbr4_urea.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	if err := mol.FindFragments(); !IsStateError(err) {
		Te.Fatalf("fragments before bonds: got %v, want StateError", err)
	}
	table := DefaultPeriodicTable()
	if err := mol.DetectBonds(table); err != nil {
		Te.Fatal(err)
	}
	if err := mol.FindFragments(); err != nil {
		Te.Fatal(err)
	}
	frags, err := mol.Fragments()
	if err != nil {
		Te.Fatal(err)
	}
	want := map[int][]int{
		1: {0, 1, 2, 3, 4},
		2: {5, 6, 7, 8, 9, 10, 11, 12},
	}
	if !reflect.DeepEqual(frags, want) {
		Te.Errorf("got fragments %v, want %v", frags, want)
	}
	//every atom belongs to exactly one fragment, and FragmentOf agrees
	//with the member lists
	seen := make(map[int]int)
	for id, atoms := range frags {
		for _, at := range atoms {
			if prev, dup := seen[at]; dup {
				Te.Errorf("atom %d in fragments %d and %d", at, prev, id)
			}
			seen[at] = id
			f, err := mol.FragmentOf(at)
			if err != nil {
				Te.Fatal(err)
			}
			if f != id {
				Te.Errorf("FragmentOf(%d) = %d, member list says %d", at, f, id)
			}
		}
	}
	if len(seen) != mol.Len() {
		Te.Errorf("partition covers %d atoms, molecule has %d", len(seen), mol.Len())
	}
}

func TestFindFragmentsDeterministic(Te *testing.T) {
	mol, err := XYZRead("test/cbr4_urea.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	if err := mol.DetectBonds(DefaultPeriodicTable()); err != nil {
		Te.Fatal(err)
	}
	if err := mol.FindFragments(); err != nil {
		Te.Fatal(err)
	}
	first, _ := mol.Fragments()
	for run := 0; run < 5; run++ {
		if err := mol.FindFragments(); err != nil {
			Te.Fatal(err)
		}
		again, _ := mol.Fragments()
		if !reflect.DeepEqual(first, again) {
			Te.Fatalf("run %d: fragments changed: %v vs %v", run, first, again)
		}
	}
}

func TestFindFragmentsSingle(Te *testing.T) {
	mol, err := XYZRead("test/methanol.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	if err := mol.DetectBonds(DefaultPeriodicTable()); err != nil {
		Te.Fatal(err)
	}
	n, err := mol.BondCount()
	if err != nil {
		Te.Fatal(err)
	}
	if n != 5 {
		Te.Errorf("methanol: got %d bonds, want 5", n)
	}
	if err := mol.FindFragments(); err != nil {
		Te.Fatal(err)
	}
	frags, _ := mol.Fragments()
	if len(frags) != 1 {
		Te.Errorf("methanol: got %d fragments, want 1", len(frags))
	}
	if len(frags[1]) != mol.Len() {
		Te.Errorf("single fragment should hold all %d atoms, got %v", mol.Len(), frags[1])
	}
}

func TestFindFragmentsIsolatedAtoms(Te *testing.T) {
	//three far-apart oxygens, each its own fragment
	mol := makeMol(Te, []string{"O", "O", "O"}, []float64{
		0, 0, 0,
		10, 0, 0,
		20, 0, 0,
	})
	if err := mol.DetectBonds(DefaultPeriodicTable()); err != nil {
		Te.Fatal(err)
	}
	if err := mol.FindFragments(); err != nil {
		Te.Fatal(err)
	}
	frags, _ := mol.Fragments()
	want := map[int][]int{1: {0}, 2: {1}, 3: {2}}
	if !reflect.DeepEqual(frags, want) {
		Te.Errorf("got fragments %v, want %v", frags, want)
	}
}
