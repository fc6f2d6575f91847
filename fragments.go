/*
 * fragments.go, part of gonci.
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
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

//FindFragments partitions the molecule into its covalently connected
//components. Every atom belongs to exactly one fragment, an isolated
//atom forms a fragment of size one. Fragment ids are 1-based and
//assigned deterministically: fragments are numbered by their lowest
//member atom index, and member lists are in ascending order.
//
//It returns a StateError if the bonds have not been detected.
func (M *Molecule) FindFragments() error {
	if M.bonds == nil {
		return NewStateError("FindFragments: bonds not yet detected")
	}
	n := len(M.atoms)
	g := simple.NewUndirectedGraph()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(i))
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if M.bonds.At(i, j) != 0 {
				g.SetEdge(simple.Edge{F: simple.Node(i), T: simple.Node(j)})
			}
		}
	}
	comps := topo.ConnectedComponents(g)
	members := make([][]int, 0, len(comps))
	for _, comp := range comps {
		atoms := make([]int, 0, len(comp))
		for _, node := range comp {
			atoms = append(atoms, int(node.ID()))
		}
		sort.Ints(atoms)
		members = append(members, atoms)
	}
	sort.Slice(members, func(a, b int) bool { return members[a][0] < members[b][0] })
	frags := make(map[int][]int, len(members))
	fragOf := make([]int, n)
	for id, atoms := range members {
		frags[id+1] = atoms
		for _, at := range atoms {
			fragOf[at] = id + 1
		}
	}
	M.frags = frags
	M.fragOf = fragOf
	return nil
}
