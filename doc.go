/*
 * doc.go, part of gonci.
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

/*Package gonci analyzes 3D molecular structures. From a set of atoms
and their cartesian coordinates it derives the covalent bond graph,
partitions the structure into covalently connected fragments, and
measures distances, angles and dihedrals. The nci subpackage searches
the structure for non-covalent interactions (hydrogen bonds, halogen
and chalcogen bonds, steric clashes) with a pluggable set of detectors.

Structures are read from XYZ files, optionally gzip- or
zstd-compressed. All distances are in Angstroms and all angles in
degrees.*/
package gonci
