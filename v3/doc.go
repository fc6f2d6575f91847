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

/*Package v3 implements a Matrix type representing a set of points in 3D
space as a row-major Nx3 matrix. It is used throughout gonci to hold the
cartesian coordinates of sets of atoms. It is based on gonum's
(gonum.org/v1/gonum/mat) Dense type, with additional restrictions because
of the fixed number of columns, plus a few vector operations that the
geometry code needs. Within the package it is understood that a "vector"
is a row of the matrix, i.e. the cartesian coordinates of one point.*/
package v3
