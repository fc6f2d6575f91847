/*
 * v3.go, part of gonci.
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

package v3

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

//Matrix is a set of vectors in 3D space, implemented as an Nx3 row-major
//dense matrix. It must be able to implement any gonum matrix interface.
type Matrix struct {
	*mat.Dense
}

//Matrix2Dense returns the gonum Dense matrix underlying A.
func Matrix2Dense(A *Matrix) *mat.Dense {
	return A.Dense
}

//Dense2Matrix wraps a gonum Dense matrix, which must have 3 columns,
//into a Matrix.
func Dense2Matrix(A *mat.Dense) *Matrix {
	_, c := A.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return &Matrix{A}
}

//NewMatrix generates and returns a Matrix with 3 columns from data.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("input slice length %d not divisible by %d", l, cols), []string{"NewMatrix"}}
	}
	r := mat.NewDense(rows, cols, data)
	return &Matrix{r}, nil
}

//Zeros returns a zero-filled Matrix with vecs vectors.
func Zeros(vecs int) *Matrix {
	return &Matrix{mat.NewDense(vecs, 3, nil)}
}

//VecView returns a view of the ith vector of the matrix. Changes in the
//view are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

//View returns a view of F starting from i,j and spanning r rows and
//c columns. Changes in the view are reflected in F and vice-versa.
func (F *Matrix) View(i, j, r, c int) *Matrix {
	ret := F.Dense.Slice(i, i+r, j, j+c).(*mat.Dense)
	return &Matrix{ret}
}

//NVecs returns the number of vectors in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

//Len returns the number of vectors in F. It is equivalent to NVecs and
//exists to satisfy interfaces that expect a Len method.
func (F *Matrix) Len() int {
	return F.NVecs()
}

//Copy copies A into the receiver. Both matrices must have the same
//number of vectors.
func (F *Matrix) Copy(A *Matrix) {
	F.Dense.Copy(A.Dense)
}

//Add puts in F the element-wise sum of A and B. All matrices must have
//the same number of vectors.
func (F *Matrix) Add(A, B *Matrix) {
	F.Dense.Add(A.Dense, B.Dense)
}

//Sub puts in F the element-wise difference A-B. All matrices must have
//the same number of vectors.
func (F *Matrix) Sub(A, B *Matrix) {
	F.Dense.Sub(A.Dense, B.Dense)
}

//Scale puts in F the matrix A scaled by v.
func (F *Matrix) Scale(v float64, A *Matrix) {
	F.Dense.Scale(v, A.Dense)
}

//SomeVecs puts in F the vectors of A whose indexes are given in list,
//in the given order. F must have len(list) vectors.
func (F *Matrix) SomeVecs(A *Matrix, list []int) {
	if F.NVecs() != len(list) || A.NVecs() < len(list) {
		panic(ErrShape)
	}
	for k, j := range list {
		for c := 0; c < 3; c++ {
			F.Set(k, c, A.At(j, c))
		}
	}
}

//Cross puts the cross product of the first vecs of a and b in the first
//vec of F. Panics on dimension mismatch.
func (F *Matrix) Cross(a, b *Matrix) {
	if a.NVecs() < 1 || b.NVecs() < 1 || F.NVecs() < 1 {
		panic(ErrNoCrossProduct)
	}
	x := a.At(0, 1)*b.At(0, 2) - a.At(0, 2)*b.At(0, 1)
	y := a.At(0, 2)*b.At(0, 0) - a.At(0, 0)*b.At(0, 2)
	z := a.At(0, 0)*b.At(0, 1) - a.At(0, 1)*b.At(0, 0)
	F.Set(0, 0, x)
	F.Set(0, 1, y)
	F.Set(0, 2, z)
}

//Dot returns the dot product between the first vecs of F and B.
func (F *Matrix) Dot(B *Matrix) float64 {
	if F.NVecs() < 1 || B.NVecs() < 1 {
		panic(ErrNotEnoughElements)
	}
	var d float64
	for c := 0; c < 3; c++ {
		d += F.At(0, c) * B.At(0, c)
	}
	return d
}

//Norm returns the Frobenius norm of F when i is 2. Only the Frobenius
//norm is supported. For a single vector this is the Euclidean norm.
func (F *Matrix) Norm(i int) float64 {
	if i != 2 {
		panic(ErrNorm)
	}
	r, _ := F.Dims()
	var n float64
	for k := 0; k < r; k++ {
		for c := 0; c < 3; c++ {
			v := F.At(k, c)
			n += v * v
		}
	}
	return math.Sqrt(n)
}

//Unit puts in F the first vec of A scaled to unit norm. Panics if A has
//norm zero.
func (F *Matrix) Unit(A *Matrix) {
	n := A.Norm(2)
	if n == 0 {
		panic(ErrShape)
	}
	F.Scale(1.0/n, A)
}

//Error is the v3 implementation of the gonci Error interface.
type Error struct {
	message string
	deco    []string
}

//Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

//Decorate adds the dec string to the decoration slice of strings of the
//error, and returns the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//PanicMsg is a message used for panics. It satisfies the error
//interface, but for recoverable conditions use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix      = PanicMsg("gonci/v3: a Matrix must have 3 columns")
	ErrNoCrossProduct    = PanicMsg("gonci/v3: invalid matrix for cross product")
	ErrNotEnoughElements = PanicMsg("gonci/v3: not enough elements in Matrix")
	ErrShape             = PanicMsg("gonci/v3: dimension mismatch")
	ErrNorm              = PanicMsg("gonci/v3: only the Frobenius norm (2) is supported")
)
