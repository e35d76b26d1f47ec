/*
 * gonum.go, part of ligan.
 *
 * Copyright 2024 The ligan Authors
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

//gonum.go contains the Matrix type and the glue with gonum's mat package.

package v3

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

const cols int = 3

//Matrix is a set of vectors in 3D space, backed by a row-major gonum Dense.
//Within the package it is understood that a "vector" is a row vector, i.e. the
//cartesian coordinates of a point in 3D space.
//A Matrix with zero vectors has a nil Dense. Use the methods of Matrix
//(Dims, NVecs, Vec) rather than the embedded Dense ones if the matrix could be empty.
type Matrix struct {
	*mat.Dense
}

//Dense2Matrix wraps A, which must have 3 columns, in a Matrix. No data is copied.
func Dense2Matrix(A *mat.Dense) *Matrix {
	if _, c := A.Dims(); c != cols {
		panic(ErrNotXx3Matrix)
	}
	return &Matrix{A}
}

//Matrix2Dense returns the underlying Dense of A. It is nil for an empty matrix.
func Matrix2Dense(A *Matrix) *mat.Dense {
	return A.Dense
}

//NewMatrix generates and returns a Matrix with 3 columns from data. data is used as the
//backing slice, not copied.
func NewMatrix(data []float64) (*Matrix, error) {
	l := len(data)
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("Input slice length %d not divisible by %d", l, cols), []string{"NewMatrix"}, true}
	}
	if l == 0 {
		return &Matrix{}, nil
	}
	return &Matrix{mat.NewDense(l/cols, cols, data)}, nil
}

//Zeros returns a zero-filled Matrix with vecs vectors.
func Zeros(vecs int) *Matrix {
	if vecs < 0 {
		panic(ErrShape)
	}
	if vecs == 0 {
		return &Matrix{}
	}
	return &Matrix{mat.NewDense(vecs, cols, nil)}
}

//FromVecs returns a new Matrix with a copy of the given vectors.
func FromVecs(vecs [][3]float64) *Matrix {
	F := Zeros(len(vecs))
	for i, v := range vecs {
		F.SetVec(i, v)
	}
	return F
}

//FromMat copies any gonum matrix with 3 columns into a new Matrix.
//It returns an error if A is nil or doesn't have 3 columns.
func FromMat(A mat.Matrix) (*Matrix, error) {
	if A == nil {
		return nil, Error{"Given nil matrix", []string{"FromMat"}, true}
	}
	if M, ok := A.(*Matrix); ok {
		if M == nil {
			return nil, Error{"Given nil matrix", []string{"FromMat"}, true}
		}
		return M.Clone(), nil
	}
	r, c := A.Dims()
	if c != cols {
		return nil, Error{fmt.Sprintf("Matrix has %d columns, 3 expected", c), []string{"FromMat"}, true}
	}
	if r == 0 {
		return &Matrix{}, nil
	}
	return &Matrix{mat.DenseCopyOf(A)}, nil
}

//Dims returns the dimensions of the matrix. It works for empty matrices.
func (F *Matrix) Dims() (int, int) {
	if F.Dense == nil {
		return 0, cols
	}
	return F.Dense.Dims()
}

//NVecs returns the number of vectors in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != cols {
		panic(ErrNotXx3Matrix)
	}
	return r
}

//Len is the same as NVecs.
func (F *Matrix) Len() int {
	return F.NVecs()
}

//Vec returns a copy of the ith vector of F.
func (F *Matrix) Vec(i int) [3]float64 {
	if i < 0 || i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	row := F.Dense.RawRowView(i)
	return [3]float64{row[0], row[1], row[2]}
}

//SetVec sets the ith vector of F to v.
func (F *Matrix) SetVec(i int, v [3]float64) {
	if i < 0 || i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	copy(F.Dense.RawRowView(i), v[:])
}

//VecView returns view of the given vector of the matrix. Changes in the view are
//reflected in F and vice versa.
func (F *Matrix) VecView(i int) *Matrix {
	if i < 0 || i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	r := F.Dense.Slice(i, i+1, 0, cols).(*mat.Dense)
	return &Matrix{r}
}

//Vecs returns a copy of the contents of F as a slice of vectors.
func (F *Matrix) Vecs() [][3]float64 {
	ret := make([][3]float64, F.NVecs())
	for i := range ret {
		ret[i] = F.Vec(i)
	}
	return ret
}

//Clone returns a deep copy of F.
func (F *Matrix) Clone() *Matrix {
	if F.Dense == nil {
		return &Matrix{}
	}
	return &Matrix{mat.DenseCopyOf(F.Dense)}
}

//String returns a neat string representation of a Matrix
func (F *Matrix) String() string {
	r := F.NVecs()
	if r == 0 {
		return "[ ]"
	}
	v := make([]string, 0, r)
	for i := 0; i < r; i++ {
		row := F.Vec(i)
		v = append(v, fmt.Sprintf("%8.3f %8.3f %8.3f", row[0], row[1], row[2]))
	}
	return "[" + strings.Join(v, "\n ") + " ]"
}

//Errors

//Error is the error type of the package. It satisfies the decorable error interface
//used in the rest of the library.
type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err Error) Error() string {
	return "v3: " + err.message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical return whether the error is critical or it can be ignored
func (err Error) Critical() bool { return err.critical }

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix    = PanicMsg("v3: A Matrix should have 3 columns")
	ErrShape           = PanicMsg("v3: Dimension mismatch")
	ErrIndexOutOfRange = PanicMsg("v3: index out of range")
)
