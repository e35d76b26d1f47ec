/*
 * atomstruct_test.go, part of ligan.
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

package ligan

import (
	"errors"
	"testing"

	v3 "github.com/goligan/ligan/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

//small vocabulary used in most tests.
var testChannels = Channels{
	{Name: "C", Element: "C", AtomicRadius: 0.77},
	{Name: "N", Element: "N", AtomicRadius: 0.75},
	{Name: "O", Element: "O", AtomicRadius: 0.73},
}

func mustNew(t *testing.T, vecs [][3]float64, c []int) *AtomStruct {
	t.Helper()
	A, err := New(v3.FromVecs(vecs), c, testChannels, nil, CPU, nil)
	require.NoError(t, err)
	return A
}

func TestNew(t *testing.T) {
	xyz := mat.NewDense(2, 3, []float64{0, 0, 0, 1, 1, 1})
	A, err := New(xyz, []int{0, 2}, testChannels, nil, "", Info{InfoName: "x"})
	require.NoError(t, err)
	assert.Equal(t, 2, A.NAtoms())
	assert.Equal(t, CPU, A.Device())
	assert.Equal(t, "x", A.Info[InfoName])
	assert.Nil(t, A.Bonds)
	// the coordinates are copied.
	xyz.Set(0, 0, 5)
	assert.Equal(t, [3]float64{0, 0, 0}, A.XYZ.Vec(0))
}

func TestNewErrors(t *testing.T) {
	cases := []struct {
		name string
		xyz  mat.Matrix
		c    []int
		b    *BondMatrix
		kind error
	}{
		{"nil", nil, nil, nil, ErrShape},
		{"columns", mat.NewDense(2, 2, nil), []int{0, 0}, nil, ErrShape},
		{"length", v3.Zeros(3), []int{0, 1}, nil, ErrShape},
		{"range", v3.Zeros(2), []int{0, 3}, nil, ErrRange},
		{"negative", v3.Zeros(1), []int{-1}, nil, ErrRange},
		{"bonds", v3.Zeros(2), []int{0, 1}, NewBondMatrix(3), ErrShape},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.xyz, tc.c, testChannels, tc.b, CPU, nil)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.kind), err.Error())
		})
	}
}

func TestEmpty(t *testing.T) {
	A, err := New(v3.Zeros(0), nil, testChannels, nil, CPU, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, A.NAtoms())
	assert.Equal(t, []int{0, 0, 0}, A.TypeCounts())
	_, err = A.Center()
	assert.True(t, errors.Is(err, ErrEmpty))
	_, err = A.Radius()
	assert.True(t, errors.Is(err, ErrEmpty))
}

func TestTypeCounts(t *testing.T) {
	A := mustNew(t, make([][3]float64, 5), []int{0, 2, 2, 1, 2})
	counts := A.TypeCounts()
	assert.Equal(t, []int{1, 1, 3}, counts)
	sum := 0
	for _, v := range counts {
		sum += v
	}
	assert.Equal(t, A.NAtoms(), sum)
	assert.Equal(t, []string{"C", "O", "O", "N", "O"}, A.Elements())
}

func TestCenterRadius(t *testing.T) {
	A := mustNew(t, [][3]float64{{1, 2, 3}}, []int{0})
	c, err := A.Center()
	require.NoError(t, err)
	assert.Equal(t, [3]float64{1, 2, 3}, c.Vec(0))
	r, err := A.Radius()
	require.NoError(t, err)
	assert.Equal(t, 0.0, r)

	A = mustNew(t, [][3]float64{{-2, 0, 0}, {2, 0, 0}, {0, 1, 0}, {0, -1, 0}}, []int{0, 0, 1, 1})
	c, err = A.Center()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0, 0}, c.RawRowView(0), 1e-12)
	r, err = A.Radius()
	require.NoError(t, err)
	assert.InDelta(t, 2.0, r, 1e-12)
}

func TestToDevice(t *testing.T) {
	A := mustNew(t, [][3]float64{{0, 0, 0}, {1, 0, 0}}, []int{0, 1})
	B := A.To("cuda:0")
	assert.Equal(t, Device("cuda:0"), B.Device())
	assert.Equal(t, CPU, A.Device())
	assert.Nil(t, B.Bonds)
	B.XYZ.SetVec(0, [3]float64{9, 9, 9})
	B.C[0] = 2
	assert.Equal(t, [3]float64{0, 0, 0}, A.XYZ.Vec(0))
	assert.Equal(t, 0, A.C[0])

	A.AddBonds(0)
	B = A.To(CPU)
	require.NotNil(t, B.Bonds)
	assert.True(t, B.Bonds.At(0, 1))
	B.Bonds.Set(0, 1, false)
	assert.True(t, A.Bonds.At(0, 1))

	C := A.Copy()
	assert.Equal(t, A.XYZ.Vecs(), C.XYZ.Vecs())
	assert.Contains(t, C.String(), "2 atoms")
}
