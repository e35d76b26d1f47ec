/*
 * bonds_test.go, part of ligan.
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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBondMatrix(t *testing.T) {
	B := NewBondMatrix(4)
	assert.Equal(t, 4, B.Len())
	B.Set(0, 2, true)
	B.Set(3, 2, true)
	assert.True(t, B.At(2, 0))
	assert.True(t, B.At(2, 3))
	assert.False(t, B.At(0, 1))
	assert.Equal(t, 2, B.Count())
	assert.Equal(t, []int{0, 3}, B.Neighbors(2))
	assert.Empty(t, B.Neighbors(1))

	C := B.Copy()
	C.Set(0, 2, false)
	assert.True(t, B.At(0, 2))
	assert.Equal(t, 1, C.Count())

	assert.Panics(t, func() { B.At(4, 0) })
	assert.Panics(t, func() { B.Set(-1, 0, true) })
}

func TestAddBonds(t *testing.T) {
	//0-1 at 1.5 A (bonded), 2 far away.
	A := mustNew(t, [][3]float64{{0, 0, 0}, {1.5, 0, 0}, {10, 0, 0}}, []int{0, 0, 2})
	A.AddBonds(0)
	require.NotNil(t, A.Bonds)
	B := A.Bonds
	assert.True(t, B.At(0, 1))
	assert.False(t, B.At(0, 2))
	assert.False(t, B.At(1, 2))
	for i := 0; i < 3; i++ {
		assert.False(t, B.At(i, i), "self bond %d", i)
		for j := 0; j < 3; j++ {
			assert.Equal(t, B.At(i, j), B.At(j, i))
		}
	}
	assert.Equal(t, 1, B.Count())

	frags, err := A.Fragments()
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1}, {2}}, frags)
	n, err := A.NFragments()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	g, err := A.Graph()
	require.NoError(t, err)
	assert.Equal(t, 3, g.Nodes().Len())
	assert.True(t, g.HasEdgeBetween(0, 1))
	assert.False(t, g.HasEdgeBetween(1, 2))
}

func TestAddBondsTolerance(t *testing.T) {
	//(0.77+0.77)^2 = 2.3716 < 1.6^2 = 2.56 < 2.3716+0.5^2
	A := mustNew(t, [][3]float64{{0, 0, 0}, {1.6, 0, 0}}, []int{0, 0})
	A.AddBonds(0)
	assert.False(t, A.Bonds.At(0, 1))
	A.AddBonds(0.5)
	assert.True(t, A.Bonds.At(0, 1))
}

func TestBondsRequired(t *testing.T) {
	A := mustNew(t, [][3]float64{{0, 0, 0}}, []int{0})
	_, err := A.Graph()
	assert.True(t, errors.Is(err, ErrNoBonds))
	_, err = A.Fragments()
	assert.True(t, errors.Is(err, ErrNoBonds))
	_, err = A.ToMolecule()
	assert.True(t, errors.Is(err, ErrNoBonds))
	_, err = A.ToGraph()
	assert.True(t, errors.Is(err, ErrNoBonds))
	err = A.ToSDF(t.TempDir() + "/x.sdf")
	assert.True(t, errors.Is(err, ErrNoBonds))
}
