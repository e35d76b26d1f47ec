/*
 * bonds.go, part of ligan.
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
	"fmt"
	"sort"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

//BondMatrix is a symmetric NxN boolean adjacency matrix.
//Out of range indexes are programming errors, and cause a panic.
type BondMatrix struct {
	n    int
	data []bool
}

//NewBondMatrix returns an nxn matrix with no bonds.
func NewBondMatrix(n int) *BondMatrix {
	if n < 0 {
		panic(fmt.Sprintf("ligan: negative bond matrix size %d", n))
	}
	return &BondMatrix{n: n, data: make([]bool, n*n)}
}

func (B *BondMatrix) check(i, j int) {
	if i < 0 || j < 0 || i >= B.n || j >= B.n {
		panic(fmt.Sprintf("ligan: bond (%d, %d) out of range for %d atoms", i, j, B.n))
	}
}

//Len returns the number of atoms of the matrix.
func (B *BondMatrix) Len() int {
	return B.n
}

//At returns whether atoms i and j are bonded.
func (B *BondMatrix) At(i, j int) bool {
	B.check(i, j)
	return B.data[i*B.n+j]
}

//Set sets the bond between i and j, in both directions.
func (B *BondMatrix) Set(i, j int, bonded bool) {
	B.check(i, j)
	B.data[i*B.n+j] = bonded
	B.data[j*B.n+i] = bonded
}

//Count returns the number of bonded pairs, each pair counted once.
func (B *BondMatrix) Count() int {
	var diag, tot int
	for i := 0; i < B.n; i++ {
		for j := 0; j < B.n; j++ {
			if B.data[i*B.n+j] {
				if i == j {
					diag++
				} else {
					tot++
				}
			}
		}
	}
	return diag + tot/2
}

//Neighbors returns, in increasing order, the atoms bonded to i.
func (B *BondMatrix) Neighbors(i int) []int {
	B.check(i, i)
	ret := make([]int, 0, 4)
	for j := 0; j < B.n; j++ {
		if j != i && B.data[i*B.n+j] {
			ret = append(ret, j)
		}
	}
	return ret
}

//Copy returns a deep copy of B.
func (B *BondMatrix) Copy() *BondMatrix {
	ret := &BondMatrix{n: B.n, data: make([]bool, len(B.data))}
	copy(ret.data, B.data)
	return ret
}

//AddBonds assigns bonds from the interatomic distances, replacing any existing bonds.
//Atoms i and j are bonded if d(i,j)^2 < (ri+rj)^2+tol^2, where ri and rj are the radii of the
//channels of the atoms. An atom is never bonded to itself.
//The algorithm is quadratic in the number of atoms.
func (A *AtomStruct) AddBonds(tol float64) {
	n := A.NAtoms()
	B := NewBondMatrix(n)
	radii := make([]float64, n)
	for i, c := range A.C {
		radii[i] = A.Channels[c].AtomicRadius
	}
	tol2 := tol * tol
	for i := 0; i < n; i++ {
		ci := A.XYZ.RawRowView(i)
		for j := i + 1; j < n; j++ {
			d := floats.Distance(ci, A.XYZ.RawRowView(j), 2)
			cut := radii[i] + radii[j]
			if d*d < cut*cut+tol2 {
				B.Set(i, j, true)
			}
		}
	}
	A.Bonds = B
	logger.Debug("bonds assigned", zap.Int("atoms", n), zap.Int("bonds", B.Count()), zap.Float64("tolerance", tol))
}

//Graph returns an undirected graph where node i is atom i and edges are bonds.
//It returns an error wrapping ErrNoBonds if the structure has no bond matrix.
func (A *AtomStruct) Graph() (*simple.UndirectedGraph, error) {
	if A.Bonds == nil {
		return nil, newCError(ErrNoBonds, A.Info[InfoSrcFile], "Graph", "bonds have not been assigned")
	}
	g := simple.NewUndirectedGraph()
	n := A.NAtoms()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(i))
	}
	for i := 0; i < n; i++ {
		for _, j := range A.Bonds.Neighbors(i) {
			if j > i {
				g.SetEdge(simple.Edge{F: simple.Node(i), T: simple.Node(j)})
			}
		}
	}
	return g, nil
}

//Fragments returns the covalently connected fragments of the structure as slices of atom
//indexes. Each slice is sorted, and the fragments are sorted by their first atom.
func (A *AtomStruct) Fragments() ([][]int, error) {
	g, err := A.Graph()
	if err != nil {
		return nil, errDecorate(err, "Fragments")
	}
	cc := topo.ConnectedComponents(g)
	ret := make([][]int, 0, len(cc))
	for _, nodes := range cc {
		frag := make([]int, len(nodes))
		for i, v := range nodes {
			frag[i] = int(v.ID())
		}
		sort.Ints(frag)
		ret = append(ret, frag)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i][0] < ret[j][0] })
	return ret, nil
}

//NFragments returns the number of covalently connected fragments in the structure.
func (A *AtomStruct) NFragments() (int, error) {
	f, err := A.Fragments()
	if err != nil {
		return 0, errDecorate(err, "NFragments")
	}
	return len(f), nil
}
