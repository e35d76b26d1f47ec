/*
 * conversion.go, part of ligan.
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
	"math"

	"github.com/goligan/ligan/sdf"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/graph/simple"
)

//ToMolecule returns an SDF molecule with the atoms of A, the elements of their channels,
//a single conformer with the coordinates of A and a single bond for each bonded pair.
//It returns an error wrapping ErrNoBonds if A has no bonds.
func (A *AtomStruct) ToMolecule() (*sdf.Molecule, error) {
	if A.Bonds == nil {
		return nil, newCError(ErrNoBonds, A.Info[InfoSrcFile], "ToMolecule", "call AddBonds first")
	}
	elements := A.Elements()
	atoms := make([]sdf.Atom, len(elements))
	for i, v := range elements {
		atoms[i] = sdf.Atom{Symbol: v}
	}
	mol := sdf.NewMolecule(A.Info[InfoName], atoms)
	if src, ok := A.Info[InfoSrcFile]; ok {
		mol.Comment = src
	}
	if err := mol.AddConformer(A.XYZ.Clone()); err != nil {
		return nil, errDecorate(err, "ToMolecule")
	}
	n := A.NAtoms()
	for i := 0; i < n; i++ {
		for _, j := range A.Bonds.Neighbors(i) {
			if j > i {
				if err := mol.AddBond(i, j, 1); err != nil {
					return nil, errDecorate(err, "ToMolecule")
				}
			}
		}
	}
	return mol, nil
}

//ToGraph returns a weighted undirected graph of the bonds of A, with node i for atom i
//and the bond lengths as weights. Node pairs that are not bonded have an infinite weight.
//It returns an error wrapping ErrNoBonds if A has no bonds.
func (A *AtomStruct) ToGraph() (*simple.WeightedUndirectedGraph, error) {
	if A.Bonds == nil {
		return nil, newCError(ErrNoBonds, A.Info[InfoSrcFile], "ToGraph", "call AddBonds first")
	}
	g := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	n := A.NAtoms()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(i))
	}
	for i := 0; i < n; i++ {
		for _, j := range A.Bonds.Neighbors(i) {
			if j <= i {
				continue
			}
			d := floats.Distance(A.XYZ.RawRowView(i), A.XYZ.RawRowView(j), 2)
			g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(i), T: simple.Node(j), W: d})
		}
	}
	return g, nil
}

//ToSDF writes A as a molecule to an SDF file. The file is compressed according to its
//extension (see sdf.CompressionFor). A must have bonds.
func (A *AtomStruct) ToSDF(filename string) error {
	mol, err := A.ToMolecule()
	if err != nil {
		return errDecorate(err, "ToSDF")
	}
	if err := sdf.WriteFile(filename, mol); err != nil {
		return errDecorate(err, "ToSDF")
	}
	logger.Debug("wrote sdf", zap.String("file", filename), zap.Int("atoms", A.NAtoms()))
	return nil
}
