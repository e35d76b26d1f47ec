/*
 * molecule.go, part of ligan.
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

//Package sdf implements a small molecule model and reading/writing of MDL SD files
//(V2000 connection tables), optionally compressed.
package sdf

import (
	v3 "github.com/goligan/ligan/v3"
)

//Atom contains the per-atom information of a connection table except for the
//coordinates, which are kept in the conformers.
type Atom struct {
	Symbol string
	Charge int
}

//Bond joins the atoms with (0-based) indexes At1 and At2.
//Order follows the MDL bond types: 1, 2, 3 and 4 (aromatic).
type Bond struct {
	At1, At2 int
	Order    int
}

//Molecule is a connection table with any number of conformers. The coordinates,
//which are expected to change between conformers, are stored separately from the atoms.
type Molecule struct {
	Name       string
	Program    string
	Comment    string
	Atoms      []Atom
	Bonds      []Bond
	Conformers []*v3.Matrix
	Props      map[string]string
}

//NewMolecule returns a molecule with the given atoms and no bonds or conformers.
func NewMolecule(name string, atoms []Atom) *Molecule {
	return &Molecule{Name: name, Atoms: atoms, Props: make(map[string]string)}
}

//Len returns the number of atoms in the molecule.
func (M *Molecule) Len() int {
	return len(M.Atoms)
}

//Conformer returns the coordinates of conformer i.
func (M *Molecule) Conformer(i int) (*v3.Matrix, error) {
	if i < 0 || i >= len(M.Conformers) {
		return nil, newError(ErrNoConformer, "", 0, "conformer %d requested, molecule %q has %d", i, M.Name, len(M.Conformers))
	}
	return M.Conformers[i], nil
}

//AddConformer appends a conformer. It checks that the number of coordinates
//matches the number of atoms.
func (M *Molecule) AddConformer(coords *v3.Matrix) error {
	if coords == nil || coords.NVecs() != M.Len() {
		n := 0
		if coords != nil {
			n = coords.NVecs()
		}
		return newError(ErrIndex, "", 0, "conformer with %d coordinates for %d atoms", n, M.Len())
	}
	M.Conformers = append(M.Conformers, coords)
	return nil
}

//AddBond adds a bond of the given order between atoms i and j (0-based).
func (M *Molecule) AddBond(i, j, order int) error {
	if i < 0 || j < 0 || i >= M.Len() || j >= M.Len() || i == j {
		return newError(ErrIndex, "", 0, "can't bond atoms %d and %d in a molecule of %d atoms", i, j, M.Len())
	}
	M.Bonds = append(M.Bonds, Bond{At1: i, At2: j, Order: order})
	return nil
}
