/*
 * construct.go, part of ligan.
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
	"fmt"

	"github.com/goligan/ligan/gninatypes"
	"github.com/goligan/ligan/sdf"
	v3 "github.com/goligan/ligan/v3"
	"go.uber.org/zap"
)

//FromGninatypes reads a gninatypes file. Only the atoms with a ligand channel present in channels
//are kept. The file name is stored in the info under InfoSrcFile, unless info already has that key.
func FromGninatypes(filename string, channels Channels, info Info) (*AtomStruct, error) {
	xyz, c, err := gninatypes.ReadFile(filename, channels)
	if errors.Is(err, gninatypes.ErrEmpty) {
		return nil, newCError(fmt.Errorf("%w: %w", ErrEmpty, err), filename, "FromGninatypes", "no atoms of the vocabulary in file")
	}
	if err != nil {
		return nil, errDecorate(err, "FromGninatypes")
	}
	info = info.Copy()
	if _, ok := info[InfoSrcFile]; !ok {
		info[InfoSrcFile] = filename
	}
	A, err := New(v3.FromVecs(xyz), c, channels, nil, CPU, info)
	if err != nil {
		return nil, errDecorate(err, "FromGninatypes")
	}
	logger.Debug("read gninatypes", zap.String("file", filename), zap.Int("atoms", A.NAtoms()))
	return A, nil
}

//FromCoordSet builds a structure from a coordinate set with indexed types. Float type
//indexes are truncated. The source of the set is stored under InfoSrcFile.
//It returns an error wrapping ErrDomain if the types of cs are not indexed.
func FromCoordSet(cs CoordSet, channels Channels, device Device, info Info) (*AtomStruct, error) {
	if !cs.HasIndexedTypes() {
		return nil, newCError(ErrDomain, cs.Src(), "FromCoordSet", "can only make an AtomStruct from a coordinate set with indexed types")
	}
	ti := cs.TypeIndex()
	c := make([]int, len(ti))
	for i, v := range ti {
		c[i] = int(v)
	}
	info = info.Copy()
	info[InfoSrcFile] = cs.Src()
	A, err := New(cs.Coords(), c, channels, nil, device, info)
	if err != nil {
		return nil, errDecorate(err, "FromCoordSet")
	}
	return A, nil
}

//FromMolecule builds a structure with the positions of the first conformer of mol and the
//channel indexes c.
func FromMolecule(mol *sdf.Molecule, c []int, channels Channels, info Info) (*AtomStruct, error) {
	if mol == nil {
		return nil, newCError(ErrDomain, "", "FromMolecule", "nil molecule")
	}
	conf, err := mol.Conformer(0)
	if err != nil {
		return nil, errDecorate(err, "FromMolecule")
	}
	A, err := New(conf, c, channels, nil, CPU, info)
	if err != nil {
		return nil, errDecorate(err, "FromMolecule")
	}
	return A, nil
}

//FromSDF reads the first molecule of an SDF file (which can be compressed) and the channel
//indexes from the sibling channels file (see ChannelsPath).
func FromSDF(filename string, channels Channels, info Info) (*AtomStruct, error) {
	mol, err := sdf.ReadFirstFile(filename)
	if err != nil {
		return nil, errDecorate(err, "FromSDF")
	}
	c, err := ReadChannelsFile(ChannelsPath(filename), channels)
	if err != nil {
		return nil, errDecorate(err, "FromSDF")
	}
	info = info.Copy()
	info[InfoSrcFile] = filename
	if mol.Name != "" {
		info[InfoName] = mol.Name
	}
	A, err := FromMolecule(mol, c, channels, info)
	if err != nil {
		return nil, errDecorate(err, "FromSDF")
	}
	return A, nil
}
