/*
 * coordset.go, part of ligan.
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
	"github.com/goligan/ligan/atomtypes"
	v3 "github.com/goligan/ligan/v3"
	"go.uber.org/zap"
)

//CoordSet is a set of typed coordinates as produced by grid-based pipelines.
//The types are either raw type codes or indexes into a channel vocabulary. In
//both cases they are carried as floats.
type CoordSet interface {
	HasIndexedTypes() bool
	Coords() *v3.Matrix
	TypeIndex() []float64
	Src() string
}

//CoordinateSet is the CoordSet implementation of this package.
type CoordinateSet struct {
	coords  *v3.Matrix
	types   []float64
	indexed bool
	src     string
}

//NewRawCoordinateSet returns a set with the given coordinates and raw smina type codes.
//It returns an error if the number of codes doesn't match the number of coordinates.
func NewRawCoordinateSet(coords *v3.Matrix, codes []int, src string) (*CoordinateSet, error) {
	if coords == nil {
		coords = v3.Zeros(0)
	}
	if coords.NVecs() != len(codes) {
		return nil, newCError(ErrShape, src, "NewRawCoordinateSet", "%d coordinates but %d type codes", coords.NVecs(), len(codes))
	}
	t := make([]float64, len(codes))
	for i, v := range codes {
		t[i] = float64(v)
	}
	return &CoordinateSet{coords: coords, types: t, src: src}, nil
}

//NewIndexedCoordinateSet returns a set with the given coordinates and channel indexes.
func NewIndexedCoordinateSet(coords *v3.Matrix, c []int, src string) (*CoordinateSet, error) {
	cs, err := NewRawCoordinateSet(coords, c, src)
	if err != nil {
		return nil, errDecorate(err, "NewIndexedCoordinateSet")
	}
	cs.indexed = true
	return cs, nil
}

//HasIndexedTypes returns true if the types of the set are channel indexes.
func (C *CoordinateSet) HasIndexedTypes() bool { return C.indexed }

//Coords returns the coordinates of the set. They are not copied.
func (C *CoordinateSet) Coords() *v3.Matrix { return C.coords }

//TypeIndex returns the types of the set. They are not copied.
func (C *CoordinateSet) TypeIndex() []float64 { return C.types }

//Src returns the source the set was read from, if any.
func (C *CoordinateSet) Src() string { return C.src }

//Indexed returns a copy of C with its raw smina codes translated to indexes into
//channels, through the ligand channel names. Atoms whose channel is not in the
//vocabulary are dropped. If C is already indexed, a copy is returned.
func (C *CoordinateSet) Indexed(channels Channels) (*CoordinateSet, error) {
	if C.indexed {
		t := make([]float64, len(C.types))
		copy(t, C.types)
		return &CoordinateSet{coords: C.coords.Clone(), types: t, indexed: true, src: C.src}, nil
	}
	vecs := make([][3]float64, 0, len(C.types))
	t := make([]float64, 0, len(C.types))
	for i, v := range C.types {
		st, err := atomtypes.Smina(int(v))
		if err != nil {
			return nil, newCError(ErrRange, C.src, "Indexed", "atom %d: %s", i, err.Error())
		}
		idx, ok := channels.Index(st.ChannelName(atomtypes.LigandPrefix))
		if !ok {
			logger.Debug("dropping atom not in channel vocabulary", zap.String("src", C.src), zap.Int("atom", i), zap.String("type", st.Name))
			continue
		}
		vecs = append(vecs, C.coords.Vec(i))
		t = append(t, float64(idx))
	}
	return &CoordinateSet{coords: v3.FromVecs(vecs), types: t, indexed: true, src: C.src}, nil
}
