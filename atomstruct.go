/*
 * atomstruct.go, part of ligan.
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
	"strings"

	v3 "github.com/goligan/ligan/v3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//Keys of Info with a documented meaning. Other keys are carried along untouched.
const (
	InfoSrcFile = "src_file"
	InfoName    = "name"
)

//Info is free-form metadata attached to a structure.
type Info map[string]string

//Copy returns a copy of I. The copy of a nil Info is empty, not nil.
func (I Info) Copy() Info {
	ret := make(Info, len(I))
	for k, v := range I {
		ret[k] = v
	}
	return ret
}

//Device is the compute device a structure is meant for, i.e. "cpu" or "cuda:0".
//Data is always kept in host memory, the tag is passed on to downstream consumers.
type Device string

//CPU is the default device.
const CPU Device = "cpu"

//AtomStruct is a set of N typed atoms in 3D. Atom i is at XYZ.Vec(i) and has the type
//Channels[C[i]].
type AtomStruct struct {
	XYZ      *v3.Matrix
	C        []int
	Channels Channels    //shared, not owned
	Bonds    *BondMatrix //nil until AddBonds is called or bonds are given
	Info     Info
	device   Device
}

//New returns a structure with the coordinates xyz (an Nx3 matrix) and the channel
//indexes c. xyz is copied, c is not. bonds may be nil. An empty device means CPU.
//It returns an error if the shapes don't match, or if an index in c is not a valid channel.
func New(xyz mat.Matrix, c []int, channels Channels, bonds *BondMatrix, device Device, info Info) (*AtomStruct, error) {
	if xyz == nil {
		return nil, newCError(ErrShape, "", "New", "nil coordinates")
	}
	coords, err := v3.FromMat(xyz)
	if err != nil {
		return nil, newCError(ErrShape, "", "New", "coordinates must be an Nx3 matrix: %s", err.Error())
	}
	n := coords.NVecs()
	if len(c) != n {
		return nil, newCError(ErrShape, "", "New", "%d coordinates but %d channel indexes", n, len(c))
	}
	for i, v := range c {
		if v < 0 || v >= channels.Len() {
			return nil, newCError(ErrRange, "", "New", "atom %d has channel index %d, vocabulary has %d channels", i, v, channels.Len())
		}
	}
	if bonds != nil && bonds.Len() != n {
		return nil, newCError(ErrShape, "", "New", "bond matrix is %dx%d for %d atoms", bonds.Len(), bonds.Len(), n)
	}
	if device == "" {
		device = CPU
	}
	if info == nil {
		info = make(Info)
	}
	return &AtomStruct{XYZ: coords, C: c, Channels: channels, Bonds: bonds, Info: info, device: device}, nil
}

//NAtoms returns the number of atoms in the structure.
func (A *AtomStruct) NAtoms() int {
	return len(A.C)
}

//Device returns the device the structure is on.
func (A *AtomStruct) Device() Device {
	return A.device
}

//TypeCounts returns the number of atoms of each channel. The slice has one element
//per channel of the vocabulary.
func (A *AtomStruct) TypeCounts() []int {
	ret := make([]int, A.Channels.Len())
	for _, v := range A.C {
		ret[v]++
	}
	return ret
}

//Center returns the geometric center of the structure as a 1x3 matrix.
func (A *AtomStruct) Center() (*v3.Matrix, error) {
	n := A.NAtoms()
	if n == 0 {
		return nil, newCError(ErrEmpty, A.Info[InfoSrcFile], "Center", "the center of an empty structure is undefined")
	}
	ones := make([]float64, n)
	floats.AddConst(1, ones)
	onesvector := mat.NewDense(1, n, ones)
	ret := v3.Zeros(1)
	ret.Mul(onesvector, A.XYZ.Dense)
	ret.Scale(1/float64(n), ret.Dense)
	return ret, nil
}

//Radius returns the largest distance between an atom and the center of the structure.
func (A *AtomStruct) Radius() (float64, error) {
	center, err := A.Center()
	if err != nil {
		return 0, errDecorate(err, "Radius")
	}
	c := center.RawRowView(0)
	var max float64
	for i := 0; i < A.NAtoms(); i++ {
		d := floats.Distance(A.XYZ.RawRowView(i), c, 2)
		if d > max {
			max = d
		}
	}
	return max, nil
}

//Elements returns the element of the channel of each atom.
func (A *AtomStruct) Elements() []string {
	ret := make([]string, len(A.C))
	for i, v := range A.C {
		ret[i] = A.Channels[v].Element
	}
	return ret
}

//Copy returns a deep copy of A, on the same device. The vocabulary is shared.
func (A *AtomStruct) Copy() *AtomStruct {
	return A.To(A.device)
}

//To returns a copy of A on the given device. A is not modified.
//Bonds are copied only if A has them.
func (A *AtomStruct) To(device Device) *AtomStruct {
	if device == "" {
		device = CPU
	}
	c := make([]int, len(A.C))
	copy(c, A.C)
	ret := &AtomStruct{XYZ: A.XYZ.Clone(), C: c, Channels: A.Channels, Info: A.Info.Copy(), device: device}
	if A.Bonds != nil {
		ret.Bonds = A.Bonds.Copy()
	}
	return ret
}

//String returns a short description of the structure.
func (A *AtomStruct) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "AtomStruct{%d atoms, %d channels, device %s", A.NAtoms(), A.Channels.Len(), A.device)
	if name, ok := A.Info[InfoName]; ok {
		fmt.Fprintf(&b, ", name %s", name)
	}
	if A.Bonds != nil {
		fmt.Fprintf(&b, ", %d bonds", A.Bonds.Count())
	}
	b.WriteString("}")
	return b.String()
}
