/*
 * smina.go, part of ligan.
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

//Package atomtypes holds the fixed enumeration of smina atom types. The
//position of a type in the enumeration is the raw type code stored in
//gninatypes files.
package atomtypes

import "fmt"

//Prefixes used to build channel names from smina type names.
const (
	LigandPrefix   = "Ligand"
	ReceptorPrefix = "Receptor"
)

//SminaType describes one raw atom type.
type SminaType struct {
	Name           string
	Element        string
	CovalentRadius float64 //Angstrom
	XSRadius       float64 //Angstrom, 0 for hydrogens
	Hydrophobic    bool
	Donor          bool
	Acceptor       bool
}

//ChannelName returns the name of the channel for t with the given prefix,
//i.e. "Ligand"+t.Name for LigandPrefix.
func (t SminaType) ChannelName(prefix string) string {
	return prefix + t.Name
}

//covalent radii after smina's atom_constants (Angstrom).
var sminaTypes = []SminaType{
	{"Hydrogen", "H", 0.37, 0, false, false, false},
	{"PolarHydrogen", "H", 0.37, 0, false, false, false},
	{"AliphaticCarbonXSHydrophobe", "C", 0.77, 1.9, true, false, false},
	{"AliphaticCarbonXSNonHydrophobe", "C", 0.77, 1.9, false, false, false},
	{"AromaticCarbonXSHydrophobe", "C", 0.77, 1.9, true, false, false},
	{"AromaticCarbonXSNonHydrophobe", "C", 0.77, 1.9, false, false, false},
	{"Nitrogen", "N", 0.75, 1.8, false, false, false},
	{"NitrogenXSDonor", "N", 0.75, 1.8, false, true, false},
	{"NitrogenXSDonorAcceptor", "N", 0.75, 1.8, false, true, true},
	{"NitrogenXSAcceptor", "N", 0.75, 1.8, false, false, true},
	{"Oxygen", "O", 0.73, 1.7, false, false, false},
	{"OxygenXSDonor", "O", 0.73, 1.7, false, true, false},
	{"OxygenXSDonorAcceptor", "O", 0.73, 1.7, false, true, true},
	{"OxygenXSAcceptor", "O", 0.73, 1.7, false, false, true},
	{"Sulfur", "S", 1.02, 2.0, true, false, false},
	{"SulfurAcceptor", "S", 1.02, 2.0, false, false, true},
	{"Phosphorus", "P", 1.06, 2.1, false, false, false},
	{"Fluorine", "F", 0.71, 1.5, true, false, false},
	{"Chlorine", "Cl", 0.99, 1.8, true, false, false},
	{"Bromine", "Br", 1.14, 2.0, true, false, false},
	{"Iodine", "I", 1.33, 2.2, true, false, false},
	{"Magnesium", "Mg", 1.30, 1.2, false, true, false},
	{"Manganese", "Mn", 1.39, 1.2, false, true, false},
	{"Zinc", "Zn", 1.31, 1.2, false, true, false},
	{"Calcium", "Ca", 1.74, 1.2, false, true, false},
	{"Iron", "Fe", 1.25, 1.2, false, true, false},
	{"GenericMetal", "M", 1.75, 1.2, false, true, false},
	{"Boron", "B", 0.90, 1.92, true, false, false},
}

//NumSmina is the number of smina types.
var NumSmina = len(sminaTypes)

//Smina returns the smina type with the given raw code.
func Smina(code int) (SminaType, error) {
	if code < 0 || code >= len(sminaTypes) {
		return SminaType{}, fmt.Errorf("atomtypes: smina type code %d out of range [0, %d)", code, len(sminaTypes))
	}
	return sminaTypes[code], nil
}

//SminaTypes returns a copy of the whole enumeration, in code order.
func SminaTypes() []SminaType {
	ret := make([]SminaType, len(sminaTypes))
	copy(ret, sminaTypes)
	return ret
}

//SminaCode returns the raw code of the smina type with the given name.
func SminaCode(name string) (int, bool) {
	for i, v := range sminaTypes {
		if v.Name == name {
			return i, true
		}
	}
	return -1, false
}
