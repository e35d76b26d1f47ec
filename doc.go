/*
 * doc.go, part of ligan.
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

/*Package ligan is the main package of the ligan library. It provides the AtomStruct, a set of
typed atoms in 3D, as used by generative ligand-modelling pipelines.

	**ligan Capabilities**

    Builds atom structures from coordinates plus per-atom channel (type) indexes, validating
	shapes and index ranges.

    Reads gninatypes binary atom records, keeping only the atoms whose type is in the
	channel vocabulary.

    Reads SDF files (plain, gzip, zstd or lz4) together with a sibling .channels file.

    Computes type counts, the geometric center and the radius of a structure.

    Infers bonds from interatomic distances and the channel radii, and offers the bonds
	as a gonum graph, from which fragments are obtained.

    Writes structures as SDF molecules.

The coordinates are kept in a v3.Matrix (package v3), an Nx3 gonum matrix.

Sub-packages:

    v3: Nx3 coordinate matrices.

    atomtypes: the smina atom type enumeration.

    gninatypes: reading and writing of gninatypes binary records.

    sdf: a small molecule model and SDF reading/writing.

    chemplot: plots of channel counts.

*/
package ligan
