/*
 * sdf_test.go, part of ligan.
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

package sdf

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	v3 "github.com/goligan/ligan/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ethanol = `ethanol
     RDKit          3D

  3  2  0  0  0  0  0  0  0  0999 V2000
   -0.8883    0.1670   -0.0273 C   0  0  0  0  0  0  0  0  0  0  0  0
    0.4658   -0.5116   -0.0368 C   0  0  0  0  0  0  0  0  0  0  0  0
    1.4311    0.3229    0.5867 O   0  5  0  0  0  0  0  0  0  0  0  0
  1  2  1  0
  2  3  1  0
M  END
>  <score>
-7.2

$$$$
`

const ammonium = `NH4
  ligan

  1  0  0  0  0  0  0  0  0  0999 V2000
    0.0000    0.0000    0.0000 N   0  0  0  0  0  0  0  0  0  0  0  0
M  CHG  1   1   1
M  END
$$$$
`

func TestReadEthanol(t *testing.T) {
	mols, err := Read(strings.NewReader(ethanol))
	require.NoError(t, err)
	require.Len(t, mols, 1)
	M := mols[0]
	assert.Equal(t, "ethanol", M.Name)
	require.Equal(t, 3, M.Len())
	assert.Equal(t, "C", M.Atoms[0].Symbol)
	assert.Equal(t, "O", M.Atoms[2].Symbol)
	assert.Equal(t, -1, M.Atoms[2].Charge)
	assert.Equal(t, []Bond{{0, 1, 1}, {1, 2, 1}}, M.Bonds)
	assert.Equal(t, "-7.2", M.Props["score"])
	c, err := M.Conformer(0)
	require.NoError(t, err)
	assert.InDelta(t, 1.4311, c.Vec(2)[0], 1e-9)
	assert.InDelta(t, -0.5116, c.Vec(1)[1], 1e-9)
	_, err = M.Conformer(1)
	assert.True(t, errors.Is(err, ErrNoConformer))
}

func TestReadSeveral(t *testing.T) {
	mols, err := Read(strings.NewReader(ethanol + ammonium))
	require.NoError(t, err)
	require.Len(t, mols, 2)
	assert.Equal(t, "NH4", mols[1].Name)
	// the charge line overrides the atom block.
	assert.Equal(t, 1, mols[1].Atoms[0].Charge)
	assert.Empty(t, mols[1].Bonds)

	first, err := ReadFirst(strings.NewReader(ethanol + ammonium))
	require.NoError(t, err)
	assert.Equal(t, "ethanol", first.Name)
}

func TestReadNoTerminator(t *testing.T) {
	in := strings.TrimSuffix(ammonium, "$$$$\n")
	mols, err := Read(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, mols, 1)
}

func TestReadErrors(t *testing.T) {
	_, err := ReadFirst(strings.NewReader(""))
	assert.True(t, errors.Is(err, ErrNoMolecule))

	v3000 := "x\n\n\n  0  0  0     0  0            999 V3000\n"
	_, err = Read(strings.NewReader(v3000))
	assert.True(t, errors.Is(err, ErrUnsupported))

	short := strings.Replace(ethanol, "  3  2  0", "  4  2  0", 1)
	_, err = Read(strings.NewReader(short))
	assert.Error(t, err)

	badBond := strings.Replace(ethanol, "  2  3  1  0", "  2  9  1  0", 1)
	_, err = Read(strings.NewReader(badBond))
	assert.True(t, errors.Is(err, ErrIndex))
	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, 9, e.Line())
}

func testMolecule(t *testing.T) *Molecule {
	t.Helper()
	M := NewMolecule("water", []Atom{{"O", 0}, {"H", 0}, {"H", 1}})
	require.NoError(t, M.AddConformer(v3.FromVecs([][3]float64{{0, 0, 0}, {0.96, 0, 0}, {-0.24, 0.93, 0}})))
	require.NoError(t, M.AddBond(0, 1, 1))
	require.NoError(t, M.AddBond(0, 2, 1))
	M.Props["b"] = "2"
	M.Props["a"] = "1"
	return M
}

func TestMoleculeChecks(t *testing.T) {
	M := NewMolecule("x", []Atom{{"C", 0}})
	assert.True(t, errors.Is(M.AddBond(0, 0, 1), ErrIndex))
	assert.True(t, errors.Is(M.AddBond(0, 1, 1), ErrIndex))
	assert.True(t, errors.Is(M.AddConformer(v3.Zeros(2)), ErrIndex))
	var buf bytes.Buffer
	assert.True(t, errors.Is(Write(&buf, M), ErrNoConformer))
}

func TestWriteRead(t *testing.T) {
	M := testMolecule(t)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, M))
	out := buf.String()
	assert.Contains(t, out, "V2000")
	assert.Contains(t, out, "M  CHG  1   3   1")
	// properties are sorted by key.
	assert.Less(t, strings.Index(out, "<a>"), strings.Index(out, "<b>"))

	mols, err := Read(&buf)
	require.NoError(t, err)
	require.Len(t, mols, 1)
	got := mols[0]
	assert.Equal(t, M.Name, got.Name)
	assert.Equal(t, M.Atoms, got.Atoms)
	assert.Equal(t, M.Bonds, got.Bonds)
	assert.Equal(t, M.Props, got.Props)
	c, _ := got.Conformer(0)
	assert.InDelta(t, 0.93, c.Vec(2)[1], 1e-4)
}

func TestWriteWideCoordinates(t *testing.T) {
	M := NewMolecule("far", []Atom{{"C", 0}})
	require.NoError(t, M.AddConformer(v3.FromVecs([][3]float64{{-9999.9999, 99999.9999, 0}})))
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, M))
	mols, err := Read(&buf)
	require.NoError(t, err)
	c, _ := mols[0].Conformer(0)
	assert.InDelta(t, -9999.9999, c.Vec(0)[0], 1e-4)
	assert.InDelta(t, 99999.9999, c.Vec(0)[1], 1e-4)

	for _, v := range [][3]float64{{-12345.5, 0, 0}, {0, 100000, 0}} {
		M = NewMolecule("farther", []Atom{{"C", 0}})
		require.NoError(t, M.AddConformer(v3.FromVecs([][3]float64{v})))
		buf.Reset()
		assert.True(t, errors.Is(Write(&buf, M), ErrUnsupported), "%v", v)
	}
}

func TestWriteConformers(t *testing.T) {
	M := testMolecule(t)
	require.NoError(t, M.AddConformer(v3.Zeros(3)))
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, M))
	assert.Equal(t, 2, strings.Count(buf.String(), "$$$$"))
}

func TestFilesCompressed(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"w.sdf", "w.sdf.gz", "w.sdf.zst", "w.sdf.lz4"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			M := testMolecule(t)
			require.NoError(t, WriteFile(path, M, M))
			mols, err := ReadFile(path)
			require.NoError(t, err)
			require.Len(t, mols, 2)
			assert.Equal(t, M.Atoms, mols[1].Atoms)

			first, err := ReadFirstFile(path)
			require.NoError(t, err)
			assert.Equal(t, "water", first.Name)
		})
	}
}

func TestCompressionFor(t *testing.T) {
	assert.Equal(t, Gzip, CompressionFor("a.sdf.GZ"))
	assert.Equal(t, Zstd, CompressionFor("a.sdf.zst"))
	assert.Equal(t, LZ4, CompressionFor("a.lz4"))
	assert.Equal(t, Plain, CompressionFor("a.sdf"))
}
