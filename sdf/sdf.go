/*
 * sdf.go, part of ligan.
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
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	v3 "github.com/goligan/ligan/v3"
)

const (
	recordEnd = "$$$$"
	blockEnd  = "M  END"
)

//atom block charge codes
var code2charge = map[int]int{0: 0, 1: 3, 2: 2, 3: 1, 4: 0, 5: -1, 6: -2, 7: -3}

type lineReader struct {
	r        *bufio.Reader
	line     int
	filename string
}

//next returns the next line without its line terminator, or io.EOF.
func (L *lineReader) next() (string, error) {
	s, err := L.r.ReadString('\n')
	if err != nil && (err != io.EOF || s == "") {
		if err != io.EOF {
			return "", newError(err, L.filename, L.line+1, "can't read line")
		}
		return "", io.EOF
	}
	L.line++
	return strings.TrimRight(s, "\r\n"), nil
}

func (L *lineReader) fail(format string, args ...interface{}) error {
	return newError(ErrFormat, L.filename, L.line, format, args...)
}

//field returns the trimmed contents of line[a:b], clipped to the line length.
func field(line string, a, b int) string {
	if a >= len(line) {
		return ""
	}
	if b > len(line) {
		b = len(line)
	}
	return strings.TrimSpace(line[a:b])
}

func atoiField(line string, a, b int) (int, error) {
	f := field(line, a, b)
	if f == "" {
		return 0, nil
	}
	return strconv.Atoi(f)
}

//molecule reads one record. It returns io.EOF if no record is left.
func (L *lineReader) molecule() (*Molecule, error) {
	var header [3]string
	for i := range header {
		l, err := L.next()
		if err == io.EOF {
			if i == 0 || strings.TrimSpace(strings.Join(header[:i], "")) == "" {
				return nil, io.EOF
			}
			return nil, L.fail("record ends in header")
		}
		if err != nil {
			return nil, err
		}
		header[i] = l
	}
	counts, err := L.next()
	if err == io.EOF {
		if strings.TrimSpace(strings.Join(header[:], "")) == "" {
			return nil, io.EOF
		}
		return nil, L.fail("missing counts line")
	}
	if err != nil {
		return nil, err
	}
	if strings.Contains(counts, "V3000") {
		return nil, newError(ErrUnsupported, L.filename, L.line, "V3000 connection tables are not supported")
	}
	natoms, err := atoiField(counts, 0, 3)
	if err != nil {
		return nil, L.fail("can't read atom count from %q", counts)
	}
	nbonds, err := atoiField(counts, 3, 6)
	if err != nil {
		return nil, L.fail("can't read bond count from %q", counts)
	}
	if natoms < 0 || nbonds < 0 {
		return nil, L.fail("negative counts in %q", counts)
	}
	M := &Molecule{
		Name:    strings.TrimSpace(header[0]),
		Program: header[1],
		Comment: header[2],
		Atoms:   make([]Atom, natoms),
		Bonds:   make([]Bond, 0, nbonds),
		Props:   make(map[string]string),
	}
	coords := v3.Zeros(natoms)
	for i := 0; i < natoms; i++ {
		l, err := L.next()
		if err == io.EOF {
			return nil, L.fail("expected %d atoms, found %d", natoms, i)
		}
		if err != nil {
			return nil, err
		}
		var c [3]float64
		for j := range c {
			c[j], err = strconv.ParseFloat(field(l, 10*j, 10*j+10), 64)
			if err != nil {
				return nil, L.fail("can't read coordinate %d of atom %d: %s", j, i+1, err.Error())
			}
		}
		coords.SetVec(i, c)
		M.Atoms[i].Symbol = field(l, 31, 34)
		if M.Atoms[i].Symbol == "" {
			return nil, L.fail("atom %d has no symbol", i+1)
		}
		code, err := atoiField(l, 36, 39)
		if err != nil {
			return nil, L.fail("can't read charge of atom %d", i+1)
		}
		M.Atoms[i].Charge = code2charge[code]
	}
	for i := 0; i < nbonds; i++ {
		l, err := L.next()
		if err == io.EOF {
			return nil, L.fail("expected %d bonds, found %d", nbonds, i)
		}
		if err != nil {
			return nil, err
		}
		at1, err1 := atoiField(l, 0, 3)
		at2, err2 := atoiField(l, 3, 6)
		order, err3 := atoiField(l, 6, 9)
		if err1 != nil || err2 != nil || err3 != nil {
			return nil, L.fail("can't read bond %d from %q", i+1, l)
		}
		if at1 < 1 || at2 < 1 || at1 > natoms || at2 > natoms {
			return nil, newError(ErrIndex, L.filename, L.line, "bond %d joins atoms %d and %d, molecule has %d atoms", i+1, at1, at2, natoms)
		}
		M.Bonds = append(M.Bonds, Bond{At1: at1 - 1, At2: at2 - 1, Order: order})
	}
	M.Conformers = []*v3.Matrix{coords}
	if err := L.properties(M); err == errRecordDone {
		return M, nil
	} else if err != nil {
		return nil, err
	}
	if err := L.data(M); err != nil {
		return nil, err
	}
	return M, nil
}

//properties reads the property block up to "M  END". A charge property line
//resets the charges from the atom block. A missing "M  END" is tolerated if the
//record or the file ends.
func (L *lineReader) properties(M *Molecule) error {
	chgSeen := false
	for {
		l, err := L.next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		switch {
		case strings.HasPrefix(l, blockEnd):
			return nil
		case strings.HasPrefix(l, recordEnd):
			return errRecordDone
		case strings.HasPrefix(l, "M  CHG"):
			if !chgSeen {
				for i := range M.Atoms {
					M.Atoms[i].Charge = 0
				}
				chgSeen = true
			}
			f := strings.Fields(l[6:])
			if len(f) == 0 {
				return L.fail("empty charge line")
			}
			n, err := strconv.Atoi(f[0])
			if err != nil || len(f) < 1+2*n {
				return L.fail("malformed charge line %q", l)
			}
			for k := 0; k < n; k++ {
				at, err1 := strconv.Atoi(f[1+2*k])
				chg, err2 := strconv.Atoi(f[2+2*k])
				if err1 != nil || err2 != nil || at < 1 || at > M.Len() {
					return L.fail("malformed charge line %q", l)
				}
				M.Atoms[at-1].Charge = chg
			}
		}
	}
}

//errRecordDone signals that the record terminator was found while reading the properties.
var errRecordDone = errors.New("record done")

//data reads the data items of a record, up to the record terminator.
func (L *lineReader) data(M *Molecule) error {
	var key string
	var value []string
	inItem := false
	flush := func() {
		if inItem {
			M.Props[key] = strings.Join(value, "\n")
		}
		inItem = false
		value = value[:0]
	}
	for {
		l, err := L.next()
		if err == io.EOF {
			flush()
			return nil
		}
		if err != nil {
			return err
		}
		switch {
		case strings.HasPrefix(l, recordEnd):
			flush()
			return nil
		case strings.HasPrefix(l, ">") && !inItem:
			start := strings.Index(l, "<")
			end := strings.LastIndex(l, ">")
			if start < 0 || end <= start {
				return L.fail("malformed data header %q", l)
			}
			key = l[start+1 : end]
			inItem = true
		case inItem && strings.TrimSpace(l) == "":
			flush()
		case inItem:
			value = append(value, l)
		}
	}
}

func newLineReader(r io.Reader, filename string) *lineReader {
	return &lineReader{r: bufio.NewReader(r), filename: filename}
}

func (L *lineReader) read(max int) ([]*Molecule, error) {
	ret := make([]*Molecule, 0, 1)
	for max < 0 || len(ret) < max {
		M, err := L.molecule()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		ret = append(ret, M)
	}
	return ret, nil
}

//Read reads all the molecules in an uncompressed SDF stream.
func Read(r io.Reader) ([]*Molecule, error) {
	return newLineReader(r, "").read(-1)
}

//ReadFirst reads the first molecule in an uncompressed SDF stream.
func ReadFirst(r io.Reader) (*Molecule, error) {
	mols, err := newLineReader(r, "").read(1)
	if err != nil {
		return nil, errDecorate(err, "ReadFirst")
	}
	if len(mols) == 0 {
		return nil, newError(ErrNoMolecule, "", 0, "empty stream")
	}
	return mols[0], nil
}

func readFile(filename string, max int) (mols []*Molecule, err error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, newError(err, filename, 0, "can't open file")
	}
	defer f.Close()
	dec, err := NewReader(bufio.NewReader(f), filename)
	if err != nil {
		return nil, errDecorate(err, "readFile")
	}
	defer dec.Close()
	mols, err = newLineReader(dec, filename).read(max)
	if err != nil {
		return nil, errDecorate(err, "readFile")
	}
	if len(mols) == 0 {
		return nil, newError(ErrNoMolecule, filename, 0, "no molecule read")
	}
	return mols, nil
}

//ReadFile reads all the molecules of an SDF file, compressed or not (see CompressionFor).
func ReadFile(filename string) ([]*Molecule, error) {
	return readFile(filename, -1)
}

//ReadFirstFile reads only the first molecule of an SDF file, compressed or not.
func ReadFirstFile(filename string) (*Molecule, error) {
	mols, err := readFile(filename, 1)
	if err != nil {
		return nil, err
	}
	return mols[0], nil
}

func charge2code(c int) int {
	for code, v := range code2charge {
		if v == c && code != 4 && (c != 0 || code == 0) {
			return code
		}
	}
	return 0
}

//writeRecord writes the record for conformer conf of M.
func writeRecord(w *bufio.Writer, M *Molecule, conf int) error {
	coords, err := M.Conformer(conf)
	if err != nil {
		return err
	}
	if coords.NVecs() != M.Len() {
		return newError(ErrIndex, "", 0, "conformer %d has %d coordinates for %d atoms", conf, coords.NVecs(), M.Len())
	}
	if M.Len() > 999 || len(M.Bonds) > 999 {
		return newError(ErrUnsupported, "", 0, "V2000 tables hold at most 999 atoms and bonds")
	}
	program := M.Program
	if program == "" {
		program = "     ligan          3D"
	}
	fmt.Fprintf(w, "%s\n%s\n%s\n", M.Name, program, M.Comment)
	fmt.Fprintf(w, "%3d%3d  0  0  0  0  0  0  0  0999 V2000\n", M.Len(), len(M.Bonds))
	charged := make([]int, 0)
	for i, at := range M.Atoms {
		c := coords.Vec(i)
		var xyz [3]string
		for j, v := range c {
			xyz[j] = fmt.Sprintf("%10.4f", v)
			if len(xyz[j]) > 10 {
				return newError(ErrUnsupported, "", 0, "coordinate %d of atom %d (%g) doesn't fit in a V2000 atom line", j, i+1, v)
			}
		}
		fmt.Fprintf(w, "%s%s%s %-3s 0%3d  0  0  0  0  0  0  0  0  0  0\n", xyz[0], xyz[1], xyz[2], at.Symbol, charge2code(at.Charge))
		if at.Charge != 0 {
			charged = append(charged, i)
		}
	}
	for _, b := range M.Bonds {
		if b.At1 < 0 || b.At2 < 0 || b.At1 >= M.Len() || b.At2 >= M.Len() {
			return newError(ErrIndex, "", 0, "bond between atoms %d and %d in a molecule of %d atoms", b.At1, b.At2, M.Len())
		}
		fmt.Fprintf(w, "%3d%3d%3d  0\n", b.At1+1, b.At2+1, b.Order)
	}
	for len(charged) > 0 {
		n := len(charged)
		if n > 8 {
			n = 8
		}
		fmt.Fprintf(w, "M  CHG%3d", n)
		for _, i := range charged[:n] {
			fmt.Fprintf(w, " %3d %3d", i+1, M.Atoms[i].Charge)
		}
		fmt.Fprint(w, "\n")
		charged = charged[n:]
	}
	fmt.Fprintf(w, "%s\n", blockEnd)
	keys := make([]string, 0, len(M.Props))
	for k := range M.Props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, ">  <%s>\n%s\n\n", k, M.Props[k])
	}
	_, err = fmt.Fprintf(w, "%s\n", recordEnd)
	return err
}

//Write writes the molecules to w as uncompressed SDF, one record per conformer.
//Every molecule needs at least one conformer.
func Write(w io.Writer, mols ...*Molecule) error {
	bw := bufio.NewWriter(w)
	for i, M := range mols {
		if M == nil || len(M.Conformers) == 0 {
			return newError(ErrNoConformer, "", 0, "molecule %d can't be written", i)
		}
		for c := range M.Conformers {
			if err := writeRecord(bw, M, c); err != nil {
				return errDecorate(err, "Write")
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return newError(err, "", 0, "can't flush")
	}
	return nil
}

//WriteFile writes the molecules to a new file, compressed according to the
//file extension (see CompressionFor). All files are closed on return.
func WriteFile(filename string, mols ...*Molecule) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return newError(err, filename, 0, "can't create file")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = newError(cerr, filename, 0, "can't close file")
		}
	}()
	enc, err := NewWriter(f, filename)
	if err != nil {
		return errDecorate(err, "WriteFile")
	}
	if err = Write(enc, mols...); err != nil {
		enc.Close()
		return errDecorate(err, "WriteFile")
	}
	if err = enc.Close(); err != nil {
		return newError(err, filename, 0, "can't finish compressed stream")
	}
	return nil
}
