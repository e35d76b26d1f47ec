/*
 * gninatypes.go, part of ligan.
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

//Package gninatypes reads and writes gninatypes files: a headerless sequence of
//16-byte little-endian records, each with three float32 coordinates and an int32
//smina type code.
package gninatypes

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/goligan/ligan/atomtypes"
	"go.uber.org/zap"
)

//RecordSize is the size in bytes of one atom record.
const RecordSize = 16

var endian = binary.LittleEndian

var logger = zap.NewNop()

//SetLogger sets the logger used to report skipped records. A nil logger disables logging.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

//Record is one atom of a gninatypes file.
type Record struct {
	X, Y, Z float32
	Type    int32
}

//Coords returns the coordinates of the record as float64.
func (r Record) Coords() [3]float64 {
	return [3]float64{float64(r.X), float64(r.Y), float64(r.Z)}
}

func (r Record) encode(b []byte) {
	endian.PutUint32(b[0:4], math.Float32bits(r.X))
	endian.PutUint32(b[4:8], math.Float32bits(r.Y))
	endian.PutUint32(b[8:12], math.Float32bits(r.Z))
	endian.PutUint32(b[12:16], uint32(r.Type))
}

func decode(b []byte) Record {
	return Record{
		X:    math.Float32frombits(endian.Uint32(b[0:4])),
		Y:    math.Float32frombits(endian.Uint32(b[4:8])),
		Z:    math.Float32frombits(endian.Uint32(b[8:12])),
		Type: int32(endian.Uint32(b[12:16])),
	}
}

//Reader reads records one at a time.
type Reader struct {
	r        io.Reader
	buf      [RecordSize]byte
	filename string
	read     int
}

//NewReader returns a Reader for r. filename is only used in error messages and can be empty.
func NewReader(r io.Reader, filename string) *Reader {
	return &Reader{r: r, filename: filename}
}

//Next returns the next record. It returns io.EOF when there are no more records.
//A trailing partial record is an error wrapping ErrTruncated.
func (R *Reader) Next() (Record, error) {
	n, err := io.ReadFull(R.r, R.buf[:])
	switch {
	case err == io.EOF:
		return Record{}, io.EOF
	case errors.Is(err, io.ErrUnexpectedEOF):
		return Record{}, newError(ErrTruncated, R.filename, "record %d has only %d of %d bytes", R.read, n, RecordSize)
	case err != nil:
		return Record{}, newError(err, R.filename, "reading record %d", R.read)
	}
	R.read++
	return decode(R.buf[:]), nil
}

//ReadRecords reads all the records in r.
func ReadRecords(r io.Reader, filename string) ([]Record, error) {
	R := NewReader(r, filename)
	ret := make([]Record, 0, 64)
	for {
		rec, err := R.Next()
		if err == io.EOF {
			return ret, nil
		}
		if err != nil {
			return nil, errDecorate(err, "ReadRecords")
		}
		ret = append(ret, rec)
	}
}

//ChannelLookup resolves a channel name to its index in a channel vocabulary.
type ChannelLookup interface {
	Index(name string) (int, bool)
}

//Read reads the records in r and keeps those whose ligand channel name
//("Ligand" + smina type name) is present in channels. It returns the coordinates
//and channel indexes of the kept atoms. Records not in the vocabulary are skipped.
//If no atom is kept, an error wrapping ErrEmpty is returned.
func Read(r io.Reader, channels ChannelLookup, filename string) ([][3]float64, []int, error) {
	R := NewReader(r, filename)
	xyz := make([][3]float64, 0, 64)
	c := make([]int, 0, 64)
	for {
		rec, err := R.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, errDecorate(err, "Read")
		}
		st, err := atomtypes.Smina(int(rec.Type))
		if err != nil {
			return nil, nil, newError(ErrUnknownType, filename, "record %d: %s", R.read-1, err.Error())
		}
		name := st.ChannelName(atomtypes.LigandPrefix)
		idx, ok := channels.Index(name)
		if !ok {
			logger.Debug("skipping atom not in channel vocabulary",
				zap.String("file", filename), zap.Int("record", R.read-1),
				zap.Int32("code", rec.Type), zap.String("channel", name))
			continue
		}
		xyz = append(xyz, rec.Coords())
		c = append(c, idx)
	}
	if len(xyz) == 0 || len(c) == 0 {
		return nil, nil, newError(ErrEmpty, filename, "no atoms read (%d records)", R.read)
	}
	return xyz, c, nil
}

//ReadFile memory-maps the file and reads it with Read.
func ReadFile(filename string, channels ChannelLookup) ([][3]float64, []int, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, nil, newError(err, filename, "can't open file")
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return nil, nil, newError(err, filename, "can't stat file")
	}
	if info.Size() == 0 {
		//an empty region can't be mapped.
		return Read(bytes.NewReader(nil), channels, filename)
	}
	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, nil, newError(err, filename, "can't map file")
	}
	defer mm.Unmap()
	xyz, c, err := Read(bytes.NewReader(mm), channels, filename)
	if err != nil {
		return nil, nil, errDecorate(err, "ReadFile")
	}
	return xyz, c, nil
}

//Write writes the records to w.
func Write(w io.Writer, recs []Record) error {
	var buf [RecordSize]byte
	for i, rec := range recs {
		rec.encode(buf[:])
		if _, err := w.Write(buf[:]); err != nil {
			return newError(err, "", "writing record %d", i)
		}
	}
	return nil
}

//WriteFile writes the records to a new file with the given name.
func WriteFile(filename string, recs []Record) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return newError(err, filename, "can't create file")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = newError(cerr, filename, "can't close file")
		}
	}()
	bw := bufio.NewWriter(f)
	if err = Write(bw, recs); err != nil {
		return errDecorate(err, "WriteFile")
	}
	if err = bw.Flush(); err != nil {
		return newError(err, filename, "can't flush file")
	}
	return nil
}
