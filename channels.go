/*
 * channels.go, part of ligan.
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
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goligan/ligan/atomtypes"
)

//Channel is one atom type of a vocabulary.
type Channel struct {
	Name         string
	Element      string  //chemical symbol, used when writing chemical tables
	AtomicRadius float64 //Angstrom
}

//Channels is an ordered channel vocabulary. The position of a channel is its type index.
//Vocabularies are shared between structures and never modified by this package.
type Channels []Channel

//Len returns the number of channels.
func (C Channels) Len() int {
	return len(C)
}

//Index returns the index of the channel with the given name.
func (C Channels) Index(name string) (int, bool) {
	for i, v := range C {
		if v.Name == name {
			return i, true
		}
	}
	return -1, false
}

//Names returns the channel names in order.
func (C Channels) Names() []string {
	ret := make([]string, len(C))
	for i, v := range C {
		ret[i] = v.Name
	}
	return ret
}

//Radii returns the channel radii in order.
func (C Channels) Radii() []float64 {
	ret := make([]float64, len(C))
	for i, v := range C {
		ret[i] = v.AtomicRadius
	}
	return ret
}

//LigandChannels returns the default vocabulary: one channel per smina type, in code order,
//named "Ligand"+type name and with the covalent radius of the type.
func LigandChannels() Channels {
	st := atomtypes.SminaTypes()
	ret := make(Channels, len(st))
	for i, v := range st {
		ret[i] = Channel{Name: v.ChannelName(atomtypes.LigandPrefix), Element: v.Element, AtomicRadius: v.CovalentRadius}
	}
	return ret
}

//SminaType returns the smina type with the given raw code.
func SminaType(code int) (atomtypes.SminaType, error) {
	t, err := atomtypes.Smina(code)
	if err != nil {
		return t, newCError(ErrRange, "", "SminaType", "%s", err.Error())
	}
	return t, nil
}

//ChannelsPath returns the path of the channels file that goes with the structure file
//path, i.e. path with its last extension replaced by ".channels".
func ChannelsPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".channels"
}

//ReadChannels reads whitespace-separated channel indexes, one per atom, from r.
//Every index must be in [0, channels.Len()).
func ReadChannels(r io.Reader, channels Channels) ([]int, error) {
	return readChannels(r, channels, "")
}

func readChannels(r io.Reader, channels Channels, filename string) ([]int, error) {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	ret := make([]int, 0, 32)
	for s.Scan() {
		pos := len(ret)
		c, err := strconv.Atoi(s.Text())
		if err != nil {
			return nil, newCError(ErrFormat, filename, "ReadChannels", "channel index %d: can't parse %q", pos, s.Text())
		}
		if c < 0 || c >= channels.Len() {
			return nil, newCError(ErrRange, filename, "ReadChannels", "channel index %d is %d, vocabulary has %d channels", pos, c, channels.Len())
		}
		ret = append(ret, c)
	}
	if err := s.Err(); err != nil {
		return nil, newCError(err, filename, "ReadChannels", "can't read channels")
	}
	return ret, nil
}

//ReadChannelsFile reads the channel indexes in the given file.
func ReadChannelsFile(filename string, channels Channels) ([]int, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, newCError(err, filename, "ReadChannelsFile", "can't open channels file")
	}
	defer f.Close()
	return readChannels(f, channels, filename)
}

//WriteChannelsFile writes the channel indexes c, one per line, to a new file.
func WriteChannelsFile(filename string, c []int) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return newCError(err, filename, "WriteChannelsFile", "can't create channels file")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = newCError(cerr, filename, "WriteChannelsFile", "can't close channels file")
		}
	}()
	w := bufio.NewWriter(f)
	for _, v := range c {
		fmt.Fprintf(w, "%d\n", v)
	}
	if err = w.Flush(); err != nil {
		return newCError(err, filename, "WriteChannelsFile", "can't write channels file")
	}
	return nil
}
