/*
 * errors.go, part of ligan.
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
)

//Error kinds. Every error returned by this package wraps one of them (or an error from a
//sub-package), so they can be checked with errors.Is.
var (
	ErrShape   = errors.New("shape mismatch")
	ErrRange   = errors.New("type index out of range")
	ErrDomain  = errors.New("unsupported input")
	ErrEmpty   = errors.New("empty structure")
	ErrNoBonds = errors.New("no bonds")
	ErrFormat  = errors.New("malformed input")
)

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //If passed an empty string, it just returns the current decoration.
}

// FileError is an Error associated to an input or output file.
type FileError interface {
	Error
	Critical() bool
	FileName() string
}

//CError is the error type of the package.
type CError struct {
	msg      string
	filename string
	deco     []string
	kind     error
}

func newCError(kind error, filename, caller, format string, args ...interface{}) *CError {
	err := &CError{msg: fmt.Sprintf(format, args...), filename: filename, kind: kind}
	err.Decorate(caller)
	return err
}

func (err *CError) Error() string {
	if err.filename != "" {
		return fmt.Sprintf("ligan: %s: %s: %v", err.filename, err.msg, err.kind)
	}
	return fmt.Sprintf("ligan: %s: %v", err.msg, err.kind)
}

//Decorate adds dec to the decoration stack and returns the stack.
func (err *CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//FileName returns the file associated to the error, or an empty string.
func (err *CError) FileName() string { return err.filename }

//Critical is always true.
func (err *CError) Critical() bool { return true }

func (err *CError) Unwrap() error { return err.kind }

//errDecorate decorates err with caller if err (or anything it wraps) implements Error.
func errDecorate(err error, caller string) error {
	var e Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}
