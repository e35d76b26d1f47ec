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

package gninatypes

import (
	"errors"
	"fmt"
)

var (
	ErrEmpty       = errors.New("no atoms in file")
	ErrTruncated   = errors.New("truncated record")
	ErrUnknownType = errors.New("unknown smina type code")
)

//Error is the error type for gninatypes files.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	kind     error
}

func newError(kind error, filename, format string, args ...interface{}) *Error {
	return &Error{message: fmt.Sprintf(format, args...), filename: filename, kind: kind}
}

func (err *Error) Error() string {
	if err.filename == "" {
		return fmt.Sprintf("gninatypes: %s: %v", err.message, err.kind)
	}
	return fmt.Sprintf("gninatypes file %s: %s: %v", err.filename, err.message, err.kind)
}

//Decorate adds the name of a caller to the error and returns the resulting stack.
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the file to which the error is associated.
func (err *Error) FileName() string { return err.filename }

//Critical is always true. No error in this package can be ignored.
func (err *Error) Critical() bool { return true }

func (err *Error) Unwrap() error { return err.kind }

//errDecorate decorates err with the caller's name if err is an *Error, and returns it.
func errDecorate(err error, caller string) error {
	var e *Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}
