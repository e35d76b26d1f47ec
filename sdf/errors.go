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

package sdf

import (
	"errors"
	"fmt"
)

var (
	ErrFormat      = errors.New("malformed SDF")
	ErrUnsupported = errors.New("unsupported SDF feature")
	ErrNoMolecule  = errors.New("no molecule in SDF")
	ErrNoConformer = errors.New("molecule has no conformer")
	ErrIndex       = errors.New("atom index out of range")
)

//Error is the error type for SDF reading and writing.
type Error struct {
	message  string
	filename string
	line     int //0 if not applicable
	deco     []string
	kind     error
}

func newError(kind error, filename string, line int, format string, args ...interface{}) *Error {
	return &Error{message: fmt.Sprintf(format, args...), filename: filename, line: line, kind: kind}
}

func (err *Error) Error() string {
	where := "sdf"
	if err.filename != "" {
		where = "sdf file " + err.filename
	}
	if err.line > 0 {
		where = fmt.Sprintf("%s, line %d", where, err.line)
	}
	return fmt.Sprintf("%s: %s: %v", where, err.message, err.kind)
}

//Decorate adds the name of a caller to the error and returns the resulting stack.
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the file to which the error is associated, if any.
func (err *Error) FileName() string { return err.filename }

//Line returns the line where the error was found, or 0.
func (err *Error) Line() int { return err.line }

//Critical is always true.
func (err *Error) Critical() bool { return true }

func (err *Error) Unwrap() error { return err.kind }

func errDecorate(err error, caller string) error {
	var e *Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}
