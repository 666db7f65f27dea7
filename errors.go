/*
 * errors.go, part of govqe.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package chem

import "fmt"

//Reasons for a FormatError. They are the messages returned by FormatError.Reason,
//so callers can compare against them.
const (
	EmptyInput        = "empty input"
	InvalidAtomCount  = "missing or invalid atom count"
	MissingComment    = "missing comment line"
	AtomCountMismatch = "atom count mismatch"
	ExtraTrailingData = "extra trailing data"
	MalformedAtomLine = "malformed atom line: expected symbol and 3 coordinates"
	NonNumericCoord   = "non-numeric coordinate"
)

//FormatError is returned, as a pointer, for any malformed XYZ input. It fulfills chem.Error.
type FormatError struct {
	reason   string
	detail   string //extra information, may be empty
	line     int    //1-based line number, 0 if the problem is not tied to a line
	filename string //empty if the input didn't come from a file
	deco     []string
}

func newFormatError(reason string, line int, detail string, caller string) *FormatError {
	return &FormatError{reason: reason, detail: detail, line: line, deco: []string{caller}}
}

//Error returns a string with an error message.
func (err *FormatError) Error() string {
	msg := "XYZ format error"
	if err.filename != "" {
		msg = fmt.Sprintf("%s in %s", msg, err.filename)
	}
	if err.line > 0 {
		msg = fmt.Sprintf("%s, line %d", msg, err.line)
	}
	msg = msg + ": " + err.reason
	if err.detail != "" {
		msg = msg + ": " + err.detail
	}
	return msg
}

//Reason returns one of the reason constants (EmptyInput, InvalidAtomCount, etc.)
func (err *FormatError) Reason() string { return err.reason }

//Line returns the 1-based line where the problem was found, or 0.
func (err *FormatError) Line() int { return err.line }

//FileName returns the name of the offending file, or an empty string.
func (err *FormatError) FileName() string { return err.filename }

func (err *FormatError) Format() string { return "xyz" }

//Critical is always true. A malformed molecule can't be defaulted.
func (err *FormatError) Critical() bool { return true }

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err *FormatError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//errDecorate decorates err with caller if it implements Error, and returns it.
//Other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
		return err2
	}
	return err
}
