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

package qm

import "fmt"

//Error is the error type for the QM collaborators. It fulfills chem.Error.
type Error struct {
	message    string
	code       string //the name of the program that failed
	inputname  string
	additional string
	deco       []string
	critical   bool
}

func (err Error) Error() string {
	msg := fmt.Sprintf("%s (%s, input %s)", err.message, err.code, err.inputname)
	if err.additional != "" {
		msg = msg + ": " + err.additional
	}
	return msg
}

//Code returns the name of the program that gave the error.
func (err Error) Code() string { return err.code }

//InputName returns the name of the input that caused the error.
func (err Error) InputName() string { return err.inputname }

//Message returns the error message, one of the Err* constants.
func (err Error) Message() string { return err.message }

//Critical returns false only for problems that still allow using the results.
func (err Error) Critical() bool { return err.critical }

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice. The receiver is a copy, so the new slice is only
//seen through the return value.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

const (
	ErrCantInput    = "Can't build input file"
	ErrNotRunning   = "Program not running or failed"
	ErrNoReply      = "Can't read the reply of the program"
	ErrBackend      = "The program reported an error"
	ErrBadHamilton  = "Invalid Hamiltonian"
	ErrBadCircuit   = "Invalid circuit"
	ErrNoEnergy     = "Can't obtain energy"
	ErrMissingInput = "Missing data for the calculation"
)

//errDecorate returns a copy of err with caller added to its decoration, if err is an Error.
//Other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	if e, ok := err.(Error); ok {
		e.deco = e.Decorate(caller)
		return e
	}
	return err
}
