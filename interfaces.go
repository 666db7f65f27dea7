/*
 * interfaces.go, part of govqe.
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

//Geometry is the read-only view of a molecular geometry that the QM
//collaborators need. *Molecule implements it.
type Geometry interface {

	//Len returns the number of atoms.
	Len() int

	//Symbol returns the element symbol of the ith atom. Should panic if
	//out of range.
	Symbol(i int) string

	//Coord returns the cartesian coordinates, in A, of the ith atom.
	Coord(i int) [3]float64
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Adds the given string to the decoration slice and returns the slice. An empty string just returns the current value.
	//The decorate slice should contain a list of functions in the calling stack, plus, for each function any relevant information, or nothing. If information is to be added to an element of the slice, it should be in this format: "FunctionName: Extra info"
}

// FileError is the interface for errors tied to an input file.
type FileError interface {
	Error
	Critical() bool
	FileName() string
	Format() string
}
