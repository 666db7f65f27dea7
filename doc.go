/*
 * doc.go, part of govqe.
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

/*Package chem is the main package of the govqe library. It provides the molecule
structure and the facilities for reading and writing XYZ geometries that feed a
variational quantum eigensolver calculation.



	**govqe Capabilities**


    Reads and writes XYZ files and blocks, including gzip or zstd compressed files.
	Malformed input gives a *FormatError, never a partially built molecule.

    Converts geometries to Bohr and counts electrons for a given charge.

    Builds qubit Hamiltonians and evaluates ansatz expectation values by talking,
	through JSON, to an external quantum chemistry program (package qm and chemjson).
	Any program using a quantum simulation library can be plugged in.

    Optimizes the ansatz parameters with gonum's gradient descent (package vqe) and
	plots the optimization trace (package chemplot).


A Molecule is immutable. Coordinates are returned as [3]float64 (in A) or, for linear
algebra, as an Nx3 gonum mat.Dense, one atom per row.*/
package chem
