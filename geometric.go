/*
 * geometric.go, part of govqe.
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

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//CenterOfMass returns the center of mass of mol, in A, and an error.
//If geometric is true, all the atoms get the same mass, so the geometric center is returned.
func CenterOfMass(mol *Molecule, geometric bool) ([3]float64, error) {
	var ret [3]float64
	if mol == nil || mol.Len() == 0 {
		return ret, fmt.Errorf("no atoms to get the center of mass")
	}
	masses := make([]float64, mol.Len())
	if geometric {
		for i := range masses {
			masses[i] = 1
		}
	} else {
		var err error
		masses, err = mol.Masses()
		if err != nil {
			return ret, err
		}
	}
	w := mat.NewDense(1, mol.Len(), masses)
	center := mat.NewDense(1, 3, nil)
	center.Mul(w, mol.Matrix())
	center.Scale(1.0/floats.Sum(masses), center)
	copy(ret[:], center.RawRowView(0))
	return ret, nil
}

//Distance returns the distance, in A, between the atoms i and j of mol.
//It panics if either is out of range.
func Distance(mol *Molecule, i, j int) float64 {
	a, b := mol.Coord(i), mol.Coord(j)
	return floats.Distance(a[:], b[:], 2)
}
