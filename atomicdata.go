/*
 * atomicdata.go, part of govqe.
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

//A map for assigning atomic numbers to elements.
//Only the first 4 rows of the periodic table are present, which is already
//more than any VQE calculation can handle.
var symbolZ = map[string]int{
	"H":  1,
	"He": 2,
	"Li": 3,
	"Be": 4,
	"B":  5,
	"C":  6,
	"N":  7,
	"O":  8,
	"F":  9,
	"Ne": 10,
	"Na": 11,
	"Mg": 12,
	"Al": 13,
	"Si": 14,
	"P":  15,
	"S":  16,
	"Cl": 17,
	"Ar": 18,
	"K":  19,
	"Ca": 20,
	"Sc": 21,
	"Ti": 22,
	"V":  23,
	"Cr": 24,
	"Mn": 25,
	"Fe": 26,
	"Co": 27,
	"Ni": 28,
	"Cu": 29,
	"Zn": 30,
	"Ga": 31,
	"Ge": 32,
	"As": 33,
	"Se": 34,
	"Br": 35,
	"Kr": 36,
}

//A map for assigning mass to elements.
//Note that just common elements are present
var symbolMass = map[string]float64{
	"H":  1.008,
	"He": 4.0026,
	"Li": 6.94,
	"Be": 9.012,
	"B":  10.81,
	"C":  12.01,
	"N":  14.01,
	"O":  16.00,
	"F":  18.998,
	"Ne": 20.180,
	"Na": 22.99,
	"Mg": 24.30,
	"Si": 28.08,
	"P":  30.97,
	"S":  32.06,
	"Cl": 35.45,
	"K":  39.1,
	"Ca": 40.08,
	"Mn": 54.94,
	"Fe": 55.84,
	"Co": 58.93,
	"Cu": 63.55,
	"Zn": 65.38,
	"Se": 78.96,
	"Br": 79.904,
}

//AtomicNumber returns the atomic number for the element symbol, or an error
//if the symbol is not known.
func AtomicNumber(symbol string) (int, error) {
	z, ok := symbolZ[symbol]
	if !ok {
		return 0, fmt.Errorf("unknown element symbol %q", symbol)
	}
	return z, nil
}

//Mass returns the atomic mass (in a.m.u.) for the element symbol, or an error
//if the symbol is not known.
func Mass(symbol string) (float64, error) {
	m, ok := symbolMass[symbol]
	if !ok {
		return 0, fmt.Errorf("no mass for element symbol %q", symbol)
	}
	return m, nil
}

//Electrons returns the number of electrons of the molecule with the given total charge.
func (M *Molecule) Electrons(charge int) (int, error) {
	var e int
	for _, s := range M.symbols {
		z, err := AtomicNumber(s)
		if err != nil {
			return 0, err
		}
		e += z
	}
	e -= charge
	if e < 0 {
		return 0, fmt.Errorf("charge %d leaves %d electrons", charge, e)
	}
	return e, nil
}

//Masses returns a slice with the mass of each atom.
func (M *Molecule) Masses() ([]float64, error) {
	ret := make([]float64, M.Len())
	for i, s := range M.symbols {
		m, err := Mass(s)
		if err != nil {
			return nil, err
		}
		ret[i] = m
	}
	return ret, nil
}
