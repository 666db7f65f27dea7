/*
 * circuit.go, part of govqe.
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

import (
	"fmt"

	"gonum.org/v1/gonum/stat/combin"
)

//Circuit describes the trial state: the Hartree-Fock reference given by HFState,
//followed by one double-excitation gate per element of Excitations. Each gate takes
//one parameter, in the same order.
type Circuit struct {
	Qubits      int
	HFState     []int
	Excitations [][4]int //wires: two occupied spin orbitals, then two virtual ones.
}

//NumParams returns the number of parameters the circuit needs.
func (C *Circuit) NumParams() int {
	return len(C.Excitations)
}

//Validate checks that the circuit is consistent.
func (C *Circuit) Validate() error {
	if C == nil || C.Qubits <= 0 {
		return Error{ErrBadCircuit, "govqe", "", "no qubits", []string{"Validate"}, true}
	}
	if len(C.HFState) != C.Qubits {
		return Error{ErrBadCircuit, "govqe", "", fmt.Sprintf("reference state has %d entries for %d qubits", len(C.HFState), C.Qubits), []string{"Validate"}, true}
	}
	for _, v := range C.HFState {
		if v != 0 && v != 1 {
			return Error{ErrBadCircuit, "govqe", "", fmt.Sprintf("reference state has an occupation of %d", v), []string{"Validate"}, true}
		}
	}
	for i, e := range C.Excitations {
		seen := make(map[int]bool, 4)
		for _, w := range e {
			if w < 0 || w >= C.Qubits || seen[w] {
				return Error{ErrBadCircuit, "govqe", "", fmt.Sprintf("excitation %d has wires %v", i, e), []string{"Validate"}, true}
			}
			seen[w] = true
		}
	}
	return nil
}

//HartreeFock returns the occupation-number vector of the Hartree-Fock state
//for the given number of electrons and qubits (spin orbitals). The lowest
//electrons spin orbitals are occupied.
func HartreeFock(electrons, qubits int) ([]int, error) {
	if electrons < 0 || qubits <= 0 || electrons > qubits {
		return nil, Error{ErrBadCircuit, "govqe", "", fmt.Sprintf("can't place %d electrons in %d spin orbitals", electrons, qubits), []string{"HartreeFock"}, true}
	}
	ret := make([]int, qubits)
	for i := 0; i < electrons; i++ {
		ret[i] = 1
	}
	return ret, nil
}

//DoubleExcitations returns all the spin-conserving double excitations from the
//occupied to the virtual spin orbitals of the Hartree-Fock state. Even wires
//are alpha spin orbitals, odd ones beta.
func DoubleExcitations(electrons, qubits int) [][4]int {
	virtuals := qubits - electrons
	if electrons < 2 || virtuals < 2 {
		return nil
	}
	occ := combin.Combinations(electrons, 2)
	virt := combin.Combinations(virtuals, 2)
	ret := make([][4]int, 0, len(occ)*len(virt))
	for _, o := range occ {
		for _, v := range virt {
			e := [4]int{o[0], o[1], v[0] + electrons, v[1] + electrons}
			//the total spin projection must not change.
			if spin(e[0])+spin(e[1]) == spin(e[2])+spin(e[3]) {
				ret = append(ret, e)
			}
		}
	}
	return ret
}

//spin returns 1/2 or -1/2, times 2.
func spin(wire int) int {
	if wire%2 == 0 {
		return 1
	}
	return -1
}

//NewCircuit returns the Hartree-Fock plus double excitations circuit for the
//given electrons and qubits.
func NewCircuit(electrons, qubits int) (*Circuit, error) {
	hf, err := HartreeFock(electrons, qubits)
	if err != nil {
		return nil, err
	}
	return &Circuit{Qubits: qubits, HFState: hf, Excitations: DoubleExcitations(electrons, qubits)}, nil
}
