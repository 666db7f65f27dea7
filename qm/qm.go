/*
 * qm.go, part of govqe.
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
	"context"

	chem "github.com/rmera/govqe"
)

//Builder is anything that can build the qubit Hamiltonian of a molecule.
//The number of qubits is given in the Qubits field of the returned Hamiltonian.
type Builder interface {

	//BuildHamiltonian builds the Hamiltonian for the molecule mol, whose coordinates
	//are in A, using the settings in Q.
	BuildHamiltonian(ctx context.Context, mol chem.Geometry, Q *Calc) (*Hamiltonian, error)
}

//Evaluator is anything that can obtain the expectation value of a Hamiltonian
//on the state prepared by a parameterized circuit.
type Evaluator interface {

	//Expectation returns <psi(params)|H|psi(params)>, in Hartree.
	Expectation(ctx context.Context, H *Hamiltonian, C *Circuit, params []float64) (float64, error)
}

//Calc contains the settings for building the Hamiltonian.
type Calc struct {
	Basis           string //default "sto-3g"
	Charge          int
	Multiplicity    int    //default 1
	Mapping         string //fermion-to-qubit mapping, default "jordan_wigner"
	Method          string //program used for the molecular integrals, default "dhf"
	ActiveElectrons int    //0 means all the electrons
	ActiveOrbitals  int    //0 means all the orbitals
}

//SetDefaults sets the defaults for every field which is at its zero value,
//except for the charge and the active space.
func (Q *Calc) SetDefaults() {
	if Q.Basis == "" {
		Q.Basis = "sto-3g"
	}
	if Q.Multiplicity == 0 {
		Q.Multiplicity = 1
	}
	if Q.Mapping == "" {
		Q.Mapping = "jordan_wigner"
	}
	if Q.Method == "" {
		Q.Method = "dhf"
	}
}
