/*
 * hamiltonian.go, part of govqe.
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
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

//PauliOp is a single-qubit Pauli operator acting on a wire.
type PauliOp struct {
	Wire  int
	Pauli byte //'I', 'X', 'Y' or 'Z'
}

func (P PauliOp) String() string {
	return string(P.Pauli) + strconv.Itoa(P.Wire)
}

//PauliTerm is a Pauli word multiplied by a coefficient (in Hartree). A term
//without operators is the identity.
type PauliTerm struct {
	Coeff float64
	Ops   []PauliOp
}

//Word returns the Pauli word of the term, as space-separated tokens like "Z0 X2".
//The identity gives an empty string.
func (T PauliTerm) Word() string {
	s := make([]string, len(T.Ops))
	for i, v := range T.Ops {
		s[i] = v.String()
	}
	return strings.Join(s, " ")
}

func (T PauliTerm) String() string {
	w := T.Word()
	if w == "" {
		w = "I"
	}
	return fmt.Sprintf("(%.8f) [%s]", T.Coeff, w)
}

//ParsePauliWord parses a word like "Z0 X2" or "Y0 X1 X2 Y3". An empty string, or "I",
//is the identity and gives no operators. Identity factors on specific wires ("I3")
//are dropped.
func ParsePauliWord(word string) ([]PauliOp, error) {
	fields := strings.Fields(word)
	ops := make([]PauliOp, 0, len(fields))
	if len(fields) == 1 && fields[0] == "I" {
		return ops, nil
	}
	for _, f := range fields {
		if len(f) < 2 {
			return nil, fmt.Errorf("invalid Pauli token %q", f)
		}
		p := f[0]
		if !strings.ContainsRune("IXYZ", rune(p)) {
			return nil, fmt.Errorf("invalid Pauli operator %q in %q", p, f)
		}
		w, err := strconv.Atoi(f[1:])
		if err != nil || w < 0 {
			return nil, fmt.Errorf("invalid wire in Pauli token %q", f)
		}
		if p == 'I' {
			continue
		}
		ops = append(ops, PauliOp{Wire: w, Pauli: p})
	}
	return ops, nil
}

//Hamiltonian is a qubit Hamiltonian expressed as a weighted sum of Pauli words.
type Hamiltonian struct {
	Qubits int
	Terms  []PauliTerm
}

//Validate checks that every wire is in [0, Qubits), every operator is a valid
//Pauli letter, no wire appears twice in a term and every coefficient is finite.
func (H *Hamiltonian) Validate() error {
	if H == nil || H.Qubits <= 0 {
		return Error{ErrBadHamilton, "govqe", "", "no qubits", []string{"Validate"}, true}
	}
	for i, t := range H.Terms {
		if math.IsNaN(t.Coeff) || math.IsInf(t.Coeff, 0) {
			return Error{ErrBadHamilton, "govqe", "", fmt.Sprintf("term %d has coefficient %v", i, t.Coeff), []string{"Validate"}, true}
		}
		seen := make(map[int]bool, len(t.Ops))
		for _, o := range t.Ops {
			if o.Wire < 0 || o.Wire >= H.Qubits {
				return Error{ErrBadHamilton, "govqe", "", fmt.Sprintf("term %d acts on wire %d of %d", i, o.Wire, H.Qubits), []string{"Validate"}, true}
			}
			if !strings.ContainsRune("IXYZ", rune(o.Pauli)) {
				return Error{ErrBadHamilton, "govqe", "", fmt.Sprintf("term %d has operator %q", i, o.Pauli), []string{"Validate"}, true}
			}
			if seen[o.Wire] {
				return Error{ErrBadHamilton, "govqe", "", fmt.Sprintf("term %d repeats wire %d", i, o.Wire), []string{"Validate"}, true}
			}
			seen[o.Wire] = true
		}
	}
	return nil
}

//Coeffs returns a slice with the coefficients of all terms.
func (H *Hamiltonian) Coeffs() []float64 {
	ret := make([]float64, len(H.Terms))
	for i, t := range H.Terms {
		ret[i] = t.Coeff
	}
	return ret
}

//Identity returns the sum of the coefficients of the identity terms, i.e.
//the constant energy shift (which includes the nuclear repulsion).
func (H *Hamiltonian) Identity() float64 {
	var id []float64
	for _, t := range H.Terms {
		if len(t.Ops) == 0 {
			id = append(id, t.Coeff)
		}
	}
	if len(id) == 0 {
		return 0
	}
	return floats.Sum(id)
}

//Norm1 returns the sum of the absolute values of the coefficients, which bounds
//the absolute value of any expectation value of the Hamiltonian.
func (H *Hamiltonian) Norm1() float64 {
	c := H.Coeffs()
	if len(c) == 0 {
		return 0
	}
	return floats.Norm(c, 1)
}

func (H *Hamiltonian) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hamiltonian: terms = %d, wires = %d", len(H.Terms), H.Qubits)
	for _, t := range H.Terms {
		b.WriteString("\n  ")
		b.WriteString(t.String())
	}
	return b.String()
}
