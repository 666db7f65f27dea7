/*
 * json.go, part of govqe.
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

package chemjson

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	chem "github.com/rmera/govqe"
)

//An easily JSON-serializable error type. The backend program fills one
//when it can't do its job.
type Error struct {
	deco      []string
	IsError   bool //If this is false (no error) all the other fields will be at their zero-values.
	InInput   bool //If error, was it in parsing the input?
	InProcess bool
	InOutput  bool   //was it in preparing the output?
	Function  string //which function gave the error
	Message   string //the error itself
}

//Error implements the error interface
func (J *Error) Error() string {
	if J.Function != "" {
		return J.Function + ": " + J.Message
	}
	return J.Message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (J *Error) Decorate(dec string) []string {
	if dec == "" {
		return J.deco
	}
	J.deco = append(J.deco, dec)
	return J.deco
}

//Serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - ")) // Yo, dawg, I heard you like errors, so I got an error while serializing your error so you can... you know the drill.
	}
	return ret
}

//Takes an error and some additional info to create a json-marshal-ble error
func NewError(where, function string, err error) *Error {
	jerr := new(Error)
	jerr.IsError = true
	switch where {
	case "input":
		jerr.InInput = true
	case "output":
		jerr.InOutput = true
	default:
		jerr.InProcess = true
	}
	jerr.Function = function
	jerr.Message = err.Error()
	return jerr
}

//Term is one term of a qubit Hamiltonian: a coefficient (in Hartree) and a
//Pauli word, written as space-separated tokens like "Z0 X2". The empty string is the
//identity.
type Term struct {
	Coeff float64
	Ops   string
}

//HamiltonianRequest asks the backend to build the qubit Hamiltonian of a molecule.
type HamiltonianRequest struct {
	Symbols         []string
	Coords          []float64 //flat x0 y0 z0 x1..., in Bohr
	Basis           string
	Charge          int
	Multiplicity    int
	Mapping         string
	Method          string
	ActiveElectrons int `json:",omitempty"`
	ActiveOrbitals  int `json:",omitempty"`
}

//HamiltonianReply is the backend answer to a HamiltonianRequest.
type HamiltonianReply struct {
	Qubits int
	Terms  []Term
	Error  *Error `json:",omitempty"`
}

//ExpvalRequest asks the backend for the expectation value of a Hamiltonian on the state
//prepared by a Hartree-Fock reference followed by one double-excitation gate per parameter.
type ExpvalRequest struct {
	Qubits      int
	Terms       []Term
	HFState     []int
	Excitations [][4]int
	Params      []float64
}

//ExpvalReply is the backend answer to an ExpvalRequest.
type ExpvalReply struct {
	Energy float64
	Error  *Error `json:",omitempty"`
}

//Geometry returns the symbols and the flat coordinates, converted to Bohr, of g, as
//needed for a HamiltonianRequest.
func Geometry(g chem.Geometry) ([]string, []float64) {
	symbols := make([]string, g.Len())
	coords := make([]float64, 0, 3*g.Len())
	for i := 0; i < g.Len(); i++ {
		symbols[i] = g.Symbol(i)
		c := g.Coord(i)
		coords = append(coords, c[0]*chem.A2Bohr, c[1]*chem.A2Bohr, c[2]*chem.A2Bohr)
	}
	return symbols, coords
}

//Encode writes v as one line of JSON to out.
func Encode(out io.Writer, v interface{}) *Error {
	enc := json.NewEncoder(out)
	if err := enc.Encode(v); err != nil {
		return NewError("output", "chemjson.Encode", err)
	}
	return nil
}

//Decode reads one JSON document from in into v.
func Decode(in io.Reader, v interface{}) *Error {
	dec := json.NewDecoder(in)
	if err := dec.Decode(v); err != nil {
		if err == io.EOF {
			err = fmt.Errorf("no JSON document found")
		}
		return NewError("input", "chemjson.Decode", err)
	}
	return nil
}
