/*
 * external.go, part of govqe.
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
	"bytes"
	"context"
	"fmt"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	chem "github.com/rmera/govqe"
	"github.com/rmera/govqe/chemjson"
)

const extProgram = "backend"

//ExtHandle runs an external program that builds Hamiltonians and evaluates
//circuits. The program is called as
//
//	command hamiltonian input.json
//	command expval input.json
//
//where input.json contains a chemjson.HamiltonianRequest or a chemjson.ExpvalRequest,
//respectively, and must print the corresponding reply, as JSON, to its standard output.
//It implements both Builder and Evaluator.
type ExtHandle struct {
	command   string
	inputname string
	dir       string
	timeout   time.Duration
	calls     int
}

//NewExtHandle returns a handle with the default settings.
func NewExtHandle() *ExtHandle {
	run := new(ExtHandle)
	run.SetDefaults()
	return run
}

//ExtHandle methods

//SetDefaults sets the command to the value of the GOVQE_BACKEND environment
//variable, or to "govqe-backend" if it is not defined, the input name to "govqe"
//and the directory to the current one. There is no timeout by default.
func (O *ExtHandle) SetDefaults() {
	O.command = os.Getenv("GOVQE_BACKEND")
	if O.command == "" {
		O.command = "govqe-backend"
	}
	O.inputname = "govqe"
	O.dir = "."
	O.timeout = 0
}

func (O *ExtHandle) Command() string {
	return O.command
}

//SetCommand sets the command used to run the backend. It can contain arguments,
//as it is run through the shell.
func (O *ExtHandle) SetCommand(name string) {
	O.command = name
}

//SetName sets the name for the job, used for input and output files.
func (O *ExtHandle) SetName(name string) {
	O.inputname = name
}

//SetDir sets the directory where the input and output files are written.
func (O *ExtHandle) SetDir(dir string) {
	O.dir = dir
}

//SetTimeout sets the maximum time for each call to the program. 0 means no limit.
func (O *ExtHandle) SetTimeout(t time.Duration) {
	O.timeout = t
}

//Calls returns the number of times the program has been run.
func (O *ExtHandle) Calls() int {
	return O.calls
}

//BuildHamiltonian asks the backend for the Hamiltonian of mol. The coordinates
//are sent in Bohr.
func (O *ExtHandle) BuildHamiltonian(ctx context.Context, mol chem.Geometry, Q *Calc) (*Hamiltonian, error) {
	if mol == nil || mol.Len() == 0 {
		return nil, Error{ErrMissingInput, extProgram, O.inputname, "no atoms", []string{"BuildHamiltonian"}, true}
	}
	var q Calc
	if Q != nil {
		q = *Q
	}
	q.SetDefaults()
	symbols, coords := chemjson.Geometry(mol)
	req := &chemjson.HamiltonianRequest{
		Symbols:         symbols,
		Coords:          coords,
		Basis:           q.Basis,
		Charge:          q.Charge,
		Multiplicity:    q.Multiplicity,
		Mapping:         q.Mapping,
		Method:          q.Method,
		ActiveElectrons: q.ActiveElectrons,
		ActiveOrbitals:  q.ActiveOrbitals,
	}
	reply := new(chemjson.HamiltonianReply)
	if err := O.run(ctx, "hamiltonian", req, reply); err != nil {
		return nil, errDecorate(err, "BuildHamiltonian")
	}
	if reply.Error != nil && reply.Error.IsError {
		return nil, Error{ErrBackend, extProgram, O.inputname, reply.Error.Error(), []string{"BuildHamiltonian"}, true}
	}
	H := &Hamiltonian{Qubits: reply.Qubits, Terms: make([]PauliTerm, 0, len(reply.Terms))}
	for _, t := range reply.Terms {
		ops, err := ParsePauliWord(t.Ops)
		if err != nil {
			return nil, Error{ErrBadHamilton, extProgram, O.inputname, err.Error(), []string{"ParsePauliWord", "BuildHamiltonian"}, true}
		}
		H.Terms = append(H.Terms, PauliTerm{Coeff: t.Coeff, Ops: ops})
	}
	if err := H.Validate(); err != nil {
		return nil, err
	}
	return H, nil
}

//Expectation asks the backend for the expectation value of H on the state prepared by C with
//the given parameters.
func (O *ExtHandle) Expectation(ctx context.Context, H *Hamiltonian, C *Circuit, params []float64) (float64, error) {
	if H == nil || C == nil {
		return 0, Error{ErrMissingInput, extProgram, O.inputname, "nil Hamiltonian or circuit", []string{"Expectation"}, true}
	}
	if err := C.Validate(); err != nil {
		return 0, err
	}
	if C.Qubits != H.Qubits {
		return 0, Error{ErrBadCircuit, extProgram, O.inputname, fmt.Sprintf("circuit has %d qubits, Hamiltonian %d", C.Qubits, H.Qubits), []string{"Expectation"}, true}
	}
	if len(params) != C.NumParams() {
		return 0, Error{ErrBadCircuit, extProgram, O.inputname, fmt.Sprintf("%d parameters given, %d needed", len(params), C.NumParams()), []string{"Expectation"}, true}
	}
	req := &chemjson.ExpvalRequest{
		Qubits:      H.Qubits,
		Terms:       make([]chemjson.Term, len(H.Terms)),
		HFState:     C.HFState,
		Excitations: C.Excitations,
		Params:      params,
	}
	for i, t := range H.Terms {
		req.Terms[i] = chemjson.Term{Coeff: t.Coeff, Ops: t.Word()}
	}
	reply := new(chemjson.ExpvalReply)
	if err := O.run(ctx, "expval", req, reply); err != nil {
		return 0, errDecorate(err, "Expectation")
	}
	if reply.Error != nil && reply.Error.IsError {
		return 0, Error{ErrBackend, extProgram, O.inputname, reply.Error.Error(), []string{"Expectation"}, true}
	}
	if math.IsNaN(reply.Energy) || math.IsInf(reply.Energy, 0) {
		return 0, Error{ErrNoEnergy, extProgram, O.inputname, fmt.Sprintf("got %v", reply.Energy), []string{"Expectation"}, true}
	}
	return reply.Energy, nil
}

//run writes req to the input file for job, runs the program and decodes its
//reply into reply.
func (O *ExtHandle) run(ctx context.Context, job string, req, reply interface{}) error {
	inname := filepath.Join(O.dir, fmt.Sprintf("%s.%s.json", O.inputname, job))
	outname := filepath.Join(O.dir, fmt.Sprintf("%s.%s.out.json", O.inputname, job))
	in, err := os.Create(inname)
	if err != nil {
		return Error{ErrCantInput, extProgram, O.inputname, err.Error(), []string{"os.Create", "run"}, true}
	}
	if jerr := chemjson.Encode(in, req); jerr != nil {
		in.Close()
		return Error{ErrCantInput, extProgram, O.inputname, jerr.Error(), []string{"chemjson.Encode", "run"}, true}
	}
	if err := in.Close(); err != nil {
		return Error{ErrCantInput, extProgram, O.inputname, err.Error(), []string{"os.Close", "run"}, true}
	}
	if O.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, O.timeout)
		defer cancel()
	}
	com := fmt.Sprintf("%s %s %s > %s", O.command, job, shellQuote(inname), shellQuote(outname))
	command := exec.CommandContext(ctx, "sh", "-c", com)
	var stderr bytes.Buffer
	command.Stderr = &stderr
	command.WaitDelay = time.Second
	O.calls++
	if err := command.Run(); err != nil {
		additional := err.Error()
		if ctx.Err() != nil {
			additional = ctx.Err().Error()
		}
		if s := strings.TrimSpace(stderr.String()); s != "" {
			additional = additional + ": " + s
		}
		return Error{ErrNotRunning, extProgram, O.inputname, additional, []string{"exec.Run", "run"}, true}
	}
	out, err := os.Open(outname)
	if err != nil {
		return Error{ErrNoReply, extProgram, O.inputname, err.Error(), []string{"os.Open", "run"}, true}
	}
	defer out.Close()
	if jerr := chemjson.Decode(out, reply); jerr != nil {
		return Error{ErrNoReply, extProgram, O.inputname, jerr.Error(), []string{"chemjson.Decode", "run"}, true}
	}
	return nil
}

//shellQuote quotes s for sh.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
