/*
 * qm_test.go, part of govqe.
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
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	chem "github.com/rmera/govqe"
	"github.com/rmera/govqe/chemjson"
)

//A fake backend: it checks a bit of the request and replies with
//the minimal-basis H2 Hamiltonian, or with a fixed energy.
const fakeBackend = `#!/bin/sh
case "$1" in
hamiltonian)
	grep -q '"Basis":"sto-3g"' "$2" || { echo "bad basis" >&2; exit 1; }
	grep -q '"Symbols":\["H","H"\]' "$2" || { echo "bad symbols" >&2; exit 1; }
	echo '{"Qubits":4,"Terms":[{"Coeff":-0.04207898,"Ops":""},{"Coeff":0.17771287,"Ops":"Z0"},{"Coeff":0.17771287,"Ops":"Z1"},{"Coeff":-0.24274281,"Ops":"Z2"},{"Coeff":-0.24274281,"Ops":"Z3"},{"Coeff":0.17059738,"Ops":"Z0 Z1"},{"Coeff":0.04475014,"Ops":"Y0 X1 X2 Y3"},{"Coeff":-0.04475014,"Ops":"Y0 Y1 X2 X3"}]}'
	;;
expval)
	grep -q '"Params":\[0.2\]' "$2" || { echo "bad params" >&2; exit 1; }
	echo '{"Energy":-1.13618945}'
	;;
*)
	echo "unknown job $1" >&2
	exit 2
	;;
esac
`

func newFakeHandle(Te *testing.T) *ExtHandle {
	Te.Helper()
	dir := Te.TempDir()
	script := filepath.Join(dir, "backend.sh")
	if err := os.WriteFile(script, []byte(fakeBackend), 0755); err != nil {
		Te.Fatal(err)
	}
	h := NewExtHandle()
	h.SetCommand("sh " + script)
	h.SetDir(dir)
	h.SetName("h2")
	return h
}

//TestExtHandle builds the H2 Hamiltonian and obtains an energy through a fake backend.
func TestExtHandle(Te *testing.T) {
	mol, err := chem.XYZFileRead("../test/h2.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	h := newFakeHandle(Te)
	ctx := context.Background()
	H, err := h.BuildHamiltonian(ctx, mol, &Calc{Charge: 0})
	if err != nil {
		Te.Fatal(err)
	}
	if H.Qubits != 4 || len(H.Terms) != 8 {
		Te.Fatalf("wrong Hamiltonian %v", H)
	}
	if w := H.Terms[6].Word(); w != "Y0 X1 X2 Y3" {
		Te.Errorf("wrong word %q", w)
	}
	if math.Abs(H.Identity()+0.04207898) > 1e-12 {
		Te.Errorf("wrong identity coefficient %f", H.Identity())
	}
	req, err := os.ReadFile(filepath.Join(h.dir, "h2.hamiltonian.json"))
	if err != nil {
		Te.Fatal(err)
	}
	if !strings.Contains(string(req), `"Mapping":"jordan_wigner"`) || !strings.Contains(string(req), `"Multiplicity":1`) {
		Te.Errorf("defaults not in the request: %s", req)
	}
	var hreq chemjson.HamiltonianRequest
	if jerr := chemjson.Decode(strings.NewReader(string(req)), &hreq); jerr != nil {
		Te.Fatal(jerr)
	}
	if len(hreq.Coords) != 6 || math.Abs(hreq.Coords[0]-0.371*chem.A2Bohr) > 1e-10 {
		Te.Errorf("coordinates not sent in Bohr: %v", hreq.Coords)
	}
	C, err := NewCircuit(2, H.Qubits)
	if err != nil {
		Te.Fatal(err)
	}
	E, err := h.Expectation(ctx, H, C, []float64{0.2})
	if err != nil {
		Te.Fatal(err)
	}
	if E != -1.13618945 {
		Te.Errorf("wrong energy %f", E)
	}
	if h.Calls() != 2 {
		Te.Errorf("expected 2 calls, got %d", h.Calls())
	}
	if _, err := h.Expectation(ctx, H, C, []float64{0.2, 0.1}); err == nil {
		Te.Error("expected an error for a wrong number of parameters")
	}
	if h.Calls() != 2 {
		Te.Error("the program was run with invalid parameters")
	}
}

func TestExtHandleErrors(Te *testing.T) {
	dir := Te.TempDir()
	ctx := context.Background()
	H := &Hamiltonian{Qubits: 4, Terms: []PauliTerm{{Coeff: 1}}}
	C, _ := NewCircuit(2, 4)
	cases := []struct {
		command string
		message string
	}{
		{"false", ErrNotRunning},
		{"true", ErrNoReply},
		{`reply() { echo '{"Energy":0,"Error":{"IsError":true,"Message":"no basis"}}'; }; reply`, ErrBackend},
		{`reply() { echo '{"Energy":"a lot"}'; }; reply`, ErrNoReply},
	}
	for _, c := range cases {
		h := NewExtHandle()
		h.SetDir(dir)
		h.SetCommand(c.command)
		_, err := h.Expectation(ctx, H, C, []float64{0})
		var qerr Error
		if !errors.As(err, &qerr) {
			Te.Errorf("%s: expected a qm.Error, got %v", c.command, err)
			continue
		}
		if qerr.Message() != c.message {
			Te.Errorf("%s: expected %q, got %q (%v)", c.command, c.message, qerr.Message(), err)
		}
		if deco := qerr.Decorate(""); len(deco) == 0 || deco[len(deco)-1] != "Expectation" {
			Te.Errorf("%s: wrong decoration %v", c.command, deco)
		}
	}
}

func TestExtHandleTimeout(Te *testing.T) {
	h := NewExtHandle()
	h.SetDir(Te.TempDir())
	h.SetCommand("exec sleep 10 #")
	h.SetTimeout(100 * time.Millisecond)
	start := time.Now()
	one, err := chem.XYZStringRead("1\nhydrogen atom\nH 0 0 0\n")
	if err != nil {
		Te.Fatal(err)
	}
	_, err = h.BuildHamiltonian(context.Background(), one, nil)
	if err == nil {
		Te.Fatal("expected a timeout")
	}
	if time.Since(start) > 5*time.Second {
		Te.Errorf("the timeout was not honored")
	}
	if !strings.Contains(err.Error(), context.DeadlineExceeded.Error()) {
		Te.Errorf("unexpected error %v", err)
	}
	empty, err := chem.XYZStringRead("0\nnothing\n")
	if err != nil {
		Te.Fatal(err)
	}
	if _, err := h.BuildHamiltonian(context.Background(), empty, nil); err == nil {
		Te.Error("expected an error for a molecule without atoms")
	}
	if h.Calls() != 1 {
		Te.Error("the program was run for a molecule without atoms")
	}
}
