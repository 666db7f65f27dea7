/*
 * json_test.go, part of govqe.
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
	"bytes"
	"fmt"
	"math"
	"strings"
	"testing"

	chem "github.com/rmera/govqe"
)

func TestGeometry(Te *testing.T) {
	mol, err := chem.XYZFileRead("../test/h2.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	symbols, coords := Geometry(mol)
	if len(symbols) != 2 || len(coords) != 6 {
		Te.Fatalf("wrong sizes %d %d", len(symbols), len(coords))
	}
	if math.Abs(coords[0]-0.3710*chem.A2Bohr) > 1e-12 || math.Abs(coords[3]+0.3710*chem.A2Bohr) > 1e-12 {
		Te.Errorf("coordinates not in Bohr: %v", coords)
	}
}

func TestRequestReply(Te *testing.T) {
	var buf bytes.Buffer
	req := &ExpvalRequest{
		Qubits:      4,
		Terms:       []Term{{-0.09, ""}, {0.17, "Z0"}, {0.045, "Y0 X1 X2 Y3"}},
		HFState:     []int{1, 1, 0, 0},
		Excitations: [][4]int{{0, 1, 2, 3}},
		Params:      []float64{0.1},
	}
	if err := Encode(&buf, req); err != nil {
		Te.Fatal(err)
	}
	if !strings.HasSuffix(buf.String(), "\n") || strings.Count(buf.String(), "\n") != 1 {
		Te.Errorf("expected a single JSON line, got %q", buf.String())
	}
	got := new(ExpvalRequest)
	if err := Decode(&buf, got); err != nil {
		Te.Fatal(err)
	}
	if got.Qubits != 4 || got.Terms[2].Ops != "Y0 X1 X2 Y3" || got.Excitations[0] != [4]int{0, 1, 2, 3} {
		Te.Errorf("wrong decoded request %+v", got)
	}
	reply := new(ExpvalReply)
	in := `{"Energy": 0, "Error": {"IsError": true, "InProcess": true, "Function": "expval", "Message": "no such basis"}}`
	if err := Decode(strings.NewReader(in), reply); err != nil {
		Te.Fatal(err)
	}
	if reply.Error == nil || !reply.Error.IsError || reply.Error.Error() != "expval: no such basis" {
		Te.Errorf("wrong error %+v", reply.Error)
	}
	if err := Decode(strings.NewReader(""), reply); err == nil || !err.InInput {
		Te.Errorf("expected an input error for an empty reply, got %v", err)
	}
}

func TestError(Te *testing.T) {
	err := NewError("output", "TestError", fmt.Errorf("boom"))
	if !err.InOutput || err.InInput || err.InProcess {
		Te.Errorf("wrong flags %+v", err)
	}
	deco := err.Decorate("caller")
	if len(deco) != 1 || deco[0] != "caller" {
		Te.Errorf("wrong decoration %v", deco)
	}
	if !bytes.Contains(err.Marshal(), []byte(`"Message":"boom"`)) {
		Te.Errorf("wrong serialization %s", err.Marshal())
	}
	var _ chem.Error = err
}
