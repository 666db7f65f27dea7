/*
 * main_test.go, part of govqe.
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

package main

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml"
	chem "github.com/rmera/govqe"
)

//A fake backend with the H2 minimal-basis Hamiltonian and a one-parameter energy
//with its minimum at -0.2.
const fakeBackend = `#!/bin/sh
case "$1" in
hamiltonian)
	echo '{"Qubits":4,"Terms":[{"Coeff":-0.04207898,"Ops":""},{"Coeff":0.17771287,"Ops":"Z0"}]}'
	;;
expval)
	p=$(grep -o '"Params":\[[^]]*\]' "$2" | sed 's/.*\[//; s/\]//')
	awk -v p="$p" 'BEGIN { printf "{\"Energy\":%.12f}\n", -1.13618945 + 0.5*(1-cos(p+0.2)) }'
	;;
esac
`

func readSummary(Te *testing.T, name string) *summary {
	Te.Helper()
	f, err := os.Open(name)
	if err != nil {
		Te.Fatal(err)
	}
	defer f.Close()
	s := new(summary)
	if err := toml.NewDecoder(f).Decode(s); err != nil {
		Te.Fatal(err)
	}
	return s
}

func TestParse(Te *testing.T) {
	var out bytes.Buffer
	root := newRootCmd(&out)
	root.SetArgs([]string{"parse", "--bohr", "../../test/h2.xyz"})
	if err := root.Execute(); err != nil {
		Te.Fatal(err)
	}
	s := out.String()
	if !strings.Contains(s, "2 atoms, 2 electrons") || !strings.Contains(s, "(Bohr)") {
		Te.Errorf("unexpected output:\n%s", s)
	}
	if !strings.Contains(s, "Bond length (A): 0.742000") {
		Te.Errorf("wrong bond length:\n%s", s)
	}
	if !strings.Contains(s, "0.70108983") {
		Te.Errorf("coordinates not in Bohr:\n%s", s)
	}
	root = newRootCmd(&out)
	root.SetArgs([]string{"parse", filepath.Join(Te.TempDir(), "nothere.xyz")})
	if err := root.Execute(); err == nil {
		Te.Error("expected an error for a missing file")
	}
}

func TestRun(Te *testing.T) {
	dir := Te.TempDir()
	script := filepath.Join(dir, "backend.sh")
	if err := os.WriteFile(script, []byte(fakeBackend), 0755); err != nil {
		Te.Fatal(err)
	}
	sumname := filepath.Join(dir, "h2.toml")
	plotname := filepath.Join(dir, "h2")
	var out bytes.Buffer
	root := newRootCmd(&out)
	root.SetArgs([]string{"run", "--backend", "sh " + script, "--workdir", filepath.Join(dir, "work"),
		"--summary", sumname, "--plot", plotname, "--timeout", "30s", "../../test/h2.xyz"})
	if err := root.Execute(); err != nil {
		Te.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "Energy: -1.1361") {
		Te.Errorf("unexpected output %q", out.String())
	}
	s := readSummary(Te, sumname)
	if !s.Converged || s.Qubits != 4 || s.Electrons != 2 || s.Basis != "sto-3g" {
		Te.Errorf("wrong summary %+v", s)
	}
	if math.Abs(s.Energy+1.13618945) > 1e-5 || len(s.Energies) != s.Iterations+1 {
		Te.Errorf("wrong energies in the summary %+v", s)
	}
	if !strings.HasPrefix(s.Job, "h2-") || s.BackendCalls == 0 {
		Te.Errorf("wrong job data %s %d", s.Job, s.BackendCalls)
	}
	if _, err := os.Stat(plotname + ".png"); err != nil {
		Te.Error(err)
	}
}

func TestJobName(Te *testing.T) {
	a, b := jobName("/data/water.xyz.gz"), jobName("water.xyz")
	if !strings.HasPrefix(a, "water-") || !strings.HasPrefix(b, "water-") || a == b {
		Te.Errorf("wrong job names %s %s", a, b)
	}
}

func TestReportError(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "broken.xyz")
	if err := os.WriteFile(name, []byte("2\nbroken\nH 0 0 0\nH 0 zero 0\n"), 0644); err != nil {
		Te.Fatal(err)
	}
	_, err := chem.XYZFileRead(name)
	if err == nil {
		Te.Fatal("expected an error for a malformed file")
	}
	var buf bytes.Buffer
	reportError(slog.New(slog.NewTextHandler(&buf, nil)), err)
	out := buf.String()
	for _, want := range []string{"file=" + name, "format=xyz", "critical=true"} {
		if !strings.Contains(out, want) {
			Te.Errorf("%q missing from the log line %q", want, out)
		}
	}
	buf.Reset()
	reportError(slog.New(slog.NewTextHandler(&buf, nil)), errors.New("no backend"))
	if out := buf.String(); !strings.Contains(out, "no backend") || strings.Contains(out, "file=") {
		Te.Errorf("wrong log line for a plain error: %q", out)
	}
}
