/*
 * summary.go, part of govqe.
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
	"os"
	"time"

	"github.com/pelletier/go-toml"
	"github.com/rmera/govqe/internal/config"
	"github.com/rmera/govqe/vqe"
)

//summary is what is written, in TOML format, at the end of a run.
type summary struct {
	Molecule      string    `toml:"molecule"`
	Job           string    `toml:"job"`
	Energy        float64   `toml:"energy"`
	Converged     bool      `toml:"converged"`
	Iterations    int       `toml:"iterations"`
	Qubits        int       `toml:"qubits"`
	Electrons     int       `toml:"electrons"`
	Params        []float64 `toml:"params"`
	Energies      []float64 `toml:"energies"`
	BackendCalls  int       `toml:"backend_calls"`
	Seconds       float64   `toml:"seconds"`
	Basis         string    `toml:"basis"`
	Charge        int       `toml:"charge"`
	Multiplicity  int       `toml:"multiplicity"`
	Mapping       string    `toml:"mapping"`
	StepSize      float64   `toml:"step_size"`
	ConvTol       float64   `toml:"conv_tol"`
	MaxIterations int       `toml:"max_iter"`
}

func newSummary(xyzname, job string, cfg *config.Config, res *vqe.Result, calls int, elapsed time.Duration) *summary {
	return &summary{
		Molecule:      xyzname,
		Job:           job,
		Energy:        res.Energy,
		Converged:     res.Converged,
		Iterations:    res.Iterations,
		Qubits:        res.Qubits,
		Electrons:     res.Electrons,
		Params:        res.Params,
		Energies:      res.Energies,
		BackendCalls:  calls,
		Seconds:       elapsed.Seconds(),
		Basis:         cfg.Calc.Basis,
		Charge:        cfg.Calc.Charge,
		Multiplicity:  cfg.Calc.Multiplicity,
		Mapping:       cfg.Calc.Mapping,
		StepSize:      cfg.Optimizer.StepSize,
		ConvTol:       cfg.Optimizer.ConvTol,
		MaxIterations: cfg.Optimizer.MaxIter,
	}
}

//WriteFile writes the summary to a file named name, which is overwritten if it exists.
func (S *summary) WriteFile(name string) error {
	data, err := toml.Marshal(*S)
	if err != nil {
		return err
	}
	return os.WriteFile(name, data, 0644)
}
