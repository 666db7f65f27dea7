/*
 * vqe.go, part of govqe.
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

package vqe

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	chem "github.com/rmera/govqe"
	"github.com/rmera/govqe/qm"
	"gonum.org/v1/gonum/floats"
)

//Result contains the outcome of a VQE run.
type Result struct {
	Energy     float64     //last energy obtained, in Hartree
	Params     []float64   //parameters giving Energy
	Energies   []float64   //Energies[0] is the energy for the initial parameters, then one per step
	Trace      [][]float64 //parameters for each element of Energies
	Iterations int         //optimization steps taken
	Converged  bool
	Qubits     int
	Electrons  int
}

const cachedEvals = 8

//evalCache keeps the last few energies obtained, so the same parameters
//are never sent to the evaluator twice in a row. The optimizer steps start
//from the point the loop just evaluated.
type evalCache struct {
	xs [][]float64
	es []float64
}

func (V *evalCache) get(x []float64) (float64, bool) {
	for i := len(V.xs) - 1; i >= 0; i-- {
		if floats.Equal(V.xs[i], x) {
			return V.es[i], true
		}
	}
	return 0, false
}

func (V *evalCache) add(x []float64, e float64) {
	if len(V.xs) == cachedEvals {
		V.xs, V.es = V.xs[1:], V.es[1:]
	}
	V.xs = append(V.xs, append([]float64(nil), x...))
	V.es = append(V.es, e)
}

//Runner performs VQE calculations. It asks Builder for the qubit Hamiltonian of
//a molecule, prepares a Hartree-Fock reference plus double excitations circuit and
//minimizes the energy, obtained from Evaluator, with Optimizer.
type Runner struct {
	Builder       qm.Builder
	Evaluator     qm.Evaluator
	Optimizer     Optimizer //default: NewGradientDescent()
	Calc          *qm.Calc
	MaxIterations int     //default 100
	ConvTol       float64 //in Hartree, default 1e-6
	Logger        *slog.Logger
}

//NewRunner returns a runner with the default settings, using b and e.
func NewRunner(b qm.Builder, e qm.Evaluator) *Runner {
	return &Runner{
		Builder:       b,
		Evaluator:     e,
		Optimizer:     NewGradientDescent(),
		Calc:          new(qm.Calc),
		MaxIterations: 100,
		ConvTol:       1e-6,
	}
}

func (R *Runner) logger() *slog.Logger {
	if R.Logger == nil {
		return slog.Default()
	}
	return R.Logger
}

//electrons returns the number of electrons to be placed in the circuit.
func (R *Runner) electrons(mol *chem.Molecule, Q *qm.Calc) (int, error) {
	if Q.ActiveElectrons > 0 {
		return Q.ActiveElectrons, nil
	}
	return mol.Electrons(Q.Charge)
}

//Run obtains the ground state energy of mol, starting from the parameters theta0.
//If theta0 is nil, all the parameters start at zero, i.e. from the Hartree-Fock state.
//The optimization stops when the energy changes by no more than ConvTol in one step,
//or after MaxIterations steps. In the latter case, the result is returned with
//Converged set to false and no error. ctx is checked between steps.
func (R *Runner) Run(ctx context.Context, mol *chem.Molecule, theta0 []float64) (*Result, error) {
	if R.Builder == nil || R.Evaluator == nil {
		return nil, fmt.Errorf("vqe: Runner needs both a Builder and an Evaluator")
	}
	if mol == nil || mol.Len() == 0 {
		return nil, fmt.Errorf("vqe: no atoms")
	}
	Q := R.Calc
	if Q == nil {
		Q = new(qm.Calc)
	}
	opt := R.Optimizer
	if opt == nil {
		opt = NewGradientDescent()
	}
	maxiter := R.MaxIterations
	if maxiter <= 0 {
		maxiter = 100
	}
	tol := R.ConvTol
	if tol <= 0 {
		tol = 1e-6
	}
	log := R.logger()
	electrons, err := R.electrons(mol, Q)
	if err != nil {
		return nil, fmt.Errorf("vqe: %w", err)
	}
	H, err := R.Builder.BuildHamiltonian(ctx, mol, Q)
	if err != nil {
		return nil, fmt.Errorf("vqe: building the Hamiltonian: %w", err)
	}
	log.Info("Hamiltonian built", "qubits", H.Qubits, "terms", len(H.Terms), "electrons", electrons)
	C, err := qm.NewCircuit(electrons, H.Qubits)
	if err != nil {
		return nil, fmt.Errorf("vqe: %w", err)
	}
	theta := make([]float64, C.NumParams())
	if theta0 != nil {
		if len(theta0) != len(theta) {
			return nil, fmt.Errorf("vqe: %d initial parameters given, the circuit has %d", len(theta0), len(theta))
		}
		copy(theta, theta0)
	}
	known := new(evalCache)
	cost := func(x []float64) (float64, error) {
		if e, ok := known.get(x); ok {
			return e, nil
		}
		e, err := R.Evaluator.Expectation(ctx, H, C, x)
		if err != nil {
			return e, err
		}
		known.add(x, e)
		return e, nil
	}
	res := &Result{Qubits: H.Qubits, Electrons: electrons}
	E, err := cost(theta)
	if err != nil {
		return nil, fmt.Errorf("vqe: initial energy: %w", err)
	}
	res.Energies = append(res.Energies, E)
	res.Trace = append(res.Trace, append([]float64(nil), theta...))
	log.Info("initial energy", "energy", E, "params", len(theta))
	if len(theta) == 0 {
		//Nothing to optimize, the Hartree-Fock state is all there is.
		res.Energy, res.Params, res.Converged = E, theta, true
		return res, nil
	}
	for n := 0; n < maxiter; n++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("vqe: step %d: %w", n, err)
		}
		next, prev, err := opt.Step(cost, theta)
		if err != nil {
			return nil, fmt.Errorf("vqe: step %d: %w", n, err)
		}
		theta = next
		E, err = cost(theta)
		if err != nil {
			return nil, fmt.Errorf("vqe: step %d: %w", n, err)
		}
		res.Energies = append(res.Energies, E)
		res.Trace = append(res.Trace, append([]float64(nil), theta...))
		res.Iterations = n + 1
		conv := math.Abs(E - prev)
		log.Debug("step", "n", n, "energy", E, "change", conv)
		if conv <= tol {
			res.Converged = true
			break
		}
	}
	res.Energy = E
	res.Params = theta
	if !res.Converged {
		log.Warn("no convergence", "iterations", res.Iterations, "energy", E)
	} else {
		log.Info("converged", "iterations", res.Iterations, "energy", E)
	}
	return res, nil
}
