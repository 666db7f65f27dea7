/*
 * optimizer.go, part of govqe.
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
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"
)

//Cost is a scalar function of the circuit parameters that can fail, for instance
//because the program evaluating it did.
type Cost func(x []float64) (float64, error)

//Optimizer performs one optimization step at a time.
type Optimizer interface {

	//Step takes one step from x. It returns the new parameters and the
	//value of cost at x (i.e. before the step). x is not modified.
	Step(cost Cost, x []float64) ([]float64, float64, error)
}

//GradientDescent is a gradient-descent optimizer using gonum's optimize package.
//The gradient is obtained by central finite differences.
//Each step starts with a step of StepSize along the negative gradient, which is
//shortened by backtracking if it doesn't decrease the cost enough.
type GradientDescent struct {
	StepSize float64 //default 0.4
	FDStep   float64 //finite-difference step, default 1e-4
}

//NewGradientDescent returns an optimizer with the default settings.
func NewGradientDescent() *GradientDescent {
	return &GradientDescent{StepSize: 0.4, FDStep: 1e-4}
}

//Step implements Optimizer.
func (G *GradientDescent) Step(cost Cost, x []float64) ([]float64, float64, error) {
	if len(x) == 0 {
		return nil, 0, fmt.Errorf("vqe: nothing to optimize")
	}
	stepsize := G.StepSize
	if stepsize <= 0 {
		stepsize = 0.4
	}
	h := G.FDStep
	if h <= 0 {
		h = 1e-4
	}
	var costerr error
	prev := math.NaN()
	f := func(p []float64) float64 {
		if costerr != nil {
			return math.NaN()
		}
		v, err := cost(p)
		if err != nil {
			costerr = err
			return math.NaN()
		}
		//gonum evaluates the starting point first.
		if math.IsNaN(prev) && floats.Equal(p, x) {
			prev = v
		}
		return v
	}
	problem := optimize.Problem{
		Func: f,
		Grad: func(grad, p []float64) {
			fd.Gradient(grad, f, p, &fd.Settings{Formula: fd.Central, Step: h})
		},
	}
	settings := &optimize.Settings{MajorIterations: 1}
	method := &optimize.GradientDescent{
		StepSizer:    &optimize.ConstantStepSize{Size: stepsize},
		Linesearcher: &optimize.Backtracking{},
	}
	result, err := optimize.Minimize(problem, x, settings, method)
	if costerr != nil {
		return nil, prev, costerr
	}
	next := make([]float64, len(x))
	if err != nil {
		//If no step decreases the cost we are as good as converged, so we just stay where we are.
		if errors.Is(err, optimize.ErrLinesearcherFailure) || errors.Is(err, optimize.ErrNoProgress) {
			copy(next, x)
			return next, prev, nil
		}
		return nil, prev, fmt.Errorf("vqe: optimizer step: %w", err)
	}
	if math.IsNaN(prev) {
		//shouldn't happen, but then we still know the cost at x.
		prev, err = cost(x)
		if err != nil {
			return nil, prev, err
		}
	}
	copy(next, result.X)
	return next, prev, nil
}
