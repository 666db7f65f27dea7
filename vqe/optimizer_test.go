/*
 * optimizer_test.go, part of govqe.
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
	"math"
	"testing"
)

func quadratic(x []float64) (float64, error) {
	return (x[0]-1)*(x[0]-1) + 2*(x[1]+0.5)*(x[1]+0.5), nil
}

func TestGradientDescentStep(Te *testing.T) {
	G := &GradientDescent{StepSize: 0.1}
	x := []float64{0, 0}
	next, prev, err := G.Step(quadratic, x)
	if err != nil {
		Te.Fatal(err)
	}
	if prev != 1.5 {
		Te.Errorf("expected the cost before the step to be 1.5, got %f", prev)
	}
	if x[0] != 0 || x[1] != 0 {
		Te.Errorf("the starting point was modified: %v", x)
	}
	//a plain gradient step: x - 0.1*grad, grad = (-2, 2)
	if math.Abs(next[0]-0.2) > 1e-6 || math.Abs(next[1]+0.2) > 1e-6 {
		Te.Errorf("wrong step %v", next)
	}
	for i := 0; i < 200; i++ {
		next, _, err = G.Step(quadratic, next)
		if err != nil {
			Te.Fatal(err)
		}
	}
	if math.Abs(next[0]-1) > 1e-5 || math.Abs(next[1]+0.5) > 1e-5 {
		Te.Errorf("didn't reach the minimum: %v", next)
	}
}

func TestGradientDescentErrors(Te *testing.T) {
	G := NewGradientDescent()
	boom := errors.New("no cost today")
	failing := func(x []float64) (float64, error) {
		return 0, boom
	}
	if _, _, err := G.Step(failing, []float64{0}); !errors.Is(err, boom) {
		Te.Errorf("expected the cost error, got %v", err)
	}
	if _, _, err := G.Step(quadratic, nil); err == nil {
		Te.Error("expected an error for an empty parameter vector")
	}
}
