/*
 * trace.go, part of govqe.
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

package chemplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

func basicTracePlot(title, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Iteration"
	p.Y.Label.Text = ylabel
	p.X.Min = 0
	p.Add(plotter.NewGrid())
	return p
}

//TracePlot produces a plot, in png format, of the energies (in Hartree) along an optimization,
//against the iteration number. If reference is not nil, a dashed line is drawn at that energy.
//The file is named plotname.png. Returns an error or nil.
func TracePlot(energies []float64, reference *float64, title, plotname string) error {
	if len(energies) == 0 {
		return fmt.Errorf("chemplot: TracePlot: no energies to plot")
	}
	p := basicTracePlot(title, "Energy (Hartree)")
	pts := make(plotter.XYs, len(energies))
	for i, e := range energies {
		pts[i].X = float64(i)
		pts[i].Y = e
	}
	l, s, err := plotter.NewLinePoints(pts)
	if err != nil {
		return err
	}
	l.Color = color.RGBA{R: 20, G: 60, B: 200, A: 255}
	s.Shape = draw.CircleGlyph{}
	s.Color = l.Color
	p.Add(l, s)
	p.Legend.Add("VQE", l, s)
	if reference != nil {
		ref := plotter.NewFunction(func(float64) float64 { return *reference })
		ref.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		ref.Color = color.RGBA{R: 200, G: 30, B: 30, A: 255}
		p.Add(ref)
		p.Legend.Add("Reference", ref)
		if *reference < p.Y.Min {
			p.Y.Min = *reference
		}
		if *reference > p.Y.Max {
			p.Y.Max = *reference
		}
	}
	p.X.Max = float64(len(energies) - 1)
	if p.X.Max == 0 {
		p.X.Max = 1
	}
	return p.Save(5*vg.Inch, 4*vg.Inch, fmt.Sprintf("%s.png", plotname))
}

//ParamsPlot produces a plot, in png format, of each circuit parameter (in radians) along
//an optimization. trace[i] contains the parameters at iteration i. Each parameter gets its own color.
func ParamsPlot(trace [][]float64, title, plotname string) error {
	if len(trace) == 0 || len(trace[0]) == 0 {
		return fmt.Errorf("chemplot: ParamsPlot: no parameters to plot")
	}
	nparams := len(trace[0])
	p := basicTracePlot(title, "Parameter (rad)")
	for j := 0; j < nparams; j++ {
		pts := make(plotter.XYs, len(trace))
		for i, v := range trace {
			if len(v) != nparams {
				return fmt.Errorf("chemplot: ParamsPlot: iteration %d has %d parameters, expected %d", i, len(v), nparams)
			}
			pts[i].X = float64(i)
			pts[i].Y = v[j]
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		r, g, b := colors(j, nparams)
		l.Color = color.RGBA{R: r, G: g, B: b, A: 255}
		p.Add(l)
		if nparams <= 8 {
			p.Legend.Add(fmt.Sprintf("θ%d", j), l)
		}
	}
	p.X.Max = float64(len(trace) - 1)
	if p.X.Max == 0 {
		p.X.Max = 1
	}
	return p.Save(5*vg.Inch, 4*vg.Inch, fmt.Sprintf("%s.png", plotname))
}
