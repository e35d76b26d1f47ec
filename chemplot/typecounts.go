/*
 * typecounts.go, part of ligan.
 *
 * Copyright 2024 The ligan Authors
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

//Package chemplot produces plots of channel statistics of atom structures.
package chemplot

import (
	"fmt"
	"image/color"
	"math"

	"github.com/goligan/ligan"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

//SumCounts adds up the type counts of all the structures, which must share a vocabulary.
func SumCounts(structs ...*ligan.AtomStruct) ([]int, error) {
	if len(structs) == 0 {
		return nil, fmt.Errorf("chemplot: no structures given")
	}
	n := structs[0].Channels.Len()
	ret := make([]int, n)
	for i, A := range structs {
		if A.Channels.Len() != n {
			return nil, fmt.Errorf("chemplot: structure %d has %d channels, %d expected", i, A.Channels.Len(), n)
		}
		for j, v := range A.TypeCounts() {
			ret[j] += v
		}
	}
	return ret, nil
}

//typeCountsPlot builds the bar chart. Channels with no atoms are left out.
func typeCountsPlot(counts []int, channels ligan.Channels, title string) (*plot.Plot, error) {
	if len(counts) != channels.Len() {
		return nil, fmt.Errorf("chemplot: %d counts for %d channels", len(counts), channels.Len())
	}
	values := make(plotter.Values, 0, len(counts))
	names := make([]string, 0, len(counts))
	for i, v := range counts {
		if v == 0 {
			continue
		}
		values = append(values, float64(v))
		names = append(names, channels[i].Name)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("chemplot: nothing to plot, all counts are zero")
	}
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.Y.Label.Text = "Atoms"
	p.Y.Min = 0
	bars, err := plotter.NewBarChart(values, vg.Points(12))
	if err != nil {
		return nil, err
	}
	bars.Color = color.RGBA{R: 40, G: 90, B: 180, A: 255}
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.Add(plotter.NewGrid())
	p.NominalX(names...)
	p.X.Tick.Label.Rotation = math.Pi / 2
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
	return p, nil
}

//TypeCountsPlot saves a bar chart of counts, one bar per channel with at least one atom,
//to filename. The format is deduced from the extension of filename (png, svg, pdf...).
func TypeCountsPlot(counts []int, channels ligan.Channels, title, filename string, width, height vg.Length) error {
	p, err := typeCountsPlot(counts, channels, title)
	if err != nil {
		return err
	}
	return p.Save(width, height, filename)
}
