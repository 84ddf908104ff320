/*
 * mpplot.go, part of gomultipole
 *
 * Copyright 2024 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

//Package mpplot draws histograms of the per-site quantities produced by
//the multipole kernels and diagnostics.
package mpplot

import (
	"fmt"
	"image/color"
	"math"

	multipole "github.com/rmera/gomultipole"
	"github.com/rmera/gomultipole/fixedpoint"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//Size is the side, in inches, of the saved plots.
var Size = 4 * vg.Inch

//Histogram returns a plot with the histogram of values in the given number of
//bins. If bins is not positive, it is chosen from the number of values.
func Histogram(values []float64, bins int, title, xlabel string) (*plot.Plot, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("mpplot: no values to plot for %q", title)
	}
	if bins <= 0 {
		bins = Bins(len(values))
	}
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = "Sites"
	h, err := plotter.NewHist(plotter.Values(values), bins)
	if err != nil {
		return nil, err
	}
	h.FillColor = color.RGBA{R: 70, G: 110, B: 180, A: 255}
	p.Add(plotter.NewGrid())
	p.Add(h)
	return p, nil
}

//Bins returns the number of histogram bins for n values (Sturges' rule).
func Bins(n int) int {
	if n <= 1 {
		return 1
	}
	return int(math.Ceil(math.Log2(float64(n)))) + 1
}

//Save writes p to filename. The format is taken from the extension.
func Save(p *plot.Plot, filename string) error {
	return p.Save(Size, Size, filename)
}

//SaveHistogram builds a histogram of values and saves it to filename.
func SaveHistogram(values []float64, bins int, title, xlabel, filename string) error {
	p, err := Histogram(values, bins, title, xlabel)
	if err != nil {
		return err
	}
	return Save(p, filename)
}

//Magnitudes returns the norm of each vector in the buffer.
func Magnitudes(b *fixedpoint.Buffer) []float64 {
	ret := make([]float64, b.Len())
	for i := range ret {
		ret[i] = r3.Norm(b.Vec(i))
	}
	return ret
}

//Closure saves histograms of the net forces and of the torque residuals
//in c, to prefix_net.png and prefix_residual.png. It returns the names
//of the files written.
func Closure(c *multipole.ClosureReport, prefix string) ([]string, error) {
	net := prefix + "_net.png"
	res := prefix + "_residual.png"
	if err := SaveHistogram(c.Net, 0, "Net force per site", "|F net|", net); err != nil {
		return nil, err
	}
	if err := SaveHistogram(c.TorqueResidual, 0, "Torque residual per site", "|tau - tau(F)|", res); err != nil {
		return nil, err
	}
	return []string{net, res}, nil
}

//Frames saves a histogram of the frame orthonormality deviations in r
//to prefix_frames.png, and returns the name of the file.
func Frames(r *multipole.FrameReport, prefix string) (string, error) {
	name := prefix + "_frames.png"
	return name, SaveHistogram(r.Orthonormality, 0, "Frame orthonormality", "max |R R^T - I|", name)
}
