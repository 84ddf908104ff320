/*
 * diagnostics.go, part of gomultipole
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

package multipole

import (
	"math"

	"github.com/rmera/gomultipole/fixedpoint"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat"
)

//Summary contains simple statistics of a per-site quantity.
type Summary struct {
	Max, Mean, StdDev float64
	ArgMax            int //site where Max happens, -1 for empty data
}

func summarize(data []float64) Summary {
	if len(data) == 0 {
		return Summary{ArgMax: -1}
	}
	mean, std := stat.MeanStdDev(data, nil)
	if len(data) == 1 {
		std = 0
	}
	i := floats.MaxIdx(data)
	return Summary{Max: data[i], Mean: mean, StdDev: std, ArgMax: i}
}

//FrameReport contains, per site, the deviation from orthonormality of the
//local frame, its determinant, and the trace of the lab quadrupole.
type FrameReport struct {
	Orthonormality []float64
	Determinant    []float64
	Trace          []float64
	Reversed       int //number of z-then-x sites with mirrored frames
}

//OrthonormalitySummary returns statistics for the frame orthonormality deviations.
func (F *FrameReport) OrthonormalitySummary() Summary { return summarize(F.Orthonormality) }

//TraceSummary returns statistics for the absolute lab quadrupole traces.
func (F *FrameReport) TraceSummary() Summary {
	abs := make([]float64, len(F.Trace))
	for i, v := range F.Trace {
		abs[i] = math.Abs(v)
	}
	return summarize(abs)
}

//CheckFrames builds every frame of S and checks it. If lab is not nil, the
//traces of its quadrupoles are also reported.
func CheckFrames(S *System, lab *LabMoments, options ...*Options) *FrameReport {
	o := getOptions(options)
	n := S.Len()
	r := &FrameReport{Orthonormality: make([]float64, n), Determinant: make([]float64, n)}
	reversed := make([]bool, n)
	parallel(n, o.cpus, func(i int) {
		f := BuildFrame(S.Coords, i, S.Axes[i], o.box)
		r.Orthonormality[i] = f.Orthonormality()
		r.Determinant[i] = f.Determinant()
		reversed[i] = f.Reverse
	})
	for _, v := range reversed {
		if v {
			r.Reversed++
		}
	}
	if lab != nil {
		r.Trace = make([]float64, lab.Len())
		for i, q := range lab.Quadrupoles {
			r.Trace[i] = q.Trace()
		}
	}
	return r
}

//ClosureReport contains, per site, the norm of the net force produced
//by distributing its torque, the torque that the forces produce about
//the site, and the norm of the difference between that torque and the
//one expected from the site's rule. The residual is 0 for sites whose
//rule has no closed form for the expected torque (3-fold sites, and
//z-bisect sites with the z bond between the bisected ones).
type ClosureReport struct {
	Net            []float64
	Torque         []r3.Vec
	TorqueResidual []float64
}

//NetSummary returns statistics for the net force norms.
func (C *ClosureReport) NetSummary() Summary { return summarize(C.Net) }

//ResidualSummary returns statistics for the torque residuals.
func (C *ClosureReport) ResidualSummary() Summary { return summarize(C.TorqueResidual) }

//CheckClosure distributes the torque of every site of S, without
//accumulating anything, and reports how well the resulting forces
//sum to zero and reproduce the torque.
func CheckClosure(S *System, torques *fixedpoint.Buffer, options ...*Options) *ClosureReport {
	o := getOptions(options)
	n := S.Len()
	if torques.Len() != n {
		panic(ErrBufferShape)
	}
	c := &ClosureReport{Net: make([]float64, n), Torque: make([]r3.Vec, n), TorqueResidual: make([]float64, n)}
	parallel(n, o.cpus, func(i int) {
		tau := torques.Vec(i)
		f, t, g := distribute(S.Coords, i, S.Axes[i], tau, o.box)
		c.Net[i] = r3.Norm(f.Net())
		c.Torque[i] = producedTorque(S, i, f, t, o.box)
		if g == nil {
			return
		}
		eff := S.Axes[i].effective(n)
		if want, ok := rules[eff].reproduced(g, tau); ok {
			c.TorqueResidual[i] = r3.Norm(r3.Sub(c.Torque[i], want))
		}
	})
	return c
}

//producedTorque returns the torque about the site i of the
//forces applied to its neighbors.
func producedTorque(S *System, i int, f Forces, t Targets, box MinimumImager) r3.Vec {
	var ret r3.Vec
	pos := S.Coords.Vec(i)
	add := func(target int, force r3.Vec) {
		if target < 0 {
			return
		}
		r := delta(box, pos, S.Coords.Vec(target))
		ret = r3.Add(ret, r3.Cross(r, force))
	}
	add(t.Z, f.Z)
	add(t.X, f.X)
	add(t.Y, f.Y)
	return ret
}
