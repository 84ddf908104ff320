/*
 * kernel.go, part of gomultipole
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
	"sync"
	"time"

	"github.com/rmera/gomultipole/fixedpoint"
	"go.uber.org/zap"
)

//Kernel names, as reported to the logger and the KernelObserver.
const (
	KernelLabFrameMoments = "computeLabFrameMoments"
	KernelTorqueToForce   = "mapTorqueToForce"
	KernelInducedDipoles  = "recordInducedDipoles"
)

//parallel calls f for every index in [0,n) using the given number of
//goroutines. Goroutine w takes the indexes w, w+workers, w+2*workers...
func parallel(n, workers int, f func(i int)) {
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(first int) {
			defer wg.Done()
			for i := first; i < n; i += workers {
				f(i)
			}
		}(w)
	}
	wg.Wait()
}

//run executes a kernel over n sites, and reports it.
func (O *Options) run(kernel string, n int, f func(i int)) {
	start := time.Now()
	parallel(n, O.cpus, f)
	elapsed := time.Since(start)
	if O.logger != nil {
		O.logger.Debug("kernel done", zap.String("kernel", kernel), zap.Int("sites", n), zap.Int("workers", O.cpus), zap.Duration("elapsed", elapsed))
	}
	if O.observer != nil {
		O.observer.ObserveKernel(kernel, n, elapsed)
	}
}

//reportDegraded warns, once per system, about the sites that use a
//simpler rule than their axis type names.
func (O *Options) reportDegraded(kernel string, S *System) {
	d := S.Degraded()
	if len(d) == 0 {
		return
	}
	if O.observer != nil {
		O.observer.ObserveDegraded(kernel, len(d))
	}
	if O.logger == nil {
		return
	}
	S.warn.Do(func() {
		first := d[0]
		O.logger.Warn("sites lacking frame neighbors use a simpler axis rule",
			zap.Int("sites", len(d)),
			zap.Int("first", first),
			zap.Stringer("axes", S.Axes[first]),
			zap.Stringer("used", S.Axes[first].effective(S.Len())))
	})
}

//ComputeLabFrameMoments builds the local frame of each site of S and
//writes the site's permanent dipole and quadrupole, rotated to the lab
//frame, to out. Sites without frame get their local moments copied.
//It panics if out doesn't have room for every site.
func ComputeLabFrameMoments(S *System, out *LabMoments, options ...*Options) {
	o := getOptions(options)
	n := S.Len()
	if len(out.Dipoles) != n || len(out.Quadrupoles) != n {
		panic(ErrLabMomentsShape)
	}
	o.reportDegraded(KernelLabFrameMoments, S)
	o.run(KernelLabFrameMoments, n, func(i int) {
		if S.Axes[i].Z < 0 {
			out.Dipoles[i] = S.Dipoles[i]
			out.Quadrupoles[i] = S.Quadrupoles[i]
			return
		}
		f := BuildFrame(S.Coords, i, S.Axes[i], o.box)
		out.Dipoles[i], out.Quadrupoles[i] = RotateMoments(f, S.Dipoles[i], S.Quadrupoles[i])
	})
}

//MapTorqueToForce converts the torque on each site of S, read from the
//fixed-point buffer torques, into forces on the site and its frame
//neighbors, which are added to the fixed-point buffer forces.
//The contributions of every site add up to exactly zero in fixed point.
//forces is only modified through atomic additions, so it can be shared
//with other goroutines accumulating into it.
//It panics if either buffer doesn't have the length of the system.
func MapTorqueToForce(S *System, torques, forces *fixedpoint.Buffer, options ...*Options) {
	o := getOptions(options)
	n := S.Len()
	if torques.Len() != n || forces.Len() != n {
		panic(ErrBufferShape)
	}
	o.reportDegraded(KernelTorqueToForce, S)
	o.run(KernelTorqueToForce, n, func(i int) {
		f, t := DistributeTorque(S.Coords, i, S.Axes[i], torques.Vec(i), o.box)
		f.addTo(forces, t)
	})
}
