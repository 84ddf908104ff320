/*
 * options.go, part of gomultipole
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
	"runtime"
	"time"

	"go.uber.org/zap"
)

//KernelObserver receives a report after each kernel call. The
//metrics of the mpframe command implement it.
type KernelObserver interface {
	ObserveKernel(kernel string, sites int, elapsed time.Duration)
	ObserveDegraded(kernel string, sites int)
}

//Options contains the settings for the kernels.
type Options struct {
	cpus     int
	box      MinimumImager
	logger   *zap.Logger
	observer KernelObserver
}

//DefaultOptions returns an Options with one goroutine per logical CPU,
//no periodic box, a no-op logger and no observer.
func DefaultOptions() *Options {
	ret := new(Options)
	ret.cpus = runtime.NumCPU()
	ret.logger = zap.NewNop()
	return ret
}

//Returns the current value of the Cpus options (the number of gorutines to
//use on the concurrent calculation) and sets it, if
//a valid value is given
func (O *Options) Cpus(cpus ...int) int {
	ret := O.cpus
	if len(cpus) > 0 && cpus[0] > 0 {
		O.cpus = cpus[0]
	}
	return ret
}

//Box returns the periodic box used to wrap displacements (nil if
//none) and sets it, if one is given. A nil box disables periodicity.
func (O *Options) Box(box ...MinimumImager) MinimumImager {
	ret := O.box
	if len(box) > 0 {
		O.box = box[0]
	}
	return ret
}

//Logger returns the logger and sets it, if a non-nil one is given.
func (O *Options) Logger(logger ...*zap.Logger) *zap.Logger {
	ret := O.logger
	if len(logger) > 0 && logger[0] != nil {
		O.logger = logger[0]
	}
	return ret
}

//Observer returns the kernel observer and sets it, if one is given.
func (O *Options) Observer(obs ...KernelObserver) KernelObserver {
	ret := O.observer
	if len(obs) > 0 {
		O.observer = obs[0]
	}
	return ret
}

func getOptions(options []*Options) *Options {
	if len(options) > 0 && options[0] != nil {
		return options[0]
	}
	return DefaultOptions()
}
