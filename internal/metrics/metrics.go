/*
 * metrics.go, part of gomultipole
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

//Package metrics exports kernel timings and degraded-frame counts as
//prometheus metrics.
package metrics

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "mpframe"

//Kernel implements multipole.KernelObserver on top of prometheus collectors.
type Kernel struct {
	duration *prometheus.HistogramVec
	sites    *prometheus.CounterVec
	degraded *prometheus.CounterVec
}

//NewKernel creates the kernel metrics and registers them with reg. A nil reg
//means the default registerer.
func NewKernel(reg prometheus.Registerer) (*Kernel, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	k := &Kernel{
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "kernel_duration_seconds",
			Help:      "Wall time of each kernel call.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
		}, []string{"kernel"}),
		sites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "kernel_sites_total",
			Help:      "Sites processed by each kernel.",
		}, []string{"kernel"}),
		degraded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "degraded_sites_total",
			Help:      "Sites whose frame fell back to a simpler axis type.",
		}, []string{"kernel"}),
	}
	for _, c := range []prometheus.Collector{k.duration, k.sites, k.degraded} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return k, nil
}

//ObserveKernel records one kernel call over the given number of sites.
func (k *Kernel) ObserveKernel(kernel string, sites int, elapsed time.Duration) {
	k.duration.WithLabelValues(kernel).Observe(elapsed.Seconds())
	k.sites.WithLabelValues(kernel).Add(float64(sites))
}

//ObserveDegraded records sites processed with a degraded frame.
func (k *Kernel) ObserveDegraded(kernel string, sites int) {
	k.degraded.WithLabelValues(kernel).Add(float64(sites))
}

//Handler returns an http handler exposing the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

//Serve binds addr and serves g on it under /metrics, in the background.
//Bind errors are returned. The server's Addr is the address actually bound,
//so a ":0" port can be resolved by the caller. Errors while serving are
//passed to onErr, if it is not nil.
func Serve(addr string, g prometheus.Gatherer, onErr func(error)) (*http.Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler(g))
	srv := &http.Server{Addr: ln.Addr().String(), Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) && onErr != nil {
			onErr(err)
		}
	}()
	return srv, nil
}
