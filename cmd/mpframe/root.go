/*
 * root.go, part of gomultipole
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

package main

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	multipole "github.com/rmera/gomultipole"
	"github.com/rmera/gomultipole/fixedpoint"
	"github.com/rmera/gomultipole/internal/config"
	"github.com/rmera/gomultipole/internal/logging"
	"github.com/rmera/gomultipole/internal/metrics"
	"github.com/rmera/gomultipole/mpio"
	"github.com/rmera/gomultipole/pbc"
)

type rootOptions struct {
	configPath string
	logLevel   string
	workers    int
}

//env carries what the subcommands need, built once before any of them runs.
type env struct {
	cfg      *config.Config
	log      *zap.Logger
	registry *prometheus.Registry
	observer *metrics.Kernel
	server   *http.Server
}

type envKey struct{}

func getEnv(cmd *cobra.Command) *env {
	return cmd.Context().Value(envKey{}).(*env)
}

//options returns kernel options for the given box, which may be nil.
func (e *env) options(box *pbc.Box) *multipole.Options {
	o := multipole.DefaultOptions()
	if e.cfg.Kernel.Workers > 0 {
		o.Cpus(e.cfg.Kernel.Workers)
	}
	o.Logger(e.log)
	o.Observer(e.observer)
	if box != nil {
		o.Box(box)
	}
	return o
}

//padded returns the padded buffer length for n sites.
func (e *env) padded(n int) int {
	return fixedpoint.PaddedLen(n, e.cfg.Kernel.Padding)
}

//output returns the name to write to, with the configured
//compression suffix unless the name already sets one.
func (e *env) output(name string) string {
	return mpio.WithSuffix(name, e.cfg.Output.Compression)
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "mpframe",
		Short: "Local frames, moment rotation and torque distribution for atomic multipoles",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd, opts)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return teardown(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "configuration file (INI format, see 'mpframe config')")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error), overrides the configuration")
	pf.IntVarP(&opts.workers, "workers", "w", 0, "goroutines per kernel, overrides the configuration")

	cmd.AddCommand(
		newRotateCommand(),
		newTorqueCommand(),
		newInducedCommand(),
		newCheckCommand(),
		newPlotCommand(),
		newConfigCommand(),
	)
	return cmd
}

func setup(cmd *cobra.Command, opts *rootOptions) error {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Read(opts.configPath); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if cmd.Flags().Changed("workers") {
		cfg.Kernel.Workers = opts.workers
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	log, err := logging.NewTo(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	e := &env{cfg: cfg, log: log, registry: prometheus.NewRegistry()}
	if e.observer, err = metrics.NewKernel(e.registry); err != nil {
		return err
	}
	if cfg.Metrics.Addr != "" {
		e.server, err = metrics.Serve(cfg.Metrics.Addr, e.registry, func(err error) {
			log.Error("metrics server stopped", zap.Error(err))
		})
		if err != nil {
			return err
		}
		log.Info("serving metrics", zap.String("addr", e.server.Addr))
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, envKey{}, e))
	return nil
}

func teardown(cmd *cobra.Command) error {
	e := getEnv(cmd)
	if e.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := e.server.Shutdown(ctx); err != nil {
			e.log.Warn("closing metrics server", zap.Error(err))
		}
	}
	//Syncing stderr fails on some terminals, that is not worth reporting.
	_ = e.log.Sync()
	return nil
}
