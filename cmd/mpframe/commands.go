/*
 * commands.go, part of gomultipole
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
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"

	multipole "github.com/rmera/gomultipole"
	"github.com/rmera/gomultipole/fixedpoint"
	"github.com/rmera/gomultipole/internal/config"
	"github.com/rmera/gomultipole/mpio"
	"github.com/rmera/gomultipole/mpplot"
)

//readSystem reads a system file and logs what it found.
func (e *env) readSystem(name string) (*multipole.System, *multipole.Options, error) {
	S, box, err := mpio.ReadSystemFile(name)
	if err != nil {
		return nil, nil, err
	}
	fields := []zap.Field{zap.String("file", name), zap.Int("sites", S.Len())}
	if box != nil {
		fields = append(fields, zap.Stringer("box", box))
	}
	e.log.Debug("read system", fields...)
	return S, e.options(box), nil
}

func newRotateCommand() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "rotate SYSTEM",
		Short: "Write the lab-frame dipoles and quadrupoles of every site",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := getEnv(cmd)
			S, o, err := e.readSystem(args[0])
			if err != nil {
				return err
			}
			lab := multipole.NewLabMoments(S.Len())
			multipole.ComputeLabFrameMoments(S, lab, o)
			return writeTo(cmd, e.output(out), out, func(w io.Writer) error {
				return mpio.WriteLabMoments(w, lab)
			})
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file, the standard output if empty")
	return cmd
}

func newTorqueCommand() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "torque SYSTEM TORQUES",
		Short: "Distribute the torque on every site as forces on the site and its axis neighbors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := getEnv(cmd)
			S, o, err := e.readSystem(args[0])
			if err != nil {
				return err
			}
			torques, err := mpio.ReadTorquesFile(args[1], S.Len(), e.padded(S.Len()))
			if err != nil {
				return err
			}
			forces := fixedpoint.NewBuffer(S.Len(), torques.Padded())
			multipole.MapTorqueToForce(S, torques, forces, o)
			e.log.Debug("distributed torques", zap.Float64("maxForce", forces.MaxAbs()))
			return writeTo(cmd, e.output(out), out, func(w io.Writer) error {
				return mpio.WriteBuffer(w, forces)
			})
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file, the standard output if empty")
	return cmd
}

func newInducedCommand() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "induced FIELD POLARIZABILITIES",
		Short: "Write the induced dipoles for the given fields and polarizabilities",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := getEnv(cmd)
			pol, err := readFloatsFile(args[1])
			if err != nil {
				return err
			}
			n := len(pol)
			field, err := mpio.ReadTorquesFile(args[0], n, e.padded(n))
			if err != nil {
				return err
			}
			dipoles := make([]r3.Vec, n)
			multipole.RecordInducedDipoles(field, pol, dipoles, e.options(nil))
			return writeTo(cmd, e.output(out), out, func(w io.Writer) error {
				return mpio.WriteVecs(w, dipoles)
			})
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file, the standard output if empty")
	return cmd
}

func newCheckCommand() *cobra.Command {
	var torques string
	cmd := &cobra.Command{
		Use:   "check SYSTEM",
		Short: "Report frame orthonormality, quadrupole traces and, given torques, force closure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := getEnv(cmd)
			S, o, err := e.readSystem(args[0])
			if err != nil {
				return err
			}
			lab := multipole.NewLabMoments(S.Len())
			multipole.ComputeLabFrameMoments(S, lab, o)
			fr := multipole.CheckFrames(S, lab, o)
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "sites %d degraded %d reversed %d\n", S.Len(), len(S.Degraded()), fr.Reversed)
			printSummary(w, "orthonormality", fr.OrthonormalitySummary())
			printSummary(w, "trace", fr.TraceSummary())
			if torques == "" {
				return nil
			}
			t, err := mpio.ReadTorquesFile(torques, S.Len(), e.padded(S.Len()))
			if err != nil {
				return err
			}
			c := multipole.CheckClosure(S, t, o)
			printSummary(w, "net-force", c.NetSummary())
			printSummary(w, "torque-residual", c.ResidualSummary())
			return nil
		},
	}
	cmd.Flags().StringVarP(&torques, "torques", "t", "", "torque file for the closure check")
	return cmd
}

func newPlotCommand() *cobra.Command {
	var prefix string
	cmd := &cobra.Command{
		Use:   "plot SYSTEM TORQUES",
		Short: "Plot histograms of frame errors, force closure and force magnitudes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := getEnv(cmd)
			S, o, err := e.readSystem(args[0])
			if err != nil {
				return err
			}
			t, err := mpio.ReadTorquesFile(args[1], S.Len(), e.padded(S.Len()))
			if err != nil {
				return err
			}
			written := make([]string, 0, 4)
			name, err := mpplot.Frames(multipole.CheckFrames(S, nil, o), prefix)
			if err != nil {
				return err
			}
			written = append(written, name)
			names, err := mpplot.Closure(multipole.CheckClosure(S, t, o), prefix)
			if err != nil {
				return err
			}
			written = append(written, names...)
			forces := fixedpoint.NewBuffer(S.Len(), t.Padded())
			multipole.MapTorqueToForce(S, t, forces, o)
			name = prefix + "_forces.png"
			if err = mpplot.SaveHistogram(mpplot.Magnitudes(forces), 0, "Distributed forces", "|F|", name); err != nil {
				return err
			}
			written = append(written, name)
			for _, v := range written {
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&prefix, "prefix", "p", "mpframe", "prefix for the image files")
	return cmd
}

func newConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print an example configuration file with the default values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), config.Example)
			return err
		},
	}
}

func printSummary(w io.Writer, name string, s multipole.Summary) {
	fmt.Fprintf(w, "%-16s max %.3e (site %d) mean %.3e std %.3e\n", name, s.Max, s.ArgMax, s.Mean, s.StdDev)
}

func readFloatsFile(name string) ([]float64, error) {
	f, err := mpio.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return mpio.ReadFloats(f, -1)
}

//writeTo writes to the file name, or to the command's output if
//the name given by the user was empty.
func writeTo(cmd *cobra.Command, name, given string, write func(io.Writer) error) error {
	if given == "" {
		return write(cmd.OutOrStdout())
	}
	if err := mpio.WriteFile(name, write); err != nil {
		return err
	}
	getEnv(cmd).log.Info("wrote", zap.String("file", name))
	return nil
}
