/*
 * commands.go, part of ligan.
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

package main

import (
	"fmt"
	"strings"

	"github.com/goligan/ligan/chemplot"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"
)

func newInfoCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE...",
		Short: "Print atom count, type counts, center, radius and bonds of each structure",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			structs, err := a.loadAll(cmd.Context(), args, true)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for i, A := range structs {
				r, err := A.Radius()
				radius := "-"
				if err == nil {
					radius = fmt.Sprintf("%.3f", r)
				}
				nfrag, err := A.NFragments()
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\n", args[i])
				fmt.Fprintf(w, "  atoms:     %d\n", A.NAtoms())
				fmt.Fprintf(w, "  center:    %s\n", formatCenter(A))
				fmt.Fprintf(w, "  radius:    %s\n", radius)
				fmt.Fprintf(w, "  bonds:     %d\n", A.Bonds.Count())
				fmt.Fprintf(w, "  fragments: %d\n", nfrag)
				counts := A.TypeCounts()
				types := make([]string, 0, len(counts))
				for j, v := range counts {
					if v > 0 {
						types = append(types, fmt.Sprintf("%s=%d", A.Channels[j].Name, v))
					}
				}
				fmt.Fprintf(w, "  types:     %s\n", strings.Join(types, " "))
			}
			return nil
		},
	}
}

//convertTo loads in, infers bonds and writes out as SDF, with its channels file.
func (a *app) convertTo(in, out string) error {
	A, err := a.load(in)
	if err != nil {
		return err
	}
	A.AddBonds(a.cfg.Bonds.Tolerance)
	if err := writeSDF(A, out); err != nil {
		return err
	}
	a.log.Info("wrote structure", zap.String("in", in), zap.String("out", out),
		zap.Int("atoms", A.NAtoms()), zap.Int("bonds", A.Bonds.Count()))
	return nil
}

func newBondsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bonds IN OUT",
		Short: "Infer the bonds of a structure and write it as SDF",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.convertTo(args[0], args[1])
		},
	}
}

func newConvertCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert IN.gninatypes OUT.sdf",
		Short: "Convert a gninatypes file to SDF plus a channels file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !strings.HasSuffix(args[0], ".gninatypes") {
				return fmt.Errorf("convert: %s is not a gninatypes file", args[0])
			}
			return a.convertTo(args[0], args[1])
		},
	}
}

func newPlotCommand(a *app) *cobra.Command {
	var title string
	cmd := &cobra.Command{
		Use:   "plot OUT FILE...",
		Short: "Plot the type counts of all the structures",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			structs, err := a.loadAll(cmd.Context(), args[1:], false)
			if err != nil {
				return err
			}
			counts, err := chemplot.SumCounts(structs...)
			if err != nil {
				return err
			}
			width := vg.Length(a.cfg.Plot.Width) * vg.Centimeter
			height := vg.Length(a.cfg.Plot.Height) * vg.Centimeter
			return chemplot.TypeCountsPlot(counts, a.channels, title, args[0], width, height)
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "Type counts", "plot title")
	return cmd
}
