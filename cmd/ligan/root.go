/*
 * root.go, part of ligan.
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
	"context"
	"fmt"
	"strings"

	"github.com/goligan/ligan"
	"github.com/goligan/ligan/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//rootOptions holds the global flags.
type rootOptions struct {
	configPath string
	logLevel   string
	jobs       int
	tol        float64
}

//app carries the loaded configuration through the command tree.
type app struct {
	cfg      *config.Config
	log      *zap.Logger
	channels ligan.Channels
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	a := &app{}
	cmd := &cobra.Command{
		Use:           "ligan",
		Short:         "Inspect and convert typed atom structures",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, opts)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.IntVarP(&opts.jobs, "jobs", "j", 0, "number of files processed concurrently")
	pf.Float64Var(&opts.tol, "tol", 0, "bond tolerance in Angstrom")

	cmd.AddCommand(newInfoCommand(a), newBondsCommand(a), newConvertCommand(a), newPlotCommand(a))
	return cmd
}

//setup loads the configuration, applies the flags given in the command line and sets up logging.
func (a *app) setup(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if flags.Changed("jobs") {
		cfg.Jobs = opts.jobs
	}
	if flags.Changed("tol") {
		cfg.Bonds.Tolerance = opts.tol
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	l, err := cfg.Logger()
	if err != nil {
		return err
	}
	ligan.SetLogger(l)
	a.cfg = cfg
	a.log = l
	a.channels = cfg.Vocabulary()
	return nil
}

//load builds a structure from a gninatypes or an SDF file.
func (a *app) load(path string) (*ligan.AtomStruct, error) {
	if strings.HasSuffix(path, ".gninatypes") {
		return ligan.FromGninatypes(path, a.channels, nil)
	}
	return ligan.FromSDF(path, a.channels, nil)
}

//loadAll loads the files concurrently, at most cfg.Jobs at a time. The structures are
//returned in the order of paths.
func (a *app) loadAll(ctx context.Context, paths []string, bonds bool) ([]*ligan.AtomStruct, error) {
	ret := make([]*ligan.AtomStruct, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Jobs)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			A, err := a.load(path)
			if err != nil {
				return err
			}
			if bonds {
				A.AddBonds(a.cfg.Bonds.Tolerance)
			}
			a.log.Debug("loaded", zap.String("file", path), zap.Int("atoms", A.NAtoms()))
			ret[i] = A
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ret, nil
}

//writeSDF writes A, which must have bonds, and its channels file.
func writeSDF(A *ligan.AtomStruct, out string) error {
	if err := A.ToSDF(out); err != nil {
		return err
	}
	if err := ligan.WriteChannelsFile(ligan.ChannelsPath(out), A.C); err != nil {
		return err
	}
	return nil
}

func formatCenter(A *ligan.AtomStruct) string {
	c, err := A.Center()
	if err != nil {
		return "-"
	}
	v := c.Vec(0)
	return fmt.Sprintf("%.3f %.3f %.3f", v[0], v[1], v[2])
}
