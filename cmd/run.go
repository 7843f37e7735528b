// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"runtime"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cprakashj01/raccoon/fem"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newRunCmd returns the command running a simulation
func newRunCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "run <file.sim>",
		Short: "Runs a simulation given a .sim (JSON) or .yaml file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSim(cmd.Context(), args[0])
		},
	}
	c.Flags().BoolP("verbose", "v", false, "show messages")
	c.Flags().IntP("workers", "w", runtime.NumCPU(), "maximum number of concurrent workers")
	c.Flags().StringP("dirout", "o", "", "output directory; overrides the one in the simulation file")
	c.Flags().StringP("alias", "a", "", "word appended to the simulation key")
	c.Flags().String("profile", "", "profiling: cpu or mem")
	for _, key := range []string{"verbose", "workers", "dirout", "alias", "profile"} {
		if err := viper.BindPFlag(key, c.Flags().Lookup(key)); err != nil {
			chk.Panic("cannot bind flag %q:\n%v", key, err)
		}
	}
	return c
}

// runSim runs a simulation with options from flags, config file or environment
func runSim(ctx context.Context, fnamepath string) (err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	verbose := viper.GetBool("verbose")
	nworkers := viper.GetInt("workers")
	dirout := viper.GetString("dirout")

	// message
	if verbose {
		io.PfWhite("\nRaccoon -- material point evaluation of eigenstrain and finite strain models\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"number of workers", "workers", nworkers,
			"output directory", "dirout", dirout,
			"profiling", "profile", viper.GetString("profile"),
		))
	}

	// profiling?
	switch viper.GetString("profile") {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.Quiet).Stop()
	default:
		return chk.Err("profile must be \"cpu\" or \"mem\". %q is invalid", viper.GetString("profile"))
	}

	// run simulation
	main, err := fem.NewMain(fnamepath, viper.GetString("alias"), dirout, nworkers, verbose)
	if err != nil {
		return
	}
	return main.Run(ctx)
}
