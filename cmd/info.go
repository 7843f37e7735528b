// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/cprakashj01/raccoon/inp"
	"github.com/spf13/cobra"
)

// newInfoCmd returns the command summarising a simulation file without running it
func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file.sim>",
		Short: "Prints a summary of the functions and materials in a simulation file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sim, err := inp.ReadSim(args[0], "")
			if err != nil {
				return err
			}
			return sim.GetInfo(cmd.OutOrStdout())
		},
	}
}
