// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/cprakashj01/raccoon/mdl"
	"github.com/spf13/cobra"
)

// newModelsCmd returns the command listing all available models
func newModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "Lists all available material models",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range mdl.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}
