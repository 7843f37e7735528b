// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cmd implements the command line interface
package cmd

import (
	"strings"

	"github.com/cpmech/gosl/io"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCmd returns the root command with all subcommands
func NewRootCmd() *cobra.Command {
	var cfgFile string
	root := &cobra.Command{
		Use:   "raccoon",
		Short: "Evaluates eigenstrain and finite strain material models at integration points",
		Long: `Raccoon reads a simulation file listing functions of (t, x), integration points
and material blocks, evaluates all materials at all points for a sequence of times
and saves the requested properties.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cfgFile)
		},
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.raccoon.yaml)")
	root.AddCommand(newRunCmd())
	root.AddCommand(newModelsCmd())
	root.AddCommand(newInfoCmd())
	return root
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

// initConfig reads in config file and environment variables (RACCOON_*)
func initConfig(cfgFile string) (err error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return err
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".raccoon")
	}
	viper.SetEnvPrefix("raccoon")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	if err = viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			io.Pf("> Using config file: %s\n", viper.ConfigFileUsed())
		}
		return
	}
	if _, ok := err.(viper.ConfigFileNotFoundError); ok && cfgFile == "" {
		return nil
	}
	return err
}
