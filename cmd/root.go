// Copyright 2020 Snowfork
// SPDX-License-Identifier: LGPL-3.0-only

package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:          "substrate-go",
	Short:        "substrate-go is a demo CLI for the substrate-go library",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to configuration file")
	rootCmd.MarkPersistentFlagRequired("config")

	rootCmd.AddCommand(balanceTransferCmd())
	rootCmd.AddCommand(remarkCmd())
	rootCmd.AddCommand(xcmTeleportCmd())
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("command failed")
		os.Exit(1)
	}
}
