// SPDX-License-Identifier: Apache-2.0

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/aws-cloudformation/cloudformation-cli-typescript-plugin/internal/typescript"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd(plugin *typescript.Plugin) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cfn-typescript",
		Short: "Generate, build and package TypeScript resource providers",
	}

	rootCmd.AddCommand(newInitCmd(plugin))
	rootCmd.AddCommand(newGenerateCmd(plugin))
	rootCmd.AddCommand(newPackageCmd(plugin))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
