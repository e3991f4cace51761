// SPDX-License-Identifier: Apache-2.0

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/aws-cloudformation/cloudformation-cli-typescript-plugin/internal/commands"
	"github.com/aws-cloudformation/cloudformation-cli-typescript-plugin/internal/typescript"
)

// Run is the main application logic, extracted for testability.
// It accepts OS dependencies as parameters (context, env lookup).
func Run(ctx context.Context, getenv func(string) string) error {
	if getenv("CFN_TYPESCRIPT_DEBUG") != "" {
		log.SetLevel(log.DebugLevel)
	}

	plugin := typescript.NewPlugin()
	rootCmd := commands.NewRootCmd(plugin)
	return rootCmd.ExecuteContext(ctx)
}
