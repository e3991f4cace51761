// SPDX-License-Identifier: Apache-2.0

package session

import (
	"errors"

	"github.com/spf13/cobra"
)

// FromCommand extracts the Project from a cobra.Command's context.
// Returns nil if no Project is stored.
func FromCommand(cmd *cobra.Command) *Project {
	return From(cmd.Context())
}

// RequireFromCommand extracts the Project from a cobra.Command's context,
// returning an error if not found.
func RequireFromCommand(cmd *cobra.Command) (*Project, error) {
	project := FromCommand(cmd)
	if project == nil {
		return nil, errors.New("project context not loaded")
	}
	return project, nil
}

// PreRunLoad returns a PersistentPreRunE function that loads the project
// and stores it in the command's context.
func PreRunLoad(cmd *cobra.Command, _ []string) error {
	ctx, err := Load(cmd.Context())
	if err != nil {
		return err
	}
	cmd.SetContext(ctx)
	return nil
}
