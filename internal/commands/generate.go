// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aws-cloudformation/cloudformation-cli-typescript-plugin/internal/prompts"
	"github.com/aws-cloudformation/cloudformation-cli-typescript-plugin/internal/session"
	"github.com/aws-cloudformation/cloudformation-cli-typescript-plugin/internal/typescript"
)

func newGenerateCmd(plugin *typescript.Plugin) *cobra.Command {
	return &cobra.Command{
		Use:     "generate",
		Short:   "Regenerate model classes from the resource schema",
		PreRunE: session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}

			if err := plugin.Generate(project); err != nil {
				return err
			}

			prompts.PrintResult([]prompts.ResultField{
				{Label: "Models", Value: filepath.Join("src", "models.ts")},
			}, "Generated files for "+project.Settings.TypeName)
			return nil
		},
	}
}
