// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aws-cloudformation/cloudformation-cli-typescript-plugin/internal/config"
	"github.com/aws-cloudformation/cloudformation-cli-typescript-plugin/internal/prompts"
	"github.com/aws-cloudformation/cloudformation-cli-typescript-plugin/internal/session"
	"github.com/aws-cloudformation/cloudformation-cli-typescript-plugin/internal/typescript"
)

func newPackageCmd(plugin *typescript.Plugin) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:     "package",
		Short:   "Build the handlers and write the provider package archive",
		PreRunE: session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}

			// Models must be current before building.
			if err := plugin.Generate(project); err != nil {
				return err
			}

			archiveName := config.HyphenatedName(project.Settings.TypeName) + ".zip"
			archivePath := filepath.Join(project.Root, archiveName)

			f, err := os.Create(archivePath) //nolint:gosec // path rooted in project
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", archiveName, err)
			}
			defer f.Close() //nolint:errcheck

			if err := plugin.Package(cmd.Context(), project, f, dryRun); err != nil {
				return err
			}

			prompts.PrintResult([]prompts.ResultField{
				{Label: "Package", Value: archiveName},
			}, "Packaged "+project.Settings.TypeName)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Package the existing build output without rebuilding")

	return cmd
}
