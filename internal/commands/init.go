// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aws-cloudformation/cloudformation-cli-typescript-plugin/internal/config"
	"github.com/aws-cloudformation/cloudformation-cli-typescript-plugin/internal/prompts"
	"github.com/aws-cloudformation/cloudformation-cli-typescript-plugin/internal/session"
	"github.com/aws-cloudformation/cloudformation-cli-typescript-plugin/internal/typescript"
)

type initOptions struct {
	typeName       string
	useDocker      bool
	noDocker       bool
	dockerSet      bool
	nonInteractive bool
}

func newInitCmd(plugin *typescript.Plugin) *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new resource provider project",
		Long: `Initialize a new TypeScript resource provider project in the current
directory: a starter resource schema, a handler stub, npm and TypeScript
manifests, and a SAM template for local testing.`,
		Example: `  # Interactive mode
  cfn-typescript init

  # Non-interactive
  cfn-typescript init --type-name Example::Service::Resource --non-interactive
  cfn-typescript init --type-name Example::Service::Resource --no-docker --non-interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.dockerSet = cmd.Flags().Changed("use-docker") || cmd.Flags().Changed("no-docker")
			return runInit(plugin, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.typeName, "type-name", "t", "", "Resource type name (Organization::Service::Resource)")
	cmd.Flags().BoolVarP(&opts.useDocker, "use-docker", "d", false, "Use docker for platform-independent packaging")
	cmd.Flags().BoolVar(&opts.noDocker, "no-docker", false, "Build locally instead of in docker")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts (requires --type-name)")
	cmd.MarkFlagsMutuallyExclusive("use-docker", "no-docker")

	return cmd
}

func runInit(plugin *typescript.Plugin, opts *initOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	settingsPath := filepath.Join(cwd, config.FileName)
	if _, err := os.Stat(settingsPath); err == nil {
		return errors.New(config.FileName + " already exists; project already initialized")
	}

	// Docker is the default; cross-platform native packaging is hard to get right.
	useDocker := opts.useDocker || !opts.noDocker

	if opts.nonInteractive {
		if opts.typeName == "" {
			return errors.New("non-interactive mode requires --type-name")
		}
	} else {
		if err := prompts.RunInitForm(&opts.typeName, &useDocker, opts.dockerSet); err != nil {
			return err
		}
	}

	if err := config.ValidateTypeName(opts.typeName); err != nil {
		return err
	}

	settings := plugin.DefaultSettings(opts.typeName, useDocker)
	if err := settings.Save(settingsPath); err != nil {
		return fmt.Errorf("failed to write %s: %w", config.FileName, err)
	}

	if err := plugin.WriteSchemaStub(cwd, opts.typeName); err != nil {
		return err
	}

	project, err := session.LoadFrom(cwd)
	if err != nil {
		return err
	}

	if err := plugin.Init(project); err != nil {
		return err
	}
	if err := plugin.Generate(project); err != nil {
		return err
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Type name", Value: opts.typeName},
		{Label: "Schema", Value: project.SchemaFileName()},
		{Label: "Handlers", Value: filepath.Join("src", "handlers.ts")},
	}, "Initialization completed")

	return nil
}
