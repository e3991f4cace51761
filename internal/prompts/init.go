// SPDX-License-Identifier: Apache-2.0

package prompts

import (
	"github.com/charmbracelet/huh"

	"github.com/aws-cloudformation/cloudformation-cli-typescript-plugin/internal/config"
)

// RunInitForm runs the interactive form for the init command. It fills the
// provided pointers with user input; questions already answered by flags
// (a non-empty typeName, dockerSet) are skipped.
func RunInitForm(typeName *string, useDocker *bool, dockerSet bool) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Resource type name").
				Placeholder("Organization::Service::Resource").
				Validate(config.ValidateTypeName).
				Value(typeName),
		).WithHideFunc(func() bool { return *typeName != "" }),
		huh.NewGroup(
			huh.NewSelect[bool]().
				Title("Use docker for platform-independent packaging?").
				Description("Highly recommended unless you are experienced with cross-platform TypeScript packaging.").
				Options(
					huh.NewOption("Yes, build in docker", true),
					huh.NewOption("No, build locally", false),
				).
				Value(useDocker),
		).WithHideFunc(func() bool { return dockerSet }),
	).WithTheme(Theme()).Run()
}
