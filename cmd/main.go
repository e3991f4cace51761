// SPDX-License-Identifier: Apache-2.0

// Package main is the entry point for the cfn-typescript CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aws-cloudformation/cloudformation-cli-typescript-plugin/cmd/internal"
)

func main() {
	if err := internal.Run(context.Background(), os.Getenv); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
