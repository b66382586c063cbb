/*
Copyright © 2025 Jorge C. Riveros
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/jcriveros/devaci/pkg/model"
)

func classesCmd() *cli.Command {
	return &cli.Command{
		Name:                  "classes",
		EnableShellCompletion: true,
		Usage:                 "List the template classes the deployer can build",
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return writeOutput(ctx, cmd, map[string][]string{
				"classes": model.Classes(),
			})
		},
	}
}
