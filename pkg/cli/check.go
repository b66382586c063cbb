/*
Copyright © 2025 Jorge C. Riveros
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"
)

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:                  "check",
		EnableShellCompletion: true,
		Usage:                 "Render templates and build payloads without contacting the controller",
		Description: `Render every template, decode the output, and assemble the managed
object payloads that deploy would commit. Nothing is sent to the fabric.

The result includes the full payload per template so it can be reviewed or
diffed before a real run:

  devaci check --template tenants.yaml.tmpl --vars prod.yaml
  devaci check --template templates/ --format yaml --output plan.yaml`,
		Flags: []cli.Flag{
			templateFlag,
			varsFlag,
			recordFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			d, err := newDeployer(ctx, cmd, true)
			if err != nil {
				return err
			}

			result, err := d.Check(ctx)
			if err != nil {
				return err
			}
			if err := result.Record(d.RecordPath()); err != nil {
				slog.Warn("recording run failed", "error", err)
			}
			if err := writeOutput(ctx, cmd, result); err != nil {
				return err
			}
			if !result.Success {
				return fmt.Errorf("check found errors in %d template(s)", failedCount(result.Output))
			}
			return nil
		},
	}
}
