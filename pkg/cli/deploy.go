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

	"github.com/jcriveros/devaci/pkg/deployer"
)

func deployCmd() *cli.Command {
	return &cli.Command{
		Name:                  "deploy",
		EnableShellCompletion: true,
		Usage:                 "Commit rendered configuration to the controller",
		Description: `Render every template and commit the resulting configuration to the
controller in order. A template that fails to render or commit does not stop
the templates after it; the run result reports each outcome.

Each run is appended to the run history file (--record) for audit:

  devaci deploy --ip 10.0.0.1 -u admin -p $DEVACI_PASSWORD -t templates/
  devaci deploy -t tenant.yaml.tmpl --vars prod.yaml --xml
  devaci deploy -t tenant.yaml.tmpl --testing`,
		Flags: []cli.Flag{
			hostFlag,
			usernameFlag,
			passwordFlag,
			secureFlag,
			timeoutFlag,
			templateFlag,
			varsFlag,
			recordFlag,
			xmlFlag,
			&cli.BoolFlag{
				Name:  "testing",
				Usage: "render and build only, never touching the controller",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			d, err := newDeployer(ctx, cmd, cmd.Bool("testing"))
			if err != nil {
				return err
			}

			result, err := d.Deploy(ctx)
			if result != nil {
				if rerr := result.Record(d.RecordPath()); rerr != nil {
					slog.Warn("recording run failed", "error", rerr)
				}
			}
			if err != nil {
				return err
			}
			if err := writeOutput(ctx, cmd, result); err != nil {
				return err
			}
			if !result.Success {
				return fmt.Errorf("deploy failed for %d template(s)", failedCount(result.Output))
			}
			return nil
		},
	}
}

func failedCount(output []deployer.TemplateResult) int {
	n := 0
	for _, tr := range output {
		if !tr.Success {
			n++
		}
	}
	if n == 0 {
		// A run can fail before any template output exists.
		return 1
	}
	return n
}
