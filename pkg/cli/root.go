/*
Copyright © 2025 Jorge C. Riveros
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/jcriveros/devaci/pkg/apic"
	"github.com/jcriveros/devaci/pkg/deployer"
	"github.com/jcriveros/devaci/pkg/logging"
	"github.com/jcriveros/devaci/pkg/render"
	"github.com/jcriveros/devaci/pkg/serializer"
)

const name = "devaci"

// overridden during build with ldflags
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var (
	hostFlag = &cli.StringFlag{
		Name:    "ip",
		Aliases: []string{"host"},
		Usage:   "controller address",
		Sources: cli.EnvVars("DEVACI_HOST", "DEVACI_IP"),
		Value:   apic.DefaultHost,
	}
	usernameFlag = &cli.StringFlag{
		Name:    "username",
		Aliases: []string{"u"},
		Usage:   "controller login user",
		Sources: cli.EnvVars("DEVACI_USERNAME"),
		Value:   apic.DefaultUsername,
	}
	passwordFlag = &cli.StringFlag{
		Name:    "password",
		Aliases: []string{"p"},
		Usage:   "controller login password",
		Sources: cli.EnvVars("DEVACI_PASSWORD"),
	}
	secureFlag = &cli.BoolFlag{
		Name:    "secure",
		Usage:   "verify the controller TLS certificate",
		Sources: cli.EnvVars("DEVACI_SECURE"),
	}
	timeoutFlag = &cli.DurationFlag{
		Name:    "timeout",
		Usage:   "controller request timeout",
		Sources: cli.EnvVars("DEVACI_TIMEOUT"),
		Value:   apic.DefaultTimeout,
	}
	templateFlag = &cli.StringSliceFlag{
		Name:    "template",
		Aliases: []string{"t"},
		Usage:   "template file, directory, or go-getter URL (can be repeated)",
		Sources: cli.EnvVars("DEVACI_TEMPLATE"),
	}
	varsFlag = &cli.StringFlag{
		Name:    "vars",
		Usage:   "YAML variables file for template rendering",
		Sources: cli.EnvVars("DEVACI_VARS"),
	}
	recordFlag = &cli.StringFlag{
		Name:    "record",
		Aliases: []string{"logging"},
		Usage:   "run history file (empty disables recording)",
		Sources: cli.EnvVars("DEVACI_RECORD"),
		Value:   deployer.DefaultRecordPath,
	}
	xmlFlag = &cli.BoolFlag{
		Name:  "xml",
		Usage: "commit configuration as XML instead of JSON",
	}
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}
	formatFlag = &cli.StringFlag{
		Name:  "format",
		Usage: fmt.Sprintf("output format: %v", serializer.SupportedFormats()),
		Value: string(serializer.FormatJSON),
	}
	logLevelFlag = &cli.StringFlag{
		Name:    "log-level",
		Usage:   "log level (debug, info, warn, error)",
		Sources: cli.EnvVars("LOG_LEVEL"),
		Value:   "info",
	}
)

// Run executes the CLI. This is called by main with os.Args.
func Run(ctx context.Context, args []string) error {
	root := &cli.Command{
		Name:                  name,
		Usage:                 "template driven configuration deployer for ACI fabrics",
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		Flags:                 []cli.Flag{logLevelFlag},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			checkCmd(),
			deployCmd(),
			classesCmd(),
		},
	}
	return root.Run(ctx, args)
}

// newDeployer assembles a deployer from command flags, resolving template
// sources to local files first.
func newDeployer(ctx context.Context, cmd *cli.Command, testing bool) (*deployer.Deployer, error) {
	vars, err := render.LoadVars(cmd.String("vars"))
	if err != nil {
		return nil, fmt.Errorf("loading variables failed: %w", err)
	}

	workdir := filepath.Join(os.TempDir(), name)
	var templates []string
	for _, src := range cmd.StringSlice("template") {
		paths, err := render.FetchTemplates(ctx, src, workdir)
		if err != nil {
			return nil, err
		}
		templates = append(templates, paths...)
	}

	return deployer.New(
		deployer.WithHost(cmd.String("ip")),
		deployer.WithCredentials(cmd.String("username"), cmd.String("password")),
		deployer.WithSecure(cmd.Bool("secure")),
		deployer.WithTimeout(cmd.Duration("timeout")),
		deployer.WithTesting(testing),
		deployer.WithXML(cmd.Bool("xml")),
		deployer.WithRecordPath(cmd.String("record")),
		deployer.WithVars(vars),
		deployer.WithTemplates(templates),
	), nil
}

// writeOutput serializes data to the destination selected by the output and
// format flags.
func writeOutput(ctx context.Context, cmd *cli.Command, data any) error {
	format := serializer.Format(cmd.String("format"))
	if format.IsUnknown() {
		return fmt.Errorf("unknown output format: %q", format)
	}

	w := serializer.NewFileWriterOrStdout(format, cmd.String("output"))
	defer func() {
		if err := w.Close(); err != nil {
			slog.Warn("closing output failed", "error", err)
		}
	}()
	return w.Serialize(ctx, data)
}
