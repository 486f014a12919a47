package cli

import (
	"context"
	"fmt"

	"github.com/indaco/cuppa/internal/app"
	"github.com/indaco/cuppa/internal/commands/doctor"
	"github.com/indaco/cuppa/internal/commands/extract"
	"github.com/indaco/cuppa/internal/commands/initialize"
	"github.com/indaco/cuppa/internal/commands/prompt"
	"github.com/indaco/cuppa/internal/config"
	"github.com/indaco/cuppa/internal/logging"
	"github.com/indaco/cuppa/internal/version"
	urfavecli "github.com/urfave/cli/v3"
)

// New builds and returns the root CLI command,
// configuring all subcommands and flags for the cuppa cli.
func New(rt *app.Runtime) *urfavecli.Command {
	return &urfavecli.Command{
		Name:                  "cuppa",
		Version:               fmt.Sprintf("v%s", version.GetVersion()),
		Usage:                 "Java version segment for shell prompts",
		EnableShellCompletion: true,
		Reader:                rt.Stdin,
		Writer:                rt.Stdout,
		ErrWriter:             rt.Stderr,
		Flags: []urfavecli.Flag{
			&urfavecli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to a YAML or TOML config file",
				DefaultText: "$" + config.EnvConfigPath + " or <user config dir>/cuppa/config.yaml",
			},
			&urfavecli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
			&urfavecli.StringFlag{
				Name:    "log-level",
				Usage:   "Diagnostic log level on stderr: off, debug, info, warn, error",
				Sources: urfavecli.EnvVars(logging.EnvLogLevel),
				Value:   "off",
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			rt.Setup(cmd.String("config"), cmd.String("log-level"), cmd.Bool("no-color"))
			return ctx, nil
		},
		After: func(ctx context.Context, cmd *urfavecli.Command) error {
			if rt.Logger != nil {
				_ = rt.Logger.Sync()
			}
			return nil
		},
		Commands: []*urfavecli.Command{
			prompt.Run(rt),
			extract.Run(rt),
			initialize.Run(rt),
			doctor.Run(rt),
		},
	}
}
