package initialize

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/indaco/cuppa/internal/app"
	"github.com/indaco/cuppa/internal/config"
	"github.com/indaco/cuppa/internal/printer"
	"github.com/indaco/cuppa/internal/style"
	"github.com/indaco/cuppa/internal/tui"
	"github.com/urfave/cli/v3"
)

// isInteractiveFn is replaced in tests.
var isInteractiveFn = tui.IsInteractive

// Run returns the "init" command.
func Run(rt *app.Runtime) *cli.Command {
	return &cli.Command{
		Name:      "init",
		Usage:     "Write a config file with the default java module settings",
		UsageText: "cuppa init [--format yaml|toml] [--path file] [--yes] [--force]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "format",
				Usage: "Config file format: yaml, toml",
				Value: string(config.FormatYAML),
			},
			&cli.StringFlag{
				Name:        "path",
				Aliases:     []string{"p"},
				Usage:       "Where to write the config file",
				DefaultText: "<user config dir>/cuppa/config.<format>",
			},
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "Skip the interactive form and use defaults",
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite an existing config file",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runInit(cmd, rt)
		},
	}
}

func runInit(cmd *cli.Command, rt *app.Runtime) error {
	cfg := config.Default()
	java := cfg.Java

	opts := tui.InitOptions{
		Style:  java.Style,
		Symbol: java.Symbol,
		Format: cmd.String("format"),
	}

	if isInteractiveFn() && !cmd.Bool("yes") {
		answers, err := tui.RunInitForm(opts)
		if err != nil {
			return fmt.Errorf("init cancelled: %w", err)
		}
		opts = answers
	}

	path, err := targetPath(cmd.String("path"), opts.Format)
	if err != nil {
		return err
	}

	if !cmd.Bool("force") {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to check %s: %w", path, err)
		}
	}

	if _, err := style.Parse(style.NewRenderer(io.Discard, true), opts.Style); err != nil {
		return fmt.Errorf("invalid style %q: %w", opts.Style, err)
	}
	java.Style = opts.Style
	java.Symbol = opts.Symbol

	if err := config.SaveConfigFn(cfg, path); err != nil {
		return err
	}

	printer.PrintSuccessTo(rt.Stdout, fmt.Sprintf("Wrote %s", path))
	fmt.Fprintln(rt.Stdout, printer.Faint("Add $(cuppa prompt) to your shell prompt to show the Java version."))
	return nil
}

// targetPath resolves the output file from --path or the format default.
func targetPath(explicit, format string) (string, error) {
	f := config.Format(format)
	if f != config.FormatYAML && f != config.FormatTOML {
		return "", fmt.Errorf("invalid format %q: use yaml or toml", format)
	}
	if explicit != "" {
		if _, err := config.FormatFromPath(explicit); err != nil {
			return "", err
		}
		return explicit, nil
	}
	return config.DefaultConfigPath(f)
}
