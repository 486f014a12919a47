package prompt

import (
	"context"
	"fmt"
	"os"

	"github.com/indaco/cuppa/internal/app"
	"github.com/indaco/cuppa/internal/modules"
	"github.com/indaco/cuppa/internal/segment"
	"github.com/indaco/cuppa/internal/style"
	"github.com/tidwall/sjson"
	"github.com/urfave/cli/v3"
)

// newContextFn builds the module context; replaced in tests.
var newContextFn = func(dir string, rt *app.Runtime) *modules.Context {
	return modules.NewContext(dir, rt.Config, style.NewRenderer(rt.Stdout, rt.NoColor), rt.Logger)
}

// Run returns the "prompt" command.
func Run(rt *app.Runtime) *cli.Command {
	return &cli.Command{
		Name:  "prompt",
		Usage: "Print the Java segment for the current directory",
		UsageText: `cuppa prompt [options]

Prints the styled Java version segment (e.g. "☕ v11.0.4") without a trailing
newline, ready to embed in PS1 or a prompt theme. Prints nothing when the
directory is not a Java project, Java is not installed, or its version
cannot be read.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "path",
				Aliases:     []string{"p"},
				Usage:       "Directory to inspect",
				DefaultText: "current directory",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text, json",
				Value:   "text",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runPrompt(ctx, cmd, rt)
		},
	}
}

// runPrompt renders the java module. Detection, toolchain and extraction
// failures produce empty output, never an error.
func runPrompt(ctx context.Context, cmd *cli.Command, rt *app.Runtime) error {
	format := cmd.String("format")
	if format != "text" && format != "json" {
		return fmt.Errorf("invalid format %q: use text or json", format)
	}

	dir := cmd.String("path")
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			// A deleted working directory is not a Java project.
			return writeOutput(rt, format, nil)
		}
		dir = wd
	}

	m, ok := modules.Run(ctx, newContextFn(dir, rt), "java")
	if !ok {
		m = nil
	}
	return writeOutput(rt, format, m)
}

func writeOutput(rt *app.Runtime, format string, m *segment.Module) error {
	if format == "json" {
		out, err := moduleJSON(m)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(rt.Stdout, out)
		return err
	}

	if m == nil {
		return nil
	}
	_, err := fmt.Fprint(rt.Stdout, m.String())
	return err
}

// moduleJSON encodes the module name and its unstyled segments.
func moduleJSON(m *segment.Module) (string, error) {
	out := "{}"
	if m == nil || m.IsEmpty() {
		return out, nil
	}

	out, err := sjson.Set(out, "module", m.Name)
	if err != nil {
		return "", fmt.Errorf("failed to encode module: %w", err)
	}
	for _, seg := range m.Segments() {
		out, err = sjson.Set(out, seg.Name, seg.Value)
		if err != nil {
			return "", fmt.Errorf("failed to encode segment %q: %w", seg.Name, err)
		}
	}
	return out, nil
}
