package extract

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/indaco/cuppa/internal/app"
	extractor "github.com/indaco/cuppa/internal/extract"
	"github.com/urfave/cli/v3"
)

// ErrNoVersion is returned when the input carries no recognizable version.
var ErrNoVersion = errors.New("no version found in input")

// Run returns the "extract" command.
func Run(rt *app.Runtime) *cli.Command {
	return &cli.Command{
		Name:      "extract",
		Usage:     "Extract a version from captured `java -Xinternalversion` output",
		UsageText: "java -Xinternalversion | cuppa extract\ncuppa extract --input output.txt",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "Read output from file instead of stdin",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runExtract(cmd, rt)
		},
	}
}

func runExtract(cmd *cli.Command, rt *app.Runtime) error {
	raw, err := readInput(cmd.String("input"), rt.Stdin)
	if err != nil {
		return err
	}

	version, ok := extractor.Extract(raw)
	if !ok {
		return ErrNoVersion
	}
	_, err = fmt.Fprintln(rt.Stdout, version)
	return err
}

func readInput(path string, stdin io.Reader) (string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return string(data), nil
	}

	if stdin == nil {
		return "", errors.New("no input: pass --input or pipe output on stdin")
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}
