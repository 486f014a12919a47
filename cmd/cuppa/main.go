package main

import (
	"context"
	"io"
	"os"

	"github.com/indaco/cuppa/internal/app"
	"github.com/indaco/cuppa/internal/cli"
	"github.com/indaco/cuppa/internal/printer"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		printer.PrintErrorTo(os.Stderr, err.Error())
		os.Exit(1)
	}
}

// runCLI wires the process streams into the root command and runs it.
func runCLI(args []string) error {
	return runWith(args, os.Stdin, os.Stdout, os.Stderr)
}

func runWith(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	rt := app.NewRuntime(stdin, stdout, stderr)
	return cli.New(rt).Run(context.Background(), args)
}
