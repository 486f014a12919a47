// Package app holds the per-invocation state shared by the CLI commands.
package app

import (
	"fmt"
	"io"
	"os"

	"github.com/indaco/cuppa/internal/config"
	"github.com/indaco/cuppa/internal/logging"
	"github.com/indaco/cuppa/internal/printer"
	"github.com/indaco/cuppa/internal/tui"
	"go.uber.org/zap"
)

// Runtime is created by main and filled in by the root command's Before hook.
type Runtime struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Config is never nil after Setup; it is empty when no file was loaded.
	Config *config.Config

	// ConfigPath is the config file that was (or failed to be) loaded.
	ConfigPath string

	// ConfigErr is the load error, if any. Commands decide whether it matters.
	ConfigErr error

	Logger  *zap.Logger
	NoColor bool
}

// NewRuntime creates a Runtime bound to the given streams.
func NewRuntime(stdin io.Reader, stdout, stderr io.Writer) *Runtime {
	return &Runtime{
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
		Config: &config.Config{},
		Logger: zap.NewNop(),
	}
}

// Setup configures logging and color, then loads the configuration.
// An unknown log level disables logging with a warning on Stderr. A config
// that cannot be loaded is recorded in ConfigErr and replaced by defaults.
// Neither stops the prompt from rendering.
func (r *Runtime) Setup(configPath, logLevel string, noColor bool) {
	r.NoColor = noColor || os.Getenv("NO_COLOR") != ""
	printer.SetNoColor(r.NoColor)

	logger, err := logging.New(logLevel, r.Stderr)
	if err != nil {
		// A bad level must not break the prompt; report it and log nothing.
		fmt.Fprintln(r.Stderr, printer.Warning(fmt.Sprintf("cuppa: %v, logging disabled", err)))
		logger = zap.NewNop()
	}
	r.Logger = logger

	cfg, err := config.LoadConfigFn(configPath)
	if err != nil {
		r.ConfigErr = err
		r.Logger.Warn("config not loaded, using defaults", zap.Error(err))
		cfg = nil
	}
	if cfg == nil {
		cfg = &config.Config{}
	}
	r.Config = cfg

	r.ConfigPath = cfg.Path
	if r.ConfigPath == "" {
		// Keep the attempted path so doctor can report on it.
		r.ConfigPath, _ = config.ResolveConfigPath(configPath)
	}
	if r.ConfigPath != "" {
		r.Logger.Debug("config resolved", zap.String("path", r.ConfigPath), zap.Bool("loaded", r.ConfigErr == nil))
	}

	tui.SetTheme(cfg.GetTheme())
}
