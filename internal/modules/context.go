// Package modules holds the prompt modules and the context they run in.
// A module either produces a styled segment.Module or nothing; it never
// returns an error, so one failing module cannot break the prompt.
package modules

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/indaco/cuppa/internal/config"
	"github.com/indaco/cuppa/internal/core"
	"github.com/indaco/cuppa/internal/segment"
	"github.com/indaco/cuppa/internal/style"
	"github.com/indaco/cuppa/internal/toolchain"
	"go.uber.org/zap"
)

// JavaProber returns the raw output of the Java self-report command.
type JavaProber interface {
	JavaVersionOutput(ctx context.Context) (string, error)
}

// Context carries everything a module needs to decide and render.
type Context struct {
	Dir      string
	Config   *config.Config
	FS       core.FileSystem
	Java     JavaProber
	Renderer *lipgloss.Renderer
	Logger   *zap.Logger
}

// NewContext creates a Context for dir backed by the real filesystem and
// toolchain. Nil cfg, renderer or logger are replaced by defaults.
func NewContext(dir string, cfg *config.Config, renderer *lipgloss.Renderer, logger *zap.Logger) *Context {
	if cfg == nil {
		cfg = &config.Config{}
	}
	if renderer == nil {
		renderer = style.NewRenderer(io.Discard, true)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Context{
		Dir:      dir,
		Config:   cfg,
		FS:       core.NewOSFileSystem(),
		Java:     toolchain.NewRunner(cfg.GetCommandTimeout()),
		Renderer: renderer,
		Logger:   logger,
	}
}

// Style parses desc, falling back to fallback when desc is invalid.
func (c *Context) Style(module, desc, fallback string) lipgloss.Style {
	s, err := style.Parse(c.Renderer, desc)
	if err == nil {
		return s
	}
	c.Logger.Warn("invalid style, using default",
		zap.String("module", module),
		zap.String("style", desc),
		zap.String("default", fallback),
		zap.Error(err))
	s, _ = style.Parse(c.Renderer, fallback)
	return s
}

// omit logs why a module produced no output.
func (c *Context) omit(module, reason string, fields ...zap.Field) {
	c.Logger.Debug("segment omitted",
		append([]zap.Field{zap.String("module", module), zap.String("reason", reason)}, fields...)...)
}

// Func builds a module or reports that it does not apply.
type Func func(ctx context.Context, mc *Context) (*segment.Module, bool)

var registry = map[string]Func{
	"java": Java,
}

// Names returns the registered module names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run executes the named module. Unknown modules and panics inside a module
// are logged and reported as absent.
func Run(ctx context.Context, mc *Context, name string) (m *segment.Module, ok bool) {
	fn, found := registry[name]
	if !found {
		mc.omit(name, "unknown module")
		return nil, false
	}

	defer func() {
		if r := recover(); r != nil {
			mc.Logger.Error("module panicked", zap.String("module", name), zap.String("panic", fmt.Sprint(r)))
			m, ok = nil, false
		}
	}()

	return fn(ctx, mc)
}
