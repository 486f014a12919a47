package doctor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/huh/spinner"
	"github.com/indaco/cuppa/internal/app"
	"github.com/indaco/cuppa/internal/config"
	"github.com/indaco/cuppa/internal/core"
	"github.com/indaco/cuppa/internal/extract"
	"github.com/indaco/cuppa/internal/modules"
	"github.com/indaco/cuppa/internal/printer"
	"github.com/indaco/cuppa/internal/style"
	"github.com/indaco/cuppa/internal/toolchain"
	"github.com/indaco/cuppa/internal/trigger"
	"github.com/indaco/cuppa/internal/tui"
	"github.com/urfave/cli/v3"
)

// javaProber resolves and runs the Java executable.
type javaProber interface {
	ResolveJava() string
	JavaVersionOutput(ctx context.Context) (string, error)
}

// Replaced in tests.
var (
	newProberFn = func(timeout time.Duration) javaProber {
		return toolchain.NewRunner(timeout)
	}
	newFileSystemFn = func() core.FileSystem {
		return core.NewOSFileSystem()
	}
	isInteractiveFn = tui.IsInteractive
	runSpinnerFn    = func(title string, action func()) error {
		return spinner.New().Title(title).Action(action).Run()
	}
)

// Run returns the "doctor" command.
func Run(rt *app.Runtime) *cli.Command {
	return &cli.Command{
		Name:      "doctor",
		Usage:     "Explain why the Java segment is shown or hidden",
		UsageText: "cuppa doctor [--path dir]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "path",
				Aliases:     []string{"p"},
				Usage:       "Directory to inspect",
				DefaultText: "current directory",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runDoctor(ctx, cmd, rt)
		},
	}
}

// report collects the outcome of each check.
type report struct {
	w        io.Writer
	errors   int
	warnings int
}

func (r *report) section(title string) {
	fmt.Fprintf(r.w, "\n%s\n", printer.Bold(title))
}

func (r *report) ok(msg string) {
	printer.PrintStatus(r.w, printer.StatusOK, msg)
}

func (r *report) warn(msg string) {
	r.warnings++
	printer.PrintStatus(r.w, printer.StatusWarn, msg)
}

func (r *report) fail(msg string) {
	r.errors++
	printer.PrintStatus(r.w, printer.StatusFail, msg)
}

func (r *report) info(msg string) {
	fmt.Fprintf(r.w, "    %s\n", printer.Faint(msg))
}

func runDoctor(ctx context.Context, cmd *cli.Command, rt *app.Runtime) error {
	dir := cmd.String("path")
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
		dir = wd
	}

	fs := newFileSystemFn()
	r := &report{w: rt.Stdout}

	if err := checkConfig(ctx, r, fs, rt); err != nil {
		return err
	}

	jc := rt.Config.GetJavaConfig()
	isProject := checkProject(ctx, r, fs, dir, jc)

	raw, probed := checkToolchain(ctx, r, rt.Config)

	version, extracted := "", false
	if probed {
		version, extracted = checkExtraction(r, raw)
	}

	r.section("Prompt")
	switch {
	case jc.Disabled:
		r.warn("Segment hidden: java module is disabled")
	case !isProject:
		r.warn("Segment hidden: not a Java project")
	case !extracted:
		r.warn("Segment hidden: Java version unavailable")
	default:
		m := modulePreview(rt, jc, version)
		r.ok(fmt.Sprintf("Segment: %s", m))
	}

	fmt.Fprintln(rt.Stdout)
	summary := fmt.Sprintf("%d error(s), %d warning(s)", r.errors, r.warnings)
	if r.errors > 0 {
		printer.PrintErrorTo(rt.Stdout, summary)
		return fmt.Errorf("doctor found %d error(s)", r.errors)
	}
	printer.PrintSuccessTo(rt.Stdout, summary)
	return nil
}

// checkConfig validates the loaded (or attempted) config file.
func checkConfig(ctx context.Context, r *report, fs core.FileSystem, rt *app.Runtime) error {
	r.section("Config")

	results, err := config.NewValidator(fs, rt.Config, rt.ConfigPath).Validate(ctx)
	if err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	for _, res := range results {
		msg := fmt.Sprintf("%s: %s", res.Category, res.Message)
		switch {
		case !res.Passed && !res.Warning:
			r.fail(msg)
		case res.Warning:
			r.warn(msg)
		default:
			r.ok(msg)
		}
	}

	var pe *config.ParseError
	if errors.As(rt.ConfigErr, &pe) {
		r.info(pe.Suggestion())
	}
	return nil
}

// checkProject reports whether dir triggers the java module.
func checkProject(ctx context.Context, r *report, fs core.FileSystem, dir string, jc config.JavaConfig) bool {
	r.section("Project")

	matched := trigger.NewScanner(fs).
		SetFiles(jc.DetectFiles...).
		SetExtensions(jc.DetectExtensions...).
		SetFolders(jc.DetectFolders...).
		SetScanDepth(*jc.ScanDepth).
		IsMatch(ctx, dir)

	if matched {
		r.ok(fmt.Sprintf("%s is a Java project", dir))
	} else {
		r.warn(fmt.Sprintf("%s is not a Java project", dir))
	}
	r.info(fmt.Sprintf("files: %v", jc.DetectFiles))
	r.info(fmt.Sprintf("extensions: %v", jc.DetectExtensions))
	if len(jc.DetectFolders) > 0 {
		r.info(fmt.Sprintf("folders: %v", jc.DetectFolders))
	}
	return matched
}

// checkToolchain runs the Java self-report, behind a spinner on terminals.
func checkToolchain(ctx context.Context, r *report, cfg *config.Config) (string, bool) {
	r.section("Toolchain")

	prober := newProberFn(cfg.GetCommandTimeout())
	bin := prober.ResolveJava()
	r.info(fmt.Sprintf("executable: %s", bin))
	r.info(fmt.Sprintf("command: %s %v (timeout %s)", bin, toolchain.JavaInternalVersion.Args, cfg.GetCommandTimeout()))

	var (
		raw string
		err error
	)
	// The spinner may run the action on its own goroutine; calling probe
	// again afterwards waits for that run or performs it when it never started.
	probe := sync.OnceFunc(func() {
		raw, err = prober.JavaVersionOutput(ctx)
	})

	if isInteractiveFn() {
		_ = runSpinnerFn("Running java...", probe)
	}
	probe()

	if err != nil {
		r.fail(fmt.Sprintf("Java is unavailable: %v", err))
		return "", false
	}
	r.ok("Java responded")
	return raw, true
}

// checkExtraction reports which strategy recognized the output.
func checkExtraction(r *report, raw string) (string, bool) {
	r.section("Version")

	s, found := extract.Detect(raw)
	if !found {
		r.fail("No known version marker in java output")
		r.info(fmt.Sprintf("output: %q", truncate(raw, 120)))
		return "", false
	}
	r.info(fmt.Sprintf("vendor: %s (anchor %q)", s.Vendor, s.Anchor))

	version, ok := s.Extract(raw)
	if !ok {
		r.fail("Version token is not terminated")
		r.info(fmt.Sprintf("output: %q", truncate(raw, 120)))
		return "", false
	}
	r.ok(fmt.Sprintf("Version %s", version))
	return version, true
}

// modulePreview renders the segment the prompt command would print.
func modulePreview(rt *app.Runtime, jc config.JavaConfig, version string) string {
	mc := &modules.Context{
		Config:   rt.Config,
		Renderer: style.NewRenderer(rt.Stdout, rt.NoColor),
		Logger:   rt.Logger,
	}
	return modules.JavaSegment(mc, jc, version).String()
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "…"
}
