// Package toolchain runs an installed toolchain's self-report command and
// returns what it printed.
package toolchain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// DefaultTimeout bounds a single toolchain invocation.
const DefaultTimeout = 500 * time.Millisecond

// WaitDelay bounds how long Run keeps waiting for output once the command
// is killed, since a forked child of the launcher can hold stdout open.
const WaitDelay = 100 * time.Millisecond

// ErrUnavailable is returned when the toolchain is missing, fails, or does
// not answer in time. It is an expected condition, not a defect.
var ErrUnavailable = errors.New("toolchain unavailable")

// Command is an executable plus the fixed arguments passed to it.
type Command struct {
	Name string
	Args []string
}

// String returns the command line as it would be typed.
func (c Command) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// JavaInternalVersion prints the JVM's build description, including the
// "JRE (<version>...)" phrase.
var JavaInternalVersion = Command{Name: "java", Args: []string{"-Xinternalversion"}}

// Runner executes toolchain commands with a timeout.
type Runner struct {
	execCommand func(ctx context.Context, name string, arg ...string) *exec.Cmd
	getenv      func(key string) string
	stat        func(name string) (os.FileInfo, error)

	// Timeout bounds each invocation. Zero or negative means DefaultTimeout.
	Timeout time.Duration
}

// NewRunner creates a Runner using os/exec.
func NewRunner(timeout time.Duration) *Runner {
	return &Runner{
		execCommand: exec.CommandContext,
		getenv:      os.Getenv,
		stat:        os.Stat,
		Timeout:     timeout,
	}
}

// ResolveJava returns $JAVA_HOME/bin/java when it exists, or "java" to be
// looked up on PATH.
func (r *Runner) ResolveJava() string {
	home := r.getenv("JAVA_HOME")
	if home == "" {
		return JavaInternalVersion.Name
	}

	bin := "java"
	if runtime.GOOS == "windows" {
		bin = "java.exe"
	}
	candidate := filepath.Join(home, "bin", bin)
	if info, err := r.stat(candidate); err == nil && !info.IsDir() {
		return candidate
	}
	return JavaInternalVersion.Name
}

// JavaVersionOutput runs `java -Xinternalversion` and returns its stdout.
func (r *Runner) JavaVersionOutput(ctx context.Context) (string, error) {
	return r.Run(ctx, Command{Name: r.ResolveJava(), Args: JavaInternalVersion.Args})
}

// Run executes c and returns its standard output decoded as UTF-8, with
// invalid byte sequences replaced. Any failure wraps ErrUnavailable.
func (r *Runner) Run(ctx context.Context, c Command) (string, error) {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := r.execCommand(ctx, c.Name, c.Args...)
	cmd.WaitDelay = WaitDelay
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: %s timed out after %s", ErrUnavailable, c, timeout)
		}
		stderrMsg := strings.TrimSpace(stderr.String())
		if stderrMsg != "" {
			return "", fmt.Errorf("%w: %s: %s: %w", ErrUnavailable, c, stderrMsg, err)
		}
		return "", fmt.Errorf("%w: %s: %w", ErrUnavailable, c, err)
	}

	return strings.ToValidUTF8(stdout.String(), "�"), nil
}
