package prompt

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/indaco/cuppa/internal/app"
	"github.com/indaco/cuppa/internal/config"
	"github.com/indaco/cuppa/internal/core"
	"github.com/indaco/cuppa/internal/modules"
	"github.com/indaco/cuppa/internal/style"
	"github.com/muesli/termenv"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

const java11Output = `OpenJDK 64-Bit Server VM (11.0.4+11-post-Ubuntu-1ubuntu219.04) for linux-amd64 JRE (11.0.4+11-post-Ubuntu-1ubuntu219.04), built on Jul 18 2019 18:21:46 by "buildd" with gcc 8.3.0`

type fakeJava struct {
	output string
	err    error
}

func (f fakeJava) JavaVersionOutput(context.Context) (string, error) { return f.output, f.err }

// stubContext routes the command to an in-memory project.
func stubContext(t *testing.T, files []string, java modules.JavaProber) {
	t.Helper()
	orig := newContextFn
	newContextFn = func(dir string, rt *app.Runtime) *modules.Context {
		fs := core.NewMockFileSystem()
		fs.MkdirAll("/project")
		for _, f := range files {
			fs.SetFile(f, []byte("x"))
		}
		return &modules.Context{
			Dir:      "/project",
			Config:   rt.Config,
			FS:       fs,
			Java:     java,
			Renderer: style.NewRendererWithProfile(io.Discard, termenv.Ascii),
			Logger:   zap.NewNop(),
		}
	}
	t.Cleanup(func() { newContextFn = orig })
}

func runCmd(t *testing.T, rt *app.Runtime, args ...string) error {
	t.Helper()
	root := &cli.Command{Name: "cuppa", Commands: []*cli.Command{Run(rt)}}
	return root.Run(context.Background(), append([]string{"cuppa", "prompt"}, args...))
}

func TestRun_ReturnsCommand(t *testing.T) {
	cmd := Run(app.NewRuntime(nil, io.Discard, io.Discard))
	if cmd.Name != "prompt" {
		t.Errorf("Name = %q, want prompt", cmd.Name)
	}

	for _, name := range []string{"path", "format"} {
		found := false
		for _, flag := range cmd.Flags {
			if flag.Names()[0] == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected flag %q not found", name)
		}
	}
}

func TestPrompt(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		java  fakeJava
		args  []string
		want  string
	}{
		{
			name:  "text segment without newline",
			files: []string{"/project/pom.xml"},
			java:  fakeJava{output: java11Output},
			want:  "☕ v11.0.4",
		},
		{
			name:  "not a java project prints nothing",
			files: []string{"/project/package.json"},
			java:  fakeJava{output: java11Output},
			want:  "",
		},
		{
			name:  "missing java prints nothing",
			files: []string{"/project/pom.xml"},
			java:  fakeJava{err: errors.New("executable file not found")},
			want:  "",
		},
		{
			name:  "unparseable output prints nothing",
			files: []string{"/project/pom.xml"},
			java:  fakeJava{output: "garbage"},
			want:  "",
		},
		{
			name:  "json segment",
			files: []string{"/project/pom.xml"},
			java:  fakeJava{output: java11Output},
			args:  []string{"--format", "json"},
			want:  `{"module":"java","symbol":"☕ ","version":"v11.0.4"}` + "\n",
		},
		{
			name:  "json when omitted",
			files: []string{"/project/README.md"},
			java:  fakeJava{output: java11Output},
			args:  []string{"--format", "json"},
			want:  "{}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubContext(t, tt.files, tt.java)
			var stdout bytes.Buffer
			rt := app.NewRuntime(nil, &stdout, io.Discard)

			if err := runCmd(t, rt, tt.args...); err != nil {
				t.Fatalf("prompt returned error: %v", err)
			}
			if got := stdout.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrompt_UsesConfiguredSymbol(t *testing.T) {
	stubContext(t, []string{"/project/pom.xml"}, fakeJava{output: java11Output})
	var stdout bytes.Buffer
	rt := app.NewRuntime(nil, &stdout, io.Discard)
	rt.Config = &config.Config{Java: &config.JavaConfig{Symbol: "J "}}

	if err := runCmd(t, rt); err != nil {
		t.Fatal(err)
	}
	if stdout.String() != "J v11.0.4" {
		t.Errorf("output = %q", stdout.String())
	}
}

func TestPrompt_InvalidFormat(t *testing.T) {
	stubContext(t, nil, fakeJava{})
	rt := app.NewRuntime(nil, io.Discard, io.Discard)

	if err := runCmd(t, rt, "--format", "xml"); err == nil {
		t.Error("expected error for invalid format")
	}
}
