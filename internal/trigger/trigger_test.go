package trigger

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/indaco/cuppa/internal/core"
)

func javaScanner(fs core.FileSystem) *Scanner {
	return NewScanner(fs).
		SetFiles("pom.xml", "build.gradle").
		SetExtensions("java", "class", ".jar")
}

func TestScanner_IsMatch(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		dirs  []string
		depth int
		want  bool
	}{
		{name: "pom.xml", files: []string{"/p/pom.xml"}, want: true},
		{name: "gradle build", files: []string{"/p/build.gradle"}, want: true},
		{name: "java source", files: []string{"/p/Main.java"}, want: true},
		{name: "class file", files: []string{"/p/Main.class"}, want: true},
		{name: "jar with dotted extension config", files: []string{"/p/app.jar"}, want: true},
		{name: "unrelated files", files: []string{"/p/README.md", "/p/go.mod"}, want: false},
		{name: "extension must be exact", files: []string{"/p/notes.javascript"}, want: false},
		{name: "marker name is case sensitive", files: []string{"/p/POM.XML"}, want: false},
		{name: "empty directory", dirs: []string{"/p"}, want: false},
		{name: "nested source ignored at depth 0", files: []string{"/p/src/Main.java"}, want: false},
		{name: "nested source found at depth 1", files: []string{"/p/src/Main.java"}, depth: 1, want: true},
		{name: "nested too deep", files: []string{"/p/src/main/Main.java"}, depth: 1, want: false},
		{name: "skip list not descended", files: []string{"/p/node_modules/x.jar"}, depth: 3, want: false},
		{name: "hidden dir not descended", files: []string{"/p/.idea/Main.java"}, depth: 3, want: false},
		{name: "directory named like marker is not a file match", dirs: []string{"/p/pom.xml"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := core.NewMockFileSystem()
			fs.MkdirAll("/p")
			for _, f := range tt.files {
				fs.SetFile(f, []byte("x"))
			}
			for _, d := range tt.dirs {
				fs.MkdirAll(d)
			}

			got := javaScanner(fs).SetScanDepth(tt.depth).IsMatch(context.Background(), "/p")
			if got != tt.want {
				t.Errorf("IsMatch() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScanner_Folders(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.MkdirAll("/p/.mvn")

	s := NewScanner(fs).SetFolders(".mvn")
	if !s.IsMatch(context.Background(), "/p") {
		t.Error("expected folder marker to match")
	}
}

func TestScanner_NoMarkers(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/p/pom.xml", []byte("x"))

	if NewScanner(fs).IsMatch(context.Background(), "/p") {
		t.Error("scanner without markers must never match")
	}
}

func TestScanner_UnreadableDirectory(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/p/pom.xml", []byte("x"))
	fs.SetError("/p", errors.New("permission denied"))

	if javaScanner(fs).IsMatch(context.Background(), "/p") {
		t.Error("unreadable directory must not match")
	}
	if javaScanner(fs).IsMatch(context.Background(), "/missing") {
		t.Error("missing directory must not match")
	}
}

func TestScanner_CancelledContext(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/p/pom.xml", []byte("x"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if javaScanner(fs).IsMatch(ctx, "/p") {
		t.Error("cancelled scan must not match")
	}
}

func TestScanner_SetScanDepthClampsNegative(t *testing.T) {
	s := NewScanner(core.NewMockFileSystem()).SetScanDepth(-4)
	if s.ScanDepth != 0 {
		t.Errorf("ScanDepth = %d, want 0", s.ScanDepth)
	}
}

func TestScanner_OSFileSystem(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "Main.java"), []byte("class Main {}"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !javaScanner(core.NewOSFileSystem()).IsMatch(context.Background(), dir) {
		t.Error("expected match on real filesystem")
	}
}
