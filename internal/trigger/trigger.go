package trigger

import (
	"context"
	"path/filepath"
	"slices"
	"strings"

	"github.com/indaco/cuppa/internal/core"
)

// skipDirs are never descended into when ScanDepth > 0.
var skipDirs = []string{"node_modules", "vendor", ".git", "__pycache__", "target", "dist", "build"}

// Scanner matches directory entries against a set of markers.
type Scanner struct {
	fs core.FileSystem

	// Files are exact file names (e.g. "pom.xml").
	Files []string

	// Extensions are file extensions without the leading dot (e.g. "java").
	Extensions []string

	// Folders are exact directory names.
	Folders []string

	// ScanDepth is how many levels below the directory are inspected.
	// Zero inspects only the directory itself.
	ScanDepth int
}

// NewScanner creates a Scanner reading from fs.
func NewScanner(fs core.FileSystem) *Scanner {
	return &Scanner{fs: fs}
}

// SetFiles sets the marker file names.
func (s *Scanner) SetFiles(files ...string) *Scanner {
	s.Files = files
	return s
}

// SetExtensions sets the marker extensions.
func (s *Scanner) SetExtensions(exts ...string) *Scanner {
	normalized := make([]string, 0, len(exts))
	for _, e := range exts {
		normalized = append(normalized, strings.TrimPrefix(e, "."))
	}
	s.Extensions = normalized
	return s
}

// SetFolders sets the marker folder names.
func (s *Scanner) SetFolders(folders ...string) *Scanner {
	s.Folders = folders
	return s
}

// SetScanDepth sets how deep below the directory the scan goes.
func (s *Scanner) SetScanDepth(depth int) *Scanner {
	s.ScanDepth = max(depth, 0)
	return s
}

// IsMatch reports whether dir (or a subdirectory within ScanDepth) contains
// any marker. Directories that cannot be read count as no match.
func (s *Scanner) IsMatch(ctx context.Context, dir string) bool {
	if len(s.Files) == 0 && len(s.Extensions) == 0 && len(s.Folders) == 0 {
		return false
	}
	return s.scan(ctx, dir, 0)
}

func (s *Scanner) scan(ctx context.Context, dir string, depth int) bool {
	if depth > s.ScanDepth {
		return false
	}

	// Check for context cancellation
	if ctx.Err() != nil {
		return false
	}

	entries, err := s.fs.ReadDir(ctx, dir)
	if err != nil {
		return false
	}

	var subdirs []string
	for _, entry := range entries {
		name := entry.Name()

		if entry.IsDir() {
			if slices.Contains(s.Folders, name) {
				return true
			}
			if !shouldSkip(name) {
				subdirs = append(subdirs, filepath.Join(dir, name))
			}
			continue
		}

		if s.matchFile(name) {
			return true
		}
	}

	for _, sub := range subdirs {
		if s.scan(ctx, sub, depth+1) {
			return true
		}
	}

	return false
}

// matchFile checks a file name against marker names and extensions.
func (s *Scanner) matchFile(name string) bool {
	if slices.Contains(s.Files, name) {
		return true
	}
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if ext == "" {
		return false
	}
	return slices.Contains(s.Extensions, ext)
}

// shouldSkip excludes hidden and dependency/build directories from descent.
func shouldSkip(name string) bool {
	return strings.HasPrefix(name, ".") || slices.Contains(skipDirs, name)
}
