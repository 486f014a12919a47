package core

import (
	"context"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"
	"time"
)

// MockFileSystem is an in-memory FileSystem for tests.
// Paths are slash-separated; parent directories are implied by files.
type MockFileSystem struct {
	mu      sync.RWMutex
	files   map[string][]byte
	dirs    map[string]bool
	readErr map[string]error
}

// NewMockFileSystem returns an empty MockFileSystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files:   make(map[string][]byte),
		dirs:    make(map[string]bool),
		readErr: make(map[string]error),
	}
}

// Verify MockFileSystem implements FileSystem.
var _ FileSystem = (*MockFileSystem)(nil)

// SetFile stores a file and registers all of its parent directories.
func (m *MockFileSystem) SetFile(p string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p = path.Clean(p)
	m.files[p] = data
	for dir := path.Dir(p); ; dir = path.Dir(dir) {
		m.dirs[dir] = true
		if dir == "/" || dir == "." {
			break
		}
	}
}

// MkdirAll registers an empty directory and its parents.
func (m *MockFileSystem) MkdirAll(p string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for dir := path.Clean(p); ; dir = path.Dir(dir) {
		m.dirs[dir] = true
		if dir == "/" || dir == "." {
			break
		}
	}
}

// SetError makes every operation on p fail with err.
func (m *MockFileSystem) SetError(p string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readErr[path.Clean(p)] = err
}

func (m *MockFileSystem) Stat(ctx context.Context, p string) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	p = path.Clean(p)
	if err, ok := m.readErr[p]; ok {
		return nil, err
	}
	if data, ok := m.files[p]; ok {
		return mockFileInfo{name: path.Base(p), size: int64(len(data))}, nil
	}
	if m.dirs[p] {
		return mockFileInfo{name: path.Base(p), dir: true}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: p, Err: fs.ErrNotExist}
}

func (m *MockFileSystem) ReadFile(ctx context.Context, p string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	p = path.Clean(p)
	if err, ok := m.readErr[p]; ok {
		return nil, err
	}
	data, ok := m.files[p]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: p, Err: fs.ErrNotExist}
	}
	return append([]byte(nil), data...), nil
}

func (m *MockFileSystem) ReadDir(ctx context.Context, dir string) ([]os.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	dir = path.Clean(dir)
	if err, ok := m.readErr[dir]; ok {
		return nil, err
	}
	if !m.dirs[dir] {
		return nil, &fs.PathError{Op: "open", Path: dir, Err: fs.ErrNotExist}
	}

	seen := make(map[string]os.DirEntry)
	for p, data := range m.files {
		if name, ok := childOf(dir, p); ok {
			seen[name] = fs.FileInfoToDirEntry(mockFileInfo{name: name, size: int64(len(data))})
		}
	}
	for p := range m.dirs {
		if name, ok := childOf(dir, p); ok {
			seen[name] = fs.FileInfoToDirEntry(mockFileInfo{name: name, dir: true})
		}
	}

	entries := make([]os.DirEntry, 0, len(seen))
	for _, e := range seen {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

// childOf reports whether p is a direct child of dir and returns its name.
func childOf(dir, p string) (string, bool) {
	if p == dir || path.Dir(p) != dir {
		return "", false
	}
	name := path.Base(p)
	return name, !strings.Contains(name, "/")
}

type mockFileInfo struct {
	name string
	size int64
	dir  bool
}

func (i mockFileInfo) Name() string { return i.name }
func (i mockFileInfo) Size() int64  { return i.size }
func (i mockFileInfo) Mode() fs.FileMode {
	if i.dir {
		return fs.ModeDir | 0o755
	}
	return 0o644
}
func (i mockFileInfo) ModTime() time.Time { return time.Time{} }
func (i mockFileInfo) IsDir() bool        { return i.dir }
func (i mockFileInfo) Sys() any           { return nil }
