package core

import (
	"context"
	"os"
)

// FileSystem abstracts the read-only filesystem operations used by detection
// and config validation.
type FileSystem interface {
	Stat(ctx context.Context, path string) (os.FileInfo, error)
	ReadFile(ctx context.Context, path string) ([]byte, error)
	ReadDir(ctx context.Context, dir string) ([]os.DirEntry, error)
}

// Marshaler abstracts serialization of configuration values.
type Marshaler interface {
	Marshal(v any) ([]byte, error)
}

// PermOwnerRW is the permission used for files holding user configuration.
const PermOwnerRW os.FileMode = 0o600

// PermDir is the permission used for directories created for configuration.
const PermDir os.FileMode = 0o755
