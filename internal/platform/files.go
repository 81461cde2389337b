package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// File permissions
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// Temp file naming for atomic writes
const (
	TempFilePrefix = "."
	TempFileSuffix = ".tmp"
)

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// FileExists reports whether anything exists at path
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// FileSize returns the size of the file at path, or -1 if it cannot be stat'd
func FileSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return -1
	}
	return info.Size()
}

// SafeJoin joins an archive-relative name onto root and rejects names that
// would resolve outside of root.
func SafeJoin(root, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("empty entry name")
	}
	clean := filepath.Clean(filepath.FromSlash(name))
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("entry escapes %s: %s", root, name)
	}
	return filepath.Join(root, clean), nil
}

// WriteFileAtomic writes data to a uniquely named temp file next to path and
// renames it over path, so readers never observe a half-written file.
// A symbolic link at path is written through, not replaced.
func WriteFileAtomic(path string, data []byte) error {
	if target, err := filepath.EvalSymlinks(path); err == nil {
		path = target
	}
	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, TempFilePrefix+filepath.Base(path)+"."+uuid.NewString()+TempFileSuffix)

	if err := os.WriteFile(tmp, data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
