// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Permissions for generated output. The published tree is meant to be
// served, so it stays world-readable.
const (
	DirPermissions  = 0o755 // rwxr-xr-x
	FilePermissions = 0o644 // rw-r--r--
)

var (
	// ErrEmptyPath is returned when a write target is empty.
	ErrEmptyPath = errors.New("path cannot be empty")
	// ErrSymlinkLoop is returned when a linked directory leads back into a
	// directory that is being copied.
	ErrSymlinkLoop = errors.New("symlink loop")
	// ErrUnsupportedFile is returned for entries that are neither regular
	// files nor directories, such as sockets and devices.
	ErrUnsupportedFile = errors.New("unsupported file type")
)

// WriteFile creates any missing parent directories of path and writes
// content to it, replacing an existing file.
func WriteFile(path, content string) error {
	if path == "" {
		return ErrEmptyPath
	}
	if err := os.MkdirAll(filepath.Dir(path), DirPermissions); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), FilePermissions); err != nil { // #nosec G306 -- published output
		return fmt.Errorf("writing file: %w", err)
	}
	return nil
}

// FileExists returns true if the path exists and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "recipes" -> false (name)
//   - "./recipes.yaml" -> true (relative path)
//   - "/etc/recipes.yaml" -> true (absolute)
//   - "sub/dir" -> true (contains separator)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// IsWithin reports whether path equals dir or lies underneath it.
// Both are made absolute and cleaned first; symlinks are not resolved.
func IsWithin(path, dir string) (bool, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false, err
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return false, err
	}
	if absPath == absDir {
		return true, nil
	}
	rel, err := filepath.Rel(absDir, absPath)
	if err != nil {
		return false, nil
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)), nil
}

// CopyTree copies the directory tree at src into dst, creating dst and any
// missing parents. Symlinks are followed: a linked file is copied as a
// regular file and a linked directory is copied as a directory. Existing
// files in dst are overwritten.
func CopyTree(dst, src string) error {
	return copyDir(dst, src, make(map[string]bool))
}

// copyDir copies one directory. active holds the resolved paths of the
// directories currently being copied, so a link back into one is caught.
func copyDir(dst, src string, active map[string]bool) error {
	resolved, err := filepath.EvalSymlinks(src)
	if err != nil {
		return err
	}
	if active[resolved] {
		return fmt.Errorf("%w: %s", ErrSymlinkLoop, src)
	}
	active[resolved] = true
	defer delete(active, resolved)

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dst, DirPermissions); err != nil {
		return err
	}

	for _, e := range entries {
		from := filepath.Join(src, e.Name())
		to := filepath.Join(dst, e.Name())

		info, err := os.Stat(from)
		if err != nil {
			return err
		}
		switch {
		case info.IsDir():
			err = copyDir(to, from, active)
		case info.Mode().IsRegular():
			err = copyFile(to, from)
		default:
			err = fmt.Errorf("%w: %s", ErrUnsupportedFile, from)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func copyFile(dst, src string) (err error) {
	in, err := os.Open(src) // #nosec G304 -- caller-supplied tree
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, FilePermissions) // #nosec G302 G304 -- published output
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = io.Copy(out, in)
	return err
}
