package recipes

import (
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"
)

// Discover walks sourceRoot and yields a RecipePath for every regular file
// ending in DocumentExt, in lexical walk order. sourceRoot itself may be a
// symlink to a directory. Below it, symlinks are followed only when they
// point at a regular file; linked directories are not entered.
//
// The sequence is lazy and single-pass. A walk failure is yielded once as an
// ErrDiscovery error and ends the sequence. A tree without documents yields
// nothing.
func Discover(sourceRoot, destRoot string) iter.Seq2[RecipePath, error] {
	return func(yield func(RecipePath, error) bool) {
		root := filepath.Clean(sourceRoot)
		err := filepath.WalkDir(walkRoot(root), func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.HasSuffix(d.Name(), DocumentExt) {
				return nil
			}
			if !isRegularFile(p, d) {
				return nil
			}

			rp, err := NewRecipePath(root, destRoot, filepath.Dir(p), d.Name())
			if err != nil {
				return err
			}
			if !yield(rp, nil) {
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil {
			yield(RecipePath{}, fmt.Errorf("%w: %s: %w", ErrDiscovery, root, err))
		}
	}
}

// walkRoot adds a trailing separator so WalkDir's Lstat of the root resolves
// a symlinked directory. Paths below it are joined and cleaned by WalkDir, so
// they still start with root.
func walkRoot(root string) string {
	if strings.HasSuffix(root, string(filepath.Separator)) {
		return root
	}
	return root + string(filepath.Separator)
}

func isRegularFile(p string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(p)
	return err == nil && info.Mode().IsRegular()
}

// Drain materializes seq, stopping at the first error.
func Drain[T any](seq iter.Seq2[T, error]) ([]T, error) {
	var out []T
	for v, err := range seq {
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
