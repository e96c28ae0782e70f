package templates

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/claudecraft/create-claudecraft/internal/platform"
)

// excludedNames are never copied out of the store.
var excludedNames = map[string]bool{
	"node_modules": true,
	".git":         true,
	".DS_Store":    true,
}

// Permission constants for materialized files.
const (
	DirPerm  os.FileMode = 0755
	FilePerm os.FileMode = 0644
	ExecPerm             = platform.ExecutableMode
)

// CopyTree copies the store directory src into the filesystem directory dst,
// merging with anything already there and overwriting same-named files.
// It reports false without error when src does not exist.
func (s *Store) CopyTree(src, dst string) (bool, error) {
	if !s.IsDir(src) {
		return false, nil
	}
	if err := s.copyDir(src, dst); err != nil {
		return false, fmt.Errorf("copying %s to %s: %w", src, dst, err)
	}
	return true, nil
}

// CopyFile copies a single store file to dst, overwriting it.
// It reports false without error when src does not exist.
func (s *Store) CopyFile(src, dst string) (bool, error) {
	if !s.Exists(src) || s.IsDir(src) {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(dst), DirPerm); err != nil {
		return false, fmt.Errorf("creating %s: %w", filepath.Dir(dst), err)
	}
	if err := s.copyFile(src, dst); err != nil {
		return false, fmt.Errorf("copying %s to %s: %w", src, dst, err)
	}
	return true, nil
}

// CopyFileIfAbsent copies src to dst only when nothing exists at dst yet.
func (s *Store) CopyFileIfAbsent(src, dst string) (bool, error) {
	_, err := os.Lstat(dst)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("checking %s: %w", dst, err)
	}
	return s.CopyFile(src, dst)
}

// copyDir recursively copies src to dst, excluding entries in excludedNames.
func (s *Store) copyDir(src, dst string) error {
	if err := os.MkdirAll(dst, DirPerm); err != nil {
		return err
	}

	entries, err := fs.ReadDir(s.fsys, src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if shouldExclude(entry.Name()) {
			continue
		}

		srcPath := path.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := s.copyDir(srcPath, dstPath); err != nil {
				return err
			}
		} else if entry.Type().IsRegular() {
			if err := s.copyFile(srcPath, dstPath); err != nil {
				return err
			}
		}
		// Skip symlinks and other special files during copy.
	}

	return nil
}

// copyFile copies a single file. Shell scripts and files with any execute
// bit in the store end up executable.
func (s *Store) copyFile(src, dst string) error {
	data, err := fs.ReadFile(s.fsys, src)
	if err != nil {
		return err
	}

	info, err := fs.Stat(s.fsys, src)
	if err != nil {
		return err
	}

	mode := fileMode(info)
	if err := os.WriteFile(dst, data, mode); err != nil {
		return err
	}

	// WriteFile keeps the mode of a file it overwrites.
	if mode == ExecPerm {
		return platform.MarkExecutable(dst)
	}
	return nil
}

func fileMode(info fs.FileInfo) os.FileMode {
	if strings.HasSuffix(info.Name(), ".sh") || info.Mode().Perm()&0111 != 0 {
		return ExecPerm
	}
	return FilePerm
}

// shouldExclude returns true if the name should be excluded during copy.
func shouldExclude(name string) bool {
	return excludedNames[name]
}
