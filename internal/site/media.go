package site

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// CopyDir copies the tree at src to dst verbatim. dst must not exist; the copy
// is never merged into an existing directory. Symlinks are followed, and a
// linked directory that contains its own link fails with ErrSymlinkCycle.
func CopyDir(src, dst string) error {
	if _, err := os.Lstat(dst); err == nil {
		return fmt.Errorf("%w: %s", ErrDestinationExists, dst)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to stat %s: %w", dst, err)
	}

	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("failed to read media directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("media source %s is not a directory", src)
	}
	realPath, err := filepath.EvalSymlinks(src)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", src, err)
	}
	return copyTree(realPath, dst, nil)
}

// copyTree copies the directory src, which contains no symlinks in its own
// path. chain holds the directories of the links that led here.
func copyTree(src, dst string, chain []string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if d.Type()&fs.ModeSymlink != 0 {
			return copyLink(path, target, chain)
		}

		fi, err := d.Info()
		if err != nil {
			return err
		}
		if d.IsDir() {
			if err := os.Mkdir(target, fi.Mode().Perm()|0o700); err != nil {
				return fmt.Errorf("failed to create %s: %w", target, err)
			}
			return nil
		}
		return copyFile(path, target, fi.Mode().Perm())
	})
}

func copyLink(link, target string, chain []string) error {
	resolved, err := os.Stat(link)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", link, err)
	}
	if !resolved.IsDir() {
		return copyFile(link, target, resolved.Mode().Perm())
	}

	realPath, err := filepath.EvalSymlinks(link)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", link, err)
	}
	// Copying an ancestor of any directory on the way here would reach this
	// link again.
	chain = append(slices.Clip(chain), filepath.Dir(link))
	for _, dir := range chain {
		if isWithin(dir, realPath) {
			return fmt.Errorf("%w: %s points to %s", ErrSymlinkCycle, link, realPath)
		}
	}
	return copyTree(realPath, target, chain)
}

// isWithin reports whether path is dir itself or lies below it.
func isWithin(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func copyFile(src, dst string, perm fs.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy %s: %w", src, err)
	}
	return out.Close()
}
