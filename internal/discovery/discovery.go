// Package discovery builds the document tree by mirroring a directory on disk.
package discovery

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gobwas/glob"

	"github.com/sevigo/notegen/internal/core"
)

// DocumentExt is the recognised document extension, compared case-insensitively.
const DocumentExt = ".md"

var (
	ErrNotDirectory   = errors.New("source root is not a directory")
	ErrDuplicateChild = errors.New("node attached to the same folder twice")
	ErrSymlinkCycle   = errors.New("symlink cycle")
)

// Options tunes how the source tree is read.
type Options struct {
	// Exclude holds glob patterns matched against slash-separated paths
	// relative to the source root. A matching directory is not descended into.
	Exclude []string
	// SkipHidden ignores entries whose name starts with a dot.
	SkipHidden bool
	// SortEntries orders entries by name instead of the native listing order.
	SortEntries bool
}

// Discoverer walks a source directory and builds the node tree.
type Discoverer struct {
	opts    Options
	exclude []glob.Glob
	logger  *slog.Logger
}

// New compiles the exclude patterns in opts and returns a Discoverer.
func New(opts Options, logger *slog.Logger) (*Discoverer, error) {
	if logger == nil {
		logger = slog.Default()
	}
	compiled := make([]glob.Glob, 0, len(opts.Exclude))
	for _, p := range opts.Exclude {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", p, err)
		}
		compiled = append(compiled, g)
	}
	return &Discoverer{opts: opts, exclude: compiled, logger: logger}, nil
}

// Discover builds the tree for rootPath with default options.
func Discover(rootPath string) (*core.Folder, error) {
	d, err := New(Options{}, nil)
	if err != nil {
		return nil, err
	}
	return d.Discover(rootPath)
}

// Discover builds the tree for rootPath. The returned folder is the root and
// keeps an unassigned depth; its direct children have depth 0.
func (d *Discoverer) Discover(rootPath string) (*core.Folder, error) {
	info, err := os.Stat(rootPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read source root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, rootPath)
	}

	root, err := d.discoverDir(rootPath, rootPath, 0, make(map[string]bool))
	if err != nil {
		return nil, err
	}
	d.logger.Debug("discovered source tree", "root", rootPath, "children", len(root.Children()))
	return root, nil
}

// discoverDir builds the folder for dir. active holds the resolved paths of
// the directories currently being read, so a link back to one of them is
// reported instead of followed.
func (d *Discoverer) discoverDir(rootPath, dir string, level int, active map[string]bool) (*core.Folder, error) {
	realDir, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve directory %s: %w", dir, err)
	}
	if active[realDir] {
		return nil, fmt.Errorf("%w at %s: %s is one of its own parents", ErrSymlinkCycle, dir, realDir)
	}
	active[realDir] = true
	defer delete(active, realDir)

	folder := core.NewFolder(dir)

	entries, err := d.readDir(dir)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		name := entry.Name()
		fullPath := filepath.Join(dir, name)

		if d.opts.SkipHidden && strings.HasPrefix(name, ".") {
			continue
		}
		if d.excluded(rootPath, fullPath) {
			d.logger.Debug("excluded by pattern", "path", fullPath)
			continue
		}

		isDir, err := entryIsDir(fullPath, entry)
		if err != nil {
			return nil, err
		}

		var child core.Node
		switch {
		case isDir:
			sub, err := d.discoverDir(rootPath, fullPath, level+1, active)
			if err != nil {
				return nil, err
			}
			sub.SetDepth(level)
			child = sub
		case strings.EqualFold(filepath.Ext(name), DocumentExt):
			doc := core.NewDocument(fullPath)
			doc.SetDepth(level)
			child = doc
		default:
			continue
		}

		if !core.Attach(folder, child) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateChild, fullPath)
		}
	}
	return folder, nil
}

// readDir lists dir in the order the filesystem yields entries.
func (d *Discoverer) readDir(dir string) ([]fs.DirEntry, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open directory %s: %w", dir, err)
	}
	defer f.Close()

	entries, err := f.ReadDir(-1)
	if err != nil {
		return nil, fmt.Errorf("failed to list directory %s: %w", dir, err)
	}
	if d.opts.SortEntries {
		slices.SortFunc(entries, func(a, b fs.DirEntry) int {
			return strings.Compare(a.Name(), b.Name())
		})
	}
	return entries, nil
}

func (d *Discoverer) excluded(rootPath, path string) bool {
	if len(d.exclude) == 0 {
		return false
	}
	rel, err := filepath.Rel(rootPath, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)
	for _, g := range d.exclude {
		if g.Match(rel) {
			return true
		}
	}
	return false
}

// entryIsDir follows symlinks so a linked directory is discovered like a real one.
func entryIsDir(path string, entry fs.DirEntry) (bool, error) {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir(), nil
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return info.IsDir(), nil
}
