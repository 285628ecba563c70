// Package site assembles the published pages from a discovered document tree.
package site

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/sevigo/notegen/internal/core"
	"github.com/sevigo/notegen/internal/discovery"
)

// MediaDirName is the directory the media tree is copied to inside the output.
const MediaDirName = "media"

// StylesheetWriter writes the CSS referenced by page headers.
type StylesheetWriter interface {
	WriteStylesheet(w io.Writer) error
}

// Options controls a generation run.
type Options struct {
	// TreeDepth is the sublevel budget of the navigation block.
	TreeDepth int
	// MediaDir is copied to <output>/media when set.
	MediaDir string
	// RequireMedia makes a missing MediaDir fatal instead of skipping the copy.
	RequireMedia bool
	// StrictFilenames turns output filename collisions into a fatal error.
	StrictFilenames bool
	// WriteStylesheet writes the highlighting stylesheet next to the pages.
	WriteStylesheet bool
}

// Collision lists the source paths that publish to the same output file.
type Collision struct {
	Filename string
	Paths    []string
}

// Result summarises a generation run.
type Result struct {
	Root       *core.Folder
	Pages      []string
	Collisions []Collision
	MediaDir   string
	Stylesheet string
}

// Generator runs a full build: discover, render every page, copy media.
type Generator struct {
	discoverer *discovery.Discoverer
	renderer   core.BodyRenderer
	stylesheet StylesheetWriter
	opts       Options
	logger     *slog.Logger
}

// NewGenerator wires a Generator. stylesheet may be nil when
// opts.WriteStylesheet is false.
func NewGenerator(d *discovery.Discoverer, renderer core.BodyRenderer, stylesheet StylesheetWriter, opts Options, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		discoverer: d,
		renderer:   renderer,
		stylesheet: stylesheet,
		opts:       opts,
		logger:     logger,
	}
}

// Generate builds the site for sourceDir into outputDir. The whole tree is
// discovered before any page is written and pages are written one at a time in
// depth-first order. The first error aborts the run; pages already written are
// left in place.
func (g *Generator) Generate(ctx context.Context, sourceDir, outputDir string) (*Result, error) {
	root, err := g.discoverer.Discover(sourceDir)
	if err != nil {
		return nil, err
	}
	pages := core.AllPages(root, true)
	g.logger.InfoContext(ctx, "discovered documents", "source", sourceDir, "pages", len(pages))

	collisions := findCollisions(pages)
	for _, c := range collisions {
		g.logger.WarnContext(ctx, "output filename collision", "file", c.Filename, "sources", c.Paths)
	}
	if len(collisions) > 0 && g.opts.StrictFilenames {
		return nil, fmt.Errorf("%w: %d output files are shared by several sources", ErrFilenameCollision, len(collisions))
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	res := &Result{Root: root, Collisions: collisions}
	for _, p := range pages {
		if err := generatePage(p, outputDir, g.renderer, g.opts.TreeDepth); err != nil {
			return nil, err
		}
		g.logger.DebugContext(ctx, "wrote page", "node", p.Path(), "file", p.OutputFilename())
		res.Pages = append(res.Pages, p.OutputFilename())
	}

	if g.opts.WriteStylesheet && g.stylesheet != nil {
		path, err := g.writeStylesheet(outputDir)
		if err != nil {
			return nil, err
		}
		res.Stylesheet = path
	}

	if g.opts.MediaDir != "" {
		dst, err := g.copyMedia(ctx, outputDir)
		if err != nil {
			return nil, err
		}
		res.MediaDir = dst
	}

	g.logger.InfoContext(ctx, "site generated", "output", outputDir, "pages", len(res.Pages))
	return res, nil
}

func (g *Generator) writeStylesheet(outputDir string) (string, error) {
	path := filepath.Join(outputDir, filepath.FromSlash(StylesheetPath))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create stylesheet directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create stylesheet: %w", err)
	}
	defer f.Close()
	if err := g.stylesheet.WriteStylesheet(f); err != nil {
		return "", err
	}
	return path, f.Close()
}

func (g *Generator) copyMedia(ctx context.Context, outputDir string) (string, error) {
	if _, err := os.Stat(g.opts.MediaDir); errors.Is(err, fs.ErrNotExist) && !g.opts.RequireMedia {
		g.logger.WarnContext(ctx, "media directory not found, skipping copy", "path", g.opts.MediaDir)
		return "", nil
	}
	dst := filepath.Join(outputDir, MediaDirName)
	if err := CopyDir(g.opts.MediaDir, dst); err != nil {
		return "", fmt.Errorf("failed to copy media: %w", err)
	}
	g.logger.InfoContext(ctx, "copied media", "from", g.opts.MediaDir, "to", dst)
	return dst, nil
}

// findCollisions groups nodes by output filename. Filenames drop directory
// context, so two notes with the same name in different folders overwrite
// each other.
func findCollisions(pages []core.Node) []Collision {
	byName := make(map[string][]string)
	for _, p := range pages {
		byName[p.OutputFilename()] = append(byName[p.OutputFilename()], p.Path())
	}

	var out []Collision
	for name, paths := range byName {
		if len(paths) > 1 {
			out = append(out, Collision{Filename: name, Paths: paths})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Filename < out[j].Filename })
	return out
}
