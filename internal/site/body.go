package site

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sevigo/notegen/internal/core"
)

const (
	// IndexDocument supplies a folder's landing body when present.
	IndexDocument = "index.md"
	// PlaceholderBody is used for folders without an index document.
	PlaceholderBody = "WIP"
)

// Converter turns markup into HTML.
type Converter interface {
	Convert(src []byte) (string, error)
}

// FileBodyRenderer reads page bodies from the source tree. A document renders
// its own file; a folder renders its index document or the placeholder.
type FileBodyRenderer struct {
	conv Converter
}

func NewFileBodyRenderer(conv Converter) *FileBodyRenderer {
	return &FileBodyRenderer{conv: conv}
}

func (r *FileBodyRenderer) RenderBody(n core.Node) (string, error) {
	switch node := n.(type) {
	case *core.Document:
		return r.renderFile(node.Path())
	case *core.Folder:
		indexPath := filepath.Join(node.Path(), IndexDocument)
		if _, err := os.Stat(indexPath); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return PlaceholderBody, nil
			}
			return "", fmt.Errorf("failed to stat %s: %w", indexPath, err)
		}
		return r.renderFile(indexPath)
	default:
		return "", fmt.Errorf("unsupported node type %T", n)
	}
}

func (r *FileBodyRenderer) renderFile(path string) (string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return r.conv.Convert(src)
}
