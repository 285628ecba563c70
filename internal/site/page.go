package site

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sevigo/notegen/internal/core"
	"github.com/sevigo/notegen/internal/navtree"
)

// StylesheetPath is the stylesheet location referenced by every page header,
// relative to the output directory.
const StylesheetPath = "css/pygments/monokai.css"

const pageHeader = `
    <!DOCTYPE html>
    <html>
        <head>
            <meta charset="utf-8">
            <link rel="stylesheet" href="` + StylesheetPath + `">
        </head>
        <body>
    `

const pageFooter = `
        </body>
    </html>
    `

const (
	treeOpen  = "<p><pre>"
	treeClose = "</pre><p>"
)

// GeneratePage writes the page for node into outputDir using the default
// navigation depth.
func GeneratePage(node core.Node, outputDir string, renderer core.BodyRenderer) error {
	return generatePage(node, outputDir, renderer, navtree.DefaultSublevels)
}

func generatePage(node core.Node, outputDir string, renderer core.BodyRenderer, sublevels int) error {
	tree := navtree.RenderReverse(node, node, sublevels, navtree.Options{WithLinks: true})

	body, err := renderer.RenderBody(node)
	if err != nil {
		return fmt.Errorf("failed to render body of %s: %w", node.Path(), err)
	}

	target := filepath.Join(outputDir, node.OutputFilename())
	if err := os.WriteFile(target, []byte(assemblePage(tree, body)), 0o644); err != nil {
		return fmt.Errorf("failed to write page %s: %w", target, err)
	}
	return nil
}

func assemblePage(tree, body string) string {
	var sb strings.Builder
	sb.Grow(len(pageHeader) + len(tree) + len(body) + len(pageFooter) + len(treeOpen) + len(treeClose))
	sb.WriteString(pageHeader)
	sb.WriteString(treeOpen)
	sb.WriteString(tree)
	sb.WriteString(treeClose)
	sb.WriteString(body)
	sb.WriteString(pageFooter)
	return sb.String()
}
