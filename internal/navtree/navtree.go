// Package navtree renders the breadcrumb navigation block shown on every page.
//
// The tree always starts at the top ancestor. Folders are expanded while the
// sublevel budget lasts, and the chain of folders leading to the page being
// viewed is expanded regardless of budget.
package navtree

import (
	"html"
	"slices"
	"strings"

	"github.com/sevigo/notegen/internal/core"
)

const (
	// DefaultSublevels is the expansion budget used for generated pages.
	DefaultSublevels = 2

	// CurrentMarker ends the line of the page being viewed.
	CurrentMarker = " <"

	indentUnit  = "    "
	branchGlyph = "└─ "
)

// Ancestors returns the folders from the tree root down to n's parent.
// n itself is not included; the root yields an empty slice.
func Ancestors(n core.Node) []*core.Folder {
	var chain []*core.Folder
	for p := n.Parent(); p != nil; p = p.Parent() {
		chain = append(chain, p)
	}
	slices.Reverse(chain)
	return chain
}

// Options controls how entries are written.
type Options struct {
	// WithLinks wraps each name in a hyperlink to the node's output file.
	WithLinks bool
}

// Render lists the children of node at the given depth and descends into child
// folders that are within budget, are the next element of breadcrumb, or are
// current. Every descent consumes one level of budget and one breadcrumb
// element whichever condition admitted it. Documents render nothing.
func Render(node core.Node, current core.Node, sublevels int, breadcrumb []*core.Folder, depth int, opts Options) string {
	var sb strings.Builder
	render(&sb, node, current, sublevels, breadcrumb, depth, opts)
	return sb.String()
}

func render(sb *strings.Builder, node, current core.Node, sublevels int, breadcrumb []*core.Folder, depth int, opts Options) {
	folder, ok := node.(*core.Folder)
	if !ok {
		return
	}

	rest := breadcrumb
	if len(rest) > 0 {
		rest = rest[1:]
	}

	for _, child := range folder.Children() {
		writeEntry(sb, child, current, depth, opts)

		sub, ok := child.(*core.Folder)
		if !ok {
			continue
		}
		if sublevels > 0 || onPath(rest, sub) || core.Node(sub) == current {
			render(sb, sub, current, sublevels-1, rest, depth+1, opts)
		}
	}
}

// onPath reports whether f is the next folder on the remaining breadcrumb.
func onPath(breadcrumb []*core.Folder, f *core.Folder) bool {
	return len(breadcrumb) > 0 && breadcrumb[0] == f
}

func writeEntry(sb *strings.Builder, n, current core.Node, depth int, opts Options) {
	sb.WriteString(strings.Repeat(indentUnit, depth))
	sb.WriteString(branchGlyph)
	if opts.WithLinks {
		sb.WriteString(`<a href="`)
		sb.WriteString(html.EscapeString(n.OutputFilename()))
		sb.WriteString(`">`)
		sb.WriteString(html.EscapeString(n.Name()))
		sb.WriteString("</a>")
	} else {
		sb.WriteString(n.Name())
	}
	if n == current {
		sb.WriteString(CurrentMarker)
	}
	sb.WriteByte('\n')
}

// RenderReverse renders the tree containing node from its top ancestor, with
// the path from the root to node forced open. current is marked in the output.
func RenderReverse(node, current core.Node, sublevels int, opts Options) string {
	breadcrumb := Ancestors(node)
	var root core.Node = node
	if len(breadcrumb) > 0 {
		root = breadcrumb[0]
	}
	return Render(root, current, sublevels, breadcrumb, 0, opts)
}
