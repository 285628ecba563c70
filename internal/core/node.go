// Package core defines the document tree shared by discovery, navigation
// rendering and page assembly.
package core

import (
	"path/filepath"
	"strings"
)

const (
	// UnassignedDepth is the depth of a node that discovery has not placed yet.
	UnassignedDepth = -1

	folderSuffix   = "-Index.html"
	documentSuffix = ".html"
)

// Node is a member of the document tree. The only implementations are *Folder
// and *Document.
type Node interface {
	// Path is the source location the node was discovered at.
	Path() string
	// Name is the final path segment with its extension stripped.
	Name() string
	// Parent is a non-owning back reference; nil for the root.
	Parent() *Folder
	// Depth is the traversal level assigned during discovery, or UnassignedDepth.
	Depth() int
	SetDepth(depth int)
	// OutputFilename is the flat HTML filename the node is published under.
	OutputFilename() string

	setParent(parent *Folder)
}

type nodeBase struct {
	path   string
	name   string
	parent *Folder
	depth  int
}

func newNodeBase(path string) nodeBase {
	return nodeBase{
		path:  path,
		name:  nameFromPath(path),
		depth: UnassignedDepth,
	}
}

func (n *nodeBase) Path() string        { return n.path }
func (n *nodeBase) Name() string        { return n.name }
func (n *nodeBase) Parent() *Folder     { return n.parent }
func (n *nodeBase) Depth() int          { return n.depth }
func (n *nodeBase) SetDepth(depth int)  { n.depth = depth }
func (n *nodeBase) setParent(p *Folder) { n.parent = p }

// Folder is a directory in the source tree. It exclusively owns its children.
type Folder struct {
	nodeBase
	children []Node
}

// NewFolder returns a detached folder for the directory at path.
func NewFolder(path string) *Folder {
	return &Folder{nodeBase: newNodeBase(path)}
}

// Children returns the folder's children in discovery order.
func (f *Folder) Children() []Node {
	return f.children
}

// Contains reports whether child is a direct child of f, compared by identity.
func (f *Folder) Contains(child Node) bool {
	for _, c := range f.children {
		if c == child {
			return true
		}
	}
	return false
}

func (f *Folder) OutputFilename() string {
	return f.name + folderSuffix
}

// Document is a markdown file. It is always a leaf.
type Document struct {
	nodeBase
}

// NewDocument returns a detached document for the file at path.
func NewDocument(path string) *Document {
	return &Document{nodeBase: newNodeBase(path)}
}

func (d *Document) OutputFilename() string {
	return d.name + documentSuffix
}

// Attach makes parent the owner of child. The child's back reference is always
// updated; the child is appended only if parent does not already hold it.
// It reports whether an append happened.
func Attach(parent *Folder, child Node) bool {
	child.setParent(parent)
	if parent.Contains(child) {
		return false
	}
	parent.children = append(parent.children, child)
	return true
}

// OutputFilename returns the published filename of n.
func OutputFilename(n Node) string {
	return n.OutputFilename()
}

func nameFromPath(path string) string {
	base := filepath.Base(filepath.Clean(path))
	return strings.TrimSuffix(base, filepath.Ext(base))
}
