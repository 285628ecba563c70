package navtree

import (
	"github.com/xlab/treeprint"

	"github.com/sevigo/notegen/internal/core"
)

// Outline prints the complete, unpruned tree below root. Folders are suffixed
// with a slash.
func Outline(root *core.Folder) string {
	tree := treeprint.NewWithRoot(root.Name() + "/")
	addChildren(tree, root)
	return tree.String()
}

func addChildren(tree treeprint.Tree, f *core.Folder) {
	for _, child := range f.Children() {
		switch c := child.(type) {
		case *core.Folder:
			addChildren(tree.AddBranch(c.Name()+"/"), c)
		case *core.Document:
			tree.AddNode(c.Name())
		}
	}
}
