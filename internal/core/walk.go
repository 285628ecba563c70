package core

import "path/filepath"

// AllPages lists every node below root in the order pages are generated:
// depth-first, a folder's descendants before the folder itself. The root is
// not included. Folders are listed only when includeFolders is set.
func AllPages(root *Folder, includeFolders bool) []Node {
	var pages []Node
	for _, child := range root.Children() {
		switch c := child.(type) {
		case *Folder:
			pages = append(pages, AllPages(c, includeFolders)...)
			if includeFolders {
				pages = append(pages, c)
			}
		case *Document:
			pages = append(pages, c)
		}
	}
	return pages
}

// Root follows parent links from n to the top of its tree.
func Root(n Node) Node {
	for p := n.Parent(); p != nil; p = p.Parent() {
		n = p
	}
	return n
}

// Find returns the node below root whose path equals path after cleaning, or
// nil when there is none.
func Find(root *Folder, path string) Node {
	want := filepath.Clean(path)
	for _, n := range AllPages(root, true) {
		if filepath.Clean(n.Path()) == want {
			return n
		}
	}
	return nil
}
