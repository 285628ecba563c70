package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "docs/intro.md", want: "intro"},
		{path: "docs/Guides", want: "Guides"},
		{path: "docs/Guides/", want: "Guides"},
		{path: "docs/archive.2023", want: "archive"},
		{path: "README.MD", want: "README"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, nameFromPath(tt.path))
		})
	}
}

func TestOutputFilename(t *testing.T) {
	assert.Equal(t, "Guides-Index.html", OutputFilename(NewFolder("docs/Guides")))
	assert.Equal(t, "intro.html", OutputFilename(NewDocument("docs/intro.md")))
}

func TestNewNodesAreUnplaced(t *testing.T) {
	f := NewFolder("docs")
	d := NewDocument("docs/a.md")

	assert.Equal(t, UnassignedDepth, f.Depth())
	assert.Equal(t, UnassignedDepth, d.Depth())
	assert.Nil(t, f.Parent())
	assert.Nil(t, d.Parent())
	assert.Empty(t, f.Children())
}

func TestAttach(t *testing.T) {
	root := NewFolder("docs")
	sub := NewFolder("docs/sub")
	doc := NewDocument("docs/sub/page.md")

	assert.True(t, Attach(sub, doc))
	assert.True(t, Attach(root, sub))

	assert.Same(t, sub, doc.Parent())
	assert.Same(t, root, sub.Parent())
	require.Len(t, root.Children(), 1)
	assert.Same(t, sub, root.Children()[0])
}

func TestAttachDuplicateIsNoop(t *testing.T) {
	root := NewFolder("docs")
	doc := NewDocument("docs/page.md")

	assert.True(t, Attach(root, doc))
	assert.False(t, Attach(root, doc))
	assert.Len(t, root.Children(), 1)
}

func TestAttachComparesByIdentity(t *testing.T) {
	root := NewFolder("docs")
	a := NewDocument("docs/page.md")
	b := NewDocument("docs/page.md")

	Attach(root, a)
	Attach(root, b)

	require.Len(t, root.Children(), 2)
	assert.True(t, root.Contains(a))
	assert.True(t, root.Contains(b))
}

func TestAllPages(t *testing.T) {
	root := NewFolder("docs")
	a := NewFolder("docs/A")
	a1 := NewDocument("docs/A/a1.md")
	b := NewFolder("docs/A/B")
	b1 := NewDocument("docs/A/B/b1.md")
	top := NewDocument("docs/top.md")

	Attach(b, b1)
	Attach(a, a1)
	Attach(a, b)
	Attach(root, a)
	Attach(root, top)

	assert.Equal(t, []Node{a1, b1, b, a, top}, AllPages(root, true))
	assert.Equal(t, []Node{a1, b1, top}, AllPages(root, false))
}

func TestRoot(t *testing.T) {
	root := NewFolder("docs")
	a := NewFolder("docs/A")
	doc := NewDocument("docs/A/x.md")
	Attach(a, doc)
	Attach(root, a)

	assert.Same(t, root, Root(doc))
	assert.Same(t, root, Root(a))
	assert.Same(t, root, Root(root))
}

func TestBodyRendererFunc(t *testing.T) {
	var r BodyRenderer = BodyRendererFunc(func(n Node) (string, error) {
		return "<p>" + n.Name() + "</p>", nil
	})
	got, err := r.RenderBody(NewDocument("docs/x.md"))
	require.NoError(t, err)
	assert.Equal(t, "<p>x</p>", got)
}

func TestFind(t *testing.T) {
	root := NewFolder("docs")
	a := NewFolder("docs/A")
	doc := NewDocument("docs/A/x.md")
	Attach(a, doc)
	Attach(root, a)

	assert.Same(t, doc, Find(root, "docs/A/x.md"))
	assert.Same(t, a, Find(root, "docs/A/"))
	assert.Same(t, doc, Find(root, "docs/A/../A/x.md"))
	assert.Nil(t, Find(root, "docs/missing.md"))
	assert.Nil(t, Find(root, "docs"))
}
