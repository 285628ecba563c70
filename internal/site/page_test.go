package site

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/notegen/internal/core"
	"github.com/sevigo/notegen/mocks"
)

func exampleTree() (root, a *core.Folder, b1 *core.Document) {
	root = core.NewFolder("docs")
	a = core.NewFolder("docs/A")
	b := core.NewFolder("docs/A/B")
	a1 := core.NewDocument("docs/A/a1.md")
	b1 = core.NewDocument("docs/A/B/b1.md")
	core.Attach(a, a1)
	core.Attach(b, b1)
	core.Attach(a, b)
	core.Attach(root, a)
	return root, a, b1
}

func TestGeneratePage(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, _, b1 := exampleTree()
	out := t.TempDir()

	renderer := mocks.NewMockBodyRenderer(ctrl)
	renderer.EXPECT().RenderBody(b1).Return("<p>body</p>", nil)

	require.NoError(t, GeneratePage(b1, out, renderer))

	got, err := os.ReadFile(filepath.Join(out, "b1.html"))
	require.NoError(t, err)

	tree := strings.Join([]string{
		`└─ <a href="A-Index.html">A</a>`,
		`    └─ <a href="a1.html">a1</a>`,
		`    └─ <a href="B-Index.html">B</a>`,
		`        └─ <a href="b1.html">b1</a> <`,
	}, "\n") + "\n"
	want := pageHeader + "<p><pre>" + tree + "</pre><p>" + "<p>body</p>" + pageFooter
	assert.Equal(t, want, string(got))
}

func TestGeneratePageFolderFilename(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, a, _ := exampleTree()
	out := t.TempDir()

	renderer := mocks.NewMockBodyRenderer(ctrl)
	renderer.EXPECT().RenderBody(a).Return(PlaceholderBody, nil)

	require.NoError(t, GeneratePage(a, out, renderer))

	got, err := os.ReadFile(filepath.Join(out, "A-Index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(got), `<a href="A-Index.html">A</a> <`)
	assert.Contains(t, string(got), "</pre><p>WIP")
}

func TestGeneratePageErrors(t *testing.T) {
	_, _, b1 := exampleTree()

	t.Run("Body renderer failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		out := t.TempDir()
		renderer := mocks.NewMockBodyRenderer(ctrl)
		renderer.EXPECT().RenderBody(gomock.Any()).Return("", errors.New("boom"))

		err := GeneratePage(b1, out, renderer)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "boom")
		assert.NoFileExists(t, filepath.Join(out, "b1.html"))
	})

	t.Run("Output directory missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		renderer := mocks.NewMockBodyRenderer(ctrl)
		renderer.EXPECT().RenderBody(gomock.Any()).Return("x", nil)

		err := GeneratePage(b1, filepath.Join(t.TempDir(), "missing"), renderer)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestAssemblePage(t *testing.T) {
	got := assemblePage("TREE\n", "BODY")

	assert.True(t, strings.HasPrefix(got, pageHeader))
	assert.True(t, strings.HasSuffix(got, pageFooter))
	assert.Contains(t, got, "<p><pre>TREE\n</pre><p>BODY")
	assert.Contains(t, got, `href="css/pygments/monokai.css"`)
}
