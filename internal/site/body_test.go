package site

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/notegen/internal/core"
)

type echoConverter struct{}

func (echoConverter) Convert(src []byte) (string, error) {
	return "<converted>" + string(src) + "</converted>", nil
}

func TestFileBodyRenderer(t *testing.T) {
	dir := t.TempDir()
	withIndex := filepath.Join(dir, "with-index")
	withoutIndex := filepath.Join(dir, "without-index")
	require.NoError(t, os.MkdirAll(withIndex, 0o755))
	require.NoError(t, os.MkdirAll(withoutIndex, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(withIndex, "index.md"), []byte("landing"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "note.md"), []byte("hello"), 0o644))

	r := NewFileBodyRenderer(echoConverter{})

	tests := []struct {
		name string
		node core.Node
		want string
	}{
		{
			name: "Document renders its own file",
			node: core.NewDocument(filepath.Join(dir, "note.md")),
			want: "<converted>hello</converted>",
		},
		{
			name: "Folder renders its index document",
			node: core.NewFolder(withIndex),
			want: "<converted>landing</converted>",
		},
		{
			name: "Folder without index gets the placeholder",
			node: core.NewFolder(withoutIndex),
			want: "WIP",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.RenderBody(tt.node)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFileBodyRendererMissingDocument(t *testing.T) {
	r := NewFileBodyRenderer(echoConverter{})

	_, err := r.RenderBody(core.NewDocument(filepath.Join(t.TempDir(), "gone.md")))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
