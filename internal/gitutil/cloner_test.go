package gitutil

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// commitFile writes name into the worktree of r and commits it.
func commitFile(t *testing.T, r *git.Repository, dir, name, content string) plumbing.Hash {
	t.Helper()
	w, err := r.Worktree()
	require.NoError(t, err)

	full := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	_, err = w.Add(name)
	require.NoError(t, err)

	hash, err := w.Commit("add "+name, &git.CommitOptions{
		Author: &object.Signature{Name: "Test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)
	return hash
}

func newRemote(t *testing.T) (string, *git.Repository) {
	t.Helper()
	remotePath := filepath.Join(t.TempDir(), "remote")
	r, err := git.PlainInit(remotePath, false)
	require.NoError(t, err)
	return remotePath, r
}

func TestSyncClonesThenPulls(t *testing.T) {
	ctx := context.Background()
	remotePath, remote := newRemote(t)
	first := commitFile(t, remote, remotePath, "docs/intro.md", "# Intro\n")

	c := NewClient(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))
	target := filepath.Join(t.TempDir(), "cache", "notes")

	path, err := c.syncTo(ctx, remotePath, target)
	require.NoError(t, err)
	assert.Equal(t, target, path)
	assert.FileExists(t, filepath.Join(target, "docs", "intro.md"))

	sha, err := c.GetHeadSHA(target)
	require.NoError(t, err)
	assert.Equal(t, first.String(), sha)

	second := commitFile(t, remote, remotePath, "docs/more.md", "# More\n")

	_, err = c.syncTo(ctx, remotePath, target)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(target, "docs", "more.md"))

	sha, err = c.GetHeadSHA(target)
	require.NoError(t, err)
	assert.Equal(t, second.String(), sha)

	// Nothing new upstream is not an error.
	_, err = c.syncTo(ctx, remotePath, target)
	assert.NoError(t, err)
}

func TestOpenMissingRepository(t *testing.T) {
	c := NewClient(nil)

	_, err := c.Open(t.TempDir())
	assert.Error(t, err)

	_, err = c.GetHeadSHA(t.TempDir())
	assert.Error(t, err)
}

func TestSyncRejectsBadURL(t *testing.T) {
	c := NewClient(nil)

	_, err := c.Sync(context.Background(), "https://github.com", t.TempDir())
	assert.Error(t, err)
}
