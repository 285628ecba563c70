// Package gitutil fetches note collections that live in Git repositories.
package gitutil

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

// Client handles interacting with Git repositories.
type Client struct {
	Logger *slog.Logger
}

// NewClient returns a new Client instance.
func NewClient(logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{Logger: logger}
}

// Open opens a Git repository at a given path.
func (c *Client) Open(path string) (*git.Repository, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open repository at %s: %w", path, err)
	}
	return repo, nil
}

// Clone clones repoURL into path.
func (c *Client) Clone(ctx context.Context, repoURL, path string) (*git.Repository, error) {
	c.Logger.InfoContext(ctx, "cloning repository", "url", repoURL, "path", path)
	repo, err := git.PlainCloneContext(ctx, path, false, &git.CloneOptions{URL: repoURL})
	if err != nil {
		return nil, fmt.Errorf("git clone failed: %w", err)
	}
	return repo, nil
}

// Pull fast-forwards the worktree at path from its origin.
func (c *Client) Pull(ctx context.Context, path string) error {
	repo, err := c.Open(path)
	if err != nil {
		return err
	}
	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to get worktree: %w", err)
	}

	c.Logger.InfoContext(ctx, "pulling latest changes from origin", "path", path)
	err = wt.PullContext(ctx, &git.PullOptions{RemoteName: "origin"})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return fmt.Errorf("git pull failed: %w", err)
	}
	return nil
}

// Sync makes a local checkout of repoURL under cacheRoot current and returns
// its path. An existing checkout is pulled; otherwise the repository is cloned.
func (c *Client) Sync(ctx context.Context, repoURL, cacheRoot string) (string, error) {
	name, err := CacheDirName(repoURL)
	if err != nil {
		return "", err
	}
	return c.syncTo(ctx, repoURL, filepath.Join(cacheRoot, name))
}

func (c *Client) syncTo(ctx context.Context, repoURL, target string) (string, error) {
	if _, err := os.Stat(target); err == nil {
		if err := c.Pull(ctx, target); err != nil {
			return "", err
		}
		return target, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("failed to stat checkout: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
		return "", fmt.Errorf("failed to create parent dir: %w", err)
	}
	if _, err := c.Clone(ctx, repoURL, target); err != nil {
		return "", err
	}
	return target, nil
}

// GetHeadSHA returns the current HEAD SHA of the repository at the given path.
func (c *Client) GetHeadSHA(path string) (string, error) {
	repo, err := c.Open(path)
	if err != nil {
		return "", err
	}
	ref, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	return ref.Hash().String(), nil
}
