package gitutil

import (
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"
)

var scpLikeRegex = regexp.MustCompile(`^[\w.-]+@([\w.-]+):(.+)$`)

// IsRemote reports whether source names a git remote rather than a local path.
func IsRemote(source string) bool {
	return strings.Contains(source, "://") || scpLikeRegex.MatchString(source)
}

// CacheDirName derives a stable directory name for a remote repository URL,
// e.g. "github.com_owner_notes" for https://github.com/owner/notes.git.
func CacheDirName(repoURL string) (string, error) {
	repoURL = strings.TrimSuffix(strings.TrimSpace(repoURL), "/")

	var host, repoPath string
	if m := scpLikeRegex.FindStringSubmatch(repoURL); m != nil {
		host, repoPath = m[1], m[2]
	} else {
		u, err := url.Parse(repoURL)
		if err != nil {
			return "", fmt.Errorf("invalid repository URL '%s': %w", repoURL, err)
		}
		host, repoPath = u.Host, u.Path
	}

	repoPath = strings.TrimSuffix(path.Clean("/"+repoPath), ".git")
	repoPath = strings.Trim(repoPath, "/")
	if host == "" || repoPath == "" || strings.Contains(repoPath, "..") {
		return "", fmt.Errorf("invalid repository URL format: %s", repoURL)
	}

	return host + "_" + strings.ReplaceAll(repoPath, "/", "_"), nil
}
