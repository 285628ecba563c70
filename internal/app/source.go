package app

import "path/filepath"

// joinSource places the configured source dir inside a repository checkout.
func joinSource(checkout, sourceDir string) string {
	if sourceDir == "" {
		return checkout
	}
	return filepath.Join(checkout, sourceDir)
}
