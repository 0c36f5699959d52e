// Package linker builds "view source" URLs pointing at a repository host.
package linker

import (
	"fmt"
	"os/exec"
	"strings"

	"pydocgen/internal/walker"
)

// Config holds the repository coordinates used for source links. An empty
// Repo disables linking.
type Config struct {
	Repo   string
	Branch string
}

// SourceURL returns the blob URL for a symbol's definition, or "" when
// linking is disabled. Module paths map onto repository paths the same way
// the walker derived them: dots become slashes.
func (c Config) SourceURL(sym *walker.Symbol) string {
	if c.Repo == "" || sym == nil {
		return ""
	}
	branch := c.Branch
	if branch == "" {
		branch = "main"
	}
	modPath := strings.ReplaceAll(sym.Module, ".", "/")
	url := fmt.Sprintf("%s/blob/%s/%s.py", strings.TrimSuffix(c.Repo, "/"), branch, modPath)
	if sym.Kind != walker.KindModule && sym.StartLine > 0 {
		url = fmt.Sprintf("%s#L%d", url, sym.StartLine)
	}
	return url
}

// DetectBranch asks git for the checked-out branch of dir. Used as a
// best-effort default when no branch is configured.
func DetectBranch(dir string) (string, error) {
	cmd := exec.Command("git", "rev-parse", "--abbrev-ref", "HEAD")
	cmd.Dir = dir
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git rev-parse failed: %w", err)
	}
	branch := strings.TrimSpace(string(output))
	if branch == "" || branch == "HEAD" {
		return "", fmt.Errorf("no branch checked out in %s", dir)
	}
	return branch, nil
}
