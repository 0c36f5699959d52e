package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pydocgen.yaml")
	content := `
project:
  root: ./src/geo
  exclude_private: true
output:
  dir: site/docs
  format: tsx
github:
  repo: https://github.com/acme/geo
  branch: develop
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "./src/geo", cfg.Project.Root)
	assert.True(t, cfg.Project.ExcludePrivate)
	assert.Equal(t, "site/docs", cfg.Output.Dir)
	assert.Equal(t, "tsx", cfg.Output.Format)
	assert.Equal(t, "https://github.com/acme/geo", cfg.GitHub.Repo)
	assert.Equal(t, "develop", cfg.GitHub.Branch)
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.Project.Root)
	assert.Equal(t, "docs", cfg.Output.Dir)
	assert.Equal(t, "markdown", cfg.Output.Format)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PYDOCGEN_FORMAT", "json")
	t.Setenv("PYDOCGEN_GITHUB_REPO", "https://github.com/acme/override")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "https://github.com/acme/override", cfg.GitHub.Repo)
}
