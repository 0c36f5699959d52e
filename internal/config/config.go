package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Project struct {
		Root           string `yaml:"root"`
		ExcludePrivate bool   `yaml:"exclude_private"`
	} `yaml:"project"`
	Output struct {
		Dir    string `yaml:"dir"`
		Format string `yaml:"format"`
	} `yaml:"output"`
	GitHub struct {
		Repo   string `yaml:"repo"`
		Branch string `yaml:"branch"`
	} `yaml:"github"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	var cfg Config
	cfg.Project.Root = "."
	cfg.Output.Dir = "docs"
	cfg.Output.Format = "markdown"
	return &cfg
}

// LoadConfig reads the YAML config at path. A missing file is not an error;
// defaults and environment overrides still apply.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	cfg := Default()

	// 2. Load YAML config
	file, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	if err == nil {
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, err
		}
	}

	// 3. Override with Environment Variables if present
	if format := os.Getenv("PYDOCGEN_FORMAT"); format != "" {
		cfg.Output.Format = format
	}
	if repo := os.Getenv("PYDOCGEN_GITHUB_REPO"); repo != "" {
		cfg.GitHub.Repo = repo
	}
	if branch := os.Getenv("PYDOCGEN_GITHUB_BRANCH"); branch != "" {
		cfg.GitHub.Branch = branch
	}

	return cfg, nil
}
