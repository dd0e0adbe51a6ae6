// Package config resolves devrando's runtime configuration.
//
// Precedence, lowest to highest: built-in defaults, the optional
// ~/.devrando.yaml rc file, then DEVRANDO_* environment variables.
package config

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/devrando/devrando/internal/errors"
	"github.com/devrando/devrando/internal/fs"
)

// DefaultAPIBaseURL is the challenge service endpoint base.
const DefaultAPIBaseURL = "https://devrando.dev"

// Config holds the resolved runtime configuration.
type Config struct {
	// APIBaseURL is the base URL of the challenge API.
	APIBaseURL string `env:"DEVRANDO_API_URL" yaml:"api_url"`

	// GitBin is the version-control binary invoked for repository setup.
	GitBin string `env:"DEVRANDO_GIT_BIN" yaml:"git_bin"`

	// NpmBin is the package-manager binary invoked for installs.
	NpmBin string `env:"DEVRANDO_NPM_BIN" yaml:"npm_bin"`

	// DefaultName is the project name offered by the prompt.
	DefaultName string `env:"DEVRANDO_DEFAULT_NAME" yaml:"default_name"`

	// NonInteractive skips all prompts and takes the defaults,
	// as if --yes was passed.
	NonInteractive bool `env:"DEVRANDO_NON_INTERACTIVE" yaml:"non_interactive"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		APIBaseURL:  DefaultAPIBaseURL,
		GitBin:      "git",
		NpmBin:      "npm",
		DefaultName: "devrando-challenge",
	}
}

// DefaultRCPath returns the default rc file path: ~/.devrando.yaml.
// Falls back to the relative file name if the home dir is unknown.
func DefaultRCPath() string {
	home, err := os.UserHomeDir()
	if err != nil || strings.TrimSpace(home) == "" {
		return ".devrando.yaml"
	}
	return filepath.Join(home, ".devrando.yaml")
}

// Load resolves the configuration from defaults, the rc file at rcPath
// (missing file is fine), and the environment.
func Load(fsys fs.FS, rcPath string) (Config, error) {
	cfg := Default()

	data, err := fsys.ReadFile(rcPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, errors.Wrap(errors.EConfig, "invalid rc file "+rcPath, err)
		}
	case !os.IsNotExist(err):
		return Config{}, errors.Wrap(errors.EConfig, "failed to read rc file "+rcPath, err)
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(errors.EConfig, "failed to parse environment", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations that cannot drive a run.
func (c Config) Validate() error {
	if strings.TrimSpace(c.APIBaseURL) == "" {
		return errors.New(errors.EConfig, "api base url is empty")
	}
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New(errors.EConfig, "api base url is not an absolute URL: "+c.APIBaseURL)
	}
	if strings.TrimSpace(c.GitBin) == "" {
		return errors.New(errors.EConfig, "git binary is empty")
	}
	if strings.TrimSpace(c.NpmBin) == "" {
		return errors.New(errors.EConfig, "npm binary is empty")
	}
	if strings.TrimSpace(c.DefaultName) == "" {
		return errors.New(errors.EConfig, "default project name is empty")
	}
	return nil
}
