package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devrando/devrando/internal/errors"
	"github.com/devrando/devrando/internal/fs"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(fs.NewRealFS(), filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
	assert.Equal(t, "git", cfg.GitBin)
	assert.Equal(t, "npm", cfg.NpmBin)
	assert.Equal(t, "devrando-challenge", cfg.DefaultName)
	assert.False(t, cfg.NonInteractive)
}

func TestLoad_RCFileOverridesDefaults(t *testing.T) {
	rc := filepath.Join(t.TempDir(), "devrando.yaml")
	require.NoError(t, os.WriteFile(rc, []byte("api_url: https://staging.devrando.dev\nnpm_bin: pnpm\n"), 0644))

	cfg, err := Load(fs.NewRealFS(), rc)
	require.NoError(t, err)

	assert.Equal(t, "https://staging.devrando.dev", cfg.APIBaseURL)
	assert.Equal(t, "pnpm", cfg.NpmBin)
	assert.Equal(t, "git", cfg.GitBin)
}

func TestLoad_EnvOverridesRCFile(t *testing.T) {
	rc := filepath.Join(t.TempDir(), "devrando.yaml")
	require.NoError(t, os.WriteFile(rc, []byte("api_url: https://staging.devrando.dev\n"), 0644))

	t.Setenv("DEVRANDO_API_URL", "https://localhost:8080")
	t.Setenv("DEVRANDO_NON_INTERACTIVE", "true")

	cfg, err := Load(fs.NewRealFS(), rc)
	require.NoError(t, err)

	assert.Equal(t, "https://localhost:8080", cfg.APIBaseURL)
	assert.True(t, cfg.NonInteractive)
}

func TestLoad_InvalidYAML(t *testing.T) {
	rc := filepath.Join(t.TempDir(), "devrando.yaml")
	require.NoError(t, os.WriteFile(rc, []byte("api_url: [unclosed"), 0644))

	_, err := Load(fs.NewRealFS(), rc)
	require.Error(t, err)
	assert.Equal(t, errors.EConfig, errors.GetCode(err))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"empty api url", func(c *Config) { c.APIBaseURL = "" }, false},
		{"relative api url", func(c *Config) { c.APIBaseURL = "/api" }, false},
		{"empty git bin", func(c *Config) { c.GitBin = " " }, false},
		{"empty npm bin", func(c *Config) { c.NpmBin = "" }, false},
		{"empty default name", func(c *Config) { c.DefaultName = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, errors.EConfig, errors.GetCode(err))
			}
		})
	}
}
