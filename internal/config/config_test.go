package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `{
		"listen_addr": ":8080",
		"database_url": "postgres://localhost/resumes",
		"service_url": "http://localhost:8080",
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "postgres://localhost/resumes", cfg.DatabaseURL)
	assert.Equal(t, "http://localhost:8080", cfg.ServiceURL)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfigEmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfigBadJSON(t *testing.T) {
	path := writeConfigFile(t, `{"listen_addr": `)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidateChromePath(t *testing.T) {
	cfg := &Config{ChromePath: filepath.Join(t.TempDir(), "missing-chrome")}
	assert.Error(t, cfg.Validate())

	cfg.ChromePath = ""
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{ListenAddr: ":9000"}
	defaults := Config{
		ListenAddr:  ":8080",
		DatabaseURL: "postgres://localhost/resumes",
		ServiceURL:  "http://localhost:8080",
	}

	merged := cfg.MergeWithDefaults(defaults)
	assert.Equal(t, ":9000", merged.ListenAddr)
	assert.Equal(t, "postgres://localhost/resumes", merged.DatabaseURL)
	assert.Equal(t, "http://localhost:8080", merged.ServiceURL)
}
