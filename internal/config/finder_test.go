package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()

	// Not found
	assert.Equal(t, "", FindConfigFile(dir))
	assert.Equal(t, "", FindConfigFile(""))

	// A directory with the right name is ignored
	require.NoError(t, os.Mkdir(filepath.Join(dir, "config.yml"), 0o755))
	assert.Equal(t, "", FindConfigFile(dir))

	configJSON := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(configJSON, []byte(`{"verbose": true}`), 0o644))
	assert.Equal(t, configJSON, FindConfigFile(dir))

	// yaml is preferred over json
	configYAML := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configYAML, []byte("verbose: true"), 0o644))
	assert.Equal(t, configYAML, FindConfigFile(dir))
}

func TestDefaultInstantDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, filepath.Join(home, ".instant"), DefaultInstantDir())
}
