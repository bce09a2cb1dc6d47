package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.True(t, cfg.IsDefault())
	assert.False(t, cfg.GetNoColor())
	assert.False(t, cfg.GetVerbose())
	assert.Equal(t, 1, cfg.DiffContext)
	assert.Equal(t, 200, cfg.MaxValueLength)
}

func TestLoadConfig_JSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".expect.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"noColor": true, "diffContext": 3}`), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.True(t, cfg.GetNoColor())
	assert.False(t, cfg.GetVerbose())
	assert.Equal(t, 3, cfg.DiffContext)
	assert.Equal(t, 200, cfg.MaxValueLength)
	assert.False(t, cfg.IsDefault())
}

func TestLoadConfig_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".expect.yaml")
	require.NoError(t, os.WriteFile(path, []byte("verbose: true\nmaxValueLength: 50\n"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.True(t, cfg.GetVerbose())
	assert.Equal(t, 50, cfg.MaxValueLength)
}

func TestLoadConfig_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "expect.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0644))

	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "failed to parse")

	_, err = LoadConfig(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestFindAndLoadConfig_SearchesParents(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".expect.yml"), []byte("noColor: true\n"), 0644))

	cfg, err := FindAndLoadConfig(nested)
	require.NoError(t, err)
	assert.True(t, cfg.GetNoColor())
}

func TestMerge(t *testing.T) {
	base := DefaultConfig()
	merged := base.Merge(&Config{Verbose: BoolPtr(true), DiffContext: 5})

	assert.True(t, merged.GetVerbose())
	assert.False(t, merged.GetNoColor())
	assert.Equal(t, 5, merged.DiffContext)
	assert.False(t, base.GetVerbose(), "Merge must not modify the receiver")
	assert.Same(t, base, base.Merge(nil))
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvNoColor: "1",
		EnvVerbose: "not-a-bool",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	cfg := DefaultConfig().ApplyEnv(lookup)
	assert.True(t, cfg.GetNoColor())
	assert.False(t, cfg.GetVerbose())
}
