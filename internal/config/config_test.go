package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	for _, key := range []string{
		"WORDROOM_API_KEY", "WORDROOM_API_URL", "WORDROOM_DATA_FILE",
		"WORDROOM_BACKEND", "WORDROOM_COMPACT_WIDTH", "WORDROOM_THEME",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	return dir
}

func writeConfig(t *testing.T, home, body string) {
	t.Helper()
	cfgDir := filepath.Join(home, ".wordroom")
	require.NoError(t, os.MkdirAll(cfgDir, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config"), []byte(body), 0600))
}

func TestSaveConfigCreatesDirectories(t *testing.T) {
	withHome(t)

	cfg := Config{APIKey: "test-key"}
	require.NoError(t, cfg.Save())

	info, err := os.Stat(Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	home := withHome(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "", cfg.APIKey)
	assert.Equal(t, "json", cfg.Backend)
	assert.Equal(t, DefaultCompactWidth, cfg.CompactWidth)
	assert.Equal(t, filepath.Join(home, ".wordroom", "vocabulary.json"), cfg.DataFile)
}

func TestLoadSQLiteDefaultDataFile(t *testing.T) {
	home := withHome(t)
	writeConfig(t, home, "backend: SQLite\n")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Backend)
	assert.Equal(t, filepath.Join(home, ".wordroom", "vocabulary.sqlite"), cfg.DataFile)
}

func TestSaveLoadRoundtripWithAllFields(t *testing.T) {
	withHome(t)

	original := Config{
		APIKey:       "wn_verylongkeystring12345",
		APIURL:       "http://localhost:9999/v4",
		DataFile:     "/tmp/words.json",
		Backend:      "json",
		CompactWidth: 80,
		Theme:        "dark",
	}
	require.NoError(t, original.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, original, *loaded)
}

func TestSaveConfigOverwritesExisting(t *testing.T) {
	withHome(t)

	require.NoError(t, (&Config{APIKey: "key1"}).Save())
	require.NoError(t, (&Config{APIKey: "key2"}).Save())

	loaded, err := LoadFile()
	require.NoError(t, err)
	assert.Equal(t, "key2", loaded.APIKey)
}

func TestLoadConfigEmptyFile(t *testing.T) {
	home := withHome(t)
	writeConfig(t, home, "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultCompactWidth, cfg.CompactWidth)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	home := withHome(t)
	writeConfig(t, home, "invalid: yaml: content:")

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestConfigPermissionsStrictlyEnforced(t *testing.T) {
	withHome(t)

	require.NoError(t, (&Config{APIKey: "secret"}).Save())
	require.NoError(t, os.Chmod(Path(), 0644))

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "permissions")
}

func TestEnvOverridesFile(t *testing.T) {
	home := withHome(t)
	writeConfig(t, home, "api_key: from-file\ncompact_width: 90\ntheme: light\n")
	t.Setenv("WORDROOM_API_KEY", "from-env")
	t.Setenv("WORDROOM_COMPACT_WIDTH", "120")
	t.Setenv("WORDROOM_DATA_FILE", "/data/words.json")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.APIKey)
	assert.Equal(t, 120, cfg.CompactWidth)
	assert.Equal(t, "/data/words.json", cfg.DataFile)
	assert.Equal(t, "light", cfg.Theme)
}

func TestEnvParseError(t *testing.T) {
	withHome(t)
	t.Setenv("WORDROOM_COMPACT_WIDTH", "wide")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestLoadFileSkipsEnv(t *testing.T) {
	home := withHome(t)
	writeConfig(t, home, "api_key: from-file\n")
	t.Setenv("WORDROOM_API_KEY", "from-env")

	cfg, err := LoadFile()
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.APIKey)
	assert.Zero(t, cfg.CompactWidth)
}

func TestPathReturnsCorrectLocation(t *testing.T) {
	path := Path()
	assert.Contains(t, path, ".wordroom")
	assert.Contains(t, path, "config")
}

func TestLoadWithFlagsOverridesEnvAndFile(t *testing.T) {
	home := withHome(t)
	writeConfig(t, home, "data_file: /file/words.json\n")
	t.Setenv("WORDROOM_BACKEND", "json")

	cfg, err := LoadWithFlags("", "SQLite")
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Backend)
	assert.Equal(t, "/file/words.json", cfg.DataFile)

	cfg, err = LoadWithFlags("/flag/words.sqlite", "")
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Backend)
	assert.Equal(t, "/flag/words.sqlite", cfg.DataFile)
}

func TestLoadWithBackendFlagPicksDefaultDataFile(t *testing.T) {
	home := withHome(t)

	cfg, err := LoadWithFlags("", "sqlite")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".wordroom", "vocabulary.sqlite"), cfg.DataFile)
}

func TestSaveAPIKeyKeepsEnvOutOfFile(t *testing.T) {
	home := withHome(t)
	writeConfig(t, home, "theme: light\n")
	t.Setenv("WORDROOM_DATA_FILE", "/env/words.json")

	require.NoError(t, SaveAPIKey("wn_new"))

	cfg, err := LoadFile()
	require.NoError(t, err)
	assert.Equal(t, "wn_new", cfg.APIKey)
	assert.Equal(t, "light", cfg.Theme)
	assert.Empty(t, cfg.DataFile)

	info, err := os.Stat(Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}
