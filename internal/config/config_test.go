package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	require.Equal(t, "bookcat.db", cfg.Catalog.Database)
	require.Equal(t, ":8080", cfg.Server.Listen)
	require.Equal(t, "info", cfg.Logging.Level)
	require.Equal(t, "text", cfg.Logging.Format)
	require.Empty(t, cfg.Lexicon.LowercaseTitleWords)
}

func TestLoad_ParsesYAMLAndExpandsEnv(t *testing.T) {
	t.Setenv("BOOKCAT_TEST_DB", "from-env.db")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
catalog:
  database: ${BOOKCAT_TEST_DB}
server:
  listen: ":9999"
  metrics: true
logging:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "from-env.db", cfg.Catalog.Database)
	require.Equal(t, ":9999", cfg.Server.Listen)
	require.True(t, cfg.Server.Metrics)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_InvalidLoggingFormatRejected(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  format: xml\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "logging format")
}

func TestLoad_MissingLexiconFileRejected(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "lexicon:\n  mac_surnames: " + filepath.Join(dir, "absent.txt") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "mac_surnames")
}

func TestInit_RefusesToOverwriteWithoutForce(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	require.NoError(t, Init(path, false))
	require.Error(t, Init(path, false))
	require.NoError(t, Init(path, true))

	// The generated example must itself load.
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "bookcat.db", cfg.Catalog.Database)
}
