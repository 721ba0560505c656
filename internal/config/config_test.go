package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate moves into a fresh directory with no config reachable.
func isolate(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	t.Chdir(tempDir)
	t.Setenv("CSTRING_TEST_CONFIG", "")
	t.Setenv("NO_COLOR", "")
	t.Setenv("CI", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tempDir, "xdg"))
	t.Setenv("HOME", filepath.Join(tempDir, "home"))
	return tempDir
}

func TestGetConfigPath_ReturnsLocalConfig_When_FileExists(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile(FileName, []byte("format: plain\n"), 0o600))

	assert.Equal(t, FileName, getConfigPath())
}

func TestGetConfigPath_UsesXDGPath_When_LocalMissing(t *testing.T) {
	tempDir := isolate(t)
	configDir := filepath.Join(tempDir, "xdg", "cstring")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	configPath := filepath.Join(configDir, FileName)
	require.NoError(t, os.WriteFile(configPath, []byte("theme: orca\n"), 0o600))

	assert.Equal(t, configPath, getConfigPath())
}

func TestGetConfigPath_PrefersEnvironment(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile(FileName, []byte("format: plain\n"), 0o600))
	t.Setenv("CSTRING_TEST_CONFIG", "/elsewhere/config.yaml")

	assert.Equal(t, "/elsewhere/config.yaml", getConfigPath())
}

func TestGetConfigPath_ReturnsEmpty_When_NoConfigAvailable(t *testing.T) {
	isolate(t)

	assert.Empty(t, getConfigPath())
}

func TestLoadFile_ParsesAllFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	content := "format: json\ntheme: orca\nno_color: true\nexpected_version: \"20160101\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadFile(path)

	require.NoError(t, err)
	assert.Equal(t, &FileConfig{
		Format:          "json",
		Theme:           "orca",
		NoColor:         true,
		ExpectedVersion: "20160101",
	}, cfg)
}

func TestLoadFile_ReturnsError_When_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("format: [unterminated\n"), 0o600))

	_, err := LoadFile(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestResolve_UsesDefaults_When_NoConfig(t *testing.T) {
	isolate(t)
	var warn bytes.Buffer

	r := Resolve(&warn)

	assert.Equal(t, DefaultFormat, r.Format)
	assert.Equal(t, DefaultTheme, r.Theme)
	assert.False(t, r.NoColor)
	assert.Empty(t, r.ExpectedVersion)
	assert.Equal(t, SourceDefault, r.FormatSource)
	assert.Empty(t, warn.String())
}

func TestResolve_WarnsAndUsesDefaults_When_FileMalformed(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile(FileName, []byte("theme: [\n"), 0o600))
	var warn bytes.Buffer

	r := Resolve(&warn)

	assert.Equal(t, DefaultTheme, r.Theme)
	assert.Contains(t, warn.String(), "Warning:")
	assert.Contains(t, warn.String(), "Using defaults")
}

func TestResolve_WarnsWhenExplicitConfigMissing(t *testing.T) {
	isolate(t)
	t.Setenv("CSTRING_TEST_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	var warn bytes.Buffer

	r := Resolve(&warn)

	assert.Equal(t, DefaultFormat, r.Format)
	assert.Contains(t, warn.String(), "missing.yaml")
}

func TestResolve_AppliesFileValues(t *testing.T) {
	isolate(t)
	content := "format: plain\ntheme: orca\nexpected_version: \"201601011\"\n"
	require.NoError(t, os.WriteFile(FileName, []byte(content), 0o600))
	var warn bytes.Buffer

	r := Resolve(&warn)

	assert.Equal(t, FormatPlain, r.Format)
	assert.Equal(t, SourceFile, r.FormatSource)
	assert.Equal(t, "orca", r.Theme)
	assert.Equal(t, "201601011", r.ExpectedVersion)
	assert.Empty(t, warn.String())
}
