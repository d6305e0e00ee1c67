package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rubra/engine"
	"rubra/settings"
)

// run executes the CLI against throwaway config and settings files.
func run(t *testing.T, settingsPath string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(append([]string{
		"--config", filepath.Join(t.TempDir(), "config.toml"),
		"--settings", settingsPath,
		"--log-level", "error",
	}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestResolveCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"resolve", "example.com"}, "https://example.com\n"},
		{[]string{"resolve", "how", "to", "code"}, "https://duckduckgo.com/?q=how%20to%20code\n"},
		{[]string{"resolve", "localhost:8080"}, "http://localhost:8080\n"},
		{[]string{"resolve", "--explain", "/etc/hosts"}, "file\tfile:///etc/hosts\n"},
	}
	for _, tt := range tests {
		out, err := run(t, path, tt.args...)
		require.NoError(t, err, tt.args)
		assert.Equal(t, tt.want, out, tt.args)
	}

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "resolving must not touch settings")
}

func TestResolveUsesConfiguredSearch(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[search]\ntemplate = \"https://search.example/?q=%s\"\n"), 0644))

	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs([]string{"--config", cfgPath, "resolve", "cats and dogs"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "https://search.example/?q=cats%20and%20dogs\n", out.String())
}

func TestSettingsSetPersistsAndApplies(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	out, err := run(t, path, "settings", "set", "--show-engine", "Enable JavaScript", "false")
	require.NoError(t, err)

	// First line echoes the change, the rest is the engine state.
	prefix := "Enable JavaScript = false\n"
	require.True(t, len(out) > len(prefix))
	assert.Equal(t, prefix, out[:len(prefix)])

	var profile engine.Profile
	require.NoError(t, json.Unmarshal([]byte(out[len(prefix):]), &profile))
	assert.False(t, profile.EnableJavaScript)
	assert.True(t, profile.AutoLoadImages)

	doc, err := settings.Load(path)
	require.NoError(t, err)
	v, _ := doc.Get("Enable JavaScript")
	assert.Equal(t, "false", v)
}

func TestSettingsToggleAndGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	out, err := run(t, path, "settings", "toggle", "Enable Developer Extras")
	require.NoError(t, err)
	assert.Equal(t, "Enable Developer Extras = true\n", out)

	out, err = run(t, path, "settings", "get", "Enable Developer Extras")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	out, err = run(t, path, "settings", "toggle", "Enable Developer Extras")
	require.NoError(t, err)
	assert.Equal(t, "Enable Developer Extras = false\n", out)
}

func TestSettingsSetErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	_, err := run(t, path, "settings", "set", "Enable JavaScript", "maybe")
	assert.Error(t, err)

	_, err = run(t, path, "settings", "set", "Enable Telepathy", "true")
	assert.ErrorContains(t, err, "unknown setting")

	doc, err := settings.Load(path)
	require.NoError(t, err)
	assert.Equal(t, settings.Default(), doc)
}

func TestSettingsList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	out, err := run(t, path, "settings", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "General Settings\n")
	assert.Contains(t, out, "Security Settings\n")
	assert.Regexp(t, `(?m)^Enable JavaScript\s+true$`, out)
	assert.Regexp(t, `(?m)^Disable Web Security\s+false$`, out)
}

func TestSettingsEngine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	out, err := run(t, path, "settings", "engine")
	require.NoError(t, err)

	var profile engine.Profile
	require.NoError(t, json.Unmarshal([]byte(out), &profile))
	assert.True(t, profile.EnableJavaScript)
	assert.False(t, profile.DisableWebSecurity)
}

func TestCorruptSettingsFileIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{oops"), 0644))

	_, err := run(t, path, "settings", "list")
	require.Error(t, err)
	assert.ErrorIs(t, err, settings.ErrInvalidDocument)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{oops", string(data), "corrupt file is left for the user")

	_, err = run(t, path, "settings", "reset")
	require.NoError(t, err)
	_, err = run(t, path, "settings", "list")
	assert.NoError(t, err)
}

func TestSettingsResetRestoresDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	_, err := run(t, path, "settings", "set", "Disable Web Security", "true")
	require.NoError(t, err)

	_, err = run(t, path, "settings", "reset")
	require.NoError(t, err)

	doc, err := settings.Load(path)
	require.NoError(t, err)
	assert.Equal(t, settings.Default(), doc)
}

func TestSettingsResetUnreadablePath(t *testing.T) {
	// A directory in place of the file is not corruption and is reported.
	path := t.TempDir()
	_, err := run(t, path, "settings", "reset")
	require.Error(t, err)
	assert.NotErrorIs(t, err, settings.ErrInvalidDocument)
}

func TestSettingsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.json")
	out, err := run(t, path, "settings", "path")
	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)
}

func TestInitConfig(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs([]string{"init-config"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "[search]")
}
