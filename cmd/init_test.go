package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nocta-ui/internal/config"
	"nocta-ui/internal/detect"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	t.Cleanup(func() { projectDir = "" })
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestInitAlreadyInitialized(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Build(detect.Generic, false)
	require.NoError(t, config.Write(dir, &cfg))
	before, err := os.ReadFile(config.Path(dir))
	require.NoError(t, err)

	require.NoError(t, execute(t, "--cwd", dir, "init"))

	after, err := os.ReadFile(config.Path(dir))
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestInitMalformedConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(config.Path(dir), []byte("nope"), 0644))

	assert.ErrorContains(t, execute(t, "--cwd", dir, "init"), "failed to parse components.json")
}

func TestInitTokensRequiresConfig(t *testing.T) {
	assert.ErrorContains(t, execute(t, "--cwd", t.TempDir(), "init", "tokens"), "run `nocta-ui init` first")
}

func TestInitTokensAndUtils(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Build(detect.NextJS, true)
	require.NoError(t, config.Write(dir, &cfg))
	css := filepath.Join(dir, "app", "globals.css")
	require.NoError(t, os.MkdirAll(filepath.Dir(css), 0755))
	require.NoError(t, os.WriteFile(css, []byte("@import \"tailwindcss\";\n"), 0644))

	require.NoError(t, execute(t, "--cwd", dir, "init", "tokens"))
	data, err := os.ReadFile(css)
	require.NoError(t, err)
	assert.Contains(t, string(data), "--color-nocta-50:")

	require.NoError(t, execute(t, "--cwd", dir, "init", "utils"))
	assert.FileExists(t, filepath.Join(dir, "lib", "utils.ts"))
}

func TestInitTokensFailureIsError(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Build(detect.Vite, true)
	require.NoError(t, config.Write(dir, &cfg))

	assert.ErrorContains(t, execute(t, "--cwd", dir, "init", "tokens"), "token target not found")
}
