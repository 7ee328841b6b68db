package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nocta-ui/internal/detect"
)

func TestReadMissingIsAbsent(t *testing.T) {
	cfg, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestWriteReadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	for _, want := range []Config{Build(detect.Vite, false), Build(detect.NextJS, true)} {
		require.NoError(t, Write(dir, &want))

		got, err := Read(dir)
		require.NoError(t, err)
		require.NotNil(t, got)
		if diff := cmp.Diff(want, *got); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestWriteFormat(t *testing.T) {
	dir := t.TempDir()
	cfg := Build(detect.Generic, false)
	require.NoError(t, Write(dir, &cfg))

	data, err := os.ReadFile(filepath.Join(dir, "components.json"))
	require.NoError(t, err)

	want := `{
  "style": "default",
  "tsx": true,
  "tailwind": {
    "config": "tailwind.config.js",
    "css": "src/styles/globals.css"
  },
  "aliases": {
    "components": "src/components",
    "utils": "src/lib/utils"
  }
}
`
	assert.Equal(t, want, string(data))
}

func TestReadMalformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("{not json"), 0644))

	cfg, err := Read(dir)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse components.json")
}

func TestWriteRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	cfg := Build(detect.Generic, false)
	cfg.Aliases.Utils = "../outside/utils"

	err := Write(dir, &cfg)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.ErrorIs(t, err, ErrOutsideProject)
	assert.NoFileExists(t, Path(dir))
}

func TestLoadRequiresRecord(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(dir)
	assert.ErrorContains(t, err, "run `nocta-ui init` first")

	cfg := Build(detect.Generic, true)
	require.NoError(t, Write(dir, &cfg))
	got, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, cfg, *got)
}
