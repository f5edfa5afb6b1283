package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	v, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), v)
	assert.Equal(t, -1, v.Framerate)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "video.toml")
	want := &Video{
		VSync:        1,
		Framerate:    75,
		FilterMethod: 1,
		ShaderPath:   "shaders/crt.json",
	}
	require.NoError(t, want.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "video.toml")
	require.NoError(t, os.WriteFile(path, []byte("vsync = [broken"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
