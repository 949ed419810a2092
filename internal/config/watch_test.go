package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, path, doc string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
}

func TestWatcherReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kong.yaml")
	writeConfig(t, path, "gameplay:\n  max_frames: 100\n")

	src := NewSource(DefaultKongConfig(), DifficultyNormal)
	w, err := NewWatcher(path, src, nil)
	require.NoError(t, err)
	defer w.Close()

	assert.True(t, w.Reload())
	assert.Equal(t, 100, src.Config().Gameplay.MaxFrames)

	// Invalid file keeps the previous snapshot
	writeConfig(t, path, "gameplay:\n  max_frames: -1\n")
	assert.False(t, w.Reload())
	assert.Equal(t, 100, src.Config().Gameplay.MaxFrames)
}

func TestWatcherPicksUpWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kong.yaml")
	writeConfig(t, path, "gameplay:\n  max_frames: 100\n")

	src := NewSource(DefaultKongConfig(), DifficultyNormal)
	w, err := NewWatcher(path, src, nil)
	require.NoError(t, err)
	defer w.Close()

	writeConfig(t, path, "gameplay:\n  max_frames: 4242\n")

	select {
	case <-w.Reloaded:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
	assert.Equal(t, 4242, src.Config().Gameplay.MaxFrames)
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kong.yaml")
	writeConfig(t, path, "gameplay:\n  max_frames: 100\n")

	src := NewSource(DefaultKongConfig(), DifficultyNormal)
	w, err := NewWatcher(path, src, nil)
	require.NoError(t, err)
	defer w.Close()

	writeConfig(t, filepath.Join(dir, "other.yaml"), "gameplay:\n  max_frames: 5\n")

	select {
	case <-w.Reloaded:
		t.Fatal("unexpected reload")
	case <-time.After(300 * time.Millisecond):
	}
	_, v := src.Current()
	assert.Equal(t, 1, v)
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kong.yaml")
	writeConfig(t, path, "")

	w, err := NewWatcher(path, NewSource(DefaultKongConfig(), DifficultyNormal), nil)
	require.NoError(t, err)
	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}
