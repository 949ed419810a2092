package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMatchesHardcodedDefaults(t *testing.T) {
	cfg, err := ParseKong(DefaultKongYAML())
	require.NoError(t, err)
	assert.Equal(t, DefaultKongConfig(), cfg)
}

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultKongConfig().Validate())
}

func TestLoadKongCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kong.yaml")
	doc := `
gameplay:
  max_frames: 600
sprites:
  barrel: "20,20"
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, used, err := LoadKongWithPath(path)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, 600, cfg.Gameplay.MaxFrames)
	assert.Equal(t, Size{20, 20}, cfg.SpriteSize("barrel"))
	// Untouched keys keep defaults
	assert.Equal(t, 60, cfg.Gameplay.FramesPerSecond)
	assert.Equal(t, Size{96, 80}, cfg.SpriteSize("kong"))
	assert.Len(t, cfg.Levels, 2)
}

func TestLoadKongMissingCustomPath(t *testing.T) {
	_, err := LoadKong(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}

func TestLoadKongInvalidCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kong.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gameplay:\n  max_frames: 0\n"), 0o644))

	_, err := LoadKong(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalid))
}

func TestLoadKongMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kong.yaml")
	require.NoError(t, os.WriteFile(path, []byte("levels:\n  - player: \"1;2\"\n"), 0o644))

	_, err := LoadKong(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestLoadKongFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, used, err := LoadKongWithPath("")
	require.NoError(t, err)
	assert.Empty(t, used)
	assert.Equal(t, DefaultKongConfig(), cfg)
}

func TestLoadKongLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.MkdirAll("configs", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("configs", KongFile), []byte("gameplay:\n  max_frames: 1234\n"), 0o644))

	cfg, used, err := LoadKongWithPath("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("configs", KongFile), used)
	assert.Equal(t, 1234, cfg.Gameplay.MaxFrames)
}

func TestLevelLookup(t *testing.T) {
	cfg := DefaultKongConfig()

	lvl, ok := cfg.Level(2)
	require.True(t, ok)
	assert.Equal(t, "Level 2", lvl.Name)

	_, ok = cfg.Level(0)
	assert.False(t, ok)
	_, ok = cfg.Level(3)
	assert.False(t, ok)
}

func TestCloneIsDeep(t *testing.T) {
	cfg := DefaultKongConfig()
	c := cfg.Clone()

	c.Sprites["kong"] = Size{1, 1}
	c.Levels[1].Monkeys[0].Route[0] = 999
	c.Levels[0].Barrels[0] = Point{}

	assert.Equal(t, Size{96, 80}, cfg.Sprites["kong"])
	assert.Equal(t, 120, cfg.Levels[1].Monkeys[0].Route[0])
	assert.Equal(t, Point{480, 570}, cfg.Levels[0].Barrels[0])
}
