package kong

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-kong/internal/config"
	"github.com/vovakirdan/tui-kong/internal/core"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kong.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigRejectsMalformedFile(t *testing.T) {
	t.Cleanup(func() { SetSource(nil) })
	before := staticSource(testConfig())
	SetSource(before)

	tests := []struct {
		name string
		body string
	}{
		{"invalid value", "gameplay:\n  max_frames: -5\n"},
		{"unparsable levels", "levels:\n  - player: \"not,a,point\"\n"},
		{"broken yaml", "gameplay: [\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src, path, err := LoadConfig(writeConfig(t, tc.body), config.DifficultyNormal)
			require.Error(t, err)
			assert.Nil(t, src)
			assert.Empty(t, path)
			assert.Equal(t, ConfigSource(before), source, "source must not change")
		})
	}

	_, _, err := LoadConfig(writeConfig(t, "gameplay:\n  max_frames: -5\n"), config.DifficultyNormal)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestLoadConfigFeedsNewGames(t *testing.T) {
	t.Cleanup(func() { SetSource(nil) })
	file := writeConfig(t, "gameplay:\n  max_frames: 1234\n")

	src, path, err := LoadConfig(file, config.DifficultyNormal)
	require.NoError(t, err)
	assert.Equal(t, file, path)
	assert.Equal(t, 1234, src.Config().Gameplay.MaxFrames)

	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1})
	g.Step(press(core.ActionConfirm))
	require.Equal(t, PhaseLevel1, g.Run().Phase())
	assert.Equal(t, 1234, g.Run().Level().cfg.Gameplay.MaxFrames)
}
