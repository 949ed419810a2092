package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePreset(t *testing.T) {
	p, err := ParsePreset("")
	require.NoError(t, err)
	assert.Equal(t, DifficultyNormal, p)

	p, err = ParsePreset("HARD")
	require.NoError(t, err)
	assert.Equal(t, DifficultyHard, p)

	_, err = ParsePreset("nightmare")
	assert.Error(t, err)
}

func TestApplyKongPreset(t *testing.T) {
	base := DefaultKongConfig()

	normal := ApplyKongPreset(base, DifficultyNormal)
	assert.Equal(t, base, normal)

	easy := ApplyKongPreset(base, DifficultyEasy)
	assert.Equal(t, 15000, easy.Gameplay.MaxFrames)
	assert.Equal(t, 450, easy.Combat.BananaInterval)
	assert.Equal(t, 3, easy.Combat.KongHealth)

	hard := ApplyKongPreset(base, DifficultyHard)
	assert.Equal(t, 7500, hard.Gameplay.MaxFrames)
	assert.Equal(t, 180, hard.Combat.BananaInterval)
	assert.Equal(t, 7, hard.Combat.KongHealth)

	// base untouched
	assert.Equal(t, 10000, base.Gameplay.MaxFrames)
}

func TestApplyKongPresetKeepsHealthPositive(t *testing.T) {
	cfg := DefaultKongConfig()
	cfg.Combat.KongHealth = 1

	easy := ApplyKongPreset(cfg, DifficultyEasy)
	assert.Equal(t, 1, easy.Combat.KongHealth)
	assert.NoError(t, easy.Validate())
}
