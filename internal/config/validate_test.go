package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultKongConfig()
	cfg.Gameplay.MaxFrames = 0
	cfg.Physics.Player.JumpSpeed = 5
	delete(cfg.Sprites, "banana")
	cfg.Levels[1].SmartMonkeys[0].Route = []int{0}

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalid))

	msg := err.Error()
	assert.Contains(t, msg, "gameplay.max_frames")
	assert.Contains(t, msg, "physics.player.jump_speed")
	assert.Contains(t, msg, "sprites.banana is missing")
	assert.Contains(t, msg, "levels[1].smart_monkeys[0].route[0] must be > 0")
}

func TestValidateCases(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*KongConfig)
		want   string
	}{
		{"zero window", func(c *KongConfig) { c.Window.Width = 0 }, "window.width"},
		{"negative route step", func(c *KongConfig) { c.Levels[1].Monkeys[0].Route = []int{10, -1} }, "route[1]"},
		{"one level", func(c *KongConfig) { c.Levels = c.Levels[:1] }, "levels must list 2"},
		{"no platforms", func(c *KongConfig) { c.Levels[0].Platforms = nil }, "levels[0].platforms"},
		{"zero sprite", func(c *KongConfig) { c.Sprites["kong"] = Size{0, 10} }, "sprites.kong"},
		{"no bullets", func(c *KongConfig) { c.Combat.BlasterBullets = 0 }, "combat.blaster_bullets"},
		{"negative stagger", func(c *KongConfig) { c.Combat.BananaStagger = -1 }, "combat.banana_stagger"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultKongConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestValidateToleratesAbsentOptionalEntities(t *testing.T) {
	cfg := DefaultKongConfig()
	for i := range cfg.Levels {
		cfg.Levels[i].Hammers = nil
		cfg.Levels[i].Blasters = nil
		cfg.Levels[i].Barrels = nil
		cfg.Levels[i].Ladders = nil
		cfg.Levels[i].Monkeys = nil
		cfg.Levels[i].SmartMonkeys = nil
	}
	assert.NoError(t, cfg.Validate())
}

func TestValidateAllowsMonkeyWithoutRoute(t *testing.T) {
	cfg, err := ParseKong([]byte(`
levels:
  - player: "100,724"
    kong: "600,150"
    platforms: "64,756;192,756"
  - player: "100,724"
    kong: "600,150"
    platforms: "64,756;192,756"
    smart_monkeys:
      - pos: "192,700"
        facing: left
        route: []
`))
	require.NoError(t, err)
	require.Len(t, cfg.Levels[1].SmartMonkeys, 1)
	assert.Empty(t, cfg.Levels[1].SmartMonkeys[0].Route)
}
