package kong

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-kong/internal/config"
)

func TestGravityNeverExceedsTerminalVelocity(t *testing.T) {
	cfg := config.DefaultKongConfig()
	ph := cfg.Physics
	spawn := config.Point{X: 500, Y: -10000}

	bodies := map[string]HasGravity{
		"ladder": NewLadder(spawn, cfg, ph.Ladder),
		"barrel": NewBarrel(spawn, cfg, ph.Barrel),
		"kong":   NewAntagonist(spawn, cfg, ph.Kong, 5),
		"monkey": NewMonkey(MonkeyNormal, config.MonkeySpawn{Pos: spawn, Route: []int{10}}, cfg,
			MonkeyOptions{Physics: ph.Monkey, WorldWidth: 1024}),
	}

	for name, b := range bodies {
		t.Run(name, func(t *testing.T) {
			for range 500 {
				b.Update(nil)
				assert.LessOrEqual(t, b.Velocity(), b.TerminalVelocity())
			}
			assert.Equal(t, b.TerminalVelocity(), b.Velocity())
		})
	}
}

func TestFallClampsBeforeIntegrating(t *testing.T) {
	b := Body{VelY: 4.9}
	b.Fall(config.Motion{Gravity: 0.4, TerminalVelocity: 5})

	assert.Equal(t, 5.0, b.VelY)
	assert.Equal(t, 5.0, b.Y)
}

func TestSettleSnapsToPlatformTop(t *testing.T) {
	cfg := config.DefaultKongConfig()
	platform := NewPlatform(config.Point{X: 200, Y: 500}, cfg.SpriteSize(string(SpritePlatform)))
	barrel := NewBarrel(config.Point{X: 200, Y: 300}, cfg, cfg.Physics.Barrel)

	for range 200 {
		barrel.Update([]Platform{platform})
	}

	assert.Equal(t, platform.Box().Top(), barrel.Bottom())
	assert.Zero(t, barrel.Velocity())
}

func TestSettleUsesFirstIntersectingPlatform(t *testing.T) {
	size := config.Size{W: 100, H: 20}
	lower := NewPlatform(config.Point{X: 0, Y: 110}, size)
	upper := NewPlatform(config.Point{X: 0, Y: 100}, size)
	b := Body{X: 0, Y: 102, W: 10, H: 10}

	require.True(t, b.SettleOn([]Platform{lower, upper}))
	assert.Equal(t, lower.Box().Top(), b.Bottom())
}

func TestSettleMissesDisjointPlatform(t *testing.T) {
	p := NewPlatform(config.Point{X: 500, Y: 500}, config.Size{W: 100, H: 20})
	b := Body{X: 0, Y: 0, W: 10, H: 10, VelY: 3}

	assert.False(t, b.SettleOn([]Platform{p}))
	assert.Equal(t, 3.0, b.VelY)
}

func TestDestroyedBarrelStopsFalling(t *testing.T) {
	cfg := config.DefaultKongConfig()
	b := NewBarrel(config.Point{X: 100, Y: 100}, cfg, cfg.Physics.Barrel)
	b.Destroy()
	b.Update(nil)

	assert.Equal(t, 100.0, b.Y)
	assert.True(t, b.Box().Empty())
}

func TestAntagonistHealthClampsAtZero(t *testing.T) {
	cfg := config.DefaultKongConfig()
	k := NewAntagonist(config.Point{}, cfg, cfg.Physics.Kong, 2)

	k.Damage(1)
	assert.True(t, k.Alive())
	k.Damage(5)
	assert.Zero(t, k.Health())
	assert.False(t, k.Alive())
}

func TestCullInactiveKeepsOrder(t *testing.T) {
	cfg := config.DefaultKongConfig()
	phys := cfg.Physics.Banana
	a := NewBanana(0, 0, true, cfg, phys)
	b := NewBanana(1, 0, true, cfg, phys)
	c := NewBanana(2, 0, true, cfg, phys)
	b.Deactivate()

	out := cullInactive([]*Projectile{a, b, c})

	require.Len(t, out, 2)
	assert.Same(t, a, out[0])
	assert.Same(t, c, out[1])
}
