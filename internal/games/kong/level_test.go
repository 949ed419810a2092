package kong

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-kong/internal/config"
	"github.com/vovakirdan/tui-kong/internal/core"
)

// Positions on the test floor that overlap the player at x=100.
var (
	touchingBarrel = config.Point{X: 110, Y: floorTop - 14}
	touchingKong   = config.Point{X: 120, Y: floorTop - 40}
	playerHammer   = config.Point{X: 100, Y: floorTop - 14}
)

func levelOne(mutate func(*config.LevelConfig)) func(*config.KongConfig) {
	return func(cfg *config.KongConfig) { mutate(&cfg.Levels[0]) }
}

func TestBareLevelRuns(t *testing.T) {
	l := newTestLevel(t, 1, testConfig(), 0)

	stepN(l, 600, idle())

	assert.Equal(t, OutcomePlaying, l.Outcome())
	assert.Equal(t, 600, l.Frame())
	assert.Zero(t, l.Score())
	assert.Equal(t, float64(floorTop), l.Player().Bottom())
	assert.Equal(t, float64(floorTop), l.Kong().Bottom())
}

func TestUnknownLevel(t *testing.T) {
	_, err := NewLevel(3, testConfig(), 0, nil)
	require.Error(t, err)
}

func TestHammerDestroysBarrelOnce(t *testing.T) {
	cfg := testConfig(levelOne(func(lc *config.LevelConfig) {
		lc.Barrels = config.Points{touchingBarrel}
	}))
	l := newTestLevel(t, 1, cfg, 0)
	l.Player().takeHammer()

	stepN(l, 10, idle())

	assert.Equal(t, cfg.Scoring.BarrelDestroy, l.Score())
	assert.True(t, l.Barrels()[0].Destroyed())
	assert.Equal(t, OutcomePlaying, l.Outcome())
}

func TestBarrelContactWithoutHammerLoses(t *testing.T) {
	cfg := testConfig(levelOne(func(lc *config.LevelConfig) {
		lc.Barrels = config.Points{touchingBarrel}
	}))
	l := newTestLevel(t, 1, cfg, 500)

	assert.True(t, l.Update(idle()))
	assert.Equal(t, OutcomeLostByContact, l.Outcome())
	assert.True(t, l.Lost())
	assert.Zero(t, l.ReportedScore())
	assert.False(t, l.Barrels()[0].Destroyed())
}

func TestKongContactWithoutHammerLoses(t *testing.T) {
	cfg := testConfig(levelOne(func(lc *config.LevelConfig) {
		lc.Kong = touchingKong
	}))
	l := newTestLevel(t, 1, cfg, 500)

	require.True(t, l.Update(idle()))
	assert.Equal(t, OutcomeLostByContact, l.Outcome())
	assert.Zero(t, l.ReportedScore())
	assert.False(t, l.Won())
}

func TestKongContactWithHammerWins(t *testing.T) {
	cfg := testConfig(levelOne(func(lc *config.LevelConfig) {
		lc.Kong = touchingKong
		lc.Hammers = config.Points{playerHammer}
	}))
	l := newTestLevel(t, 1, cfg, 500)

	require.True(t, l.Update(idle()))
	assert.True(t, l.Won())
	assert.Equal(t, 500, l.ReportedScore())
}

func TestTimeoutKeepsScore(t *testing.T) {
	cfg := testConfig(func(cfg *config.KongConfig) {
		cfg.Gameplay.MaxFrames = 5
	})
	l := newTestLevel(t, 1, cfg, 250)

	for range 4 {
		require.False(t, l.Update(idle()))
	}
	require.True(t, l.Update(idle()))

	assert.Equal(t, OutcomeTimedOut, l.Outcome())
	assert.True(t, l.TimedOut())
	assert.False(t, l.Lost())
	assert.Equal(t, 250, l.ReportedScore())
	assert.Zero(t, l.SecondsLeft())
}

func TestConcludedLevelIgnoresUpdates(t *testing.T) {
	cfg := testConfig(func(cfg *config.KongConfig) {
		cfg.Gameplay.MaxFrames = 1
	})
	l := newTestLevel(t, 1, cfg, 0)
	require.True(t, l.Update(idle()))

	x := l.Player().X
	for range 10 {
		assert.True(t, l.Update(hold(core.ActionRight)))
	}
	assert.Equal(t, 1, l.Frame())
	assert.Equal(t, x, l.Player().X)
	assert.Equal(t, OutcomeTimedOut, l.Outcome())
}

func TestBananaKillsHammerHolder(t *testing.T) {
	cfg := testConfig()
	l := newTestLevel(t, 1, cfg, 300)
	l.Player().takeHammer()
	l.bananas = append(l.bananas, NewBanana(130, 724, false, cfg, cfg.Physics.Banana))

	stepN(l, 10, idle())

	assert.Equal(t, OutcomeLostByHazard, l.Outcome())
	assert.Zero(t, l.ReportedScore())
}

func TestSmartMonkeyBananaReachesPlayer(t *testing.T) {
	cfg := testConfig(func(cfg *config.KongConfig) {
		cfg.Combat.BananaInterval = 10
		cfg.Combat.BananaStagger = 0
		cfg.Levels[0].SmartMonkeys = []config.MonkeySpawn{{Pos: config.Point{X: 300, Y: floorTop - 21}}}
	})
	l := newTestLevel(t, 1, cfg, 0)
	l.Player().takeHammer()

	for range 200 {
		if l.Update(idle()) {
			break
		}
	}

	assert.Equal(t, OutcomeLostByHazard, l.Outcome())
	assert.True(t, l.Monkeys()[0].Alive())
}

func TestFirstOutcomeSticks(t *testing.T) {
	cfg := testConfig(levelOne(func(lc *config.LevelConfig) {
		lc.Barrels = config.Points{touchingBarrel}
	}))
	l := newTestLevel(t, 1, cfg, 0)
	l.bananas = append(l.bananas, NewBanana(110, 724, false, cfg, cfg.Physics.Banana))

	require.True(t, l.Update(idle()))
	assert.Equal(t, OutcomeLostByContact, l.Outcome())
}

func TestMonkeyDefeatsCreditedOnce(t *testing.T) {
	cfg := testConfig(levelOne(func(lc *config.LevelConfig) {
		lc.Monkeys = []config.MonkeySpawn{
			{Pos: config.Point{X: 400, Y: floorTop - 20}},
			{Pos: config.Point{X: 600, Y: floorTop - 20}},
		}
	}))
	l := newTestLevel(t, 1, cfg, 0)
	shot, smashed := l.Monkeys()[0], l.Monkeys()[1]
	l.Player().takeBlaster(1)

	l.Update(press(core.ActionFire))
	for range 100 {
		l.Update(idle())
		if !shot.Alive() {
			assert.Equal(t, cfg.Scoring.MonkeyDefeat, l.Score(), "credited in the frame of the hit")
		}
	}
	require.False(t, shot.Alive())
	assert.Equal(t, cfg.Scoring.MonkeyDefeat, l.Score())

	l.Player().takeHammer()
	l.Player().X = 600
	l.Update(idle())
	require.False(t, smashed.Alive())
	assert.Equal(t, 2*cfg.Scoring.MonkeyDefeat, l.Score())

	stepN(l, 50, idle())
	assert.Equal(t, 2*cfg.Scoring.MonkeyDefeat, l.Score())
	assert.Equal(t, OutcomePlaying, l.Outcome())
}

func TestMonkeyContactWithoutHammerLoses(t *testing.T) {
	cfg := testConfig(levelOne(func(lc *config.LevelConfig) {
		lc.Monkeys = []config.MonkeySpawn{{Pos: config.Point{X: 110, Y: floorTop - 20}}}
	}))
	l := newTestLevel(t, 1, cfg, 100)

	require.True(t, l.Update(idle()))
	assert.Equal(t, OutcomeLostByContact, l.Outcome())
	assert.True(t, l.Monkeys()[0].Alive())
}

func TestShootingKongDownWinsOnlyInLevelTwo(t *testing.T) {
	cfg := testConfig(func(cfg *config.KongConfig) {
		cfg.Combat.KongHealth = 1
		for i := range cfg.Levels {
			cfg.Levels[i].Kong = config.Point{X: 300, Y: floorTop - 40}
		}
	})

	tests := []struct {
		level   int
		outcome Outcome
	}{
		{1, OutcomePlaying},
		{2, OutcomeWon},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("level %d", tc.level), func(t *testing.T) {
			l := newTestLevel(t, tc.level, cfg, 40)
			l.Player().takeBlaster(1)

			l.Update(press(core.ActionFire))
			for range 100 {
				if l.Update(idle()) {
					break
				}
			}

			assert.Zero(t, l.Kong().Health())
			assert.Equal(t, tc.outcome, l.Outcome())
			assert.Equal(t, 40, l.Score())
		})
	}
}

func TestJumpOverBarrelScoredOncePerJump(t *testing.T) {
	cfg := testConfig(
		func(cfg *config.KongConfig) { cfg.Combat.JumpOverTolerance = 50 },
		levelOne(func(lc *config.LevelConfig) {
			lc.Barrels = config.Points{{X: 140, Y: floorTop - 14}}
		}),
	)
	l := newTestLevel(t, 1, cfg, 0)

	l.Update(press(core.ActionJump))
	stepN(l, 100, idle())
	assert.Equal(t, cfg.Scoring.BarrelJump, l.Score())
	assert.False(t, l.Player().Jumping())

	l.Update(press(core.ActionJump))
	stepN(l, 100, idle())
	assert.Equal(t, 2*cfg.Scoring.BarrelJump, l.Score())
	assert.Equal(t, OutcomePlaying, l.Outcome())
}

func TestTimeBonus(t *testing.T) {
	cfg := testConfig()
	l := newTestLevel(t, 1, cfg, 0)

	l.Update(idle())

	assert.Equal(t, 166, l.SecondsLeft())
	assert.Equal(t, 166*cfg.Gameplay.TimeBonusPerSecond, l.TimeBonus())
}

func TestSmartMonkeyStaggerIsSeeded(t *testing.T) {
	cfg := config.DefaultKongConfig()
	a, err := NewLevel(2, cfg, 0, rand.New(rand.NewSource(9)))
	require.NoError(t, err)
	b, err := NewLevel(2, cfg, 0, rand.New(rand.NewSource(9)))
	require.NoError(t, err)

	require.Equal(t, len(a.Monkeys()), len(b.Monkeys()))
	for i := range a.Monkeys() {
		assert.Equal(t, a.Monkeys()[i].Cooldown(), b.Monkeys()[i].Cooldown())
		assert.Less(t, a.Monkeys()[i].Cooldown(), cfg.Combat.BananaStagger)
	}
}

func TestDefaultLevelsSettle(t *testing.T) {
	cfg := config.DefaultKongConfig()
	for n := 1; n <= config.LevelCount; n++ {
		l := newTestLevel(t, n, cfg, 0)
		stepN(l, 120, idle())

		assert.Equal(t, OutcomePlaying, l.Outcome(), "level %d", n)
		for _, ld := range l.Ladders() {
			assert.Zero(t, ld.Velocity())
		}
		for _, b := range l.Barrels() {
			assert.Zero(t, b.Velocity())
		}
		assert.Zero(t, l.Kong().Velocity())
	}
}
