package config

import (
	"errors"
	"fmt"
)

// ErrInvalid marks a configuration that parsed but cannot be played.
var ErrInvalid = errors.New("invalid config")

// LevelCount is the number of levels a run plays.
const LevelCount = 2

type problems []error

func (p *problems) addf(format string, args ...any) {
	*p = append(*p, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
}

func (p *problems) positive(name string, v float64) {
	if v <= 0 {
		p.addf("%s must be > 0, got %v", name, v)
	}
}

func (p *problems) nonNegative(name string, v float64) {
	if v < 0 {
		p.addf("%s must be >= 0, got %v", name, v)
	}
}

func (p *problems) motion(name string, m Motion) {
	p.positive(name+".gravity", m.Gravity)
	p.positive(name+".terminal_velocity", m.TerminalVelocity)
}

// Validate reports every problem found, joined. Each one wraps ErrInvalid.
func (c KongConfig) Validate() error {
	var p problems

	p.positive("window.width", c.Window.Width)
	p.positive("window.height", c.Window.Height)

	p.positive("gameplay.max_frames", float64(c.Gameplay.MaxFrames))
	p.positive("gameplay.frames_per_second", float64(c.Gameplay.FramesPerSecond))
	p.nonNegative("gameplay.time_bonus_per_second", float64(c.Gameplay.TimeBonusPerSecond))

	ph := c.Physics
	p.motion("physics.player", ph.Player.Motion)
	if ph.Player.JumpSpeed >= 0 {
		p.addf("physics.player.jump_speed must be < 0, got %v", ph.Player.JumpSpeed)
	}
	p.positive("physics.player.move_speed", ph.Player.MoveSpeed)
	p.positive("physics.player.climb_speed", ph.Player.ClimbSpeed)
	p.motion("physics.kong", ph.Kong)
	p.motion("physics.barrel", ph.Barrel)
	p.motion("physics.ladder", ph.Ladder)
	p.motion("physics.monkey", ph.Monkey.Motion)
	p.positive("physics.monkey.move_speed", ph.Monkey.MoveSpeed)
	p.nonNegative("physics.monkey.platform_tolerance", ph.Monkey.PlatformTolerance)
	p.positive("physics.banana.speed", ph.Banana.Speed)
	p.positive("physics.banana.max_distance", ph.Banana.MaxDistance)
	p.positive("physics.bullet.speed", ph.Bullet.Speed)
	p.positive("physics.bullet.max_distance", ph.Bullet.MaxDistance)

	p.positive("combat.kong_health", float64(c.Combat.KongHealth))
	p.positive("combat.blaster_bullets", float64(c.Combat.BlasterBullets))
	p.positive("combat.banana_interval", float64(c.Combat.BananaInterval))
	p.nonNegative("combat.banana_stagger", float64(c.Combat.BananaStagger))
	p.nonNegative("combat.jump_over_tolerance", c.Combat.JumpOverTolerance)

	p.nonNegative("scoring.barrel_destroy", float64(c.Scoring.BarrelDestroy))
	p.nonNegative("scoring.barrel_jump", float64(c.Scoring.BarrelJump))
	p.nonNegative("scoring.monkey_defeat", float64(c.Scoring.MonkeyDefeat))

	for _, name := range RequiredSprites {
		sz, ok := c.Sprites[name]
		if !ok {
			p.addf("sprites.%s is missing", name)
			continue
		}
		if sz.W <= 0 || sz.H <= 0 {
			p.addf("sprites.%s must have a positive size, got %vx%v", name, sz.W, sz.H)
		}
	}

	if len(c.Levels) != LevelCount {
		p.addf("levels must list %d levels, got %d", LevelCount, len(c.Levels))
	}
	for i, lvl := range c.Levels {
		prefix := fmt.Sprintf("levels[%d]", i)
		if len(lvl.Platforms) == 0 {
			p.addf("%s.platforms must not be empty", prefix)
		}
		for j, m := range lvl.Monkeys {
			p.route(fmt.Sprintf("%s.monkeys[%d]", prefix, j), m.Route)
		}
		for j, m := range lvl.SmartMonkeys {
			p.route(fmt.Sprintf("%s.smart_monkeys[%d]", prefix, j), m.Route)
		}
	}

	return errors.Join(p...)
}

// route checks segment lengths. An empty route is allowed: the monkey stands.
func (p *problems) route(name string, route []int) {
	for i, d := range route {
		if d <= 0 {
			p.addf("%s.route[%d] must be > 0, got %d", name, i, d)
		}
	}
}
