package config

import (
	_ "embed"
)

//go:embed defaults/kong.yaml
var defaultKongYAML []byte

// DefaultKongYAML returns the embedded default configuration file.
func DefaultKongYAML() []byte {
	return append([]byte(nil), defaultKongYAML...)
}

// RequiredSprites lists the sprite names every configuration must size.
var RequiredSprites = []string{
	"player_right", "player_left",
	"player_hammer_right", "player_hammer_left",
	"player_blaster_right", "player_blaster_left",
	"kong", "barrel", "ladder", "platform", "hammer", "blaster",
	"bullet_right", "bullet_left", "banana",
	"monkey_right", "monkey_left",
	"smart_monkey_right", "smart_monkey_left",
}

// DefaultKongConfig returns the default Kong configuration.
// It mirrors defaults/kong.yaml and is used if the embedded file cannot be parsed.
func DefaultKongConfig() KongConfig {
	return KongConfig{
		Window: WindowConfig{Width: 1024, Height: 768},
		Gameplay: GameplayConfig{
			MaxFrames:          10000,
			FramesPerSecond:    60,
			TimeBonusPerSecond: 3,
		},
		Physics: PhysicsConfig{
			Player: PlayerPhysics{
				Motion:     Motion{Gravity: 0.2, TerminalVelocity: 10},
				JumpSpeed:  -5,
				MoveSpeed:  3.5,
				ClimbSpeed: 2,
			},
			Kong:   Motion{Gravity: 0.4, TerminalVelocity: 5},
			Barrel: Motion{Gravity: 0.4, TerminalVelocity: 5},
			Ladder: Motion{Gravity: 0.25, TerminalVelocity: 5},
			Monkey: MonkeyPhysics{
				Motion:            Motion{Gravity: 0.4, TerminalVelocity: 5},
				MoveSpeed:         0.5,
				PlatformTolerance: 5,
			},
			Banana: ProjectilePhysics{Speed: 1.8, MaxDistance: 300},
			Bullet: ProjectilePhysics{Speed: 3.8, MaxDistance: 300},
		},
		Combat: CombatConfig{
			KongHealth:        5,
			BlasterBullets:    5,
			BananaInterval:    300,
			BananaStagger:     60,
			JumpOverTolerance: 1,
		},
		Scoring: ScoringConfig{
			BarrelDestroy: 100,
			BarrelJump:    30,
			MonkeyDefeat:  100,
		},
		HUD: HUDConfig{
			Score:      Point{32, 40},
			Time:       Point{32, 70},
			KongHealth: Point{760, 40},
			Bullets:    Point{760, 70},
		},
		Sprites: map[string]Size{
			"player_right":         {32, 40},
			"player_left":          {32, 40},
			"player_hammer_right":  {48, 44},
			"player_hammer_left":   {48, 44},
			"player_blaster_right": {40, 42},
			"player_blaster_left":  {40, 42},
			"kong":                 {96, 80},
			"barrel":               {32, 28},
			"ladder":               {40, 130},
			"platform":             {128, 24},
			"hammer":               {28, 28},
			"blaster":              {30, 20},
			"bullet_right":         {12, 6},
			"bullet_left":          {12, 6},
			"banana":               {20, 16},
			"monkey_right":         {40, 40},
			"monkey_left":          {40, 40},
			"smart_monkey_right":   {40, 42},
			"smart_monkey_left":    {40, 42},
		},
		Levels: []LevelConfig{
			{
				Name:      "Level 1",
				Player:    Point{100, 724},
				Kong:      Point{600, 150},
				Platforms: defaultPlatforms(),
				Ladders:   defaultLadders(),
				Barrels:   Points{{480, 570}, {250, 440}, {650, 310}, {870, 560}},
				Hammers:   Points{{560, 468}},
			},
			{
				Name:      "Level 2",
				Player:    Point{100, 724},
				Kong:      Point{600, 150},
				Platforms: defaultPlatforms(),
				Ladders:   defaultLadders(),
				Barrels:   Points{{480, 570}, {650, 310}},
				Hammers:   Points{{860, 340}},
				Blasters:  Points{{180, 734}, {900, 474}},
				Monkeys: []MonkeySpawn{
					{Pos: Point{150, 580}, FacingRight: true, Route: []int{120, 60}},
				},
				SmartMonkeys: []MonkeySpawn{
					{Pos: Point{560, 460}, FacingRight: false, Route: []int{90, 150}},
					{Pos: Point{250, 330}, FacingRight: true, Route: []int{150}},
				},
			},
		},
	}
}

// defaultPlatforms builds five tiers of 128px tiles, bottom tier first.
func defaultPlatforms() Points {
	row := func(y float64, xs ...float64) Points {
		out := make(Points, len(xs))
		for i, x := range xs {
			out[i] = Point{x, y}
		}
		return out
	}
	var ps Points
	ps = append(ps, row(756, 64, 192, 320, 448, 576, 704, 832, 960)...)
	ps = append(ps, row(626, 64, 192, 320, 448, 576, 704, 832)...)
	ps = append(ps, row(496, 192, 320, 448, 576, 704, 832, 960)...)
	ps = append(ps, row(366, 64, 192, 320, 448, 576, 704, 832)...)
	ps = append(ps, row(236, 192, 320, 448, 576, 704)...)
	return ps
}

func defaultLadders() Points {
	return Points{{720, 679}, {300, 549}, {800, 419}, {400, 289}}
}
