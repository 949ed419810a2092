// Package config provides YAML-based configuration loading, validation and
// difficulty presets for the Kong game.
package config

// KongConfig contains all configuration for the Kong game. It is read once
// when a level is built; the simulation never mutates it.
type KongConfig struct {
	Window   WindowConfig    `yaml:"window"`
	Gameplay GameplayConfig  `yaml:"gameplay"`
	Physics  PhysicsConfig   `yaml:"physics"`
	Combat   CombatConfig    `yaml:"combat"`
	Scoring  ScoringConfig   `yaml:"scoring"`
	HUD      HUDConfig       `yaml:"hud"`
	Sprites  map[string]Size `yaml:"sprites"`
	Levels   []LevelConfig   `yaml:"levels"`
}

// WindowConfig is the size of the world in pixels.
type WindowConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// GameplayConfig holds the frame budget and the time bonus.
type GameplayConfig struct {
	MaxFrames          int `yaml:"max_frames"`
	FramesPerSecond    int `yaml:"frames_per_second"`
	TimeBonusPerSecond int `yaml:"time_bonus_per_second"`
}

// Motion is the per-type gravity pair.
type Motion struct {
	Gravity          float64 `yaml:"gravity"`
	TerminalVelocity float64 `yaml:"terminal_velocity"`
}

// PlayerPhysics defines movement parameters for the player.
type PlayerPhysics struct {
	Motion     `yaml:",inline"`
	JumpSpeed  float64 `yaml:"jump_speed"` // Negative: up is -y
	MoveSpeed  float64 `yaml:"move_speed"`
	ClimbSpeed float64 `yaml:"climb_speed"`
}

// MonkeyPhysics defines movement parameters for patrolling monkeys.
type MonkeyPhysics struct {
	Motion            `yaml:",inline"`
	MoveSpeed         float64 `yaml:"move_speed"`
	PlatformTolerance float64 `yaml:"platform_tolerance"`
}

// ProjectilePhysics defines speed and range of a projectile type.
type ProjectilePhysics struct {
	Speed       float64 `yaml:"speed"`
	MaxDistance float64 `yaml:"max_distance"`
}

// PhysicsConfig groups the physics parameters of every entity type.
type PhysicsConfig struct {
	Player PlayerPhysics     `yaml:"player"`
	Kong   Motion            `yaml:"kong"`
	Barrel Motion            `yaml:"barrel"`
	Ladder Motion            `yaml:"ladder"`
	Monkey MonkeyPhysics     `yaml:"monkey"`
	Banana ProjectilePhysics `yaml:"banana"`
	Bullet ProjectilePhysics `yaml:"bullet"`
}

// CombatConfig defines health, ammunition and firing cadence.
type CombatConfig struct {
	KongHealth        int     `yaml:"kong_health"`
	BlasterBullets    int     `yaml:"blaster_bullets"`
	BananaInterval    int     `yaml:"banana_interval"` // Frames between throws
	BananaStagger     int     `yaml:"banana_stagger"`  // Random initial cooldown is drawn from [0, stagger)
	JumpOverTolerance float64 `yaml:"jump_over_tolerance"`
}

// ScoringConfig defines the reward for each scoring event.
type ScoringConfig struct {
	BarrelDestroy int `yaml:"barrel_destroy"`
	BarrelJump    int `yaml:"barrel_jump"`
	MonkeyDefeat  int `yaml:"monkey_defeat"`
}

// HUDConfig places the status lines of a level.
type HUDConfig struct {
	Score      Point `yaml:"score"`
	Time       Point `yaml:"time"`
	KongHealth Point `yaml:"kong_health"`
	Bullets    Point `yaml:"bullets"`
}

// LevelConfig lists the starting layout of one level. Platforms are
// resolved in list order, so lower tiers should come first.
type LevelConfig struct {
	Name         string        `yaml:"name"`
	Player       Point         `yaml:"player"`
	Kong         Point         `yaml:"kong"`
	Platforms    Points        `yaml:"platforms"`
	Ladders      Points        `yaml:"ladders"`
	Barrels      Points        `yaml:"barrels"`
	Hammers      Points        `yaml:"hammers"`
	Blasters     Points        `yaml:"blasters"`
	Monkeys      []MonkeySpawn `yaml:"monkeys"`
	SmartMonkeys []MonkeySpawn `yaml:"smart_monkeys"`
}

// Level returns the layout of level n (1-based) and whether it exists.
func (c KongConfig) Level(n int) (LevelConfig, bool) {
	if n < 1 || n > len(c.Levels) {
		return LevelConfig{}, false
	}
	return c.Levels[n-1], true
}

// SpriteSize returns the configured size of a sprite, or zero if unknown.
func (c KongConfig) SpriteSize(name string) Size {
	return c.Sprites[name]
}

// Clone returns a deep copy so presets can be applied without touching a
// shared snapshot.
func (c KongConfig) Clone() KongConfig {
	out := c
	out.Sprites = make(map[string]Size, len(c.Sprites))
	for k, v := range c.Sprites {
		out.Sprites[k] = v
	}
	out.Levels = make([]LevelConfig, len(c.Levels))
	for i, lvl := range c.Levels {
		out.Levels[i] = lvl.clone()
	}
	return out
}

func (l LevelConfig) clone() LevelConfig {
	out := l
	out.Platforms = append(Points(nil), l.Platforms...)
	out.Ladders = append(Points(nil), l.Ladders...)
	out.Barrels = append(Points(nil), l.Barrels...)
	out.Hammers = append(Points(nil), l.Hammers...)
	out.Blasters = append(Points(nil), l.Blasters...)
	out.Monkeys = cloneSpawns(l.Monkeys)
	out.SmartMonkeys = cloneSpawns(l.SmartMonkeys)
	return out
}

func cloneSpawns(in []MonkeySpawn) []MonkeySpawn {
	if in == nil {
		return nil
	}
	out := make([]MonkeySpawn, len(in))
	for i, s := range in {
		out[i] = s
		out[i].Route = append([]int(nil), s.Route...)
	}
	return out
}
