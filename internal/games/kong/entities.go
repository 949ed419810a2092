package kong

import (
	"github.com/vovakirdan/tui-kong/internal/config"
	"github.com/vovakirdan/tui-kong/internal/core"
)

// Ladder falls onto the platform below it and then serves as a climbing lane.
type Ladder struct {
	Body
	motion config.Motion
}

// NewLadder creates a ladder at p.
func NewLadder(p config.Point, s Sizer, m config.Motion) *Ladder {
	return &Ladder{Body: newBody(p, sizeOf(s, SpriteLadder)), motion: m}
}

// Update applies one frame of gravity.
func (l *Ladder) Update(platforms []Platform) { l.ApplyGravity(l.motion, platforms) }

func (l *Ladder) Velocity() float64         { return l.VelY }
func (l *Ladder) TerminalVelocity() float64 { return l.motion.TerminalVelocity }

// Barrel is a hazard resting on a platform. A destroyed barrel has an empty
// box and no longer moves or draws.
type Barrel struct {
	Body
	motion    config.Motion
	destroyed bool
	jumpedBy  int // jump number that last scored a jump over this barrel
}

// NewBarrel creates a barrel at p.
func NewBarrel(p config.Point, s Sizer, m config.Motion) *Barrel {
	return &Barrel{Body: newBody(p, sizeOf(s, SpriteBarrel)), motion: m}
}

// Update applies gravity unless the barrel is destroyed.
func (b *Barrel) Update(platforms []Platform) {
	if b.destroyed {
		return
	}
	b.ApplyGravity(b.motion, platforms)
}

func (b *Barrel) Velocity() float64         { return b.VelY }
func (b *Barrel) TerminalVelocity() float64 { return b.motion.TerminalVelocity }

// Box returns the barrel's bounding box, empty once destroyed.
func (b *Barrel) Box() core.Box {
	if b.destroyed {
		return core.Box{}
	}
	return b.Body.Box()
}

// Destroy retires the barrel.
func (b *Barrel) Destroy() { b.destroyed = true }

// Destroyed reports whether the barrel was smashed.
func (b *Barrel) Destroyed() bool { return b.destroyed }

// Antagonist is Kong: a falling body with health.
type Antagonist struct {
	Body
	motion config.Motion
	health int
}

// NewAntagonist creates Kong at p with the given health.
func NewAntagonist(p config.Point, s Sizer, m config.Motion, health int) *Antagonist {
	return &Antagonist{Body: newBody(p, sizeOf(s, SpriteKong)), motion: m, health: health}
}

// Update applies one frame of gravity.
func (a *Antagonist) Update(platforms []Platform) { a.ApplyGravity(a.motion, platforms) }

func (a *Antagonist) Velocity() float64         { return a.VelY }
func (a *Antagonist) TerminalVelocity() float64 { return a.motion.TerminalVelocity }

// Damage lowers health, never below zero.
func (a *Antagonist) Damage(n int) {
	a.health -= n
	if a.health < 0 {
		a.health = 0
	}
}

// Health returns the remaining health.
func (a *Antagonist) Health() int { return a.health }

// Alive reports whether health is above zero.
func (a *Antagonist) Alive() bool { return a.health > 0 }

// PickupKind selects what a pickup grants.
type PickupKind int

const (
	PickupHammer PickupKind = iota
	PickupBlaster
)

// Pickup is a hammer or blaster lying in the level.
type Pickup struct {
	kind      PickupKind
	box       core.Box
	bullets   int
	collected bool
}

// NewHammer creates a hammer pickup at p.
func NewHammer(p config.Point, s Sizer) *Pickup {
	sz := sizeOf(s, SpriteHammer)
	return &Pickup{kind: PickupHammer, box: core.CenteredBox(p.X, p.Y, sz.W, sz.H)}
}

// NewBlaster creates a blaster pickup at p holding the given bullets.
func NewBlaster(p config.Point, s Sizer, bullets int) *Pickup {
	sz := sizeOf(s, SpriteBlaster)
	return &Pickup{kind: PickupBlaster, box: core.CenteredBox(p.X, p.Y, sz.W, sz.H), bullets: bullets}
}

// Kind returns what the pickup grants.
func (p *Pickup) Kind() PickupKind { return p.kind }

// Bullets returns the ammunition a blaster grants.
func (p *Pickup) Bullets() int { return p.bullets }

// Box returns the pickup's box, empty once collected.
func (p *Pickup) Box() core.Box {
	if p.collected {
		return core.Box{}
	}
	return p.box
}

// Collected reports whether the pickup was taken.
func (p *Pickup) Collected() bool { return p.collected }

// Collect retires the pickup.
func (p *Pickup) Collect() { p.collected = true }

func (p *Pickup) sprite() core.SpriteID {
	if p.kind == PickupBlaster {
		return SpriteBlaster
	}
	return SpriteHammer
}
