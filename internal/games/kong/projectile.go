package kong

import (
	"github.com/vovakirdan/tui-kong/internal/config"
	"github.com/vovakirdan/tui-kong/internal/core"
)

// ProjectileKind selects a projectile's behaviour and look.
type ProjectileKind int

const (
	ProjectileBanana ProjectileKind = iota
	ProjectileBullet
)

// Projectile travels horizontally at a fixed speed until it runs out of
// range, leaves the world (bullets only) or hits something.
type Projectile struct {
	kind     ProjectileKind
	X, Y     float64
	w, h     float64
	right    bool
	speed    float64
	maxDist  float64
	traveled float64
	active   bool
}

// NewBanana creates a banana thrown from (x, y).
func NewBanana(x, y float64, right bool, s Sizer, phys config.ProjectilePhysics) *Projectile {
	sz := sizeOf(s, SpriteBanana)
	return &Projectile{
		kind: ProjectileBanana, X: x, Y: y, w: sz.W, h: sz.H, right: right,
		speed: phys.Speed, maxDist: phys.MaxDistance, active: true,
	}
}

// NewBullet creates a bullet fired from (x, y).
func NewBullet(x, y float64, right bool, s Sizer, phys config.ProjectilePhysics) *Projectile {
	sz := sizeOf(s, facing(right, SpriteBulletRight, SpriteBulletLeft))
	return &Projectile{
		kind: ProjectileBullet, X: x, Y: y, w: sz.W, h: sz.H, right: right,
		speed: phys.Speed, maxDist: phys.MaxDistance, active: true,
	}
}

// Advance moves the projectile one frame and reports whether it is still
// active. Inactive projectiles never move again.
func (p *Projectile) Advance(worldW float64) bool {
	if !p.active {
		return false
	}
	if p.right {
		p.X += p.speed
	} else {
		p.X -= p.speed
	}
	p.traveled += p.speed
	if p.traveled >= p.maxDist {
		p.active = false
		return false
	}
	if p.kind == ProjectileBullet && (p.X < 0 || p.X > worldW) {
		p.active = false
		return false
	}
	return true
}

// Box returns the projectile's box, empty once inactive.
func (p *Projectile) Box() core.Box {
	if !p.active {
		return core.Box{}
	}
	return core.CenteredBox(p.X, p.Y, p.w, p.h)
}

// Active reports whether the projectile is still in flight.
func (p *Projectile) Active() bool { return p.active }

// Deactivate ends the projectile's flight. It cannot be reactivated.
func (p *Projectile) Deactivate() { p.active = false }

// Kind returns the projectile's kind.
func (p *Projectile) Kind() ProjectileKind { return p.kind }

// Traveled returns the distance covered so far.
func (p *Projectile) Traveled() float64 { return p.traveled }

// FacingRight reports the direction of travel.
func (p *Projectile) FacingRight() bool { return p.right }

func (p *Projectile) sprite() core.SpriteID {
	if p.kind == ProjectileBanana {
		return SpriteBanana
	}
	return facing(p.right, SpriteBulletRight, SpriteBulletLeft)
}
