package kong

import (
	"math"

	"github.com/vovakirdan/tui-kong/internal/config"
	"github.com/vovakirdan/tui-kong/internal/core"
)

// Weapon is the player's active weapon.
type Weapon int

const (
	WeaponNone Weapon = iota
	WeaponHammer
	WeaponBlaster
)

// String returns the weapon name.
func (w Weapon) String() string {
	switch w {
	case WeaponHammer:
		return "hammer"
	case WeaponBlaster:
		return "blaster"
	default:
		return "none"
	}
}

// ladderEpsilon absorbs float drift when comparing feet to ladder ends.
const ladderEpsilon = 1e-6

// World is what the player interacts with during its update.
type World struct {
	Platforms []Platform
	Ladders   []*Ladder
	Hammers   []*Pickup
	Blasters  []*Pickup
	Kong      *Antagonist
	Monkeys   []*Monkey
	Width     float64
	Height    float64
}

// Player is the climber controlled by input.
type Player struct {
	X, Y float64
	W, H float64
	VelY float64

	right   bool
	jumping bool
	jumps   int // number of jumps started; identifies the current jump

	weapon  Weapon
	bullets int
	shots   []*Projectile

	phys       config.PlayerPhysics
	bulletPhys config.ProjectilePhysics
	sizes      Sizer
}

// NewPlayer creates a player standing at p, facing right.
func NewPlayer(p config.Point, s Sizer, phys config.PlayerPhysics, bullet config.ProjectilePhysics) *Player {
	pl := &Player{X: p.X, Y: p.Y, right: true, phys: phys, bulletPhys: bullet, sizes: s}
	sz := sizeOf(s, pl.sprite())
	pl.W, pl.H = sz.W, sz.H
	return pl
}

// Box returns the player's bounding box.
func (p *Player) Box() core.Box {
	return core.CenteredBox(p.X, p.Y, p.W, p.H)
}

// Bottom returns the y-coordinate of the player's feet.
func (p *Player) Bottom() float64 { return p.Y + p.H/2 }

func (p *Player) setBottom(y float64) { p.Y = y - p.H/2 }

// Update runs one frame of player control. The order of the steps is
// significant: later steps see the results of earlier ones.
func (p *Player) Update(in core.InputFrame, w *World) {
	p.move(in)
	p.resize()
	p.collect(w)
	if in.Pressed(core.ActionFire) {
		p.fire()
	}
	p.updateShots(w)

	onLadder := p.climb(in, w.Ladders)
	if !onLadder {
		p.VelY += p.phys.Gravity
		if p.VelY > p.phys.TerminalVelocity {
			p.VelY = p.phys.TerminalVelocity
		}
	}
	p.Y += p.VelY

	grounded := p.land(w.Platforms)
	if grounded && in.Pressed(core.ActionJump) {
		p.VelY = p.phys.JumpSpeed
		p.jumping = true
		p.jumps++
	}
	p.clamp(w.Width, w.Height)
}

func (p *Player) move(in core.InputFrame) {
	switch {
	case in.Held(core.ActionLeft):
		p.X -= p.phys.MoveSpeed
		p.right = false
	case in.Held(core.ActionRight):
		p.X += p.phys.MoveSpeed
		p.right = true
	}
}

// resize picks the sprite for the current weapon and facing, keeping the
// feet where they were.
func (p *Player) resize() {
	bottom := p.Bottom()
	sz := sizeOf(p.sizes, p.sprite())
	p.W, p.H = sz.W, sz.H
	p.setBottom(bottom)
}

func (p *Player) collect(w *World) {
	box := p.Box()
	for _, h := range touching(box, w.Hammers) {
		p.takeHammer()
		h.Collect()
	}
	for _, b := range touching(box, w.Blasters) {
		p.takeBlaster(b.Bullets())
		b.Collect()
	}
}

func (p *Player) takeHammer() {
	p.weapon = WeaponHammer
	p.bullets = 0
}

// takeBlaster adds ammunition. Switching from the hammer drops it.
func (p *Player) takeBlaster(n int) {
	if n <= 0 {
		return
	}
	if p.weapon != WeaponBlaster {
		p.weapon = WeaponBlaster
		p.bullets = 0
	}
	p.bullets += n
}

func (p *Player) fire() {
	if p.weapon != WeaponBlaster || p.bullets <= 0 {
		return
	}
	p.shots = append(p.shots, NewBullet(p.X, p.Y, p.right, p.sizes, p.bulletPhys))
	p.bullets--
	if p.bullets == 0 {
		p.weapon = WeaponNone
	}
}

// updateShots advances bullets. Each bullet resolves at most one hit, in
// the order Kong, platform, monkey.
func (p *Player) updateShots(w *World) {
	for _, s := range p.shots {
		if !s.Advance(w.Width) {
			continue
		}
		box := s.Box()
		if w.Kong != nil && box.Intersects(w.Kong.Box()) {
			w.Kong.Damage(1)
			s.Deactivate()
			continue
		}
		if hitsPlatform(box, w.Platforms) {
			s.Deactivate()
			continue
		}
		for _, m := range w.Monkeys {
			if m.Alive() && box.Intersects(m.Box()) {
				m.Kill()
				s.Deactivate()
				break
			}
		}
	}
	p.shots = cullInactive(p.shots)
}

func hitsPlatform(box core.Box, platforms []Platform) bool {
	for _, pl := range platforms {
		if box.Intersects(pl.Box()) {
			return true
		}
	}
	return false
}

// climb resolves ladders and reports whether the player is on one. On a
// ladder gravity is suspended and the player only moves while Up or Down
// is held, never past the ladder's ends.
func (p *Player) climb(in core.InputFrame, ladders []*Ladder) bool {
	up, down := in.Held(core.ActionUp), in.Held(core.ActionDown)
	onLadder := false
	for _, l := range ladders {
		lb := l.Box()
		if p.X <= lb.Left() || p.X >= lb.Right() {
			continue
		}
		bottom := p.Bottom()

		if !p.Box().Intersects(lb) {
			switch {
			case down && near(bottom, lb.Top()):
				// Step onto the ladder from above
				p.Y += p.phys.ClimbSpeed
				p.VelY = 0
			case down && near(bottom, lb.Bottom()):
				p.VelY = 0
			}
			continue
		}

		onLadder = true
		if !up && !down {
			p.VelY = 0
		}
		if up {
			p.Y -= p.phys.ClimbSpeed
			p.VelY = 0
			if p.Bottom() < lb.Top() {
				p.setBottom(lb.Top())
			}
		}
		if down {
			next := bottom + p.phys.ClimbSpeed
			switch {
			case bottom > lb.Top() && next <= lb.Bottom()+ladderEpsilon:
				p.Y += p.phys.ClimbSpeed
			case near(bottom, lb.Bottom()):
			case lb.Bottom()-bottom < p.phys.ClimbSpeed:
				p.setBottom(lb.Bottom())
			}
			p.VelY = 0
		}
	}
	return onLadder
}

func near(a, b float64) bool {
	return math.Abs(a-b) <= ladderEpsilon
}

// land snaps the player onto a platform when falling onto it this frame.
func (p *Player) land(platforms []Platform) bool {
	if p.VelY < 0 {
		return false
	}
	for _, pl := range platforms {
		pb := pl.Box()
		if p.Box().Intersects(pb) && p.Bottom() <= pb.Top()+p.VelY {
			p.setBottom(pb.Top())
			p.VelY = 0
			p.jumping = false
			return true
		}
	}
	return false
}

func (p *Player) clamp(worldW, worldH float64) {
	half := p.W / 2
	if p.X < half {
		p.X = half
	}
	if p.X > worldW-half {
		p.X = worldW - half
	}
	if p.Bottom() > worldH {
		p.setBottom(worldH)
		p.VelY = 0
		p.jumping = false
	}
}

// JumpsOver reports whether the player is mid-jump above the barrel, within
// the horizontal tolerance and the height a jump can clear.
func (p *Player) JumpsOver(b *Barrel, tolerance float64) bool {
	if !p.jumping || b.Destroyed() {
		return false
	}
	apex := p.phys.JumpSpeed * p.phys.JumpSpeed / (2 * p.phys.Gravity)
	return math.Abs(p.X-b.X) <= tolerance &&
		p.Y < b.Y &&
		p.Bottom() >= b.Bottom()-apex-p.H/2
}

// HasHammer reports whether the hammer is the active weapon.
func (p *Player) HasHammer() bool { return p.weapon == WeaponHammer }

// HasBlaster reports whether a loaded blaster is the active weapon.
func (p *Player) HasBlaster() bool { return p.weapon == WeaponBlaster && p.bullets > 0 }

// Weapon returns the active weapon.
func (p *Player) Weapon() Weapon { return p.weapon }

// Bullets returns the remaining ammunition.
func (p *Player) Bullets() int { return p.bullets }

// Shots returns the bullets in flight.
func (p *Player) Shots() []*Projectile { return p.shots }

// Jumping reports whether the player is in a jump.
func (p *Player) Jumping() bool { return p.jumping }

// JumpNumber identifies the current jump; it grows with every jump started.
func (p *Player) JumpNumber() int { return p.jumps }

// FacingRight reports the facing direction.
func (p *Player) FacingRight() bool { return p.right }

func (p *Player) sprite() core.SpriteID {
	switch p.weapon {
	case WeaponHammer:
		return facing(p.right, SpritePlayerHammerRight, SpritePlayerHammerLeft)
	case WeaponBlaster:
		return facing(p.right, SpritePlayerBlasterRight, SpritePlayerBlasterLeft)
	default:
		return facing(p.right, SpritePlayerRight, SpritePlayerLeft)
	}
}
