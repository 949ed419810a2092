package kong

import (
	"math"

	"github.com/vovakirdan/tui-kong/internal/config"
	"github.com/vovakirdan/tui-kong/internal/core"
)

// MonkeyKind selects a monkey's look and whether it throws bananas.
type MonkeyKind int

const (
	MonkeyNormal MonkeyKind = iota
	MonkeySmart
)

// ledgeEpsilon is how far apart two platform tops may be and still count as
// one walkable ledge.
const ledgeEpsilon = 0.5

// Monkey patrols a route of step counts on the ledge it stands on, turning
// around at the world edge, at the ledge edge, or when a segment is done.
// Smart monkeys also throw bananas on a fixed cadence.
type Monkey struct {
	Body
	kind   MonkeyKind
	phys   config.MonkeyPhysics
	worldW float64

	alive    bool
	credited bool
	right    bool

	route    []int
	segment  int
	moved    int
	reversed bool // latched for the current frame

	cooldown int
	interval int
	sizes    Sizer
	banana   config.ProjectilePhysics
}

// MonkeyOptions carries the world parameters a monkey needs.
type MonkeyOptions struct {
	Physics        config.MonkeyPhysics
	WorldWidth     float64
	Banana         config.ProjectilePhysics
	BananaInterval int
	// InitialCooldown staggers the first throw of smart monkeys.
	InitialCooldown int
}

// NewMonkey creates a monkey from its spawn description.
func NewMonkey(kind MonkeyKind, spawn config.MonkeySpawn, s Sizer, opts MonkeyOptions) *Monkey {
	m := &Monkey{
		kind:     kind,
		phys:     opts.Physics,
		worldW:   opts.WorldWidth,
		alive:    true,
		right:    spawn.FacingRight,
		route:    append([]int(nil), spawn.Route...),
		cooldown: opts.InitialCooldown,
		interval: opts.BananaInterval,
		sizes:    s,
		banana:   opts.Banana,
	}
	m.Body = newBody(spawn.Pos, sizeOf(s, m.sprite()))
	return m
}

// Update runs one frame: gravity, platform resolution, then one route step.
func (m *Monkey) Update(platforms []Platform) {
	if !m.alive {
		return
	}
	m.reversed = false
	m.ApplyGravity(m.phys.Motion, platforms)
	m.walk(platforms)
}

func (m *Monkey) Velocity() float64         { return m.VelY }
func (m *Monkey) TerminalVelocity() float64 { return m.phys.TerminalVelocity }

// Throw advances a smart monkey's cooldown and returns a banana when it is
// due. Normal and dead monkeys never throw.
func (m *Monkey) Throw() *Projectile {
	if m.kind != MonkeySmart || !m.alive {
		return nil
	}
	m.cooldown++
	if m.cooldown < m.interval {
		return nil
	}
	m.cooldown = 0
	return NewBanana(m.X, m.Y, m.right, m.sizes, m.banana)
}

func (m *Monkey) walk(platforms []Platform) {
	if len(m.route) == 0 {
		return
	}
	left, right, ok := m.ledge(platforms)
	if !ok {
		return // airborne: only falls
	}

	half := m.W / 2
	next := m.X - m.phys.MoveSpeed
	if m.right {
		next = m.X + m.phys.MoveSpeed
	}

	switch {
	case next-half < 0 || next+half > m.worldW:
		m.reverse()
	case m.right && next+half > right, !m.right && next-half < left:
		m.reverse()
	case m.moved >= m.route[m.segment]:
		m.reverse()
	default:
		m.X = next
		m.moved++
	}
}

func (m *Monkey) reverse() {
	if m.reversed {
		return
	}
	m.moved = 0
	m.segment = (m.segment + 1) % len(m.route)
	m.right = !m.right
	m.reversed = true
}

// ledge returns the horizontal extent of the platform run the monkey rests
// on. Resting allows a small vertical tolerance between feet and platform.
func (m *Monkey) ledge(platforms []Platform) (left, right float64, ok bool) {
	box := m.Box()
	for _, p := range platforms {
		pb := p.Box()
		if box.OverlapsX(pb) && math.Abs(box.Bottom()-pb.Top()) <= m.phys.PlatformTolerance {
			left, right = ledgeSpan(platforms, pb)
			return left, right, true
		}
	}
	return 0, 0, false
}

// ledgeSpan grows start over neighbouring platforms with the same top.
func ledgeSpan(platforms []Platform, start core.Box) (left, right float64) {
	left, right = start.Left(), start.Right()
	for grown := true; grown; {
		grown = false
		for _, p := range platforms {
			pb := p.Box()
			if math.Abs(pb.Top()-start.Top()) > ledgeEpsilon {
				continue
			}
			if pb.Left() > right+ledgeEpsilon || pb.Right() < left-ledgeEpsilon {
				continue
			}
			if pb.Left() < left {
				left, grown = pb.Left(), true
			}
			if pb.Right() > right {
				right, grown = pb.Right(), true
			}
		}
	}
	return left, right
}

// Kill marks the monkey dead. Dead monkeys stop moving and drawing.
func (m *Monkey) Kill() { m.alive = false }

// Alive reports whether the monkey is still patrolling.
func (m *Monkey) Alive() bool { return m.alive }

// Box returns the monkey's box, empty once dead.
func (m *Monkey) Box() core.Box {
	if !m.alive {
		return core.Box{}
	}
	return m.Body.Box()
}

// credit reports true the first time it is called for a dead monkey.
func (m *Monkey) credit() bool {
	if m.alive || m.credited {
		return false
	}
	m.credited = true
	return true
}

// Kind returns the monkey variant.
func (m *Monkey) Kind() MonkeyKind { return m.kind }

// FacingRight reports the walking direction.
func (m *Monkey) FacingRight() bool { return m.right }

// Segment returns the index of the current route segment.
func (m *Monkey) Segment() int { return m.segment }

// Moved returns the steps taken in the current segment.
func (m *Monkey) Moved() int { return m.moved }

// Reversed reports whether the monkey turned around this frame.
func (m *Monkey) Reversed() bool { return m.reversed }

// Cooldown returns the frames since the last throw.
func (m *Monkey) Cooldown() int { return m.cooldown }

func (m *Monkey) sprite() core.SpriteID {
	if m.kind == MonkeySmart {
		return facing(m.right, SpriteSmartMonkeyRight, SpriteSmartMonkeyLeft)
	}
	return facing(m.right, SpriteMonkeyRight, SpriteMonkeyLeft)
}
