package kong

import (
	"github.com/vovakirdan/tui-kong/internal/config"
	"github.com/vovakirdan/tui-kong/internal/core"
)

// Body is the kinematic state of a gravity-affected entity.
// X/Y is the centre; W/H are fixed at construction from the sprite size.
type Body struct {
	X, Y float64
	W, H float64
	VelY float64
}

func newBody(p config.Point, size config.Size) Body {
	return Body{X: p.X, Y: p.Y, W: size.W, H: size.H}
}

// Box returns the bounding box centred on the body.
func (b *Body) Box() core.Box {
	return core.CenteredBox(b.X, b.Y, b.W, b.H)
}

// Bottom returns the y-coordinate of the body's feet.
func (b *Body) Bottom() float64 {
	return b.Y + b.H/2
}

// SetBottom moves the body so its feet are at y.
func (b *Body) SetBottom(y float64) {
	b.Y = y - b.H/2
}

// Fall accelerates the body by g, clamps to the terminal velocity and
// integrates the position.
func (b *Body) Fall(g config.Motion) {
	b.VelY += g.Gravity
	if b.VelY > g.TerminalVelocity {
		b.VelY = g.TerminalVelocity
	}
	b.Y += b.VelY
}

// SettleOn snaps the body onto the first platform it intersects and stops
// it. Platforms are assumed not to overlap each other.
func (b *Body) SettleOn(platforms []Platform) bool {
	box := b.Box()
	for _, p := range platforms {
		if box.Intersects(p.Box()) {
			b.SetBottom(p.Box().Top())
			b.VelY = 0
			return true
		}
	}
	return false
}

// ApplyGravity is one frame of falling followed by platform resolution.
func (b *Body) ApplyGravity(g config.Motion, platforms []Platform) bool {
	b.Fall(g)
	return b.SettleOn(platforms)
}

// HasGravity is implemented by entities that fall onto platforms each frame.
type HasGravity interface {
	Update(platforms []Platform)
	Velocity() float64
	TerminalVelocity() float64
}

// HasLifespan is implemented by entities that expire.
type HasLifespan interface {
	Active() bool
	Deactivate()
}

// Collectible is implemented by pickups.
type Collectible interface {
	Box() core.Box
	Collected() bool
	Collect()
}

// touching returns the uncollected items overlapping box, in order.
func touching[T Collectible](box core.Box, items []T) []T {
	var out []T
	for _, it := range items {
		if !it.Collected() && box.Intersects(it.Box()) {
			out = append(out, it)
		}
	}
	return out
}

// cullInactive drops expired entities, keeping order.
func cullInactive[T HasLifespan](items []T) []T {
	out := items[:0]
	for _, it := range items {
		if it.Active() {
			out = append(out, it)
		}
	}
	clear(items[len(out):])
	return out
}

// Platform is a static floor tile.
type Platform struct {
	box core.Box
}

// NewPlatform creates a platform centred on p.
func NewPlatform(p config.Point, size config.Size) Platform {
	return Platform{box: core.CenteredBox(p.X, p.Y, size.W, size.H)}
}

// Box returns the platform's bounding box.
func (p Platform) Box() core.Box {
	return p.box
}
