package kong

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-kong/internal/config"
	"github.com/vovakirdan/tui-kong/internal/core"
)

// Outcome is the state of a level.
type Outcome int

const (
	OutcomePlaying Outcome = iota
	OutcomeWon
	OutcomeLostByContact // touched a barrel, monkey or Kong without the hammer
	OutcomeLostByHazard  // hit by a banana
	OutcomeTimedOut
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomePlaying:
		return "playing"
	case OutcomeWon:
		return "won"
	case OutcomeLostByContact:
		return "lost by contact"
	case OutcomeLostByHazard:
		return "lost by hazard"
	case OutcomeTimedOut:
		return "timed out"
	default:
		return "unknown"
	}
}

// blasterLevel is the level Kong can be shot down in.
const blasterLevel = 2

// Level owns every entity of one level and steps them in a fixed order:
// ladders, barrels, monkeys, bananas, Kong, player, then scoring.
type Level struct {
	number  int
	cfg     config.KongConfig
	frame   int
	score   int
	outcome Outcome

	platforms []Platform
	ladders   []*Ladder
	barrels   []*Barrel
	hammers   []*Pickup
	blasters  []*Pickup
	monkeys   []*Monkey
	bananas   []*Projectile
	kong      *Antagonist
	player    *Player
}

// NewLevel builds level number (1-based) from cfg. The level starts with
// startScore. rng staggers the first banana of each smart monkey.
func NewLevel(number int, cfg config.KongConfig, startScore int, rng *rand.Rand) (*Level, error) {
	lc, ok := cfg.Level(number)
	if !ok {
		return nil, fmt.Errorf("kong: level %d is not configured", number)
	}

	ph := cfg.Physics
	l := &Level{
		number: number,
		cfg:    cfg,
		score:  startScore,
		kong:   NewAntagonist(lc.Kong, cfg, ph.Kong, cfg.Combat.KongHealth),
		player: NewPlayer(lc.Player, cfg, ph.Player, ph.Bullet),
	}

	platformSize := cfg.SpriteSize(string(SpritePlatform))
	for _, p := range lc.Platforms {
		l.platforms = append(l.platforms, NewPlatform(p, platformSize))
	}
	for _, p := range lc.Ladders {
		l.ladders = append(l.ladders, NewLadder(p, cfg, ph.Ladder))
	}
	for _, p := range lc.Barrels {
		l.barrels = append(l.barrels, NewBarrel(p, cfg, ph.Barrel))
	}
	for _, p := range lc.Hammers {
		l.hammers = append(l.hammers, NewHammer(p, cfg))
	}
	for _, p := range lc.Blasters {
		l.blasters = append(l.blasters, NewBlaster(p, cfg, cfg.Combat.BlasterBullets))
	}

	opts := MonkeyOptions{
		Physics:        ph.Monkey,
		WorldWidth:     cfg.Window.Width,
		Banana:         ph.Banana,
		BananaInterval: cfg.Combat.BananaInterval,
	}
	for _, s := range lc.Monkeys {
		l.monkeys = append(l.monkeys, NewMonkey(MonkeyNormal, s, cfg, opts))
	}
	for _, s := range lc.SmartMonkeys {
		o := opts
		if cfg.Combat.BananaStagger > 0 && rng != nil {
			o.InitialCooldown = rng.Intn(cfg.Combat.BananaStagger)
		}
		l.monkeys = append(l.monkeys, NewMonkey(MonkeySmart, s, cfg, o))
	}
	return l, nil
}

// Update advances the level one frame and reports whether it has concluded.
// A concluded level ignores further updates.
func (l *Level) Update(in core.InputFrame) bool {
	if l.outcome != OutcomePlaying {
		return true
	}
	l.frame++

	for _, ld := range l.ladders {
		ld.Update(l.platforms)
	}

	l.updateBarrels()
	l.updateMonkeys()
	l.updateBananas()

	if l.frame >= l.cfg.Gameplay.MaxFrames {
		l.conclude(OutcomeTimedOut)
	}

	l.kong.Update(l.platforms)
	l.player.Update(in, l.world())

	// Monkeys shot this frame
	for _, m := range l.monkeys {
		if m.credit() {
			l.addScore(l.cfg.Scoring.MonkeyDefeat)
		}
	}

	if l.player.Box().Intersects(l.kong.Box()) {
		if l.player.HasHammer() {
			l.conclude(OutcomeWon)
		} else {
			l.conclude(OutcomeLostByContact)
		}
	}
	// Only the blaster level can be won by shooting Kong down.
	if l.number == blasterLevel && !l.kong.Alive() {
		l.conclude(OutcomeWon)
	}

	return l.outcome != OutcomePlaying
}

func (l *Level) updateBarrels() {
	tol := l.cfg.Combat.JumpOverTolerance
	for _, b := range l.barrels {
		if b.Destroyed() {
			continue
		}
		if l.player.JumpsOver(b, tol) && b.jumpedBy != l.player.JumpNumber() {
			b.jumpedBy = l.player.JumpNumber()
			l.addScore(l.cfg.Scoring.BarrelJump)
		}
		if l.player.Box().Intersects(b.Box()) {
			if l.player.HasHammer() {
				b.Destroy()
				l.addScore(l.cfg.Scoring.BarrelDestroy)
			} else {
				l.conclude(OutcomeLostByContact)
			}
		}
		b.Update(l.platforms)
	}
}

func (l *Level) updateMonkeys() {
	for _, m := range l.monkeys {
		if !m.Alive() {
			continue
		}
		m.Update(l.platforms)
		if banana := m.Throw(); banana != nil {
			l.bananas = append(l.bananas, banana)
		}
		if l.player.Box().Intersects(m.Box()) {
			if l.player.HasHammer() {
				m.Kill()
				if m.credit() {
					l.addScore(l.cfg.Scoring.MonkeyDefeat)
				}
			} else {
				l.conclude(OutcomeLostByContact)
			}
		}
	}
}

// updateBananas moves bananas. A banana touching the player always kills,
// hammer or not. Bananas pass through platforms.
func (l *Level) updateBananas() {
	for _, b := range l.bananas {
		if !b.Advance(l.cfg.Window.Width) {
			continue
		}
		if l.player.Box().Intersects(b.Box()) {
			l.conclude(OutcomeLostByHazard)
		}
	}
	l.bananas = cullInactive(l.bananas)
}

func (l *Level) world() *World {
	return &World{
		Platforms: l.platforms,
		Ladders:   l.ladders,
		Hammers:   l.hammers,
		Blasters:  l.blasters,
		Kong:      l.kong,
		Monkeys:   l.monkeys,
		Width:     l.cfg.Window.Width,
		Height:    l.cfg.Window.Height,
	}
}

// conclude records the first terminal outcome; later ones are ignored.
func (l *Level) conclude(o Outcome) {
	if l.outcome == OutcomePlaying {
		l.outcome = o
	}
}

// addScore awards points while the level is still being played.
func (l *Level) addScore(n int) {
	if l.outcome == OutcomePlaying {
		l.score += n
	}
}

// Number returns the level number.
func (l *Level) Number() int { return l.number }

// Frame returns the frames elapsed.
func (l *Level) Frame() int { return l.frame }

// Score returns the accumulated score.
func (l *Level) Score() int { return l.score }

// ReportedScore is the score handed on when the level ends: zero after a
// death, the accumulated score otherwise.
func (l *Level) ReportedScore() int {
	if l.Lost() {
		return 0
	}
	return l.score
}

// SecondsLeft returns the whole seconds remaining on the level clock.
func (l *Level) SecondsLeft() int {
	left := l.cfg.Gameplay.MaxFrames - l.frame
	if left < 0 {
		left = 0
	}
	return left / l.cfg.Gameplay.FramesPerSecond
}

// TimeBonus is the reward for the seconds left.
func (l *Level) TimeBonus() int {
	return l.SecondsLeft() * l.cfg.Gameplay.TimeBonusPerSecond
}

// Outcome returns the level state.
func (l *Level) Outcome() Outcome { return l.outcome }

// Concluded reports whether the level has ended.
func (l *Level) Concluded() bool { return l.outcome != OutcomePlaying }

// Won reports whether the level was won.
func (l *Level) Won() bool { return l.outcome == OutcomeWon }

// TimedOut reports whether the clock ran out.
func (l *Level) TimedOut() bool { return l.outcome == OutcomeTimedOut }

// Lost reports a death: contact without the hammer or a banana hit.
func (l *Level) Lost() bool {
	return l.outcome == OutcomeLostByContact || l.outcome == OutcomeLostByHazard
}

// Player returns the player.
func (l *Level) Player() *Player { return l.player }

// Kong returns the antagonist.
func (l *Level) Kong() *Antagonist { return l.kong }

// Barrels returns the barrels.
func (l *Level) Barrels() []*Barrel { return l.barrels }

// Monkeys returns all monkeys, normal ones first.
func (l *Level) Monkeys() []*Monkey { return l.monkeys }

// Bananas returns the bananas in flight.
func (l *Level) Bananas() []*Projectile { return l.bananas }

// Ladders returns the ladders.
func (l *Level) Ladders() []*Ladder { return l.ladders }

// Platforms returns the platforms.
func (l *Level) Platforms() []Platform { return l.platforms }

// Hammers returns the hammer pickups.
func (l *Level) Hammers() []*Pickup { return l.hammers }

// Blasters returns the blaster pickups.
func (l *Level) Blasters() []*Pickup { return l.blasters }
