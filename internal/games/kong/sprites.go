package kong

import (
	"github.com/vovakirdan/tui-kong/internal/config"
	"github.com/vovakirdan/tui-kong/internal/core"
)

// Sprite identifiers. Their names match the keys of the sprites table in
// the configuration.
const (
	SpritePlayerRight        core.SpriteID = "player_right"
	SpritePlayerLeft         core.SpriteID = "player_left"
	SpritePlayerHammerRight  core.SpriteID = "player_hammer_right"
	SpritePlayerHammerLeft   core.SpriteID = "player_hammer_left"
	SpritePlayerBlasterRight core.SpriteID = "player_blaster_right"
	SpritePlayerBlasterLeft  core.SpriteID = "player_blaster_left"
	SpriteKong               core.SpriteID = "kong"
	SpriteBarrel             core.SpriteID = "barrel"
	SpriteLadder             core.SpriteID = "ladder"
	SpritePlatform           core.SpriteID = "platform"
	SpriteHammer             core.SpriteID = "hammer"
	SpriteBlaster            core.SpriteID = "blaster"
	SpriteBulletRight        core.SpriteID = "bullet_right"
	SpriteBulletLeft         core.SpriteID = "bullet_left"
	SpriteBanana             core.SpriteID = "banana"
	SpriteMonkeyRight        core.SpriteID = "monkey_right"
	SpriteMonkeyLeft         core.SpriteID = "monkey_left"
	SpriteSmartMonkeyRight   core.SpriteID = "smart_monkey_right"
	SpriteSmartMonkeyLeft    core.SpriteID = "smart_monkey_left"
)

// Sprites lists every sprite the game draws.
var Sprites = []core.SpriteID{
	SpritePlayerRight, SpritePlayerLeft,
	SpritePlayerHammerRight, SpritePlayerHammerLeft,
	SpritePlayerBlasterRight, SpritePlayerBlasterLeft,
	SpriteKong, SpriteBarrel, SpriteLadder, SpritePlatform,
	SpriteHammer, SpriteBlaster, SpriteBulletRight, SpriteBulletLeft,
	SpriteBanana, SpriteMonkeyRight, SpriteMonkeyLeft,
	SpriteSmartMonkeyRight, SpriteSmartMonkeyLeft,
}

// Sizer looks up sprite dimensions. Entities read it once at construction.
type Sizer interface {
	SpriteSize(name string) config.Size
}

func sizeOf(s Sizer, id core.SpriteID) config.Size {
	return s.SpriteSize(string(id))
}

func facing(right bool, r, l core.SpriteID) core.SpriteID {
	if right {
		return r
	}
	return l
}
