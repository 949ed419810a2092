package tui

import (
	"math"

	"github.com/vovakirdan/tui-kong/internal/core"
	"github.com/vovakirdan/tui-kong/internal/games/kong"
)

// glyph is how a sprite looks in a terminal cell.
type glyph struct {
	Rune  rune
	Color core.Color
}

var glyphs = map[core.SpriteID]glyph{
	kong.SpritePlayerRight:        {'@', core.ColorBrightCyan},
	kong.SpritePlayerLeft:         {'@', core.ColorBrightCyan},
	kong.SpritePlayerHammerRight:  {'@', core.ColorBrightYellow},
	kong.SpritePlayerHammerLeft:   {'@', core.ColorBrightYellow},
	kong.SpritePlayerBlasterRight: {'@', core.ColorGreen},
	kong.SpritePlayerBlasterLeft:  {'@', core.ColorGreen},
	kong.SpriteKong:               {'#', core.ColorRed},
	kong.SpriteBarrel:             {'o', core.ColorOrange},
	kong.SpriteLadder:             {'H', core.ColorYellow},
	kong.SpritePlatform:           {'=', core.ColorBrown},
	kong.SpriteHammer:             {'T', core.ColorBrightYellow},
	kong.SpriteBlaster:            {'r', core.ColorGreen},
	kong.SpriteBulletRight:        {'-', core.ColorBrightYellow},
	kong.SpriteBulletLeft:         {'-', core.ColorBrightYellow},
	kong.SpriteBanana:             {')', core.ColorYellow},
	kong.SpriteMonkeyRight:        {'m', core.ColorMagenta},
	kong.SpriteMonkeyLeft:         {'m', core.ColorMagenta},
	kong.SpriteSmartMonkeyRight:   {'M', core.ColorBrightRed},
	kong.SpriteSmartMonkeyLeft:    {'M', core.ColorBrightRed},
}

var unknownGlyph = glyph{'?', core.ColorGray}

// ScreenCanvas draws world coordinates onto a character screen, scaling the
// world to fit. Every sprite covers at least one cell.
type ScreenCanvas struct {
	screen *core.Screen
	worldW float64
	worldH float64
	text   core.Color
}

// NewScreenCanvas creates a canvas mapping a worldW x worldH world onto s.
func NewScreenCanvas(s *core.Screen, worldW, worldH float64) *ScreenCanvas {
	return &ScreenCanvas{screen: s, worldW: worldW, worldH: worldH, text: core.ColorWhite}
}

// SetWorld changes the world size being mapped.
func (c *ScreenCanvas) SetWorld(w, h float64) {
	c.worldW, c.worldH = w, h
}

func (c *ScreenCanvas) scale() (sx, sy float64) {
	if c.worldW <= 0 || c.worldH <= 0 {
		return 0, 0
	}
	return float64(c.screen.Width()) / c.worldW, float64(c.screen.Height()) / c.worldH
}

// cells maps a world box to the cells it touches.
func (c *ScreenCanvas) cells(b core.Box) core.Rect {
	sx, sy := c.scale()
	x0 := int(math.Floor(b.Left() * sx))
	y0 := int(math.Floor(b.Top() * sy))
	x1 := int(math.Ceil(b.Right() * sx))
	y1 := int(math.Ceil(b.Bottom() * sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// DrawSprite fills the cells under b with the sprite's glyph.
func (c *ScreenCanvas) DrawSprite(id core.SpriteID, b core.Box) {
	if b.Empty() {
		return
	}
	g, ok := glyphs[id]
	if !ok {
		g = unknownGlyph
	}
	c.screen.FillRect(c.cells(b), g.Rune, g.Color)
}

// DrawText writes text starting at the cell under (x, y).
func (c *ScreenCanvas) DrawText(x, y float64, text string) {
	sx, sy := c.scale()
	col := int(math.Round(x * sx))
	row := int(y * sy)
	if row >= c.screen.Height() {
		row = c.screen.Height() - 1
	}
	i := 0
	for _, r := range text {
		c.screen.SetColored(col+i, row, r, c.text)
		i++
	}
}

// TextWidth returns the world width of text, one cell per rune.
func (c *ScreenCanvas) TextWidth(text string) float64 {
	sx, _ := c.scale()
	if sx == 0 {
		return 0
	}
	return float64(len([]rune(text))) / sx
}
