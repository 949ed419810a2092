package gui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-kong/internal/core"
	"github.com/vovakirdan/tui-kong/internal/games/kong"
)

var background = color.RGBA{R: 12, G: 12, B: 24, A: 255}

var spriteColors = map[core.SpriteID]color.Color{
	kong.SpritePlayerRight:        colornames.Deepskyblue,
	kong.SpritePlayerLeft:         colornames.Deepskyblue,
	kong.SpritePlayerHammerRight:  colornames.Gold,
	kong.SpritePlayerHammerLeft:   colornames.Gold,
	kong.SpritePlayerBlasterRight: colornames.Limegreen,
	kong.SpritePlayerBlasterLeft:  colornames.Limegreen,
	kong.SpriteKong:               colornames.Saddlebrown,
	kong.SpriteBarrel:             colornames.Darkorange,
	kong.SpriteLadder:             colornames.Khaki,
	kong.SpritePlatform:           colornames.Crimson,
	kong.SpriteHammer:             colornames.Silver,
	kong.SpriteBlaster:            colornames.Lightgreen,
	kong.SpriteBulletRight:        colornames.Yellow,
	kong.SpriteBulletLeft:         colornames.Yellow,
	kong.SpriteBanana:             colornames.Yellow,
	kong.SpriteMonkeyRight:        colornames.Peru,
	kong.SpriteMonkeyLeft:         colornames.Peru,
	kong.SpriteSmartMonkeyRight:   colornames.Orchid,
	kong.SpriteSmartMonkeyLeft:    colornames.Orchid,
}

func spriteColor(id core.SpriteID) color.Color {
	if c, ok := spriteColors[id]; ok {
		return c
	}
	return colornames.Magenta
}

// ImageCanvas draws sprites as filled boxes and text with the basic font.
// World units are image pixels.
type ImageCanvas struct {
	dst  *ebiten.Image
	face text.Face
}

// NewImageCanvas creates a canvas drawing onto dst.
func NewImageCanvas(dst *ebiten.Image, face text.Face) *ImageCanvas {
	return &ImageCanvas{dst: dst, face: face}
}

func defaultFace() text.Face {
	return text.NewGoXFace(basicfont.Face7x13)
}

// DrawSprite fills b with the sprite's colour.
func (c *ImageCanvas) DrawSprite(id core.SpriteID, b core.Box) {
	if b.Empty() {
		return
	}
	vector.FillRect(c.dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), spriteColor(id), false)
}

// DrawText draws text with its baseline at y.
func (c *ImageCanvas) DrawText(x, y float64, s string) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-c.face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(colornames.White)
	text.Draw(c.dst, s, c.face, op)
}

// TextWidth returns the advance of s in pixels.
func (c *ImageCanvas) TextWidth(s string) float64 {
	return text.Advance(s, c.face)
}
