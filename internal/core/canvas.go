package core

// SpriteID names a visual. Games decide which sprite an entity uses at
// construction; frontends decide how a sprite looks.
type SpriteID string

// Canvas is the drawing surface a game renders into once per frame.
// Coordinates are world units; frontends scale them to their output.
type Canvas interface {
	// DrawSprite draws the sprite filling the given world box.
	DrawSprite(id SpriteID, b Box)

	// DrawText draws a line of text with its left edge at x and its
	// baseline row at y.
	DrawText(x, y float64, text string)

	// TextWidth returns the width of text in world units.
	TextWidth(text string) float64
}
