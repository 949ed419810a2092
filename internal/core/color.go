package core

// Color is the foreground colour of a screen cell. Frontends map it to a
// terminal style or an image colour.
type Color uint8

const (
	ColorDefault      Color = iota
	ColorRed                // Kong
	ColorGreen              // blaster and its holder
	ColorYellow             // ladders, bananas
	ColorMagenta            // monkeys
	ColorWhite              // HUD text
	ColorBrightRed          // intelligent monkeys
	ColorBrightYellow       // hammer, bullets
	ColorBrightCyan         // player
	ColorOrange             // barrels
	ColorBrown              // platforms
	ColorGray               // unknown sprites
)
