package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-kong/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "AB")
	s.SetColored(2, 0, 'o', core.ColorOrange)
	s.SetColored(3, 0, 'o', core.ColorOrange)
	s.SetColored(0, 1, '@', core.ColorBrightCyan)

	out := RenderScreen(s)

	assert.Contains(t, out, "AB")
	assert.Contains(t, out, "oo")
	assert.Contains(t, out, "@")
	assert.Contains(t, out, "\n")
}

func TestStyleForUnknownColor(t *testing.T) {
	assert.Equal(t, "x", styleFor(core.Color(200)).Render("x"))
}
