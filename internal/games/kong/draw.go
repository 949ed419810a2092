package kong

import (
	"fmt"

	"github.com/vovakirdan/tui-kong/internal/config"
	"github.com/vovakirdan/tui-kong/internal/core"
)

// Screen text
const (
	titleText    = "KONG CLIMB"
	promptText   = "PRESS ENTER TO START"
	skipText     = "PRESS 2 FOR LEVEL 2"
	pausedText   = "PAUSED"
	wonText      = "GAME WON!"
	lostText     = "GAME LOST"
	finalText    = "YOUR FINAL SCORE: %d"
	continueText = "PRESS SPACE TO CONTINUE..."
)

func drawRun(dst core.Canvas, r *Run, cfg config.KongConfig) {
	switch r.Phase() {
	case PhaseHome:
		drawHome(dst, cfg)
	case PhaseLevel1, PhaseLevel2:
		drawLevel(dst, r.Level())
		if r.Paused() {
			drawCentered(dst, cfg, cfg.Window.Height/2, pausedText)
		}
	case PhaseEnd:
		drawEnd(dst, cfg, r.Won(), r.FinalScore())
	}
}

func drawCentered(dst core.Canvas, cfg config.KongConfig, y float64, text string) {
	x := (cfg.Window.Width - dst.TextWidth(text)) / 2
	dst.DrawText(x, y, text)
}

func drawHome(dst core.Canvas, cfg config.KongConfig) {
	h := cfg.Window.Height
	drawCentered(dst, cfg, h*0.35, titleText)
	drawCentered(dst, cfg, h*0.6, promptText)
	drawCentered(dst, cfg, h*0.6+40, skipText)
}

func drawEnd(dst core.Canvas, cfg config.KongConfig, won bool, score int) {
	h := cfg.Window.Height
	status := lostText
	if won {
		status = wonText
	}
	drawCentered(dst, cfg, h*0.4, status)
	drawCentered(dst, cfg, h*0.4+60, fmt.Sprintf(finalText, score))
	drawCentered(dst, cfg, h-60, continueText)
}

// drawLevel draws the world back to front, then the HUD.
func drawLevel(dst core.Canvas, l *Level) {
	for _, p := range l.platforms {
		dst.DrawSprite(SpritePlatform, p.Box())
	}
	for _, ld := range l.ladders {
		dst.DrawSprite(SpriteLadder, ld.Box())
	}
	for _, h := range l.hammers {
		if !h.Collected() {
			dst.DrawSprite(h.sprite(), h.Box())
		}
	}
	for _, b := range l.blasters {
		if !b.Collected() {
			dst.DrawSprite(b.sprite(), b.Box())
		}
	}
	for _, b := range l.barrels {
		if !b.Destroyed() {
			dst.DrawSprite(SpriteBarrel, b.Box())
		}
	}
	for _, m := range l.monkeys {
		if m.Alive() {
			dst.DrawSprite(m.sprite(), m.Box())
		}
	}
	for _, b := range l.bananas {
		if b.Active() {
			dst.DrawSprite(b.sprite(), b.Box())
		}
	}
	dst.DrawSprite(SpriteKong, l.kong.Box())
	dst.DrawSprite(l.player.sprite(), l.player.Box())
	for _, s := range l.player.shots {
		if s.Active() {
			dst.DrawSprite(s.sprite(), s.Box())
		}
	}

	hud := l.cfg.HUD
	dst.DrawText(hud.Score.X, hud.Score.Y, fmt.Sprintf("SCORE %d", l.score))
	dst.DrawText(hud.Time.X, hud.Time.Y, fmt.Sprintf("Time Left %d", l.SecondsLeft()))
	dst.DrawText(hud.KongHealth.X, hud.KongHealth.Y, fmt.Sprintf("KONG HEALTH %d", l.kong.Health()))
	if len(l.blasters) > 0 {
		dst.DrawText(hud.Bullets.X, hud.Bullets.Y, fmt.Sprintf("BULLET %d", l.player.Bullets()))
	}
}
