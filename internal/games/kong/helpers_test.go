package kong

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-kong/internal/config"
	"github.com/vovakirdan/tui-kong/internal/core"
)

// floorTop is the top edge of the test floor.
const floorTop = 744

// bareLevel is a floor spanning the world, the player on the left and Kong
// resting on the far right.
func bareLevel() config.LevelConfig {
	var floor config.Points
	for x := 64.0; x < 1024; x += 128 {
		floor = append(floor, config.Point{X: x, Y: 756})
	}
	return config.LevelConfig{
		Name:      "test",
		Player:    config.Point{X: 100, Y: floorTop - 20},
		Kong:      config.Point{X: 900, Y: floorTop - 40},
		Platforms: floor,
	}
}

func testConfig(mutate ...func(*config.KongConfig)) config.KongConfig {
	cfg := config.DefaultKongConfig()
	cfg.Levels = []config.LevelConfig{bareLevel(), bareLevel()}
	for _, m := range mutate {
		m(&cfg)
	}
	return cfg
}

func newTestLevel(t *testing.T, number int, cfg config.KongConfig, startScore int) *Level {
	t.Helper()
	l, err := NewLevel(number, cfg, startScore, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	return l
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func hold(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Hold(a)
	}
	return in
}

func stepN(l *Level, n int, in core.InputFrame) {
	for i := 0; i < n; i++ {
		l.Update(in)
	}
}

// recordingCanvas captures draw calls.
type recordingCanvas struct {
	sprites map[core.SpriteID]int
	texts   []string
}

func newRecordingCanvas() *recordingCanvas {
	return &recordingCanvas{sprites: make(map[core.SpriteID]int)}
}

func (c *recordingCanvas) DrawSprite(id core.SpriteID, _ core.Box) { c.sprites[id]++ }
func (c *recordingCanvas) DrawText(_, _ float64, text string)      { c.texts = append(c.texts, text) }
func (c *recordingCanvas) TextWidth(text string) float64           { return float64(len(text)) * 8 }
