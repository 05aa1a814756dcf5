package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"mothershipmayhem/logger"
)

func init() {
	logger.Silence()
}

// recordingAudio remembers every sound event in order
type recordingAudio struct {
	played  []Sound
	music   int
	stopped int
}

func (a *recordingAudio) Play(s Sound) { a.played = append(a.played, s) }
func (a *recordingAudio) StartMusic()  { a.music++ }
func (a *recordingAudio) StopAll()     { a.stopped++ }

func (a *recordingAudio) count(s Sound) int {
	n := 0
	for _, p := range a.played {
		if p == s {
			n++
		}
	}
	return n
}

// fixedRand always returns the same value
type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

// testConfig is a 1000x800 playfield with the default tuning
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.ScreenWidth = 1000
	cfg.ScreenHeight = 800
	return cfg
}

// newTestGame builds a game that never lets the mothership fire
func newTestGame(t *testing.T) (*Game, *recordingAudio) {
	t.Helper()
	audio := &recordingAudio{}
	g, err := NewGame(testConfig(), audio, fixedRand(1))
	require.NoError(t, err)
	return g, audio
}

// newPlayingGame builds a game already on the playing screen
func newPlayingGame(t *testing.T) (*Game, *recordingAudio) {
	t.Helper()
	g, audio := newTestGame(t)
	g.HandleAction(ActionConfirm)
	require.Equal(t, ScreenPlaying, g.Screen())
	return g, audio
}

// enterLevel jumps straight to the given level
func (g *Game) enterLevel(n int) {
	g.level = n
	g.mothership = Mothership{}
	g.spawnLevel(n)
}

// playerShotAt places a player shot with its top-left corner at x, y
func playerShotAt(cfg Config, x, y int) Shot {
	return Shot{Rect: Rect{X: x, Y: y, W: cfg.ShotWidth, H: cfg.ShotHeight}, Owner: OwnerPlayer}
}

// mothershipShotAt places a mothership shot with its top-left corner at x, y
func mothershipShotAt(cfg Config, x, y int) Shot {
	return Shot{Rect: Rect{X: x, Y: y, W: cfg.ShotWidth, H: cfg.ShotHeight}, Owner: OwnerMothership}
}
