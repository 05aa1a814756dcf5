package pilot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mothershipmayhem/game"
	"mothershipmayhem/logger"
)

func init() {
	logger.Silence()
}

// neverFire keeps the mothership from shooting
type neverFire struct{}

func (neverFire) Float64() float64 { return 1 }

func newGame(t *testing.T) *game.Game {
	t.Helper()
	g, err := game.NewGame(game.DefaultConfig(), nil, neverFire{})
	require.NoError(t, err)
	return g
}

func newPilot(t *testing.T, code string) *Pilot {
	t.Helper()
	r, err := NewRunner("test.js", code)
	require.NoError(t, err)
	return New(r)
}

func TestNewRunnerRejectsBadScripts(t *testing.T) {
	_, err := NewRunner("broken.js", "function decide( {")
	assert.Error(t, err)

	_, err = NewRunner("empty.js", "var x = 1;")
	assert.ErrorIs(t, err, ErrNoDecide)

	_, err = NewRunner("value.js", "var decide = 3;")
	assert.ErrorIs(t, err, ErrNoDecide)

	_, err = NewRunner("throws.js", "throw new Error('boom');")
	assert.Error(t, err)
}

func TestDecideReadsContext(t *testing.T) {
	r, err := NewRunner("ctx.js", `
function decide(ctx) {
  return { move: ctx.aliens.length, fire: ctx.hearts === 5 && ctx.jet.w === 120 };
}`)
	require.NoError(t, err)

	d, err := r.Decide(BuildContext(newGame(t)))
	require.NoError(t, err)
	assert.Equal(t, Decision{Move: 1, Fire: true}, d)
}

func TestDecideEdgeResults(t *testing.T) {
	r, err := NewRunner("undef.js", "function decide(ctx) {}")
	require.NoError(t, err)
	d, err := r.Decide(Context{})
	require.NoError(t, err)
	assert.Equal(t, Decision{}, d)

	r, err = NewRunner("throw.js", "function decide(ctx) { throw new Error('nope'); }")
	require.NoError(t, err)
	_, err = r.Decide(Context{})
	assert.Error(t, err)

	r, err = NewRunner("string.js", "function decide(ctx) { return 'left'; }")
	require.NoError(t, err)
	_, err = r.Decide(Context{})
	assert.Error(t, err)
}

func TestDecisionActions(t *testing.T) {
	assert.Empty(t, Decision{}.Actions())
	assert.Equal(t, []game.Action{game.ActionMoveLeft}, Decision{Move: -3}.Actions())
	assert.Equal(t, []game.Action{game.ActionMoveRight, game.ActionFire}, Decision{Move: 1, Fire: true}.Actions())
}

func TestBuildContextSnapshot(t *testing.T) {
	g := newGame(t)
	g.HandleAction(game.ActionConfirm)
	g.HandleAction(game.ActionFire)

	ctx := BuildContext(g)

	assert.Equal(t, 1280, ctx.ScreenWidth)
	assert.Equal(t, 5, ctx.Hearts)
	assert.Equal(t, 1, ctx.Level)
	assert.Equal(t, Box{X: 580, Y: 650, W: 120, H: 120}, ctx.Jet)
	require.Len(t, ctx.Aliens, 1)
	assert.Equal(t, 50, ctx.Aliens[0].Y)
	require.Len(t, ctx.PlayerShots, 1)
	assert.Empty(t, ctx.MothershipShots)
	assert.False(t, ctx.Mothership.Active)
	assert.Equal(t, 30, ctx.Mothership.HitsToKill)
}

func TestRunStopsAtTickLimit(t *testing.T) {
	p := newPilot(t, "function decide(ctx) { return { move: 0, fire: false }; }")
	g := newGame(t)

	res, err := p.Run(context.Background(), g, 100)
	require.NoError(t, err)
	assert.Equal(t, game.ScreenPlaying, res.Screen)
	assert.Equal(t, uint64(100), res.Ticks)
}

func TestRunIdlePilotLoses(t *testing.T) {
	p := newPilot(t, "function decide(ctx) { return { move: 0, fire: false }; }")
	g := newGame(t)

	res, err := p.Run(context.Background(), g, 100000)
	require.NoError(t, err)
	// one alien escapes on level 1, two on level 2, the third level takes the rest
	assert.Equal(t, game.ScreenLost, res.Screen)
	assert.Equal(t, 3, res.Level)
	assert.Equal(t, 0, res.Hearts)
	assert.Equal(t, 0, res.Score)
}

func TestRunDefaultScriptWins(t *testing.T) {
	p := newPilot(t, DefaultScript)
	g := newGame(t)

	res, err := p.Run(context.Background(), g, 20000)
	require.NoError(t, err)
	assert.Equal(t, game.ScreenWon, res.Screen, res.String())
	assert.Equal(t, (1+2+3+4)*10+100, res.Score)
}

func TestRunHonoursCancellation(t *testing.T) {
	p := newPilot(t, DefaultScript)
	g := newGame(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := p.Run(ctx, g, 1000)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, res.Ticks)
}
