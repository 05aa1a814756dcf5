// Package desktop runs the game in an ebiten window.
package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"mothershipmayhem/game"
	"mothershipmayhem/logger"
)

// Key repeat timing, in ticks, for held movement and fire keys
const (
	repeatDelay    = 15
	repeatInterval = 3
)

// binding maps keys to a game action
type binding struct {
	action game.Action
	keys   []ebiten.Key
	repeat bool
}

var bindings = []binding{
	{action: game.ActionMoveLeft, keys: []ebiten.Key{ebiten.KeyArrowLeft}, repeat: true},
	{action: game.ActionMoveRight, keys: []ebiten.Key{ebiten.KeyArrowRight}, repeat: true},
	{action: game.ActionFire, keys: []ebiten.Key{ebiten.KeySpace}, repeat: true},
	{action: game.ActionConfirm, keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}},
	{action: game.ActionInfo, keys: []ebiten.Key{ebiten.KeyI}},
	{action: game.ActionBack, keys: []ebiten.Key{ebiten.KeyBackspace}},
	{action: game.ActionExit, keys: []ebiten.Key{ebiten.KeyEscape}},
}

// App adapts a game.Game to ebiten's Update/Draw/Layout loop
type App struct {
	game     *game.Game
	renderer *Renderer
	debug    *debugOverlay
	log      *logrus.Entry
}

// NewApp wires a game to a renderer
func NewApp(g *game.Game, r *Renderer) *App {
	return &App{
		game:     g,
		renderer: r,
		debug:    &debugOverlay{},
		log:      logger.Log.WithField("component", "desktop"),
	}
}

// Update applies this frame's input, then advances the game one tick
func (a *App) Update() error {
	a.handleWindowKeys()

	for _, b := range bindings {
		if b.pressed() {
			a.game.HandleAction(b.action)
		}
	}
	if a.game.Quit() {
		a.log.Info("exit requested")
		return ebiten.Termination
	}

	a.game.Tick()
	return nil
}

// handleWindowKeys handles keys that never reach the game
func (a *App) handleWindowKeys() {
	alt := ebiten.IsKeyPressed(ebiten.KeyAlt)
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) || (alt && inpututil.IsKeyJustPressed(ebiten.KeyEnter)) {
		full := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(full)
		a.log.WithField("fullscreen", full).Debug("toggled fullscreen")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		a.debug.show = !a.debug.show
	}
}

func (a *App) Draw(screen *ebiten.Image) {
	a.renderer.target = screen
	a.game.Render(a.renderer)
	a.renderer.target = nil

	a.debug.draw(screen, a.game)
}

// Layout keeps the logical playfield fixed; ebiten scales it to the window
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := a.game.Config()
	return cfg.ScreenWidth, cfg.ScreenHeight
}

// pressed reports a fresh press, or a repeat while the key is held
func (b binding) pressed() bool {
	for _, k := range b.keys {
		if b.action == game.ActionConfirm && ebiten.IsKeyPressed(ebiten.KeyAlt) {
			// Alt+Enter is the fullscreen toggle
			continue
		}
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
		if b.repeat && repeating(inpututil.KeyPressDuration(k)) {
			return true
		}
	}
	return false
}

// repeating reports whether a key held for d ticks fires a repeat this tick
func repeating(d int) bool {
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}
