package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"mothershipmayhem/logger"
)

// Rand is the random source used for mothership fire decisions
type Rand interface {
	Float64() float64
}

// Game represents the main game state
type Game struct {
	cfg   Config
	rng   Rand
	audio AudioSink
	log   *logrus.Entry

	screen Screen
	score  int
	hearts int
	level  int

	jet             Jet
	aliens          []Alien
	playerShots     []Shot
	mothershipShots []Shot
	mothership      Mothership

	// ticks counts frame loop ticks spent in the playing screen
	ticks uint64

	quit bool
}

// NewGame creates a game on the title screen with level 1 spawned.
// A nil audio sink discards sounds; a nil rng is seeded from the clock.
func NewGame(config Config, audio AudioSink, rng Rand) (*Game, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	if audio == nil {
		audio = NopAudio{}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g := &Game{
		cfg:             config,
		rng:             rng,
		audio:           audio,
		log:             logger.Log.WithField("component", "game"),
		aliens:          make([]Alien, 0, 4),
		playerShots:     make([]Shot, 0, 32),
		mothershipShots: make([]Shot, 0, 32),
	}
	g.reset()
	g.audio.StartMusic()

	return g, nil
}

// reset puts every piece of state back to its initial value and returns to the title screen
func (g *Game) reset() {
	g.screen = ScreenTitle
	g.score = 0
	g.hearts = g.cfg.StartingHearts
	g.level = 1
	g.ticks = 0
	g.mothership = Mothership{}
	g.playerShots = g.playerShots[:0]
	g.mothershipShots = g.mothershipShots[:0]
	g.jet = Jet{Rect: Rect{
		X: (g.cfg.ScreenWidth - g.cfg.JetWidth) / 2,
		Y: g.cfg.JetY(),
		W: g.cfg.JetWidth,
		H: g.cfg.JetHeight,
	}}
	g.spawnLevel(g.level)
}

// Restart resets the game and restarts the background music
func (g *Game) Restart() {
	g.log.WithFields(logrus.Fields{
		"score": g.score,
		"level": g.level,
	}).Info("game reset")
	g.reset()
	g.audio.StartMusic()
}

// Tick runs one frame loop step. Nothing moves outside the playing screen.
func (g *Game) Tick() {
	if g.screen != ScreenPlaying {
		return
	}
	g.ticks++

	g.updateAliens()
	if g.screen != ScreenPlaying {
		return
	}

	g.updateShots()

	if g.mothership.Active {
		g.updateMothership()
	}

	g.checkCollisions()
	if g.screen != ScreenPlaying {
		return
	}

	g.checkLevelCompletion()
}

// updateAliens moves aliens down and charges a heart for each one that escapes
func (g *Game) updateAliens() {
	kept := g.aliens[:0]
	for _, alien := range g.aliens {
		alien.MoveDown(g.cfg.AlienSpeed)
		if alien.Y > g.cfg.ScreenHeight {
			g.loseHeart()
			continue
		}
		kept = append(kept, alien)
	}
	g.aliens = kept
}

// updateShots moves both shot streams and drops the ones that left the screen
func (g *Game) updateShots() {
	kept := g.playerShots[:0]
	for _, shot := range g.playerShots {
		shot.Advance(g.cfg)
		if shot.Y < 0 {
			continue
		}
		kept = append(kept, shot)
	}
	g.playerShots = kept

	kept = g.mothershipShots[:0]
	for _, shot := range g.mothershipShots {
		shot.Advance(g.cfg)
		if shot.Y > g.cfg.ScreenHeight {
			continue
		}
		kept = append(kept, shot)
	}
	g.mothershipShots = kept
}

// updateMothership moves the mothership and rolls for a shot
func (g *Game) updateMothership() {
	g.mothership.Advance(g.cfg)
	if g.rng.Float64() < g.cfg.MothershipFireChance {
		g.mothershipShots = append(g.mothershipShots, newMothershipShot(g.cfg, g.mothership))
	}
}

// loseHeart removes one life and ends the run when none are left
func (g *Game) loseHeart() {
	if g.screen != ScreenPlaying || g.hearts <= 0 {
		return
	}
	g.hearts--
	g.log.WithField("hearts", g.hearts).Debug("heart lost")

	if g.hearts <= 0 {
		g.setScreen(ScreenLost)
		g.audio.Play(SoundLose)
	}
}

// setScreen switches the active screen mode
func (g *Game) setScreen(s Screen) {
	if g.screen == s {
		return
	}
	g.log.WithFields(logrus.Fields{
		"from":  g.screen.String(),
		"to":    s.String(),
		"score": g.score,
		"level": g.level,
	}).Info("screen changed")
	g.screen = s
}

// Config returns the configuration the game runs with
func (g *Game) Config() Config {
	return g.cfg
}

// Screen returns the active screen mode
func (g *Game) Screen() Screen {
	return g.screen
}

// Score returns the current score
func (g *Game) Score() int {
	return g.score
}

// Hearts returns the remaining lives
func (g *Game) Hearts() int {
	return g.hearts
}

// Level returns the current level
func (g *Game) Level() int {
	return g.level
}

// Ticks returns the number of playing ticks since the last reset
func (g *Game) Ticks() uint64 {
	return g.ticks
}

// Jet returns the player's jet
func (g *Game) Jet() Jet {
	return g.jet
}

// Aliens returns a copy of the live aliens
func (g *Game) Aliens() []Alien {
	return append([]Alien(nil), g.aliens...)
}

// PlayerShots returns a copy of the player's shots in flight
func (g *Game) PlayerShots() []Shot {
	return append([]Shot(nil), g.playerShots...)
}

// MothershipShots returns a copy of the mothership's shots in flight
func (g *Game) MothershipShots() []Shot {
	return append([]Shot(nil), g.mothershipShots...)
}

// Mothership returns the mothership state
func (g *Game) Mothership() Mothership {
	return g.mothership
}

// Quit reports whether the exit action was received
func (g *Game) Quit() bool {
	return g.quit
}
