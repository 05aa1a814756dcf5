package game

import "github.com/sirupsen/logrus"

// LevelLayout returns the aliens for a level and whether the level brings the mothership.
// Levels outside 1..5 spawn nothing.
func LevelLayout(cfg Config, level int) ([]Alien, bool) {
	span := cfg.ScreenWidth - cfg.AlienWidth

	var xs []int
	switch level {
	case 1:
		xs = []int{span / 2}
	case 2:
		xs = []int{100, span - 100}
	case 3:
		xs = []int{100, span / 2, span - 100}
	case 4:
		xs = []int{50, span / 3, 2 * span / 3, span - 50}
	case 5:
		return nil, true
	default:
		return nil, false
	}

	aliens := make([]Alien, 0, len(xs))
	for _, x := range xs {
		aliens = append(aliens, Alien{Rect: Rect{
			X: Clamp(x, 0, span),
			Y: cfg.AlienSpawnY,
			W: cfg.AlienWidth,
			H: cfg.AlienHeight,
		}})
	}
	return aliens, false
}

// spawnLevel replaces the alien wave with the layout for level n
func (g *Game) spawnLevel(n int) {
	aliens, mothership := LevelLayout(g.cfg, n)
	g.aliens = append(g.aliens[:0], aliens...)

	if mothership {
		g.mothership = Mothership{
			Rect: Rect{
				X: (g.cfg.ScreenWidth - g.cfg.MothershipWidth) / 2,
				Y: g.cfg.MothershipY,
				W: g.cfg.MothershipWidth,
				H: g.cfg.MothershipHeight,
			},
			Direction: 1,
			Active:    true,
		}
	}

	g.log.WithFields(logrus.Fields{
		"level":      n,
		"aliens":     len(g.aliens),
		"mothership": mothership,
	}).Debug("level spawned")
}

// checkLevelCompletion advances the level or wins the game once the wave is cleared
func (g *Game) checkLevelCompletion() {
	if len(g.aliens) > 0 || g.mothership.Active {
		return
	}

	if g.level < g.cfg.MaxLevel {
		g.level++
		g.log.WithField("level", g.level).Info("level cleared")
		g.spawnLevel(g.level)
		return
	}

	g.setScreen(ScreenWon)
	g.audio.Play(SoundWin)
}
