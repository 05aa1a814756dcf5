package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerShotDestroysAlien(t *testing.T) {
	g, audio := newPlayingGame(t)
	alien := g.aliens[0]
	g.playerShots = append(g.playerShots, playerShotAt(g.cfg, alien.X+10, alien.Y+10))

	g.checkCollisions()

	assert.Empty(t, g.Aliens())
	assert.Empty(t, g.PlayerShots())
	assert.Equal(t, 10, g.Score())
	assert.Equal(t, []Sound{SoundExplosion}, audio.played[len(audio.played)-1:])
}

func TestShotHitsOnlyFirstOverlappingAlien(t *testing.T) {
	g, _ := newPlayingGame(t)
	cfg := g.cfg
	g.aliens = []Alien{
		{Rect: Rect{X: 100, Y: 100, W: cfg.AlienWidth, H: cfg.AlienHeight}},
		{Rect: Rect{X: 150, Y: 100, W: cfg.AlienWidth, H: cfg.AlienHeight}},
	}
	// overlaps both aliens
	g.playerShots = []Shot{playerShotAt(cfg, 160, 120)}

	g.checkCollisions()

	require.Len(t, g.aliens, 1)
	assert.Equal(t, 150, g.aliens[0].X, "the first alien in spawn order is the one removed")
	assert.Empty(t, g.playerShots)
	assert.Equal(t, 10, g.Score())
}

func TestConsumedShotCannotHitMothership(t *testing.T) {
	g, _ := newPlayingGame(t)
	cfg := g.cfg
	g.enterLevel(5)
	ms := g.mothership
	// an alien sits inside the mothership's box; the shot touches both
	g.aliens = []Alien{{Rect: Rect{X: ms.X + 10, Y: ms.Y + 10, W: cfg.AlienWidth, H: cfg.AlienHeight}}}
	g.playerShots = []Shot{playerShotAt(cfg, ms.X+20, ms.Y+20)}

	g.checkCollisions()

	assert.Empty(t, g.aliens)
	assert.Equal(t, 0, g.mothership.Hits, "shot was consumed by the alien")
	assert.Equal(t, 10, g.Score())
}

func TestMothershipAbsorbsHitsAndPaysBonusOnce(t *testing.T) {
	g, audio := newPlayingGame(t)
	cfg := g.cfg
	g.enterLevel(5)
	ms := g.mothership

	for hit := 1; hit < cfg.MothershipHitsToKill; hit++ {
		g.playerShots = append(g.playerShots, playerShotAt(cfg, ms.X+50, ms.Y+50))
		g.checkCollisions()
		require.Equal(t, hit, g.mothership.Hits)
		require.True(t, g.mothership.Active)
	}
	assert.Equal(t, 0, g.Score())

	// final blow plus extra shots in the same sweep
	for i := 0; i < 3; i++ {
		g.playerShots = append(g.playerShots, playerShotAt(cfg, ms.X+50, ms.Y+50))
	}
	g.checkCollisions()

	assert.False(t, g.mothership.Active)
	assert.Equal(t, cfg.MothershipHitsToKill, g.mothership.Hits)
	assert.Equal(t, cfg.MothershipBonus, g.Score())
	assert.Len(t, g.playerShots, 2, "shots after the kill stay in flight")
	assert.Equal(t, cfg.MothershipHitsToKill, audio.count(SoundExplosion))
}

func TestMothershipShotCostsHeart(t *testing.T) {
	g, audio := newPlayingGame(t)
	cfg := g.cfg
	g.enterLevel(5)
	jet := g.jet
	g.mothershipShots = []Shot{mothershipShotAt(cfg, jet.X+10, jet.Y+10)}

	g.checkCollisions()

	assert.Empty(t, g.mothershipShots)
	assert.Equal(t, cfg.StartingHearts-1, g.Hearts())
	assert.Equal(t, 1, audio.count(SoundExplosion))
	assert.Equal(t, ScreenPlaying, g.Screen())
}

func TestMothershipShotsIgnoredWithoutMothership(t *testing.T) {
	g, _ := newPlayingGame(t)
	jet := g.jet
	g.mothershipShots = []Shot{mothershipShotAt(g.cfg, jet.X+10, jet.Y+10)}

	g.checkCollisions()

	assert.Len(t, g.mothershipShots, 1)
	assert.Equal(t, g.cfg.StartingHearts, g.Hearts())
}

func TestLastHeartLostToMothershipShotLosesOnce(t *testing.T) {
	g, audio := newPlayingGame(t)
	cfg := g.cfg
	g.enterLevel(5)
	g.hearts = 1
	jet := g.jet
	g.mothershipShots = []Shot{
		mothershipShotAt(cfg, jet.X+10, jet.Y+10),
		mothershipShotAt(cfg, jet.X+40, jet.Y+10),
	}

	g.checkCollisions()

	assert.Equal(t, ScreenLost, g.Screen())
	assert.Equal(t, 0, g.Hearts())
	assert.Equal(t, 1, audio.count(SoundLose))
	assert.Empty(t, g.mothershipShots)
}
