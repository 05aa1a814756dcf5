package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelLayoutAlienWaves(t *testing.T) {
	cfg := testConfig()
	span := cfg.ScreenWidth - cfg.AlienWidth

	want := map[int][]int{
		1: {450},
		2: {100, 800},
		3: {100, 450, 800},
		4: {50, 300, 600, 850},
	}

	for level := 1; level <= 4; level++ {
		aliens, mothership := LevelLayout(cfg, level)
		assert.False(t, mothership, "level %d", level)
		require.Len(t, aliens, level, "level %d", level)

		for i, a := range aliens {
			assert.Equal(t, 50, a.Y, "level %d alien %d", level, i)
			assert.GreaterOrEqual(t, a.X, 0)
			assert.LessOrEqual(t, a.X, span)
			assert.Equal(t, want[level][i], a.X, "level %d alien %d", level, i)
			assert.Equal(t, cfg.AlienWidth, a.W)
			assert.Equal(t, cfg.AlienHeight, a.H)
		}
	}
}

func TestLevelLayoutClampsOnNarrowScreens(t *testing.T) {
	cfg := testConfig()
	cfg.ScreenWidth = 150 // span of 50, smaller than the 100px side offsets

	for level := 1; level <= 4; level++ {
		aliens, _ := LevelLayout(cfg, level)
		for _, a := range aliens {
			assert.GreaterOrEqual(t, a.X, 0)
			assert.LessOrEqual(t, a.X, cfg.ScreenWidth-cfg.AlienWidth)
		}
	}
}

func TestLevelLayoutMothershipLevel(t *testing.T) {
	aliens, mothership := LevelLayout(testConfig(), 5)
	assert.Empty(t, aliens)
	assert.True(t, mothership)

	aliens, mothership = LevelLayout(testConfig(), 9)
	assert.Empty(t, aliens)
	assert.False(t, mothership)
}

func TestSpawnLevelFiveActivatesMothership(t *testing.T) {
	g, _ := newPlayingGame(t)
	g.mothership.Hits = 12

	g.enterLevel(5)

	assert.Empty(t, g.aliens)
	ms := g.Mothership()
	assert.True(t, ms.Active)
	assert.Equal(t, 0, ms.Hits)
	assert.Equal(t, (1000-370)/2, ms.X)
	assert.Equal(t, 50, ms.Y)
	assert.Equal(t, 1, ms.Direction)
}

func TestLevelCompletionAdvances(t *testing.T) {
	for level := 1; level <= 3; level++ {
		g, _ := newPlayingGame(t)
		g.enterLevel(level)
		g.aliens = g.aliens[:0]

		g.checkLevelCompletion()

		assert.Equal(t, level+1, g.Level())
		assert.Len(t, g.Aliens(), level+1)
		assert.Equal(t, ScreenPlaying, g.Screen())
	}
}

func TestLevelCompletionFourToMothership(t *testing.T) {
	g, _ := newPlayingGame(t)
	g.enterLevel(4)
	g.aliens = g.aliens[:0]

	g.checkLevelCompletion()

	assert.Equal(t, 5, g.Level())
	assert.Empty(t, g.Aliens())
	assert.True(t, g.Mothership().Active)
}

func TestLevelCompletionWinsOnceOnFinalLevel(t *testing.T) {
	g, audio := newPlayingGame(t)
	g.enterLevel(5)
	g.mothership.Active = false

	g.checkLevelCompletion()
	assert.Equal(t, ScreenWon, g.Screen())
	assert.Equal(t, 5, g.Level())

	// further ticks on the won screen do nothing
	for i := 0; i < 10; i++ {
		g.Tick()
	}
	assert.Equal(t, 1, audio.count(SoundWin))
}

func TestLevelCompletionWaitsForWave(t *testing.T) {
	g, _ := newPlayingGame(t)
	g.checkLevelCompletion()
	assert.Equal(t, 1, g.Level())

	g.enterLevel(5)
	g.checkLevelCompletion()
	assert.Equal(t, 5, g.Level())
	assert.Equal(t, ScreenPlaying, g.Screen())
}
