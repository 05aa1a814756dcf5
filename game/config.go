package game

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a Config cannot drive a game
var ErrInvalidConfig = errors.New("invalid game config")

// Config holds game configuration constants
type Config struct {
	// ScreenWidth is the playfield width in pixels
	ScreenWidth int

	// ScreenHeight is the playfield height in pixels
	ScreenHeight int

	// TickRate is the number of frame loop ticks per second
	TickRate int

	// Jet geometry and per-press horizontal step
	JetWidth        int
	JetHeight       int
	JetSpeed        int
	JetBottomMargin int // gap between the jet and the bottom edge

	// Alien geometry, spawn row and per-tick fall speed
	AlienWidth  int
	AlienHeight int
	AlienSpeed  int
	AlienSpawnY int

	// Shot geometry and per-tick speeds
	ShotWidth           int
	ShotHeight          int
	PlayerShotSpeed     int
	MothershipShotSpeed int

	// Mothership geometry, row and per-tick horizontal speed
	MothershipWidth  int
	MothershipHeight int
	MothershipY      int
	MothershipSpeed  int

	// MothershipFireChance is the probability per tick that the mothership fires
	MothershipFireChance float64

	// MothershipHitsToKill is the number of player hits that destroy the mothership
	MothershipHitsToKill int

	// Score rewards
	AlienReward     int
	MothershipBonus int

	// StartingHearts is the number of lives at the start of a game
	StartingHearts int

	// MaxLevel is the final level; it holds the mothership
	MaxLevel int
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:          1280,
		ScreenHeight:         800,
		TickRate:             60,
		JetWidth:             120,
		JetHeight:            120,
		JetSpeed:             20,
		JetBottomMargin:      30,
		AlienWidth:           100,
		AlienHeight:          100,
		AlienSpeed:           2,
		AlienSpawnY:          50,
		ShotWidth:            20,
		ShotHeight:           60,
		PlayerShotSpeed:      10,
		MothershipShotSpeed:  4,
		MothershipWidth:      370,
		MothershipHeight:     270,
		MothershipY:          50,
		MothershipSpeed:      2,
		MothershipFireChance: 0.05,
		MothershipHitsToKill: 30,
		AlienReward:          10,
		MothershipBonus:      100,
		StartingHearts:       5,
		MaxLevel:             5,
	}
}

// Validate reports whether the configuration describes a playable game
func (c Config) Validate() error {
	positive := []struct {
		name  string
		value int
	}{
		{"ScreenWidth", c.ScreenWidth},
		{"ScreenHeight", c.ScreenHeight},
		{"TickRate", c.TickRate},
		{"JetWidth", c.JetWidth},
		{"JetHeight", c.JetHeight},
		{"JetSpeed", c.JetSpeed},
		{"AlienWidth", c.AlienWidth},
		{"AlienHeight", c.AlienHeight},
		{"AlienSpeed", c.AlienSpeed},
		{"ShotWidth", c.ShotWidth},
		{"ShotHeight", c.ShotHeight},
		{"PlayerShotSpeed", c.PlayerShotSpeed},
		{"MothershipShotSpeed", c.MothershipShotSpeed},
		{"MothershipWidth", c.MothershipWidth},
		{"MothershipHeight", c.MothershipHeight},
		{"MothershipSpeed", c.MothershipSpeed},
		{"MothershipHitsToKill", c.MothershipHitsToKill},
		{"StartingHearts", c.StartingHearts},
		{"MaxLevel", c.MaxLevel},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, p.name, p.value)
		}
	}

	if c.JetWidth > c.ScreenWidth || c.AlienWidth > c.ScreenWidth || c.MothershipWidth > c.ScreenWidth {
		return fmt.Errorf("%w: entities wider than the %dpx screen", ErrInvalidConfig, c.ScreenWidth)
	}
	if c.JetHeight+c.JetBottomMargin > c.ScreenHeight {
		return fmt.Errorf("%w: jet does not fit in the %dpx screen height", ErrInvalidConfig, c.ScreenHeight)
	}
	if c.MothershipFireChance < 0 || c.MothershipFireChance > 1 {
		return fmt.Errorf("%w: MothershipFireChance %.3f outside [0,1]", ErrInvalidConfig, c.MothershipFireChance)
	}
	if c.AlienReward < 0 || c.MothershipBonus < 0 {
		return fmt.Errorf("%w: rewards must not be negative", ErrInvalidConfig)
	}
	return nil
}

// JetY returns the fixed row of the jet
func (c Config) JetY() int {
	return c.ScreenHeight - c.JetHeight - c.JetBottomMargin
}

// MaxJetX returns the rightmost legal jet position
func (c Config) MaxJetX() int {
	return c.ScreenWidth - c.JetWidth
}
