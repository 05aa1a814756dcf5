package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.ScreenWidth = 0 }},
		{"negative alien speed", func(c *Config) { c.AlienSpeed = -2 }},
		{"mothership wider than screen", func(c *Config) { c.MothershipWidth = c.ScreenWidth + 1 }},
		{"jet taller than screen", func(c *Config) { c.JetHeight = c.ScreenHeight }},
		{"fire chance above one", func(c *Config) { c.MothershipFireChance = 1.5 }},
		{"negative reward", func(c *Config) { c.AlienReward = -10 }},
		{"no levels", func(c *Config) { c.MaxLevel = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestNewGameRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TickRate = 0

	g, err := NewGame(cfg, nil, nil)
	assert.Nil(t, g)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestConfigJetBounds(t *testing.T) {
	cfg := testConfig()
	assert.Equal(t, 800-120-30, cfg.JetY())
	assert.Equal(t, 880, cfg.MaxJetX())
}
