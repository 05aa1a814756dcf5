package game

// Jet is the player's ship. It only moves horizontally and only on input.
type Jet struct {
	Rect
}

// Alien descends from the top of the screen toward the jet
type Alien struct {
	Rect
}

// MoveDown advances the alien by speed pixels
func (a *Alien) MoveDown(speed int) {
	a.Y += speed
}

// ShotOwner identifies who fired a shot
type ShotOwner int

const (
	OwnerPlayer ShotOwner = iota
	OwnerMothership
)

// String returns the owner name used in logs and pilot scripts
func (o ShotOwner) String() string {
	switch o {
	case OwnerPlayer:
		return "player"
	case OwnerMothership:
		return "mothership"
	default:
		return "unknown"
	}
}

// Shot is a projectile. Player shots travel up, mothership shots travel down.
type Shot struct {
	Rect
	Owner ShotOwner
}

// Advance moves the shot one tick in its owner's direction
func (s *Shot) Advance(cfg Config) {
	if s.Owner == OwnerPlayer {
		s.Y -= cfg.PlayerShotSpeed
		return
	}
	s.Y += cfg.MothershipShotSpeed
}

// Mothership is the level-5 boss
type Mothership struct {
	Rect

	// Direction is +1 when moving right and -1 when moving left
	Direction int

	// Hits counts player shots absorbed so far
	Hits int

	// Active is false before level 5 and after the mothership is destroyed
	Active bool
}

// Advance moves the mothership horizontally and bounces it off the screen edges
func (m *Mothership) Advance(cfg Config) {
	m.X += m.Direction * cfg.MothershipSpeed
	if m.X <= 0 || m.Right() >= cfg.ScreenWidth {
		m.Direction = -m.Direction
	}
}

// newPlayerShot creates a shot leaving the jet's nose
func newPlayerShot(cfg Config, jet Jet) Shot {
	return Shot{
		Rect: Rect{
			X: jet.X + jet.W/2 - cfg.ShotWidth/2,
			Y: jet.Y,
			W: cfg.ShotWidth,
			H: cfg.ShotHeight,
		},
		Owner: OwnerPlayer,
	}
}

// newMothershipShot creates a shot leaving the mothership's underside
func newMothershipShot(cfg Config, m Mothership) Shot {
	return Shot{
		Rect: Rect{
			X: m.X + m.W/2 - cfg.ShotWidth/2,
			Y: m.Bottom(),
			W: cfg.ShotWidth,
			H: cfg.ShotHeight,
		},
		Owner: OwnerMothership,
	}
}
