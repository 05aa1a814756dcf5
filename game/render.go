package game

// Sprite names a drawable handle. Front ends map sprites to images or glyphs.
type Sprite int

const (
	SpriteBackground Sprite = iota
	SpriteJet
	SpriteAlien
	SpriteMothership
	SpritePlayerShot
	SpriteMothershipShot
	SpriteHeart
)

// Sprites lists every sprite, in declaration order
var Sprites = []Sprite{
	SpriteBackground,
	SpriteJet,
	SpriteAlien,
	SpriteMothership,
	SpritePlayerShot,
	SpriteMothershipShot,
	SpriteHeart,
}

// String returns the asset base name for the sprite
func (s Sprite) String() string {
	switch s {
	case SpriteBackground:
		return "background"
	case SpriteJet:
		return "jet"
	case SpriteAlien:
		return "alien"
	case SpriteMothership:
		return "mothership"
	case SpritePlayerShot:
		return "shot"
	case SpriteMothershipShot:
		return "mothership_shot"
	case SpriteHeart:
		return "heart"
	default:
		return "unknown"
	}
}

// Heart icon layout on the playing screen
const (
	heartX       = 20
	heartY       = 60
	heartSize    = 40
	heartSpacing = 50
)

// HUD carries the text-level state a front end needs for the current screen
type HUD struct {
	Screen Screen
	Score  int
	Hearts int
	Level  int

	// MothershipHits is zero when no mothership is active
	MothershipHits       int
	MothershipHitsToKill int
}

// Renderer draws one frame. Implementations must tolerate sprites they cannot draw.
type Renderer interface {
	DrawSprite(sprite Sprite, dst Rect)
	DrawHUD(hud HUD)
}

// Render walks the current state and issues draw calls back to front
func (g *Game) Render(r Renderer) {
	r.DrawSprite(SpriteBackground, Rect{W: g.cfg.ScreenWidth, H: g.cfg.ScreenHeight})

	if g.screen != ScreenPlaying {
		r.DrawHUD(g.HUD())
		return
	}

	r.DrawSprite(SpriteJet, g.jet.Rect)
	for _, alien := range g.aliens {
		r.DrawSprite(SpriteAlien, alien.Rect)
	}
	for _, shot := range g.playerShots {
		r.DrawSprite(SpritePlayerShot, shot.Rect)
	}
	if g.mothership.Active {
		r.DrawSprite(SpriteMothership, g.mothership.Rect)
		for _, shot := range g.mothershipShots {
			r.DrawSprite(SpriteMothershipShot, shot.Rect)
		}
	}
	for i := 0; i < g.hearts; i++ {
		r.DrawSprite(SpriteHeart, Rect{X: heartX + i*heartSpacing, Y: heartY, W: heartSize, H: heartSize})
	}
	r.DrawHUD(g.HUD())
}

// HUD returns the text-level state of the game
func (g *Game) HUD() HUD {
	hud := HUD{
		Screen: g.screen,
		Score:  g.score,
		Hearts: g.hearts,
		Level:  g.level,
	}
	if g.mothership.Active {
		hud.MothershipHits = g.mothership.Hits
		hud.MothershipHitsToKill = g.cfg.MothershipHitsToKill
	}
	return hud
}
