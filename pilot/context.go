package pilot

import (
	"mothershipmayhem/game"
)

// Box is a rectangle as seen by pilot scripts
type Box struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// MothershipInfo describes the boss for pilot scripts
type MothershipInfo struct {
	Box
	Active     bool `json:"active"`
	Hits       int  `json:"hits"`
	HitsToKill int  `json:"hitsToKill"`
	Direction  int  `json:"direction"`
}

// Context is passed to the script's decide function once per tick
type Context struct {
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Tick         uint64 `json:"tick"`
	Level        int    `json:"level"`
	Score        int    `json:"score"`
	Hearts       int    `json:"hearts"`
	JetSpeed     int    `json:"jetSpeed"`

	Jet             Box            `json:"jet"`
	Aliens          []Box          `json:"aliens"`
	PlayerShots     []Box          `json:"playerShots"`
	MothershipShots []Box          `json:"mothershipShots"`
	Mothership      MothershipInfo `json:"mothership"`
}

// Decision is returned by the script's decide function
type Decision struct {
	// Move is -1 for left, 1 for right, 0 to hold
	Move int  `json:"move"`
	Fire bool `json:"fire"`
}

// Actions converts a decision into the game actions it stands for
func (d Decision) Actions() []game.Action {
	actions := make([]game.Action, 0, 2)
	switch {
	case d.Move < 0:
		actions = append(actions, game.ActionMoveLeft)
	case d.Move > 0:
		actions = append(actions, game.ActionMoveRight)
	}
	if d.Fire {
		actions = append(actions, game.ActionFire)
	}
	return actions
}

// BuildContext snapshots the game for a pilot script
func BuildContext(g *game.Game) Context {
	cfg := g.Config()
	ms := g.Mothership()

	ctx := Context{
		ScreenWidth:  cfg.ScreenWidth,
		ScreenHeight: cfg.ScreenHeight,
		Tick:         g.Ticks(),
		Level:        g.Level(),
		Score:        g.Score(),
		Hearts:       g.Hearts(),
		JetSpeed:     cfg.JetSpeed,
		Jet:          box(g.Jet().Rect),
		Mothership: MothershipInfo{
			Box:        box(ms.Rect),
			Active:     ms.Active,
			Hits:       ms.Hits,
			HitsToKill: cfg.MothershipHitsToKill,
			Direction:  ms.Direction,
		},
	}

	aliens := g.Aliens()
	ctx.Aliens = make([]Box, 0, len(aliens))
	for _, a := range aliens {
		ctx.Aliens = append(ctx.Aliens, box(a.Rect))
	}
	ctx.PlayerShots = shotBoxes(g.PlayerShots())
	ctx.MothershipShots = shotBoxes(g.MothershipShots())

	return ctx
}

func shotBoxes(shots []game.Shot) []Box {
	out := make([]Box, 0, len(shots))
	for _, s := range shots {
		out = append(out, box(s.Rect))
	}
	return out
}

func box(r game.Rect) Box {
	return Box{X: r.X, Y: r.Y, W: r.W, H: r.H}
}
