package game

// Action is a discrete player command, already decoupled from physical keys
type Action int

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionFire
	ActionConfirm
	ActionInfo
	ActionBack
	ActionExit
)

// String returns the action name
func (a Action) String() string {
	switch a {
	case ActionMoveLeft:
		return "left"
	case ActionMoveRight:
		return "right"
	case ActionFire:
		return "fire"
	case ActionConfirm:
		return "confirm"
	case ActionInfo:
		return "info"
	case ActionBack:
		return "back"
	case ActionExit:
		return "exit"
	default:
		return "none"
	}
}

// HandleAction applies one input event. Actions that do not apply to the
// active screen are ignored.
func (g *Game) HandleAction(a Action) {
	if a == ActionExit {
		g.exit()
		return
	}

	switch g.screen {
	case ScreenTitle:
		switch a {
		case ActionConfirm:
			g.setScreen(ScreenPlaying)
		case ActionInfo:
			g.setScreen(ScreenInstructions)
		}
	case ScreenInstructions:
		if a == ActionBack {
			g.setScreen(ScreenTitle)
		}
	case ScreenPlaying:
		switch a {
		case ActionMoveLeft:
			g.moveJet(-g.cfg.JetSpeed)
		case ActionMoveRight:
			g.moveJet(g.cfg.JetSpeed)
		case ActionFire:
			g.playerShots = append(g.playerShots, newPlayerShot(g.cfg, g.jet))
			g.audio.Play(SoundFire)
		}
	case ScreenWon, ScreenLost:
		if a == ActionBack {
			g.Restart()
		}
	}
}

// moveJet shifts the jet horizontally, keeping it on screen
func (g *Game) moveJet(dx int) {
	g.jet.X = Clamp(g.jet.X+dx, 0, g.cfg.MaxJetX())
}

// exit stops the audio and flags the game for termination
func (g *Game) exit() {
	if g.quit {
		return
	}
	g.quit = true
	g.audio.StopAll()
	g.log.WithField("score", g.score).Info("exit requested")
}
