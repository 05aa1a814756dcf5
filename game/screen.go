package game

// Screen is the active screen mode. Exactly one is active at a time.
type Screen int

const (
	ScreenTitle Screen = iota
	ScreenInstructions
	ScreenPlaying
	ScreenWon
	ScreenLost
)

// String returns the screen name
func (s Screen) String() string {
	switch s {
	case ScreenTitle:
		return "title"
	case ScreenInstructions:
		return "instructions"
	case ScreenPlaying:
		return "playing"
	case ScreenWon:
		return "won"
	case ScreenLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Finished reports whether the screen ends a run (won or lost)
func (s Screen) Finished() bool {
	return s == ScreenWon || s == ScreenLost
}
