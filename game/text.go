package game

import "fmt"

// Screen copy shared by every front end
const (
	TitleText          = "Mothership Mayhem"
	StartPrompt        = "Press Enter to Start"
	InfoPrompt         = "Press 'I' for Instructions"
	InstructionsTitle  = "Instructions"
	InstructionsFooter = "Press Backspace to Return and Esc to exit the game"
	WinText            = "You Win!"
	LoseText           = "You Lose!"
	RestartPrompt      = "Press Backspace to Play Again or Esc to exit"
)

// Instructions returns the numbered rules shown on the instructions screen
func Instructions(cfg Config) []string {
	return []string{
		"1. Move the jet with LEFT and RIGHT arrow keys.",
		"2. Shoot with SPACE to destroy aliens.",
		"3. Avoid the mothership projectiles.",
		fmt.Sprintf("4. Destroy the mothership with %d hits.", cfg.MothershipHitsToKill),
		"5. Survive to win the game.",
	}
}

// ScoreText is the score label drawn during play
func ScoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// EndText returns the banner for a finished screen, or "" for any other screen
func EndText(s Screen) string {
	switch s {
	case ScreenWon:
		return WinText
	case ScreenLost:
		return LoseText
	default:
		return ""
	}
}
