package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB color definitions for the field and HUD
var (
	RgbBackground = tcell.NewRGBColor(0, 0, 0)       // Black field
	RgbWall       = tcell.NewRGBColor(211, 211, 211) // Light grey
	RgbCenterLine = tcell.NewRGBColor(211, 211, 211) // Light grey, dotted
	RgbPaddle     = tcell.NewRGBColor(255, 255, 255) // White
	RgbBall       = tcell.NewRGBColor(255, 255, 255) // White while cool
	RgbBallHot    = tcell.NewRGBColor(255, 0, 0)     // Red past the hot tier

	RgbScoreText   = tcell.NewRGBColor(255, 255, 255)
	RgbHintText    = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbHeadlineWin = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbHeadlineEnd = tcell.NewRGBColor(255, 80, 80)   // Normal red

	// Status indicator backgrounds
	RgbPausedBg    = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbTwoPlayerBg = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbMutedBg     = tcell.NewRGBColor(128, 0, 128)   // Dark purple
	RgbStatusText  = tcell.NewRGBColor(0, 0, 0)       // Dark text for status
)

// GetBallColor returns the ball colour for its hot state
func GetBallColor(hot bool) tcell.Color {
	if hot {
		return RgbBallHot
	}
	return RgbBall
}

// GetHeadlineColor returns the game over headline colour
// A human win reads green, anything else red
func GetHeadlineColor(humanWon bool) tcell.Color {
	if humanWon {
		return RgbHeadlineWin
	}
	return RgbHeadlineEnd
}
