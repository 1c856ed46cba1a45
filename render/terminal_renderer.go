package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/vmath"
)

// HUDState carries host-owned flags the match does not know about
type HUDState struct {
	Muted bool
}

// TerminalRenderer draws match snapshots onto a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	layout Layout
}

// NewTerminalRenderer creates a renderer for screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen}
}

// Layout returns the mapping used by the last frame
func (r *TerminalRenderer) Layout() Layout {
	return r.layout
}

// RenderFrame renders the entire frame
// Screen size is read every frame so resizes need no notification
func (r *TerminalRenderer) RenderFrame(snap engine.Snapshot, hud HUDState) {
	width, height := r.screen.Size()
	r.layout = NewLayout(width, height, snap.FieldWidth, snap.FieldHeight)

	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', defaultStyle)

	if r.layout.TooSmall() {
		r.drawResizeHint(defaultStyle)
		r.screen.Show()
		return
	}

	r.drawScoreLine(snap, defaultStyle)
	r.drawRally(snap, defaultStyle)
	r.drawIndicators(snap, hud, defaultStyle)

	if snap.GameOver {
		r.drawGameOver(snap, defaultStyle)
		r.screen.Show()
		return
	}

	r.drawWalls(snap, defaultStyle)
	r.drawCenterLine(snap, defaultStyle)

	paddleStyle := defaultStyle.Foreground(RgbPaddle)
	r.fillRect(snap.Left, parameter.BlockRune, paddleStyle)
	r.fillRect(snap.Right, parameter.BlockRune, paddleStyle)

	if snap.BallVisible {
		r.fillRect(snap.Ball, parameter.BlockRune, defaultStyle.Foreground(GetBallColor(snap.BallHot)))
	}

	r.screen.Show()
}

// drawScoreLine centres the score text on the top row
func (r *TerminalRenderer) drawScoreLine(snap engine.Snapshot, defaultStyle tcell.Style) {
	text := fmt.Sprintf(parameter.ScoreFormat, snap.Score.PlayerOne, snap.Score.PlayerTwo)
	r.drawCentered(0, text, defaultStyle.Foreground(RgbScoreText))
}

// drawRally shows paddle hits since the last score at the left of the score row
func (r *TerminalRenderer) drawRally(snap engine.Snapshot, defaultStyle tcell.Style) {
	if snap.GameOver || snap.BallTier == 0 {
		return
	}
	text := fmt.Sprintf(parameter.RallyFormat, snap.BallTier)
	r.drawText(0, 0, text, defaultStyle.Foreground(GetBallColor(snap.BallHot)))
}

// drawIndicators right-aligns status badges on the score row
func (r *TerminalRenderer) drawIndicators(snap engine.Snapshot, hud HUDState, defaultStyle tcell.Style) {
	type badge struct {
		text string
		bg   tcell.Color
	}
	var badges []badge
	if snap.LeftControl == core.ControlHuman {
		badges = append(badges, badge{parameter.TwoPlayerText, RgbTwoPlayerBg})
	}
	if hud.Muted {
		badges = append(badges, badge{parameter.MutedText, RgbMutedBg})
	}
	if snap.Paused {
		badges = append(badges, badge{parameter.PausedText, RgbPausedBg})
	}

	x := r.layout.Width
	for i := len(badges) - 1; i >= 0; i-- {
		b := badges[i]
		x -= len([]rune(b.text))
		r.drawText(x, 0, b.text, defaultStyle.Foreground(RgbStatusText).Background(b.bg))
	}
}

func (r *TerminalRenderer) drawWalls(snap engine.Snapshot, defaultStyle tcell.Style) {
	style := defaultStyle.Foreground(RgbWall)
	top := vmath.Rect{Width: snap.FieldWidth, Height: snap.WallThickness}
	bottom := vmath.Rect{Y: snap.FieldHeight - snap.WallThickness, Width: snap.FieldWidth, Height: snap.WallThickness}
	r.fillRect(top, parameter.BlockRune, style)
	r.fillRect(bottom, parameter.BlockRune, style)
}

// drawCenterLine draws a dotted net on every other row between the walls
func (r *TerminalRenderer) drawCenterLine(snap engine.Snapshot, defaultStyle tcell.Style) {
	style := defaultStyle.Foreground(RgbCenterLine)
	x := r.layout.Column(snap.FieldWidth / 2)
	first := r.layout.Row(snap.WallThickness)
	last := r.layout.Row(snap.FieldHeight-snap.WallThickness) - 1

	for y := first; y <= last; y += 2 {
		r.screen.SetContent(x, y, parameter.CenterLineRune, nil, style)
	}
}

// drawGameOver replaces the field with the result screen
func (r *TerminalRenderer) drawGameOver(snap engine.Snapshot, defaultStyle tcell.Style) {
	headline, humanWon := gameOverHeadline(snap)

	mid := r.layout.FieldTop + r.layout.FieldRows/2
	r.drawCentered(mid-2, headline, defaultStyle.Foreground(GetHeadlineColor(humanWon)).Bold(true))
	r.drawCentered(mid, fmt.Sprintf("%d - %d", snap.Score.PlayerOne, snap.Score.PlayerTwo), defaultStyle.Foreground(RgbScoreText))
	r.drawCentered(mid+2, parameter.GameOverHintText, defaultStyle.Foreground(RgbHintText))
}

// gameOverHeadline resolves the result text
// Against the AI the human plays the right paddle, which is player two
func gameOverHeadline(snap engine.Snapshot) (string, bool) {
	if snap.LeftControl == core.ControlAI {
		if snap.Winner == core.PlayerTwo {
			return parameter.YouWinText, true
		}
		return parameter.YouLoseText, false
	}
	if snap.Winner == core.PlayerOne {
		return parameter.PlayerOneWinText, true
	}
	return parameter.PlayerTwoWinText, true
}

func (r *TerminalRenderer) drawResizeHint(defaultStyle tcell.Style) {
	r.drawCentered(r.layout.Height/2, parameter.ResizeHintText, defaultStyle.Foreground(RgbHintText))
}

// fillRect paints every cell covered by rect
func (r *TerminalRenderer) fillRect(rect vmath.Rect, ch rune, style tcell.Style) {
	x0, y0, x1, y1, ok := r.layout.Cells(rect)
	if !ok {
		return
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

func (r *TerminalRenderer) drawCentered(y int, text string, style tcell.Style) {
	x := (r.layout.Width - len([]rune(text))) / 2
	r.drawText(max(x, 0), y, text, style)
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
