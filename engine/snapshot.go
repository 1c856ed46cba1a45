package engine

import (
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/vmath"
)

// Snapshot is the read-only view handed to renderers each frame
type Snapshot struct {
	FieldWidth    float64
	FieldHeight   float64
	WallThickness float64

	Left  vmath.Rect
	Right vmath.Rect
	Ball  vmath.Rect

	BallTier    int
	BallHot     bool
	BallVisible bool

	Score       Score
	Paused      bool
	GameOver    bool
	Winner      core.Player
	LeftControl core.Control
}

// Snapshot captures the current frame
func (m *Match) Snapshot() Snapshot {
	return Snapshot{
		FieldWidth:    parameter.FieldWidth,
		FieldHeight:   parameter.FieldHeight,
		WallThickness: parameter.WallThickness,
		Left:          m.Left.Rect,
		Right:         m.Right.Rect,
		Ball:          m.Ball.Rect,
		BallTier:      m.Ball.Tier,
		BallHot:       m.Ball.Hot(),
		BallVisible:   !m.Ball.Resetting,
		Score:         m.Score,
		Paused:        m.clock.IsPaused(),
		GameOver:      m.GameOver,
		Winner:        m.Winner,
		LeftControl:   m.LeftControl,
	}
}
