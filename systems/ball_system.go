package systems

import (
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/parameter"
)

// BallSystem integrates the ball and reflects it off the top and bottom walls
type BallSystem struct{}

// NewBallSystem creates the ball integrator
func NewBallSystem() *BallSystem {
	return &BallSystem{}
}

// Priority returns the system's priority
func (s *BallSystem) Priority() int {
	return 30
}

// Update moves the ball unless it is waiting for respawn
// Reflection is elastic: position clamps to the wall and DY flips sign
func (s *BallSystem) Update(m *engine.Match) {
	ball := &m.Ball
	if ball.Resetting {
		return
	}

	ball.X += ball.DX
	ball.Y += ball.DY

	top := parameter.WallThickness
	bottom := parameter.FieldHeight - parameter.WallThickness - ball.Height

	switch {
	case ball.Y < top:
		ball.Y = top
		ball.DY = -ball.DY
		m.Emit(event.EventWallBounce, nil)
	case ball.Y > bottom:
		ball.Y = bottom
		ball.DY = -ball.DY
		m.Emit(event.EventWallBounce, nil)
	}
}
