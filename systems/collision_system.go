package systems

import (
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/vmath"
)

// CollisionSystem deflects the ball off paddles and tracks the hit tier
type CollisionSystem struct{}

// NewCollisionSystem creates the paddle collision system
func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

// Priority returns the system's priority
func (s *CollisionSystem) Priority() int {
	return 50
}

// Update tests left then right paddle
// A hit adds one unit of horizontal speed, points the ball away from the paddle
// and places it flush against the paddle face so the next tick does not re-trigger
func (s *CollisionSystem) Update(m *engine.Match) {
	ball := &m.Ball
	if ball.Resetting {
		return
	}

	var side core.Side
	switch {
	case vmath.Collides(ball.Rect, m.Left.Rect):
		ball.DX = vmath.Abs(ball.DX) + parameter.PaddleHitSpeedIncrease
		ball.X = m.Left.Right()
		side = core.SideLeft
	case vmath.Collides(ball.Rect, m.Right.Rect):
		ball.DX = -(vmath.Abs(ball.DX) + parameter.PaddleHitSpeedIncrease)
		ball.X = m.Right.X - ball.Width
		side = core.SideRight
	default:
		return
	}

	ball.Tier++
	m.Difficulty.BallSpeed++

	m.Emit(event.EventPaddleHit, &event.PaddleHitPayload{
		Side:  side,
		Speed: vmath.Abs(ball.DX),
		Tier:  ball.Tier,
	})
}
