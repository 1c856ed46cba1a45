package systems

import (
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/vmath"
)

// AISystem drives the left paddle toward a remembered ball y
// The target is only resampled once the ball drifts past the refresh threshold,
// and the paddle speed is capped below the ball speed, so tracking is imperfect
type AISystem struct{}

// NewAISystem creates the AI controller
func NewAISystem() *AISystem {
	return &AISystem{}
}

// Priority returns the system's priority
func (s *AISystem) Priority() int {
	return 10
}

// Update sets the left paddle velocity for this tick
func (s *AISystem) Update(m *engine.Match) {
	if m.LeftControl != core.ControlAI {
		return
	}

	paddle := &m.Left

	// Ball not in play: hold still
	if m.Ball.Resetting {
		paddle.DY = 0
		return
	}

	delta := m.AITarget - m.Ball.Y
	if vmath.Abs(delta) >= m.Difficulty.AIRefreshThreshold || m.Score.PlayerTwo > parameter.AIRubberBandScore {
		m.AITarget = m.Ball.Y
	}

	distance := paddle.Y - m.AITarget
	speed := min(m.Difficulty.AIPaddleSpeed, m.Difficulty.BallSpeed-parameter.AISpeedMargin)

	paddle.DY = 0
	if vmath.Abs(distance) > speed {
		if distance > 0 {
			paddle.DY = -speed
		} else {
			paddle.DY = speed
		}
	}
}
