package engine

import (
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/vmath"
)

// Paddle is a vertically moving rectangle
type Paddle struct {
	vmath.Rect
	DY float64
}

func newPaddle(x float64) Paddle {
	return Paddle{
		Rect: vmath.Rect{
			X:      x,
			Y:      parameter.PaddleCenterY,
			Width:  parameter.PaddleWidth,
			Height: parameter.PaddleHeight,
		},
	}
}

// Ball carries its own authoritative velocity, the reset latch and the hit tier
type Ball struct {
	vmath.Rect
	DX, DY float64

	// Resetting is true between a score and the respawn; no integration happens meanwhile
	Resetting bool

	// Tier counts paddle hits since the last score
	Tier int
}

func newBall() Ball {
	return Ball{
		Rect: vmath.Rect{
			X:      parameter.FieldWidth / 2,
			Y:      parameter.FieldHeight / 2,
			Width:  parameter.BallSize,
			Height: parameter.BallSize,
		},
		DX: parameter.BaseBallSpeed,
		DY: -parameter.BaseBallSpeed,
	}
}

// Hot reports whether the tier is past the colour threshold
func (b *Ball) Hot() bool {
	return b.Tier > parameter.BallHotTier
}

// Score is the match score; player one defends the left goal
type Score struct {
	PlayerOne int
	PlayerTwo int
}

// Difficulty escalates monotonically within a match
type Difficulty struct {
	// BallSpeed tracks base speed plus hits; the ball's DX is authoritative
	BallSpeed float64

	AIPaddleSpeed      float64
	AIRefreshThreshold float64
}

func newDifficulty() Difficulty {
	return Difficulty{
		BallSpeed:          parameter.BaseBallSpeed,
		AIPaddleSpeed:      parameter.AIInitialPaddleSpeed,
		AIRefreshThreshold: parameter.AIInitialRefreshThreshold,
	}
}
