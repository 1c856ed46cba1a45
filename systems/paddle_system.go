package systems

import (
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/vmath"
)

// PaddleSystem integrates paddle velocity and snaps paddles inside the walls
type PaddleSystem struct{}

// NewPaddleSystem creates the paddle integrator
func NewPaddleSystem() *PaddleSystem {
	return &PaddleSystem{}
}

// Priority returns the system's priority
func (s *PaddleSystem) Priority() int {
	return 20
}

// Update moves both paddles; clamping is a hard snap, not a collision response
func (s *PaddleSystem) Update(m *engine.Match) {
	for _, p := range []*engine.Paddle{&m.Left, &m.Right} {
		p.Y = vmath.Clamp(p.Y+p.DY, parameter.PaddleMinY, parameter.PaddleMaxY)
	}
}
