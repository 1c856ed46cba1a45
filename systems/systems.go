package systems

import "github.com/lixenwraith/vi-pong/engine"

// NewMatch creates a match wired with the full per-tick pipeline:
// AI, paddle integration, ball integration, scoring, paddle collision
func NewMatch(cfg engine.MatchConfig, tp engine.TimeProvider) *engine.Match {
	m := engine.NewMatch(cfg, tp)
	m.AddSystem(NewAISystem())
	m.AddSystem(NewPaddleSystem())
	m.AddSystem(NewBallSystem())
	m.AddSystem(NewScoreSystem())
	m.AddSystem(NewCollisionSystem())
	return m
}
