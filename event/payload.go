package event

import "github.com/lixenwraith/vi-pong/core"

// ScorePayload carries the score pair after a goal
type ScorePayload struct {
	PlayerOne int
	PlayerTwo int
	Scorer    core.Player
}

// PaddleHitPayload describes a deflection
type PaddleHitPayload struct {
	Side  core.Side
	Speed float64 // Horizontal speed magnitude after the hit
	Tier  int
}

// MatchOverPayload carries the final result
type MatchOverPayload struct {
	Winner    core.Player
	PlayerOne int
	PlayerTwo int
}

// PausePayload carries the pause state after a toggle
type PausePayload struct {
	Paused bool
}
