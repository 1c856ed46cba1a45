package systems

import (
	"log"

	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/parameter"
)

// ScoreSystem detects the ball leaving the field and runs the round lifecycle
type ScoreSystem struct{}

// NewScoreSystem creates the scoring system
func NewScoreSystem() *ScoreSystem {
	return &ScoreSystem{}
}

// Priority returns the system's priority
func (s *ScoreSystem) Priority() int {
	return 40
}

// Update scores at most once per exit; the resetting latch blocks re-entry
func (s *ScoreSystem) Update(m *engine.Match) {
	ball := &m.Ball
	if ball.Resetting {
		return
	}
	if ball.X >= 0 && ball.X <= parameter.FieldWidth {
		return
	}

	ball.Resetting = true

	var scorer core.Player
	if ball.X > parameter.FieldWidth {
		// Past the right goal: player one scores, next launch heads left-to-right
		m.Score.PlayerOne++
		ball.DX = parameter.BaseBallSpeed
		scorer = core.PlayerOne
	} else {
		m.Score.PlayerTwo++
		ball.DX = -parameter.BaseBallSpeed
		scorer = core.PlayerTwo
		escalate(m)
	}

	// Only the AI side is re-centred
	if m.LeftControl == core.ControlAI {
		m.Left.Y = parameter.PaddleCenterY
	}

	ball.Tier = 0

	m.Scheduler.Schedule(m.Now().Add(parameter.RespawnDelay), respawnBall)

	m.Emit(event.EventScoreChanged, &event.ScorePayload{
		PlayerOne: m.Score.PlayerOne,
		PlayerTwo: m.Score.PlayerTwo,
		Scorer:    scorer,
	})
	log.Printf("score: %s scored, %d-%d", scorer, m.Score.PlayerOne, m.Score.PlayerTwo)

	checkMatchOver(m)
}

// escalate raises AI difficulty as player two's score grows
func escalate(m *engine.Match) {
	if m.Score.PlayerTwo%2 == 1 {
		m.Difficulty.AIPaddleSpeed++
	}
	if m.Score.PlayerTwo > parameter.AILateGameScore {
		m.Difficulty.AIRefreshThreshold = parameter.AILateRefreshThreshold
	}
}

// checkMatchOver latches game over once; later calls are no-ops
func checkMatchOver(m *engine.Match) {
	if m.GameOver {
		return
	}
	if m.Score.PlayerOne < parameter.WinningScore && m.Score.PlayerTwo < parameter.WinningScore {
		return
	}

	m.GameOver = true
	if m.Score.PlayerOne > m.Score.PlayerTwo {
		m.Winner = core.PlayerOne
	} else {
		m.Winner = core.PlayerTwo
	}

	m.Emit(event.EventMatchOver, &event.MatchOverPayload{
		Winner:    m.Winner,
		PlayerOne: m.Score.PlayerOne,
		PlayerTwo: m.Score.PlayerTwo,
	})
	log.Printf("match over: %s wins %d-%d", m.Winner, m.Score.PlayerOne, m.Score.PlayerTwo)
}

// respawnBall re-centres the ball after the reset delay, keeping its velocity
// Harmless when it fires after match over
func respawnBall(m *engine.Match) {
	m.Ball.Resetting = false
	m.Ball.X = parameter.FieldWidth / 2
	m.Ball.Y = parameter.FieldHeight / 2
	m.Emit(event.EventBallRespawn, nil)
}
