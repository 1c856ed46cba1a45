package engine

import (
	"time"

	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/parameter"
)

// MatchConfig selects the local play mode
type MatchConfig struct {
	LeftControl core.Control
}

// Match owns all state of a single match
// Not safe for concurrent use; one goroutine ticks and renders
type Match struct {
	Left  Paddle
	Right Paddle
	Ball  Ball

	Score      Score
	Difficulty Difficulty

	// AITarget is the last sampled ball y the AI paddle chases
	AITarget float64

	LeftControl core.Control

	// GameOver latches once either player reaches the winning score
	GameOver bool
	Winner   core.Player

	Events    *event.EventQueue
	Scheduler *Scheduler

	clock   *PausableClock
	systems []System
	frame   int64
}

// NewMatch creates a match with all entities at their starting positions
func NewMatch(cfg MatchConfig, tp TimeProvider) *Match {
	return &Match{
		Left:        newPaddle(parameter.LeftPaddleX),
		Right:       newPaddle(parameter.RightPaddleX),
		Ball:        newBall(),
		Difficulty:  newDifficulty(),
		LeftControl: cfg.LeftControl,
		Events:      event.NewEventQueue(),
		Scheduler:   NewScheduler(),
		clock:       NewPausableClock(tp),
	}
}

// AddSystem adds a system and keeps systems sorted by priority
func (m *Match) AddSystem(system System) {
	m.systems = append(m.systems, system)

	// Bubble sort, small N
	for i := 0; i < len(m.systems)-1; i++ {
		for j := 0; j < len(m.systems)-i-1; j++ {
			if m.systems[j].Priority() > m.systems[j+1].Priority() {
				m.systems[j], m.systems[j+1] = m.systems[j+1], m.systems[j]
			}
		}
	}
}

// Systems returns a copy of the registered systems in run order
func (m *Match) Systems() []System {
	out := make([]System, len(m.systems))
	copy(out, m.systems)
	return out
}

// Now returns pausable game time
func (m *Match) Now() time.Time {
	return m.clock.Now()
}

// Paused reports whether the match clock is paused
func (m *Match) Paused() bool {
	return m.clock.IsPaused()
}

// FrameNumber returns the count of unpaused ticks
func (m *Match) FrameNumber() int64 {
	return m.frame
}

// Paddle returns the paddle defending side
func (m *Match) Paddle(side core.Side) *Paddle {
	if side == core.SideLeft {
		return &m.Left
	}
	return &m.Right
}

// Emit pushes an event for the host
func (m *Match) Emit(t event.EventType, payload any) {
	m.Events.Push(event.GameEvent{Type: t, Payload: payload})
}

// Tick applies intents then advances the match by one frame
// Order: intents, due scheduled entries, systems by priority
// After match over only scheduled entries run
func (m *Match) Tick(intents []input.Intent) {
	for _, it := range intents {
		m.Apply(it)
	}

	if m.clock.IsPaused() {
		return
	}
	m.frame++

	m.Scheduler.RunDue(m.clock.Now(), m)

	if m.GameOver {
		return
	}

	for _, system := range m.systems {
		system.Update(m)
		if m.GameOver {
			return
		}
	}
}

// Apply mutates state for a single intent; the next integration step picks it up
func (m *Match) Apply(it input.Intent) {
	switch it.Type {
	case input.IntentRightUp, input.IntentRightDown, input.IntentLeftUp, input.IntentLeftDown:
		if m.GameOver {
			return
		}
		side, dir, _ := it.Type.Paddle()
		if side == core.SideLeft && m.LeftControl == core.ControlAI {
			return
		}
		p := m.Paddle(side)
		if it.Pressed {
			p.DY = dir * parameter.HumanPaddleSpeed
		} else {
			p.DY = 0
		}

	case input.IntentRestart:
		if m.GameOver {
			m.Emit(event.EventRestartRequested, nil)
		}

	case input.IntentTogglePause:
		if m.GameOver {
			return
		}
		paused := m.clock.Toggle()
		m.Emit(event.EventPauseToggled, &event.PausePayload{Paused: paused})
	}
}
