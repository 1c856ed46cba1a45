package systems

import (
	"testing"
	"time"

	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/parameter"
)

var testEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// newTestMatch returns a fully wired match on a mock clock
func newTestMatch(t *testing.T, control core.Control) (*engine.Match, *engine.MockTimeProvider) {
	t.Helper()
	clock := engine.NewMockTimeProvider(testEpoch)
	m := NewMatch(engine.MatchConfig{LeftControl: control}, clock)
	return m, clock
}

// parkBall puts the ball in the middle of the field with no velocity so it cannot interact
func parkBall(m *engine.Match) {
	m.Ball.X = parameter.FieldWidth / 2
	m.Ball.Y = parameter.FieldHeight / 2
	m.Ball.DX = 0
	m.Ball.DY = 0
}

// forceExit places the ball just past a goal line, moving outward
func forceExit(m *engine.Match, side core.Side) {
	m.Ball.Y = parameter.FieldHeight / 2
	m.Ball.DY = 0
	if side == core.SideRight {
		m.Ball.X = parameter.FieldWidth + 1
		m.Ball.DX = parameter.BaseBallSpeed
	} else {
		m.Ball.X = -1
		m.Ball.DX = -parameter.BaseBallSpeed
	}
}

// countEvents drains the queue and counts events of type et
func countEvents(m *engine.Match, et event.EventType) int {
	n := 0
	for _, ev := range m.Events.Consume() {
		if ev.Type == et {
			n++
		}
	}
	return n
}
