package systems

import (
	"testing"
	"time"

	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/parameter"
)

func TestPipelineOrder(t *testing.T) {
	m, _ := newTestMatch(t, core.ControlAI)

	want := []int{10, 20, 30, 40, 50}
	got := m.Systems()
	if len(got) != len(want) {
		t.Fatalf("Expected %d systems, got %d", len(want), len(got))
	}
	for i, s := range got {
		if s.Priority() != want[i] {
			t.Errorf("System %d: expected priority %d, got %d", i, want[i], s.Priority())
		}
	}
}

// TestPauseHoldsRespawn verifies game time freezes the respawn delay
func TestPauseHoldsRespawn(t *testing.T) {
	m, clock := newTestMatch(t, core.ControlAI)
	forceExit(m, core.SideRight)
	m.Tick(nil)
	if !m.Ball.Resetting {
		t.Fatal("Expected ball resetting after exit")
	}

	clock.Advance(100 * time.Millisecond)
	m.Tick([]input.Intent{input.Press(input.IntentTogglePause)})
	if !m.Paused() {
		t.Fatal("Expected match paused")
	}
	frame := m.FrameNumber()

	clock.Advance(2 * time.Second)
	for i := 0; i < 3; i++ {
		m.Tick(nil)
	}
	if !m.Ball.Resetting {
		t.Error("Expected respawn held while paused")
	}
	if m.FrameNumber() != frame {
		t.Errorf("Expected frame counter frozen at %d, got %d", frame, m.FrameNumber())
	}

	m.Tick([]input.Intent{input.Press(input.IntentTogglePause)})
	if m.Paused() {
		t.Fatal("Expected match resumed")
	}

	// 100ms elapsed before the pause; 299ms more is still short of the delay
	clock.Advance(299 * time.Millisecond)
	m.Tick(nil)
	if !m.Ball.Resetting {
		t.Error("Expected ball still resetting 1ms before respawn")
	}

	clock.Advance(time.Millisecond)
	m.Tick(nil)
	if m.Ball.Resetting {
		t.Error("Expected respawn once game time reaches the delay")
	}

	var toggles []bool
	for _, ev := range m.Events.Consume() {
		if ev.Type == event.EventPauseToggled {
			toggles = append(toggles, ev.Payload.(*event.PausePayload).Paused)
		}
	}
	if len(toggles) != 2 || !toggles[0] || toggles[1] {
		t.Errorf("Expected pause toggles [true false], got %v", toggles)
	}
}

func TestPausedTickFreezesMotion(t *testing.T) {
	m, _ := newTestMatch(t, core.ControlHuman)
	m.Tick([]input.Intent{input.Press(input.IntentTogglePause)})

	ball := m.Ball.Rect
	m.Tick([]input.Intent{input.Press(input.IntentRightUp)})
	m.Tick(nil)

	if m.Ball.Rect != ball {
		t.Errorf("Expected ball frozen while paused, got %+v", m.Ball.Rect)
	}
	if m.Right.Y != parameter.PaddleCenterY {
		t.Errorf("Expected paddle frozen while paused, got %v", m.Right.Y)
	}
	// Intent still lands; it takes effect on resume
	if m.Right.DY != -parameter.HumanPaddleSpeed {
		t.Errorf("Expected paddle velocity %v recorded, got %v", -parameter.HumanPaddleSpeed, m.Right.DY)
	}
}

func TestRestartOnlyAfterGameOver(t *testing.T) {
	m, clock := newTestMatch(t, core.ControlAI)

	m.Tick([]input.Intent{input.Press(input.IntentRestart)})
	if n := countEvents(m, event.EventRestartRequested); n != 0 {
		t.Errorf("Expected restart ignored mid-match, got %d events", n)
	}

	m.Score.PlayerOne = parameter.WinningScore - 1
	forceExit(m, core.SideRight)
	m.Tick(nil)
	if !m.GameOver {
		t.Fatal("Expected game over")
	}
	m.Events.Consume()

	m.Tick([]input.Intent{
		input.Press(input.IntentTogglePause),
		input.Press(input.IntentRestart),
	})
	if m.Paused() {
		t.Error("Expected pause ignored after game over")
	}
	if n := countEvents(m, event.EventRestartRequested); n != 1 {
		t.Errorf("Expected one restart request, got %d", n)
	}

	fresh := NewMatch(engine.MatchConfig{LeftControl: m.LeftControl}, clock)
	if fresh.GameOver || fresh.Score != (engine.Score{}) {
		t.Error("Expected restarted match to start clean")
	}
	if fresh.Difficulty.AIPaddleSpeed != parameter.AIInitialPaddleSpeed {
		t.Errorf("Expected fresh AI speed %v, got %v", parameter.AIInitialPaddleSpeed, fresh.Difficulty.AIPaddleSpeed)
	}
}

// TestTwoPlayerLeftPaddle verifies left intents only drive a human paddle
func TestTwoPlayerLeftPaddle(t *testing.T) {
	tests := []struct {
		name    string
		control core.Control
		wantY   float64
	}{
		{"human", core.ControlHuman, parameter.PaddleCenterY - 5*parameter.HumanPaddleSpeed},
		{"ai ignores keys", core.ControlAI, parameter.PaddleCenterY},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestMatch(t, tt.control)
			parkBall(m)
			m.Ball.Resetting = true // AI idles and holds position

			m.Tick([]input.Intent{input.Press(input.IntentLeftUp)})
			for i := 0; i < 4; i++ {
				m.Tick(nil)
			}
			m.Tick([]input.Intent{input.Release(input.IntentLeftUp)})

			if m.Left.Y != tt.wantY {
				t.Errorf("Expected left Y %v, got %v", tt.wantY, m.Left.Y)
			}
			if m.Left.DY != 0 {
				t.Errorf("Expected left paddle stopped, got DY %v", m.Left.DY)
			}
		})
	}
}
