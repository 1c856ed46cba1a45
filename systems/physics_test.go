package systems

import (
	"testing"

	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/vmath"
)

// TestPaddleClampHoldsEveryTick drives both paddles into the walls and checks bounds each tick
func TestPaddleClampHoldsEveryTick(t *testing.T) {
	m, clock := newTestMatch(t, core.ControlHuman)
	parkBall(m)

	phases := []struct {
		intents []input.Intent
		ticks   int
	}{
		{[]input.Intent{input.Press(input.IntentRightUp), input.Press(input.IntentLeftUp)}, 80},
		{[]input.Intent{input.Press(input.IntentRightDown), input.Press(input.IntentLeftDown)}, 120},
		{[]input.Intent{input.Release(input.IntentRightDown), input.Press(input.IntentLeftUp)}, 40},
	}

	for _, phase := range phases {
		for i := 0; i < phase.ticks; i++ {
			var intents []input.Intent
			if i == 0 {
				intents = phase.intents
			}
			m.Tick(intents)
			clock.Advance(parameter.FrameUpdateInterval)

			for _, p := range []vmath.Rect{m.Left.Rect, m.Right.Rect} {
				if p.Y < parameter.PaddleMinY || p.Y > parameter.PaddleMaxY {
					t.Fatalf("Paddle y %v outside [%v, %v]", p.Y, parameter.PaddleMinY, parameter.PaddleMaxY)
				}
			}
		}
	}

	if m.Right.Y != parameter.PaddleMaxY {
		t.Errorf("Expected right paddle snapped to bottom bound %v, got %v", parameter.PaddleMaxY, m.Right.Y)
	}
	if m.Right.DY != 0 {
		t.Errorf("Expected release to zero right paddle velocity, got %v", m.Right.DY)
	}
}

// TestPaddleClampAIClampsToo verifies the AI paddle obeys the same bounds
func TestPaddleClampAIClampsToo(t *testing.T) {
	m, _ := newTestMatch(t, core.ControlAI)
	ps := NewPaddleSystem()

	m.Left.Y = parameter.PaddleMinY + 1
	m.Left.DY = -10
	ps.Update(m)
	if m.Left.Y != parameter.PaddleMinY {
		t.Errorf("Expected snap to %v, got %v", parameter.PaddleMinY, m.Left.Y)
	}
}

func TestWallBounceIsElastic(t *testing.T) {
	tests := []struct {
		name  string
		y, dy float64
		wantY float64
	}{
		{"top wall", parameter.WallThickness + 2, -5, parameter.WallThickness},
		{"bottom wall", parameter.FieldHeight - parameter.WallThickness - parameter.BallSize - 2, 7, parameter.FieldHeight - 2*parameter.Grid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestMatch(t, core.ControlAI)
			bs := NewBallSystem()

			m.Ball.X = 300
			m.Ball.Y = tt.y
			m.Ball.DX = 5
			m.Ball.DY = tt.dy

			bs.Update(m)

			if m.Ball.Y != tt.wantY {
				t.Errorf("Expected ball clamped to %v, got %v", tt.wantY, m.Ball.Y)
			}
			if m.Ball.DY != -tt.dy {
				t.Errorf("Expected DY %v after bounce, got %v", -tt.dy, m.Ball.DY)
			}
			if m.Ball.X != 305 {
				t.Errorf("Expected horizontal motion unaffected, got x=%v", m.Ball.X)
			}
			if n := countEvents(m, event.EventWallBounce); n != 1 {
				t.Errorf("Expected 1 wall bounce event, got %d", n)
			}
		})
	}
}

func TestBallFrozenWhileResetting(t *testing.T) {
	m, _ := newTestMatch(t, core.ControlAI)
	bs := NewBallSystem()

	m.Ball.X = -3
	m.Ball.Y = 200
	m.Ball.DX = -5
	m.Ball.DY = 5
	m.Ball.Resetting = true

	for i := 0; i < 10; i++ {
		bs.Update(m)
	}

	if m.Ball.X != -3 || m.Ball.Y != 200 {
		t.Errorf("Expected ball to stay at (-3, 200) while resetting, got (%v, %v)", m.Ball.X, m.Ball.Y)
	}
}

// TestPaddleHitSpeedGrowsByOne walks seven alternating hits from base speed
func TestPaddleHitSpeedGrowsByOne(t *testing.T) {
	m, _ := newTestMatch(t, core.ControlAI)
	cs := NewCollisionSystem()

	m.Ball.DX = parameter.BaseBallSpeed
	m.Ball.DY = 0

	for hit := 1; hit <= 7; hit++ {
		before := vmath.Abs(m.Ball.DX)

		if m.Ball.DX > 0 {
			// Heading right: overlap the right paddle face
			m.Ball.X = m.Right.X - m.Ball.Width + 2
			m.Ball.Y = m.Right.Y + 10
		} else {
			m.Ball.X = m.Left.Right() - 2
			m.Ball.Y = m.Left.Y + 10
		}

		cs.Update(m)

		after := vmath.Abs(m.Ball.DX)
		if after != before+1 {
			t.Fatalf("Hit %d: expected speed %v, got %v", hit, before+1, after)
		}
		if m.Ball.Tier != hit {
			t.Errorf("Hit %d: expected tier %d, got %d", hit, hit, m.Ball.Tier)
		}
	}

	if vmath.Abs(m.Ball.DX) != 12 {
		t.Errorf("Expected speed 12 after seven hits, got %v", vmath.Abs(m.Ball.DX))
	}
	if m.Difficulty.BallSpeed != parameter.BaseBallSpeed+7 {
		t.Errorf("Expected global ball speed %v, got %v", parameter.BaseBallSpeed+7, m.Difficulty.BallSpeed)
	}
	if !m.Ball.Hot() {
		t.Error("Expected ball hot after seven hits")
	}
	if n := countEvents(m, event.EventPaddleHit); n != 7 {
		t.Errorf("Expected 7 paddle hit events, got %d", n)
	}
}

func TestPaddleHitRepositionsFlush(t *testing.T) {
	m, _ := newTestMatch(t, core.ControlAI)
	cs := NewCollisionSystem()

	// Left paddle
	m.Ball.X = m.Left.X + 3
	m.Ball.Y = m.Left.Y
	m.Ball.DX = -6
	cs.Update(m)

	if m.Ball.X != m.Left.Right() {
		t.Errorf("Expected ball flush at %v, got %v", m.Left.Right(), m.Ball.X)
	}
	if m.Ball.DX != 7 {
		t.Errorf("Expected DX 7 after left hit, got %v", m.Ball.DX)
	}

	// Flush position must not re-trigger
	cs.Update(m)
	if m.Ball.DX != 7 {
		t.Errorf("Expected no second hit from flush position, got DX %v", m.Ball.DX)
	}

	// Right paddle
	m.Ball.X = m.Right.X + 1
	m.Ball.Y = m.Right.Y
	m.Ball.DX = 7
	cs.Update(m)

	if m.Ball.X != m.Right.X-m.Ball.Width {
		t.Errorf("Expected ball flush at %v, got %v", m.Right.X-m.Ball.Width, m.Ball.X)
	}
	if m.Ball.DX != -8 {
		t.Errorf("Expected DX -8 after right hit, got %v", m.Ball.DX)
	}
}

// TestPaddleHitTouchingEdgeMisses verifies touching edges are not a hit
func TestPaddleHitTouchingEdgeMisses(t *testing.T) {
	m, _ := newTestMatch(t, core.ControlAI)
	cs := NewCollisionSystem()

	m.Ball.X = m.Left.Right()
	m.Ball.Y = m.Left.Y
	m.Ball.DX = -5
	cs.Update(m)

	if m.Ball.DX != -5 || m.Ball.Tier != 0 {
		t.Errorf("Expected no hit at touching edge, got DX=%v tier=%d", m.Ball.DX, m.Ball.Tier)
	}
}
