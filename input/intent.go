package input

import "github.com/lixenwraith/vi-pong/core"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// Paddle intents carry press/release semantics
	IntentRightUp
	IntentRightDown
	IntentLeftUp
	IntentLeftDown

	// System-level intents
	IntentQuit
	IntentRestart
	IntentTogglePause
	IntentToggleMute
)

// Intent is a single input command applied by the match on the next tick
type Intent struct {
	Type    IntentType
	Pressed bool // Paddle intents only; false = key released
}

// Press returns a pressed intent of type t
func Press(t IntentType) Intent {
	return Intent{Type: t, Pressed: true}
}

// Release returns a released intent of type t
func Release(t IntentType) Intent {
	return Intent{Type: t, Pressed: false}
}

// IsPaddle reports whether t drives a paddle
func (t IntentType) IsPaddle() bool {
	return t >= IntentRightUp && t <= IntentLeftDown
}

// Paddle returns the paddle side and direction (-1 up, +1 down) of a paddle intent
func (t IntentType) Paddle() (side core.Side, dir float64, ok bool) {
	switch t {
	case IntentRightUp:
		return core.SideRight, -1, true
	case IntentRightDown:
		return core.SideRight, 1, true
	case IntentLeftUp:
		return core.SideLeft, -1, true
	case IntentLeftDown:
		return core.SideLeft, 1, true
	}
	return 0, 0, false
}

// Opposite returns the reverse direction on the same paddle
func (t IntentType) Opposite() IntentType {
	switch t {
	case IntentRightUp:
		return IntentRightDown
	case IntentRightDown:
		return IntentRightUp
	case IntentLeftUp:
		return IntentLeftDown
	case IntentLeftDown:
		return IntentLeftUp
	}
	return IntentNone
}

func (t IntentType) String() string {
	if name, ok := intentNames[t]; ok {
		return name
	}
	return "none"
}
