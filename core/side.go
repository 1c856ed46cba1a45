package core

// Side identifies a field half and the paddle defending it
type Side uint8

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Player identifies a scorer; player one defends the left goal
type Player uint8

const (
	PlayerNone Player = iota
	PlayerOne
	PlayerTwo
)

func (p Player) String() string {
	switch p {
	case PlayerOne:
		return "player one"
	case PlayerTwo:
		return "player two"
	default:
		return "none"
	}
}

// Control selects who drives the left paddle
type Control uint8

const (
	ControlAI Control = iota
	ControlHuman
)

func (c Control) String() string {
	if c == ControlHuman {
		return "human"
	}
	return "ai"
}
