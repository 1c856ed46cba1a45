package event

// EventType represents the type of game event
type EventType int

const (
	// EventScoreChanged reports the score after a goal
	// Trigger: ScoreSystem | Payload: *ScorePayload
	EventScoreChanged EventType = iota

	// EventPaddleHit reports a ball deflection
	// Trigger: CollisionSystem | Payload: *PaddleHitPayload
	EventPaddleHit

	// EventWallBounce reports a top or bottom wall reflection
	// Trigger: BallSystem | Payload: nil
	EventWallBounce

	// EventBallRespawn reports the ball re-entering play after the reset delay
	// Trigger: Scheduler | Payload: nil
	EventBallRespawn

	// EventMatchOver is emitted once when either player reaches the winning score
	// Trigger: ScoreSystem | Payload: *MatchOverPayload
	EventMatchOver

	// EventRestartRequested asks the host to rebuild the match from scratch
	// Trigger: restart intent after match over | Payload: nil
	EventRestartRequested

	// EventPauseToggled reports the new pause state
	// Trigger: pause intent | Payload: *PausePayload
	EventPauseToggled
)

var eventNames = map[EventType]string{
	EventScoreChanged:     "score_changed",
	EventPaddleHit:        "paddle_hit",
	EventWallBounce:       "wall_bounce",
	EventBallRespawn:      "ball_respawn",
	EventMatchOver:        "match_over",
	EventRestartRequested: "restart_requested",
	EventPauseToggled:     "pause_toggled",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "unknown"
}

// GameEvent is a typed notification from the match to its collaborators
type GameEvent struct {
	Type    EventType
	Payload any
}
