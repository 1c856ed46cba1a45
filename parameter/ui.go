package parameter

// Layout
const (
	// TopMargin is the score line above the field
	TopMargin = 1

	// MinScreenWidth and MinScreenHeight below which only a resize hint is drawn
	MinScreenWidth  = 40
	MinScreenHeight = 12
)

// Text
const (
	ScoreFormat      = "Player 1 Score: %d   Player 2 Score: %d"
	RallyFormat      = "Rally %d"
	PausedText       = " PAUSED "
	TwoPlayerText    = " 2P "
	MutedText        = " MUTE "
	ResizeHintText   = "terminal too small"
	YouWinText       = "YOU WIN"
	YouLoseText      = "YOU LOSE"
	PlayerOneWinText = "PLAYER 1 WINS"
	PlayerTwoWinText = "PLAYER 2 WINS"
	GameOverHintText = "r: restart   q: quit"
)

// Glyphs
const (
	BlockRune      = '█'
	CenterLineRune = '▒'
)
