package parameter

import "time"

// Field Geometry (field units, top-left origin)
const (
	// FieldWidth is the horizontal extent of the playing field
	FieldWidth = 750.0

	// FieldHeight is the vertical extent of the playing field
	FieldHeight = 585.0

	// Grid is the base unit for walls, paddle width and ball size
	Grid = 15.0

	// WallThickness is the height of the top and bottom walls
	WallThickness = Grid

	// PaddleWidth is the horizontal size of both paddles
	PaddleWidth = Grid

	// PaddleHeight is the vertical size of both paddles
	PaddleHeight = Grid * 5

	// BallSize is the width and height of the ball
	BallSize = Grid

	// LeftPaddleX is the fixed x coordinate of the left paddle
	LeftPaddleX = Grid * 2

	// RightPaddleX is the fixed x coordinate of the right paddle
	RightPaddleX = FieldWidth - Grid*3

	// PaddleMinY is the topmost legal paddle y
	PaddleMinY = WallThickness

	// PaddleMaxY is the bottommost legal paddle y
	PaddleMaxY = FieldHeight - WallThickness - PaddleHeight

	// PaddleCenterY is the y of a vertically centred paddle
	PaddleCenterY = FieldHeight/2 - PaddleHeight/2
)

// Speeds (field units per tick)
const (
	// BaseBallSpeed is the horizontal launch speed after every score
	BaseBallSpeed = 5.0

	// HumanPaddleSpeed is the velocity magnitude applied while a paddle key is held
	HumanPaddleSpeed = 6.0

	// PaddleHitSpeedIncrease is added to the ball's horizontal speed on every paddle hit
	PaddleHitSpeedIncrease = 1.0

	// AIInitialPaddleSpeed is the AI paddle speed at match start
	AIInitialPaddleSpeed = 4.0

	// AISpeedMargin keeps the AI slower than the ball
	AISpeedMargin = 2.0
)

// AI Targeting
const (
	// AIInitialRefreshThreshold is the tolerated target drift before the AI resamples
	AIInitialRefreshThreshold = 20.0

	// AILateRefreshThreshold replaces the initial threshold late in the match
	AILateRefreshThreshold = 10.0

	// AILateGameScore is the player two score above which the late threshold applies
	AILateGameScore = 5

	// AIRubberBandScore is the player two score above which the AI resamples every tick
	AIRubberBandScore = 6
)

// Round Lifecycle
const (
	// RespawnDelay is the wall-clock pause between a score and the next launch
	RespawnDelay = 400 * time.Millisecond

	// WinningScore ends the match when reached by either player
	WinningScore = 7

	// BallHotTier is the tier above which the ball is drawn hot
	BallHotTier = 3
)
