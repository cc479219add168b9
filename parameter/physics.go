package parameter

// Paddle & Ball Physics, all in world units per tick
const (
	// PaddleSpeed is the vertical distance a paddle moves per tick while a key is held
	PaddleSpeed = 8.0

	// BallSpeed is the initial horizontal launch speed, the ball always starts toward player 1
	BallSpeed = 5.0

	// PaddleSpin scales the paddle-relative hit offset into vertical velocity
	PaddleSpin = 4.0

	// BallAccel is added to the ball's horizontal speed on every paddle hit
	BallAccel = 0.05

	// PaddleMargin is the gap between a paddle and its side of the playfield
	PaddleMargin = 16.0
)
