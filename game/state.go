package game

import (
	"fmt"
	"log/slog"

	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/vmath"
)

// State is a running Pong match: two paddles and a ball on a fixed playfield
// It is not safe for concurrent use, the frame driver owns it
type State struct {
	Player1 Entity
	Player2 Entity
	Ball    Entity

	width, height float64
	cfg           Config

	phase  Phase
	winner Winner
	events Event
	ticks  uint64

	logger *slog.Logger
}

var _ engine.Game = (*State)(nil)

// New loads the three textures and places paddles and ball for kick-off
// Paddles sit PaddleMargin from their edge, vertically centred; the ball starts centred moving toward player 1
func New(loader engine.AssetLoader, width, height float64, cfg Config) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p1Texture, err := loadTexture(loader, "player1", cfg.Assets.Player1)
	if err != nil {
		return nil, err
	}
	p2Texture, err := loadTexture(loader, "player2", cfg.Assets.Player2)
	if err != nil {
		return nil, err
	}
	ballTexture, err := loadTexture(loader, "ball", cfg.Assets.Ball)
	if err != nil {
		return nil, err
	}

	p1Position := vmath.NewVec2(
		cfg.PaddleMargin,
		(height-float64(p1Texture.Height()))/2,
	)
	p2Position := vmath.NewVec2(
		width-float64(p2Texture.Width())-cfg.PaddleMargin,
		(height-float64(p2Texture.Height()))/2,
	)
	ballPosition := vmath.NewVec2(
		width/2-float64(ballTexture.Width())/2,
		height/2-float64(ballTexture.Height())/2,
	)
	ballVelocity := vmath.NewVec2(-cfg.BallSpeed, 0)

	return &State{
		Player1: NewEntity(p1Texture, p1Position),
		Player2: NewEntity(p2Texture, p2Position),
		Ball:    NewEntityWithVelocity(ballTexture, ballPosition, ballVelocity),
		width:   width,
		height:  height,
		cfg:     cfg,
		phase:   PhaseRunning,
		logger:  slog.Default(),
	}, nil
}

func loadTexture(loader engine.AssetLoader, name, path string) (engine.Texture, error) {
	texture, err := loader.LoadTexture(path)
	if err != nil {
		return nil, fmt.Errorf("load %s texture %q: %w", name, path, err)
	}
	return texture, nil
}

// SetLogger replaces the logger used for match events
func (s *State) SetLogger(l *slog.Logger) {
	if l != nil {
		s.logger = l
	}
}

func (s *State) Width() float64  { return s.width }
func (s *State) Height() float64 { return s.height }
func (s *State) Phase() Phase    { return s.phase }
func (s *State) Winner() Winner  { return s.winner }

// Events returns what happened during the most recent Update
func (s *State) Events() Event { return s.events }

// Ticks returns the number of updates applied while running
func (s *State) Ticks() uint64 { return s.ticks }

// Result is the human-readable outcome, empty until the match is decided
func (s *State) Result() string {
	if s.winner == NoWinner {
		return ""
	}
	return s.winner.String() + " wins!"
}

// Update advances the match by one tick
// Step order is fixed, each step sees positions already changed by the previous ones:
// input, ball integration, paddle collision, wall collision, win check
func (s *State) Update(ctx engine.Context) error {
	if s.phase == PhaseTerminated {
		return nil
	}
	s.events = 0
	s.ticks++

	s.applyInput(ctx)

	s.Ball.Position = s.Ball.Position.Add(s.Ball.Velocity)

	if paddle := s.paddleHit(); paddle != nil {
		s.bounceOffPaddle(paddle)
	}

	// No positional correction, the ball may sit past the wall for a frame
	if s.Ball.Position.Y <= 0 || s.Ball.Position.Y+s.Ball.Height() >= s.height {
		s.Ball.Velocity = s.Ball.Velocity.ReflectAxisY()
		s.events |= EventWallBounce
	}

	if s.Ball.Position.X < 0 {
		s.finish(ctx, Player2)
	}
	if s.Ball.Bounds().Right() > s.width {
		s.finish(ctx, Player1)
	}
	return nil
}

// applyInput moves paddles directly, both keys of a paddle apply independently
// Paddles are not clamped to the playfield
func (s *State) applyInput(ctx engine.Context) {
	if ctx.IsKeyHeld(engine.KeyPlayer1Up) {
		s.Player1.Position.Y -= s.cfg.PaddleSpeed
	}
	if ctx.IsKeyHeld(engine.KeyPlayer1Down) {
		s.Player1.Position.Y += s.cfg.PaddleSpeed
	}
	if ctx.IsKeyHeld(engine.KeyPlayer2Up) {
		s.Player2.Position.Y -= s.cfg.PaddleSpeed
	}
	if ctx.IsKeyHeld(engine.KeyPlayer2Down) {
		s.Player2.Position.Y += s.cfg.PaddleSpeed
	}
}

// paddleHit returns the paddle the ball overlaps, player 1 takes priority
func (s *State) paddleHit() *Entity {
	ballBounds := s.Ball.Bounds()
	if ballBounds.Intersects(s.Player1.Bounds()) {
		return &s.Player1
	}
	if ballBounds.Intersects(s.Player2.Bounds()) {
		return &s.Player2
	}
	return nil
}

// bounceOffPaddle flips and speeds up the ball, then adds spin from where it struck the paddle
// Spin accumulates across hits, vertical velocity is never reset
func (s *State) bounceOffPaddle(paddle *Entity) {
	vx := s.Ball.Velocity.X
	s.Ball.Velocity.X = -(vx + s.cfg.BallAccel*vmath.Sign(vx))

	// Nominally in [-1, 1], larger on corner hits
	offset := (paddle.Centre().Y - s.Ball.Centre().Y) / paddle.Height()
	s.Ball.Velocity.Y += s.cfg.PaddleSpin * -offset

	s.events |= EventPaddleHit
}

func (s *State) finish(ctx engine.Context, winner Winner) {
	s.phase = PhaseTerminated
	s.winner = winner
	s.events |= EventWin
	ctx.RequestQuit()
	s.logger.Info(s.Result(), "winner", winner.String(), "ticks", s.ticks)
}

// Draw clears to the background and draws player 1, player 2, then the ball
func (s *State) Draw(r engine.Renderer) error {
	r.Clear(s.cfg.Background)

	sprites := []struct {
		name   string
		entity *Entity
	}{
		{"player1", &s.Player1},
		{"player2", &s.Player2},
		{"ball", &s.Ball},
	}
	for _, sp := range sprites {
		if err := r.DrawSprite(sp.entity.Texture, sp.entity.Position); err != nil {
			return fmt.Errorf("draw %s: %w", sp.name, err)
		}
	}
	return nil
}
